package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"MyLocalPaint/internal/state"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paint.toml")
	data := `
[canvas]
width = 640.0
fill = "White"

[brush]
color = "blue"
width = 8.0
height = 8.0
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, fyne.NewSize(640, 300), cfg.CanvasSize())
	assert.Equal(t, "White", cfg.Canvas.Fill)
	assert.Equal(t, fyne.NewSize(8, 8), cfg.BrushSize())
	assert.Equal(t, "Local Paint", cfg.Window.Title)
	assert.Equal(t, fyne.NewSize(1024, 768), cfg.WindowSize())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "[canvas\nwidth = 1"},
		{"bad fill", "[canvas]\nfill = \"plaid\""},
		{"bad color", "[brush]\ncolor = \"nope\""},
		{"bad instrument", "[brush]\ninstrument = \"eraser\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParsePaint(t *testing.T) {
	c, err := ParsePaint(" Transparent ")
	require.NoError(t, err)
	assert.Equal(t, color.Transparent, c)

	c, err = ParsePaint("DimGray")
	require.NoError(t, err)
	assert.Equal(t, colornames.Dimgray, c)

	_, err = ParsePaint("")
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	cfg := Default()
	cfg.Brush.Color = "red"

	tools := state.NewToolState()
	cfg.Apply(tools)
	assert.Equal(t, state.InstrumentBrush, tools.Instrument())
	assert.Equal(t, colornames.Red, tools.Color())
	assert.Equal(t, fyne.NewSize(5, 5), tools.BrushSize())
}
