package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strings"

	"MyLocalPaint/internal/state"

	"fyne.io/fyne/v2"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
)

// Config is the on-disk TOML configuration. Zero fields fall back to Default.
type Config struct {
	Window WindowConfig `toml:"window"`
	Canvas CanvasConfig `toml:"canvas"`
	Brush  BrushConfig  `toml:"brush"`
}

type WindowConfig struct {
	Title  string  `toml:"title"`
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

type CanvasConfig struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
	Fill   string  `toml:"fill"`
}

type BrushConfig struct {
	Width      float32 `toml:"width"`
	Height     float32 `toml:"height"`
	Color      string  `toml:"color"`
	Instrument string  `toml:"instrument"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Window: WindowConfig{Title: "Local Paint", Width: 1024, Height: 768},
		Canvas: CanvasConfig{Width: 300, Height: 300, Fill: "transparent"},
		Brush:  BrushConfig{Width: 5, Height: 5, Color: "black", Instrument: string(state.InstrumentBrush)},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML data over the defaults and validates paint and
// instrument names.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if _, err := ParsePaint(cfg.Canvas.Fill); err != nil {
		return cfg, fmt.Errorf("canvas fill: %w", err)
	}
	if _, err := ParsePaint(cfg.Brush.Color); err != nil {
		return cfg, fmt.Errorf("brush color: %w", err)
	}
	if !state.Instrument(cfg.Brush.Instrument).Valid() {
		return cfg, fmt.Errorf("unknown instrument %q", cfg.Brush.Instrument)
	}
	return cfg, nil
}

// ParsePaint resolves an SVG color name or "transparent".
func ParsePaint(name string) (color.Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "transparent" {
		return color.Transparent, nil
	}
	if c, ok := colornames.Map[key]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown paint %q", name)
}

func (c Config) WindowSize() fyne.Size { return fyne.NewSize(c.Window.Width, c.Window.Height) }
func (c Config) CanvasSize() fyne.Size { return fyne.NewSize(c.Canvas.Width, c.Canvas.Height) }
func (c Config) BrushSize() fyne.Size  { return fyne.NewSize(c.Brush.Width, c.Brush.Height) }

// Apply writes the brush settings into tools.
func (c Config) Apply(tools *state.ToolState) {
	tools.SetBrushSize(c.BrushSize())
	if paint, err := ParsePaint(c.Brush.Color); err == nil {
		tools.SetColor(paint)
	}
	tools.SetInstrument(state.Instrument(c.Brush.Instrument))
}
