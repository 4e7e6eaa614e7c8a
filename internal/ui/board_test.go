package ui

import (
	"testing"

	"MyLocalPaint/internal/scene"
	"MyLocalPaint/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func newTestBoard(t *testing.T) (*BoardWidget, *state.ToolState) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	tools := state.NewToolState()
	tools.SetInstrument(state.InstrumentBrush)
	tools.SetColor(colornames.Blue)
	tools.SetBrushSize(fyne.NewSize(5, 5))

	b := NewBoardWidget(scene.New(tools))
	w := test.NewWindow(b)
	t.Cleanup(w.Close)
	return b, tools
}

func press(b *BoardWidget, x, y float32) {
	b.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	})
}

func release(b *BoardWidget, x, y float32) {
	b.MouseUp(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	})
}

func move(b *BoardWidget, x, y float32) {
	b.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}})
}

func TestNewBoardWidgetRegistersLayer(t *testing.T) {
	b, tools := newTestBoard(t)
	assert.Equal(t, "Layer 1", b.Name)
	assert.Equal(t, 1, tools.LayersCount())

	second := NewBoardWidget(scene.New(tools))
	assert.Equal(t, "Layer 2", second.Name)
	assert.Equal(t, 2, tools.LayersCount())
}

func TestBoardDrawsOnlyWhenFocused(t *testing.T) {
	b, _ := newTestBoard(t)

	press(b, 10, 10)
	move(b, 20, 20)
	release(b, 20, 20)
	assert.Equal(t, 1, b.Scene().ChildCount())

	b.FocusGained()
	assert.True(t, b.Scene().Focused())
	press(b, 10, 10)
	move(b, 20, 20)
	release(b, 20, 20)
	move(b, 30, 30)
	assert.Equal(t, 3, b.Scene().ChildCount())

	b.FocusLost()
	assert.False(t, b.Scene().Focused())
	bg, err := b.Scene().ChildAt(0)
	require.NoError(t, err)
	border, _, _ := bg.Border()
	assert.Equal(t, scene.BorderUnfocused, border)
}

func TestSecondaryButtonDoesNotPress(t *testing.T) {
	b, tools := newTestBoard(t)
	b.FocusGained()
	b.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(1, 1)},
		Button:     desktop.MouseButtonSecondary,
	})
	assert.False(t, tools.Pressed())
	assert.Equal(t, 1, b.Scene().ChildCount())
}

func TestRendererFollowsSlots(t *testing.T) {
	b, _ := newTestBoard(t)
	b.FocusGained()
	press(b, 10, 10)
	release(b, 10, 10)

	r := test.WidgetRenderer(b)
	objects := r.Objects()
	require.Len(t, objects, 2)

	mark, ok := objects[1].(*canvas.Rectangle)
	require.True(t, ok)
	assert.Equal(t, colornames.Blue, mark.FillColor)
	assert.Equal(t, fyne.NewPos(10, 10), mark.Position())
	assert.Equal(t, fyne.NewSize(5, 5), mark.Size())
	assert.Equal(t, float32(5), mark.CornerRadius)

	bgBefore := objects[0]
	b.HideCanvas()
	require.Len(t, r.Objects(), 1)
	assert.Same(t, mark, r.Objects()[0])

	b.RestoreCanvas()
	require.Len(t, r.Objects(), 2)
	assert.NotSame(t, bgBefore, r.Objects()[0])
	assert.Same(t, mark, r.Objects()[1])

	b.Clear()
	assert.Len(t, r.Objects(), 1)
}

func TestBoardCanvasEdits(t *testing.T) {
	b, _ := newTestBoard(t)

	b.SetFill(colornames.White)
	assert.Equal(t, colornames.White, b.Scene().Fill())

	require.NoError(t, b.ResizeCanvas(fyne.NewSize(50, 40)))
	assert.Equal(t, fyne.NewSize(50, 40), test.WidgetRenderer(b).MinSize())

	err := b.ResizeCanvas(fyne.NewSize(-1, 40))
	assert.ErrorIs(t, err, scene.ErrInvalidGeometry)
	assert.Equal(t, fyne.NewSize(50, 40), b.Scene().Size())
}
