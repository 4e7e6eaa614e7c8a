package ui

import (
	"fmt"
	"image/color"
	"log"

	"MyLocalPaint/internal/scene"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget hosts a Scene: it forwards pointer and focus events to it and
// paints its slots in index order.
type BoardWidget struct {
	widget.BaseWidget
	scene *scene.Scene
	Name  string
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Focusable = (*BoardWidget)(nil)
var _ fyne.Tappable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

// NewBoardWidget registers a new layer in the scene's tool context and
// returns a widget drawing s.
func NewBoardWidget(s *scene.Scene) *BoardWidget {
	tools := s.Tools()
	tools.SetLayersCount(tools.LayersCount() + 1)
	b := &BoardWidget{
		scene: s,
		Name:  fmt.Sprintf("Layer %d", tools.NextLayerIndex()),
	}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Scene() *scene.Scene { return b.scene }

// Clear removes every brush mark.
func (b *BoardWidget) Clear() {
	b.scene.Clear()
	b.Refresh()
}

// SetFill changes the canvas background paint.
func (b *BoardWidget) SetFill(c color.Color) {
	b.scene.SetFill(c)
	b.Refresh()
}

// ResizeCanvas changes the size of the drawing area, not the widget.
func (b *BoardWidget) ResizeCanvas(size fyne.Size) error {
	if err := b.scene.Resize(size); err != nil {
		return err
	}
	b.Refresh()
	return nil
}

func (b *BoardWidget) HideCanvas() {
	b.scene.Hide()
	b.Refresh()
}

func (b *BoardWidget) RestoreCanvas() {
	b.scene.Restore()
	b.Refresh()
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	if b.scene.PointerDown(e.Position) {
		b.Refresh()
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.scene.PointerUp(e.Position)
	}
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	if b.scene.PointerMove(e.Position) {
		b.Refresh()
	}
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut()                   {}

// Tapped requests keyboard focus so the scene starts accepting strokes.
func (b *BoardWidget) Tapped(*fyne.PointEvent) {
	if c := fyne.CurrentApp().Driver().CanvasForObject(b); c != nil {
		c.Focus(b)
	}
}

func (b *BoardWidget) FocusGained() {
	b.scene.SetFocused(true)
	b.scene.Focus()
	log.Printf("[UI] %s focused", b.Name)
	b.Refresh()
}

func (b *BoardWidget) FocusLost() {
	b.scene.SetFocused(false)
	b.scene.Unfocus()
	b.Refresh()
}

func (b *BoardWidget) TypedRune(rune)          {}
func (b *BoardWidget) TypedKey(*fyne.KeyEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.sync()
	return r
}

type boardWidgetRenderer struct {
	board   *BoardWidget
	drawn   []*scene.Primitive
	rects   []*canvas.Rectangle // indexed by slot, nil for empty slots
	objects []fyne.CanvasObject
}

// sync rebuilds canvas objects for slots whose primitive changed. Empty
// slots render nothing.
func (r *boardWidgetRenderer) sync() {
	children := r.board.scene.Children()
	rects := make([]*canvas.Rectangle, len(children))
	objects := make([]fyne.CanvasObject, 0, len(children))
	for i, p := range children {
		if p == nil {
			continue
		}
		if i < len(r.drawn) && r.drawn[i] == p {
			rects[i] = r.rects[i]
		} else {
			rects[i] = toRectangle(p)
		}
		objects = append(objects, rects[i])
	}
	r.drawn = children
	r.rects = rects
	r.objects = objects
}

func toRectangle(p *scene.Primitive) *canvas.Rectangle {
	rect := canvas.NewRectangle(p.Fill())
	if paint, width, ok := p.Border(); ok {
		rect.StrokeColor = paint
		rect.StrokeWidth = width
	}
	if p.Shape() == scene.ShapeRoundedRectangle {
		rx, ry := p.Radius()
		rect.CornerRadius = min(rx, ry)
	}
	rect.Move(p.Position())
	rect.Resize(p.Size())
	return rect
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.sync()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	area, ok := r.board.scene.Bounds()
	if !ok {
		return r.board.scene.Size()
	}
	return fyne.NewSize(area.X+area.Width, area.Y+area.Height)
}

func (r *boardWidgetRenderer) Layout(fyne.Size) {}
func (r *boardWidgetRenderer) Destroy()         {}
