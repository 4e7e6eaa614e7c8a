package scene

import (
	"image/color"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"
)

// Shape is the geometric kind of a Primitive.
type Shape int

const (
	ShapeRectangle Shape = iota
	ShapeRoundedRectangle
)

func (s Shape) String() string {
	switch s {
	case ShapeRectangle:
		return "rectangle"
	case ShapeRoundedRectangle:
		return "rounded-rectangle"
	}
	return "unknown"
}

// Primitive is an immutable drawable record. Changing one means building a
// replacement and installing it in the same slot.
type Primitive struct {
	id          string
	shape       Shape
	fill        color.Color
	border      color.Color
	borderWidth float32
	position    fyne.Position
	size        fyne.Size
	radiusX     float32
	radiusY     float32
}

func (p *Primitive) ID() string              { return p.id }
func (p *Primitive) Shape() Shape            { return p.shape }
func (p *Primitive) Fill() color.Color       { return p.fill }
func (p *Primitive) Position() fyne.Position { return p.position }
func (p *Primitive) Size() fyne.Size         { return p.size }

// Border returns the border paint and width. ok is false for primitives
// drawn without a border.
func (p *Primitive) Border() (paint color.Color, width float32, ok bool) {
	if p.border == nil {
		return nil, 0, false
	}
	return p.border, p.borderWidth, true
}

// Radius returns the corner radii of a rounded rectangle, zero otherwise.
func (p *Primitive) Radius() (rx, ry float32) {
	return p.radiusX, p.radiusY
}

// Area returns the rectangle covered by the primitive.
func (p *Primitive) Area() Area {
	return Area{X: p.position.X, Y: p.position.Y, Width: p.size.Width, Height: p.size.Height}
}

func newBackground(border, fill color.Color, pos fyne.Position, size fyne.Size) *Primitive {
	return &Primitive{
		id:          uuid.NewString(),
		shape:       ShapeRectangle,
		fill:        fill,
		border:      border,
		borderWidth: BorderWidth,
		position:    pos,
		size:        size,
	}
}

// newMark builds a brush mark with its top-left corner at pos and corner
// radii equal to the brush dimensions.
func newMark(fill color.Color, pos fyne.Position, brush fyne.Size) *Primitive {
	return &Primitive{
		id:       uuid.NewString(),
		shape:    ShapeRoundedRectangle,
		fill:     fill,
		position: pos,
		size:     brush,
		radiusX:  brush.Width,
		radiusY:  brush.Height,
	}
}
