package export

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"MyLocalPaint/internal/scene"

	"github.com/jung-kurt/gofpdf"
)

// Source is the enumeration contract a rendering backend walks.
type Source interface {
	ChildCount() int
	ChildAt(index int) (*scene.Primitive, error)
	Bounds() (scene.Area, bool)
}

const minPageSide = 1.0

// PDF paints every populated slot of src, in index order, onto a single page
// sized to the scene bounds and writes the document to w.
func PDF(w io.Writer, src Source) error {
	p, err := render(src)
	if err != nil {
		return err
	}
	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	log.Printf("[EXPORT] Wrote %d slots to PDF", src.ChildCount())
	return nil
}

// PDFFile is PDF writing to the named file.
func PDFFile(path string, src Source) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := PDF(f, src); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func render(src Source) (*gofpdf.Fpdf, error) {
	area, ok := src.Bounds()
	if !ok {
		size := scene.DefaultSize
		area = scene.Area{Width: size.Width, Height: size.Height}
	}

	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size: gofpdf.SizeType{
			Wd: max(float64(area.Width), minPageSide),
			Ht: max(float64(area.Height), minPageSide),
		},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	for i := 0; i < src.ChildCount(); i++ {
		prim, err := src.ChildAt(i)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		if prim == nil {
			continue
		}
		drawPrimitive(p, prim, area)
	}
	if err := p.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return p, nil
}

func drawPrimitive(p *gofpdf.Fpdf, prim *scene.Primitive, origin scene.Area) {
	style := ""
	alpha := 1.0

	fill := toNRGBA(prim.Fill())
	if fill.A > 0 {
		p.SetFillColor(int(fill.R), int(fill.G), int(fill.B))
		alpha = float64(fill.A) / 255
		style += "F"
	}
	if border, width, ok := prim.Border(); ok {
		c := toNRGBA(border)
		p.SetDrawColor(int(c.R), int(c.G), int(c.B))
		p.SetLineWidth(float64(width))
		style += "D"
	}
	if style == "" {
		return
	}

	pos, size := prim.Position(), prim.Size()
	x := float64(pos.X - origin.X)
	y := float64(pos.Y - origin.Y)
	w, h := float64(size.Width), float64(size.Height)

	p.SetAlpha(alpha, "Normal")
	switch prim.Shape() {
	case scene.ShapeRoundedRectangle:
		rx, ry := prim.Radius()
		r := min(float64(min(rx, ry)), w/2, h/2)
		p.RoundedRect(x, y, w, h, r, "1234", style)
	default:
		p.Rect(x, y, w, h, style)
	}
	p.SetAlpha(1, "Normal")
}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
