package ui

import (
	"fmt"
	"image/color"

	"MyLocalPaint/internal/config"
	"MyLocalPaint/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/colornames"
)

var palette = []color.Color{
	colornames.Black,
	colornames.Red,
	colornames.Green,
	colornames.Blue,
	colornames.Yellow,
}

var canvasFills = []string{"transparent", "white", "whitesmoke", "lightyellow", "lightblue"}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = colornames.Gray
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// colorName returns the SVG name of c, or its hex value.
func colorName(c color.Color) string {
	if c == nil {
		return "none"
	}
	r, g, b, a := c.RGBA()
	for _, name := range colornames.Names {
		nr, ng, nb, na := colornames.Map[name].RGBA()
		if r == nr && g == ng && b == nb && a == na {
			return name
		}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func statusText(tools *state.ToolState) string {
	return fmt.Sprintf("%s, %s", tools.Instrument(), colorName(tools.Color()))
}

// NewToolbar builds the instrument, color, brush size and canvas controls.
// They write into the board's tool context; the status label follows its
// change notifications.
func NewToolbar(board *BoardWidget, onExport func()) fyne.CanvasObject {
	tools := board.Scene().Tools()

	status := widget.NewLabel(statusText(tools))
	tools.OnInstrumentChanged(func(state.Instrument) { status.SetText(statusText(tools)) })
	tools.OnColorChanged(func(color.Color) { status.SetText(statusText(tools)) })

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.NavigateNextIcon(), func() {
			tools.SetInstrument(state.InstrumentArrow)
		}), // Arrow
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			tools.SetInstrument(state.InstrumentBrush)
		}), // Brush
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentClearIcon(), board.Clear),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			if onExport != nil {
				onExport()
			}
		}),
	)

	// --- Color Palette ---
	colorBox := container.NewHBox()
	for _, c := range palette {
		colorBox.Add(newColorSwatch(c, tools.SetColor))
	}

	// --- Brush Size Slider ---
	brush := tools.BrushSize()
	sizeSlider := widget.NewSlider(1.0, 50.0)
	sizeSlider.SetValue(float64(max(brush.Width, 1)))
	sizeSlider.OnChanged = func(val float64) {
		tools.SetBrushSize(fyne.NewSize(float32(val), float32(val)))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), sizeSlider)

	// --- Canvas fill and visibility ---
	fillSelect := widget.NewSelect(canvasFills, func(name string) {
		if paint, err := config.ParsePaint(name); err == nil {
			board.SetFill(paint)
		}
	})
	fillSelect.PlaceHolder = "Canvas"
	visible := widget.NewCheck("Show canvas", nil)
	visible.Checked = true
	visible.OnChanged = func(on bool) {
		if on {
			board.RestoreCanvas()
		} else {
			board.HideCanvas()
		}
	}

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widget.NewSeparator(),
		fillSelect,
		visible,
		layout.NewSpacer(),
		status,
	)
}
