package state

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Instrument is the drawing tool currently selected in the toolbar.
type Instrument string

const (
	// InstrumentArrow is reserved for selection and does not draw.
	InstrumentArrow Instrument = "arrow"
	InstrumentBrush Instrument = "brush"
)

func (i Instrument) String() string { return string(i) }

// Valid reports whether i is one of the known instruments.
func (i Instrument) Valid() bool {
	return i == InstrumentArrow || i == InstrumentBrush
}

// Default values a fresh ToolState starts with.
var (
	DefaultInstrument = InstrumentArrow
	DefaultColor      color.Color = colornames.Black
)
