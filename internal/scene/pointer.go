package scene

import (
	"MyLocalPaint/internal/state"

	"fyne.io/fyne/v2"
)

// PointerDown marks the primary button as pressed and handles pos as a move,
// so a press without movement still leaves one mark.
func (s *Scene) PointerDown(pos fyne.Position) bool {
	s.tools.SetPressed(true)
	return s.PointerMove(pos)
}

// PointerUp marks the primary button as released.
func (s *Scene) PointerUp(fyne.Position) {
	s.tools.SetPressed(false)
}

// PointerMove appends a brush mark at pos when the button is pressed, the
// scene has focus and the Brush instrument is selected. It reports whether a
// mark was added.
func (s *Scene) PointerMove(pos fyne.Position) bool {
	switch s.tools.Instrument() {
	case state.InstrumentArrow:
		return false
	case state.InstrumentBrush:
		if !s.tools.Pressed() {
			return false
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.focused {
			return false
		}
		s.slots = append(s.slots, newMark(s.tools.Color(), pos, s.tools.BrushSize()))
		return true
	}
	return false
}
