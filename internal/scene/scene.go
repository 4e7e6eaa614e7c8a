package scene

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"sync"

	"MyLocalPaint/internal/state"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"
	"golang.org/x/image/colornames"
)

var (
	ErrInvalidGeometry = errors.New("invalid geometry")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Background border paints and the defaults slot 0 is first drawn with.
var (
	BorderFocused   color.Color = colornames.Dimgray
	BorderUnfocused color.Color = colornames.Silver

	DefaultFill     color.Color = color.Transparent
	DefaultPosition             = fyne.NewPos(0, 0)
	DefaultSize                 = fyne.NewSize(300, 300)
)

const BorderWidth float32 = 1

// Scene owns an ordered collection of primitive slots. Slot 0 is the canvas
// background (nil while hidden); slots 1..N are brush marks in paint order.
type Scene struct {
	mu    sync.RWMutex
	id    string
	tools *state.ToolState
	slots []*Primitive

	// cached so slot 0 can be rebuilt without the caller re-supplying geometry
	fill     color.Color
	position fyne.Position
	size     fyne.Size

	focused bool
}

// New creates a scene whose only slot is the default background. Pointer
// handling reads and writes tools; a nil tools gets a private ToolState.
func New(tools *state.ToolState) *Scene {
	if tools == nil {
		tools = state.NewToolState()
	}
	s := &Scene{
		id:    uuid.NewString(),
		tools: tools,
	}
	s.slots = []*Primitive{s.background(BorderUnfocused, DefaultFill, DefaultPosition, DefaultSize)}
	return s
}

func (s *Scene) ID() string { return s.id }

// Tools returns the tool context the scene reads from.
func (s *Scene) Tools() *state.ToolState { return s.tools }

// background builds a slot 0 primitive and caches its parameters.
func (s *Scene) background(border, fill color.Color, pos fyne.Position, size fyne.Size) *Primitive {
	s.fill = fill
	s.position = pos
	s.size = size
	return newBackground(border, fill, pos, size)
}

func (s *Scene) replaceBackground(border, fill color.Color, pos fyne.Position, size fyne.Size) {
	s.slots[0] = nil
	s.slots[0] = s.background(border, fill, pos, size)
}

// Focus redraws the background with the focused border.
func (s *Scene) Focus() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceBackground(BorderFocused, s.fill, s.position, s.size)
}

// Unfocus redraws the background with the unfocused border.
func (s *Scene) Unfocus() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceBackground(BorderUnfocused, s.fill, s.position, s.size)
}

// SetFill redraws the background with a new fill and the focused border.
func (s *Scene) SetFill(fill color.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceBackground(BorderFocused, fill, s.position, s.size)
	log.Printf("[SCENE] %s background fill changed", s.id)
}

// Resize redraws the background at a new size with the focused border.
// Negative dimensions fail with ErrInvalidGeometry and leave the scene as is.
func (s *Scene) Resize(size fyne.Size) error {
	if size.Width < 0 || size.Height < 0 {
		return fmt.Errorf("%w: size %vx%v has a negative dimension", ErrInvalidGeometry, size.Width, size.Height)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceBackground(BorderFocused, s.fill, s.position, size)
	log.Printf("[SCENE] %s background resized to %vx%v", s.id, size.Width, size.Height)
	return nil
}

// Hide empties slot 0. Cached canvas parameters are kept for Restore.
func (s *Scene) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[0] = nil
}

// Restore rebuilds a hidden background from the cached parameters with the
// unfocused border. It does nothing if the background is shown.
func (s *Scene) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.slots[0] == nil {
		s.slots[0] = s.background(BorderUnfocused, s.fill, s.position, s.size)
	}
}

// Clear discards every brush mark, keeping slot 0 as it is.
func (s *Scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	marks := len(s.slots) - 1
	s.slots = []*Primitive{s.slots[0]}
	log.Printf("[SCENE] %s cleared %d marks", s.id, marks)
}

// Fill returns the cached background fill.
func (s *Scene) Fill() color.Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fill
}

// Position returns the cached canvas origin.
func (s *Scene) Position() fyne.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.position
}

// Size returns the cached canvas size.
func (s *Scene) Size() fyne.Size {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size
}

// Focused reports whether the scene has logical input focus. Brush marks are
// only accepted while it does.
func (s *Scene) Focused() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.focused
}

// SetFocused is called by the input runtime when focus moves. It does not
// redraw the background; see Focus and Unfocus.
func (s *Scene) SetFocused(f bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focused = f
}

// ChildCount returns the number of slots, including empty ones.
func (s *Scene) ChildCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}

// ChildAt returns the primitive in slot index, which is nil for an empty slot.
func (s *Scene) ChildAt(index int) (*Primitive, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.slots) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(s.slots))
	}
	return s.slots[index], nil
}

// Children returns a snapshot of every slot in paint order.
func (s *Scene) Children() []*Primitive {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Primitive, len(s.slots))
	copy(out, s.slots)
	return out
}
