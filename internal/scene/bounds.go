package scene

import "fyne.io/fyne/v2"

// Area is an axis-aligned rectangle in canvas coordinates.
type Area struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Contains reports whether p lies inside a, edges included.
func (a Area) Contains(p fyne.Position) bool {
	return p.X >= a.X && p.X <= a.X+a.Width &&
		p.Y >= a.Y && p.Y <= a.Y+a.Height
}

// Union returns the smallest area covering a and b.
func (a Area) Union(b Area) Area {
	minX := min(a.X, b.X)
	minY := min(a.Y, b.Y)
	maxX := max(a.X+a.Width, b.X+b.Width)
	maxY := max(a.Y+a.Height, b.Y+b.Height)
	return Area{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Bounds returns the area covered by every populated slot. ok is false when
// no slot is populated.
func (s *Scene) Bounds() (area Area, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.slots {
		if p == nil {
			continue
		}
		if !ok {
			area, ok = p.Area(), true
			continue
		}
		area = area.Union(p.Area())
	}
	return area, ok
}
