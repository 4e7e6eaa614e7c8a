package state

import (
	"image/color"
	"log"
	"sync"

	"fyne.io/fyne/v2"
)

// ToolState holds the instrument, paint and pointer state shared by every
// drawing surface that references it.
type ToolState struct {
	mu           sync.RWMutex
	instrument   Instrument
	color        color.Color
	brushSize    fyne.Size
	pressed      bool
	layersCount  int
	layerIndexes int

	instrumentObservers observerList[Instrument]
	colorObservers      observerList[color.Color]
}

// NewToolState creates a tool context with the Arrow instrument, black paint
// and the primary button released.
func NewToolState() *ToolState {
	return &ToolState{
		instrument: DefaultInstrument,
		color:      DefaultColor,
	}
}

func (ts *ToolState) Instrument() Instrument {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.instrument
}

// SetInstrument stores i and then notifies instrument observers, even if i
// equals the current value.
func (ts *ToolState) SetInstrument(i Instrument) {
	ts.mu.Lock()
	ts.instrument = i
	ts.mu.Unlock()

	log.Printf("[TOOLS] Instrument set to %s", i)
	ts.instrumentObservers.notify(i)
}

func (ts *ToolState) Color() color.Color {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.color
}

// SetColor stores c and then notifies color observers.
func (ts *ToolState) SetColor(c color.Color) {
	ts.mu.Lock()
	ts.color = c
	ts.mu.Unlock()

	ts.colorObservers.notify(c)
}

func (ts *ToolState) BrushSize() fyne.Size {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.brushSize
}

func (ts *ToolState) SetBrushSize(s fyne.Size) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.brushSize = s
}

// Pressed reports whether the primary pointer button is held down.
func (ts *ToolState) Pressed() bool {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.pressed
}

func (ts *ToolState) SetPressed(p bool) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.pressed = p
}

func (ts *ToolState) LayersCount() int {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.layersCount
}

func (ts *ToolState) SetLayersCount(n int) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.layersCount = n
}

func (ts *ToolState) LayerIndexes() int {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.layerIndexes
}

func (ts *ToolState) SetLayerIndexes(n int) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.layerIndexes = n
}

// NextLayerIndex increments the layer index generator and returns the new value.
func (ts *ToolState) NextLayerIndex() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.layerIndexes++
	return ts.layerIndexes
}

// OnInstrumentChanged registers fn to run after every SetInstrument call.
func (ts *ToolState) OnInstrumentChanged(fn func(Instrument)) ObserverID {
	return ts.instrumentObservers.add(fn)
}

// OnColorChanged registers fn to run after every SetColor call.
func (ts *ToolState) OnColorChanged(fn func(color.Color)) ObserverID {
	return ts.colorObservers.add(fn)
}

// RemoveObserver unregisters an instrument or color observer. It returns
// false if id is not registered.
func (ts *ToolState) RemoveObserver(id ObserverID) bool {
	if ts.instrumentObservers.remove(id) {
		return true
	}
	return ts.colorObservers.remove(id)
}

// ObserverCount returns the number of instrument and color observers.
func (ts *ToolState) ObserverCount() (instrument, color int) {
	return ts.instrumentObservers.len(), ts.colorObservers.len()
}
