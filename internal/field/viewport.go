package field

import "sync"

// StaticViewport is a viewport whose size only changes when SetSize is
// called. Headless runs and tests use it.
type StaticViewport struct {
	mu        sync.Mutex
	w, h      float64
	listeners []func(w, h float64)
}

func NewStaticViewport(w, h float64) *StaticViewport {
	return &StaticViewport{w: w, h: h}
}

func (v *StaticViewport) Size() (float64, float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.w, v.h
}

func (v *StaticViewport) OnResize(fn func(w, h float64)) {
	v.mu.Lock()
	v.listeners = append(v.listeners, fn)
	v.mu.Unlock()
}

// SetSize updates the size and fires the resize listeners.
func (v *StaticViewport) SetSize(w, h float64) {
	v.mu.Lock()
	v.w, v.h = w, h
	listeners := append([]func(w, h float64){}, v.listeners...)
	v.mu.Unlock()

	for _, fn := range listeners {
		fn(w, h)
	}
}

// Discard is a canvas whose surface draws nothing.
type Discard struct{}

func (Discard) Context2D() Surface { return discard{} }

type discard struct{}

func (discard) Resize(w, h float64)                          {}
func (discard) ClearRect(x, y, w, h float64)                 {}
func (discard) FillCircle(x, y, r float64, c RGBA)           {}
func (discard) StrokeLine(x0, y0, x1, y1, w float64, c RGBA) {}

// CanvasFunc adapts a function to Canvas.
type CanvasFunc func() Surface

func (fn CanvasFunc) Context2D() Surface { return fn() }
