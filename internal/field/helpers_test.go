package field

import (
	"github.com/san-kum/folio/internal/theme"
)

type call struct {
	op   string
	args []float64
	c    RGBA
}

type recordingSurface struct {
	w, h  float64
	calls []call
}

func (s *recordingSurface) Resize(w, h float64) { s.w, s.h = w, h }

func (s *recordingSurface) ClearRect(x, y, w, h float64) {
	s.calls = s.calls[:0]
	s.calls = append(s.calls, call{op: "clear", args: []float64{x, y, w, h}})
}

func (s *recordingSurface) FillCircle(x, y, r float64, c RGBA) {
	s.calls = append(s.calls, call{op: "circle", args: []float64{x, y, r}, c: c})
}

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1, w float64, c RGBA) {
	s.calls = append(s.calls, call{op: "line", args: []float64{x0, y0, x1, y1, w}, c: c})
}

func (s *recordingSurface) count(op string) int {
	n := 0
	for _, c := range s.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func (s *recordingSurface) first(op string) (call, bool) {
	for _, c := range s.calls {
		if c.op == op {
			return c, true
		}
	}
	return call{}, false
}

type testCanvas struct {
	surface *recordingSurface
}

func (c *testCanvas) Context2D() Surface {
	if c.surface == nil {
		return nil
	}
	return c.surface
}

func newTestField(w, h float64, mode *theme.Mode, opts ...Option) (*Field, *recordingSurface, *StaticViewport) {
	surface := &recordingSurface{}
	vp := NewStaticViewport(w, h)
	themeFn := func() theme.Mode { return *mode }
	f, err := New(&testCanvas{surface: surface}, vp, themeFn, append([]Option{WithSeed(7)}, opts...)...)
	if err != nil {
		panic(err)
	}
	return f, surface, vp
}
