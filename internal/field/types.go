package field

import (
	"fmt"
	"math"
	"time"

	"github.com/san-kum/folio/internal/theme"
)

type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Opacity float64
}

func (p Particle) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}

func (p Particle) InBounds(w, h float64) bool {
	return p.X >= 0 && p.X <= w && p.Y >= 0 && p.Y <= h
}

type RGB struct {
	R, G, B uint8
}

func (c RGB) Alpha(a float64) RGBA {
	return RGBA{RGB: c, A: a}
}

func (c RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

type RGBA struct {
	RGB
	A float64
}

// CSS renders the colour the way a canvas fillStyle expects it.
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%s, %g)", c.RGB, c.A)
}

// Surface is a 2D immediate-mode drawing context.
type Surface interface {
	Resize(w, h float64)
	ClearRect(x, y, w, h float64)
	FillCircle(x, y, r float64, c RGBA)
	StrokeLine(x0, y0, x1, y1, width float64, c RGBA)
}

// Canvas hands out its drawing context; nil means none could be acquired.
type Canvas interface {
	Context2D() Surface
}

type Viewport interface {
	Size() (w, h float64)
	OnResize(fn func(w, h float64))
}

type ThemeFunc func() theme.Mode

type Scheduler interface {
	Frames() <-chan time.Time
	Stop()
}

// FrameStats summarises one frame for observers.
type FrameStats struct {
	Frame       int
	Width       float64
	Height      float64
	Particles   int
	Links       int
	Bounces     int
	OutOfBounds int
	MeanSpeed   float64
	Mode        theme.Mode
}

type Observer interface {
	OnFrame(s FrameStats)
}

type ObserverFunc func(s FrameStats)

func (fn ObserverFunc) OnFrame(s FrameStats) { fn(s) }
