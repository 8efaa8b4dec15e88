package field

import (
	"context"
	"errors"
	"log"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/san-kum/folio/internal/theme"
)

type Field struct {
	surface   Surface
	themeFn   ThemeFunc
	params    Params
	rng       *rand.Rand
	observers []Observer

	particles     []Particle
	width, height float64
	frame         int

	mu      sync.Mutex
	pending *[2]float64
}

type Option func(*Field)

func WithParams(p Params) Option { return func(f *Field) { f.params = p } }

func WithSeed(seed int64) Option {
	return func(f *Field) { f.rng = rand.New(rand.NewSource(seed)) }
}

func WithRand(r *rand.Rand) Option { return func(f *Field) { f.rng = r } }

func WithObserver(o Observer) Option {
	return func(f *Field) { f.observers = append(f.observers, o) }
}

// New acquires the drawing context, sizes it to the viewport and seeds the
// particle population. It subscribes to viewport resizes exactly once.
func New(canvas Canvas, vp Viewport, themeFn ThemeFunc, opts ...Option) (*Field, error) {
	if canvas == nil || vp == nil {
		return nil, ErrMissingResource
	}
	surface := canvas.Context2D()
	if surface == nil {
		return nil, ErrMissingResource
	}

	f := &Field{
		surface: surface,
		themeFn: themeFn,
		params:  DefaultParams(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if f.themeFn == nil {
		f.themeFn = func() theme.Mode { return theme.Light }
	}
	if err := f.params.Validate(); err != nil {
		return nil, err
	}

	f.width, f.height = vp.Size()
	f.surface.Resize(f.width, f.height)
	f.populate(f.params.Count(f.width))

	vp.OnResize(f.Resize)
	return f, nil
}

// Mount is New for hosts that treat the field as optional decoration: a
// missing surface is logged and yields a nil *Field.
func Mount(canvas Canvas, vp Viewport, themeFn ThemeFunc, opts ...Option) *Field {
	f, err := New(canvas, vp, themeFn, opts...)
	if err != nil {
		if errors.Is(err, ErrMissingResource) {
			log.Printf("field: disabled: %v", err)
		} else {
			log.Printf("field: %v", err)
		}
		return nil
	}
	return f
}

func (f *Field) populate(n int) {
	p := f.params
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = Particle{
			X:       f.rng.Float64() * f.width,
			Y:       f.rng.Float64() * f.height,
			VX:      (f.rng.Float64()*2 - 1) * p.MaxSpeed,
			VY:      (f.rng.Float64()*2 - 1) * p.MaxSpeed,
			Size:    p.MinSize + f.rng.Float64()*(p.MaxSize-p.MinSize),
			Opacity: p.MinOpacity + f.rng.Float64()*(p.MaxOpacity-p.MinOpacity),
		}
	}
}

// Resize records new surface dimensions. Particles keep their positions and
// may sit outside the new bounds. Those left outside flip velocity every
// frame and stay there.
func (f *Field) Resize(w, h float64) {
	if f == nil {
		return
	}
	f.mu.Lock()
	f.pending = &[2]float64{w, h}
	f.mu.Unlock()
}

func (f *Field) syncSize() {
	f.mu.Lock()
	pending := f.pending
	f.pending = nil
	f.mu.Unlock()

	if pending == nil {
		return
	}
	f.width, f.height = pending[0], pending[1]
	f.surface.Resize(f.width, f.height)
}

// Color is the draw colour for the current theme.
func (f *Field) Color() RGB {
	if f == nil {
		return LightColor
	}
	if f.themeFn() == theme.Dark {
		return f.params.Dark
	}
	return f.params.Light
}

// Frame advances and draws every particle once.
//
// A particle that crosses an edge has its velocity reversed but is drawn
// where it landed; it re-enters on the following frame.
func (f *Field) Frame() {
	if f == nil {
		return
	}
	f.syncSize()
	f.surface.ClearRect(0, 0, f.width, f.height)

	mode := f.themeFn()
	color := f.params.Light
	if mode == theme.Dark {
		color = f.params.Dark
	}

	stats := FrameStats{
		Frame:     f.frame,
		Width:     f.width,
		Height:    f.height,
		Particles: len(f.particles),
		Mode:      mode,
	}
	maxDist := f.params.LinkDistance
	speed := 0.0

	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX
		p.Y += p.VY

		if p.X < 0 || p.X > f.width {
			p.VX = -p.VX
			stats.Bounces++
		}
		if p.Y < 0 || p.Y > f.height {
			p.VY = -p.VY
			stats.Bounces++
		}
		if !p.InBounds(f.width, f.height) {
			stats.OutOfBounds++
		}
		speed += p.Speed()

		f.surface.FillCircle(p.X, p.Y, p.Size, color.Alpha(p.Opacity))

		for j := i + 1; j < len(f.particles); j++ {
			q := &f.particles[j]
			dist := math.Hypot(q.X-p.X, q.Y-p.Y)
			if dist < maxDist {
				f.surface.StrokeLine(p.X, p.Y, q.X, q.Y, f.params.LineWidth, color.Alpha(f.params.Alpha(dist)))
				stats.Links++
			}
		}
	}

	if n := len(f.particles); n > 0 {
		stats.MeanSpeed = speed / float64(n)
	}
	f.frame++

	for _, o := range f.observers {
		o.OnFrame(stats)
	}
}

// Step runs n frames back to back without a scheduler.
func (f *Field) Step(n int) {
	for i := 0; i < n; i++ {
		f.Frame()
	}
}

// Run draws one frame per scheduler tick until ctx is cancelled or the
// scheduler closes its channel. The scheduler is stopped on return.
func (f *Field) Run(ctx context.Context, sched Scheduler) error {
	if f == nil {
		return nil
	}
	defer sched.Stop()

	ack, _ := sched.(acknowledger)
	frames := sched.Frames()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-frames:
			if !ok {
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			f.Frame()
			if ack != nil {
				ack.frameDone()
			}
		}
	}
}

func (f *Field) AddObserver(o Observer) {
	if f == nil {
		return
	}
	f.observers = append(f.observers, o)
}

func (f *Field) Particles() []Particle {
	if f == nil {
		return nil
	}
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Size reports the dimensions used by the most recent frame.
func (f *Field) Size() (w, h float64) {
	if f == nil {
		return 0, 0
	}
	return f.width, f.height
}

func (f *Field) Frames() int {
	if f == nil {
		return 0
	}
	return f.frame
}

func (f *Field) Params() Params {
	if f == nil {
		return DefaultParams()
	}
	return f.params
}
