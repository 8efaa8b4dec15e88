package field

import "fmt"

const (
	DefaultBreakpoint   = 768.0
	DefaultNarrowCount  = 25
	DefaultWideCount    = 50
	DefaultMaxSpeed     = 0.2
	DefaultMinSize      = 0.5
	DefaultMaxSize      = 2.5
	DefaultMinOpacity   = 0.1
	DefaultMaxOpacity   = 0.5
	DefaultLinkDistance = 150.0
	DefaultLinkAlpha    = 0.08
	DefaultLineWidth    = 0.5
)

var (
	DarkColor  = RGB{52, 211, 153}
	LightColor = RGB{16, 185, 129}
)

// Params tunes population and rendering. Physics never depends on the theme.
type Params struct {
	Breakpoint   float64
	NarrowCount  int
	WideCount    int
	MaxSpeed     float64
	MinSize      float64
	MaxSize      float64
	MinOpacity   float64
	MaxOpacity   float64
	LinkDistance float64
	LinkAlpha    float64
	LineWidth    float64
	Dark         RGB
	Light        RGB
}

func DefaultParams() Params {
	return Params{
		Breakpoint:   DefaultBreakpoint,
		NarrowCount:  DefaultNarrowCount,
		WideCount:    DefaultWideCount,
		MaxSpeed:     DefaultMaxSpeed,
		MinSize:      DefaultMinSize,
		MaxSize:      DefaultMaxSize,
		MinOpacity:   DefaultMinOpacity,
		MaxOpacity:   DefaultMaxOpacity,
		LinkDistance: DefaultLinkDistance,
		LinkAlpha:    DefaultLinkAlpha,
		LineWidth:    DefaultLineWidth,
		Dark:         DarkColor,
		Light:        LightColor,
	}
}

func (p Params) Validate() error {
	if p.NarrowCount < 0 || p.WideCount < 0 {
		return fmt.Errorf("particle count must be non-negative")
	}
	if p.MaxSpeed < 0 {
		return fmt.Errorf("max speed must be non-negative, got %f", p.MaxSpeed)
	}
	if p.MinSize <= 0 || p.MaxSize < p.MinSize {
		return fmt.Errorf("invalid size range [%f, %f]", p.MinSize, p.MaxSize)
	}
	if p.MinOpacity < 0 || p.MaxOpacity > 1 || p.MaxOpacity < p.MinOpacity {
		return fmt.Errorf("invalid opacity range [%f, %f]", p.MinOpacity, p.MaxOpacity)
	}
	if p.LinkDistance <= 0 {
		return fmt.Errorf("link distance must be positive, got %f", p.LinkDistance)
	}
	if p.LinkAlpha < 0 {
		return fmt.Errorf("link alpha must be non-negative, got %f", p.LinkAlpha)
	}
	if p.LineWidth <= 0 {
		return fmt.Errorf("line width must be positive, got %f", p.LineWidth)
	}
	return nil
}

// Count is the population for a viewport of the given width.
func (p Params) Count(width float64) int {
	if width < p.Breakpoint {
		return p.NarrowCount
	}
	return p.WideCount
}

// Alpha is the link opacity at distance d: LinkAlpha at 0, fading linearly
// to zero at LinkDistance.
func (p Params) Alpha(d float64) float64 {
	if d >= p.LinkDistance {
		return 0
	}
	if d <= 0 {
		return p.LinkAlpha
	}
	return p.LinkAlpha * (1 - d/p.LinkDistance)
}

func ParticleCount(width float64) int { return DefaultParams().Count(width) }

func LinkAlpha(d float64) float64 { return DefaultParams().Alpha(d) }
