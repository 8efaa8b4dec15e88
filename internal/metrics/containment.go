package metrics

import "github.com/san-kum/folio/internal/field"

// Containment is the fraction of particle-frames drawn inside the surface.
// Overshoot frames lower it briefly. Particles stranded outside by a
// shrinking viewport stay there, so they lower it for the rest of the run.
type Containment struct {
	name    string
	outside int
	samples int
}

func NewContainment() *Containment {
	return &Containment{name: "containment"}
}

func (c *Containment) Name() string {
	return c.name
}

func (c *Containment) Observe(s field.FrameStats) {
	c.samples += s.Particles
	c.outside += s.OutOfBounds
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.outside)/float64(c.samples)
}

func (c *Containment) Reset() {
	c.outside = 0
	c.samples = 0
}
