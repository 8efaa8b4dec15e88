package metrics

import "github.com/san-kum/folio/internal/field"

type Speed struct {
	name    string
	sum     float64
	samples int
}

func NewSpeed() *Speed {
	return &Speed{name: "mean_speed"}
}

func (s *Speed) Name() string { return s.name }

func (s *Speed) Observe(st field.FrameStats) {
	s.sum += st.MeanSpeed
	s.samples++
}

func (s *Speed) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.sum / float64(s.samples)
}

func (s *Speed) Reset() {
	s.sum = 0
	s.samples = 0
}

// Bounces counts velocity reversals over the whole run.
type Bounces struct {
	name  string
	count int
}

func NewBounces() *Bounces {
	return &Bounces{name: "bounces"}
}

func (b *Bounces) Name() string               { return b.name }
func (b *Bounces) Observe(s field.FrameStats) { b.count += s.Bounces }
func (b *Bounces) Value() float64             { return float64(b.count) }
func (b *Bounces) Reset()                     { b.count = 0 }
