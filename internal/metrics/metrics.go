package metrics

import "github.com/san-kum/folio/internal/field"

type Metric interface {
	Name() string
	Observe(s field.FrameStats)
	Value() float64
	Reset()
}

// Defaults is the metric set recorded for every trace.
func Defaults() []Metric {
	return []Metric{
		NewLinks(),
		NewSpeed(),
		NewBounces(),
		NewContainment(),
	}
}
