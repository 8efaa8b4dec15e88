package metrics

import "github.com/san-kum/folio/internal/field"

// Links is the mean number of connecting lines drawn per frame.
type Links struct {
	name    string
	total   int
	samples int
}

func NewLinks() *Links {
	return &Links{name: "links"}
}

func (l *Links) Name() string { return l.name }

func (l *Links) Observe(s field.FrameStats) {
	l.total += s.Links
	l.samples++
}

func (l *Links) Value() float64 {
	if l.samples == 0 {
		return 0
	}
	return float64(l.total) / float64(l.samples)
}

func (l *Links) Reset() {
	l.total = 0
	l.samples = 0
}
