package metrics

import (
	"sync"

	"github.com/san-kum/folio/internal/field"
)

// Collector observes a field, feeding its metrics and keeping the per-frame
// history that gets written to a trace.
type Collector struct {
	mu      sync.Mutex
	metrics []Metric
	history []field.FrameStats
	limit   int
}

// NewCollector keeps at most limit frames of history; zero keeps everything.
func NewCollector(limit int, ms ...Metric) *Collector {
	return &Collector{metrics: ms, limit: limit}
}

func (c *Collector) OnFrame(s field.FrameStats) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, m := range c.metrics {
		m.Observe(s)
	}
	c.history = append(c.history, s)
	if c.limit > 0 && len(c.history) > c.limit {
		c.history = c.history[len(c.history)-c.limit:]
	}
}

func (c *Collector) Values() map[string]float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]float64, len(c.metrics))
	for _, m := range c.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

func (c *Collector) History() []field.FrameStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]field.FrameStats, len(c.history))
	copy(out, c.history)
	return out
}

func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, m := range c.metrics {
		m.Reset()
	}
	c.history = c.history[:0]
}
