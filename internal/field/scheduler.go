package field

import (
	"sync"
	"time"
)

type acknowledger interface {
	frameDone()
}

// Ticker schedules frames at a fixed rate.
type Ticker struct {
	t *time.Ticker
}

func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		fps = 60
	}
	return &Ticker{t: time.NewTicker(time.Second / time.Duration(fps))}
}

func (t *Ticker) Frames() <-chan time.Time { return t.t.C }
func (t *Ticker) Stop()                    { t.t.Stop() }

// Manual emits a frame only when Tick is called. Tick returns once the
// frame has been drawn, which makes Run deterministic under test.
type Manual struct {
	ch   chan time.Time
	done chan struct{}
	stop chan struct{}
	once sync.Once
}

func NewManual() *Manual {
	return &Manual{
		ch:   make(chan time.Time),
		done: make(chan struct{}),
		stop: make(chan struct{}),
	}
}

func (m *Manual) Frames() <-chan time.Time { return m.ch }

func (m *Manual) Stop() { m.once.Do(func() { close(m.stop) }) }

// Tick delivers one frame and waits for it. It reports false if the
// consumer has stopped.
func (m *Manual) Tick() bool {
	select {
	case m.ch <- time.Now():
	case <-m.stop:
		return false
	}
	select {
	case <-m.done:
		return true
	case <-m.stop:
		return false
	}
}

func (m *Manual) frameDone() {
	select {
	case m.done <- struct{}{}:
	case <-m.stop:
	}
}
