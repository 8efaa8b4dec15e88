package effects

import "time"

const DefaultRevealThreshold = 0.1

type Element struct {
	ID    string
	Delay time.Duration
}

type revealState struct {
	delay     time.Duration
	remaining time.Duration
	observed  bool
	pending   bool
	revealed  bool
}

// Revealer fades elements in once they scroll into view. Each element is
// observed until it first intersects, then revealed after its own delay.
type Revealer struct {
	threshold float64
	items     map[string]*revealState
}

func NewRevealer(threshold float64, reducedMotion bool, els ...Element) *Revealer {
	r := &Revealer{
		threshold: threshold,
		items:     make(map[string]*revealState, len(els)),
	}
	for _, el := range els {
		st := &revealState{delay: el.Delay, observed: !reducedMotion}
		if reducedMotion {
			st.revealed = true
		}
		r.items[el.ID] = st
	}
	return r
}

// Observe reports the visible fraction of an element.
func (r *Revealer) Observe(id string, ratio float64) {
	st, ok := r.items[id]
	if !ok || !st.observed || ratio < r.threshold {
		return
	}
	st.observed = false
	st.pending = true
	st.remaining = st.delay
	if st.remaining <= 0 {
		st.pending, st.revealed = false, true
	}
}

func (r *Revealer) Advance(dt time.Duration) {
	for _, st := range r.items {
		if !st.pending {
			continue
		}
		st.remaining -= dt
		if st.remaining <= 0 {
			st.pending, st.revealed = false, true
		}
	}
}

func (r *Revealer) Revealed(id string) bool {
	st, ok := r.items[id]
	return ok && st.revealed
}

func (r *Revealer) Observed(id string) bool {
	st, ok := r.items[id]
	return ok && st.observed
}
