package effects

import (
	"math"
	"testing"
	"time"
)

func TestFollowerLerp(t *testing.T) {
	f := NewFollower()
	f.Target(100, 100)

	x, y := f.Step()
	wantX := -100 + 200*0.12
	if math.Abs(x-wantX) > 1e-9 || math.Abs(y-wantX) > 1e-9 {
		t.Errorf("expected (%f, %f), got (%f, %f)", wantX, wantX, x, y)
	}

	for i := 0; i < 200; i++ {
		f.Step()
	}
	if math.Abs(f.X-100) > 1e-6 || math.Abs(f.Y-100) > 1e-6 {
		t.Errorf("ring did not converge: (%f, %f)", f.X, f.Y)
	}
	if f.DotX != 100 {
		t.Errorf("dot should track pointer exactly, got %f", f.DotX)
	}
}

func TestFollowerVisibility(t *testing.T) {
	f := NewFollower()
	f.Leave()
	if f.Visible {
		t.Error("expected hidden after leave")
	}
	f.Enter()
	if !f.Visible {
		t.Error("expected visible after enter")
	}
}

func TestTilt(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 200, H: 100}

	tests := []struct {
		name       string
		px, py     float64
		rotX, rotY float64
	}{
		{"center", 100, 50, 0, 0},
		{"top left", 0, 0, 6, -6},
		{"bottom right", 200, 100, -6, 6},
		{"right middle", 150, 50, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tilt(r, tt.px, tt.py)
			if math.Abs(got.RotateX-tt.rotX) > 1e-9 || math.Abs(got.RotateY-tt.rotY) > 1e-9 {
				t.Errorf("got rot (%f, %f), want (%f, %f)", got.RotateX, got.RotateY, tt.rotX, tt.rotY)
			}
			if got.ShadowX != -got.RotateY*2 || got.ShadowY != got.RotateX*2 {
				t.Errorf("shadow mismatch: %+v", got)
			}
			if got.Scale != 1.02 {
				t.Errorf("expected scale 1.02, got %f", got.Scale)
			}
		})
	}

	if Tilt(Rect{}, 1, 1) != Rest() {
		t.Error("degenerate rect should rest")
	}
}

func TestMagnetic(t *testing.T) {
	dx, dy := Magnetic(Rect{X: 10, Y: 10, W: 100, H: 40}, 100, 10)
	if dx != 10 || dy != -5 {
		t.Errorf("expected (10, -5), got (%f, %f)", dx, dy)
	}
}

func TestNavScroll(t *testing.T) {
	var n Nav
	steps := []struct {
		y      float64
		hidden bool
	}{
		{50, false},
		{110, false},
		{200, true},
		{300, true},
		{250, false},
		{400, true},
	}
	for _, s := range steps {
		if got := n.Scroll(s.y); got != s.hidden {
			t.Errorf("Scroll(%v) hidden=%v, want %v", s.y, got, s.hidden)
		}
	}
}

func TestActiveSection(t *testing.T) {
	sections := []Section{
		{ID: "about", Top: 0, Height: 500},
		{ID: "skills", Top: 500, Height: 400},
		{ID: "contact", Top: 900, Height: 300},
	}
	tests := []struct {
		y    float64
		want string
	}{
		{0, "about"},
		{349, "about"},
		{350, "skills"},
		{800, "contact"},
		{1100, ""},
	}
	for _, tt := range tests {
		if got := ActiveSection(sections, tt.y); got != tt.want {
			t.Errorf("ActiveSection(%v) = %q, want %q", tt.y, got, tt.want)
		}
	}
}

func TestTimelineProgress(t *testing.T) {
	tests := []struct {
		top, vh, total float64
		want           float64
	}{
		{900, 800, 1000, 0},
		{800, 800, 1000, 0},
		{300, 800, 1000, 50},
		{-500, 800, 1000, 100},
		{0, 800, 0, 0},
	}
	for _, tt := range tests {
		if got := TimelineProgress(tt.top, tt.vh, tt.total); got != tt.want {
			t.Errorf("TimelineProgress(%v, %v, %v) = %v, want %v", tt.top, tt.vh, tt.total, got, tt.want)
		}
	}
}

func TestRevealer(t *testing.T) {
	r := NewRevealer(DefaultRevealThreshold, false,
		Element{ID: "hero"},
		Element{ID: "card", Delay: 200 * time.Millisecond},
	)

	r.Observe("hero", 0.05)
	if r.Revealed("hero") {
		t.Error("revealed below threshold")
	}

	r.Observe("hero", 0.2)
	if !r.Revealed("hero") {
		t.Error("expected immediate reveal without delay")
	}

	r.Observe("card", 0.5)
	if r.Observed("card") {
		t.Error("card should be unobserved after intersecting")
	}
	r.Advance(150 * time.Millisecond)
	if r.Revealed("card") {
		t.Error("revealed before delay elapsed")
	}
	r.Advance(50 * time.Millisecond)
	if !r.Revealed("card") {
		t.Error("expected reveal after delay")
	}

	r.Observe("missing", 1)
	if r.Revealed("missing") {
		t.Error("unknown element revealed")
	}
}

func TestRevealerReducedMotion(t *testing.T) {
	r := NewRevealer(DefaultRevealThreshold, true, Element{ID: "a", Delay: time.Second})
	if !r.Revealed("a") {
		t.Error("reduced motion should reveal everything up front")
	}
}

func TestSkillBar(t *testing.T) {
	b := NewSkillBar("kubernetes", 85, 60)

	b.Step()
	if b.Progress() != 0 {
		t.Errorf("bar moved before it was visible: %f", b.Progress())
	}

	b.Observe(0.3)
	if b.Started() {
		t.Error("started below half visibility")
	}

	b.Observe(0.6)
	for i := 0; i < 600; i++ {
		b.Step()
	}
	if math.Abs(b.Progress()-85) > 0.5 {
		t.Errorf("expected bar to settle near 85, got %f", b.Progress())
	}
}
