package effects

import "github.com/charmbracelet/harmonica"

const skillThreshold = 0.5

// SkillBar springs from empty to its level the first time it is at least
// half visible.
type SkillBar struct {
	Name  string
	Level float64

	spring   harmonica.Spring
	pos, vel float64
	started  bool
}

func NewSkillBar(name string, level float64, fps int) *SkillBar {
	if fps <= 0 {
		fps = 60
	}
	return &SkillBar{
		Name:   name,
		Level:  level,
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

func (b *SkillBar) Observe(ratio float64) {
	if ratio >= skillThreshold {
		b.started = true
	}
}

func (b *SkillBar) Started() bool { return b.started }

func (b *SkillBar) Step() float64 {
	if !b.started {
		return b.pos
	}
	b.pos, b.vel = b.spring.Update(b.pos, b.vel, b.Level)
	return b.pos
}

// Progress is the drawn fill, clamped to [0, 100].
func (b *SkillBar) Progress() float64 {
	switch {
	case b.pos < 0:
		return 0
	case b.pos > 100:
		return 100
	}
	return b.pos
}
