package effects

const (
	hideAfter    = 120.0
	activeOffset = 150.0
)

// Nav hides the bar while scrolling down past the hero and shows it again
// on any upward scroll.
type Nav struct {
	lastY  float64
	hidden bool
}

func (n *Nav) Scroll(y float64) bool {
	n.hidden = y > n.lastY && y > hideAfter
	n.lastY = y
	return n.hidden
}

func (n *Nav) Hidden() bool { return n.hidden }

type Section struct {
	ID     string
	Top    float64
	Height float64
}

// ActiveSection returns the section under the scroll position plus a fixed
// look-ahead, or "" when none contains it.
func ActiveSection(sections []Section, scrollY float64) string {
	y := scrollY + activeOffset
	for _, s := range sections {
		if y >= s.Top && y < s.Top+s.Height {
			return s.ID
		}
	}
	return ""
}

// TimelineProgress is how far the viewport has travelled through the
// timeline, as a percentage in [0, 100].
func TimelineProgress(top, viewportH, totalH float64) float64 {
	if totalH <= 0 {
		return 0
	}
	pct := (viewportH - top) / totalH * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
