package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/folio/internal/effects"
	"github.com/san-kum/folio/internal/terminal"
	"github.com/san-kum/folio/internal/viz"
)

const (
	maxContentWidth = 76
	minContentWidth = 24
	navRows         = 1
	footerRows      = 1
	cursorBlink     = 530 // ms
	buttonLabel     = "[ get in touch ]"
)

// page is the scrollable document. Sections are measured in rows; the
// effects package works in pixels, so callers scale by viz.CellH.
type page struct {
	lines    []string
	sections []effects.Section
	margin   int
}

func (p page) section(id string) effects.Section {
	for _, s := range p.sections {
		if s.ID == id {
			return s
		}
	}
	return effects.Section{}
}

func (m Model) contentWidth() int {
	w := min(m.width-4, maxContentWidth)
	return max(w, minContentWidth)
}

func (m Model) bodyRows() int {
	return max(m.height-navRows-footerRows, 1)
}

// px converts a cell rectangle in page coordinates into screen pixels.
func (m Model) px(col, row, w, h int) effects.Rect {
	return effects.Rect{
		X: float64(col * viz.CellW),
		Y: float64((row - m.scroll + navRows) * viz.CellH),
		W: float64(w * viz.CellW),
		H: float64(h * viz.CellH),
	}
}

func (m Model) layout() page {
	cw := m.contentWidth()
	p := page{margin: max((m.width-cw)/2, 0)}

	add := func(block string) {
		p.lines = append(p.lines, strings.Split(block, "\n")...)
	}
	section := func(id string, build func()) {
		top := len(p.lines)
		build()
		add("")
		if m.reveal != nil && !m.reveal.Revealed(id) {
			for i := top; i < len(p.lines); i++ {
				p.lines[i] = ""
			}
		}
		p.sections = append(p.sections, effects.Section{ID: id, Top: float64(top), Height: float64(len(p.lines) - top)})
	}

	section(secHero, func() { m.hero(&p, add, cw) })
	section(secAbout, func() {
		add(m.styles.Title.Render("about"))
		add(m.styles.Text.Width(cw).Render(about))
	})
	section(secSkills, func() {
		add(m.styles.Title.Render("skills"))
		for _, b := range m.bars {
			add(m.skillRow(b, cw))
		}
	})
	section(secExperience, func() {
		add(m.styles.Title.Render("experience"))
		m.timeline(&p, add)
	})
	section(secContact, func() {
		add(m.styles.Title.Render("contact"))
		for _, c := range contacts {
			add(m.styles.Muted.Render(fmt.Sprintf("%-10s", c.label)) + m.styles.Text.Render(c.value))
		}
	})
	return p
}

func (m Model) hero(p *page, add func(string), cw int) {
	add("")
	add(viz.GradientText(profileName, m.palette.Accent, m.palette.AccentAlt))
	add(m.styles.Muted.Render(profileTitle))
	add("")

	panel := m.styles.Panel
	lean := 0
	rows := len(terminal.DefaultScript) + 2
	r := m.px(p.margin, len(p.lines), cw, rows)
	if r.Contains(m.mouseX, m.mouseY) {
		t := effects.Tilt(r, m.mouseX, m.mouseY)
		panel = panel.BorderForeground(m.palette.Accent)
		if math.Abs(t.RotateY) > 3 {
			lean = int(math.Copysign(1, t.RotateY))
		}
	}
	body := m.terminalLines(cw - 4)
	block := panel.Width(cw - 2).Render(strings.Join(body, "\n"))
	for _, line := range strings.Split(block, "\n") {
		add(strings.Repeat(" ", 1+lean) + line)
	}
	add("")

	shift := 0
	bw := lipgloss.Width(buttonLabel)
	br := m.px(p.margin, len(p.lines), bw, 1)
	if br.Contains(m.mouseX, m.mouseY) {
		dx, _ := effects.Magnetic(br, m.mouseX, m.mouseY)
		shift = int(math.Round(dx / viz.CellW))
	}
	add(strings.Repeat(" ", max(2+shift, 0)) + m.styles.Title.Render(buttonLabel))
}

// terminalLines renders the typed session padded to the full script
// height so the layout does not shift while it plays.
func (m Model) terminalLines(width int) []string {
	out := make([]string, 0, len(terminal.DefaultScript))
	if m.term != nil {
		for _, l := range m.term.Lines() {
			out = append(out, m.terminalLine(l, width))
		}
	}
	for len(out) < len(terminal.DefaultScript) {
		out = append(out, "")
	}
	return out
}

func (m Model) terminalLine(l terminal.Line, width int) string {
	if l.Output {
		return m.styles.Output.Render(truncate(l.Text, width))
	}
	s := m.styles.Prompt.Render(l.Prompt) + m.styles.Text.Render(truncate(l.Text, width-len(l.Prompt)-1))
	if l.Cursor && m.term.CursorVisible() && (m.elapsed.Milliseconds()/cursorBlink)%2 == 0 {
		s += m.styles.Cursor.Render(" ")
	}
	return s
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return s
}

func (m Model) skillRow(b *effects.SkillBar, cw int) string {
	label := m.styles.Text.Render(fmt.Sprintf("%-14s", b.Name))
	pct := m.styles.Muted.Render(fmt.Sprintf(" %3.0f%%", b.Progress()))
	return label + m.styles.ProgressBar(b.Progress()/100, max(cw-20, 4)) + pct
}

// timeline draws the roles beside a rail that fills as the section scrolls
// through the viewport.
func (m Model) timeline(p *page, add func(string)) {
	top := len(p.lines)
	rows := len(roles) * 2
	progress := effects.TimelineProgress(
		float64((top-m.scroll)*viz.CellH),
		float64(m.bodyRows()*viz.CellH),
		float64(rows*viz.CellH),
	)

	rail := func(i int) string {
		if float64(i)/float64(rows)*100 < progress {
			return m.styles.Prompt.Render("┃ ")
		}
		return m.styles.Muted.Render("│ ")
	}
	for i, r := range roles {
		add(rail(2*i) + m.styles.Muted.Render(fmt.Sprintf("%-12s", r.period)) + m.styles.Text.Bold(true).Render(r.title))
		add(rail(2*i+1) + strings.Repeat(" ", 12) + m.styles.Muted.Render(r.summary))
	}
}
