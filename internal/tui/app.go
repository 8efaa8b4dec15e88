package tui

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/effects"
	"github.com/san-kum/folio/internal/field"
	"github.com/san-kum/folio/internal/metrics"
	"github.com/san-kum/folio/internal/terminal"
	"github.com/san-kum/folio/internal/theme"
	"github.com/san-kum/folio/internal/viz"
)

const (
	ringRadius      = 12.0
	ringHoverRadius = 20.0
	ringSegments    = 16
	ringAlpha       = 0.5
	maxFrameGap     = 100 * time.Millisecond
)

type frameMsg time.Time

// Model is the terminal portfolio: a particle field behind a scrolling
// page, with the nav strip on top and key hints at the bottom.
type Model struct {
	cfg     *config.Config
	themes  *theme.Manager
	palette viz.Palette
	styles  viz.Styles

	surface  *viz.Surface
	viewport *field.StaticViewport
	field    *field.Field
	stats    *metrics.Collector

	term   *terminal.Sequencer
	bars   []*effects.SkillBar
	reveal *effects.Revealer
	nav    effects.Nav
	cursor *effects.Follower

	mouseX, mouseY float64
	pointer        bool
	showStats      bool

	scroll        int
	width, height int
	elapsed       time.Duration
	last          time.Time
}

func New(cfg *config.Config, themes *theme.Manager) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if themes == nil {
		themes = theme.NewManager(&theme.MemoryStore{})
		_ = themes.Init()
	}

	m := Model{
		cfg:     cfg,
		themes:  themes,
		surface: viz.NewSurface(""),
		stats:   metrics.NewCollector(1, metrics.Defaults()...),
		term:    terminal.NewSequencer(terminal.DefaultScript),
		cursor:  effects.NewFollower(),
		width:   80,
		height:  24,
	}
	m.cursor.Factor = cfg.Effects.FollowFactor

	delay := time.Duration(cfg.Effects.RevealDelayMs) * time.Millisecond
	els := make([]effects.Element, len(sectionOrder))
	for i, id := range sectionOrder {
		els[i] = effects.Element{ID: id, Delay: time.Duration(i) * delay}
	}
	m.reveal = effects.NewRevealer(effects.DefaultRevealThreshold, cfg.Effects.ReducedMotion, els...)

	for _, s := range skills {
		m.bars = append(m.bars, effects.NewSkillBar(s.name, s.level, cfg.FPS))
	}
	m.applyTheme()
	return m
}

func (m *Model) applyTheme() {
	m.palette = viz.PaletteFor(m.themes.Get())
	m.styles = m.palette.Styles()
	m.surface.SetBackground(m.palette.Background)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.FPS), func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	case tea.FocusMsg:
		m.cursor.Enter()
		return m, nil
	case tea.BlurMsg:
		m.cursor.Leave()
		return m, nil
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case frameMsg:
		m.frame(time.Time(msg))
		return m, m.tick()
	}
	return m, nil
}

// resize is the viewport resize event. The field is mounted on the first
// one so it seeds into the real window size.
func (m *Model) resize(cols, rows int) {
	m.width, m.height = cols, rows
	w, h := float64(cols*viz.CellW), float64(rows*viz.CellH)
	if m.field == nil {
		m.viewport = field.NewStaticViewport(w, h)
		opts := append(m.cfg.FieldOptions(), field.WithObserver(m.stats))
		m.field = field.Mount(m.surface, m.viewport, m.themes.Get, opts...)
	} else {
		m.viewport.SetSize(w, h)
	}
	m.clampScroll()
	m.observe()
}

func (m *Model) frame(now time.Time) {
	dt := time.Second / time.Duration(m.cfg.FPS)
	if !m.last.IsZero() {
		dt = min(now.Sub(m.last), maxFrameGap)
	}
	m.last = now
	m.elapsed += dt

	m.term.Advance(dt)
	m.reveal.Advance(dt)
	for _, b := range m.bars {
		b.Step()
	}

	m.field.Frame()
	x, y := m.cursor.Step()
	if m.pointer && m.cursor.Visible {
		m.drawRing(x, y)
	}
	m.observe()
}

// drawRing paints the cursor follower over the field; the next frame's
// clear removes it.
func (m *Model) drawRing(x, y float64) {
	r := ringRadius
	if m.cursor.Hover {
		r = ringHoverRadius
	}
	c := m.field.Color().Alpha(ringAlpha)
	for i := 0; i < ringSegments; i++ {
		a0 := 2 * math.Pi * float64(i) / ringSegments
		a1 := 2 * math.Pi * float64(i+1) / ringSegments
		m.surface.StrokeLine(x+r*math.Cos(a0), y+r*math.Sin(a0), x+r*math.Cos(a1), y+r*math.Sin(a1), 1, c)
	}
}

// observe feeds section visibility to the reveal and skill animations.
func (m *Model) observe() {
	p := m.layout()
	for _, s := range p.sections {
		ratio := m.visible(s)
		m.reveal.Observe(s.ID, ratio)
		if s.ID == secSkills {
			for _, b := range m.bars {
				b.Observe(ratio)
			}
		}
	}
}

func (m Model) visible(s effects.Section) float64 {
	if s.Height <= 0 {
		return 0
	}
	top := math.Max(s.Top, float64(m.scroll))
	bottom := math.Min(s.Top+s.Height, float64(m.scroll+m.bodyRows()))
	return math.Max(bottom-top, 0) / s.Height
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "t":
		if _, err := m.themes.Toggle(); err != nil {
			log.Printf("tui: %v", err)
		}
		m.applyTheme()
	case "down", "j":
		m.scrollBy(1)
	case "up", "k":
		m.scrollBy(-1)
	case "pgdown", " ":
		m.scrollBy(m.bodyRows() - 1)
	case "pgup":
		m.scrollBy(-(m.bodyRows() - 1))
	case "g", "home":
		m.scrollTo(0)
	case "G", "end":
		m.scrollTo(math.MaxInt32)
	case "s":
		m.showStats = !m.showStats
	case "1", "2", "3", "4", "5":
		i := int(msg.String()[0] - '1')
		m.scrollTo(int(m.layout().section(sectionOrder[i]).Top))
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		m.scrollBy(3)
		return m
	case tea.MouseButtonWheelUp:
		m.scrollBy(-3)
		return m
	}

	m.mouseX = float64(msg.X*viz.CellW + viz.CellW/2)
	m.mouseY = float64(msg.Y*viz.CellH + viz.CellH/2)
	m.pointer = true
	m.cursor.Target(m.mouseX, m.mouseY)
	m.cursor.SetHover(msg.Y < navRows && !m.nav.Hidden())
	return m
}

func (m *Model) scrollBy(n int) { m.scrollTo(m.scroll + n) }

func (m *Model) scrollTo(row int) {
	m.scroll = row
	m.clampScroll()
	m.nav.Scroll(float64(m.scroll * viz.CellH))
	m.observe()
}

func (m *Model) clampScroll() {
	limit := max(len(m.layout().lines)-m.bodyRows(), 0)
	m.scroll = min(max(m.scroll, 0), limit)
}

func (m Model) View() string {
	p := m.layout()
	out := make([]string, 0, m.height)

	nav := ""
	if !m.nav.Hidden() {
		nav = m.navStrip(p)
	}
	out = append(out, m.composite(0, nav, p.margin))

	for i := 0; i < m.bodyRows(); i++ {
		fg := ""
		if j := m.scroll + i; j < len(p.lines) {
			fg = p.lines[j]
		}
		out = append(out, m.composite(navRows+i, fg, p.margin))
	}

	out = append(out, m.composite(navRows+m.bodyRows(), m.footer(), p.margin))
	return strings.Join(out, "\n")
}

// composite overlays fg on one row of the field, starting at col.
func (m Model) composite(row int, fg string, col int) string {
	if fg == "" {
		return m.surface.RenderSpan(row, 0, m.width)
	}
	w := lipgloss.Width(fg)
	return m.surface.RenderSpan(row, 0, col) + fg + m.surface.RenderSpan(row, col+w, m.width)
}

func (m Model) activeSection(p page) string {
	px := make([]effects.Section, len(p.sections))
	for i, s := range p.sections {
		px[i] = effects.Section{ID: s.ID, Top: s.Top * viz.CellH, Height: s.Height * viz.CellH}
	}
	return effects.ActiveSection(px, float64(m.scroll*viz.CellH))
}

func (m Model) navStrip(p page) string {
	active := m.activeSection(p)
	links := make([]string, 0, len(sectionOrder))
	for _, id := range sectionOrder {
		if id == active {
			links = append(links, m.styles.NavActive.Render(id))
		} else {
			links = append(links, m.styles.NavLink.Render(id))
		}
	}
	return strings.Join(links, "")
}

func (m Model) footer() string {
	hint := m.styles.KeyHint.Render("j/k scroll  1-5 jump  t theme  s stats  q quit")
	if !m.showStats {
		return hint
	}
	v := m.stats.Values()
	return hint + m.styles.Muted.Render(fmt.Sprintf("   %s  links %.0f  speed %.2f  bounces %.0f",
		m.themes.Get(), v["links"], v["mean_speed"], v["bounces"]))
}

// Run starts the portfolio in the alternate screen with mouse motion and
// focus reporting, which drive the cursor follower.
func Run(cfg *config.Config, themes *theme.Manager) error {
	p := tea.NewProgram(New(cfg, themes),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
