package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/theme"
)

func newTestModel(t *testing.T, w, h int, tweak func(*config.Config)) (Model, *theme.MemoryStore) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Seed = 3
	if tweak != nil {
		tweak(cfg)
	}
	store := &theme.MemoryStore{}
	themes := theme.NewManager(store)
	if err := themes.Init(); err != nil {
		t.Fatal(err)
	}
	m := update(New(cfg, themes), tea.WindowSizeMsg{Width: w, Height: h})
	return m, store
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// frames plays n frames 100ms apart.
func frames(m Model, n int) Model {
	base := m.last
	if base.IsZero() {
		base = time.Unix(1000, 0)
	}
	for i := 1; i <= n; i++ {
		m = update(m, frameMsg(base.Add(time.Duration(i)*100*time.Millisecond)))
	}
	return m
}

func TestResizeMountsField(t *testing.T) {
	m, _ := newTestModel(t, 100, 30, nil)
	if m.field == nil {
		t.Fatal("expected field to be mounted on first resize")
	}
	if w, h := m.field.Size(); w != 800 || h != 480 {
		t.Errorf("expected 800x480 field, got %vx%v", w, h)
	}
	if n := len(m.field.Particles()); n != 50 {
		t.Errorf("expected 50 particles at 800px, got %d", n)
	}

	m = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = frames(m, 1)
	if w, h := m.field.Size(); w != 960 || h != 640 {
		t.Errorf("resize not applied on next frame, got %vx%v", w, h)
	}
	if n := len(m.field.Particles()); n != 50 {
		t.Errorf("resize must not repopulate, got %d particles", n)
	}
}

func TestNarrowTerminalUsesFewerParticles(t *testing.T) {
	m, _ := newTestModel(t, 80, 24, nil)
	if n := len(m.field.Particles()); n != 25 {
		t.Errorf("expected 25 particles at 640px, got %d", n)
	}
}

func TestThemeToggle(t *testing.T) {
	m, store := newTestModel(t, 100, 30, nil)
	if m.themes.Get() != theme.Dark || m.palette.Name != "dark" {
		t.Fatalf("expected dark default, got %v", m.themes.Get())
	}

	m = update(m, key("t"))
	if m.themes.Get() != theme.Light || m.palette.Name != "light" {
		t.Errorf("expected light after toggle, got %v", m.themes.Get())
	}
	if mode, ok, _ := store.Load(); !ok || mode != theme.Light {
		t.Errorf("toggle not persisted: %v %v", mode, ok)
	}

	m = frames(m, 1)
	if m.field.Color() != m.field.Params().Light {
		t.Error("field should pick up the light colour on the next frame")
	}
}

func TestScrollAndNav(t *testing.T) {
	m, _ := newTestModel(t, 100, 30, nil)

	m = update(m, key("k"))
	if m.scroll != 0 {
		t.Errorf("scroll should clamp at 0, got %d", m.scroll)
	}

	m = update(m, key("j"))
	if m.scroll != 1 {
		t.Errorf("expected scroll 1, got %d", m.scroll)
	}
	if m.nav.Hidden() {
		t.Error("nav should stay visible within the first 120px")
	}

	m = update(m, key("G"))
	limit := len(m.layout().lines) - m.bodyRows()
	if m.scroll != limit {
		t.Errorf("expected scroll %d at bottom, got %d", limit, m.scroll)
	}
	if !m.nav.Hidden() {
		t.Error("nav should hide when scrolling down past 120px")
	}

	m = update(m, key("k"))
	if m.nav.Hidden() {
		t.Error("nav should show on upward scroll")
	}

	m = update(m, tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if m.scroll != limit-4 {
		t.Errorf("expected wheel to scroll 3 rows, got %d", m.scroll)
	}
}

func TestJumpToSectionActivatesNav(t *testing.T) {
	m, _ := newTestModel(t, 100, 30, nil)
	if got := m.activeSection(m.layout()); got != secHero {
		t.Errorf("expected hero active at top, got %q", got)
	}

	m = update(m, key("2"))
	p := m.layout()
	if m.scroll != int(p.section(secAbout).Top) {
		t.Errorf("expected scroll at about section, got %d", m.scroll)
	}
	if got := m.activeSection(p); got == secHero {
		t.Error("hero should no longer be active")
	}
}

func TestRevealOnScroll(t *testing.T) {
	m, _ := newTestModel(t, 100, 30, nil)
	if !m.reveal.Revealed(secHero) {
		t.Error("hero has no delay and should reveal immediately")
	}
	if m.reveal.Revealed(secContact) {
		t.Fatal("contact is off screen and should not be revealed")
	}

	m = update(m, key("G"))
	m = frames(m, 6)
	if !m.reveal.Revealed(secContact) {
		t.Error("contact should reveal after its delay once in view")
	}
}

func TestReducedMotionRevealsEverything(t *testing.T) {
	m, _ := newTestModel(t, 100, 30, func(c *config.Config) { c.Effects.ReducedMotion = true })
	for _, id := range sectionOrder {
		if !m.reveal.Revealed(id) {
			t.Errorf("%s should be revealed with reduced motion", id)
		}
	}
}

func TestSkillBarsAnimateWhenVisible(t *testing.T) {
	m, _ := newTestModel(t, 100, 10, nil)
	m = frames(m, 3)
	for _, b := range m.bars {
		if b.Started() {
			t.Fatalf("%s started before it was visible", b.Name)
		}
	}

	m = update(m, key("3"))
	m = frames(m, 10)
	for _, b := range m.bars {
		if !b.Started() || b.Progress() <= 0 {
			t.Errorf("%s should be animating, progress %v", b.Name, b.Progress())
		}
	}
}

func TestMouseDrivesFollower(t *testing.T) {
	m, _ := newTestModel(t, 100, 30, nil)
	m = update(m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion})
	if m.cursor.DotX != 84 || m.cursor.DotY != 88 {
		t.Errorf("expected dot at cell centre (84, 88), got (%v, %v)", m.cursor.DotX, m.cursor.DotY)
	}

	m = frames(m, 1)
	if m.cursor.X <= -100 || m.cursor.X >= 84 {
		t.Errorf("follower should ease toward the pointer, at %v", m.cursor.X)
	}

	m = update(m, tea.BlurMsg{})
	if m.cursor.Visible {
		t.Error("blur should hide the follower")
	}
	m = update(m, tea.FocusMsg{})
	if !m.cursor.Visible {
		t.Error("focus should show the follower")
	}
}

func TestTerminalTypesOverTime(t *testing.T) {
	m, _ := newTestModel(t, 100, 30, nil)
	if len(m.term.Lines()) != 0 {
		t.Fatal("nothing should be typed before the start delay")
	}
	m = frames(m, 20)
	if len(m.term.Lines()) == 0 {
		t.Error("expected typed lines after two seconds")
	}
}

func TestViewFillsScreen(t *testing.T) {
	m, _ := newTestModel(t, 100, 30, nil)
	m = frames(m, 2)

	v := m.View()
	if got := strings.Count(v, "\n"); got != 29 {
		t.Errorf("expected 30 rows, got %d", got+1)
	}
	for _, want := range []string{"home", "contact", "q quit"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, 100, 30, nil)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
