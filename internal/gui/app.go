package gui

import (
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/effects"
	"github.com/san-kum/folio/internal/field"
	"github.com/san-kum/folio/internal/metrics"
	"github.com/san-kum/folio/internal/theme"
	"github.com/san-kum/folio/internal/viz"
)

const (
	windowW = 1280
	windowH = 720
	title   = "folio"
)

// windowViewport reports the framebuffer size and forwards raylib's
// resize events to its listeners.
type windowViewport struct {
	listeners []func(w, h float64)
}

func (v *windowViewport) Size() (float64, float64) {
	return float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
}

func (v *windowViewport) OnResize(fn func(w, h float64)) {
	v.listeners = append(v.listeners, fn)
}

func (v *windowViewport) poll() {
	if !rl.IsWindowResized() {
		return
	}
	w, h := v.Size()
	for _, fn := range v.listeners {
		fn(w, h)
	}
}

type App struct {
	cfg      *config.Config
	themes   *theme.Manager
	surface  *Surface
	viewport *windowViewport
	field    *field.Field
	stats    *metrics.Collector
	cursor   *effects.Follower

	showStats bool
	text      rl.Color
}

func initWindow(fps int) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(windowW, windowH, title)
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(rl.KeyQ)
}

func NewApp(cfg *config.Config, themes *theme.Manager) *App {
	a := &App{
		cfg:      cfg,
		themes:   themes,
		surface:  NewSurface(rl.Black),
		viewport: &windowViewport{},
		stats:    metrics.NewCollector(1, metrics.Defaults()...),
		cursor:   effects.NewFollower(),
	}
	a.cursor.Factor = cfg.Effects.FollowFactor
	a.applyTheme()

	opts := append(cfg.FieldOptions(), field.WithObserver(a.stats))
	a.field = field.Mount(a.surface, a.viewport, themes.Get, opts...)
	return a
}

func (a *App) applyTheme() {
	p := viz.PaletteFor(a.themes.Get())
	a.surface.SetBackground(hexColor(string(p.Background)))
	a.text = hexColor(string(p.Muted))
}

// Run opens the window and blocks until it is closed. The render loop is
// the field's frame scheduler.
func Run(cfg *config.Config, themes *theme.Manager) {
	initWindow(cfg.FPS)
	defer rl.CloseWindow()

	NewApp(cfg, themes).RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	a.viewport.poll()

	if rl.IsKeyPressed(rl.KeyT) {
		if _, err := a.themes.Toggle(); err != nil {
			log.Printf("gui: %v", err)
		}
		a.applyTheme()
	}
	if rl.IsKeyPressed(rl.KeyS) {
		a.showStats = !a.showStats
	}

	if rl.IsCursorOnScreen() {
		a.cursor.Enter()
		m := rl.GetMousePosition()
		a.cursor.Target(float64(m.X), float64(m.Y))
	} else {
		a.cursor.Leave()
	}
	a.cursor.Step()
}

func (a *App) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	if a.field == nil {
		rl.ClearBackground(a.surface.bg)
		return
	}
	a.field.Frame()

	if a.cursor.Visible {
		c := toColor(a.field.Color().Alpha(0.5))
		rl.DrawCircleLines(int32(a.cursor.X), int32(a.cursor.Y), 16, c)
		rl.DrawCircleV(rl.NewVector2(float32(a.cursor.DotX), float32(a.cursor.DotY)), 3, c)
	}

	if a.showStats {
		v := a.stats.Values()
		line := fmt.Sprintf("%s  %d fps  links %.0f  speed %.2f  bounces %.0f",
			a.themes.Get(), rl.GetFPS(), v["links"], v["mean_speed"], v["bounces"])
		rl.DrawText(line, 12, 12, 16, a.text)
	}
	rl.DrawText("t theme  s stats  q quit", 12, int32(rl.GetScreenHeight())-24, 14, a.text)
}
