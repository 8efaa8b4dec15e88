package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/folio/internal/field"
)

// Surface draws straight into the current raylib frame. It must only be
// used between rl.BeginDrawing and rl.EndDrawing.
type Surface struct {
	w, h float64
	bg   rl.Color
}

func NewSurface(bg rl.Color) *Surface {
	return &Surface{bg: bg}
}

func (s *Surface) Context2D() field.Surface { return s }

func (s *Surface) SetBackground(bg rl.Color) { s.bg = bg }

// Resize only records the size; the window owns the framebuffer.
func (s *Surface) Resize(w, h float64) {
	s.w, s.h = w, h
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= s.w && y+h >= s.h {
		rl.ClearBackground(s.bg)
		return
	}
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), s.bg)
}

func (s *Surface) FillCircle(x, y, r float64, c field.RGBA) {
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), float32(r), toColor(c))
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c field.RGBA) {
	rl.DrawLineEx(
		rl.NewVector2(float32(x0), float32(y0)),
		rl.NewVector2(float32(x1), float32(y1)),
		float32(width),
		toColor(c),
	)
}

func toColor(c field.RGBA) rl.Color {
	return rl.ColorAlpha(rl.NewColor(c.R, c.G, c.B, 255), float32(c.A))
}

// hexColor converts a palette colour, falling back to black.
func hexColor(hex string) rl.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return rl.Black
	}
	r, g, b := c.RGB255()
	return rl.NewColor(r, g, b, 255)
}
