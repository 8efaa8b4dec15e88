package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/folio/internal/field"
)

// Terminal cells are treated as CellW x CellH pixels, so each braille dot
// covers a (CellW/2) x (CellH/4) patch of the field.
const (
	CellW = 8
	CellH = 16

	// canvas alphas are tuned for a bright monitor; a terminal cell needs
	// more gain before a 0.08 link shows at all.
	defaultGain     = 2.5
	minVisibleAlpha = 0.01
)

// Surface is a field.Surface that rasterises onto a braille canvas and
// tints each cell by the strongest colour drawn into it.
type Surface struct {
	canvas *Canvas
	w, h   float64
	alpha  [][]float64
	tint   [][]field.RGB
	bg     colorful.Color
	gain   float64
	styles map[string]lipgloss.Style
}

func NewSurface(bg lipgloss.Color) *Surface {
	s := &Surface{gain: defaultGain, styles: make(map[string]lipgloss.Style)}
	s.SetBackground(bg)
	s.Resize(0, 0)
	return s
}

// Context2D lets the surface double as its own field.Canvas.
func (s *Surface) Context2D() field.Surface { return s }

func (s *Surface) SetBackground(bg lipgloss.Color) {
	c, err := colorful.Hex(string(bg))
	if err != nil {
		c = colorful.Color{}
	}
	s.bg = c
	s.styles = make(map[string]lipgloss.Style)
}

func (s *Surface) Resize(w, h float64) {
	cols := int(math.Ceil(w / CellW))
	rows := int(math.Ceil(h / CellH))
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	s.w, s.h = w, h
	s.canvas = NewCanvas(cols, rows)
	s.alpha = make([][]float64, rows)
	s.tint = make([][]field.RGB, rows)
	for i := range s.alpha {
		s.alpha[i] = make([]float64, cols)
		s.tint[i] = make([]field.RGB, cols)
	}
}

// Cells reports the canvas size in terminal cells.
func (s *Surface) Cells() (cols, rows int) {
	return s.canvas.Width, s.canvas.Height
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	c0 := max(int(math.Floor(x/CellW)), 0)
	r0 := max(int(math.Floor(y/CellH)), 0)
	c1 := min(int(math.Ceil((x+w)/CellW)), s.canvas.Width)
	r1 := min(int(math.Ceil((y+h)/CellH)), s.canvas.Height)

	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			s.canvas.Grid[r][c] = blank
			s.alpha[r][c] = 0
		}
	}
}

func (s *Surface) FillCircle(x, y, r float64, c field.RGBA) {
	cx, cy := s.dot(x, y)
	s.plot(cx, cy, c)

	// radii beyond a dot's footprint fill the neighbouring dots too
	rx := int(r / (CellW / 2))
	ry := int(r / (CellH / 4))
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			s.plot(cx+dx, cy+dy, c)
		}
	}
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, _ float64, c field.RGBA) {
	if c.A < minVisibleAlpha {
		return
	}
	ax, ay := s.dot(x0, y0)
	bx, by := s.dot(x1, y1)
	bresenham(ax, ay, bx, by, func(x, y int) { s.plot(x, y, c) })
}

func (s *Surface) dot(x, y float64) (int, int) {
	return int(math.Floor(x / (CellW / 2))), int(math.Floor(y / (CellH / 4)))
}

func (s *Surface) plot(x, y int, c field.RGBA) {
	col, row, ok := s.canvas.Set(x, y)
	if !ok {
		return
	}
	// source-over accumulation
	a := s.alpha[row][col]
	s.alpha[row][col] = a + c.A*(1-a)
	s.tint[row][col] = c.RGB
}

// Cell returns the braille rune and the blended colour at a cell.
func (s *Surface) Cell(col, row int) (rune, colorful.Color) {
	if row < 0 || row >= s.canvas.Height || col < 0 || col >= s.canvas.Width {
		return blank, s.bg
	}
	t := s.tint[row][col]
	fg := colorful.Color{R: float64(t.R) / 255, G: float64(t.G) / 255, B: float64(t.B) / 255}
	return s.canvas.Grid[row][col], s.bg.BlendRgb(fg, math.Min(1, s.alpha[row][col]*s.gain))
}

func (s *Surface) style(hex string) lipgloss.Style {
	st, ok := s.styles[hex]
	if !ok {
		st = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
		s.styles[hex] = st
	}
	return st
}

// Render draws the canvas with per-cell colours; blank cells are spaces.
func (s *Surface) Render() string {
	var b strings.Builder
	for row := 0; row < s.canvas.Height; row++ {
		b.WriteString(s.RenderSpan(row, 0, s.canvas.Width))
		if row < s.canvas.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// RenderSpan draws cells [from, to) of one row. Columns past the canvas
// render as spaces so callers can composite text over any terminal width.
func (s *Surface) RenderSpan(row, from, to int) string {
	var b strings.Builder
	for col := max(from, 0); col < to; col++ {
		if row < 0 || row >= s.canvas.Height || col >= s.canvas.Width {
			b.WriteByte(' ')
			continue
		}
		r, c := s.Cell(col, row)
		if r == blank {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(s.style(c.Hex()).Render(string(r)))
	}
	return b.String()
}
