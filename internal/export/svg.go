package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/folio/internal/field"
)

// SVG records the draw calls of a frame as SVG elements. Each full clear
// starts a new picture, so after Step(n) it holds the nth frame.
type SVG struct {
	width, height float64
	background    string
	elems         []string
}

func NewSVG(background string) *SVG {
	return &SVG{background: background}
}

func (s *SVG) Context2D() field.Surface { return s }

func (s *SVG) Resize(w, h float64) {
	s.width, s.height = w, h
}

func (s *SVG) ClearRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= s.width && y+h >= s.height {
		s.elems = s.elems[:0]
		return
	}
	fill := s.background
	if fill == "" {
		fill = "none"
	}
	s.elems = append(s.elems, fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`, x, y, w, h, fill))
}

func (s *SVG) FillCircle(x, y, r float64, c field.RGBA) {
	s.elems = append(s.elems, fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.2f" fill="%s"/>`, x, y, r, c.CSS()))
}

func (s *SVG) StrokeLine(x0, y0, x1, y1, width float64, c field.RGBA) {
	s.elems = append(s.elems, fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%g"/>`,
		x0, y0, x1, y1, c.CSS(), width))
}

func (s *SVG) Elements() int { return len(s.elems) }

func (s *SVG) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, s.width, s.height, s.width, s.height))
	if s.background != "" {
		sb.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s"/>
`, s.background))
	}
	for _, e := range s.elems {
		sb.WriteString(e)
		sb.WriteByte('\n')
	}
	sb.WriteString("</svg>")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}
