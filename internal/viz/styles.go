package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

type Styles struct {
	Title     lipgloss.Style
	Panel     lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Prompt    lipgloss.Style
	Output    lipgloss.Style
	Cursor    lipgloss.Style
	NavLink   lipgloss.Style
	NavActive lipgloss.Style
	BarFill   lipgloss.Style
	BarEmpty  lipgloss.Style
	KeyHint   lipgloss.Style
}

func (p Palette) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		Text:      lipgloss.NewStyle().Foreground(p.Text),
		Muted:     lipgloss.NewStyle().Foreground(p.Muted),
		Prompt:    lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Output:    lipgloss.NewStyle().Foreground(p.Muted),
		Cursor:    lipgloss.NewStyle().Background(p.Accent),
		NavLink:   lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1),
		NavActive: lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Underline(true).Padding(0, 1),
		BarFill:   lipgloss.NewStyle().Foreground(p.Accent),
		BarEmpty:  lipgloss.NewStyle().Foreground(p.Border),
		KeyHint:   lipgloss.NewStyle().Foreground(p.Muted).Italic(true),
	}
}

// GradientText colours each rune along a gradient between two colours.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	a, err := colorful.Hex(string(start))
	if err != nil {
		return text
	}
	b, err := colorful.Hex(string(end))
	if err != nil {
		return text
	}

	var result strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := a.BlendLab(b, t).Clamped()
		result.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return result.String()
}

// ProgressBar renders percent (0..1) of width cells.
func (s Styles) ProgressBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(percent*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return s.BarFill.Render(strings.Repeat("█", filled)) + s.BarEmpty.Render(strings.Repeat("░", width-filled))
}

func (s Styles) Separator(width int) string {
	if width < 7 {
		return s.Muted.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.Muted.Render(left + " ◆ " + right)
}
