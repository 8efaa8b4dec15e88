package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/folio/internal/theme"
)

// Palette is the colour scheme for one theme mode.
type Palette struct {
	Name       string
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	AccentAlt  lipgloss.Color
	Border     lipgloss.Color
}

var (
	PaletteDark = Palette{
		Name:       "dark",
		Background: lipgloss.Color("#0b0f14"),
		Surface:    lipgloss.Color("#111827"),
		Text:       lipgloss.Color("#e5e7eb"),
		Muted:      lipgloss.Color("#6b7280"),
		Accent:     lipgloss.Color("#34d399"), // emerald 400
		AccentAlt:  lipgloss.Color("#22d3ee"),
		Border:     lipgloss.Color("#1f2937"),
	}

	PaletteLight = Palette{
		Name:       "light",
		Background: lipgloss.Color("#f8fafc"),
		Surface:    lipgloss.Color("#ffffff"),
		Text:       lipgloss.Color("#0f172a"),
		Muted:      lipgloss.Color("#64748b"),
		Accent:     lipgloss.Color("#10b981"), // emerald 500
		AccentAlt:  lipgloss.Color("#0891b2"),
		Border:     lipgloss.Color("#cbd5e1"),
	}
)

func PaletteFor(mode theme.Mode) Palette {
	if mode == theme.Dark {
		return PaletteDark
	}
	return PaletteLight
}
