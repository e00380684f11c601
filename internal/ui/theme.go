package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/demo/internal/model"
)

// Palette bundles the colors and symbols for one theme.
// Every renderer helper pulls from a Palette rather than a global.
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Surface    lipgloss.Color
	Shadow     lipgloss.Color
	ButtonBg   lipgloss.Color
	ButtonFg   lipgloss.Color
	InputLine  lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color

	BoxChecked, BoxUnchecked string
	Cursor                   string
}

var (
	lightPalette = Palette{
		Background: lipgloss.Color("#f7fafc"),
		Foreground: lipgloss.Color("#0b1220"),
		Surface:    lipgloss.Color("#ffffff"),
		Shadow:     lipgloss.Color("#cbd5e1"),
		ButtonBg:   lipgloss.Color("#eef2ff"),
		ButtonFg:   lipgloss.Color("#1f2937"),
		InputLine:  lipgloss.Color("#cbd5e1"),
		Muted:      lipgloss.Color("#94a3b8"),
		Accent:     lipgloss.Color("#4f46e5"),
		Success:    lipgloss.Color("#16a34a"),
		Error:      lipgloss.Color("#dc2626"),

		BoxChecked:   "☑",
		BoxUnchecked: "☐",
		Cursor:       "›",
	}
	darkPalette = Palette{
		Background: lipgloss.Color("#0f1724"),
		Foreground: lipgloss.Color("#e6eef8"),
		Surface:    lipgloss.Color("#071021"),
		Shadow:     lipgloss.Color("#020617"),
		ButtonBg:   lipgloss.Color("#1f2937"),
		ButtonFg:   lipgloss.Color("#e6eef8"),
		InputLine:  lipgloss.Color("#cbd5e1"),
		Muted:      lipgloss.Color("#94a3b8"),
		Accent:     lipgloss.Color("#a5b4fc"),
		Success:    lipgloss.Color("#4ade80"),
		Error:      lipgloss.Color("#f87171"),

		BoxChecked:   "☑",
		BoxUnchecked: "☐",
		Cursor:       "›",
	}
)

// PaletteFor returns the palette for t.
func PaletteFor(t model.Theme) Palette {
	if t.IsDark() {
		return darkPalette
	}
	return lightPalette
}

type styles struct {
	app       lipgloss.Style
	container lipgloss.Style
	title     lipgloss.Style
	section   lipgloss.Style
	button    lipgloss.Style
	active    lipgloss.Style
	counter   lipgloss.Style
	input     lipgloss.Style
	text      lipgloss.Style
	done      lipgloss.Style
	muted     lipgloss.Style
	check     lipgloss.Style
}

func newStyles(p Palette) styles {
	return styles{
		app: lipgloss.NewStyle().
			Background(p.Background).
			Foreground(p.Foreground).
			Padding(1, 2),
		container: lipgloss.NewStyle().
			Background(p.Surface).
			Foreground(p.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Shadow).
			Padding(1, 2),
		title:   lipgloss.NewStyle().Bold(true).Foreground(p.Foreground),
		section: lipgloss.NewStyle().Bold(true).Foreground(p.Foreground).MarginTop(1),
		button: lipgloss.NewStyle().
			Background(p.ButtonBg).
			Foreground(p.ButtonFg).
			Padding(0, 1),
		active: lipgloss.NewStyle().
			Background(p.Accent).
			Foreground(p.Surface).
			Padding(0, 1),
		counter: lipgloss.NewStyle().Bold(true).Width(8).Align(lipgloss.Center),
		input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.InputLine).
			Padding(0, 1),
		text:  lipgloss.NewStyle().Foreground(p.Foreground),
		done:  lipgloss.NewStyle().Foreground(p.Muted).Strikethrough(true).Faint(true),
		muted: lipgloss.NewStyle().Foreground(p.Muted),
		check: lipgloss.NewStyle().Foreground(p.Success),
	}
}
