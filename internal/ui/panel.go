package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a Unicode progress bar with a done/total suffix.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel frames lines in a rounded box drawn in the palette's shadow color.
func Panel(lines []string, p Palette) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Shadow).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// OK prints a success line.
func OK(w io.Writer, p Palette, msg string) {
	fmt.Fprintln(w, lipgloss.NewStyle().Foreground(p.Success).Render("✔ "+msg))
}

// Fail prints an error line.
func Fail(w io.Writer, p Palette, msg string) {
	fmt.Fprintln(w, lipgloss.NewStyle().Foreground(p.Error).Bold(true).Render("✖ "+msg))
}

// Hint prints a muted follow-up line.
func Hint(w io.Writer, p Palette, msg string) {
	fmt.Fprintln(w, lipgloss.NewStyle().Foreground(p.Muted).Render(msg))
}
