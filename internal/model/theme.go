package model

import "strings"

// Theme selects the palette used by the renderer.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps a stored or configured value to a Theme.
// Anything other than "dark" yields ThemeLight.
func ParseTheme(s string) Theme {
	if strings.EqualFold(strings.TrimSpace(s), string(ThemeDark)) {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle flips light and dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) IsDark() bool { return t == ThemeDark }

func (t Theme) String() string { return string(t) }
