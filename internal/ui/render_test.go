package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/demo/internal/model"
)

func TestRender_EmptyLightState(t *testing.T) {
	out := Render(model.Initial(), Options{Cursor: -1})

	assert.Contains(t, out, "Demo App")
	assert.Contains(t, out, "Toggle Dark")
	assert.Contains(t, out, "Reset (R)")
	assert.Contains(t, out, "Counter")
	assert.Contains(t, out, "Todos")
	assert.Contains(t, out, inputPlaceholder)
	assert.Contains(t, out, emptyMessage)
	assert.NotContains(t, out, "Remove")
}

func TestRender_DarkThemeLabel(t *testing.T) {
	s := model.Initial()
	s.Theme = model.ThemeDark

	out := Render(s, Options{})
	assert.Contains(t, out, "Toggle Light")
	assert.NotContains(t, out, "Toggle Dark")
}

func TestRender_TodosAndCounter(t *testing.T) {
	s := model.Initial()
	s.Counter = -3
	s.Todos = []model.Todo{
		{ID: 2, Text: "Walk dog", Done: true},
		{ID: 1, Text: "Buy milk"},
	}

	out := Render(s, Options{Cursor: 1})
	assert.Contains(t, out, "-3")
	assert.Contains(t, out, "Walk dog")
	assert.Contains(t, out, "Buy milk")
	assert.Equal(t, 2, strings.Count(out, "Remove"))
	assert.Contains(t, out, lightPalette.BoxChecked)
	assert.Contains(t, out, lightPalette.BoxUnchecked)
	assert.NotContains(t, out, emptyMessage)

	lines := strings.Split(out, "\n")
	var cursorLine string
	for _, ln := range lines {
		if strings.Contains(ln, lightPalette.Cursor) {
			cursorLine = ln
		}
	}
	assert.Contains(t, cursorLine, "Buy milk")
}

func TestRender_DraftAndInputOverride(t *testing.T) {
	s := model.Initial()
	s.EditText = "half typed"

	out := Render(s, Options{})
	assert.Contains(t, out, "half typed")
	assert.NotContains(t, out, inputPlaceholder)

	out = Render(s, Options{Input: "> live view", InputFocused: true})
	assert.Contains(t, out, "> live view")
	assert.NotContains(t, out, "half typed")
}

func TestRender_HelpAndWidth(t *testing.T) {
	out := Render(model.Initial(), Options{Width: 60, Help: "q quit"})
	assert.True(t, strings.HasSuffix(out, "q quit"))

	body := strings.TrimSuffix(out, "\n"+"q quit")
	assert.LessOrEqual(t, lipgloss.Width(body), 60+8)
}

func TestRender_IsPure(t *testing.T) {
	s := model.Initial()
	s.Todos = []model.Todo{{ID: 1, Text: "a"}}
	before := s.Todos[0]

	_ = Render(s, Options{Cursor: 0})
	assert.Equal(t, before, s.Todos[0])
}

func TestPaletteFor(t *testing.T) {
	assert.Equal(t, lightPalette, PaletteFor(model.ThemeLight))
	assert.Equal(t, darkPalette, PaletteFor(model.ThemeDark))
	assert.NotEqual(t, PaletteFor(model.ThemeLight).Background, PaletteFor(model.ThemeDark).Background)
}
