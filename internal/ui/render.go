package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/demo/internal/model"
)

const (
	defaultWidth     = 72
	inputPlaceholder = "Add a todo..."
	emptyMessage     = "No todos yet."
)

// Options carries view-only details that are not part of the state.
type Options struct {
	// Width of the container in cells. Zero uses a default.
	Width int
	// Cursor is the highlighted todo index; negative hides it.
	Cursor int
	// InputFocused marks the draft field as active.
	InputFocused bool
	// Input replaces the default rendering of State.EditText, e.g. with a
	// live text input view.
	Input string
	// Help is appended under the container.
	Help string
}

// Render maps the state to the screen. It never touches the state.
func Render(s model.State, opt Options) string {
	p := PaletteFor(s.Theme)
	st := newStyles(p)

	width := opt.Width
	if width <= 0 {
		width = defaultWidth
	}
	inner := width - st.container.GetHorizontalFrameSize()
	if inner < 20 {
		inner = 20
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(s, st, inner),
		st.section.Render("Counter"),
		renderCounter(s, st),
		st.section.Render("Todos"),
		renderForm(s, st, opt, inner),
		renderList(s, st, p, opt, inner),
	)

	out := st.app.Render(st.container.Width(inner + st.container.GetHorizontalPadding()).Render(body))
	if opt.Help != "" {
		out += "\n" + st.muted.Render(opt.Help)
	}
	return out
}

func renderHeader(s model.State, st styles, width int) string {
	toggle := "Toggle Dark"
	if s.Theme.IsDark() {
		toggle = "Toggle Light"
	}
	title := st.title.Render("Demo App")
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		st.button.Render(toggle+" (t)"),
		" ",
		st.button.Render("Reset (R)"),
	)
	gap := width - lipgloss.Width(title) - lipgloss.Width(buttons)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + buttons
}

func renderCounter(s model.State, st styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		st.button.Render("-1 (-)"),
		st.counter.Render(strconv.Itoa(s.Counter)),
		st.button.Render("+1 (+)"),
		" ",
		st.button.Render("Reset (0)"),
	)
}

func renderForm(s model.State, st styles, opt Options, width int) string {
	add := st.button
	if opt.InputFocused {
		add = st.active
	}
	addBtn := add.Render("Add (enter)")

	field := opt.Input
	if field == "" {
		field = s.EditText
		if field == "" {
			field = st.muted.Render(inputPlaceholder)
		}
	}
	fieldWidth := width - lipgloss.Width(addBtn) - 1 - st.input.GetHorizontalFrameSize()
	if fieldWidth < 10 {
		fieldWidth = 10
	}
	box := st.input.Width(fieldWidth + st.input.GetHorizontalPadding()).Render(field)
	return lipgloss.JoinHorizontal(lipgloss.Center, box, " ", addBtn)
}

func renderList(s model.State, st styles, p Palette, opt Options, width int) string {
	if len(s.Todos) == 0 {
		return st.muted.Render(emptyMessage)
	}

	rows := make([]string, 0, len(s.Todos))
	for i, t := range s.Todos {
		prefix := "  "
		if i == opt.Cursor && !opt.InputFocused {
			prefix = st.check.Render(p.Cursor) + " "
		}

		box := st.muted.Render(p.BoxUnchecked)
		text := st.text.Render(t.Text)
		if t.Done {
			box = st.check.Render(p.BoxChecked)
			text = st.done.Render(t.Text)
		}
		left := prefix + box + " " + text

		remove := st.button.Render("Remove")
		gap := width - lipgloss.Width(left) - lipgloss.Width(remove)
		if gap < 1 {
			gap = 1
		}
		rows = append(rows, left+strings.Repeat(" ", gap)+remove)
	}
	return strings.Join(rows, "\n")
}
