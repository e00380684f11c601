package cli

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"

	"github.com/idilsaglam/demo/internal/model"
	"github.com/idilsaglam/demo/internal/ui"
)

// maxTextWidth caps a todo's text in the ls table, in terminal cells.
const maxTextWidth = 80

// filterRows returns the indexes of todos whose text fuzzy-matches pattern,
// in list order. An empty pattern keeps everything.
func filterRows(todos []model.Todo, pattern string) []int {
	rows := make([]int, 0, len(todos))
	if pattern == "" {
		for i := range todos {
			rows = append(rows, i)
		}
		return rows
	}

	texts := make([]string, len(todos))
	for i, t := range todos {
		texts[i] = t.Text
	}
	for _, m := range fuzzy.Find(pattern, texts) {
		rows = append(rows, m.Index)
	}
	slices.Sort(rows)
	return rows
}

func renderTable(todos []model.Todo, rows []int, group bool, p ui.Palette) string {
	title := lipgloss.NewStyle().Bold(true)
	success := lipgloss.NewStyle().Foreground(p.Success)
	accent := lipgloss.NewStyle().Foreground(p.Accent)
	muted := lipgloss.NewStyle().Foreground(p.Muted)

	d, pend := model.Stats(todos)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		title.Render("Todos"),
		success.Render("✔"), d,
		muted.Render("•"), pend,
		accent.Render("Total"), len(todos),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, muted.Render(ui.ProgressBar(d, d+pend, 28)))
	lines = append(lines, "")

	if group {
		lines = append(lines, groupLines(todos, rows, p)...)
	} else {
		lines = append(lines, flatLines(todos, rows, p)...)
	}
	lines = append(lines, "")
	lines = append(lines, muted.Render("Tip: add with `demo add \"Buy milk\"`"))
	return ui.Panel(lines, p)
}

func flatLines(todos []model.Todo, rows []int, p ui.Palette) []string {
	muted := lipgloss.NewStyle().Foreground(p.Muted)
	if len(rows) == 0 {
		return []string{muted.Render("No todos yet.")}
	}

	done := lipgloss.NewStyle().Foreground(p.Muted).Strikethrough(true)
	check := lipgloss.NewStyle().Foreground(p.Success)
	out := make([]string, 0, len(rows))
	for _, i := range rows {
		t := todos[i]
		idx := fmt.Sprintf("%2d.", i+1)
		box := muted.Render(p.BoxUnchecked)
		text := runewidth.Truncate(t.Text, maxTextWidth, "...")
		if t.Done {
			box = check.Render(p.BoxChecked)
			text = done.Render(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s", muted.Render(idx), box, text))
	}
	return out
}

func groupLines(todos []model.Todo, rows []int, p ui.Palette) []string {
	accent := lipgloss.NewStyle().Foreground(p.Accent)
	muted := lipgloss.NewStyle().Foreground(p.Muted)

	var pend, done []int
	for _, i := range rows {
		if todos[i].Done {
			done = append(done, i)
		} else {
			pend = append(pend, i)
		}
	}

	var lines []string
	lines = append(lines, accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(todos, pend, p)...)
	}
	lines = append(lines, "")
	lines = append(lines, accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(todos, done, p)...)
	}
	return lines
}
