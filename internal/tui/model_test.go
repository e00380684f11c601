package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/demo/internal/model"
	"github.com/idilsaglam/demo/internal/store"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func newTestModel(t *testing.T) (Model, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	return New(store.New(mem), nil), mem
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
}

func TestUpdate_CounterKeys(t *testing.T) {
	m, mem := newTestModel(t)
	m = send(t, m, runes("+"), runes("+"), runes("="), runes("-"))
	assert.Equal(t, 2, m.State().Counter)

	m = send(t, m, runes("0"))
	assert.Equal(t, 0, m.State().Counter)
	assert.Empty(t, mem.Snapshot(), "counter never persists")
}

func TestUpdate_AddTodoThroughInput(t *testing.T) {
	m, mem := newTestModel(t)

	m = send(t, m, runes("a"))
	require.True(t, m.InputFocused())

	m = send(t, m, runes("Buy milk"))
	assert.Equal(t, "Buy milk", m.State().EditText)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	st := m.State()
	require.Len(t, st.Todos, 1)
	assert.Equal(t, "Buy milk", st.Todos[0].Text)
	assert.Empty(t, st.EditText)
	assert.Empty(t, m.input.Value())
	assert.True(t, m.InputFocused(), "focus stays for the next entry")

	_, ok := mem.Load(store.KeyTodos)
	assert.True(t, ok)
}

func TestUpdate_BlankSubmitIsNoop(t *testing.T) {
	m, mem := newTestModel(t)

	m = send(t, m, runes("a"), runes("   "), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.State().Todos)
	assert.Equal(t, "   ", m.State().EditText)
	assert.Empty(t, mem.Snapshot())
}

func TestUpdate_InputSwallowsShortcuts(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, runes("a"), runes("q+t"))
	assert.Equal(t, "q+t", m.State().EditText)
	assert.Equal(t, 0, m.State().Counter)
	assert.Equal(t, model.ThemeLight, m.State().Theme)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.False(t, m.InputFocused())
	assert.Equal(t, "q+t", m.State().EditText, "draft survives leaving the field")
}

func TestUpdate_ToggleRemoveAndCursor(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m,
		runes("a"), runes("first"), tea.KeyMsg{Type: tea.KeyEnter},
		runes("second"), tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyEscape},
	)
	require.Len(t, m.State().Todos, 2)
	assert.Equal(t, 0, m.Cursor())

	m = send(t, m, runes("j"))
	assert.Equal(t, 1, m.Cursor())
	m = send(t, m, runes("j"))
	assert.Equal(t, 1, m.Cursor(), "cursor stops at the last row")

	m = send(t, m, runes("x"))
	assert.True(t, m.State().Todos[1].Done)
	assert.Equal(t, "first", m.State().Todos[1].Text)

	m = send(t, m, runes("d"))
	require.Len(t, m.State().Todos, 1)
	assert.Equal(t, "second", m.State().Todos[0].Text)
	assert.Equal(t, 0, m.Cursor())

	m = send(t, m, runes("k"), runes("d"), runes("d"))
	assert.Empty(t, m.State().Todos)
	assert.Equal(t, 0, m.Cursor())
}

func TestUpdate_ThemeAndResetAll(t *testing.T) {
	m, mem := newTestModel(t)
	m = send(t, m, runes("a"), runes("task"), tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEscape})
	m = send(t, m, runes("t"), runes("+"))

	v, _ := mem.Load(store.KeyTheme)
	assert.Equal(t, "dark", v)

	m = send(t, m, runes("R"))
	st := m.State()
	assert.Equal(t, 0, st.Counter)
	assert.Empty(t, st.Todos)
	assert.Empty(t, st.EditText)
	assert.Equal(t, model.ThemeDark, st.Theme)
	_, ok := mem.Load(store.KeyTodos)
	assert.False(t, ok)
}

func TestUpdate_Quit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_HelpToggle(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "reset counter")
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 90, Height: 30})

	out := m.View()
	assert.Contains(t, out, "Demo App")
	assert.Contains(t, out, "No todos yet.")
	assert.Contains(t, out, "quit")

	m = send(t, m, runes("a"))
	out = m.View()
	assert.Contains(t, out, "leave input")
}
