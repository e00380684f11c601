package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/demo/internal/logger"
	"github.com/idilsaglam/demo/internal/model"
	"github.com/idilsaglam/demo/internal/store"
	"github.com/idilsaglam/demo/internal/ui"
)

// Model is the Bubble Tea model for the demo screen. All state lives in the
// store; the model only adds view concerns (cursor, focus, size).
type Model struct {
	store *store.Store
	log   *logger.Logger

	input  textinput.Model
	keys   keyMap
	help   help.Model
	cursor int

	width  int
	height int
}

// New builds the model around an initialized store.
func New(s *store.Store, log *logger.Logger) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Add a todo..."
	ti.CharLimit = 200
	ti.SetValue(s.State().EditText)

	return Model{
		store:  s,
		log:    log,
		input:  ti,
		keys:   defaultKeyMap(),
		help:   help.New(),
		width:  80,
		height: 24,
	}
}

func (m Model) Init() tea.Cmd { return nil }

// State exposes the store snapshot the model renders.
func (m Model) State() model.State { return m.store.State() }

// Cursor reports the highlighted todo index.
func (m Model) Cursor() int { return m.cursor }

// InputFocused reports whether keystrokes go to the draft field.
func (m Model) InputFocused() bool { return m.input.Focused() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.input.Focused() {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		m.dispatch(model.AddTodo{Text: m.store.State().EditText})
		m.input.SetValue(m.store.State().EditText)
		if len(m.store.State().Todos) > 0 {
			m.cursor = 0
		}
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.store.State().EditText {
		m.dispatch(model.SetEditText{Text: v})
	}
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	todos := m.store.State().Todos

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Add):
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(todos)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor >= 0 && m.cursor < len(todos) {
			m.dispatch(model.ToggleTodo{ID: todos[m.cursor].ID})
		}
	case key.Matches(msg, m.keys.Remove):
		if m.cursor >= 0 && m.cursor < len(todos) {
			m.dispatch(model.RemoveTodo{ID: todos[m.cursor].ID})
			m.clampCursor()
		}
	case key.Matches(msg, m.keys.Increment):
		m.dispatch(model.Increment{})
	case key.Matches(msg, m.keys.Decrement):
		m.dispatch(model.Decrement{})
	case key.Matches(msg, m.keys.ResetCounter):
		m.dispatch(model.ResetCounter{})
	case key.Matches(msg, m.keys.ToggleTheme):
		m.dispatch(model.ToggleTheme{})
	case key.Matches(msg, m.keys.ResetAll):
		m.dispatch(model.ResetAll{})
		m.input.SetValue("")
		m.cursor = 0
	}
	return m, nil
}

// dispatch forwards to the store. Storage failures do not reach the screen;
// the state change stands and the error goes to the log.
func (m Model) dispatch(a model.Action) {
	if err := m.store.Dispatch(a); err != nil {
		m.log.Error(err, "persist state")
	}
}

func (m *Model) clampCursor() {
	n := len(m.store.State().Todos)
	if m.cursor > n-1 {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) View() string {
	opt := ui.Options{
		Width:        m.width - 4,
		Cursor:       m.cursor,
		InputFocused: m.input.Focused(),
	}
	if m.input.Focused() {
		opt.Input = m.input.View()
		opt.Help = m.help.View(inputKeyMap{keys: m.keys})
	} else {
		opt.Help = m.help.View(m.keys)
	}
	return ui.Render(m.store.State(), opt)
}

// Run starts the interactive program on the alternate screen and blocks
// until the user quits.
func Run(s *store.Store, log *logger.Logger) error {
	p := tea.NewProgram(New(s, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	log.Info("session ended")
	return nil
}
