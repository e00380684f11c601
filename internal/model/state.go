package model

import "strings"

// State is everything the demo holds in memory.
// Todos is ordered newest first and must be treated as immutable;
// Reduce always builds a fresh slice when the list changes.
type State struct {
	Counter  int
	Todos    []Todo
	Theme    Theme
	EditText string
}

// Initial returns the state of a fresh session with nothing restored.
func Initial() State {
	return State{Todos: []Todo{}, Theme: ThemeLight}
}

// Action is a single user interaction. The set is closed.
// ResetAll clears the counter, the list and the draft but keeps the theme.
type Action interface{ action() }

type (
	// AddTodo prepends a todo built from Text. A blank Text is a no-op.
	AddTodo struct {
		ID   int64
		Text string
	}
	ToggleTodo   struct{ ID int64 }
	RemoveTodo   struct{ ID int64 }
	Increment    struct{}
	Decrement    struct{}
	ResetCounter struct{}
	ToggleTheme  struct{}
	SetTheme     struct{ Theme Theme }
	SetEditText  struct{ Text string }
	ResetAll     struct{}
)

func (AddTodo) action()      {}
func (ToggleTodo) action()   {}
func (RemoveTodo) action()   {}
func (Increment) action()    {}
func (Decrement) action()    {}
func (ResetCounter) action() {}
func (ToggleTheme) action()  {}
func (SetTheme) action()     {}
func (SetEditText) action()  {}
func (ResetAll) action()     {}

// Reduce computes the next state. It never modifies s.Todos.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case AddTodo:
		text := strings.TrimSpace(a.Text)
		if text == "" {
			return s
		}
		next := make([]Todo, 0, len(s.Todos)+1)
		next = append(next, Todo{ID: a.ID, Text: text})
		s.Todos = append(next, s.Todos...)
		s.EditText = ""
	case ToggleTodo:
		i := IndexOf(s.Todos, a.ID)
		if i < 0 {
			return s
		}
		next := make([]Todo, len(s.Todos))
		copy(next, s.Todos)
		next[i] = next[i].Toggled()
		s.Todos = next
	case RemoveTodo:
		if IndexOf(s.Todos, a.ID) < 0 {
			return s
		}
		next := make([]Todo, 0, len(s.Todos)-1)
		for _, t := range s.Todos {
			if t.ID != a.ID {
				next = append(next, t)
			}
		}
		s.Todos = next
	case Increment:
		s.Counter++
	case Decrement:
		s.Counter--
	case ResetCounter:
		s.Counter = 0
	case ToggleTheme:
		s.Theme = s.Theme.Toggle()
	case SetTheme:
		s.Theme = ParseTheme(string(a.Theme))
	case SetEditText:
		s.EditText = a.Text
	case ResetAll:
		s.Todos = []Todo{}
		s.Counter = 0
		s.EditText = ""
	}
	return s
}
