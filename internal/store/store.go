package store

import (
	"errors"
	"fmt"
	"slices"

	"github.com/idilsaglam/demo/internal/ident"
	"github.com/idilsaglam/demo/internal/logger"
	"github.com/idilsaglam/demo/internal/model"
)

// Store holds the current State and mirrors todos and theme into Storage
// after each change. It is not safe for concurrent use; every call is
// expected to come from the single UI or CLI goroutine.
type Store struct {
	state   model.State
	storage Storage
	ids     ident.Generator
	log     *logger.Logger

	defaultTheme model.Theme
}

type Option func(*Store)

func WithLogger(l *logger.Logger) Option { return func(s *Store) { s.log = l } }

// WithIDs replaces the clock-derived sequence.
func WithIDs(g ident.Generator) Option { return func(s *Store) { s.ids = g } }

// WithDefaultTheme sets the theme used when storage has none.
func WithDefaultTheme(t model.Theme) Option { return func(s *Store) { s.defaultTheme = t } }

// New restores todos and theme from st. A missing or unreadable todo list
// restores as empty and is not logged.
func New(st Storage, opts ...Option) *Store {
	s := &Store{
		storage:      st,
		ids:          ident.NewSequence(),
		defaultTheme: model.ThemeLight,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.state = model.Initial()
	s.state.Todos = loadTodos(st)
	s.state.Theme = s.defaultTheme
	if raw, ok := st.Load(KeyTheme); ok {
		s.state.Theme = model.ParseTheme(raw)
	}

	if o, ok := s.ids.(interface{ Observe(int64) }); ok {
		o.Observe(model.MaxID(s.state.Todos))
	}

	s.log.WithFields(map[string]any{
		"todos": len(s.state.Todos),
		"theme": s.state.Theme.String(),
	}).Debug("state restored")
	return s
}

func loadTodos(st Storage) []model.Todo {
	raw, ok := st.Load(KeyTodos)
	if !ok {
		return []model.Todo{}
	}
	todos, err := DecodeTodos(raw)
	if err != nil || todos == nil {
		return []model.Todo{}
	}
	return todos
}

// State returns a snapshot of the current state.
func (s *Store) State() model.State {
	st := s.state
	st.Todos = slices.Clone(s.state.Todos)
	return st
}

// Dispatch applies a and then mirrors whatever changed. The state update
// always stands; a returned error only reports that storage lagged behind.
func (s *Store) Dispatch(a model.Action) error {
	if add, ok := a.(model.AddTodo); ok && add.ID == 0 {
		add.ID = s.ids.Next()
		a = add
	}

	prev := s.state
	s.state = model.Reduce(prev, a)

	if _, ok := a.(model.ResetAll); ok {
		return s.afterReset(prev)
	}
	return s.mirror(prev)
}

// Update is the functional form of Dispatch.
func (s *Store) Update(fn func(model.State) model.State) error {
	prev := s.state
	s.state = fn(s.State())
	if s.state.Todos == nil {
		s.state.Todos = []model.Todo{}
	}
	return s.mirror(prev)
}

func (s *Store) mirror(prev model.State) error {
	var errs []error
	if !slices.Equal(prev.Todos, s.state.Todos) {
		errs = append(errs, s.writeTodos())
	}
	if prev.Theme != s.state.Theme {
		errs = append(errs, s.writeTheme())
	}
	return errors.Join(errs...)
}

// afterReset removes the stored list outright instead of writing an empty one.
func (s *Store) afterReset(prev model.State) error {
	var errs []error
	if err := s.storage.Delete(KeyTodos); err != nil {
		errs = append(errs, fmt.Errorf("delete %s: %w", KeyTodos, err))
	} else {
		s.log.WithFields(map[string]any{"key": KeyTodos}).Debug("deleted")
	}
	if prev.Theme != s.state.Theme {
		errs = append(errs, s.writeTheme())
	}
	return errors.Join(errs...)
}

func (s *Store) writeTodos() error {
	raw, err := EncodeTodos(s.state.Todos)
	if err != nil {
		return err
	}
	if err := s.storage.Store(KeyTodos, raw); err != nil {
		return fmt.Errorf("store %s: %w", KeyTodos, err)
	}
	s.log.WithFields(map[string]any{"key": KeyTodos, "count": len(s.state.Todos)}).Debug("persisted")
	return nil
}

func (s *Store) writeTheme() error {
	if err := s.storage.Store(KeyTheme, s.state.Theme.String()); err != nil {
		return fmt.Errorf("store %s: %w", KeyTheme, err)
	}
	s.log.WithFields(map[string]any{"key": KeyTheme, "theme": s.state.Theme.String()}).Debug("persisted")
	return nil
}

func (s *Store) AddTodo(text string) error     { return s.Dispatch(model.AddTodo{Text: text}) }
func (s *Store) ToggleTodo(id int64) error     { return s.Dispatch(model.ToggleTodo{ID: id}) }
func (s *Store) RemoveTodo(id int64) error     { return s.Dispatch(model.RemoveTodo{ID: id}) }
func (s *Store) Increment() error              { return s.Dispatch(model.Increment{}) }
func (s *Store) Decrement() error              { return s.Dispatch(model.Decrement{}) }
func (s *Store) ResetCounter() error           { return s.Dispatch(model.ResetCounter{}) }
func (s *Store) ToggleTheme() error            { return s.Dispatch(model.ToggleTheme{}) }
func (s *Store) ResetAll() error               { return s.Dispatch(model.ResetAll{}) }
func (s *Store) SetEditText(text string) error { return s.Dispatch(model.SetEditText{Text: text}) }
