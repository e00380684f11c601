package store

import "maps"

// Keys under which the bridge mirrors state.
const (
	KeyTodos = "todos"
	KeyTheme = "theme"
)

// Storage is a string key-value namespace. Load never fails; a backend that
// can fail to read does so when it is opened.
type Storage interface {
	Load(key string) (string, bool)
	Store(key, value string) error
	Delete(key string) error
}

// Memory is an in-process Storage. It backs --ephemeral sessions and tests.
type Memory struct {
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

// NewMemoryFrom seeds a Memory with a copy of values.
func NewMemoryFrom(values map[string]string) *Memory {
	m := NewMemory()
	maps.Copy(m.values, values)
	return m
}

func (m *Memory) Load(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Store(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	delete(m.values, key)
	return nil
}

// Snapshot returns a copy of everything stored.
func (m *Memory) Snapshot() map[string]string {
	return maps.Clone(m.values)
}
