package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
)

// JSON-backed key-value storage. Single file, human-readable, portable.
// The whole namespace is read at Open and rewritten on every change.
// No locking; one process owns the file for the length of a session.

const (
	dataDirName  = ".demo"
	dataFileName = "storage.json"
)

// DefaultPath returns ~/.demo/storage.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, dataDirName, dataFileName), nil
}

// File is a string namespace persisted as one JSON object.
type File struct {
	path   string
	values map[string]string
}

// Open loads the namespace at path. A missing file is an empty namespace.
func Open(path string) (*File, error) {
	f := &File{path: path, values: map[string]string{}}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	if len(b) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(b, &f.values); err != nil {
		return nil, fmt.Errorf("json unmarshal %s: %w", path, err)
	}
	if f.values == nil {
		f.values = map[string]string{}
	}
	return f, nil
}

// Path reports the backing file.
func (f *File) Path() string { return f.path }

func (f *File) Load(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *File) Store(key, value string) error {
	next := maps.Clone(f.values)
	next[key] = value
	if err := f.save(next); err != nil {
		return err
	}
	f.values = next
	return nil
}

// Delete removes key. Deleting an absent key still succeeds.
func (f *File) Delete(key string) error {
	if _, ok := f.values[key]; !ok {
		return nil
	}
	next := maps.Clone(f.values)
	delete(next, key)
	if err := f.save(next); err != nil {
		return err
	}
	f.values = next
	return nil
}

func (f *File) save(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	b, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename file: %w", err)
	}
	return nil
}
