package store

import (
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/idilsaglam/demo/internal/model"
)

const todosSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "text", "done"],
    "properties": {
      "id":   {"type": "number"},
      "text": {"type": "string"},
      "done": {"type": "boolean"}
    }
  }
}`

var todosValidator = jsonschema.MustCompileString("todos.schema.json", todosSchema)

// EncodeTodos serializes the list the way it is kept under KeyTodos.
func EncodeTodos(todos []model.Todo) (string, error) {
	if todos == nil {
		todos = []model.Todo{}
	}
	b, err := json.Marshal(todos)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(b), nil
}

// DecodeTodos parses a stored list, rejecting anything that is not an array
// of {id, text, done} records.
func DecodeTodos(raw string) ([]model.Todo, error) {
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if err := todosValidator.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate todos: %w", err)
	}
	var todos []model.Todo
	if err := json.Unmarshal([]byte(raw), &todos); err != nil {
		return nil, fmt.Errorf("decode todos: %w", err)
	}
	return todos, nil
}
