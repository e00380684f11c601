package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/demo/internal/model"
)

func TestEncodeTodos(t *testing.T) {
	raw, err := EncodeTodos([]model.Todo{{ID: 1700000000000, Text: "Buy milk", Done: true}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1700000000000,"text":"Buy milk","done":true}]`, raw)

	raw, err = EncodeTodos(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestDecodeTodos(t *testing.T) {
	todos, err := DecodeTodos(`[{"id":2,"text":"b","done":false},{"id":1,"text":"a","done":true}]`)
	require.NoError(t, err)
	assert.Equal(t, []model.Todo{{ID: 2, Text: "b"}, {ID: 1, Text: "a", Done: true}}, todos)

	todos, err = DecodeTodos(`[]`)
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestDecodeTodos_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "nope"},
		{"object", `{"todos":[]}`},
		{"null", "null"},
		{"missing done", `[{"id":1,"text":"a"}]`},
		{"string id", `[{"id":"1","text":"a","done":false}]`},
		{"numeric text", `[{"id":1,"text":5,"done":false}]`},
		{"fractional id", `[{"id":1.5,"text":"a","done":false}]`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeTodos(tc.raw)
			assert.Error(t, err)
		})
	}
}
