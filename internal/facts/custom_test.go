package facts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTopics(t *testing.T) {
	doc := `{"topics": [
		{"id": "tables_12", "name": "Twelves", "section": "memory", "op": "table",
		 "dimensions": [{"name": "t", "values": [12]}, {"name": "b", "min": 2, "max": 12}]},
		{"id": "sub_teens", "name": "Teens minus", "op": "sub",
		 "dimensions": [{"name": "a", "min": 11, "max": 19}, {"name": "b", "min": 2, "max": 9}],
		 "lessThan": {"less": "b", "than": "a"}}
	]}`

	topics, err := LoadTopics(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, topics, 2)

	assert.Equal(t, "tables_12", topics[0].ID)
	assert.Equal(t, SectionMemory, topics[0].Section)
	assert.Len(t, topics[0].BuildPool(), 11)

	assert.Equal(t, Section("custom"), topics[1].Section)
	assert.Len(t, topics[1].BuildPool(), 9*8)
}

func TestLoadTopics_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"missing topics", `{}`},
		{"bad id", `{"topics": [{"id": "Bad", "name": "x", "op": "square", "dimensions": [{"name": "n", "min": 1, "max": 2}]}]}`},
		{"unknown op", `{"topics": [{"id": "x", "name": "x", "op": "div", "dimensions": [{"name": "n", "min": 1, "max": 2}]}]}`},
		{"range and values", `{"topics": [{"id": "x", "name": "x", "op": "square", "dimensions": [{"name": "n", "min": 1, "max": 2, "values": [3]}]}]}`},
		{"half range", `{"topics": [{"id": "x", "name": "x", "op": "square", "dimensions": [{"name": "n", "min": 1}]}]}`},
		{"missing op field", `{"topics": [{"id": "x", "name": "x", "op": "square", "dimensions": [{"name": "m", "min": 1, "max": 2}]}]}`},
		{"shadows builtin", `{"topics": [{"id": "squares", "name": "x", "op": "square", "dimensions": [{"name": "n", "min": 1, "max": 2}]}]}`},
		{"huge range", `{"topics": [{"id": "x", "name": "x", "op": "square", "dimensions": [{"name": "n", "min": 0, "max": 1000000000000}]}]}`},
		{"inverted range", `{"topics": [{"id": "x", "name": "x", "op": "square", "dimensions": [{"name": "n", "min": 5, "max": 1}]}]}`},
		{"pool too large", `{"topics": [{"id": "x", "name": "x", "op": "mul",
			"dimensions": [{"name": "a", "min": 1, "max": 1000}, {"name": "b", "min": 1, "max": 1000}]}]}`},
		{"duplicate id", `{"topics": [
			{"id": "x", "name": "x", "op": "square", "dimensions": [{"name": "n", "min": 1, "max": 2}]},
			{"id": "x", "name": "y", "op": "square", "dimensions": [{"name": "n", "min": 1, "max": 2}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTopics(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTopicFile)
		})
	}
}
