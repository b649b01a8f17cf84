package facts

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// topicFileSchema describes a custom topic file:
//
//	{"topics": [{"id": "tables_12", "name": "Twelves", "op": "table",
//	  "dimensions": [{"name": "t", "values": [12]}, {"name": "b", "min": 2, "max": 12}]}]}
const topicFileSchema = `{
  "type": "object",
  "required": ["topics"],
  "additionalProperties": false,
  "properties": {
    "topics": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "op", "dimensions"],
        "additionalProperties": false,
        "properties": {
          "id": {"type": "string", "pattern": "^[a-z0-9_]+$"},
          "name": {"type": "string", "minLength": 1},
          "section": {"type": "string"},
          "description": {"type": "string"},
          "op": {"enum": ["add", "sub", "complement10", "tens_minus", "mul", "table", "square", "cube"]},
          "dimensions": {
            "type": "array",
            "minItems": 1,
            "items": {
              "type": "object",
              "required": ["name"],
              "additionalProperties": false,
              "properties": {
                "name": {"type": "string", "pattern": "^[a-z]+$"},
                "min": {"type": "integer", "minimum": -1000000, "maximum": 1000000},
                "max": {"type": "integer", "minimum": -1000000, "maximum": 1000000},
                "values": {"type": "array", "minItems": 1, "maxItems": 10000,
                  "items": {"type": "integer", "minimum": -1000000, "maximum": 1000000}}
              },
              "oneOf": [
                {"required": ["values"]},
                {"required": ["min", "max"]}
              ]
            }
          },
          "lessThan": {
            "type": "object",
            "required": ["less", "than"],
            "additionalProperties": false,
            "properties": {
              "less": {"type": "string"},
              "than": {"type": "string"}
            }
          }
        }
      }
    }
  }
}`

const topicFileSchemaURL = "schema://topic-file.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func topicSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(topicFileSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse topic file schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(topicFileSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(topicFileSchemaURL)
	})
	return compiledSchema, compileErr
}

type topicFile struct {
	Topics []topicEntry `json:"topics"`
}

type topicEntry struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Section     string      `json:"section"`
	Description string      `json:"description"`
	Op          Op          `json:"op"`
	Dimensions  []Dimension `json:"dimensions"`
	LessThan    *Constraint `json:"lessThan"`
}

// LoadTopics reads a custom topic file. The document is validated against the
// topic file schema, then each topic is checked with ValidateTopic. Custom IDs
// must not shadow built-in topics or repeat within the file.
func LoadTopics(r io.Reader) ([]Topic, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %v", ErrInvalidTopicFile, err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrInvalidTopicFile, err)
	}
	schema, err := topicSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTopicFile, err)
	}

	var doc topicFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidTopicFile, err)
	}

	topics := make([]Topic, 0, len(doc.Topics))
	seen := make(map[string]bool, len(doc.Topics))
	for _, e := range doc.Topics {
		if _, builtin := Lookup(e.ID); builtin || seen[e.ID] {
			return nil, fmt.Errorf("%w: duplicate topic id %q", ErrInvalidTopicFile, e.ID)
		}
		seen[e.ID] = true

		section := Section(e.Section)
		if section == "" {
			section = "custom"
		}
		t := Topic{
			ID:          e.ID,
			Name:        e.Name,
			Section:     section,
			Description: e.Description,
			Op:          e.Op,
			Pool:        TopicConfig{Dimensions: e.Dimensions, LessThan: e.LessThan},
		}
		if err := ValidateTopic(t); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTopicFile, err)
		}
		topics = append(topics, t)
	}
	return topics, nil
}
