package layout

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// --- DateFormat YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for DateFormat.
// Accepts either a bare pattern string or a {utc, dateFormat} map.
func (d *DateFormat) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var pattern string

		err := node.Decode(&pattern)
		if err != nil {
			return err
		}

		*d = DateFormat{DateFormat: pattern}

		return nil

	case yaml.MappingNode:
		// Alias type drops the methods so Decode does not recurse.
		type plain DateFormat

		var p plain

		err := node.Decode(&p)
		if err != nil {
			return err
		}

		*d = DateFormat(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected date pattern or {utc, dateFormat} map", node.Line)
	}
}

// MarshalYAML implements custom YAML marshaling for DateFormat.
// Outputs the bare pattern when UTC is not set.
func (d DateFormat) MarshalYAML() (any, error) {
	if !d.UTC && d.DateFormat != "" {
		return d.DateFormat, nil
	}

	type plain DateFormat

	return plain(d), nil
}

// --- FieldType YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for FieldType.
// Unknown names are kept as-is so Validate can suggest a correction.
func (t *FieldType) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: field type must be a string, got %v", node.Line, node.Kind)
	}

	*t = FieldType(node.Value)

	return nil
}

// --- Enum YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for Enum.
// Keys are always taken verbatim, so "01" and "1" stay distinct.
// Accepts:
//   - Map: {"01": pending, "02": done}
//   - List of keys decoding to themselves: ["A", "B"]
func (e *Enum) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		out := make(Enum, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: enum keys must be scalars", keyNode.Line)
			}

			var val any

			err := valNode.Decode(&val)
			if err != nil {
				return fmt.Errorf("enum key %q: %w", keyNode.Value, err)
			}

			out[keyNode.Value] = val
		}

		*e = out

		return nil

	case yaml.SequenceNode:
		out := make(Enum, len(node.Content))

		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: enum list items must be scalars", item.Line)
			}

			out[item.Value] = item.Value
		}

		*e = out

		return nil

	default:
		return fmt.Errorf("line %d: expected enum map or list, got %v", node.Line, node.Kind)
	}
}
