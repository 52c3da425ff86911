package layout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultVersion is the schema version assumed when a file declares none.
const DefaultVersion = "1"

// LoadFile loads and parses a YAML layout file from the given path.
func LoadFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}

	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return l, nil
}

// Parse parses YAML data into a Layout.
func Parse(data []byte) (*Layout, error) {
	var l Layout

	err := yaml.Unmarshal(data, &l)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout YAML: %w", err)
	}

	applyDefaults(&l)

	return &l, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(l *Layout) {
	if l.Version == "" {
		l.Version = DefaultVersion
	}
}

// Marshal serializes a Layout to YAML.
func Marshal(l *Layout) ([]byte, error) {
	return yaml.Marshal(l)
}

// WriteFile writes a Layout to the given path.
func WriteFile(l *Layout, path string) error {
	data, err := Marshal(l)
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write layout file %s: %w", path, err)
	}

	return nil
}

// Normalize makes every field's effective padding explicit, so a marshaled
// layout shows exactly how the codec will align each column. Invalid padding
// settings are left untouched for Validate to report.
func Normalize(l *Layout) {
	for i := range l.Fields {
		f := &l.Fields[i]

		pos, symbol, err := f.Padding()
		if err != nil || !f.Type.IsValid() {
			continue
		}

		f.PaddingPosition = pos
		f.PaddingSymbol = symbol
	}
}
