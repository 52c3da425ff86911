package layout

import (
	"flatfile-codec/internal/common"
	"flatfile-codec/padding"
)

// Layout represents the root of a YAML layout definition file.
type Layout struct {
	// Version of the layout schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Name identifies the layout in diagnostics.
	Name string `yaml:"name,omitempty"`

	// RowEnd is appended after every encoded row (e.g. "\n").
	RowEnd string `yaml:"rowEnd,omitempty"`

	// Fields is the ordered list of columns.
	Fields []FieldSpec `yaml:"fields"`
}

// FieldType is the declared type of a field.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeInteger FieldType = "integer"
	TypeFloat   FieldType = "float"
	TypeDate    FieldType = "date"
)

// SupportedTypes lists every FieldType in declaration order.
var SupportedTypes = []FieldType{TypeString, TypeInteger, TypeFloat, TypeDate}

// IsValid returns true if the type is a recognized value.
func (t FieldType) IsValid() bool {
	switch t {
	case TypeString, TypeInteger, TypeFloat, TypeDate:
		return true
	default:
		return false
	}
}

// IsNumeric returns true for integer and float.
func (t FieldType) IsNumeric() bool {
	return t == TypeInteger || t == TypeFloat
}

// DefaultPadding returns the natural alignment of the type: numbers are
// right-aligned, text and dates left-aligned.
func (t FieldType) DefaultPadding() padding.Position {
	if t.IsNumeric() {
		return padding.Start
	}

	return padding.End
}

// DateFormat controls how date fields are rendered and parsed.
// YAML formats supported:
//   - Pattern only: "%Y%m%d"
//   - Full: {utc: true, dateFormat: "%Y-%m-%d"}
type DateFormat struct {
	// UTC converts the value to UTC before formatting, and parses in UTC.
	UTC bool `yaml:"utc,omitempty"`

	// DateFormat is a strftime pattern. Empty means ISO-8601.
	DateFormat string `yaml:"dateFormat,omitempty"`
}

// Enum maps raw fixed-width keys to decoded values. Keys are matched exactly
// and case-sensitively; values may be nil.
type Enum map[string]any

// Keys returns the accepted raw keys in ascending order.
func (e Enum) Keys() []string {
	return common.SortedKeys(e)
}

// Lookup returns the decoded value for a raw key.
func (e Enum) Lookup(raw string) (any, bool) {
	v, ok := e[raw]
	return v, ok
}

// FieldSpec describes one fixed-width column.
type FieldSpec struct {
	// Name is the row key; unique within a layout.
	Name string `yaml:"name"`

	// Size is the exact width in characters.
	Size int `yaml:"size"`

	// Type selects coercion and default alignment.
	Type FieldType `yaml:"type"`

	// PaddingPosition overrides the type's default alignment.
	PaddingPosition padding.Position `yaml:"paddingPosition,omitempty"`

	// PaddingSymbol is the fill character (default space).
	PaddingSymbol string `yaml:"paddingSymbol,omitempty"`

	// Enum restricts decoded raw values to a fixed set of keys.
	Enum Enum `yaml:"enum,omitempty"`

	// Precision is the number of implied decimal digits (float only).
	Precision int `yaml:"precision,omitempty"`

	// DotNotation writes a literal decimal point with Precision digits
	// instead of a scaled integer (float only).
	DotNotation bool `yaml:"dotNotation,omitempty"`

	// Format controls date rendering (date only).
	Format *DateFormat `yaml:"format,omitempty"`

	// Straight rejects non-string values instead of stringifying them
	// (string only, encode-time).
	Straight bool `yaml:"straight,omitempty"`
}

// Padding resolves the effective padding position and symbol of the field.
func (f FieldSpec) Padding() (padding.Position, string, error) {
	pos, err := padding.PositionOrDefault(f.PaddingPosition, f.Type.DefaultPadding())
	if err != nil {
		return "", "", err
	}

	symbol, err := padding.SymbolOrDefault(f.PaddingSymbol)
	if err != nil {
		return "", "", err
	}

	return pos, symbol, nil
}

// EffectivePrecision returns the implied decimal digits used by the codec.
// Integers always use 0.
func (f FieldSpec) EffectivePrecision() int {
	if f.Type != TypeFloat || f.Precision < 0 {
		return 0
	}

	return f.Precision
}

// HasEnum returns true if the field declares an enum.
func (f FieldSpec) HasEnum() bool {
	return len(f.Enum) > 0
}

// Width returns the record width of specs: the sum of all field sizes.
func Width(specs []FieldSpec) int {
	total := 0
	for _, f := range specs {
		total += f.Size
	}

	return total
}

// Width returns the record width of the layout.
func (l *Layout) Width() int {
	return Width(l.Fields)
}

// Field returns the spec with the given name.
func (l *Layout) Field(name string) (*FieldSpec, bool) {
	for i := range l.Fields {
		if l.Fields[i].Name == name {
			return &l.Fields[i], true
		}
	}

	return nil, false
}

// Names returns the field names in layout order.
func (l *Layout) Names() []string {
	names := make([]string, len(l.Fields))
	for i, f := range l.Fields {
		names[i] = f.Name
	}

	return names
}

// Offsets returns the start offset of every field: the running sum of the
// sizes before it.
func Offsets(specs []FieldSpec) []int {
	offsets := make([]int, len(specs))

	cursor := 0
	for i, f := range specs {
		offsets[i] = cursor
		cursor += f.Size
	}

	return offsets
}
