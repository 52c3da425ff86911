package codec

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"flatfile-codec/errors"
	"flatfile-codec/layout"
)

// ParseLine decodes one fixed-width line into a Row. When expectedLength is
// positive the line must be exactly that many characters long; zero or a
// negative value skips the check. A line shorter than the specs yields
// empty slices for the missing fields.
func ParseLine(line string, specs []layout.FieldSpec, expectedLength int) (Row, error) {
	if err := checkLength(line, expectedLength); err != nil {
		return nil, err
	}

	if err := layout.Check(specs); err != nil {
		return nil, err
	}

	return parseFields(line, specs)
}

// ParseLineAs decodes one line into T. See ParseLine.
func ParseLineAs[T any](line string, specs []layout.FieldSpec, expectedLength int) (T, error) {
	row, err := ParseLine(line, specs, expectedLength)
	if err != nil {
		var zero T
		return zero, err
	}

	return bindRow[T](row, specs)
}

// LinesToData decodes every line, in order. Every line must be as long as
// the sum of the field sizes; see ReadOptions for skipping lines that are
// not. A nil opts selects DefaultReadOptions.
func LinesToData(lines []string, specs []layout.FieldSpec, opts *ReadOptions) ([]Row, error) {
	if err := layout.Check(specs); err != nil {
		return nil, err
	}

	o := readOptionsOrDefault(opts)
	expected := layout.Width(specs)
	rows := make([]Row, 0, len(lines))

	for i, line := range lines {
		err := checkLength(line, expected)
		if err != nil {
			if !o.SkipLengthMismatch {
				return nil, err
			}

			Logger().Debug("skipping line",
				zap.Int("line", i+1),
				zap.Int("length", utf8.RuneCountInString(line)),
				zap.Int("expected", expected))

			if o.OnSkip != nil {
				o.OnSkip(i+1, line, err)
			}

			continue
		}

		row, err := parseFields(line, specs)
		if err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// LinesToDataAs decodes every line into T. See LinesToData.
func LinesToDataAs[T any](lines []string, specs []layout.FieldSpec, opts *ReadOptions) ([]T, error) {
	rows, err := LinesToData(lines, specs, opts)
	if err != nil {
		return nil, err
	}

	return bindRows[T](rows, specs)
}

// TextToData splits text into lines and decodes them. Lines end with "\n"
// or "\r\n"; a final line terminator does not produce an empty record.
func TextToData(text string, specs []layout.FieldSpec, opts *ReadOptions) ([]Row, error) {
	return LinesToData(SplitLines(text), specs, opts)
}

// TextToDataAs splits text into lines and decodes them into T.
func TextToDataAs[T any](text string, specs []layout.FieldSpec, opts *ReadOptions) ([]T, error) {
	return LinesToDataAs[T](SplitLines(text), specs, opts)
}

// SplitLines splits text on "\n", dropping a trailing "\r" from every line
// and the empty line after a final terminator.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}

func checkLength(line string, expected int) error {
	if expected > 0 && utf8.RuneCountInString(line) != expected {
		return errors.LengthMismatch(line, expected)
	}

	return nil
}

// parseFields slices spec.Size characters per field starting at the field's
// offset. Slices past the end of a short line are empty.
func parseFields(line string, specs []layout.FieldSpec) (Row, error) {
	runes := []rune(line)
	row := make(Row, len(specs))
	offsets := layout.Offsets(specs)

	for i, spec := range specs {
		start := min(offsets[i], len(runes))
		end := min(offsets[i]+spec.Size, len(runes))

		value, err := decodeValue(spec, string(runes[start:end]))
		if err != nil {
			return nil, err
		}

		row[spec.Name] = value
	}

	return row, nil
}

// decodeValue maps an enum key or coerces a trimmed slice per type.
func decodeValue(spec layout.FieldSpec, raw string) (any, error) {
	if spec.HasEnum() {
		value, ok := spec.Enum.Lookup(raw)
		if !ok {
			return nil, errors.InvalidEnum(spec.Name, spec.Enum.Keys(), raw)
		}

		return value, nil
	}

	switch spec.Type {
	case layout.TypeInteger, layout.TypeFloat:
		return parseNumber(spec, raw)
	case layout.TypeDate:
		return parseDate(spec, raw)
	default:
		return trimText(spec, raw), nil
	}
}
