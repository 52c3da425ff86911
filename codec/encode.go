package codec

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"flatfile-codec/errors"
	"flatfile-codec/layout"
	"flatfile-codec/padding"
)

// FormatField encodes a single value into exactly spec.Size characters.
// Unlike FormatRow there is no size check: long values are truncated. A
// spec without a type formats as a string.
func FormatField(spec layout.FieldSpec, value any) (string, error) {
	if spec.Type == "" {
		spec.Type = layout.TypeString
	}

	if err := layout.Check([]layout.FieldSpec{spec}); err != nil {
		return "", err
	}

	s, err := encodeValue(spec, value)
	if err != nil {
		return "", err
	}

	return padField(spec, s), nil
}

// FormatRow encodes row into one fixed-width line followed by the row end
// of opts. row may be a Row, any map keyed by strings, or a struct (fields
// bound by `flatfile` tag or by name).
//
// Every field is coerced, checked against its size (dates excepted: they
// are truncated like any other value but never rejected), truncated and
// padded. The first failing field aborts the call.
func FormatRow(specs []layout.FieldSpec, row any, opts *WriteOptions) (string, error) {
	if err := layout.Check(specs); err != nil {
		return "", err
	}

	src, err := sourceOf(row)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	b.Grow(layout.Width(specs) + len(rowEndOf(opts)))

	for _, spec := range specs {
		value, ok := src.lookup(spec.Name)
		if !ok {
			return "", errors.Validation(errors.PhaseEncode, spec.Name,
				fmt.Sprintf("data has no field %q", spec.Name))
		}

		s, err := encodeValue(spec, value)
		if err != nil {
			return "", err
		}

		if spec.Type != layout.TypeDate && utf8.RuneCountInString(s) > spec.Size {
			return "", errors.SizeExceeded(errors.PhaseEncode, spec.Name, indirect(value), spec.Size)
		}

		b.WriteString(padField(spec, s))
	}

	b.WriteString(rowEndOf(opts))

	return b.String(), nil
}

// encodeValue coerces and formats value without padding.
func encodeValue(spec layout.FieldSpec, value any) (string, error) {
	switch spec.Type {
	case layout.TypeInteger, layout.TypeFloat:
		if spec.Type == layout.TypeInteger {
			if s, ok := formatInteger(value); ok {
				return s, nil
			}
		}

		f, ok, err := toNumber(spec, value)
		if err != nil || !ok {
			return "", err
		}

		return formatNumber(spec, f)

	case layout.TypeDate:
		t, ok, err := toTime(spec, value)
		if err != nil || !ok {
			return "", err
		}

		return formatDate(spec, t), nil

	default:
		return toText(spec, value)
	}
}

// padField truncates s to the field size and pads it. The field has been
// checked, so padding settings are valid.
func padField(spec layout.FieldSpec, s string) string {
	pos, symbol, _ := spec.Padding()

	return padding.Pad(s, spec.Size, pos, symbol)
}
