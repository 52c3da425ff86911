// Package padding provides the fill primitives shared by every field encoder.
package padding

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"flatfile-codec/errors"
)

// Position is the side of a value that receives fill characters.
type Position string

const (
	Start Position = "start" // right-aligned value
	End   Position = "end"   // left-aligned value
)

// DefaultSymbol fills fields that declare no padding symbol.
const DefaultSymbol = " "

// IsValid returns true if the position is one of the allowed values.
func (p Position) IsValid() bool {
	return p == Start || p == End
}

// SymbolOrDefault returns symbol if set, else DefaultSymbol. A symbol of more
// than one character is a config error.
func SymbolOrDefault(symbol string) (string, error) {
	if symbol == "" {
		return DefaultSymbol, nil
	}

	if utf8.RuneCountInString(symbol) > 1 {
		return "", errors.New(errors.PhaseConfig, errors.KindConfig).
			Value(symbol).
			Detail("paddingSymbol cannot have length > 1").
			Build()
	}

	return symbol, nil
}

// PositionOrDefault returns pos if it is Start or End, def if pos is empty,
// and a config error for anything else.
func PositionOrDefault(pos, def Position) (Position, error) {
	if pos == "" {
		return def, nil
	}

	if !pos.IsValid() {
		return "", errors.New(errors.PhaseConfig, errors.KindConfig).
			Value(string(pos)).
			Detail(fmt.Sprintf("padding position %q not allowed", string(pos))).
			Build()
	}

	return pos, nil
}

// FillOf returns a builder of fill strings made of symbol. Negative counts
// produce an empty string.
func FillOf(symbol string) func(count int) string {
	return func(count int) string {
		return strings.Repeat(symbol, max(count, 0))
	}
}

// Padder returns the function joining a value and its fill for pos.
func Padder(pos Position) func(value, fill string) string {
	if pos == Start {
		return func(value, fill string) string {
			return fill + value
		}
	}

	return func(value, fill string) string {
		return value + fill
	}
}

// Truncate keeps the left-most size characters of value.
func Truncate(value string, size int) string {
	if utf8.RuneCountInString(value) <= size {
		return value
	}

	return string([]rune(value)[:max(size, 0)])
}

// Pad truncates value to size characters and fills it up to exactly size
// characters on the pos side.
func Pad(value string, size int, pos Position, symbol string) string {
	value = Truncate(value, size)

	return Padder(pos)(value, FillOf(symbol)(size-utf8.RuneCountInString(value)))
}
