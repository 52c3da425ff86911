package codec

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/itchyny/timefmt-go"

	"flatfile-codec/errors"
	"flatfile-codec/layout"
	"flatfile-codec/padding"
)

// ISODateLayout renders dates without a format, always in UTC with
// millisecond precision.
const ISODateLayout = "2006-01-02T15:04:05.000Z"

// dateInputLayouts are tried in order when a date arrives as a string.
var dateInputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

const notCompatible = "field has not compatible type"

// --- encode ---

// toText stringifies value. Straight fields accept strings only.
func toText(spec layout.FieldSpec, value any) (string, error) {
	value = indirect(value)

	if spec.Straight {
		if value == nil || KindOf(reflect.TypeOf(value)) != KindString {
			return "", errors.TypeMismatch(errors.PhaseEncode, spec.Name, value, notCompatible)
		}

		return reflect.ValueOf(value).String(), nil
	}

	if value == nil {
		return "", nil
	}

	return fmt.Sprint(value), nil
}

// toNumber coerces value to a finite float64. ok is false for nil and blank
// strings, which encode as a blank field.
func toNumber(spec layout.FieldSpec, value any) (f float64, ok bool, err error) {
	value = indirect(value)
	if value == nil {
		return 0, false, nil
	}

	rv := reflect.ValueOf(value)

	switch KindOf(rv.Type()) {
	case KindInt:
		f = float64(rv.Int())
	case KindUint:
		f = float64(rv.Uint())
	case KindFloat:
		f = rv.Float()
	case KindBool:
		if rv.Bool() {
			f = 1
		}
	case KindString:
		s := strings.TrimSpace(rv.String())
		if s == "" {
			return 0, false, nil
		}

		f, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false, errors.TypeMismatch(errors.PhaseEncode, spec.Name, value,
				fmt.Sprintf("cannot convert %q to a number", s))
		}
	case KindTime:
		f = float64(rv.Interface().(time.Time).UnixMilli())
	default:
		return 0, false, errors.TypeMismatch(errors.PhaseEncode, spec.Name, value, notCompatible)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, errors.TypeMismatch(errors.PhaseEncode, spec.Name, value,
			fmt.Sprintf("%v is not a finite number", value))
	}

	return f, true, nil
}

// formatNumber renders f per the field's precision. Without dot notation
// the value is scaled by 10^precision and truncated toward zero, so 72.525
// at precision 2 is "7252".
func formatNumber(spec layout.FieldSpec, f float64) (string, error) {
	p := spec.EffectivePrecision()

	if spec.Type == layout.TypeFloat && spec.DotNotation {
		return toFixed(f, p), nil
	}

	scaled := math.Trunc(f * math.Pow10(p))
	if math.IsInf(scaled, 0) {
		return "", errors.TypeMismatch(errors.PhaseEncode, spec.Name, f,
			fmt.Sprintf("%v overflows at precision %d", f, p))
	}

	if scaled == 0 {
		return "0", nil
	}

	return strconv.FormatFloat(scaled, 'f', 0, 64), nil
}

// formatInteger renders integer inputs of integer fields without a float
// round trip, so values beyond 2^53 keep every digit.
func formatInteger(value any) (string, bool) {
	value = indirect(value)
	if value == nil {
		return "", false
	}

	rv := reflect.ValueOf(value)

	switch KindOf(rv.Type()) {
	case KindInt:
		return strconv.FormatInt(rv.Int(), 10), true
	case KindUint:
		return strconv.FormatUint(rv.Uint(), 10), true
	default:
		return "", false
	}
}

// toFixed renders f with exactly digits decimals, rounding the exact binary
// value to nearest with ties away from zero.
func toFixed(f float64, digits int) string {
	r := new(big.Rat).SetFloat64(math.Abs(f))
	r.Mul(r, new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)))
	r.Add(r, big.NewRat(1, 2))

	s := new(big.Int).Quo(r.Num(), r.Denom()).String()

	if digits > 0 {
		if len(s) <= digits {
			s = strings.Repeat("0", digits-len(s)+1) + s
		}

		s = s[:len(s)-digits] + "." + s[len(s)-digits:]
	}

	if f < 0 {
		s = "-" + s
	}

	return s
}

// toTime coerces value to a time. ok is false for nil and blank strings.
// Numbers are Unix milliseconds.
func toTime(spec layout.FieldSpec, value any) (t time.Time, ok bool, err error) {
	value = indirect(value)
	if value == nil {
		return time.Time{}, false, nil
	}

	if t, isTime := value.(time.Time); isTime {
		return t, true, nil
	}

	rv := reflect.ValueOf(value)

	switch KindOf(rv.Type()) {
	case KindInt:
		return time.UnixMilli(rv.Int()), true, nil
	case KindUint:
		return time.UnixMilli(int64(rv.Uint())), true, nil
	case KindFloat:
		return time.UnixMilli(int64(rv.Float())), true, nil
	case KindString:
		s := strings.TrimSpace(rv.String())
		if s == "" {
			return time.Time{}, false, nil
		}

		for _, l := range dateInputLayouts {
			if t, err := time.Parse(l, s); err == nil {
				return t, true, nil
			}
		}

		return time.Time{}, false, errors.TypeMismatch(errors.PhaseEncode, spec.Name, value,
			fmt.Sprintf("cannot convert %q to a date", s))
	default:
		return time.Time{}, false, errors.TypeMismatch(errors.PhaseEncode, spec.Name, value, notCompatible)
	}
}

// formatDate renders t with the field's strftime pattern, or as ISO-8601
// when there is none.
func formatDate(spec layout.FieldSpec, t time.Time) string {
	if spec.Format != nil && spec.Format.UTC {
		t = t.UTC()
	}

	if spec.Format == nil || spec.Format.DateFormat == "" {
		return t.UTC().Format(ISODateLayout)
	}

	return timefmt.Format(t, spec.Format.DateFormat)
}

// --- decode ---

// trimText strips the padding symbol from the padding side.
func trimText(spec layout.FieldSpec, raw string) string {
	pos, symbol, err := spec.Padding()
	if err != nil {
		return raw
	}

	if pos == padding.Start {
		return strings.TrimLeft(raw, symbol)
	}

	return strings.TrimRight(raw, symbol)
}

// trimNumber strips spaces and a non-digit padding symbol from both sides.
// Digit symbols are left in place as leading zeros parse as-is, except that
// a sign behind leading digit padding moves to the front: "00-5" is "-5".
func trimNumber(spec layout.FieldSpec, raw string) string {
	cutset := " "

	pos, symbol, err := spec.Padding()
	if err != nil {
		return strings.Trim(raw, cutset)
	}

	digit := unicode.IsDigit([]rune(symbol)[0])
	if !digit {
		cutset += symbol
	}

	s := strings.Trim(raw, cutset)

	if digit && pos == padding.Start {
		if i := strings.IndexByte(s, '-'); i > 0 && strings.Trim(s[:i], symbol) == "" {
			s = "-" + s[i+1:]
		}
	}

	return s
}

func parseNumber(spec layout.FieldSpec, raw string) (any, error) {
	s := trimNumber(spec, raw)
	if s == "" {
		return nil, nil
	}

	if spec.Type == layout.TypeInteger {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, errors.InvalidData(errors.PhaseDecode, spec.Name, raw, err)
		}

		return n, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.InvalidData(errors.PhaseDecode, spec.Name, raw, err)
	}

	if !spec.DotNotation {
		if p := spec.EffectivePrecision(); p > 0 {
			f /= math.Pow10(p)
		}
	}

	return f, nil
}

func parseDate(spec layout.FieldSpec, raw string) (any, error) {
	s := strings.TrimSpace(trimText(spec, raw))
	if s == "" {
		return nil, nil
	}

	var (
		t   time.Time
		err error
	)

	if spec.Format == nil || spec.Format.DateFormat == "" {
		t, err = time.Parse(time.RFC3339Nano, s)
	} else {
		loc := time.Local
		if spec.Format.UTC {
			loc = time.UTC
		}

		t, err = timefmt.ParseInLocation(s, spec.Format.DateFormat, loc)
	}

	if err != nil {
		return nil, errors.InvalidData(errors.PhaseDecode, spec.Name, raw, err)
	}

	return t, nil
}
