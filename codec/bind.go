package codec

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"flatfile-codec/errors"
	"flatfile-codec/internal/match"
	"flatfile-codec/layout"
)

// TagName is the struct tag naming the field a struct member binds to.
// `flatfile:"-"` excludes the member.
const TagName = "flatfile"

// structBinding maps field names to struct members: by tag first, then by
// normalized identifier, so "firstName" binds FirstName and first_name.
type structBinding struct {
	byTag   map[string][]int
	byIdent map[string][]int
}

var bindings sync.Map // reflect.Type -> *structBinding

func bindingOf(t reflect.Type) *structBinding {
	if b, ok := bindings.Load(t); ok {
		return b.(*structBinding)
	}

	b := &structBinding{
		byTag:   map[string][]int{},
		byIdent: map[string][]int{},
	}

	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || f.Anonymous {
			continue
		}

		tag := f.Tag.Get(TagName)
		if tag == "-" {
			continue
		}

		if name, _, _ := strings.Cut(tag, ","); name != "" {
			b.byTag[name] = f.Index
			continue
		}

		ident := match.NormalizeIdent(f.Name)
		if _, taken := b.byIdent[ident]; !taken {
			b.byIdent[ident] = f.Index
		}
	}

	actual, _ := bindings.LoadOrStore(t, b)

	return actual.(*structBinding)
}

func (b *structBinding) index(name string) ([]int, bool) {
	if idx, ok := b.byTag[name]; ok {
		return idx, true
	}

	idx, ok := b.byIdent[match.NormalizeIdent(name)]

	return idx, ok
}

// field returns the member of v bound to name. Members behind a nil
// embedded pointer are reported as missing.
func (b *structBinding) field(v reflect.Value, name string) (reflect.Value, bool) {
	idx, ok := b.index(name)
	if !ok {
		return reflect.Value{}, false
	}

	f, err := v.FieldByIndexErr(idx)
	if err != nil {
		return reflect.Value{}, false
	}

	return f, true
}

// bindRow converts a decoded row into T. T may be a struct, a pointer to a
// struct, or a map keyed by strings. Struct members without a matching
// field keep their zero value; fields without a member are dropped.
func bindRow[T any](row Row, specs []layout.FieldSpec) (T, error) {
	var out T

	if r, ok := any(&out).(*Row); ok {
		*r = row
		return out, nil
	}

	if m, ok := any(&out).(*map[string]any); ok {
		*m = row
		return out, nil
	}

	v := reflect.ValueOf(&out).Elem()
	if v.Kind() == reflect.Pointer && v.Type().Elem().Kind() == reflect.Struct {
		v.Set(reflect.New(v.Type().Elem()))
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		b := bindingOf(v.Type())

		for _, spec := range specs {
			f, ok := b.field(v, spec.Name)
			if !ok || !f.CanSet() {
				continue
			}

			if err := assign(f, spec.Name, row[spec.Name]); err != nil {
				return out, err
			}
		}

	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return out, errors.TypeMismatch(errors.PhaseDecode, "", nil,
				fmt.Sprintf("cannot bind rows to %s", v.Type()))
		}

		v.Set(reflect.MakeMapWithSize(v.Type(), len(row)))

		for _, spec := range specs {
			elem := reflect.New(v.Type().Elem()).Elem()
			if err := assign(elem, spec.Name, row[spec.Name]); err != nil {
				return out, err
			}

			v.SetMapIndex(reflect.ValueOf(spec.Name).Convert(v.Type().Key()), elem)
		}

	default:
		return out, errors.TypeMismatch(errors.PhaseDecode, "", nil,
			fmt.Sprintf("cannot bind rows to %s", v.Type()))
	}

	return out, nil
}

func bindRows[T any](rows []Row, specs []layout.FieldSpec) ([]T, error) {
	out := make([]T, 0, len(rows))

	for _, row := range rows {
		t, err := bindRow[T](row, specs)
		if err != nil {
			return nil, err
		}

		out = append(out, t)
	}

	return out, nil
}

// assign stores a decoded value into dst, converting between the codec's
// value types (string, int64, float64, time.Time, enum values) and the
// member's type. nil resets dst to its zero value.
func assign(dst reflect.Value, name string, value any) error {
	if value == nil {
		dst.SetZero()
		return nil
	}

	if dst.Kind() == reflect.Pointer {
		elem := reflect.New(dst.Type().Elem())
		if err := assign(elem.Elem(), name, value); err != nil {
			return err
		}

		dst.Set(elem)

		return nil
	}

	src := reflect.ValueOf(value)
	if src.Type().AssignableTo(dst.Type()) {
		dst.Set(src)
		return nil
	}

	mismatch := func() error {
		return errors.TypeMismatch(errors.PhaseDecode, name, value,
			fmt.Sprintf("cannot assign %T to %s", value, dst.Type()))
	}

	switch KindOf(dst.Type()) {
	case KindString:
		dst.SetString(fmt.Sprint(value))

	case KindInt:
		n, ok := toInt64(value)
		if !ok || dst.OverflowInt(n) {
			return mismatch()
		}

		dst.SetInt(n)

	case KindUint:
		n, ok := toInt64(value)
		if !ok || n < 0 || dst.OverflowUint(uint64(n)) {
			return mismatch()
		}

		dst.SetUint(uint64(n))

	case KindFloat:
		f, ok := toFloat64(value)
		if !ok || dst.OverflowFloat(f) {
			return mismatch()
		}

		dst.SetFloat(f)

	case KindBool:
		b, err := strconv.ParseBool(fmt.Sprint(value))
		if err != nil {
			return mismatch()
		}

		dst.SetBool(b)

	case KindTime:
		t, ok := value.(time.Time)
		if !ok {
			return mismatch()
		}

		dst.Set(reflect.ValueOf(t))

	default:
		if !src.Type().ConvertibleTo(dst.Type()) {
			return mismatch()
		}

		dst.Set(src.Convert(dst.Type()))
	}

	return nil
}

// toInt64 accepts integers, integral floats and numeric strings.
func toInt64(value any) (int64, bool) {
	rv := reflect.ValueOf(value)

	switch KindOf(rv.Type()) {
	case KindInt:
		return rv.Int(), true
	case KindUint:
		u := rv.Uint()
		return int64(u), u <= math.MaxInt64
	case KindFloat:
		f := rv.Float()
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}

		return int64(f), true
	case KindString:
		n, err := strconv.ParseInt(strings.TrimSpace(rv.String()), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// toFloat64 accepts any number and numeric strings.
func toFloat64(value any) (float64, bool) {
	rv := reflect.ValueOf(value)

	switch KindOf(rv.Type()) {
	case KindInt:
		return float64(rv.Int()), true
	case KindUint:
		return float64(rv.Uint()), true
	case KindFloat:
		return rv.Float(), true
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
