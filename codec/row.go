package codec

import (
	"fmt"
	"reflect"

	"flatfile-codec/errors"
)

// Row is one record keyed by field name.
type Row map[string]any

// rowSource looks up field values of a row being encoded.
type rowSource interface {
	lookup(name string) (any, bool)
}

type mapSource map[string]any

func (m mapSource) lookup(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// reflectMapSource serves any map with a string key type.
type reflectMapSource struct {
	v reflect.Value
}

func (m reflectMapSource) lookup(name string) (any, bool) {
	key := reflect.ValueOf(name).Convert(m.v.Type().Key())

	v := m.v.MapIndex(key)
	if !v.IsValid() {
		return nil, false
	}

	return v.Interface(), true
}

type structSource struct {
	v       reflect.Value
	binding *structBinding
}

func (s structSource) lookup(name string) (any, bool) {
	f, ok := s.binding.field(s.v, name)
	if !ok {
		return nil, false
	}

	return f.Interface(), true
}

// sourceOf accepts a Row, any map keyed by strings, or a struct or pointer
// to one.
func sourceOf(row any) (rowSource, error) {
	switch r := row.(type) {
	case nil:
		return nil, errors.Validation(errors.PhaseEncode, "", "data is null")
	case Row:
		if r == nil {
			return nil, errors.Validation(errors.PhaseEncode, "", "data is null")
		}

		return mapSource(r), nil
	case map[string]any:
		if r == nil {
			return nil, errors.Validation(errors.PhaseEncode, "", "data is null")
		}

		return mapSource(r), nil
	}

	v := reflect.ValueOf(row)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, errors.Validation(errors.PhaseEncode, "", "data is null")
		}

		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, errors.Validation(errors.PhaseEncode, "",
				fmt.Sprintf("data is not an object: map key type %s is not a string", v.Type().Key()))
		}

		if v.IsNil() {
			return nil, errors.Validation(errors.PhaseEncode, "", "data is null")
		}

		return reflectMapSource{v: v}, nil

	case reflect.Struct:
		return structSource{v: v, binding: bindingOf(v.Type())}, nil

	default:
		return nil, errors.Validation(errors.PhaseEncode, "", "data is not an object")
	}
}

// indirect dereferences pointers, turning nil pointers into nil.
func indirect(v any) any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}

		rv = rv.Elem()
	}

	if !rv.IsValid() {
		return nil
	}

	return rv.Interface()
}
