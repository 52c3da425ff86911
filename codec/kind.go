package codec

import (
	"reflect"
	"time"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind classifies the Go values the codec accepts on encode and can bind on
// decode.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (unsupported) value for Kind

	KindInt
	KindUint
	KindFloat
	KindBool
	KindString
	KindTime
)

var timeType = reflect.TypeOf(time.Time{})

// KindOf classifies a Go type. Named types classify by their underlying
// kind, so `type Status string` is KindString. Unsupported types return 0.
func KindOf(rtype reflect.Type) Kind {
	if rtype == nil {
		return 0
	}

	if rtype == timeType {
		return KindTime
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindUint
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	}
}
