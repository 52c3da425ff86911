package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConfig Phase = "config" // field spec / layout validation
	PhaseEncode Phase = "encode" // row to line
	PhaseDecode Phase = "decode" // line to row
	PhaseRead   Phase = "read"   // file input
	PhaseWrite  Phase = "write"  // file output
	PhaseLoad   Phase = "load"   // layout file loading
)

// Kind categorizes the error
type Kind string

const (
	KindConfig         Kind = "config"
	KindValidation     Kind = "validation"
	KindTypeMismatch   Kind = "type_mismatch"
	KindSizeExceeded   Kind = "size_exceeded"
	KindLengthMismatch Kind = "length_mismatch"
	KindInvalidEnum    Kind = "invalid_enum"
	KindInvalidData    Kind = "invalid_data"
	KindIO             Kind = "io"
)

// Sentinels for errors.Is. They carry no phase, so they match an Error of
// the same Kind raised in any phase.
var (
	ErrConfig         = &Error{Kind: KindConfig}
	ErrValidation     = &Error{Kind: KindValidation}
	ErrTypeMismatch   = &Error{Kind: KindTypeMismatch}
	ErrSizeExceeded   = &Error{Kind: KindSizeExceeded}
	ErrLengthMismatch = &Error{Kind: KindLengthMismatch}
	ErrInvalidEnum    = &Error{Kind: KindInvalidEnum}
	ErrInvalidData    = &Error{Kind: KindInvalidData}
	ErrIO             = &Error{Kind: KindIO}
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Phase != "" {
		b.WriteByte('[')
		b.WriteString(string(e.Phase))
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target without a phase
// matches on Kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase == "" {
		return e.Kind == t.Kind
	}
	return e.Phase == t.Phase && e.Kind == t.Kind
}

// Field returns the field name the error relates to, or "" if none.
func (e *Error) Field() string {
	if len(e.Path) == 0 {
		return ""
	}
	return e.Path[len(e.Path)-1]
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Config creates an invalid field spec error
func Config(field, detail string, args ...any) *Error {
	return New(PhaseConfig, KindConfig).Path(pathOf(field)...).Detail(detail, args...).Build()
}

// Validation creates a row shape error raised before any field is processed
func Validation(phase Phase, field, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindValidation,
		Path:   pathOf(field),
		Detail: detail,
	}
}

// TypeMismatch creates an error for a value whose Go type the field cannot accept
func TypeMismatch(phase Phase, field string, value any, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Path:   pathOf(field),
		Value:  value,
		Detail: detail,
	}
}

// SizeExceeded creates an error for an encoded value wider than its field
func SizeExceeded(phase Phase, field string, value any, size int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindSizeExceeded,
		Path:   pathOf(field),
		Value:  value,
		Detail: fmt.Sprintf("Value %v exceed size %d", value, size),
	}
}

// LengthMismatch creates an error for a line whose length differs from the
// expected record width
func LengthMismatch(line string, expected int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindLengthMismatch,
		Value:  line,
		Detail: fmt.Sprintf("The given line must be %d characters long", expected),
	}
}

// InvalidEnum creates an error for a raw slice that is not one of the
// accepted enum keys
func InvalidEnum(field string, keys []string, value string) *Error {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = fmt.Sprintf("%q", k)
	}

	return &Error{
		Phase: PhaseDecode,
		Kind:  KindInvalidEnum,
		Path:  pathOf(field),
		Value: value,
		Detail: fmt.Sprintf(
			"Incoming value for field '%s' should have been one of the accepted enum keys [%s], but found '%s'",
			field, strings.Join(quoted, ","), value),
	}
}

// InvalidData creates an error for a raw value that cannot be coerced
func InvalidData(phase Phase, field string, value any, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   pathOf(field),
		Value:  value,
		Detail: fmt.Sprintf("cannot convert %q", fmt.Sprint(value)),
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if
// there is none.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}

	return ""
}

func pathOf(field string) []string {
	if field == "" {
		return nil
	}
	return []string{field}
}
