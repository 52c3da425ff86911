// Package errors provides the structured error type shared by the layout,
// padding and codec packages.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the field the error relates to, the
// offending value, a human-readable detail and an optional cause.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindSizeExceeded).
//		Path("age").
//		Value(1234).
//		Detail("Value %v exceed size %d", 1234, 3).
//		Build()
//
// Or use the convenience constructors:
//
//	err := errors.SizeExceeded(errors.PhaseEncode, "age", 1234, 3)
//	err := errors.LengthMismatch(line, 120)
//
// Every Kind has a sentinel (ErrConfig, ErrSizeExceeded, ...) that matches any
// Error of that kind through the standard errors.Is.
package errors
