// Package errors provides structured error types for the refptr module.
//
// Errors are categorized by Phase (which operation was running) and Kind
// (error category). The Error type carries the Go types involved, a detail
// message and an optional cause.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConvert, errors.KindTypeMismatch).
//		GoType("*media.Frame").
//		TargetType("media.Encoder").
//		Detail("handle conversion").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseConvert, "*media.Frame", "media.Encoder")
//	err := errors.NotFound(errors.PhaseTable, "handle", 42)
//
// Counting violations (underflow, resurrection, failed conversions) are
// programmer errors and are raised as panics carrying an *Error. Table
// operations return them.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
