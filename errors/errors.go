package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which operation produced the error
type Phase string

const (
	PhaseRetain  Phase = "retain"  // acquiring a unit
	PhaseRelease Phase = "release" // giving a unit back
	PhaseConvert Phase = "convert" // covariant handle conversion
	PhaseTable   Phase = "table"   // resource table operations
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch      Kind = "type_mismatch"
	KindUnderflow         Kind = "underflow"
	KindResurrect         Kind = "resurrect"
	KindClosed            Kind = "closed"
	KindNotFound          Kind = "not_found"
	KindOutstandingBorrow Kind = "outstanding_borrow"
	KindInvalidInput      Kind = "invalid_input"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value      any
	Cause      error
	Phase      Phase
	Kind       Kind
	GoType     string
	TargetType string
	Detail     string
	Path       []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	hasTypes := e.GoType != "" || e.TargetType != ""
	if hasTypes {
		b.WriteString(": ")
		switch {
		case e.GoType != "" && e.TargetType != "":
			b.WriteString(e.GoType)
			b.WriteString(" does not convert to ")
			b.WriteString(e.TargetType)
		case e.GoType != "":
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		default:
			b.WriteString("target type ")
			b.WriteString(e.TargetType)
		}
	}

	if e.Detail != "" {
		if hasTypes {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
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

// Path sets the path of the entry involved
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name of the source value
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// TargetType sets the type name the value was expected to satisfy
func (b *Builder) TargetType(t string) *Builder {
	b.err.TargetType = t
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

// TypeMismatch creates a conversion error between two Go types
func TypeMismatch(phase Phase, goType, targetType string) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindTypeMismatch,
		GoType:     goType,
		TargetType: targetType,
	}
}

// Underflow creates an error for a count released below zero
func Underflow(goType string, count int64) *Error {
	return &Error{
		Phase:  PhaseRelease,
		Kind:   KindUnderflow,
		GoType: goType,
		Detail: fmt.Sprintf("count dropped to %d", count),
		Value:  count,
	}
}

// Resurrect creates an error for a retain on an already destroyed object
func Resurrect(goType string) *Error {
	return &Error{
		Phase:  PhaseRetain,
		Kind:   KindResurrect,
		GoType: goType,
		Detail: "object already destroyed",
	}
}

// Closed creates an error for an operation on a closed container
func Closed(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s closed", what),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what string, id any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %v not found", what, id),
		Value:  id,
	}
}

// OutstandingBorrow creates an error for removing an entry still borrowed
func OutstandingBorrow(phase Phase, id any, borrows uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutstandingBorrow,
		Detail: fmt.Sprintf("%v has %d outstanding borrow(s)", id, borrows),
		Value:  id,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
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
