package handle

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/refptr"
)

// State reports whether a Ref holds a unit of count.
type State uint8

const (
	StateEmpty State = iota
	StateOwning
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateOwning:
		return "owning"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Ref owns at most one unit of count on a T. The zero value is Empty.
// A Ref must not be copied by value; use Clone.
type Ref[T refptr.Countable] struct {
	noCopy noCopy
	ptr    T
	owns   bool
}

// New returns a Ref holding p, retaining it once if p is non-nil.
func New[T refptr.Countable](p T) *Ref[T] {
	r := &Ref[T]{}
	if !isNil(p) {
		p.Retain()
		r.ptr, r.owns = p, true
	}
	return r
}

// Adopt returns a Ref holding p without retaining it.
// The caller transfers a unit it already owns, such as one returned by Detach.
func Adopt[T refptr.Countable](p T) *Ref[T] {
	r := &Ref[T]{}
	if !isNil(p) {
		r.ptr, r.owns = p, true
		if ce := Logger().Check(zap.DebugLevel, "handle adopted reference"); ce != nil {
			ce.Write(zap.String("type", fmt.Sprintf("%T", p)))
		}
	}
	return r
}

// Get returns the held reference without changing the count.
func (r *Ref[T]) Get() T {
	if r == nil {
		var zero T
		return zero
	}
	return r.ptr
}

// Valid reports whether r holds a unit.
func (r *Ref[T]) Valid() bool {
	return r != nil && r.owns
}

func (r *Ref[T]) State() State {
	if r.Valid() {
		return StateOwning
	}
	return StateEmpty
}

// Clone returns a new Ref to the same object with its own unit.
func (r *Ref[T]) Clone() *Ref[T] {
	c := &Ref[T]{}
	if r.Valid() {
		c.set(r.ptr, true)
	}
	return c
}

// Move returns a new Ref carrying r's unit and leaves r Empty.
// The count does not change.
func (r *Ref[T]) Move() *Ref[T] {
	m := &Ref[T]{}
	if r != nil {
		m.ptr, m.owns = r.take()
	}
	return m
}

// Drop releases r's unit, if any, and leaves r Empty.
// Dropping an Empty or nil Ref is a no-op, so a deferred Drop is always safe.
func (r *Ref[T]) Drop() {
	if !r.Valid() {
		return
	}
	p, _ := r.take()
	p.Release()
}

// Detach empties r without releasing and returns the reference it held.
//
// The caller becomes responsible for exactly one Release on the returned
// object. Use it only to hand a counted reference to code that manages
// counts by hand; Adopt takes such a reference back.
func (r *Ref[T]) Detach() T {
	if r == nil {
		var zero T
		return zero
	}
	p, owned := r.take()
	if owned {
		if ce := Logger().Check(zap.DebugLevel, "handle detached reference"); ce != nil {
			ce.Write(zap.String("type", fmt.Sprintf("%T", p)))
		}
	}
	return p
}

// Set makes r hold p.
//
// p is retained before the previous reference is released, so Set with
// the reference r already holds leaves the count unchanged.
func (r *Ref[T]) Set(p T) {
	r.set(p, !isNil(p))
}

// Assign makes r share src's object, acquiring a unit of its own.
// Assigning a Ref to itself leaves the count unchanged.
func (r *Ref[T]) Assign(src *Ref[T]) {
	if !src.Valid() {
		var zero T
		r.set(zero, false)
		return
	}
	r.set(src.ptr, true)
}

// MoveFrom transfers src's unit into r and releases whatever r held before.
// src is left Empty unless it is r itself.
func (r *Ref[T]) MoveFrom(src *Ref[T]) {
	tmp := src.Move()
	tmp.Swap(r)
	tmp.Drop()
}

// Swap exchanges the references held by r and other. Counts are untouched.
func (r *Ref[T]) Swap(other *Ref[T]) {
	r.ptr, other.ptr = other.ptr, r.ptr
	r.owns, other.owns = other.owns, r.owns
}

// SwapPtr exchanges r's reference with the one stored in *pp. Counts are
// untouched: r takes over the unit the slot stood for, and the slot receives
// r's unit (or the zero value when r was Empty).
func (r *Ref[T]) SwapPtr(pp *T) {
	p := r.ptr
	r.ptr, r.owns = *pp, !isNil(*pp)
	if !r.owns {
		var zero T
		r.ptr = zero
	}
	*pp = p
}

func (r *Ref[T]) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Ref[%s](empty)", typeName[T]())
	}
	return fmt.Sprintf("Ref[%s](owning %T)", typeName[T](), r.ptr)
}

// set installs p, retaining before releasing.
func (r *Ref[T]) set(p T, nonNil bool) {
	if nonNil {
		p.Retain()
	} else {
		var zero T
		p = zero
	}
	if r.owns {
		r.ptr.Release()
	}
	r.ptr, r.owns = p, nonNil
}

// take empties r and returns what it held, leaving the count alone.
func (r *Ref[T]) take() (T, bool) {
	var zero T
	p, owned := r.ptr, r.owns
	r.ptr, r.owns = zero, false
	return p, owned
}
