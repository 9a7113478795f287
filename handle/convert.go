package handle

import (
	"go.uber.org/zap"

	"github.com/wippyai/refptr"
	"github.com/wippyai/refptr/errors"
)

// CloneAs returns a new Ref[T] sharing src's object with its own unit.
// src keeps its unit. It panics if src holds a value that does not satisfy T.
func CloneAs[T, U refptr.Countable](src *Ref[U]) *Ref[T] {
	dst := &Ref[T]{}
	if src.Valid() {
		dst.set(convert[T](src.ptr), true)
	}
	return dst
}

// MoveAs returns a new Ref[T] carrying src's unit and leaves src Empty.
// On a failed conversion it panics and src is left untouched.
func MoveAs[T, U refptr.Countable](src *Ref[U]) *Ref[T] {
	dst := &Ref[T]{}
	if !src.Valid() {
		return dst
	}
	p := convert[T](src.ptr)
	src.take()
	dst.ptr, dst.owns = p, true
	return dst
}

// AssignAs makes dst share src's object through the raw assignment path:
// the new reference is retained before dst's previous one is released.
func AssignAs[T, U refptr.Countable](dst *Ref[T], src *Ref[U]) {
	if !src.Valid() {
		var zero T
		dst.set(zero, false)
		return
	}
	dst.set(convert[T](src.ptr), true)
}

// MoveFromAs transfers src's unit into dst and releases dst's previous unit.
func MoveFromAs[T, U refptr.Countable](dst *Ref[T], src *Ref[U]) {
	tmp := MoveAs[T](src)
	tmp.Swap(dst)
	tmp.Drop()
}

func convert[T, U refptr.Countable](u U) T {
	if t, ok := any(u).(T); ok {
		return t
	}
	err := errors.New(errors.PhaseConvert, errors.KindTypeMismatch).
		GoType(typeName[U]()).
		TargetType(typeName[T]()).
		Value(u).
		Detail("handle conversion").
		Build()
	Logger().Error("handle conversion failed", zap.Error(err))
	panic(err)
}
