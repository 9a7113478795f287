// Package handle provides Ref, an owning handle for intrusively counted objects.
//
// A Ref holds a nullable reference to a T and at most one unit of T's count.
// It is either Empty or Owning:
//
//	var r handle.Ref[*Frame]    // Empty, no unit
//	r := handle.New(frame)      // Owning, frame.Retain() called once
//	r.Drop()                    // Empty again, frame.Release() called once
//
// # Copy, Move, Assign
//
// Go has no copy constructors or destructors, so every ownership change is an
// explicit call:
//
//	c := r.Clone()     // +1, r keeps its unit
//	m := r.Move()      // +0, r is now Empty
//	r.Set(p)           // retain p, release the previous reference, store p
//	r.Assign(c)        // r.Set(c.Get())
//	r.MoveFrom(m)      // m's unit moves into r, r's old unit is released
//	r.Swap(c)          // references exchanged, counts untouched
//
// Set retains the incoming reference before releasing the outgoing one, so
// r.Set(r.Get()) and r.Assign(r) never let the count reach zero.
//
// # Detach and Adopt
//
// Detach empties the handle without releasing and returns the reference; the
// caller now owes exactly one Release on it. Adopt is the inverse: it wraps a
// reference whose unit the caller already holds, without retaining. Both
// exist for interop with code that counts by hand.
//
// # Covariant Conversion
//
// CloneAs, MoveAs, AssignAs and MoveFromAs turn a Ref[U] into a Ref[T] when a
// U value satisfies T, typically a concrete pointer into an interface:
//
//	h := handle.New(newH264Encoder())  // *Ref[*h264Encoder]
//	e := handle.CloneAs[Encoder](h)    // *Ref[Encoder], second unit
//
// A non-nil source that does not satisfy T panics with an *errors.Error of
// kind type_mismatch before any count changes.
//
// # Concurrency
//
// A Ref performs no locking and must not be mutated from several goroutines
// at once. Separate Refs to the same object may be used concurrently only if
// the object's Retain and Release are themselves safe for concurrent use.
package handle
