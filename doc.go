// Package refptr provides handles for intrusively reference-counted objects.
//
// An intrusively counted object keeps its own count and exposes Retain and
// Release. A handle owns at most one unit of that count and keeps it correct
// across construction, copy, move, assignment and destruction, so callers
// never touch Retain/Release directly.
//
// # Architecture Overview
//
//	refptr/          Root package with the Countable capability
//	├── handle/      Ref[T], the owning handle
//	├── refcount/    Embeddable atomic counter and adapter box
//	├── resource/    Integer-keyed table of owned references
//	├── errors/      Structured error types
//	└── cmd/refplay  Lifecycle tracer and interactive playground
//
// # Quick Start
//
//	type Frame struct {
//	    refcount.Count
//	    data []byte
//	}
//
//	f := &Frame{data: buf}
//	f.SetDestructor(func() { pool.Put(f.data) })
//
//	r := handle.New(f) // count 1
//	defer r.Drop()
//
//	c := r.Clone() // count 2
//	c.Drop()       // count 1
//
// # Ownership Operations
//
//	New(p)         acquire a unit on p
//	Adopt(p)       take over a unit the caller already holds
//	r.Clone()      new handle, new unit
//	r.Move()       new handle, same unit, r becomes empty
//	r.Set(p)       retain p, then release the old reference
//	r.Assign(s)    r.Set(s.Get())
//	r.MoveFrom(s)  take s's unit, release r's old one
//	r.Detach()     hand the unit to the caller, r becomes empty
//	r.Swap(s)      exchange references, no count change
//	r.Drop()       release the unit, r becomes empty
//
// Covariant forms (CloneAs, MoveAs, AssignAs, MoveFromAs) convert a
// Ref[U] into a Ref[T] when a U value satisfies T.
//
// # Thread Safety
//
// A single Ref is not safe for concurrent mutation. Handles perform no
// locking; whether distinct handles to one object may be used from several
// goroutines depends entirely on the object's Retain and Release.
// refcount.Count is atomic and safe for that use.
//
// # Copying
//
// Copying a Ref struct by value duplicates a unit without a Retain. Ref
// carries a no-copy marker so go vet reports such copies; pass *Ref and use
// Clone.
package refptr
