// Package refcount provides an embeddable intrusive reference counter.
//
// Embedding Count gives a struct the Retain and Release methods handles
// require:
//
//	type Frame struct {
//	    refcount.Count
//	    buf []byte
//	}
//
//	f := &Frame{buf: make([]byte, 4096)}
//	f.SetDestructor(func() { framePool.Put(f) })
//	r := handle.New(f)
//
// A Count starts at zero. The destructor runs exactly once, on the Release
// that brings the count back to zero. Count is safe for concurrent use.
//
// Box adapts values that cannot embed Count.
package refcount
