package refcount

import (
	"go.uber.org/atomic"

	"github.com/wippyai/refptr/errors"
)

// Count is an atomic intrusive reference count. The zero value is ready to
// use with a count of zero and no destructor.
type Count struct {
	destroy   func()
	n         atomic.Int64
	destroyed atomic.Bool
}

// SetDestructor sets the function run when the count returns to zero.
// It must be called before the first Retain.
func (c *Count) SetDestructor(fn func()) {
	c.destroy = fn
}

// Retain adds one unit. It panics if the object was already destroyed.
func (c *Count) Retain() {
	if c.destroyed.Load() {
		panic(errors.Resurrect("refcount.Count"))
	}
	c.n.Inc()
}

// Release removes one unit and runs the destructor when none remain.
// It panics when released more times than retained.
func (c *Count) Release() {
	n := c.n.Dec()
	switch {
	case n > 0:
		return
	case n < 0:
		panic(errors.Underflow("refcount.Count", n))
	}
	if c.destroyed.CompareAndSwap(false, true) && c.destroy != nil {
		c.destroy()
	}
}

// RefCount returns the current count.
func (c *Count) RefCount() int64 {
	return c.n.Load()
}

// Destroyed reports whether the count has reached zero after being retained.
func (c *Count) Destroyed() bool {
	return c.destroyed.Load()
}
