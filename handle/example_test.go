package handle_test

import (
	"fmt"

	"github.com/wippyai/refptr/handle"
	"github.com/wippyai/refptr/refcount"
)

type frame struct {
	refcount.Count
	seq int
}

func newFrame(seq int) *frame {
	f := &frame{seq: seq}
	f.SetDestructor(func() { fmt.Printf("frame %d destroyed\n", f.seq) })
	return f
}

func Example() {
	f := newFrame(1)

	a := handle.New(f)
	b := a.Clone()
	fmt.Println("count:", f.RefCount())

	b.Drop()
	c := a.Move()
	fmt.Println("count:", f.RefCount(), "a:", a.State(), "c:", c.State())

	a.Set(c.Get())
	fmt.Println("count:", f.RefCount())

	c.Drop()
	a.Drop()
	// Output:
	// count: 2
	// count: 1 a: empty c: owning
	// count: 2
	// frame 1 destroyed
}

func ExampleRef_Detach() {
	f := newFrame(2)
	r := handle.New(f)

	raw := r.Detach() // r is empty, the unit now belongs to raw's holder
	fmt.Println("count:", raw.RefCount(), "r:", r.State())

	owned := handle.Adopt(raw)
	owned.Drop()
	// Output:
	// count: 1 r: empty
	// frame 2 destroyed
}
