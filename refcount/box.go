package refcount

// Box makes an arbitrary value countable. The destroy callback, if any,
// receives the value once the last unit is released.
type Box[V any] struct {
	Count
	Value V
}

// NewBox wraps v. A nil destroy is allowed.
func NewBox[V any](v V, destroy func(V)) *Box[V] {
	b := &Box[V]{Value: v}
	if destroy != nil {
		b.SetDestructor(func() { destroy(b.Value) })
	}
	return b
}
