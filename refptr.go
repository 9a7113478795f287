package refptr

// Countable is the capability a type must expose to be held by a handle.
//
// Retain adds exactly one unit to the object's internal count. Release
// removes exactly one unit and destroys the object when the count reaches
// zero. Neither reports errors.
//
// Implementations decide their own thread-safety. Handles never lock; if
// handles to the same object are used from several goroutines, Retain and
// Release must be safe for concurrent use (atomic add, for instance).
type Countable interface {
	Retain()
	Release()
}

// Counted is a Countable that can report its current count.
// Handles never require it; diagnostics and tests do.
type Counted interface {
	Countable
	RefCount() int64
}
