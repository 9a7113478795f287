// Package resource provides a table of owned references keyed by integer IDs.
//
// Some boundaries cannot carry a handle: ABI tables, cgo callbacks, wire
// protocols. They pass small integers instead. A Table holds one unit of
// count per entry and maps IDs to those units, so an object stays alive for
// as long as its ID is in the table.
//
// # Ownership
//
//	table := resource.NewTable[*Frame](resource.DefaultOptions())
//
//	// Move a handle's unit into the table (r becomes empty)
//	id, err := table.Insert(r)
//
//	// Or acquire a fresh unit on a raw reference
//	id, err := table.InsertRef(frame)
//
//	// Observe without touching the count
//	f, ok := table.Get(id)
//
//	// Take a new owning handle to the entry
//	r, ok := table.Acquire(id)
//
//	// Move the unit back out, or release it in place
//	r, err := table.Remove(id)
//	err = table.Drop(id)
//
// # Borrows
//
// Borrow marks an entry as lent out. An entry with outstanding borrows can be
// neither removed nor dropped until every borrow is returned:
//
//	f, err := table.Borrow(id)
//	defer table.ReturnBorrow(id)
//
// # Observers
//
// Register observers to track entry lifecycle events:
//
//	table.Subscribe(observer)
//
// Events are delivered after the table lock is released, in the goroutine
// that made the change.
//
// # Closing
//
// Close releases every unit the table still holds, including borrowed ones,
// and reports the borrowed entries in its error. IDs are never 0 and are
// reused after removal.
package resource
