package resource

import (
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/refptr"
	"github.com/wippyai/refptr/errors"
	"github.com/wippyai/refptr/handle"
)

// Table maps IDs to owned references. Each entry holds exactly one unit.
// Thread-safe. Release is never called while the table lock is held, so
// destructors may call back into the table.
type Table[T refptr.Countable] struct {
	log       *zap.Logger
	slots     slots[T]
	observers []Observer
	mu        sync.RWMutex
	obsMu     sync.RWMutex
	closed    bool
}

// NewTable creates an empty table.
func NewTable[T refptr.Countable](opts Options) *Table[T] {
	log := opts.Logger
	if log == nil {
		log = Logger()
	}
	return &Table[T]{
		log:   log,
		slots: newSlots[T](opts.InitialCapacity),
	}
}

// Insert moves r's unit into the table and returns its ID. r is left empty.
// On error r is untouched.
func (t *Table[T]) Insert(r *handle.Ref[T]) (ID, error) {
	if !r.Valid() {
		return 0, errors.InvalidInput(errors.PhaseTable, "insert of empty handle")
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0, ErrClosed
	}
	value := r.Get()
	id := t.slots.alloc(r.Move())
	t.mu.Unlock()

	t.log.Debug("resource inserted", zap.Uint32("id", uint32(id)))
	t.notify(Event{Type: EventCreated, ID: id, Value: value})
	return id, nil
}

// InsertRef acquires a new unit on p and stores it.
func (t *Table[T]) InsertRef(p T) (ID, error) {
	r := handle.New(p)
	id, err := t.Insert(r)
	if err != nil {
		r.Drop()
		return 0, err
	}
	return id, nil
}

// Get returns the referenced object without changing its count.
func (t *Table[T]) Get(id ID) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e := t.slots.lookup(id)
	if e == nil {
		var zero T
		return zero, false
	}
	return e.ref.Get(), true
}

// Acquire returns a new owning handle to the entry. The table keeps its unit.
func (t *Table[T]) Acquire(id ID) (*handle.Ref[T], bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e := t.slots.lookup(id)
	if e == nil {
		return nil, false
	}
	return e.ref.Clone(), true
}

// Borrow lends the entry out. Until ReturnBorrow is called the entry cannot
// be removed or dropped. No unit is acquired.
func (t *Table[T]) Borrow(id ID) (T, error) {
	var zero T

	t.mu.Lock()
	e := t.slots.lookup(id)
	if e == nil {
		t.mu.Unlock()
		return zero, errors.NotFound(errors.PhaseTable, "resource", id)
	}
	e.borrows++
	value, borrows := e.ref.Get(), e.borrows
	t.mu.Unlock()

	t.notify(Event{Type: EventBorrowed, ID: id, Value: value, Borrows: borrows})
	return value, nil
}

// ReturnBorrow ends one borrow of the entry.
func (t *Table[T]) ReturnBorrow(id ID) error {
	t.mu.Lock()
	e := t.slots.lookup(id)
	if e == nil {
		t.mu.Unlock()
		return errors.NotFound(errors.PhaseTable, "resource", id)
	}
	if e.borrows == 0 {
		t.mu.Unlock()
		return errors.InvalidInput(errors.PhaseTable, "return of unborrowed resource")
	}
	e.borrows--
	value, borrows := e.ref.Get(), e.borrows
	t.mu.Unlock()

	t.notify(Event{Type: EventBorrowReturned, ID: id, Value: value, Borrows: borrows})
	return nil
}

// Remove takes the entry out of the table and returns its unit as a handle.
// The count does not change.
func (t *Table[T]) Remove(id ID) (*handle.Ref[T], error) {
	r, err := t.take(id)
	if err != nil {
		return nil, err
	}
	t.notify(Event{Type: EventRemoved, ID: id, Value: r.Get()})
	return r, nil
}

// Drop takes the entry out of the table and releases its unit.
func (t *Table[T]) Drop(id ID) error {
	r, err := t.take(id)
	if err != nil {
		return err
	}
	value := r.Get()
	r.Drop()

	t.log.Debug("resource dropped", zap.Uint32("id", uint32(id)))
	t.notify(Event{Type: EventDropped, ID: id, Value: value})
	return nil
}

func (t *Table[T]) take(id ID) (*handle.Ref[T], error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := t.slots.lookup(id)
	if e == nil {
		return nil, errors.NotFound(errors.PhaseTable, "resource", id)
	}
	if e.borrows > 0 {
		return nil, errors.OutstandingBorrow(errors.PhaseTable, id, e.borrows)
	}
	return t.slots.free(id), nil
}

// Len returns the number of live entries.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.slots.len()
}

// Each iterates over live entries in ID order until fn returns false.
// fn must not call back into the table.
func (t *Table[T]) Each(fn func(ID, T) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i, e := range t.slots.entries {
		if e.ref != nil {
			if !fn(ID(i+1), e.ref.Get()) {
				break
			}
		}
	}
}

// Clear drops every entry that is not borrowed and returns how many it dropped.
func (t *Table[T]) Clear() int {
	// Collect IDs first so no lock is held while units are released
	var ids []ID
	t.mu.RLock()
	for i, e := range t.slots.entries {
		if e.ref != nil && e.borrows == 0 {
			ids = append(ids, ID(i+1))
		}
	}
	t.mu.RUnlock()

	dropped := 0
	for _, id := range ids {
		if t.Drop(id) == nil {
			dropped++
		}
	}
	return dropped
}

// Subscribe adds an observer for lifecycle events.
func (t *Table[T]) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table[T]) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Close releases every unit and stops accepting inserts. Borrowed entries are
// released too; each one is reported in the returned error.
func (t *Table[T]) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	live := t.slots.drain()
	t.mu.Unlock()

	var err error
	for _, d := range live {
		if d.borrows > 0 {
			t.log.Warn("resource released with outstanding borrows",
				zap.Uint32("id", uint32(d.id)),
				zap.Uint32("borrows", d.borrows))
			err = multierr.Append(err, errors.OutstandingBorrow(errors.PhaseTable, d.id, d.borrows))
		}
		value := d.ref.Get()
		d.ref.Drop()
		t.notify(Event{Type: EventDropped, ID: d.id, Value: value})
	}
	return err
}

func (t *Table[T]) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnResourceEvent(e)
	}
}
