package resource

import (
	"github.com/wippyai/refptr"
	"github.com/wippyai/refptr/handle"
)

// entry holds the table's unit for one ID. A nil ref marks a free slot.
type entry[T refptr.Countable] struct {
	ref     *handle.Ref[T]
	borrows uint32
}

// slots is a free-list backed entry store. Callers hold the table lock.
type slots[T refptr.Countable] struct {
	entries  []entry[T]
	freeList []ID
}

func newSlots[T refptr.Countable](capacity int) slots[T] {
	if capacity < 0 {
		capacity = 0
	}
	return slots[T]{
		entries:  make([]entry[T], 0, capacity),
		freeList: make([]ID, 0, 16),
	}
}

// alloc stores r and returns its ID, reusing freed slots first.
func (s *slots[T]) alloc(r *handle.Ref[T]) ID {
	e := entry[T]{ref: r}

	if len(s.freeList) > 0 {
		id := s.freeList[len(s.freeList)-1]
		s.freeList = s.freeList[:len(s.freeList)-1]
		s.entries[id-1] = e
		return id
	}

	s.entries = append(s.entries, e)
	return ID(len(s.entries))
}

// lookup returns the live entry for id, or nil.
func (s *slots[T]) lookup(id ID) *entry[T] {
	if id == 0 {
		return nil
	}
	idx := int(id - 1)
	if idx >= len(s.entries) {
		return nil
	}
	e := &s.entries[idx]
	if e.ref == nil {
		return nil
	}
	return e
}

// free clears id's slot and returns the Ref it held, still owning its unit.
func (s *slots[T]) free(id ID) *handle.Ref[T] {
	e := &s.entries[id-1]
	r := e.ref
	e.ref = nil
	e.borrows = 0
	s.freeList = append(s.freeList, id)
	return r
}

func (s *slots[T]) len() int {
	count := 0
	for _, e := range s.entries {
		if e.ref != nil {
			count++
		}
	}
	return count
}

type drained[T refptr.Countable] struct {
	entry[T]
	id ID
}

// drain empties the store and returns every live entry in ID order.
func (s *slots[T]) drain() []drained[T] {
	var out []drained[T]
	for i, e := range s.entries {
		if e.ref != nil {
			out = append(out, drained[T]{entry: e, id: ID(i + 1)})
		}
	}
	s.entries = nil
	s.freeList = nil
	return out
}
