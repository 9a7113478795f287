package resource

import (
	"go.uber.org/zap"

	"github.com/wippyai/refptr/errors"
)

// ID is an opaque reference to an entry in a table.
// ID 0 is reserved and always invalid.
type ID uint32

// EventType identifies a table lifecycle notification.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDropped
	EventRemoved
	EventBorrowed
	EventBorrowReturned
)

func (e EventType) String() string {
	switch e {
	case EventCreated:
		return "created"
	case EventDropped:
		return "dropped"
	case EventRemoved:
		return "removed"
	case EventBorrowed:
		return "borrowed"
	case EventBorrowReturned:
		return "borrow_returned"
	default:
		return "unknown"
	}
}

// Event represents an entry lifecycle event.
type Event struct {
	Value   any
	ID      ID
	Borrows uint32
	Type    EventType
}

// Observer receives notifications about entry lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}

// Sentinel errors for errors.Is matching. Returned errors carry the ID.
var (
	ErrClosed            = errors.Closed(errors.PhaseTable, "resource table")
	ErrNotFound          = &errors.Error{Phase: errors.PhaseTable, Kind: errors.KindNotFound}
	ErrOutstandingBorrow = &errors.Error{Phase: errors.PhaseTable, Kind: errors.KindOutstandingBorrow}
	ErrInvalidInput      = &errors.Error{Phase: errors.PhaseTable, Kind: errors.KindInvalidInput}
)

// Options configures a Table.
type Options struct {
	// Logger overrides the package logger for this table.
	Logger *zap.Logger
	// InitialCapacity presizes the entry slice.
	InitialCapacity int
}

// DefaultOptions returns default table configuration.
func DefaultOptions() Options {
	return Options{
		InitialCapacity: 64,
	}
}
