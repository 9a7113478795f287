package handle

import (
	"errors"
	"testing"

	"github.com/wippyai/refptr"
	rerrors "github.com/wippyai/refptr/errors"
)

type shape interface {
	refptr.Countable
	Area() int
}

type named interface {
	refptr.Countable
	Name() string
}

type square struct {
	tracked
	side int
}

func (s *square) Area() int { return s.side * s.side }

func expectMismatch(t *testing.T) {
	t.Helper()
	r := recover()
	err, ok := r.(error)
	if !ok {
		t.Fatalf("expected error panic, got %v", r)
	}
	if !errors.Is(err, &rerrors.Error{Phase: rerrors.PhaseConvert, Kind: rerrors.KindTypeMismatch}) {
		t.Fatalf("expected type mismatch, got %v", err)
	}
}

func TestCloneAs(t *testing.T) {
	sq := &square{side: 3}
	src := New(sq)

	dst := CloneAs[shape](src)
	if sq.count != 2 {
		t.Fatalf("expected count 2, got %d", sq.count)
	}
	if !src.Valid() {
		t.Fatal("source should keep its unit")
	}
	if dst.Get().Area() != 9 {
		t.Fatal("converted Ref should reach the object")
	}

	dst.Drop()
	src.Drop()
	if sq.count != 0 || sq.destroyed != 1 {
		t.Fatalf("expected destroyed once at zero, got count %d destroyed %d", sq.count, sq.destroyed)
	}
}

func TestCloneAs_Empty(t *testing.T) {
	var src Ref[*square]
	if CloneAs[shape](&src).Valid() {
		t.Fatal("conversion of empty Ref should be empty")
	}
}

func TestCloneAs_Mismatch(t *testing.T) {
	sq := &square{side: 2}
	src := New(sq)
	defer func() {
		if sq.count != 1 {
			t.Errorf("failed conversion touched the count: %d", sq.count)
		}
	}()
	defer expectMismatch(t)
	CloneAs[named](src)
}

func TestMoveAs(t *testing.T) {
	sq := &square{side: 4}
	src := New(sq)

	dst := MoveAs[shape](src)
	if sq.count != 1 {
		t.Fatalf("expected count 1, got %d", sq.count)
	}
	if src.Valid() {
		t.Fatal("source should be empty after MoveAs")
	}
	if dst.Get().Area() != 16 {
		t.Fatal("destination should reach the object")
	}
	dst.Drop()
	if sq.count != 0 {
		t.Fatalf("expected count 0, got %d", sq.count)
	}
}

func TestMoveAs_MismatchKeepsSource(t *testing.T) {
	sq := &square{side: 1}
	src := New(sq)
	defer func() {
		if !src.Valid() || sq.count != 1 {
			t.Errorf("failed MoveAs should leave the source owning, count %d", sq.count)
		}
	}()
	defer expectMismatch(t)
	MoveAs[named](src)
}

func TestAssignAs(t *testing.T) {
	sq := &square{side: 2}
	other := &square{side: 5}
	dst := New[shape](other)
	src := New(sq)

	AssignAs(dst, src)
	if sq.count != 2 {
		t.Fatalf("expected count 2, got %d", sq.count)
	}
	if other.count != 0 || other.destroyed != 1 {
		t.Fatal("previous object should be released")
	}

	// Same object through a different static type.
	AssignAs(dst, src)
	if sq.count != 2 || sq.destroyed != 0 {
		t.Fatalf("reassigning the same object changed the count: %d", sq.count)
	}

	var empty Ref[*square]
	AssignAs(dst, &empty)
	if dst.Valid() || sq.count != 1 {
		t.Fatal("assigning an empty Ref should release the destination")
	}
	src.Drop()
}

func TestMoveFromAs(t *testing.T) {
	sq := &square{side: 2}
	other := &square{side: 5}
	dst := New[shape](other)
	src := New(sq)

	MoveFromAs(dst, src)
	if sq.count != 1 {
		t.Fatalf("expected count 1, got %d", sq.count)
	}
	if other.count != 0 {
		t.Fatal("previous object should be released")
	}
	if src.Valid() {
		t.Fatal("source should be empty")
	}
	if dst.Get().Area() != 4 {
		t.Fatal("destination should hold the moved object")
	}
	dst.Drop()
}
