package handle

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })
	return logs
}

func TestLogger_Default(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger should never be nil")
	}
}

func TestLogger_DetachAndAdopt(t *testing.T) {
	logs := observeLogs(t)

	o := &tracked{}
	r := New(o)
	p := r.Detach()

	entries := logs.FilterMessage("handle detached reference").All()
	if len(entries) != 1 {
		t.Fatalf("expected one detach entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["type"]; got != "*handle.tracked" {
		t.Fatalf("unexpected type field %v", got)
	}

	Adopt(p).Drop()
	if logs.FilterMessage("handle adopted reference").Len() != 1 {
		t.Fatal("expected one adopt entry")
	}

	// Detaching an empty handle hands nothing over.
	r.Detach()
	if logs.FilterMessage("handle detached reference").Len() != 1 {
		t.Fatal("empty Detach should not log")
	}
}

func TestLogger_ConversionFailure(t *testing.T) {
	logs := observeLogs(t)

	sq := &square{side: 1}
	src := New(sq)
	func() {
		defer func() { _ = recover() }()
		CloneAs[named](src)
	}()

	entries := logs.FilterMessage("handle conversion failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one conversion entry, got %d", len(entries))
	}
	if entries[0].Level != zapcore.ErrorLevel {
		t.Fatalf("expected error level, got %v", entries[0].Level)
	}
	src.Drop()
}
