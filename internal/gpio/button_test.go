package gpio

import (
	"errors"
	"testing"
)

type fakeLine struct {
	value    int
	err      error
	closeErr error
	closed   bool
}

func (l *fakeLine) Value() (int, error) { return l.value, l.err }

func (l *fakeLine) Close() error {
	l.closed = true
	return l.closeErr
}

func TestPressedFollowsLogicalLevel(t *testing.T) {
	line := &fakeLine{}
	b := &Button{name: "A", offset: 17, line: line}
	if pressed, err := b.Pressed(); err != nil || pressed {
		t.Fatalf("released line: pressed=%v err=%v", pressed, err)
	}
	line.value = 1
	if pressed, err := b.Pressed(); err != nil || !pressed {
		t.Fatalf("asserted line: pressed=%v err=%v", pressed, err)
	}
}

func TestPressedWrapsReadError(t *testing.T) {
	cause := errors.New("EIO")
	b := &Button{name: "B", offset: 27, line: &fakeLine{err: cause}}
	if _, err := b.Pressed(); !errors.Is(err, cause) {
		t.Fatalf("err=%v, want wrapped %v", err, cause)
	}
}

func TestCloseReleasesBothLines(t *testing.T) {
	la := &fakeLine{}
	lb := &fakeLine{closeErr: errors.New("busy")}
	bs := &Buttons{
		A: &Button{name: "A", offset: 17, line: la},
		B: &Button{name: "B", offset: 27, line: lb},
	}
	err := bs.Close()
	if !la.closed || !lb.closed {
		t.Fatal("both lines must be closed")
	}
	if err == nil {
		t.Fatal("close error from line B was dropped")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Chip == "" || cfg.ButtonA == cfg.ButtonB {
		t.Fatalf("bad defaults %+v", cfg)
	}
}
