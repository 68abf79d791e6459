package debounce

import "testing"

func TestFlipFromNormalEntersHold(t *testing.T) {
	m := New(5)
	if m.Holding() {
		t.Fatal("new machine must start Normal")
	}
	m.Flip()
	if got, want := m.State(), (State{Mode: Holding, Ticks: 5}); got != want {
		t.Fatalf("after Flip state=%v, want %v", got, want)
	}
}

func TestWaitOneCountsDownAndSaturates(t *testing.T) {
	const width = 5
	m := New(width)
	m.Flip()
	for i := 0; i < width; i++ {
		m.WaitOne()
	}
	if got, want := m.State(), (State{Mode: Holding, Ticks: 0}); got != want {
		t.Fatalf("after %d waits state=%v, want %v", width, got, want)
	}
	m.WaitOne()
	if got, want := m.State(), (State{Mode: Holding, Ticks: 0}); got != want {
		t.Fatalf("WaitOne on holding(0) gave %v, want %v", got, want)
	}
}

func TestWaitOneLeavesNormalAlone(t *testing.T) {
	m := New(3)
	m.WaitOne()
	if m.State() != (State{Mode: Normal}) {
		t.Fatalf("WaitOne changed Normal into %v", m.State())
	}
}

func TestFlipReleasesFromAnyHold(t *testing.T) {
	for remaining := 0; remaining <= 5; remaining++ {
		m := New(5)
		m.Flip()
		for i := 0; i < 5-remaining; i++ {
			m.WaitOne()
		}
		if m.Ticks() != uint16(remaining) {
			t.Fatalf("setup: ticks=%d, want %d", m.Ticks(), remaining)
		}
		m.Flip()
		if m.State() != (State{Mode: Normal}) {
			t.Fatalf("Flip from holding(%d) gave %v", remaining, m.State())
		}
	}
}

func TestTickReleasesAfterWidthPlusOneFrames(t *testing.T) {
	const width = 4
	m := New(width)
	m.Flip()
	for frame := 1; frame <= width; frame++ {
		if m.Tick() {
			t.Fatalf("released early on frame %d", frame)
		}
		if got := m.Ticks(); got != uint16(width-frame) {
			t.Fatalf("frame %d ticks=%d, want %d", frame, got, width-frame)
		}
	}
	if !m.Tick() {
		t.Fatalf("expected release once the hold reached zero, state %v", m.State())
	}
	if m.Holding() {
		t.Fatal("machine still holding after release")
	}
	if m.Tick() {
		t.Fatal("Tick on Normal must not report a release")
	}
}

func TestZeroWidthReleasesOnNextTick(t *testing.T) {
	m := New(0)
	m.Flip()
	if !m.Holding() || m.Ticks() != 0 {
		t.Fatalf("zero-width flip gave %v", m.State())
	}
	if !m.Tick() {
		t.Fatal("zero-width hold must release on the next tick")
	}
}

func TestStateStrings(t *testing.T) {
	cases := map[State]string{
		{Mode: Normal}:            "normal",
		{Mode: Holding, Ticks: 3}: "holding(3)",
		{Mode: Mode(9)}:           "mode(9)",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("%#v.String()=%q, want %q", s, got, want)
		}
	}
}
