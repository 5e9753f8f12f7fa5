package pacer

import (
	"testing"
	"time"
)

func TestPaceNeverReturnsEarly(t *testing.T) {
	p := New(100 * time.Microsecond)
	want := 4 * 100 * time.Microsecond

	start := time.Now()
	p.Pace(4)
	got := time.Since(start)

	if got < want {
		t.Errorf("Pace(4) returned after %s, want at least %s", got, want)
	}
}

func TestPaceSafetyCapBoundsWait(t *testing.T) {
	// A pathologically long period should still be bounded by the
	// safety cap rather than stalling the test suite.
	p := New(50 * time.Millisecond)
	cap := SafetyMultiple * 50 * time.Millisecond

	start := time.Now()
	p.Pace(1)
	got := time.Since(start)

	if got > cap+20*time.Millisecond {
		t.Errorf("Pace(1) took %s, want no more than the safety cap %s", got, cap)
	}
}

func TestPaceZeroCyclesReturnsImmediately(t *testing.T) {
	p := New(time.Millisecond)
	start := time.Now()
	p.Pace(0)
	if d := time.Since(start); d > 5*time.Millisecond {
		t.Errorf("Pace(0) took %s, want near-immediate return", d)
	}
}

func TestSetPeriod(t *testing.T) {
	p := New(time.Millisecond)
	p.SetPeriod(2 * time.Millisecond)
	if got, want := p.Period(), 2*time.Millisecond; got != want {
		t.Errorf("Period() = %s, want %s", got, want)
	}
}
