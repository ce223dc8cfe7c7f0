package track

import (
	"testing"
	"time"
)

// fakeClock steps time manually for deterministic wall-clock tests.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestPresence_StartsAbsent(t *testing.T) {
	p := NewPresence(DefaultPresenceDecay)
	if p.Observe(false) {
		t.Error("presence should start false")
	}
}

func TestPresence_SurvivesGapsUnderDecay(t *testing.T) {
	clock := newFakeClock()
	p := NewPresence(2 * time.Second)
	p.now = clock.now

	if !p.Observe(true) {
		t.Fatal("detection should set presence")
	}

	// Any gap up to and including the decay window keeps the signal up.
	for _, gap := range []time.Duration{
		100 * time.Millisecond,
		900 * time.Millisecond,
		time.Second, // cumulative 2.0s exactly, not strictly greater
	} {
		clock.advance(gap)
		if !p.Observe(false) {
			t.Fatalf("presence dropped after cumulative gap %v", gap)
		}
	}

	// One more millisecond pushes the gap strictly past the window.
	clock.advance(time.Millisecond)
	if p.Observe(false) {
		t.Error("presence should drop once the gap exceeds the decay window")
	}
}

func TestPresence_DetectionRearmsSignal(t *testing.T) {
	clock := newFakeClock()
	p := NewPresence(2 * time.Second)
	p.now = clock.now

	p.Observe(true)
	clock.advance(3 * time.Second)
	if p.Observe(false) {
		t.Fatal("presence should have decayed")
	}

	if !p.Observe(true) {
		t.Error("new detection should re-arm presence")
	}
	clock.advance(1900 * time.Millisecond)
	if !p.Observe(false) {
		t.Error("re-armed presence should survive a 1.9s gap")
	}
}

func TestPresence_IndependentOfFrameCount(t *testing.T) {
	clock := newFakeClock()
	p := NewPresence(2 * time.Second)
	p.now = clock.now

	p.Observe(true)

	// Many empty frames in a short wall-clock span leave presence up.
	for i := 0; i < 100; i++ {
		clock.advance(10 * time.Millisecond)
		if !p.Observe(false) {
			t.Fatalf("presence dropped on empty frame %d at 1.0s total gap or less", i)
		}
	}
}
