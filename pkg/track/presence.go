package track

import "time"

// DefaultPresenceDecay is how long the presence signal survives after
// the last trustworthy detection.
const DefaultPresenceDecay = 2 * time.Second

// Presence derives a coarse "target present" signal from per-frame
// detection activity. It decays on wall-clock time, not frame count,
// because live-display cadence is not uniform (dropped frames,
// variable detector latency). It is independent of the Tracker and
// the two may disagree; that is expected.
type Presence struct {
	decay    time.Duration
	now      func() time.Time
	present  bool
	lastSeen time.Time
}

// NewPresence creates a presence debouncer with the given decay window.
func NewPresence(decay time.Duration) *Presence {
	return &Presence{decay: decay, now: time.Now}
}

// Observe updates the signal with whether this frame carried a
// trustworthy detection and reports the current state.
func (p *Presence) Observe(detected bool) bool {
	if detected {
		p.present = true
		p.lastSeen = p.now()
		return true
	}
	if p.present && p.now().Sub(p.lastSeen) > p.decay {
		p.present = false
	}
	return p.present
}

// Present reports the current signal without consuming a frame.
func (p *Presence) Present() bool {
	return p.present
}
