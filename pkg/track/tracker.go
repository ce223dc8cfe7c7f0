// Package track provides temporal smoothing over per-frame detections:
// a hold-state tracker that bridges short detection gaps, a wall-clock
// presence debouncer, and a rolling frame-rate meter.
package track

import "github.com/teslashibe/go-catwatch/pkg/detect"

// State describes the tracker's decision for one frame.
type State int

const (
	// StateNone means there is nothing to render.
	StateNone State = iota
	// StateFresh means the frame carried a trustworthy detection.
	StateFresh
	// StateHeld means the frame had no detection but the previously
	// seen box is still within the hold budget.
	StateHeld
)

// Config holds tracker tunables.
type Config struct {
	// HoldBudget is the maximum consecutive frames the tracker keeps
	// rendering a stale box after the last trustworthy detection.
	HoldBudget int
}

// LiveConfig returns the hold budget tuned for live display,
// roughly one second at 30 fps.
func LiveConfig() Config {
	return Config{HoldBudget: 30}
}

// VideoConfig returns the hold budget tuned for file-based video
// re-encoding, roughly two seconds at 30 fps. Recorded video tolerates
// a longer bridge before it looks wrong.
func VideoConfig() Config {
	return Config{HoldBudget: 60}
}

// Decision is the tracker output for one frame: zero or one box.
type Decision struct {
	State  State
	Box    detect.Detection // valid when State != StateNone
	Missed int              // consecutive frames without a detection
}

// Tracker converts a possibly-empty per-frame set of trustworthy
// detections into a stable single box-to-render decision. Detector
// jitter, partial occlusion and motion blur routinely drop single
// frames; rendering raw per-frame output flickers. The tracker keeps
// the last box alive for up to HoldBudget frames instead.
//
// One Tracker instance per stream session. State must never carry
// over between two unrelated inputs; call Reset (or use a fresh
// Tracker) when a new video file or camera session starts.
type Tracker struct {
	cfg     Config
	held    detect.Detection
	holding bool
	missed  int
}

// New creates an idle tracker.
func New(cfg Config) *Tracker {
	return &Tracker{cfg: cfg}
}

// Observe consumes one frame's trustworthy detections and returns the
// rendering decision. A non-empty frame re-arms the hold with the first
// (highest-confidence) detection and resets the miss counter.
func (t *Tracker) Observe(dets []detect.Detection) Decision {
	if len(dets) > 0 {
		t.held = dets[0]
		t.holding = true
		t.missed = 0
		return Decision{State: StateFresh, Box: t.held}
	}

	if !t.holding {
		return Decision{State: StateNone}
	}

	t.missed++
	if t.missed > t.cfg.HoldBudget {
		t.reset()
		return Decision{State: StateNone}
	}

	return Decision{State: StateHeld, Box: t.held, Missed: t.missed}
}

// Reset returns the tracker to idle. Call at the start of every new
// stream session.
func (t *Tracker) Reset() {
	t.reset()
}

func (t *Tracker) reset() {
	t.held = detect.Detection{}
	t.holding = false
	t.missed = 0
}
