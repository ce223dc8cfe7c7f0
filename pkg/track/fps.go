package track

import "time"

// DefaultMeterWindow is the minimum elapsed time between frame-rate
// recomputes.
const DefaultMeterWindow = time.Second

// Meter computes a rolling frames-per-second estimate for on-screen
// diagnostics. It never affects detection or tracking behavior.
type Meter struct {
	window      time.Duration
	now         func() time.Time
	frames      int
	windowStart time.Time
	rate        float64
}

// NewMeter creates a meter that recomputes once per window.
func NewMeter(window time.Duration) *Meter {
	return &Meter{window: window, now: time.Now}
}

// Tick records one processed frame and returns the current estimate.
// The rate is recomputed once the window has elapsed; between
// recomputes the previous value is reported unchanged.
func (m *Meter) Tick() float64 {
	t := m.now()
	if m.windowStart.IsZero() {
		m.windowStart = t
	}
	m.frames++

	elapsed := t.Sub(m.windowStart)
	if elapsed >= m.window {
		m.rate = float64(m.frames) / elapsed.Seconds()
		m.frames = 0
		m.windowStart = t
	}
	return m.rate
}

// Rate returns the last computed estimate.
func (m *Meter) Rate() float64 {
	return m.rate
}
