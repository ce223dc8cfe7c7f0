package track

import (
	"testing"

	"github.com/teslashibe/go-catwatch/pkg/detect"
)

func catAt(conf, x1, y1, x2, y2 float64) detect.Detection {
	return detect.Detection{
		ClassID: 15, ClassName: "cat", Confidence: conf,
		X1: x1, Y1: y1, X2: x2, Y2: y2,
	}
}

func TestTracker_IdleWithoutDetections(t *testing.T) {
	tr := New(LiveConfig())

	for i := 0; i < 5; i++ {
		d := tr.Observe(nil)
		if d.State != StateNone {
			t.Fatalf("frame %d: got state %v, want StateNone", i, d.State)
		}
	}
}

func TestTracker_HoldBridgesGapThenExpires(t *testing.T) {
	budget := 5
	tr := New(Config{HoldBudget: budget})

	box := catAt(0.9, 10, 10, 110, 110)
	d := tr.Observe([]detect.Detection{box})
	if d.State != StateFresh || d.Box != box {
		t.Fatalf("frame 0: got %+v, want fresh %v", d, box)
	}

	// Frames 1..budget emit the held box, then nothing.
	for i := 1; i <= budget+3; i++ {
		d = tr.Observe(nil)
		if i <= budget {
			if d.State != StateHeld {
				t.Fatalf("frame %d: got state %v, want StateHeld", i, d.State)
			}
			if d.Box != box {
				t.Fatalf("frame %d: held box changed: %+v", i, d.Box)
			}
			if d.Missed != i {
				t.Fatalf("frame %d: missed = %d, want %d", i, d.Missed, i)
			}
		} else if d.State != StateNone {
			t.Fatalf("frame %d: got state %v, want StateNone", i, d.State)
		}
	}
}

func TestTracker_FreshDetectionResetsCounter(t *testing.T) {
	tr := New(Config{HoldBudget: 3})

	tr.Observe([]detect.Detection{catAt(0.9, 0, 0, 100, 100)})
	tr.Observe(nil)
	tr.Observe(nil) // missed = 2, one frame from expiry

	newBox := catAt(0.95, 50, 50, 150, 150)
	d := tr.Observe([]detect.Detection{newBox})
	if d.State != StateFresh || d.Box != newBox {
		t.Fatalf("re-arm: got %+v", d)
	}

	// Full budget available again.
	for i := 1; i <= 3; i++ {
		d = tr.Observe(nil)
		if d.State != StateHeld || d.Missed != i {
			t.Fatalf("frame %d after re-arm: got %+v", i, d)
		}
	}
	if d = tr.Observe(nil); d.State != StateNone {
		t.Fatalf("after budget: got state %v, want StateNone", d.State)
	}
}

func TestTracker_TakesFirstDetection(t *testing.T) {
	tr := New(LiveConfig())

	best := catAt(0.97, 0, 0, 100, 100)
	other := catAt(0.88, 200, 200, 300, 300)
	tr.Observe([]detect.Detection{best, other})

	d := tr.Observe(nil)
	if d.State != StateHeld || d.Box != best {
		t.Errorf("held box: got %+v, want first detection %v", d.Box, best)
	}
}

func TestTracker_BudgetTwoScenario(t *testing.T) {
	tr := New(Config{HoldBudget: 2})
	box := catAt(0.9, 0, 0, 100, 100)

	steps := []struct {
		dets []detect.Detection
		want State
	}{
		{[]detect.Detection{box}, StateFresh},
		{nil, StateHeld}, // counter 1
		{nil, StateHeld}, // counter 2
		{nil, StateNone}, // counter 3 exceeds budget
	}

	for i, s := range steps {
		d := tr.Observe(s.dets)
		if d.State != s.want {
			t.Errorf("frame %d: got state %v, want %v", i+1, d.State, s.want)
		}
	}
}

func TestTracker_Reset(t *testing.T) {
	tr := New(LiveConfig())
	tr.Observe([]detect.Detection{catAt(0.9, 0, 0, 100, 100)})

	tr.Reset()

	d := tr.Observe(nil)
	if d.State != StateNone {
		t.Errorf("after reset: got state %v, want StateNone", d.State)
	}
}
