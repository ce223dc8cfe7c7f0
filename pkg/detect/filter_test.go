package detect

import "testing"

func det(classID int, conf, x1, y1, x2, y2 float64) Detection {
	name := ""
	if classID >= 0 && classID < len(COCOClasses) {
		name = COCOClasses[classID]
	}
	return Detection{ClassID: classID, ClassName: name, Confidence: conf, X1: x1, Y1: y1, X2: x2, Y2: y2}
}

func TestFilter(t *testing.T) {
	cfg := DefaultFilterConfig()
	cat := cfg.TargetClass

	tests := []struct {
		name string
		in   []Detection
		want int // number of surviving detections
	}{
		{
			name: "empty input",
			in:   nil,
			want: 0,
		},
		{
			name: "wrong class excluded regardless of confidence",
			in: []Detection{
				det(cat+1, 0.99, 0, 0, 200, 200),
			},
			want: 0,
		},
		{
			name: "confident well-sized cat passes",
			in: []Detection{
				det(cat, 0.9, 0, 0, 100, 100),
			},
			want: 1,
		},
		{
			name: "low confidence excluded",
			in: []Detection{
				det(cat, 0.84, 0, 0, 100, 100),
			},
			want: 0,
		},
		{
			name: "confidence boundary is inclusive",
			in: []Detection{
				det(cat, 0.85, 0, 0, 100, 100),
			},
			want: 1,
		},
		{
			name: "width below minimum excluded",
			in: []Detection{
				det(cat, 0.9, 0, 0, 49, 60),
			},
			want: 0,
		},
		{
			name: "height below minimum excluded",
			in: []Detection{
				det(cat, 0.9, 0, 0, 60, 49),
			},
			want: 0,
		},
		{
			name: "size boundary is inclusive",
			in: []Detection{
				det(cat, 0.9, 0, 0, 50, 50),
			},
			want: 1,
		},
		{
			name: "too wide excluded",
			in: []Detection{
				det(cat, 0.9, 0, 0, 201, 100), // aspect 2.01
			},
			want: 0,
		},
		{
			name: "too tall excluded",
			in: []Detection{
				det(cat, 0.9, 0, 0, 100, 201), // aspect ~0.497
			},
			want: 0,
		},
		{
			name: "max aspect boundary is inclusive",
			in: []Detection{
				det(cat, 0.9, 0, 0, 200, 100), // aspect exactly 2.0
			},
			want: 1,
		},
		{
			name: "min aspect boundary is inclusive",
			in: []Detection{
				det(cat, 0.9, 0, 0, 100, 200), // aspect exactly 0.5
			},
			want: 1,
		},
		{
			name: "mixed classes keep only the cat",
			in: []Detection{
				det(cat, 0.9, 0, 0, 100, 100),
				det(cat+1, 0.99, 0, 0, 200, 200),
			},
			want: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(tc.in, cfg)
			if len(got) != tc.want {
				t.Errorf("Filter: got %d detections, want %d", len(got), tc.want)
			}
		})
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	cfg := DefaultFilterConfig()
	cat := cfg.TargetClass

	in := []Detection{
		det(cat, 0.97, 0, 0, 100, 100),
		det(cat+1, 0.95, 0, 0, 100, 100), // dropped
		det(cat, 0.92, 10, 10, 110, 110),
		det(cat, 0.88, 20, 20, 120, 120),
	}

	got := Filter(in, cfg)
	if len(got) != 3 {
		t.Fatalf("Filter: got %d detections, want 3", len(got))
	}
	if got[0].Confidence != 0.97 || got[1].Confidence != 0.92 || got[2].Confidence != 0.88 {
		t.Errorf("Filter reordered detections: %+v", got)
	}
}

func TestFilter_MixedSceneKeepsOnlyTrustworthyCat(t *testing.T) {
	// A confident cat next to an even more confident non-cat: only the
	// cat survives, in detector-reported position.
	cfg := DefaultFilterConfig()
	in := []Detection{
		det(15, 0.9, 0, 0, 100, 100),
		det(16, 0.99, 0, 0, 200, 200),
	}

	got := Filter(in, cfg)
	if len(got) != 1 {
		t.Fatalf("Filter: got %d detections, want 1", len(got))
	}
	if got[0].ClassID != 15 || got[0].Confidence != 0.9 {
		t.Errorf("Filter kept the wrong detection: %+v", got[0])
	}
}

func TestClassID(t *testing.T) {
	if id := ClassID("cat"); id != 15 {
		t.Errorf("ClassID(cat): got %d, want 15", id)
	}
	if id := ClassID("person"); id != 0 {
		t.Errorf("ClassID(person): got %d, want 0", id)
	}
	if id := ClassID("unicorn"); id != -1 {
		t.Errorf("ClassID(unicorn): got %d, want -1", id)
	}
}

func TestDetection_Geometry(t *testing.T) {
	d := det(15, 0.9, 10, 20, 110, 70)

	if w := d.Width(); w != 100 {
		t.Errorf("Width: got %v, want 100", w)
	}
	if h := d.Height(); h != 50 {
		t.Errorf("Height: got %v, want 50", h)
	}
	if a := d.Aspect(); a != 2.0 {
		t.Errorf("Aspect: got %v, want 2.0", a)
	}

	r := d.Rect()
	if r.Min.X != 10 || r.Min.Y != 20 || r.Max.X != 110 || r.Max.Y != 70 {
		t.Errorf("Rect: got %v", r)
	}
}
