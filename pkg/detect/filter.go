package detect

// FilterConfig holds the predicate thresholds that turn raw detector
// output into trustworthy detections.
type FilterConfig struct {
	TargetClass   int     // COCO class ID to keep
	MinConfidence float64 // Reject detections below this confidence
	MinSize       float64 // Reject boxes narrower or shorter than this (pixels)
	MinAspect     float64 // Reject boxes with width/height below this
	MaxAspect     float64 // Reject boxes with width/height above this
}

// DefaultFilterConfig returns the thresholds tuned for filtering false
// positives (toys, textured backgrounds) in continuous streams.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		TargetClass:   ClassID(TargetClass),
		MinConfidence: 0.85,
		MinSize:       50,
		MinAspect:     0.5,
		MaxAspect:     2.0,
	}
}

// Filter returns the detections that pass all four predicates: target
// class, minimum confidence, minimum box size, and plausible aspect
// ratio. Order-preserving and side-effect free. Size and aspect bounds
// are inclusive.
//
// Precondition: every detection has Height() > 0. A zero-height box is
// a detector anomaly worth surfacing upstream, not silently guarding here.
func Filter(in []Detection, cfg FilterConfig) []Detection {
	out := make([]Detection, 0, len(in))
	for _, d := range in {
		if d.ClassID != cfg.TargetClass {
			continue
		}
		if d.Confidence < cfg.MinConfidence {
			continue
		}
		if d.Width() < cfg.MinSize || d.Height() < cfg.MinSize {
			continue
		}
		aspect := d.Aspect()
		if aspect < cfg.MinAspect || aspect > cfg.MaxAspect {
			continue
		}
		out = append(out, d)
	}
	return out
}
