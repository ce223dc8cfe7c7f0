// Package detect provides YOLO object detection and detection filtering
// for the catwatch pipeline.
package detect

import (
	"image"

	"gocv.io/x/gocv"
)

// Detection represents one object reported by the detector for a single frame.
// Coordinates are pixel-space box corners in the source image.
type Detection struct {
	ClassID    int     // COCO class ID
	ClassName  string  // Human-readable class name
	Confidence float64 // Detection confidence (0-1)
	X1, Y1     float64 // Top-left corner
	X2, Y2     float64 // Bottom-right corner
}

// Width returns the box width in pixels.
func (d Detection) Width() float64 {
	return d.X2 - d.X1
}

// Height returns the box height in pixels.
func (d Detection) Height() float64 {
	return d.Y2 - d.Y1
}

// Aspect returns the width/height ratio.
// Precondition: Height() > 0. A zero-height box is a detector anomaly
// and must not reach this method.
func (d Detection) Aspect() float64 {
	return d.Width() / d.Height()
}

// Rect returns the box as an image.Rectangle for drawing.
func (d Detection) Rect() image.Rectangle {
	return image.Rect(int(d.X1), int(d.Y1), int(d.X2), int(d.Y2))
}

// Detector is the interface for object detection backends.
type Detector interface {
	// Detect finds objects in the frame, sorted by descending confidence.
	Detect(img gocv.Mat) ([]Detection, error)

	// Close releases resources
	Close() error
}

// COCOClasses contains the 80 COCO class names
var COCOClasses = []string{
	"person", "bicycle", "car", "motorcycle", "airplane", "bus", "train", "truck", "boat",
	"traffic light", "fire hydrant", "stop sign", "parking meter", "bench", "bird", "cat",
	"dog", "horse", "sheep", "cow", "elephant", "bear", "zebra", "giraffe", "backpack",
	"umbrella", "handbag", "tie", "suitcase", "frisbee", "skis", "snowboard", "sports ball",
	"kite", "baseball bat", "baseball glove", "skateboard", "surfboard", "tennis racket",
	"bottle", "wine glass", "cup", "fork", "knife", "spoon", "bowl", "banana", "apple",
	"sandwich", "orange", "broccoli", "carrot", "hot dog", "pizza", "donut", "cake", "chair",
	"couch", "potted plant", "bed", "dining table", "toilet", "tv", "laptop", "mouse",
	"remote", "keyboard", "cell phone", "microwave", "oven", "toaster", "sink", "refrigerator",
	"book", "clock", "vase", "scissors", "teddy bear", "hair drier", "toothbrush",
}

// TargetClass is the single class this system reports on.
const TargetClass = "cat"

// ClassID returns the COCO class ID for the given name, or -1 if unknown.
// Looking classes up by name keeps the pipeline correct even if the
// label taxonomy is ever reordered between model versions.
func ClassID(name string) int {
	for i, c := range COCOClasses {
		if c == name {
			return i
		}
	}
	return -1
}
