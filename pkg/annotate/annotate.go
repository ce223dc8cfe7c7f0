// Package annotate draws detection results onto frames.
package annotate

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/teslashibe/go-catwatch/pkg/detect"
	"github.com/teslashibe/go-catwatch/pkg/track"
)

var (
	boxColor   = color.RGBA{R: 255, G: 165, B: 0, A: 0} // orange
	alertColor = color.RGBA{R: 255, G: 0, B: 0, A: 0}
	textColor  = color.RGBA{R: 255, G: 255, B: 255, A: 0}
)

// Fresh draws a full-emphasis box with a confidence label.
func Fresh(frame *gocv.Mat, d detect.Detection) {
	drawBox(frame, d.Rect(), fmt.Sprintf("Cat: %.2f", d.Confidence), 4)
}

// Tracked draws a lower-emphasis box for a held detection.
func Tracked(frame *gocv.Mat, d detect.Detection) {
	drawBox(frame, d.Rect(), fmt.Sprintf("Cat (track): %.2f", d.Confidence), 2)
}

// Detections draws every detection at full emphasis (still images).
func Detections(frame *gocv.Mat, dets []detect.Detection) {
	for _, d := range dets {
		Fresh(frame, d)
	}
}

// Decision draws whatever the tracker decided for this frame.
func Decision(frame *gocv.Mat, d track.Decision) {
	switch d.State {
	case track.StateFresh:
		Fresh(frame, d.Box)
	case track.StateHeld:
		Tracked(frame, d.Box)
	}
}

// Banner draws the persistent detection indicator across the top.
func Banner(frame *gocv.Mat) {
	gocv.PutText(frame, "CAT DETECTED!", image.Pt(20, 50), gocv.FontHersheySimplex, 1.2, alertColor, 3)
	gocv.Circle(frame, image.Pt(frame.Cols()-50, 50), 20, alertColor, -1)
}

// FPS draws the frame-rate overlay in the bottom-left corner.
func FPS(frame *gocv.Mat, rate float64) {
	label := fmt.Sprintf("FPS: %.1f", rate)
	gocv.PutText(frame, label, image.Pt(10, frame.Rows()-20), gocv.FontHersheySimplex, 0.6, textColor, 1)
}

func drawBox(frame *gocv.Mat, r image.Rectangle, label string, thickness int) {
	gocv.Rectangle(frame, r, boxColor, thickness)
	gocv.PutText(frame, label, image.Pt(r.Min.X, r.Min.Y-10), gocv.FontHersheySimplex, 0.8, boxColor, 2)
}
