package detect

import (
	"fmt"
	"image"
	"os"
	"sort"
	"sync"

	"github.com/teslashibe/go-catwatch/pkg/debug"
	"gocv.io/x/gocv"
)

// YOLODetector runs a YOLO ONNX model through the OpenCV DNN module.
type YOLODetector struct {
	net       gocv.Net
	config    YOLOConfig
	mu        sync.Mutex
	inputSize image.Point
}

// YOLOConfig holds YOLO detector configuration
type YOLOConfig struct {
	ModelPath        string
	ConfidenceThresh float32
	NMSThresh        float32
	InputWidth       int
	InputHeight      int

	// ClassFilter restricts output to the given class IDs.
	// Empty means all classes.
	ClassFilter []int
}

// DefaultYOLOConfig returns production defaults for YOLOv11n
func DefaultYOLOConfig() YOLOConfig {
	return YOLOConfig{
		ModelPath:        "models/yolo11n.onnx",
		ConfidenceThresh: 0.25,
		NMSThresh:        0.45,
		InputWidth:       640,
		InputHeight:      640,
	}
}

// NewYOLO creates a new YOLO object detector
func NewYOLO(cfg YOLOConfig) (*YOLODetector, error) {
	// Check if model file exists
	if _, err := os.Stat(cfg.ModelPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("model file not found: %s", cfg.ModelPath)
	}

	// Load ONNX model
	net := gocv.ReadNetFromONNX(cfg.ModelPath)
	if net.Empty() {
		return nil, fmt.Errorf("failed to load YOLO model from %s", cfg.ModelPath)
	}

	// Set backend and target
	net.SetPreferableBackend(gocv.NetBackendDefault)
	net.SetPreferableTarget(gocv.NetTargetCPU)

	return &YOLODetector{
		net:       net,
		config:    cfg,
		inputSize: image.Pt(cfg.InputWidth, cfg.InputHeight),
	}, nil
}

// Detect finds objects in the frame, sorted by descending confidence.
func (d *YOLODetector) Detect(img gocv.Mat) ([]Detection, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if img.Empty() {
		return nil, fmt.Errorf("empty image")
	}

	imgW := float32(img.Cols())
	imgH := float32(img.Rows())

	// Create blob from image
	blob := gocv.BlobFromImage(img, 1.0/255.0, d.inputSize, gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	// Set input
	d.net.SetInput(blob, "")

	// Forward pass
	output := d.net.Forward("")
	defer output.Close()

	// Output shape: [1, 84, 8400] - 84 = 4 bbox + 80 classes, 8400 detections
	detections := d.parseOutput(output, imgW, imgH)

	if len(detections) > 0 {
		debug.DetLog("🔍 YOLO found %d object(s)\n", len(detections))
	}

	return detections, nil
}

// parseOutput parses the YOLOv8/v11 output tensor
func (d *YOLODetector) parseOutput(output gocv.Mat, imgW, imgH float32) []Detection {
	var boxes []image.Rectangle
	var confidences []float32
	var classIDs []int

	// Output: [1, 84, 8400] - need to transpose to [1, 8400, 84]
	// 84 = 4 (x, y, w, h) + 80 (class scores)
	rows := output.Cols() // 8400 detections
	cols := output.Rows() // 84 (4 bbox + 80 classes)

	// Get data pointer
	data, err := output.DataPtrFloat32()
	if err != nil {
		return nil
	}

	for i := 0; i < rows; i++ {
		// Get class scores (starting at index 4)
		maxScore := float32(0)
		maxClassID := 0

		for c := 4; c < cols; c++ {
			score := data[c*rows+i]
			if score > maxScore {
				maxScore = score
				maxClassID = c - 4
			}
		}

		if maxScore < d.config.ConfidenceThresh {
			continue
		}
		if !d.classAllowed(maxClassID) {
			continue
		}

		// Get bounding box (center x, center y, width, height)
		cx := data[0*rows+i]
		cy := data[1*rows+i]
		w := data[2*rows+i]
		h := data[3*rows+i]

		// Convert to corner format and scale to image size
		x1 := int((cx - w/2) * imgW / float32(d.config.InputWidth))
		y1 := int((cy - h/2) * imgH / float32(d.config.InputHeight))
		x2 := int((cx + w/2) * imgW / float32(d.config.InputWidth))
		y2 := int((cy + h/2) * imgH / float32(d.config.InputHeight))

		boxes = append(boxes, image.Rect(x1, y1, x2, y2))
		confidences = append(confidences, maxScore)
		classIDs = append(classIDs, maxClassID)
	}

	// Return early if no detections
	if len(boxes) == 0 {
		return nil
	}

	// Apply NMS
	indices := gocv.NMSBoxes(boxes, confidences, d.config.ConfidenceThresh, d.config.NMSThresh)

	detections := make([]Detection, 0, len(indices))
	for _, idx := range indices {
		box := boxes[idx]
		detections = append(detections, Detection{
			ClassID:    classIDs[idx],
			ClassName:  COCOClasses[classIDs[idx]],
			Confidence: float64(confidences[idx]),
			X1:         float64(box.Min.X),
			Y1:         float64(box.Min.Y),
			X2:         float64(box.Max.X),
			Y2:         float64(box.Max.Y),
		})
	}

	// Highest confidence first, as downstream takes the first box
	sort.SliceStable(detections, func(i, j int) bool {
		return detections[i].Confidence > detections[j].Confidence
	})

	return detections
}

func (d *YOLODetector) classAllowed(classID int) bool {
	if len(d.config.ClassFilter) == 0 {
		return true
	}
	for _, c := range d.config.ClassFilter {
		if c == classID {
			return true
		}
	}
	return false
}

// Close releases the detector resources
func (d *YOLODetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.net.Close()
	return nil
}
