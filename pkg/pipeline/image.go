// Package pipeline implements per-input processing for the batch modes:
// decode, detect, filter, annotate, and save into the scratch directory.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"gocv.io/x/gocv"

	"github.com/teslashibe/go-catwatch/pkg/annotate"
	"github.com/teslashibe/go-catwatch/pkg/debug"
	"github.com/teslashibe/go-catwatch/pkg/detect"
)

// ImageProcessor annotates a single still image.
type ImageProcessor struct {
	Detector detect.Detector
	Filter   detect.FilterConfig
}

// Process decodes the image, keeps only trustworthy detections, and
// writes the annotated copy into saveDir under the input's name.
func (p *ImageProcessor) Process(_ context.Context, path, saveDir string) error {
	img := gocv.IMRead(path, gocv.IMReadColor)
	if img.Empty() {
		return fmt.Errorf("failed to decode image: %s", path)
	}
	defer img.Close()

	dets, err := p.Detector.Detect(img)
	if err != nil {
		return fmt.Errorf("detect %s: %w", filepath.Base(path), err)
	}
	trusted := detect.Filter(dets, p.Filter)
	annotate.Detections(&img, trusted)

	debug.Log("🐱 %s: %d raw, %d trustworthy\n", filepath.Base(path), len(dets), len(trusted))

	out := filepath.Join(saveDir, filepath.Base(path))
	if ok := gocv.IMWrite(out, img); !ok {
		return fmt.Errorf("failed to write %s", out)
	}
	return nil
}
