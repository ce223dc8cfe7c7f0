package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"gocv.io/x/gocv"

	"github.com/teslashibe/go-catwatch/pkg/annotate"
	"github.com/teslashibe/go-catwatch/pkg/debug"
	"github.com/teslashibe/go-catwatch/pkg/detect"
	"github.com/teslashibe/go-catwatch/pkg/track"
)

// videoFourCC is the codec for the intermediate artifact written into
// scratch. The orchestrator copies it out under its final name.
const videoFourCC = "MJPG"

// VideoProcessor re-encodes one video file frame by frame with
// tracker-smoothed annotations.
type VideoProcessor struct {
	Detector detect.Detector
	Filter   detect.FilterConfig
	Tracker  track.Config
}

// Process reads every frame, annotates it with the tracker's decision,
// and encodes the result into saveDir as <stem>.avi. A fresh tracker is
// used per file so no hold state leaks between unrelated videos. An
// interrupt via ctx stops between frames and returns ctx.Err(); the
// capture and writer handles are released on every exit path.
func (p *VideoProcessor) Process(ctx context.Context, path, saveDir string) error {
	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return fmt.Errorf("open video %s: %w", path, err)
	}
	defer capture.Close()

	width := int(capture.Get(gocv.VideoCaptureFrameWidth))
	height := int(capture.Get(gocv.VideoCaptureFrameHeight))
	fps := capture.Get(gocv.VideoCaptureFPS)
	if fps <= 0 {
		fps = 30
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	out := filepath.Join(saveDir, stem+".avi")
	writer, err := gocv.VideoWriterFile(out, videoFourCC, fps, width, height, true)
	if err != nil {
		return fmt.Errorf("open writer %s: %w", out, err)
	}
	defer writer.Close()

	frame := gocv.NewMat()
	defer frame.Close()

	tracker := track.New(p.Tracker)
	frames := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if ok := capture.Read(&frame); !ok {
			break
		}
		if frame.Empty() {
			continue
		}
		frames++

		dets, err := p.Detector.Detect(frame)
		if err != nil {
			return fmt.Errorf("detect frame %d of %s: %w", frames, filepath.Base(path), err)
		}
		trusted := detect.Filter(dets, p.Filter)
		annotate.Decision(&frame, tracker.Observe(trusted))

		if err := writer.Write(frame); err != nil {
			return fmt.Errorf("encode frame %d of %s: %w", frames, filepath.Base(path), err)
		}
	}

	if frames == 0 {
		return fmt.Errorf("no readable frames in %s", path)
	}
	debug.Log("🎬 %s: %d frames re-encoded\n", filepath.Base(path), frames)
	return nil
}
