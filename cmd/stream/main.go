// Stream - live cat detection from a webcam
//
// Captures frames from a camera, highlights trustworthy cat detections
// with tracker smoothing, and shows them in a window, records them to a
// video file, or serves them to a browser preview.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"gocv.io/x/gocv"

	"github.com/teslashibe/go-catwatch/internal/config"
	"github.com/teslashibe/go-catwatch/internal/log"
	"github.com/teslashibe/go-catwatch/pkg/annotate"
	"github.com/teslashibe/go-catwatch/pkg/debug"
	"github.com/teslashibe/go-catwatch/pkg/detect"
	"github.com/teslashibe/go-catwatch/pkg/track"
	"github.com/teslashibe/go-catwatch/pkg/web"
)

func main() {
	camera := flag.Int("camera", 0, "Camera index")
	flag.IntVar(camera, "c", 0, "Camera index (shorthand)")
	noFPS := flag.Bool("no-fps", false, "Hide the FPS overlay")
	output := flag.String("output", "", "Record annotated video to this file instead of displaying")
	flag.StringVar(output, "o", "", "Output file (shorthand)")
	windowName := flag.String("window-name", config.DefaultWindowTitle, "Window title")
	httpAddr := flag.String("http", "", "Serve a browser preview on this address (e.g. :8080)")
	modelPath := flag.String("model", config.ModelPath(), "Path to the ONNX model")
	flag.BoolVar(&debug.Enabled, "debug", false, "Enable debug logging")
	flag.BoolVar(&debug.Detections, "debug-detections", false, "Log every raw detection")
	flag.Parse()

	log.Init(config.LogLevel())

	fmt.Println("🐱 Catwatch Stream")
	fmt.Println("==================")

	if err := run(*camera, !*noFPS, *output, *windowName, *httpAddr, *modelPath); err != nil {
		log.Fatal("stream failed", "error", err)
	}
}

func run(camera int, showFPS bool, output, windowName, httpAddr, modelPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("🐱 Loading YOLOv11n...")
	yoloCfg := detect.DefaultYOLOConfig()
	yoloCfg.ModelPath = modelPath
	// Laxer than the filter's cut: the filter stage makes the strict call.
	yoloCfg.ConfidenceThresh = 0.75
	det, err := detect.NewYOLO(yoloCfg)
	if err != nil {
		return err
	}
	defer det.Close()
	fmt.Println("✅ Model loaded")

	fmt.Printf("📷 Opening camera %d...\n", camera)
	capture, err := gocv.VideoCaptureDevice(camera)
	if err != nil {
		return fmt.Errorf("open camera %d: %w", camera, err)
	}
	defer capture.Close()

	width := int(capture.Get(gocv.VideoCaptureFrameWidth))
	height := int(capture.Get(gocv.VideoCaptureFrameHeight))
	fps := capture.Get(gocv.VideoCaptureFPS)
	if fps <= 0 {
		fps = 30
	}
	fmt.Printf("✅ Camera open: %dx%d @ %.0f fps\n", width, height, fps)

	var writer *gocv.VideoWriter
	var window *gocv.Window
	if output != "" {
		if dir := filepath.Dir(output); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		writer, err = gocv.VideoWriterFile(output, "mp4v", fps, width, height, true)
		if err != nil {
			return fmt.Errorf("open writer %s: %w", output, err)
		}
		defer writer.Close()
		fmt.Printf("📹 Recording to: %s\n", output)
	} else {
		window = gocv.NewWindow(windowName)
		defer window.Close()
		fmt.Println("🎯 Press 'q' or ESC to quit")
	}

	var preview *web.Server
	if httpAddr != "" {
		preview = web.NewServer(httpAddr)
		preview.StartAsync()
		defer preview.Shutdown()
	}

	filterCfg := detect.DefaultFilterConfig()
	tracker := track.New(track.LiveConfig())
	presence := track.NewPresence(track.DefaultPresenceDecay)
	meter := track.NewMeter(track.DefaultMeterWindow)

	frame := gocv.NewMat()
	defer frame.Close()

	frames := 0
	cats := 0

	for ctx.Err() == nil {
		if ok := capture.Read(&frame); !ok || frame.Empty() {
			log.Error("failed to read frame from camera")
			break
		}
		frames++

		dets, err := det.Detect(frame)
		if err != nil {
			log.Error("detection failed", "frame", frames, "error", err)
			continue
		}
		trusted := detect.Filter(dets, filterCfg)

		decision := tracker.Observe(trusted)
		if len(trusted) > 0 {
			cats++
			// Render every trustworthy box; the tracker holds the first.
			annotate.Detections(&frame, trusted)
		} else {
			annotate.Decision(&frame, decision)
		}

		present := presence.Observe(len(trusted) > 0)
		if present {
			annotate.Banner(&frame)
		}

		rate := meter.Tick()
		if showFPS {
			annotate.FPS(&frame, rate)
		}

		if writer != nil {
			if err := writer.Write(frame); err != nil {
				return fmt.Errorf("encode frame %d: %w", frames, err)
			}
		} else {
			window.IMShow(frame)
			key := window.WaitKey(1)
			if key == 'q' || key == 27 { // 'q' or ESC
				fmt.Println("👋 Quit requested")
				break
			}
		}

		if preview != nil {
			publishPreview(preview, frame, web.StreamState{
				Frames:   frames,
				Cats:     cats,
				FPS:      rate,
				Present:  present,
				Tracking: decision.State == track.StateHeld,
			})
		}

		if frames%100 == 0 {
			fmt.Printf("⏳ Frames: %d, cat frames: %d\n", frames, cats)
		}
	}

	fmt.Println("\n📊 Stats:")
	fmt.Printf("   Frames processed: %d\n", frames)
	fmt.Printf("   Cat frames: %d\n", cats)
	fmt.Println("✅ Resources released")
	return nil
}

func publishPreview(preview *web.Server, frame gocv.Mat, state web.StreamState) {
	preview.UpdateState(func(s *web.StreamState) { *s = state })

	// JPEG encoding is not free, so don't pay for it with no audience.
	if !preview.Watching() {
		return
	}

	buf, err := gocv.IMEncode(gocv.JPEGFileExt, frame)
	if err != nil {
		return
	}
	defer buf.Close()
	preview.SendFrame(buf.GetBytes())
}
