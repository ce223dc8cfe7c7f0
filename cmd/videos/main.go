// Videos - batch cat detection over recorded video files
//
// Scans the dataset directory for video files, re-encodes each one with
// tracker-smoothed cat annotations, and collects the results into
// result/video.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/teslashibe/go-catwatch/internal/config"
	"github.com/teslashibe/go-catwatch/internal/log"
	"github.com/teslashibe/go-catwatch/pkg/batch"
	"github.com/teslashibe/go-catwatch/pkg/debug"
	"github.com/teslashibe/go-catwatch/pkg/detect"
	"github.com/teslashibe/go-catwatch/pkg/pipeline"
	"github.com/teslashibe/go-catwatch/pkg/track"
)

func main() {
	flag.BoolVar(&debug.Enabled, "debug", false, "Enable debug logging")
	flag.Parse()

	log.Init(config.LogLevel())

	fmt.Println("🐱 Catwatch Videos")
	fmt.Println("==================")

	if err := run(); err != nil {
		log.Fatal("run failed", "error", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("🐱 Loading YOLOv11n...")
	yoloCfg := detect.DefaultYOLOConfig()
	yoloCfg.ModelPath = config.ModelPath()
	// Continuous streams run the detector at a stricter threshold and
	// only ever render the target class.
	yoloCfg.ConfidenceThresh = 0.75
	yoloCfg.ClassFilter = []int{detect.ClassID(detect.TargetClass)}
	det, err := detect.NewYOLO(yoloCfg)
	if err != nil {
		return err
	}
	defer det.Close()
	fmt.Println("✅ Model loaded")

	proc := &pipeline.VideoProcessor{
		Detector: det,
		Filter:   detect.DefaultFilterConfig(),
		Tracker:  track.VideoConfig(),
	}

	resultDir := filepath.Join(config.ResultDir(), "video")
	o := batch.New(batch.Config{
		InputDir:    config.DatasetDir(),
		ResultDir:   resultDir,
		Extensions:  []string{".mov", ".mp4", ".avi", ".mkv"},
		ArtifactExt: ".avi",
		RenameExt:   ".mp4",
	}, batch.NewScratch(config.ScratchDir()), proc)

	sum, err := o.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println("--------------------------------------------------")
	fmt.Printf("📊 Done: %d succeeded", sum.Succeeded)
	if sum.Failed > 0 {
		fmt.Printf(", %d failed", sum.Failed)
	}
	fmt.Printf("\n📁 Results saved to: %s\n", resultDir)

	if ctx.Err() != nil {
		fmt.Println("⚠️  Interrupted by user")
	}
	return nil
}
