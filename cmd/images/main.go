// Images - batch cat detection over still images
//
// Scans the dataset directory for JPG images, annotates trustworthy
// cat detections, and collects the results into the result directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/teslashibe/go-catwatch/internal/config"
	"github.com/teslashibe/go-catwatch/internal/log"
	"github.com/teslashibe/go-catwatch/pkg/batch"
	"github.com/teslashibe/go-catwatch/pkg/debug"
	"github.com/teslashibe/go-catwatch/pkg/detect"
	"github.com/teslashibe/go-catwatch/pkg/pipeline"
)

func main() {
	flag.BoolVar(&debug.Enabled, "debug", false, "Enable debug logging")
	flag.Parse()

	log.Init(config.LogLevel())

	fmt.Println("🐱 Catwatch Images")
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
	det, err := detect.NewYOLO(yoloCfg)
	if err != nil {
		return err
	}
	defer det.Close()
	fmt.Println("✅ Model loaded")

	proc := &pipeline.ImageProcessor{
		Detector: det,
		Filter:   detect.DefaultFilterConfig(),
	}

	o := batch.New(batch.Config{
		InputDir:    config.DatasetDir(),
		ResultDir:   config.ResultDir(),
		Extensions:  []string{".jpg"},
		ArtifactExt: ".jpg",
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
	fmt.Printf("\n📁 Results saved to: %s\n", config.ResultDir())

	if ctx.Err() != nil {
		fmt.Println("⚠️  Interrupted by user")
	}
	return nil
}
