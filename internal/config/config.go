// Package config provides configuration helpers for go-catwatch commands.
package config

import "os"

// Default filesystem layout. The batch commands operate on fixed
// directory names, matching the layout the detection model writes to.
const (
	DefaultDatasetDir  = "dataset"
	DefaultResultDir   = "result"
	DefaultScratchDir  = "runs"
	DefaultModelPath   = "models/yolo11n.onnx"
	DefaultWindowTitle = "Catwatch"
)

// DatasetDir returns the input directory from CATWATCH_DATASET or the default.
func DatasetDir() string {
	return envOr("CATWATCH_DATASET", DefaultDatasetDir)
}

// ResultDir returns the output directory from CATWATCH_RESULT or the default.
func ResultDir() string {
	return envOr("CATWATCH_RESULT", DefaultResultDir)
}

// ScratchDir returns the transient detector working directory from
// CATWATCH_SCRATCH or the default.
func ScratchDir() string {
	return envOr("CATWATCH_SCRATCH", DefaultScratchDir)
}

// ModelPath returns the ONNX model path from CATWATCH_MODEL or the default.
func ModelPath() string {
	return envOr("CATWATCH_MODEL", DefaultModelPath)
}

// LogLevel returns the log level from CATWATCH_LOG_LEVEL or "info".
func LogLevel() string {
	return envOr("CATWATCH_LOG_LEVEL", "info")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
