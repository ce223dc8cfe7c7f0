// Package debug provides global debug logging flags
package debug

import "fmt"

// Enabled controls whether debug logging is active
var Enabled bool

// Detections controls whether per-frame detection logs are shown.
// Use --debug-detections to enable these very verbose logs
var Detections bool

// Log prints a message only if debug mode is enabled
func Log(format string, args ...interface{}) {
	if Enabled {
		fmt.Printf(format, args...)
	}
}

// Logln prints a message with newline only if debug mode is enabled
func Logln(msg string) {
	if Enabled {
		fmt.Println(msg)
	}
}

// DetLog prints a message only if detection debug mode is enabled
func DetLog(format string, args ...interface{}) {
	if Detections {
		fmt.Printf(format, args...)
	}
}
