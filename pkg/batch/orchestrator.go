// Package batch drives the detection pipeline over every input in a
// directory, one input at a time, with fault isolation: one input's
// failure never aborts the run.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/teslashibe/go-catwatch/internal/log"
)

// Summary aggregates per-input outcomes for one run.
type Summary struct {
	RunID     uuid.UUID
	Succeeded int
	Failed    int
}

// Total returns the number of inputs that were processed.
func (s Summary) Total() int {
	return s.Succeeded + s.Failed
}

// Processor handles one input file. Any artifacts it produces must be
// written into saveDir, where the orchestrator discovers them.
type Processor interface {
	Process(ctx context.Context, path, saveDir string) error
}

// ProcessorFunc adapts a function to the Processor interface.
type ProcessorFunc func(ctx context.Context, path, saveDir string) error

// Process calls f.
func (f ProcessorFunc) Process(ctx context.Context, path, saveDir string) error {
	return f(ctx, path, saveDir)
}

// Config holds the fixed filesystem layout and matching rules for a run.
type Config struct {
	InputDir    string   // scanned for inputs
	ResultDir   string   // cleared of files at run start, receives artifacts
	Extensions  []string // lowercase input extensions with leading dot
	ArtifactExt string   // lowercase extension of detector artifacts in the save dir
	RenameExt   string   // optional replacement extension for copied artifacts
}

// Orchestrator applies a Processor to every discovered input.
type Orchestrator struct {
	cfg     Config
	scratch *Scratch
	proc    Processor
}

// New creates an orchestrator over the given scratch resource.
func New(cfg Config, scratch *Scratch, proc Processor) *Orchestrator {
	return &Orchestrator{cfg: cfg, scratch: scratch, proc: proc}
}

// Run enumerates the inputs and processes each independently. It
// returns an error only for run-level preconditions (missing input
// directory, unusable result directory); per-input failures are
// counted in the Summary instead. An interrupt via ctx stops between
// inputs; the scratch directory is cleaned up on every exit path.
func (o *Orchestrator) Run(ctx context.Context) (Summary, error) {
	sum := Summary{RunID: uuid.New()}
	runLog := log.With("run_id", sum.RunID.String())

	// Stale results are cleared even when the scan comes back empty.
	if err := o.prepareResultDir(); err != nil {
		return sum, fmt.Errorf("result directory %s: %w", o.cfg.ResultDir, err)
	}

	inputs, err := ListInputs(o.cfg.InputDir, o.cfg.Extensions)
	if err != nil {
		return sum, fmt.Errorf("input directory %s: %w", o.cfg.InputDir, err)
	}
	if len(inputs) == 0 {
		runLog.Warn("no matching inputs found", "dir", o.cfg.InputDir, "extensions", strings.Join(o.cfg.Extensions, ","))
		return sum, nil
	}

	fmt.Printf("🔍 Found %d input(s) in %s\n", len(inputs), o.cfg.InputDir)

	// Whatever happens below, do not leave scratch behind.
	defer func() {
		if err := o.scratch.Remove(); err != nil {
			runLog.Warn("final scratch cleanup failed", "error", err)
		}
	}()

	for _, path := range inputs {
		if ctx.Err() != nil {
			runLog.Info("run interrupted", "remaining", len(inputs)-sum.Total())
			break
		}
		o.processOne(ctx, runLog, path, &sum)
	}

	return sum, nil
}

func (o *Orchestrator) processOne(ctx context.Context, runLog *slog.Logger, path string, sum *Summary) {
	name := filepath.Base(path)
	fmt.Printf("▶️  Processing: %s\n", name)

	if err := checkReadable(path); err != nil {
		runLog.Error("input not readable", "input", name, "error", err)
		sum.Failed++
		return
	}

	// Clear stale artifacts before the detector writes new ones.
	if err := o.scratch.Reset(); err != nil {
		runLog.Warn("scratch reset failed, artifacts may be stale", "input", name, "error", err)
	}

	if err := o.proc.Process(ctx, path, o.scratch.SaveDir()); errors.Is(err, context.Canceled) {
		// Interrupt is a clean shutdown, not a per-input failure. The
		// partially processed output stays behind; scratch does not.
		runLog.Info("input interrupted", "input", name)
	} else if err != nil {
		runLog.Error("processing failed", "input", name, "kind", classify(err), "error", err)
		sum.Failed++
	} else if copied, cerr := o.collectArtifacts(); cerr != nil {
		// A result we cannot deliver is a failure, same as a
		// processing error.
		runLog.Error("artifact collection failed", "input", name, "kind", classify(cerr), "error", cerr)
		sum.Failed++
	} else {
		if copied == 0 {
			runLog.Warn("no artifacts produced", "input", name)
		} else {
			fmt.Printf("   ✅ Saved %d result(s) for %s\n", copied, name)
		}
		sum.Succeeded++
	}

	// Best-effort: a retry failure here must not sink the run.
	if err := o.scratch.Remove(); err != nil {
		runLog.Warn("scratch cleanup failed", "input", name, "error", err)
	}
}

// prepareResultDir creates the result directory if needed and removes
// prior result files. Subdirectories it does not own are left alone.
func (o *Orchestrator) prepareResultDir() error {
	if err := os.MkdirAll(o.cfg.ResultDir, 0o755); err != nil {
		return err
	}
	entries, err := os.ReadDir(o.cfg.ResultDir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(o.cfg.ResultDir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// collectArtifacts copies the detector's artifacts from the scratch
// save dir into the result dir, optionally swapping the extension.
func (o *Orchestrator) collectArtifacts() (int, error) {
	entries, err := os.ReadDir(o.scratch.SaveDir())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	copied := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.ToLower(filepath.Ext(name)) != o.cfg.ArtifactExt {
			continue
		}
		dest := name
		if o.cfg.RenameExt != "" {
			dest = strings.TrimSuffix(name, filepath.Ext(name)) + o.cfg.RenameExt
		}
		src := filepath.Join(o.scratch.SaveDir(), name)
		if err := copyFile(src, filepath.Join(o.cfg.ResultDir, dest)); err != nil {
			return copied, err
		}
		copied++
	}
	return copied, nil
}

// classify buckets a per-input error for logging: access problems,
// lower-level I/O, or unexpected.
func classify(err error) string {
	var pathErr *fs.PathError
	switch {
	case errors.Is(err, fs.ErrPermission), errors.Is(err, fs.ErrNotExist):
		return "access"
	case errors.As(err, &pathErr):
		return "io"
	default:
		return "unexpected"
	}
}

// checkReadable verifies read access before the detector is invoked.
func checkReadable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
