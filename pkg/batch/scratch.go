package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Scratch is the transient working directory the detector pipeline
// writes its artifacts into. It is cleared before and after every
// input so stale artifacts from one input never leak into the next
// input's result discovery.
type Scratch struct {
	Dir string

	// Attempts and Backoff control the removal retry policy. A video
	// writer that was just released can briefly hold files open, so a
	// failed removal is retried rather than escalated.
	Attempts int
	Backoff  time.Duration

	// removeAll is swapped out in tests to exercise the retry policy.
	removeAll func(path string) error
}

// NewScratch creates a scratch resource rooted at dir with the default
// retry policy of 3 attempts spaced 500 ms apart.
func NewScratch(dir string) *Scratch {
	return &Scratch{
		Dir:       dir,
		Attempts:  3,
		Backoff:   500 * time.Millisecond,
		removeAll: os.RemoveAll,
	}
}

// SaveDir returns the directory the detector saves artifacts into.
func (s *Scratch) SaveDir() string {
	return filepath.Join(s.Dir, "detect", "temp")
}

// Reset removes the scratch tree and recreates an empty save directory.
func (s *Scratch) Reset() error {
	if err := s.Remove(); err != nil {
		return err
	}
	return os.MkdirAll(s.SaveDir(), 0o755)
}

// Remove deletes the scratch tree, retrying with backoff on failure.
// Returns nil once the tree is gone; after the final attempt the last
// error is returned for the caller to log.
func (s *Scratch) Remove() error {
	remove := s.removeAll
	if remove == nil {
		remove = os.RemoveAll
	}

	var err error
	for attempt := 0; attempt < s.Attempts; attempt++ {
		if attempt > 0 {
			time.Sleep(s.Backoff)
		}
		if err = remove(s.Dir); err == nil {
			return nil
		}
	}
	return fmt.Errorf("remove scratch %s after %d attempts: %w", s.Dir, s.Attempts, err)
}
