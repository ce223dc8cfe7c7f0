package batch

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListInputs enumerates the files in dir whose extension matches one of
// exts (lowercase, with leading dot). Matching is case-insensitive and
// duplicates that differ only by name case are collapsed to a single
// entry, so "cat.MP4" and "cat.mp4" never both get processed. The
// result is sorted by name so repeated runs are reproducible.
func ListInputs(dir string, exts []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !extMatches(ext, exts) {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		files = append(files, filepath.Join(dir, name))
	}

	sort.Strings(files)
	return files, nil
}

func extMatches(ext string, exts []string) bool {
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
