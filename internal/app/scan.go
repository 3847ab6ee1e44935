package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// scanForFileTypes lists regular files directly inside dir whose extension
// is one of types. types must already be lower-cased and dot-free. Returned
// paths are absolute and sorted.
func scanForFileTypes(dir string, types []string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", abs, err)
	}

	patterns := make([]string, 0, len(types))
	for _, ext := range types {
		patterns = append(patterns, "*."+ext)
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := strings.ToLower(entry.Name())
		dot := strings.LastIndex(name, ".")
		if dot < 0 {
			continue
		}
		// Match against ".ext" only, so "*.tar.gz" never matches "x.tar.gz".
		ext := name[dot:]
		for _, pattern := range patterns {
			ok, err := doublestar.Match(pattern, ext)
			if err != nil {
				return nil, fmt.Errorf("invalid file type pattern %q: %w", pattern, err)
			}
			if ok {
				files = append(files, filepath.Join(abs, entry.Name()))
				break
			}
		}
	}

	sort.Strings(files)
	return files, nil
}
