package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ParentDir resolves the enclosing folder of path. It reports false when no
// folder can be determined: an empty path, a filesystem root, or a parent
// that does not exist as a directory.
func ParentDir(path string) (string, bool) {
	if strings.TrimSpace(path) == "" {
		return "", false
	}
	dir := filepath.Dir(path)
	if dir == path {
		// filepath.Dir is a fixed point only at a root.
		return "", false
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", false
	}
	return dir, true
}

// Candidates lists the base names of files directly inside dir that share
// ext and are not self. Subdirectories are never descended into. The result
// is in alphanumeric order.
func Candidates(dir, ext, self string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list folder %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if name == self {
			continue
		}
		if filepath.Ext(name) != ext {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
