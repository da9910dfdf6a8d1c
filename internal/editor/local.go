package editor

import (
	"fmt"
	"os"
	"path/filepath"
)

// LocalDocument edits a file on disk directly, for standalone invocations
// with no editor attached. The file must already exist: pullfile overwrites
// open documents, it does not create them.
type LocalDocument struct {
	path    string
	content string
}

// OpenLocal loads path into a disk-backed document.
func OpenLocal(path string) (*LocalDocument, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return &LocalDocument{path: abs, content: string(data)}, nil
}

// Path returns the document's absolute file path.
func (d *LocalDocument) Path() string { return d.path }

// Modified is always false: a disk file has no unsaved-edit state.
func (d *LocalDocument) Modified() (bool, error) { return false, nil }

// Replace swaps the in-memory content; nothing reaches disk until Save.
func (d *LocalDocument) Replace(content string) error {
	d.content = content
	return nil
}

// Save writes the content back to the original path.
func (d *LocalDocument) Save() error {
	if err := os.WriteFile(d.path, []byte(d.content), 0644); err != nil {
		return fmt.Errorf("failed to save %s: %w", d.path, err)
	}
	return nil
}

// Text returns the current in-memory content.
func (d *LocalDocument) Text() string { return d.content }
