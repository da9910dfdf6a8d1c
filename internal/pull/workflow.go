package pull

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"pullfile/internal/config"
	"pullfile/internal/fs"
)

// Document is the host editor's handle on the file being overwritten. The
// workflow holds it for the duration of one invocation only.
type Document interface {
	Path() string
	Modified() (bool, error)
	Replace(content string) error
	Save() error
}

// Selector presents the two selection surfaces. A false ok means the user
// cancelled; cancellation is never an error.
type Selector interface {
	QuickPick(items []string, placeholder string) (choice string, ok bool, err error)
	OpenDialog(opts DialogOptions) (path string, ok bool, err error)
}

// DialogOptions configures the file-open dialog.
type DialogOptions struct {
	Label           string
	DefaultLocation string
	FilterGroups    []FilterGroup
}

// FilterGroup is one named set of selectable extensions. An empty Extensions
// list allows any file.
type FilterGroup struct {
	Name       string
	Extensions []string
}

// SentinelOpenDialog is the quick-pick entry that routes selection to the
// file-open dialog instead of naming a real file.
const SentinelOpenDialog = "Use Open Dialog..."

const (
	quickPickPlaceholder = "Select a file to pull..."
	dialogLabel          = "Pull File"
	currentTypeGroup     = "Current File Type"
	allFilesGroup        = "All Files"
)

// Workflow resolves a source file and replaces the active document's content
// with it. One instance serves exactly one invocation; nothing is shared
// between concurrent invocations.
type Workflow struct {
	doc      Document
	selector Selector
	settings config.Settings
	logger   *log.Logger

	// Host services, swappable in tests.
	parentDir  func(path string) (string, bool)
	candidates func(dir, ext, self string) ([]string, error)
	readFile   func(path string) ([]byte, error)
}

// New builds a workflow around the captured document and the settings read
// at startup.
func New(doc Document, selector Selector, settings config.Settings, logger *log.Logger) *Workflow {
	return &Workflow{
		doc:        doc,
		selector:   selector,
		settings:   settings,
		logger:     logger,
		parentDir:  fs.ParentDir,
		candidates: fs.Candidates,
		readFile:   os.ReadFile,
	}
}

// Run executes the pull: resolve the folder, enumerate candidates, resolve a
// selection, read the source fully, replace the whole buffer, save. It
// returns the pulled source path, or "" when the run ended without effect
// (no folder context, or the user cancelled a prompt).
func (w *Workflow) Run() (string, error) {
	path := w.doc.Path()
	if path == "" {
		w.logger.Debug("no active document, nothing to do")
		return "", nil
	}
	dir, ok := w.parentDir(path)
	if !ok {
		w.logger.Debug("document has no enclosing folder, nothing to do", "path", path)
		return "", nil
	}

	source, ok, err := w.selectSource(dir, filepath.Ext(path), filepath.Base(path))
	if err != nil {
		return "", err
	}
	if !ok {
		w.logger.Debug("selection cancelled")
		return "", nil
	}

	// The read must fully succeed before the document is touched.
	content, err := w.readFile(source)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", source, err)
	}

	w.logger.Debug("pulling", "source", source, "target", path)
	if err := w.apply(string(content)); err != nil {
		return "", err
	}
	return source, nil
}

// PullContent overwrites the document with content directly, skipping
// selection. Used by the clipboard and stdin sources.
func (w *Workflow) PullContent(content string) error {
	if w.doc.Path() == "" {
		w.logger.Debug("no active document, nothing to do")
		return nil
	}
	return w.apply(content)
}

// apply is the single mutation point: whole-buffer replace, then an
// unconditional save so the post-pull dirty flag is always false. Unsaved
// edits are superseded by the replace and committed by the save.
func (w *Workflow) apply(content string) error {
	if modified, err := w.doc.Modified(); err == nil && modified {
		w.logger.Debug("overwriting unsaved edits", "path", w.doc.Path())
	}
	if err := w.doc.Replace(content); err != nil {
		return fmt.Errorf("failed to replace document content: %w", err)
	}
	if err := w.doc.Save(); err != nil {
		return fmt.Errorf("failed to save %s: %w", w.doc.Path(), err)
	}
	return nil
}

func (w *Workflow) selectSource(dir, ext, self string) (string, bool, error) {
	if !w.settings.UseQuickPick {
		return w.openDialog(dir, ext)
	}

	names, err := w.candidates(dir, ext, self)
	if err != nil {
		return "", false, err
	}

	// The sentinel comes first; an empty candidate list still shows the
	// (possibly empty) quick pick rather than falling back to the dialog.
	items := make([]string, 0, len(names)+1)
	if w.settings.IncludeOpenDialogOptionInQuickPick {
		items = append(items, SentinelOpenDialog)
	}
	items = append(items, names...)

	choice, ok, err := w.selector.QuickPick(items, quickPickPlaceholder)
	if err != nil || !ok {
		return "", false, err
	}
	if choice == "" {
		// Confirming an empty list resolves nothing.
		return "", false, nil
	}
	if w.settings.IncludeOpenDialogOptionInQuickPick && choice == SentinelOpenDialog {
		return w.openDialog(dir, ext)
	}
	return filepath.Join(dir, choice), true, nil
}

func (w *Workflow) openDialog(dir, ext string) (string, bool, error) {
	groups := make([]FilterGroup, 0, 2)
	if ext != "" {
		groups = append(groups, FilterGroup{Name: currentTypeGroup, Extensions: []string{ext}})
	}
	groups = append(groups, FilterGroup{Name: allFilesGroup})

	return w.selector.OpenDialog(DialogOptions{
		Label:           dialogLabel,
		DefaultLocation: dir,
		FilterGroups:    groups,
	})
}
