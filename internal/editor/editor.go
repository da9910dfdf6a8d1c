package editor

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/neovim/go-client/nvim"
)

// ErrNoEditor means no Neovim instance is reachable over RPC.
var ErrNoEditor = errors.New("no attached neovim instance")

// ErrNoDocument means the attached instance has no file-backed buffer to
// operate on.
var ErrNoDocument = errors.New("no active document")

// Manager handles the connection and interaction with a Neovim instance.
type Manager struct {
	nvim   *nvim.Nvim
	logger *log.Logger
}

// New connects to the Neovim instance owning the document to pull into.
// $NVIM is set inside :terminal windows; NVIM_LISTEN_ADDRESS covers older
// setups and explicit --listen sockets.
func New(logger *log.Logger) (*Manager, error) {
	addr := os.Getenv("NVIM")
	if addr == "" {
		addr = os.Getenv("NVIM_LISTEN_ADDRESS")
	}
	if addr == "" {
		return nil, ErrNoEditor
	}

	logger.Debug("connecting to neovim", "address", addr)
	v, err := nvim.Dial(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to neovim at %s: %w", addr, err)
	}
	return &Manager{nvim: v, logger: logger}, nil
}

// Close disconnects from Neovim.
func (m *Manager) Close() {
	if m.nvim != nil {
		m.nvim.Close()
	}
}

// Document is one editor buffer, captured for a single invocation.
type Document struct {
	m      *Manager
	buffer nvim.Buffer
	path   string
}

// ActiveDocument captures the buffer the user is editing. Running pullfile
// inside a :terminal split makes the terminal buffer current, so non-file
// buffers resolve to the window's alternate buffer instead.
func (m *Manager) ActiveDocument() (*Document, error) {
	buf, err := m.nvim.CurrentBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to query current buffer: %w", err)
	}

	var buftype string
	if err := m.nvim.BufferOption(buf, "buftype", &buftype); err != nil {
		return nil, fmt.Errorf("failed to query buffer type: %w", err)
	}
	if buftype != "" {
		var alt int
		if err := m.nvim.Eval("bufnr('#')", &alt); err != nil || alt <= 0 {
			return nil, ErrNoDocument
		}
		buf = nvim.Buffer(alt)
		if err := m.nvim.BufferOption(buf, "buftype", &buftype); err != nil || buftype != "" {
			return nil, ErrNoDocument
		}
	}

	name, err := m.nvim.BufferName(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to query buffer name: %w", err)
	}
	if name == "" {
		return nil, ErrNoDocument
	}

	m.logger.Debug("active document", "buffer", int(buf), "path", name)
	return &Document{m: m, buffer: buf, path: name}, nil
}

// Path returns the buffer's file path.
func (d *Document) Path() string { return d.path }

// Modified reports whether the buffer has unsaved edits.
func (d *Document) Modified() (bool, error) {
	var modified bool
	if err := d.m.nvim.BufferOption(d.buffer, "modified", &modified); err != nil {
		return false, fmt.Errorf("failed to query modified flag: %w", err)
	}
	return modified, nil
}

// Replace swaps the entire buffer content. The edit goes through the editor
// so undo history and dirty tracking stay consistent.
func (d *Document) Replace(content string) error {
	lines := splitLines(content)
	byteLines := make([][]byte, len(lines))
	for i, s := range lines {
		byteLines[i] = []byte(s)
	}

	if err := d.m.nvim.SetBufferLines(d.buffer, 0, -1, true, byteLines); err != nil {
		return fmt.Errorf("failed to replace buffer content: %w", err)
	}
	return nil
}

// Save writes the buffer to disk unconditionally. nvim_buf_call keeps the
// user's current window and buffer untouched.
func (d *Document) Save() error {
	cmd := fmt.Sprintf("call nvim_buf_call(%d, {-> execute('silent write!')})", int(d.buffer))
	if err := d.m.nvim.Command(cmd); err != nil {
		return fmt.Errorf("failed to save %s: %w", d.path, err)
	}
	return nil
}

// splitLines converts file content to buffer lines. A trailing newline is the
// file's line terminator, not an extra empty buffer line.
func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
