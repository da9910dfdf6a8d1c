package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pullfile/internal/pull"
)

// --- Styles ---
var (
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	filterStyle = lipgloss.NewStyle().Faint(true)
)

// dialogModel wraps the bubbles file picker as the stand-in for a native
// file-open dialog. Tab cycles through the filter groups.
type dialogModel struct {
	picker    filepicker.Model
	opts      pull.DialogOptions
	group     int
	selected  string
	cancelled bool
}

func newDialogModel(opts pull.DialogOptions) dialogModel {
	fp := filepicker.New()
	fp.CurrentDirectory = opts.DefaultLocation
	fp.DirAllowed = false
	fp.FileAllowed = true

	m := dialogModel{picker: fp, opts: opts}
	m.applyFilterGroup()
	return m
}

// applyFilterGroup maps the active group onto the picker's allowed types. A
// group with no extensions is the wildcard group.
func (m *dialogModel) applyFilterGroup() {
	if len(m.opts.FilterGroups) == 0 {
		m.picker.AllowedTypes = nil
		return
	}
	m.picker.AllowedTypes = m.opts.FilterGroups[m.group].Extensions
}

func (m dialogModel) filterGroupName() string {
	if len(m.opts.FilterGroups) == 0 {
		return ""
	}
	return m.opts.FilterGroups[m.group].Name
}

func (m dialogModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m dialogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "tab":
			if len(m.opts.FilterGroups) > 1 {
				m.group = (m.group + 1) % len(m.opts.FilterGroups)
				m.applyFilterGroup()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.selected = path
		return m, tea.Quit
	}

	return m, cmd
}

func (m dialogModel) View() string {
	if m.selected != "" || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(m.opts.Label))
	b.WriteString("\n")
	if name := m.filterGroupName(); name != "" {
		b.WriteString(filterStyle.Render(fmt.Sprintf("Filter: %s (tab to switch, esc to cancel)", name)))
		b.WriteString("\n")
	}
	b.WriteString(m.picker.View())
	return b.String()
}

// OpenDialog runs the file-open dialog and returns the selected path.
// Esc or ctrl+c is a cancel, not an error.
func (Terminal) OpenDialog(opts pull.DialogOptions) (string, bool, error) {
	p := tea.NewProgram(newDialogModel(opts))
	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("open dialog failed: %w", err)
	}

	m, ok := final.(dialogModel)
	if !ok || m.cancelled || m.selected == "" {
		return "", false, nil
	}
	return m.selected, true, nil
}
