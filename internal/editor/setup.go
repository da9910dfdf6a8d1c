package editor

import (
	"fmt"

	"pullfile/internal/config"
)

// The trigger surface inside the editor: a user command plus, when enabled,
// a menu button. Neovim has no status-bar buttons, so the menu system is the
// host facility that carries the label and tooltip.
const (
	commandName   = "PullFile"
	menuPath      = `PullFile.Pull\ File`
	buttonTooltip = "Overwrite the current file with a selected file."
)

// Setup registers the :PullFile command and, per the settings, the
// "Pull File" menu button. Re-running it replaces the existing definitions.
func (m *Manager) Setup(settings config.Settings) error {
	b := m.nvim.NewBatch()
	b.Command(fmt.Sprintf("command! -nargs=0 %s belowright split | terminal pullfile", commandName))
	if settings.UseStatusBarButton {
		b.Command(fmt.Sprintf("anoremenu <silent> %s <Cmd>%s<CR>", menuPath, commandName))
		b.Command(fmt.Sprintf("tmenu %s %s", menuPath, buttonTooltip))
	}
	if err := b.Execute(); err != nil {
		return fmt.Errorf("failed to register trigger: %w", err)
	}
	m.logger.Debug("trigger registered", "command", commandName, "button", settings.UseStatusBarButton)
	return nil
}

// Teardown releases the command and button. Definitions that were never
// installed are not an error.
func (m *Manager) Teardown() error {
	b := m.nvim.NewBatch()
	b.Command("silent! aunmenu PullFile")
	b.Command(fmt.Sprintf("silent! delcommand %s", commandName))
	if err := b.Execute(); err != nil {
		return fmt.Errorf("failed to release trigger: %w", err)
	}
	m.logger.Debug("trigger released", "command", commandName)
	return nil
}
