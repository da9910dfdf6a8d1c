package picker

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// Terminal presents the selection prompts in the invoking terminal. It
// implements pull.Selector.
type Terminal struct{}

// QuickPick shows a single-selection list and returns the chosen label.
// Esc or ctrl+c is a cancel, not an error.
func (Terminal) QuickPick(items []string, placeholder string) (string, bool, error) {
	options := make([]huh.Option[string], len(items))
	for i, item := range items {
		options[i] = huh.NewOption(item, item)
	}

	var choice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(placeholder).
			Options(options...).
			Value(&choice),
	))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("quick pick failed: %w", err)
	}
	if choice == "" {
		// Confirming an empty list leaves the zero value; nothing was chosen.
		return "", false, nil
	}
	return choice, true, nil
}
