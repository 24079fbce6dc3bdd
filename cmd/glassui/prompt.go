package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"glassui/internal/ui/theme"
)

// Swapped out by tests.
var (
	isInteractiveTTY = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd()))
	}
	runThemeForm = func(form *huh.Form) error {
		return form.Run()
	}
)

// themeForm builds the startup theme picker. The current choice is
// preselected.
func themeForm(choice *string) *huh.Form {
	names := theme.Available()
	options := make([]huh.Option[string], 0, len(names))
	for _, name := range names {
		options = append(options, huh.NewOption(name, name))
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Which theme should the glass demo use?").
			Options(options...).
			Value(choice),
	))
}

// promptForTheme asks for a theme before the demo starts. Without a terminal
// or when the form is aborted, current is returned unchanged.
func promptForTheme(current string) (string, error) {
	if !isInteractiveTTY() {
		return current, nil
	}
	choice := current
	if err := runThemeForm(themeForm(&choice)); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return current, nil
		}
		return current, fmt.Errorf("theme prompt: %w", err)
	}
	return choice, nil
}
