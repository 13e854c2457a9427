package cli

import (
	"os"

	"github.com/charmbracelet/huh"
)

// ConfirmFunc asks a yes/no question.
type ConfirmFunc func(prompt string) (bool, error)

// SelectFunc asks the user to choose one of options and returns its index.
type SelectFunc func(title string, options []string) (int, error)

// accessible switches huh to plain line prompts for screen readers.
func accessible() bool {
	return os.Getenv("ACCESSIBLE") != ""
}

func runField(field huh.Field) error {
	return huh.NewForm(huh.NewGroup(field)).
		WithAccessible(accessible()).
		WithShowHelp(true).
		Run()
}

// NewConfirmFunc returns a ConfirmFunc backed by a huh confirm field.
func NewConfirmFunc() ConfirmFunc {
	return func(prompt string) (bool, error) {
		var ok bool
		err := runField(huh.NewConfirm().
			Title(prompt).
			Affirmative("Yes").
			Negative("No").
			Value(&ok))
		return ok, err
	}
}

// AlwaysYes returns a ConfirmFunc that always confirms.
func AlwaysYes() ConfirmFunc {
	return func(_ string) (bool, error) {
		return true, nil
	}
}

// NewSelectFunc returns a SelectFunc backed by a filterable huh select.
// Typing narrows the list, so long ranges stay usable.
func NewSelectFunc() SelectFunc {
	return func(title string, options []string) (int, error) {
		opts := make([]huh.Option[int], len(options))
		for i, o := range options {
			opts[i] = huh.NewOption(o, i)
		}

		var idx int
		err := runField(huh.NewSelect[int]().
			Title(title).
			Options(opts...).
			Filtering(true).
			Height(min(len(options)+2, 14)).
			Value(&idx))
		return idx, err
	}
}
