package prompts

import (
	"github.com/charmbracelet/huh"
)

// PromptKeypadLine collects one line of keypad input. The caller still
// feeds the result rune-by-rune into the session, which owns the real
// accumulation rules; the validator here only gives inline feedback.
func PromptKeypadLine(title, helpText string, masked bool, validator func(string) error) (string, error) {
	var value string

	input := huh.NewInput().
		Title(title).
		Description(helpText).
		Value(&value)

	if masked {
		input = input.EchoMode(huh.EchoModePassword)
	}

	if validator != nil {
		input = input.Validate(validator)
	}

	err := input.Run()
	return value, err
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Value(&confirm).
		Affirmative("Yes").
		Negative("No").
		Run()

	return confirm, err
}

// PromptAcknowledge blocks until the user dismisses the message.
func PromptAcknowledge(message string) error {
	ack := true

	return huh.NewConfirm().
		Title(message).
		Affirmative("OK").
		Negative("").
		Value(&ack).
		Run()
}

// PromptMenu shows the side-button menu and returns the chosen action.
func PromptMenu(title string, actions []string) (string, error) {
	var opts []huh.Option[string]
	for _, a := range actions {
		opts = append(opts, huh.NewOption(a, a))
	}

	selected := actions[0]

	err := huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}
