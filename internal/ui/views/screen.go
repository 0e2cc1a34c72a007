package views

import (
	"github.com/pterm/pterm"
)

type ScreenView struct{}

func NewScreenView() *ScreenView {
	return &ScreenView{}
}

// Render draws the ATM screen: the current message plus the input echo
// line. The echo is whatever the session decided to expose, so PIN
// digits arrive here already masked.
func (v *ScreenView) Render(message, echo string) {
	content := ScreenStyle().Sprint(message)
	if echo != "" {
		content += "\n\n" + EchoStyle().Sprint("> "+echo)
	}

	pterm.DefaultBox.
		WithTitle("SULTAN BANK").
		WithTitleTopCenter().
		WithHorizontalString("═").
		Println(content)
}
