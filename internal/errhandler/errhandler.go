package errhandler

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/pterm/pterm"
)

// HandleError prints err, treating a terminal interrupt (ctrl-c inside a
// prompt) as a clean exit rather than a failure.
func HandleError(err error) {
	if errors.Is(err, terminal.InterruptErr) || strings.Contains(err.Error(), "interrupt") {
		pterm.Warning.Println("Session ended")
		os.Exit(0)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
