package views

import (
	"github.com/pterm/pterm"
)

func ScreenStyle() *pterm.Style {
	return pterm.NewStyle(pterm.FgLightCyan)
}

func EchoStyle() *pterm.Style {
	return pterm.NewStyle(pterm.FgYellow, pterm.Bold)
}
