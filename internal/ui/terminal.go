package ui

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"github.com/sultanbank/teller/internal/constants"
	"github.com/sultanbank/teller/internal/session"
	"github.com/sultanbank/teller/internal/ui/prompts"
	"github.com/sultanbank/teller/internal/ui/views"
	"github.com/sultanbank/teller/internal/validation"
)

// Terminal is the thin view over a session. It renders whatever the
// session says, feeds keystrokes back in, and surfaces the two blocking
// dialogs (cancel confirmation, card-blocked acknowledgement). All the
// workflow rules live in the session.
type Terminal struct {
	sess         *session.Session
	screen       *views.ScreenView
	history      *views.HistoryView
	formatAmount func(int64) string
}

func NewTerminal(sess *session.Session, formatAmount func(int64) string) *Terminal {
	return &Terminal{
		sess:         sess,
		screen:       views.NewScreenView(),
		history:      views.NewHistoryView(),
		formatAmount: formatAmount,
	}
}

// Run drives the terminal until the user exits.
func (t *Terminal) Run() error {
	for {
		t.screen.Render(t.sess.ScreenText(), t.sess.InputEcho())

		var err error
		switch t.sess.State() {
		case session.StateAccountEntry:
			err = t.accountEntry()
		case session.StatePINEntry:
			err = t.pinEntry()
		case session.StateMainMenu:
			err = t.mainMenu()
		case session.StateWithdrawAmount, session.StateDepositAmount:
			err = t.amountEntry()
		case session.StateLocked:
			err = t.lockedOut()
		}

		if err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
	}
}

var errQuit = errors.New("quit")

func (t *Terminal) accountEntry() error {
	line, err := prompts.PromptKeypadLine(
		"Account number",
		"9 digits, then ENTER",
		false,
		validation.ValidateAccountNumber,
	)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return t.confirmQuit()
		}
		return err
	}

	t.feedLine(line)
	t.sess.SubmitEnter()
	return nil
}

func (t *Terminal) pinEntry() error {
	line, err := prompts.PromptKeypadLine(
		"PIN",
		"4 digits, then ENTER",
		true,
		validation.ValidatePIN,
	)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return t.confirmCancel()
		}
		return err
	}

	t.feedLine(line)
	res := t.sess.SubmitEnter()
	if res.Blocked {
		return t.lockedOut()
	}
	return nil
}

func (t *Terminal) mainMenu() error {
	actions := []string{
		constants.ActionBalance,
		constants.ActionWithdraw,
		constants.ActionDeposit,
		constants.ActionHistory,
		"Exit",
	}

	choice, err := prompts.PromptMenu("Select an option", actions)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return t.confirmCancel()
		}
		return err
	}

	if choice == "Exit" {
		confirmed, err := prompts.PromptConfirm("Do you want to cancel the current operation and log out?", false)
		if err != nil {
			return err
		}
		res := t.sess.SubmitCancel(confirmed)
		if confirmed {
			pterm.Println(res.Message)
			return errQuit
		}
		return nil
	}

	res := t.sess.SubmitMenuAction(choice)
	if res.History != nil {
		return t.history.Render(res.History, t.formatAmount)
	}
	return nil
}

func (t *Terminal) amountEntry() error {
	// Empty input is allowed through so the session can answer it the
	// way a real terminal would.
	softValidate := func(s string) error {
		if s == "" {
			return nil
		}
		return validation.ValidateAmount(s)
	}

	line, err := prompts.PromptKeypadLine(
		"Amount",
		"ESC to go back to the menu",
		false,
		softValidate,
	)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			t.sess.SubmitMenuAction(constants.ActionBack)
			return nil
		}
		return err
	}

	t.feedLine(line)
	t.sess.SubmitEnter()
	return nil
}

func (t *Terminal) lockedOut() error {
	pterm.Error.Println(t.sess.ScreenText())

	if err := prompts.PromptAcknowledge("Card blocked. Contact your bank to unblock it."); err != nil {
		return err
	}

	t.sess.AcknowledgeLockout()
	return nil
}

func (t *Terminal) confirmCancel() error {
	confirmed, err := prompts.PromptConfirm("Do you want to cancel the current operation and log out?", false)
	if err != nil {
		return err
	}
	t.sess.SubmitCancel(confirmed)
	return nil
}

func (t *Terminal) confirmQuit() error {
	confirmed, err := prompts.PromptConfirm("Leave the terminal?", false)
	if err != nil {
		return err
	}
	if confirmed {
		return errQuit
	}
	return nil
}

func (t *Terminal) feedLine(line string) {
	for _, r := range line {
		t.sess.SubmitDigit(r)
	}
}
