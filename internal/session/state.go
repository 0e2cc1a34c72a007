package session

import "github.com/sultanbank/teller/internal/model"

// State identifies where the session is in the terminal workflow.
type State string

const (
	StateAccountEntry   State = "ACCOUNT_ENTRY"
	StatePINEntry       State = "PIN_ENTRY"
	StateMainMenu       State = "MAIN_MENU"
	StateWithdrawAmount State = "WITHDRAW_AMOUNT"
	StateDepositAmount  State = "DEPOSIT_AMOUNT"

	// StateLocked is entered after the last failed PIN attempt. The
	// session stays here until the caller acknowledges the block, so the
	// dialog is guaranteed to be shown before the reset happens.
	StateLocked State = "LOCKED"
)

// Result is what every event entry point hands back to the view.
type Result struct {
	State   State
	Message string
	// History carries the journal rows after a History menu action and
	// is nil otherwise.
	History []*model.Transaction
	// OK reports whether the event was accepted; validation failures and
	// declined ledger operations leave it false.
	OK bool
	// Blocked is set exactly once, on the PIN attempt that exhausts the
	// limit. The caller must surface it and then call AcknowledgeLockout.
	Blocked bool
}
