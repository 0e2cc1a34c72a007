// Package session owns the terminal workflow state machine. A Session
// validates raw keypad input against the rules of its current state and
// drives the ledger for the financial operations; it never blocks and it
// never talks to the screen itself.
package session

import (
	"errors"
	"fmt"

	"github.com/sultanbank/teller/internal/constants"
	"github.com/sultanbank/teller/internal/model"
	"github.com/sultanbank/teller/internal/service"
	"github.com/sultanbank/teller/internal/validation"
)

// Ledger is the slice of the ledger service the controller needs.
type Ledger interface {
	ValidateCredentials(number, pin string) (*model.Account, error)
	Withdraw(accountID, amountCents int64) (int64, error)
	Deposit(accountID, amountCents int64) (int64, error)
	Balance(accountID int64) (int64, error)
	History(accountID int64) ([]*model.Transaction, error)
	FormatAmount(cents int64) string
}

const (
	msgInsertCard     = "Welcome to Sultan Bank! Please insert your card (Enter Account Number)."
	msgInsertCardBye  = "Thank you for using the ATM. Please insert your card (Enter Account Number)."
	msgEnterPIN       = "Please enter your 4-digit PIN:"
	msgSelectOption   = "Select an option using the side buttons:"
	msgCardBlocked    = "Too many incorrect PIN attempts. Card blocked."
	msgLoginFirst     = "Please log in first."
	msgCompleteAction = "Please complete the current action or CANCEL to return."
	msgAlreadyAtMenu  = "You are already at the main menu."
)

// Session is one terminal workflow instance. Each terminal gets its own
// value; nothing here is shared, only the ledger behind it is.
type Session struct {
	ledger         Ledger
	maxPINAttempts int

	state         State
	buf           inputBuffer
	account       *model.Account
	pendingNumber string
	pinAttempts   int
	screen        string
}

func New(ledger Ledger, maxPINAttempts int) *Session {
	if maxPINAttempts <= 0 {
		maxPINAttempts = constants.DefaultMaxPINAttempts
	}
	return &Session{
		ledger:         ledger,
		maxPINAttempts: maxPINAttempts,
		state:          StateAccountEntry,
		screen:         msgInsertCard,
	}
}

func (s *Session) State() State { return s.state }

// ScreenText is the message the view should currently show.
func (s *Session) ScreenText() string { return s.screen }

// InputEcho is the display projection of the keystroke buffer; PIN digits
// come back as asterisks, never raw.
func (s *Session) InputEcho() string { return s.buf.display() }

// MenuEnabled reports whether the side menu may be offered. The view is
// expected to honor it, but SubmitMenuAction rejects unauthenticated
// calls regardless.
func (s *Session) MenuEnabled() bool {
	return s.account != nil && s.state != StateLocked
}

// SubmitDigit appends one keypad rune to the buffer, subject to the
// current state's accumulation rules. Runes that do not fit are dropped.
func (s *Session) SubmitDigit(r rune) Result {
	if s.state == StateLocked {
		return s.blockedResult()
	}

	switch s.state {
	case StateAccountEntry:
		if isDigit(r) && s.buf.len() < constants.AccountNumberLen {
			s.buf.append(r)
		}
	case StatePINEntry:
		if isDigit(r) && s.buf.len() < constants.PINLen {
			s.buf.append(r)
		}
	case StateWithdrawAmount, StateDepositAmount:
		if isDigit(r) || (r == '.' && !s.buf.contains('.')) {
			s.buf.append(r)
		}
	}

	return s.result(true)
}

// SubmitClear empties the buffer and nothing else.
func (s *Session) SubmitClear() Result {
	if s.state == StateLocked {
		return s.blockedResult()
	}
	s.buf.clear()
	return s.result(true)
}

// SubmitEnter submits the buffer against the current state.
func (s *Session) SubmitEnter() Result {
	switch s.state {
	case StateLocked:
		return s.blockedResult()
	case StateAccountEntry:
		return s.enterAccountNumber()
	case StatePINEntry:
		return s.enterPIN()
	case StateWithdrawAmount:
		return s.enterAmount(constants.TxKindWithdrawal)
	case StateDepositAmount:
		return s.enterAmount(constants.TxKindDeposit)
	default:
		// ENTER is not a workflow action at the menu.
		return s.result(true)
	}
}

func (s *Session) enterAccountNumber() Result {
	number := s.buf.value
	if err := validation.ValidateAccountNumber(number); err != nil {
		s.buf.clear()
		s.screen = "Invalid account number. Please enter a 9-digit number."
		return s.result(false)
	}

	s.pendingNumber = number
	s.buf.reset(true)
	s.state = StatePINEntry
	s.screen = msgEnterPIN
	return s.result(true)
}

func (s *Session) enterPIN() Result {
	pin := s.buf.value
	if err := validation.ValidatePIN(pin); err != nil {
		s.buf.clear()
		s.screen = "PIN must be 4 digits. Please try again."
		return s.result(false)
	}

	acc, err := s.ledger.ValidateCredentials(s.pendingNumber, pin)
	s.buf.clear()

	switch {
	case err == nil:
		s.account = acc
		s.pinAttempts = 0
		s.pendingNumber = ""
		s.buf.reset(false)
		s.state = StateMainMenu
		s.screen = "Login successful!\n\n" + msgSelectOption
		return s.result(true)

	case errors.Is(err, service.ErrIncorrectPIN):
		s.pinAttempts++
		remaining := s.maxPINAttempts - s.pinAttempts
		if remaining > 0 {
			s.screen = fmt.Sprintf("Incorrect PIN. %d attempts remaining.\nPlease enter your PIN again:", remaining)
			return s.result(false)
		}
		s.state = StateLocked
		s.screen = msgCardBlocked
		res := s.result(false)
		res.Blocked = true
		return res

	case errors.Is(err, service.ErrAccountNotFound):
		// The card was never identified, so retrying the PIN is
		// pointless; eject it.
		s.reset()
		s.screen = "Account not found. Please insert your card (Enter Account Number)."
		return s.result(false)

	default:
		s.screen = err.Error()
		return s.result(false)
	}
}

func (s *Session) enterAmount(kind string) Result {
	raw := s.buf.value
	verb := "withdraw"
	if kind == constants.TxKindDeposit {
		verb = "deposit"
	}

	if raw == "" {
		s.screen = fmt.Sprintf("Amount cannot be empty. Enter amount to %s or CANCEL:", verb)
		return s.result(false)
	}

	cents, err := service.ParseAmountCents(raw)
	if err != nil {
		s.buf.clear()
		s.screen = "Invalid amount. Please enter a number."
		return s.result(false)
	}

	var newBalance int64
	if kind == constants.TxKindDeposit {
		newBalance, err = s.ledger.Deposit(s.account.ID, cents)
	} else {
		newBalance, err = s.ledger.Withdraw(s.account.ID, cents)
	}
	s.buf.clear()

	if err != nil {
		msg := err.Error()
		if errors.Is(err, service.ErrInsufficientFunds) {
			msg = "Insufficient funds."
		} else if errors.Is(err, service.ErrInvalidAmount) {
			msg = "Invalid amount. Please enter a number."
		}
		s.screen = fmt.Sprintf("%s\nEnter amount to %s or CANCEL:", msg, verb)
		return s.result(false)
	}

	s.state = StateMainMenu
	s.screen = fmt.Sprintf("%s successful. New balance: %s\n\n%s", kind, s.ledger.FormatAmount(newBalance), msgSelectOption)
	return s.result(true)
}

// SubmitMenuAction handles the side-button commands. Only an
// authenticated session accepts them, whatever the view thought.
func (s *Session) SubmitMenuAction(action string) Result {
	if s.state == StateLocked {
		return s.blockedResult()
	}
	if s.account == nil {
		s.screen = msgLoginFirst
		return s.result(false)
	}

	if s.state != StateMainMenu {
		if action == constants.ActionBack {
			s.buf.clear()
			s.state = StateMainMenu
			s.screen = "Operation cancelled. " + msgSelectOption
			return s.result(true)
		}
		s.screen = msgCompleteAction
		return s.result(false)
	}

	switch action {
	case constants.ActionBalance:
		balance, err := s.ledger.Balance(s.account.ID)
		if err != nil {
			s.screen = err.Error()
			return s.result(false)
		}
		s.screen = fmt.Sprintf("Your current balance is: %s\n\nSelect another option.", s.ledger.FormatAmount(balance))
		return s.result(true)

	case constants.ActionHistory:
		history, err := s.ledger.History(s.account.ID)
		if err != nil {
			s.screen = err.Error()
			return s.result(false)
		}
		s.screen = "Transaction history viewed.\n\nSelect another option."
		res := s.result(true)
		res.History = history
		return res

	case constants.ActionWithdraw:
		s.buf.clear()
		s.state = StateWithdrawAmount
		s.screen = "Enter amount to withdraw, then press ENTER:"
		return s.result(true)

	case constants.ActionDeposit:
		s.buf.clear()
		s.state = StateDepositAmount
		s.screen = "Enter amount to deposit, then press ENTER:"
		return s.result(true)

	case constants.ActionBack:
		s.screen = msgAlreadyAtMenu
		return s.result(true)

	default:
		s.screen = fmt.Sprintf("Unknown action '%s'.", action)
		return s.result(false)
	}
}

// SubmitCancel logs out and resets the terminal once the caller has
// confirmed; an unconfirmed cancel changes nothing.
func (s *Session) SubmitCancel(confirmed bool) Result {
	if s.state == StateLocked {
		return s.blockedResult()
	}
	if !confirmed {
		return s.result(true)
	}

	s.reset()
	s.screen = msgInsertCardBye
	return s.result(true)
}

// AcknowledgeLockout completes a card block: the caller has shown the
// dialog, now the session may reset.
func (s *Session) AcknowledgeLockout() Result {
	if s.state != StateLocked {
		return s.result(true)
	}

	s.reset()
	s.screen = msgInsertCardBye
	return s.result(true)
}

func (s *Session) reset() {
	s.account = nil
	s.pendingNumber = ""
	s.pinAttempts = 0
	s.buf.reset(false)
	s.state = StateAccountEntry
	s.screen = msgInsertCard
}

func (s *Session) result(ok bool) Result {
	return Result{State: s.state, Message: s.screen, OK: ok}
}

func (s *Session) blockedResult() Result {
	s.screen = msgCardBlocked
	res := s.result(false)
	res.Blocked = true
	return res
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
