// Domain errors surfaced to the session controller. All of them are
// recoverable at that boundary; the controller turns them into screen
// messages and decides what, if anything, resets.
package service

import "errors"

var (
	// ErrAccountNotFound means no account carries the given number.
	ErrAccountNotFound = errors.New("account not found")

	// ErrIncorrectPIN means the account exists but the PIN does not match.
	// The session, not the ledger, tracks how many attempts remain.
	ErrIncorrectPIN = errors.New("incorrect PIN")

	// ErrInvalidAmount means the amount is not a positive number.
	ErrInvalidAmount = errors.New("amount must be a positive number")

	// ErrInsufficientFunds means a withdrawal exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)
