package service

import (
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/sultanbank/teller/internal/config"
	"github.com/sultanbank/teller/internal/constants"
	"github.com/sultanbank/teller/internal/model"
	"github.com/sultanbank/teller/internal/store"
)

// LedgerService is the single source of truth for balances and history.
// Every balance mutation appends its journal row in the same database
// transaction, so a record exists iff the change it describes was applied.
type LedgerService struct {
	repo   store.Repository
	config *config.Config
}

func NewLedgerService(repo store.Repository, cfg *config.Config) *LedgerService {
	return &LedgerService{repo: repo, config: cfg}
}

// Seed loads the configured account table, skipping numbers that already
// exist so repeated startups against a file-backed database stay idempotent.
func (ls *LedgerService) Seed() error {
	for _, seed := range ls.config.Accounts {
		exists, err := ls.repo.AccountExists(seed.Number)
		if err != nil {
			return fmt.Errorf("failed to check seed account '%s': %w", seed.Number, err)
		}
		if exists {
			continue
		}

		cents, err := ParseAmountCents(seed.Balance)
		if err != nil {
			return fmt.Errorf("seed account '%s' has invalid balance '%s': %w", seed.Number, seed.Balance, err)
		}

		if _, err := ls.repo.CreateAccount(seed.Number, seed.PIN, cents); err != nil {
			return fmt.Errorf("failed to seed account '%s': %w", seed.Number, err)
		}
	}
	return nil
}

// ValidateCredentials resolves the account and checks the PIN. It does not
// count attempts; that is session state.
func (ls *LedgerService) ValidateCredentials(number, pin string) (*model.Account, error) {
	acc, err := ls.repo.GetAccountByNumber(number)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(acc.PIN), []byte(pin)) != 1 {
		return nil, ErrIncorrectPIN
	}

	return acc, nil
}

// Withdraw debits the account and records the journal row atomically.
// Returns the new balance in cents.
func (ls *LedgerService) Withdraw(accountID, amountCents int64) (int64, error) {
	if amountCents <= 0 {
		return 0, ErrInvalidAmount
	}

	var newBalance int64
	err := ls.repo.ExecTx(func(repo store.Repository) error {
		balance, err := repo.GetAccountBalance(accountID)
		if err != nil {
			return err
		}
		if amountCents > balance {
			return ErrInsufficientFunds
		}

		newBalance = balance - amountCents
		if err := repo.UpdateAccountBalance(accountID, newBalance); err != nil {
			return err
		}

		_, err = repo.CreateTransaction(accountID, constants.TxKindWithdrawal, -amountCents)
		return err
	})
	if err != nil {
		return 0, err
	}

	return newBalance, nil
}

// Deposit credits the account and records the journal row atomically.
// Returns the new balance in cents.
func (ls *LedgerService) Deposit(accountID, amountCents int64) (int64, error) {
	if amountCents <= 0 {
		return 0, ErrInvalidAmount
	}

	var newBalance int64
	err := ls.repo.ExecTx(func(repo store.Repository) error {
		balance, err := repo.GetAccountBalance(accountID)
		if err != nil {
			return err
		}

		newBalance = balance + amountCents
		if err := repo.UpdateAccountBalance(accountID, newBalance); err != nil {
			return err
		}

		_, err = repo.CreateTransaction(accountID, constants.TxKindDeposit, amountCents)
		return err
	})
	if err != nil {
		return 0, err
	}

	return newBalance, nil
}

func (ls *LedgerService) Balance(accountID int64) (int64, error) {
	return ls.repo.GetAccountBalance(accountID)
}

// History returns the account's journal, most recent last.
func (ls *LedgerService) History(accountID int64) ([]*model.Transaction, error) {
	return ls.repo.GetTransactionsByAccount(accountID)
}

// FormatAmount renders cents in the terminal's configured currency,
// e.g. 150000 -> "$1,500.00".
func (ls *LedgerService) FormatAmount(cents int64) string {
	return money.New(cents, ls.config.Terminal.Currency).Display()
}

// ParseAmountCents converts a decimal amount string to integer cents.
// Only the keypad alphabet is accepted — digits and a decimal point —
// so anything this parses survives rune-by-rune accumulation unchanged.
// At most two fraction digits of value are allowed; anything below one
// cent has no cash representation.
func ParseAmountCents(input string) (int64, error) {
	for _, r := range input {
		if (r < '0' || r > '9') && r != '.' {
			return 0, ErrInvalidAmount
		}
	}

	d, err := decimal.NewFromString(input)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	if d.LessThanOrEqual(decimal.Zero) {
		return 0, ErrInvalidAmount
	}
	if !d.Equal(d.Truncate(2)) {
		return 0, ErrInvalidAmount
	}
	if d.GreaterThan(decimal.NewFromFloat(constants.MaxSafeBalanceFloat)) {
		return 0, ErrInvalidAmount
	}

	return d.Shift(2).IntPart(), nil
}
