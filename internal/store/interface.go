package store

import "github.com/sultanbank/teller/internal/model"

type Repository interface {
	// Account Operations
	CreateAccount(number, pin string, balanceCents int64) (int64, error)
	GetAccountByNumber(number string) (*model.Account, error)
	AccountExists(number string) (bool, error)
	GetAccountBalance(accountID int64) (int64, error)
	UpdateAccountBalance(accountID, balanceCents int64) error

	// Journal Operations
	CreateTransaction(accountID int64, kind string, amountCents int64) (int64, error)
	GetTransactionsByAccount(accountID int64) ([]*model.Transaction, error)

	// ExecTx runs fn in a single database transaction.
	ExecTx(fn func(Repository) error) error

	Close() error
}
