package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sultanbank/teller/internal/model"
)

func (s *Store) CreateAccount(number, pin string, balanceCents int64) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO accounts (number, pin, balance_cents)
		VALUES (?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer stmt.Close()

	var newID int64

	err = stmt.QueryRow(number, pin, balanceCents).Scan(&newID)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: accounts.number") {
			return 0, fmt.Errorf("account number '%s' is already existed", number)
		}
		return 0, fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	return newID, nil
}

func (s *Store) GetAccountByNumber(number string) (*model.Account, error) {
	row := s.db.QueryRow("SELECT id, number, pin, balance_cents FROM accounts WHERE number = ?", number)

	acc := &model.Account{}

	err := row.Scan(&acc.ID, &acc.Number, &acc.PIN, &acc.BalanceCents)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account '%s' not found: %w", number, sql.ErrNoRows)
		}
		return nil, fmt.Errorf("failed to query account '%s' : %w", number, err)
	}

	return acc, nil
}

func (s *Store) AccountExists(number string) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM accounts WHERE number = ?", number).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return count > 0, nil
}

func (s *Store) GetAccountBalance(accountID int64) (int64, error) {
	var balance int64
	err := s.db.QueryRow("SELECT balance_cents FROM accounts WHERE id = ?", accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("account with ID %d not found", accountID)
		}
		return 0, fmt.Errorf("failed to query balance: %w", err)
	}
	return balance, nil
}

func (s *Store) UpdateAccountBalance(accountID, balanceCents int64) error {
	res, err := s.db.Exec("UPDATE accounts SET balance_cents = ? WHERE id = ?", balanceCents, accountID)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("account with ID %d not found", accountID)
	}

	return nil
}
