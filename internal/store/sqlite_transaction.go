package store

import (
	"fmt"
	"time"

	"github.com/sultanbank/teller/internal/model"
)

// CreateTransaction appends one journal row. It relies on the caller
// (Service layer) to wrap it in ExecTx together with the balance update.
func (s *Store) CreateTransaction(accountID int64, kind string, amountCents int64) (int64, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO transactions (account_id, kind, amount_cents, created_at)
        VALUES (?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare transaction SQL: %w", err)
	}
	defer stmt.Close()

	var newID int64
	err = stmt.QueryRow(accountID, kind, amountCents, time.Now().Unix()).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return newID, nil
}

// GetTransactionsByAccount returns the account's journal oldest-first.
func (s *Store) GetTransactionsByAccount(accountID int64) ([]*model.Transaction, error) {
	rows, err := s.db.Query(`
        SELECT id, account_id, kind, amount_cents, created_at
        FROM transactions
        WHERE account_id = ?
        ORDER BY id
    `, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txs []*model.Transaction
	for rows.Next() {
		tx := &model.Transaction{}
		if err := rows.Scan(&tx.ID, &tx.AccountID, &tx.Kind, &tx.AmountCents, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}
