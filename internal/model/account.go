package model

type Account struct {
	ID           int64
	Number       string
	PIN          string
	BalanceCents int64
}

// Transaction is one journal row. Withdrawals carry a negative amount,
// deposits a positive one.
type Transaction struct {
	ID          int64
	AccountID   int64
	Kind        string
	AmountCents int64
	CreatedAt   int64
}
