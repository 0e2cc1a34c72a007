package constants

const (
	AccountNumberLen = 9
	PINLen           = 4

	DefaultMaxPINAttempts = 3

	CentsPerUnit = 100

	// Largest whole-unit amount that still fits int64 cents.
	MaxSafeBalanceFloat = 9223372036854775.0
)

const (
	TxKindWithdrawal = "Withdrawal"
	TxKindDeposit    = "Deposit"
)

const (
	ActionBalance  = "Balance"
	ActionWithdraw = "Withdraw"
	ActionDeposit  = "Deposit"
	ActionHistory  = "History"
	ActionBack     = "Back"
)
