package models

import "time"

type TransactionFlow string

const (
	FlowDebit  TransactionFlow = "debit"
	FlowCredit TransactionFlow = "credit"
)

type TransactionType string

const (
	TxDeposit    TransactionType = "deposit"
	TxWithdrawal TransactionType = "withdrawal"
	TxReward     TransactionType = "reward"
)

type TransactionStatus string

const (
	TxSuccess TransactionStatus = "Success"
	TxPending TransactionStatus = "Pending"
	TxFailed  TransactionStatus = "Failed"
)

// Transaction is a journal entry for every funds movement on the platform:
// simulated deposits and withdrawals (Pending until settlement) and reward
// credits (Success immediately).
type Transaction struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Amount    float64           `json:"amount"`
	OrderID   string            `json:"order_id"`
	Flow      TransactionFlow   `json:"flow"`
	Type      TransactionType   `json:"type"`
	Message   string            `json:"message,omitempty"`
	Status    TransactionStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}
