package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskbazaar/models"
	"taskbazaar/utils"
)

// Deposits and withdrawals simulate an external funds-movement call: the
// request is journaled as a Pending transaction immediately, and the balance
// change lands only when Settle runs after the simulated settlement delay.
// Withdrawals re-validate the balance at settlement so a failed settlement
// never leaves a partial state behind.

// BeginDeposit validates and journals a deposit into the user's funding
// balance.
func (s *Store) BeginDeposit(userID string, amount float64) (models.Transaction, error) {
	return s.beginTransfer(userID, amount, models.TxDeposit)
}

// BeginWithdraw validates and journals a withdrawal from the user's earned
// balance.
func (s *Store) BeginWithdraw(userID string, amount float64) (models.Transaction, error) {
	return s.beginTransfer(userID, amount, models.TxWithdrawal)
}

func (s *Store) beginTransfer(userID string, amount float64, kind models.TransactionType) (models.Transaction, error) {
	if amount <= 0 {
		return models.Transaction{}, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(userID)
	if i < 0 {
		return models.Transaction{}, ErrNotFound
	}
	user := s.users[i]
	if user.Role != models.RoleUser {
		return models.Transaction{}, ErrPermissionDenied
	}
	if user.Status == models.UserSuspended {
		return models.Transaction{}, ErrSuspended
	}

	flow := models.FlowCredit
	if kind == models.TxWithdrawal {
		flow = models.FlowDebit
		if amount > user.Balance {
			return models.Transaction{}, ErrInsufficientFunds
		}
	}

	tx := models.Transaction{
		ID:        "tx-" + uuid.NewString(),
		UserID:    user.ID,
		Amount:    amount,
		OrderID:   utils.GenerateOrderID(user.ID),
		Flow:      flow,
		Type:      kind,
		Message:   fmt.Sprintf("Simulated %s of $%.2f", kind, amount),
		Status:    models.TxPending,
		CreatedAt: time.Now(),
	}
	s.transactions = append(s.transactions, tx)
	return tx, nil
}

// Settle commits a pending deposit or withdrawal. Deposits raise the
// deposited balance; withdrawals deduct from the earned balance after
// re-checking it, marking the journal entry Failed when funds are gone.
func (s *Store) Settle(orderID string) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ti := -1
	for i := range s.transactions {
		if s.transactions[i].OrderID == orderID {
			ti = i
			break
		}
	}
	if ti < 0 {
		return models.Transaction{}, ErrNotFound
	}
	tx := s.transactions[ti]
	if tx.Status != models.TxPending {
		return models.Transaction{}, ErrInvalidTransition
	}

	ui := s.userIndex(tx.UserID)
	if ui < 0 {
		tx.Status = models.TxFailed
		s.transactions[ti] = tx
		return tx, nil
	}
	user := cloneUser(s.users[ui])

	switch tx.Type {
	case models.TxDeposit:
		user.DepositedBalance += tx.Amount
		tx.Status = models.TxSuccess
	case models.TxWithdrawal:
		if tx.Amount > user.Balance {
			tx.Status = models.TxFailed
		} else {
			user.Balance -= tx.Amount
			tx.Status = models.TxSuccess
		}
	default:
		return models.Transaction{}, ErrInvalidTransition
	}

	if tx.Status == models.TxSuccess {
		s.users[ui] = user
	}
	s.transactions[ti] = tx
	return tx, nil
}
