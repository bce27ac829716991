package users

import (
	"log"
	"net/http"
	"time"

	"taskbazaar/controllers"
	"taskbazaar/ledger"
	"taskbazaar/middleware"
	"taskbazaar/utils"
)

type TransferRequest struct {
	Amount float64 `json:"amount"`
}

// POST /v1/users/deposit
// The simulated wallet flow: a pending transaction is journaled immediately
// and settles after a short delay, mimicking block confirmation time.
func DepositHandler(store *ledger.Store, settleDelay time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := utils.GetUserID(r)
		if !ok || uid == "" {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
			return
		}
		var req TransferRequest
		if err := middleware.ValidateJSON(w, r, &req); err != nil {
			return
		}

		tx, err := store.BeginDeposit(uid, req.Amount)
		if err != nil {
			controllers.WriteLedgerError(w, err)
			return
		}
		scheduleSettlement(store, tx.OrderID, settleDelay)

		utils.WriteJSON(w, http.StatusAccepted, utils.APIResponse{Success: true, Message: "Deposit pending confirmation", Data: tx})
	}
}

// POST /v1/users/withdraw
func WithdrawHandler(store *ledger.Store, settleDelay time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := utils.GetUserID(r)
		if !ok || uid == "" {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
			return
		}
		var req TransferRequest
		if err := middleware.ValidateJSON(w, r, &req); err != nil {
			return
		}

		tx, err := store.BeginWithdraw(uid, req.Amount)
		if err != nil {
			controllers.WriteLedgerError(w, err)
			return
		}
		scheduleSettlement(store, tx.OrderID, settleDelay)

		utils.WriteJSON(w, http.StatusAccepted, utils.APIResponse{Success: true, Message: "Withdrawal pending confirmation", Data: tx})
	}
}

// GET /v1/users/transactions
func TransactionsHandler(store *ledger.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := utils.GetUserID(r)
		if !ok || uid == "" {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
			return
		}
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: store.TransactionsByUser(uid)})
	}
}

// scheduleSettlement settles the order after the configured delay. A zero
// delay settles synchronously, which keeps tests deterministic.
func scheduleSettlement(store *ledger.Store, orderID string, delay time.Duration) {
	settle := func() {
		if _, err := store.Settle(orderID); err != nil {
			log.Printf("[ledger] settlement failed for %s: %v", orderID, err)
		}
	}
	if delay <= 0 {
		settle()
		return
	}
	go func() {
		time.Sleep(delay)
		settle()
	}()
}
