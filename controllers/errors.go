package controllers

import (
	"errors"
	"net/http"

	"taskbazaar/ledger"
	"taskbazaar/utils"
)

// WriteLedgerError maps ledger sentinel errors onto the API envelope.
func WriteLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Not found"})
	case errors.Is(err, ledger.ErrInsufficientFunds):
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Insufficient funds"})
	case errors.Is(err, ledger.ErrInvalidAmount):
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid amount"})
	case errors.Is(err, ledger.ErrInvalidTask):
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid task"})
	case errors.Is(err, ledger.ErrInvalidStatus):
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid status"})
	case errors.Is(err, ledger.ErrReasonRequired):
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "A rejection reason is required"})
	case errors.Is(err, ledger.ErrDuplicateSubmission):
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "You have already submitted or completed this task"})
	case errors.Is(err, ledger.ErrProofMismatch):
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Proof does not match the task's required proof type"})
	case errors.Is(err, ledger.ErrInvalidTransition):
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "Submission has already been reviewed"})
	case errors.Is(err, ledger.ErrPermissionDenied):
		utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Permission denied"})
	case errors.Is(err, ledger.ErrSuspended):
		utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Account suspended, please contact support"})
	default:
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Something went wrong, please try again"})
	}
}
