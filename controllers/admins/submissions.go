package admins

import (
	"net/http"

	"github.com/gorilla/mux"

	"taskbazaar/controllers"
	"taskbazaar/ledger"
	"taskbazaar/middleware"
	"taskbazaar/models"
	"taskbazaar/utils"
)

// GET /v1/admin/submissions
func ListSubmissions(store *ledger.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: store.Submissions()})
	}
}

// POST /v1/admin/submissions/{id}/approve
// Admin review can approve a pending submission and is the only path that
// may overturn a rejection.
func ApproveSubmission(store *ledger.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subID := mux.Vars(r)["id"]
		sub, err := store.Approve(subID, models.ReviewerAdmin)
		if err != nil {
			controllers.WriteLedgerError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Submission approved", Data: sub})
	}
}

type RejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// POST /v1/admin/submissions/{id}/reject
func RejectSubmission(store *ledger.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subID := mux.Vars(r)["id"]
		var req RejectRequest
		if err := middleware.ValidateJSON(w, r, &req); err != nil {
			return
		}
		sub, err := store.Reject(subID, req.Reason, models.ReviewerAdmin)
		if err != nil {
			controllers.WriteLedgerError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Submission rejected", Data: sub})
	}
}
