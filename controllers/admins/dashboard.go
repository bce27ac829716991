package admins

import (
	"net/http"

	"taskbazaar/ledger"
	"taskbazaar/models"
	"taskbazaar/utils"
)

// GET /v1/admin/dashboard
// The moderation landing view: marketplace totals plus the open review
// backlog.
func Dashboard(store *ledger.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats := store.ComputeStats()

		pending := make([]models.Submission, 0)
		for _, sub := range store.Submissions() {
			if sub.Status == models.SubmissionPending {
				pending = append(pending, sub)
			}
		}

		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
			Success: true,
			Message: "Successfully",
			Data: map[string]interface{}{
				"stats":               stats,
				"pending_submissions": pending,
			},
		})
	}
}
