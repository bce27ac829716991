package users

import (
	"net/http"

	"taskbazaar/controllers"
	"taskbazaar/ledger"
	"taskbazaar/utils"
)

// GET /v1/users/info
func InfoHandler(store *ledger.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := utils.GetUserID(r)
		if !ok || uid == "" {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
			return
		}

		user, err := store.GetUser(uid)
		if err != nil {
			controllers.WriteLedgerError(w, err)
			return
		}

		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
			Success: true,
			Message: "Successfully",
			Data: map[string]interface{}{
				"user":           user,
				"pending_review": store.PendingReviewCount(uid),
			},
		})
	}
}
