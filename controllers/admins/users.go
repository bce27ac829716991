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

// GET /v1/admin/users
func ListUsers(store *ledger.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: store.Users()})
	}
}

type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// PATCH /v1/admin/users/{id}/status
// Suspends or reinstates an account. Suspended users cannot connect, submit,
// create tasks, or move funds.
func SetUserStatus(store *ledger.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, _ := utils.GetUserID(r)
		userID := mux.Vars(r)["id"]

		var req StatusRequest
		if err := middleware.ValidateJSON(w, r, &req); err != nil {
			return
		}

		user, err := store.SetUserStatus(adminID, userID, models.UserStatus(req.Status))
		if err != nil {
			controllers.WriteLedgerError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "User status updated", Data: user})
	}
}

// DELETE /v1/admin/users/{id}
func DeleteUser(store *ledger.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, _ := utils.GetUserID(r)
		userID := mux.Vars(r)["id"]

		if err := store.DeleteUser(adminID, userID); err != nil {
			controllers.WriteLedgerError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "User deleted"})
	}
}
