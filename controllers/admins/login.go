package admins

import (
	"fmt"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"taskbazaar/ledger"
	"taskbazaar/middleware"
	"taskbazaar/utils"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /v1/admin/login
func Login(store *ledger.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := middleware.ValidateJSON(w, r, &req); err != nil {
			return
		}

		admin, err := store.FindAdminByEmail(req.Email)
		if err != nil {
			// Same message as a bad password; do not leak which admins exist.
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid email or password"})
			return
		}

		if locked, ttl := middleware.IsAccountLocked(admin.ID); locked {
			utils.WriteJSON(w, http.StatusTooManyRequests, utils.APIResponse{
				Success: false,
				Message: fmt.Sprintf("Account locked, try again in %d seconds", int(ttl.Seconds())+1),
			})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
			middleware.RecordFailedLogin(admin.ID)
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid email or password"})
			return
		}
		middleware.ResetFailedLogin(admin.ID)

		token, err := utils.GenerateAccessToken(admin.ID, string(admin.Role))
		if err != nil {
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to create session"})
			return
		}

		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
			Success: true,
			Message: "Logged in",
			Data: map[string]interface{}{
				"token": token,
				"admin": admin,
			},
		})
	}
}
