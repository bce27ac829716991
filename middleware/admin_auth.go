package middleware

import (
	"context"
	"net/http"
	"strings"

	"taskbazaar/ledger"
	"taskbazaar/models"
	"taskbazaar/utils"
)

// AdminAuth verifies the request carries an admin token and that the admin
// still exists and is active in the ledger.
func AdminAuth(store *ledger.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{
					Success: false,
					Message: "Unauthorized: No token provided",
				})
				return
			}
			tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

			_, claims, err := utils.ValidateAccessToken(tokenString)
			if err != nil {
				utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{
					Success: false,
					Message: "Unauthorized: Invalid token",
				})
				return
			}

			role, _ := claims["role"].(string)
			if role != "ADMIN" {
				utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{
					Success: false,
					Message: "Forbidden: Admin access required",
				})
				return
			}

			adminID, _ := claims["id"].(string)
			admin, err := store.GetUser(adminID)
			if err != nil || admin.Role != models.RoleAdmin {
				utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{
					Success: false,
					Message: "Unauthorized: Admin not found",
				})
				return
			}
			if admin.Status == models.UserSuspended {
				utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{
					Success: false,
					Message: "Forbidden",
				})
				return
			}

			ctx := context.WithValue(r.Context(), utils.UserIDKey, adminID)
			ctx = context.WithValue(ctx, utils.UserRoleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
