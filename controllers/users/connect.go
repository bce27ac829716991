package users

import (
	"net/http"
	"strings"
	"time"

	"taskbazaar/controllers"
	"taskbazaar/ledger"
	"taskbazaar/middleware"
	"taskbazaar/utils"
	"taskbazaar/wallet"
)

type ConnectRequest struct {
	Address string `json:"address" validate:"required,wallet"`
}

// POST /v1/connect
// Wallet connect doubles as registration: unknown addresses get a fresh
// account, returning addresses get their existing one back.
func ConnectHandler(store *ledger.Store, provider wallet.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ConnectRequest
		if err := middleware.ValidateJSON(w, r, &req); err != nil {
			return
		}

		chainID, err := provider.ChainID(r.Context())
		if err != nil {
			utils.WriteJSON(w, http.StatusServiceUnavailable, utils.APIResponse{Success: false, Message: "Wallet provider unavailable"})
			return
		}
		network := wallet.NetworkName(chainID)
		if network == "Unsupported Network" {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Unsupported network, please switch chains and try again"})
			return
		}

		user, err := store.RegisterUser(req.Address)
		if err != nil {
			controllers.WriteLedgerError(w, err)
			return
		}

		token, err := utils.GenerateAccessToken(user.ID, string(user.Role))
		if err != nil {
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to create session"})
			return
		}

		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
			Success: true,
			Message: "Wallet connected",
			Data: map[string]interface{}{
				"token":    token,
				"user":     user,
				"chain_id": chainID,
				"network":  network,
			},
		})
	}
}

// POST /v1/logout
// Blacklists the current token's jti for the remainder of its lifetime.
// Without Redis this is a best-effort no-op; the client drops the token.
func LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
		_, claims, err := utils.ValidateAccessToken(tokenStr)
		if err != nil {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid token"})
			return
		}
		if jti, ok := claims["jti"].(string); ok && jti != "" {
			ttl := 24 * time.Hour
			if exp, ok := claims["exp"].(float64); ok {
				if until := time.Until(time.Unix(int64(exp), 0)); until > 0 {
					ttl = until
				}
			}
			_ = utils.RevokeJTI(jti, ttl)
		}
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Logged out"})
	}
}
