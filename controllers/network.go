package controllers

import (
	"net/http"

	"taskbazaar/ledger"
	"taskbazaar/utils"
	"taskbazaar/wallet"
)

// GET /v1/network
// Reports the chain the simulated wallet provider is on. The frontend uses
// this to warn about unsupported networks before connecting.
func NetworkInfoHandler(provider wallet.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chainID, err := provider.ChainID(r.Context())
		if err != nil {
			utils.WriteJSON(w, http.StatusServiceUnavailable, utils.APIResponse{Success: false, Message: "Wallet provider unavailable"})
			return
		}
		name := wallet.NetworkName(chainID)
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
			Success: true,
			Message: "Successfully",
			Data: map[string]interface{}{
				"chain_id":  chainID,
				"network":   name,
				"supported": name != "Unsupported Network",
			},
		})
	}
}

// GET /v1/tasks
// Public task board. No auth required; workers see availability after
// connecting.
func PublicTasksHandler(store *ledger.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: store.Tasks()})
	}
}
