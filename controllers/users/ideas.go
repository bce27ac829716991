package users

import (
	"net/http"

	"taskbazaar/ai"
	"taskbazaar/middleware"
	"taskbazaar/utils"
)

type IdeasRequest struct {
	Goal string `json:"goal" validate:"required"`
}

// POST /v1/tasks/ideas
// Turns a free-form project goal into task suggestions the owner can edit
// before publishing. Requires a configured assistant.
func TaskIdeasHandler(assistant ai.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := utils.GetUserID(r)
		if !ok || uid == "" {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
			return
		}

		if assistant == nil {
			utils.WriteJSON(w, http.StatusServiceUnavailable, utils.APIResponse{Success: false, Message: "AI assistance is not configured"})
			return
		}

		var req IdeasRequest
		if err := middleware.ValidateJSON(w, r, &req); err != nil {
			return
		}

		ideas, err := assistant.GenerateTaskIdeas(r.Context(), req.Goal)
		if err != nil {
			utils.WriteJSON(w, http.StatusBadGateway, utils.APIResponse{Success: false, Message: "Idea generation failed, please try again"})
			return
		}

		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: ideas})
	}
}
