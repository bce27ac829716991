package users

import (
	"net/http"

	"github.com/gorilla/mux"

	"taskbazaar/controllers"
	"taskbazaar/ledger"
	"taskbazaar/middleware"
	"taskbazaar/models"
	"taskbazaar/utils"
)

// GET /v1/users/tasks?type=Survey
// Lists tasks the worker can still pick up. Tasks they have already
// submitted to or completed are filtered out server-side.
func AvailableTasksHandler(store *ledger.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := utils.GetUserID(r)
		if !ok || uid == "" {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
			return
		}

		filter := models.TaskType(r.URL.Query().Get("type"))
		if filter != "" && !filter.Valid() {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Unknown task type"})
			return
		}

		tasks := store.AvailableTasks(uid, filter)
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: tasks})
	}
}

// GET /v1/users/tasks/mine
func MyTasksHandler(store *ledger.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := utils.GetUserID(r)
		if !ok || uid == "" {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
			return
		}
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: store.TasksByCreator(uid)})
	}
}

// POST /v1/users/tasks
// Publishes a task. The full budget (reward * completions needed) comes out
// of the creator's deposited balance up front.
func CreateTaskHandler(store *ledger.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := utils.GetUserID(r)
		if !ok || uid == "" {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
			return
		}

		var spec ledger.TaskSpec
		if err := middleware.ValidateJSON(w, r, &spec); err != nil {
			return
		}

		task, err := store.CreateTask(uid, spec)
		if err != nil {
			controllers.WriteLedgerError(w, err)
			return
		}

		utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{Success: true, Message: "Task published", Data: task})
	}
}

// GET /v1/users/tasks/{id}
func TaskDetailHandler(store *ledger.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID := mux.Vars(r)["id"]
		task, err := store.GetTask(taskID)
		if err != nil {
			controllers.WriteLedgerError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: task})
	}
}
