package admins

import (
	"net/http"

	"github.com/gorilla/mux"

	"taskbazaar/controllers"
	"taskbazaar/ledger"
	"taskbazaar/utils"
)

// GET /v1/admin/tasks
func ListTasks(store *ledger.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: store.Tasks()})
	}
}

// DELETE /v1/admin/tasks/{id}
// Removes a task and cascades: its submissions disappear and user task
// references are pruned. Reserved funds are not refunded.
func DeleteTask(store *ledger.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, _ := utils.GetUserID(r)
		taskID := mux.Vars(r)["id"]

		if err := store.DeleteTask(adminID, taskID); err != nil {
			controllers.WriteLedgerError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Task deleted"})
	}
}
