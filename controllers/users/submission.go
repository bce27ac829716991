package users

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"taskbazaar/ai"
	"taskbazaar/controllers"
	"taskbazaar/ledger"
	"taskbazaar/middleware"
	"taskbazaar/models"
	"taskbazaar/utils"
)

type SubmitRequest struct {
	TaskID string       `json:"task_id" validate:"required"`
	Proof  models.Proof `json:"proof"`
}

// POST /v1/users/submissions
// Records a proof for a task. When the task opted into auto-approve and the
// submission is eligible, the AI verdict is awaited inline so the worker sees
// the outcome immediately. Only a positive verdict mutates the submission;
// a negative verdict or a verification error leaves it pending for manual
// review.
func SubmitHandler(store *ledger.Store, assistant ai.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := utils.GetUserID(r)
		if !ok || uid == "" {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
			return
		}

		var req SubmitRequest
		if err := middleware.ValidateJSON(w, r, &req); err != nil {
			return
		}

		task, err := store.GetTask(req.TaskID)
		if err != nil {
			controllers.WriteLedgerError(w, err)
			return
		}

		sub, err := store.SubmitProof(uid, req.TaskID, req.Proof)
		if err != nil {
			controllers.WriteLedgerError(w, err)
			return
		}

		message := "Submission received, awaiting review"
		if task.AutoApprove && assistant != nil && ai.Verifiable(task, req.Proof) {
			verdict, verr := assistant.VerifySubmission(r.Context(), task, req.Proof)
			switch {
			case verr != nil:
				log.Printf("[AI] verification error for %s: %v", sub.ID, verr)
			case verdict:
				if approved, aerr := store.Approve(sub.ID, models.ReviewerAI); aerr == nil {
					sub = approved
					message = "Submission verified and approved"
				}
			default:
				message = "Automated verification could not confirm the share, awaiting manual review"
			}
		}

		utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{Success: true, Message: message, Data: sub})
	}
}

// GET /v1/users/submissions
func MySubmissionsHandler(store *ledger.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := utils.GetUserID(r)
		if !ok || uid == "" {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
			return
		}
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: store.SubmissionsByWorker(uid)})
	}
}

// GET /v1/users/reviews
// The owner-side queue: submissions against tasks this user created.
func ReviewQueueHandler(store *ledger.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := utils.GetUserID(r)
		if !ok || uid == "" {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
			return
		}
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: store.SubmissionsForOwner(uid)})
	}
}

// POST /v1/users/reviews/{id}/approve
func ApproveSubmissionHandler(store *ledger.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := utils.GetUserID(r)
		if !ok || uid == "" {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
			return
		}
		subID := mux.Vars(r)["id"]
		if !ownsSubmission(store, uid, subID) {
			utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "You can only review submissions to your own tasks"})
			return
		}
		sub, err := store.Approve(subID, models.ReviewerOwner)
		if err != nil {
			controllers.WriteLedgerError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Submission approved", Data: sub})
	}
}

type RejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// POST /v1/users/reviews/{id}/reject
func RejectSubmissionHandler(store *ledger.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := utils.GetUserID(r)
		if !ok || uid == "" {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
			return
		}
		subID := mux.Vars(r)["id"]
		var req RejectRequest
		if err := middleware.ValidateJSON(w, r, &req); err != nil {
			return
		}
		if !ownsSubmission(store, uid, subID) {
			utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "You can only review submissions to your own tasks"})
			return
		}
		sub, err := store.Reject(subID, req.Reason, models.ReviewerOwner)
		if err != nil {
			controllers.WriteLedgerError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Submission rejected", Data: sub})
	}
}

// ownsSubmission reports whether the submission targets a task created by
// ownerID. Unknown submissions return false; the store call that follows
// produces the not-found response.
func ownsSubmission(store *ledger.Store, ownerID, submissionID string) bool {
	sub, err := store.GetSubmission(submissionID)
	if err != nil {
		return true
	}
	task, err := store.GetTask(sub.TaskID)
	if err != nil {
		return true
	}
	return task.CreatorID == ownerID
}
