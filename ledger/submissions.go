package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskbazaar/models"
	"taskbazaar/utils"
)

// SubmitProof records a worker's attempt to complete a task as a pending
// submission. A worker can have at most one live attempt per task: a task id
// already in the completed or submitted set refuses a new submission.
// Auto-approve verification happens outside the ledger; a positive verdict
// comes back through Approve with the AI reviewer.
func (s *Store) SubmitProof(workerID, taskID string, proof models.Proof) (models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wi := s.userIndex(workerID)
	if wi < 0 {
		return models.Submission{}, ErrNotFound
	}
	worker := s.users[wi]
	if worker.Role != models.RoleUser {
		return models.Submission{}, ErrPermissionDenied
	}
	if worker.Status == models.UserSuspended {
		return models.Submission{}, ErrSuspended
	}

	ti := s.taskIndex(taskID)
	if ti < 0 {
		return models.Submission{}, ErrNotFound
	}
	task := s.tasks[ti]

	if proof.Kind != task.ProofType || !proof.Valid() {
		return models.Submission{}, ErrProofMismatch
	}
	if worker.HasCompleted(taskID) || worker.HasSubmitted(taskID) {
		return models.Submission{}, ErrDuplicateSubmission
	}

	sub := models.Submission{
		ID:          "sub-" + uuid.NewString(),
		TaskID:      taskID,
		WorkerID:    worker.ID,
		Status:      models.SubmissionPending,
		Proof:       proof,
		SubmittedAt: time.Now(),
	}

	updated := cloneUser(worker)
	updated.SubmittedTaskIDs = append(updated.SubmittedTaskIDs, taskID)
	s.users[wi] = updated
	s.submissions = append(s.submissions, sub)
	return sub, nil
}

// Approve settles a submission in the worker's favor: the worker is credited
// the task reward, the task's completion counter advances, and the task moves
// from the worker's submitted set into the completed set. Valid transitions
// are pending->approved for any reviewer and rejected->approved for the admin
// overturning an owner's rejection. Re-approving is refused.
func (s *Store) Approve(submissionID string, reviewer models.Reviewer) (models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	si := s.submissionIndex(submissionID)
	if si < 0 {
		return models.Submission{}, ErrNotFound
	}
	sub := s.submissions[si]

	switch sub.Status {
	case models.SubmissionPending:
	case models.SubmissionRejected:
		if reviewer != models.ReviewerAdmin {
			return models.Submission{}, ErrPermissionDenied
		}
	default:
		return models.Submission{}, ErrInvalidTransition
	}

	ti := s.taskIndex(sub.TaskID)
	wi := s.userIndex(sub.WorkerID)
	if ti < 0 || wi < 0 {
		return models.Submission{}, ErrNotFound
	}
	task := s.tasks[ti]

	sub.Status = models.SubmissionApproved
	sub.ReviewerFeedback = fmt.Sprintf("Approved by %s", reviewer)

	worker := cloneUser(s.users[wi])
	worker.Balance += task.Reward
	worker.SubmittedTaskIDs = removeFrom(worker.SubmittedTaskIDs, task.ID)
	worker.CompletedTaskIDs = append(worker.CompletedTaskIDs, task.ID)

	task.CompletionsDone++

	s.submissions[si] = sub
	s.tasks[ti] = task
	s.users[wi] = worker
	s.transactions = append(s.transactions, models.Transaction{
		ID:        "tx-" + uuid.NewString(),
		UserID:    worker.ID,
		Amount:    task.Reward,
		OrderID:   utils.GenerateOrderID(worker.ID),
		Flow:      models.FlowCredit,
		Type:      models.TxReward,
		Message:   "Task reward: " + task.Title,
		Status:    models.TxSuccess,
		CreatedAt: time.Now(),
	})
	return sub, nil
}

// Reject settles a submission against the worker. The task id leaves the
// worker's submitted set so the worker is free to resubmit. Only pending
// submissions can be rejected, and a reason is mandatory.
func (s *Store) Reject(submissionID, reason string, reviewer models.Reviewer) (models.Submission, error) {
	if strings.TrimSpace(reason) == "" {
		return models.Submission{}, ErrReasonRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	si := s.submissionIndex(submissionID)
	if si < 0 {
		return models.Submission{}, ErrNotFound
	}
	sub := s.submissions[si]
	if sub.Status != models.SubmissionPending {
		return models.Submission{}, ErrInvalidTransition
	}

	sub.Status = models.SubmissionRejected
	sub.ReviewerFeedback = fmt.Sprintf("Rejected by %s: %s", reviewer, reason)
	s.submissions[si] = sub

	if wi := s.userIndex(sub.WorkerID); wi >= 0 {
		worker := cloneUser(s.users[wi])
		worker.SubmittedTaskIDs = removeFrom(worker.SubmittedTaskIDs, sub.TaskID)
		s.users[wi] = worker
	}
	return sub, nil
}

func removeFrom(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
