package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskbazaar/models"
)

// TaskSpec carries everything a creator supplies for a new task.
type TaskSpec struct {
	Title             string           `json:"title" validate:"required"`
	Description       string           `json:"description" validate:"required"`
	Reward            float64          `json:"reward"`
	Type              models.TaskType  `json:"type"`
	CompletionsNeeded int              `json:"completions_needed"`
	ProofType         models.ProofType `json:"proof_type"`
	ProofQuestion     string           `json:"proof_question" validate:"required"`
	AutoApprove       bool             `json:"auto_approve"`
}

// CreateTask funds and publishes a new task. The full budget
// (reward * completionsNeeded) is deducted from the creator's deposited
// balance up front; on any validation failure nothing changes.
func (s *Store) CreateTask(ownerID string, spec TaskSpec) (models.Task, error) {
	if spec.Reward <= 0 || spec.CompletionsNeeded < 1 {
		return models.Task{}, ErrInvalidAmount
	}
	if !spec.Type.Valid() || !spec.ProofType.Valid() {
		return models.Task{}, ErrInvalidTask
	}
	if spec.Title == "" || spec.ProofQuestion == "" {
		return models.Task{}, ErrInvalidTask
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(ownerID)
	if i < 0 {
		return models.Task{}, ErrNotFound
	}
	owner := s.users[i]
	if owner.Role != models.RoleUser {
		return models.Task{}, ErrPermissionDenied
	}
	if owner.Status == models.UserSuspended {
		return models.Task{}, ErrSuspended
	}

	cost := spec.Reward * float64(spec.CompletionsNeeded)
	if owner.DepositedBalance < cost {
		return models.Task{}, ErrInsufficientFunds
	}

	task := models.Task{
		ID:                "task-" + uuid.NewString(),
		CreatorID:         owner.ID,
		Title:             spec.Title,
		Description:       spec.Description,
		Reward:            spec.Reward,
		Type:              spec.Type,
		ProjectName:       projectName(owner.ID),
		CompletionsNeeded: spec.CompletionsNeeded,
		CompletionsDone:   0,
		ProofType:         spec.ProofType,
		ProofQuestion:     spec.ProofQuestion,
		AutoApprove:       spec.AutoApprove,
		CreatedAt:         time.Now(),
	}

	updated := cloneUser(owner)
	updated.DepositedBalance -= cost
	s.users[i] = updated
	// Newest tasks list first.
	s.tasks = append([]models.Task{task}, s.tasks...)
	return task, nil
}

// DeleteTask removes a task, all of its submissions, and every reference to
// it from user task sets. Admin only.
func (s *Store) DeleteTask(adminID, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAdmin(adminID); err != nil {
		return err
	}
	i := s.taskIndex(taskID)
	if i < 0 {
		return ErrNotFound
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)

	kept := s.submissions[:0:0]
	for _, sub := range s.submissions {
		if sub.TaskID != taskID {
			kept = append(kept, sub)
		}
	}
	s.submissions = kept

	for j := range s.users {
		if s.users[j].HasCompleted(taskID) || s.users[j].HasSubmitted(taskID) {
			u := cloneUser(s.users[j])
			u.RemoveTaskRef(taskID)
			s.users[j] = u
		}
	}
	return nil
}

func projectName(address string) string {
	if len(address) <= 6 {
		return "User " + address
	}
	return fmt.Sprintf("User %s...", address[:6])
}
