package models

import "time"

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserSuspended UserStatus = "suspended"
)

// User is a platform participant. Workers and task owners are role USER and
// identified by a wallet address; the administrator is role ADMIN and
// identified by email. Balance holds earned, withdrawable funds;
// DepositedBalance holds funds earmarked for funding tasks.
type User struct {
	ID               string     `json:"id"`
	Name             string     `json:"name,omitempty"`
	Email            string     `json:"email,omitempty"`
	Password         string     `json:"-"`
	Role             UserRole   `json:"role"`
	Status           UserStatus `json:"status"`
	Balance          float64    `json:"balance"`
	DepositedBalance float64    `json:"deposited_balance"`
	CompletedTaskIDs []string   `json:"completed_task_ids"`
	SubmittedTaskIDs []string   `json:"submitted_task_ids"`
	CreatedAt        time.Time  `json:"-"`
}

// HasCompleted reports whether the user already has an approved completion
// for the task.
func (u *User) HasCompleted(taskID string) bool {
	return containsID(u.CompletedTaskIDs, taskID)
}

// HasSubmitted reports whether the user has a submission in flight for the
// task. A task id never appears in both the completed and submitted sets.
func (u *User) HasSubmitted(taskID string) bool {
	return containsID(u.SubmittedTaskIDs, taskID)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// RemoveTaskRef deletes the task id from both membership sets.
func (u *User) RemoveTaskRef(taskID string) {
	u.CompletedTaskIDs = removeID(u.CompletedTaskIDs, taskID)
	u.SubmittedTaskIDs = removeID(u.SubmittedTaskIDs, taskID)
}
