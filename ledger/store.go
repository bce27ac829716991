package ledger

import (
	"strings"
	"sync"

	"taskbazaar/models"
)

// Store owns the single in-memory aggregate of users, tasks, submissions and
// the transaction journal. Every mutation validates first, then replaces the
// affected entity values atomically under the write lock; entities are only
// ever handed out as copies, never by reference. Nothing survives a restart.
type Store struct {
	mu           sync.RWMutex
	users        []models.User
	tasks        []models.Task
	submissions  []models.Submission
	transactions []models.Transaction
}

// Snapshot is a deep copy of the entire aggregate at one point in time.
type Snapshot struct {
	Users        []models.User
	Tasks        []models.Task
	Submissions  []models.Submission
	Transactions []models.Transaction
}

func NewStore(seed models.SeedData) *Store {
	s := &Store{}
	s.users = cloneUsers(seed.Users)
	s.tasks = append(s.tasks, seed.Tasks...)
	s.submissions = append(s.submissions, seed.Submissions...)
	s.transactions = append(s.transactions, seed.Transactions...)
	return s
}

// Snapshot returns a deep copy of the aggregate.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Users:        cloneUsers(s.users),
		Tasks:        append([]models.Task(nil), s.tasks...),
		Submissions:  append([]models.Submission(nil), s.submissions...),
		Transactions: append([]models.Transaction(nil), s.transactions...),
	}
}

func cloneUsers(users []models.User) []models.User {
	out := make([]models.User, len(users))
	for i, u := range users {
		out[i] = cloneUser(u)
	}
	return out
}

func cloneUser(u models.User) models.User {
	u.CompletedTaskIDs = append([]string(nil), u.CompletedTaskIDs...)
	u.SubmittedTaskIDs = append([]string(nil), u.SubmittedTaskIDs...)
	return u
}

// Lookup helpers. Callers must hold at least the read lock.

func (s *Store) userIndex(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

// userIndexByAddress matches wallet addresses case-insensitively.
func (s *Store) userIndexByAddress(address string) int {
	for i := range s.users {
		if strings.EqualFold(s.users[i].ID, address) {
			return i
		}
	}
	return -1
}

func (s *Store) taskIndex(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) submissionIndex(id string) int {
	for i := range s.submissions {
		if s.submissions[i].ID == id {
			return i
		}
	}
	return -1
}

// GetUser returns a copy of the user.
func (s *Store) GetUser(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.userIndex(id)
	if i < 0 {
		return models.User{}, ErrNotFound
	}
	return cloneUser(s.users[i]), nil
}

// GetTask returns a copy of the task.
func (s *Store) GetTask(id string) (models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.taskIndex(id)
	if i < 0 {
		return models.Task{}, ErrNotFound
	}
	return s.tasks[i], nil
}

// GetSubmission returns a copy of the submission.
func (s *Store) GetSubmission(id string) (models.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.submissionIndex(id)
	if i < 0 {
		return models.Submission{}, ErrNotFound
	}
	return s.submissions[i], nil
}

// requireAdmin verifies the acting user is an active admin. Caller must hold
// a lock.
func (s *Store) requireAdmin(adminID string) error {
	i := s.userIndex(adminID)
	if i < 0 || s.users[i].Role != models.RoleAdmin {
		return ErrPermissionDenied
	}
	if s.users[i].Status == models.UserSuspended {
		return ErrSuspended
	}
	return nil
}
