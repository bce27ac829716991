package ledger

import "taskbazaar/models"

// Read-only projections over the ledger. All of them are recomputed on
// demand from the current aggregate and return copies.

// AvailableTasks lists tasks the worker can still take: everything except
// tasks already completed or with a submission in flight. A non-empty filter
// restricts the list to one task type.
func (s *Store) AvailableTasks(workerID string, filter models.TaskType) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var worker *models.User
	if i := s.userIndex(workerID); i >= 0 {
		worker = &s.users[i]
	}

	out := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter != "" && t.Type != filter {
			continue
		}
		if worker != nil && (worker.HasCompleted(t.ID) || worker.HasSubmitted(t.ID)) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Tasks lists every task, newest first.
func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Task(nil), s.tasks...)
}

// TasksByCreator lists tasks owned by the given user.
func (s *Store) TasksByCreator(ownerID string) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Task, 0)
	for _, t := range s.tasks {
		if t.CreatorID == ownerID {
			out = append(out, t)
		}
	}
	return out
}

// Users lists every user.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneUsers(s.users)
}

// Submissions lists every submission.
func (s *Store) Submissions() []models.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Submission(nil), s.submissions...)
}

// SubmissionsByWorker lists the worker's own submissions.
func (s *Store) SubmissionsByWorker(workerID string) []models.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Submission, 0)
	for _, sub := range s.submissions {
		if sub.WorkerID == workerID {
			out = append(out, sub)
		}
	}
	return out
}

// SubmissionsForOwner lists submissions against tasks the owner created,
// i.e. the owner's review queue across all states.
func (s *Store) SubmissionsForOwner(ownerID string) []models.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := make(map[string]bool)
	for _, t := range s.tasks {
		if t.CreatorID == ownerID {
			owned[t.ID] = true
		}
	}
	out := make([]models.Submission, 0)
	for _, sub := range s.submissions {
		if owned[sub.TaskID] {
			out = append(out, sub)
		}
	}
	return out
}

// PendingReviewCount counts pending submissions awaiting the owner's review.
func (s *Store) PendingReviewCount(ownerID string) int {
	n := 0
	for _, sub := range s.SubmissionsForOwner(ownerID) {
		if sub.Status == models.SubmissionPending {
			n++
		}
	}
	return n
}

// TransactionsByUser lists the user's journal entries, newest first.
func (s *Store) TransactionsByUser(userID string) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Transaction, 0)
	for i := len(s.transactions) - 1; i >= 0; i-- {
		if s.transactions[i].UserID == userID {
			out = append(out, s.transactions[i])
		}
	}
	return out
}

// Stats is the platform-wide aggregate shown on the admin dashboard.
type Stats struct {
	TotalUsers         int     `json:"total_users"`
	TotalTasks         int     `json:"total_tasks"`
	TotalSubmissions   int     `json:"total_submissions"`
	PendingSubmissions int     `json:"pending_submissions"`
	TotalPaidOut       float64 `json:"total_paid_out"`
}

// ComputeStats derives the dashboard aggregate. TotalPaidOut sums the reward
// of every approved submission whose task still exists.
func (s *Store) ComputeStats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rewards := make(map[string]float64, len(s.tasks))
	for _, t := range s.tasks {
		rewards[t.ID] = t.Reward
	}

	st := Stats{
		TotalUsers:       len(s.users),
		TotalTasks:       len(s.tasks),
		TotalSubmissions: len(s.submissions),
	}
	for _, sub := range s.submissions {
		switch sub.Status {
		case models.SubmissionPending:
			st.PendingSubmissions++
		case models.SubmissionApproved:
			st.TotalPaidOut += rewards[sub.TaskID]
		}
	}
	return st
}
