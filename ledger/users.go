package ledger

import (
	"strings"
	"time"

	"taskbazaar/models"
)

// RegisterUser resolves a wallet address to a platform user, auto-registering
// unknown addresses as active workers with zero balances. Suspended addresses
// are refused.
func (s *Store) RegisterUser(address string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.userIndexByAddress(address); i >= 0 {
		if s.users[i].Status == models.UserSuspended {
			return models.User{}, ErrSuspended
		}
		return cloneUser(s.users[i]), nil
	}

	u := models.User{
		ID:               address,
		Role:             models.RoleUser,
		Status:           models.UserActive,
		CompletedTaskIDs: []string{},
		SubmittedTaskIDs: []string{},
		CreatedAt:        time.Now(),
	}
	s.users = append(s.users, cloneUser(u))
	return u, nil
}

// FindAdminByEmail looks up an admin account by email (case-insensitive).
func (s *Store) FindAdminByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Role == models.RoleAdmin && strings.EqualFold(s.users[i].Email, email) {
			return cloneUser(s.users[i]), nil
		}
	}
	return models.User{}, ErrNotFound
}

// SetUserStatus suspends or reactivates a user. Admin only.
func (s *Store) SetUserStatus(adminID, userID string, status models.UserStatus) (models.User, error) {
	if status != models.UserActive && status != models.UserSuspended {
		return models.User{}, ErrInvalidStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAdmin(adminID); err != nil {
		return models.User{}, err
	}
	i := s.userIndex(userID)
	if i < 0 {
		return models.User{}, ErrNotFound
	}
	u := cloneUser(s.users[i])
	u.Status = status
	s.users[i] = u
	return cloneUser(u), nil
}

// DeleteUser removes a user from the platform. Admin only; an admin may not
// delete itself.
func (s *Store) DeleteUser(adminID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAdmin(adminID); err != nil {
		return err
	}
	if adminID == userID {
		return ErrPermissionDenied
	}
	i := s.userIndex(userID)
	if i < 0 {
		return ErrNotFound
	}
	s.users = append(s.users[:i:i], s.users[i+1:]...)
	return nil
}
