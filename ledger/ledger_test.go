package ledger

import (
	"testing"

	"taskbazaar/models"
)

const (
	walletA = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	walletB = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	adminID = "user-admin-01"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	seed, err := models.Seed("admin@example.com", "secret123")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return NewStore(seed)
}

func mustGetUser(t *testing.T, s *Store, id string) models.User {
	t.Helper()
	u, err := s.GetUser(id)
	if err != nil {
		t.Fatalf("GetUser(%s): %v", id, err)
	}
	return u
}
