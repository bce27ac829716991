package ledger

import (
	"errors"
	"strings"
	"testing"

	"taskbazaar/models"
)

func TestRegisterUserNewAddress(t *testing.T) {
	s := newTestStore(t)
	addr := "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"

	u, err := s.RegisterUser(addr)
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if u.ID != addr || u.Role != models.RoleUser || u.Status != models.UserActive {
		t.Fatalf("registered user = %+v", u)
	}
	if u.Balance != 0 || u.DepositedBalance != 0 {
		t.Fatalf("new user has non-zero balances: %+v", u)
	}
}

func TestRegisterUserIsCaseInsensitive(t *testing.T) {
	s := newTestStore(t)

	u, err := s.RegisterUser(strings.ToLower(walletA))
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if u.ID != walletA {
		t.Fatalf("resolved id = %s, want existing %s", u.ID, walletA)
	}
	if u.Balance != 127.50 {
		t.Fatalf("returning user lost state: %+v", u)
	}
	if len(s.Users()) != 3 {
		t.Fatalf("reconnect created a duplicate user")
	}
}

func TestRegisterUserSuspendedRefused(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.SetUserStatus(adminID, walletB, models.UserSuspended); err != nil {
		t.Fatalf("suspend: %v", err)
	}
	if _, err := s.RegisterUser(walletB); !errors.Is(err, ErrSuspended) {
		t.Fatalf("err = %v, want ErrSuspended", err)
	}
}

func TestFindAdminByEmail(t *testing.T) {
	s := newTestStore(t)

	admin, err := s.FindAdminByEmail("ADMIN@Example.COM")
	if err != nil {
		t.Fatalf("FindAdminByEmail: %v", err)
	}
	if admin.ID != adminID || admin.Role != models.RoleAdmin {
		t.Fatalf("admin = %+v", admin)
	}
	if _, err := s.FindAdminByEmail("nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown email err = %v", err)
	}
}

func TestSetUserStatus(t *testing.T) {
	s := newTestStore(t)

	u, err := s.SetUserStatus(adminID, walletA, models.UserSuspended)
	if err != nil {
		t.Fatalf("SetUserStatus: %v", err)
	}
	if u.Status != models.UserSuspended {
		t.Fatalf("status = %s", u.Status)
	}

	// Suspended users are locked out of every mutation.
	if _, err := s.SubmitProof(walletA, "task-010", models.Proof{Kind: models.ProofText, Text: "hi"}); !errors.Is(err, ErrSuspended) {
		t.Fatalf("suspended submit err = %v", err)
	}
	if _, err := s.BeginDeposit(walletA, 10); !errors.Is(err, ErrSuspended) {
		t.Fatalf("suspended deposit err = %v", err)
	}

	// And can be reinstated.
	if _, err := s.SetUserStatus(adminID, walletA, models.UserActive); err != nil {
		t.Fatalf("reinstate: %v", err)
	}
	if _, err := s.BeginDeposit(walletA, 10); err != nil {
		t.Fatalf("deposit after reinstate: %v", err)
	}
}

func TestSetUserStatusGuards(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.SetUserStatus(walletA, walletB, models.UserSuspended); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("non-admin err = %v", err)
	}
	if _, err := s.SetUserStatus(adminID, walletB, "banned"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("bad status err = %v", err)
	}
	if _, err := s.SetUserStatus(adminID, "0xdead", models.UserSuspended); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown user err = %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	s := newTestStore(t)
	if err := s.DeleteUser(adminID, walletB); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if _, err := s.GetUser(walletB); !errors.Is(err, ErrNotFound) {
		t.Fatalf("user still present")
	}
	if err := s.DeleteUser(adminID, adminID); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("self delete err = %v, want ErrPermissionDenied", err)
	}
	if err := s.DeleteUser(walletA, adminID); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("non-admin delete err = %v", err)
	}
}
