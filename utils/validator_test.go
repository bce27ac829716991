package utils

import (
	"strings"
	"testing"
)

type connectPayload struct {
	Address string `json:"address" validate:"required,wallet"`
}

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,pwdmin"`
}

func TestValidateWalletAddress(t *testing.T) {
	ok := connectPayload{Address: "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"}
	if err := ValidateStruct(&ok); err != nil {
		t.Fatalf("valid address rejected: %v", err)
	}

	for _, addr := range []string{
		"",
		"f39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		"0x1234",
		"0xZZZd6e51aad88F6F4ce6aB8827279cffFb92266",
	} {
		bad := connectPayload{Address: addr}
		if err := ValidateStruct(&bad); err == nil {
			t.Fatalf("address %q accepted", addr)
		}
	}
}

func TestValidateLoginPayload(t *testing.T) {
	ok := loginPayload{Email: "admin@example.com", Password: "secret123"}
	if err := ValidateStruct(&ok); err != nil {
		t.Fatalf("valid login rejected: %v", err)
	}
	if err := ValidateStruct(&loginPayload{Email: "not-an-email", Password: "secret123"}); err == nil {
		t.Fatalf("bad email accepted")
	}
	if err := ValidateStruct(&loginPayload{Email: "a@b.co", Password: "abc"}); err == nil {
		t.Fatalf("short password accepted")
	}
}

func TestGenerateOrderID(t *testing.T) {
	id1 := GenerateOrderID("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	id2 := GenerateOrderID("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	if id1 == id2 {
		t.Fatalf("order ids not unique: %s", id1)
	}
	if !strings.HasPrefix(id1, "TBZ-") {
		t.Fatalf("order id %q missing prefix", id1)
	}
	if !strings.HasSuffix(id1, "-b92266") && !strings.HasSuffix(id1, "-B92266") {
		t.Fatalf("order id %q missing wallet suffix", id1)
	}
}
