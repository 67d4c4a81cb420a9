package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("pw1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "pw1" {
		t.Fatal("hash must not equal the password")
	}

	if !h.Verify("pw1", hash) {
		t.Fatal("expected password to verify")
	}
	if h.Verify("pw2", hash) {
		t.Fatal("expected wrong password to fail verification")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	if h.Verify("pw1", "not-a-bcrypt-hash") {
		t.Fatal("expected malformed hash to fail verification")
	}
	if h.Verify("pw1", "") {
		t.Fatal("expected empty hash to fail verification")
	}
}
