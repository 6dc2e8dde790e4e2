package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() = %v, want nil", err)
	}

	if err := ComparePassword(hash, "correct horse battery staple"); err != nil {
		t.Errorf("ComparePassword() with correct password = %v, want nil", err)
	}

	err = ComparePassword(hash, "wrong password")
	if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		t.Errorf("ComparePassword() with wrong password = %v, want mismatch", err)
	}
}

func TestHashPassword_EmptyPassword(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Fatal("HashPassword(\"\") = nil, want error")
	}
}

func TestComparePassword_MalformedHash(t *testing.T) {
	err := ComparePassword("not-a-bcrypt-hash", "anything")
	if err == nil {
		t.Fatal("ComparePassword() with malformed hash = nil, want error")
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		t.Error("malformed hash should not report as password mismatch")
	}
}
