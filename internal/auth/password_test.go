package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashAndMatch(t *testing.T) {
	hash, err := HashPassword("hunter22", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("hash equals plaintext")
	}

	if !MatchesPassword("hunter22", hash) {
		t.Fatal("correct password rejected")
	}
	if MatchesPassword("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
	if MatchesPassword("hunter22", "not-a-hash") {
		t.Fatal("garbage hash accepted")
	}
}
