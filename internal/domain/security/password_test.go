package security

import (
	"strings"
	"testing"
)

func TestGenerateTemporaryPassword_Shape(t *testing.T) {
	for i := 0; i < 50; i++ {
		pw, err := GenerateTemporaryPassword()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pw) != 10 {
			t.Fatalf("expected length 10, got %d (%q)", len(pw), pw)
		}
		if !strings.ContainsAny(pw, upperChars) {
			t.Errorf("password %q missing uppercase", pw)
		}
		if !strings.ContainsAny(pw, lowerChars) {
			t.Errorf("password %q missing lowercase", pw)
		}
		if !strings.ContainsAny(pw, digitChars) {
			t.Errorf("password %q missing digit", pw)
		}
		if !strings.ContainsAny(pw, symbolChars) {
			t.Errorf("password %q missing symbol", pw)
		}
		if strings.ContainsAny(pw, "0O1lI") {
			t.Errorf("password %q contains confusable character", pw)
		}
	}
}

func TestGenerateTemporaryPassword_NotConstant(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		pw, err := GenerateTemporaryPassword()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen[pw] = true
	}
	if len(seen) < 2 {
		t.Fatal("expected distinct passwords across generations")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Xk7#mQp2!a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "Xk7#mQp2!a" {
		t.Fatal("hash must not equal plaintext")
	}
	if !CheckPassword(hash, "Xk7#mQp2!a") {
		t.Fatal("expected correct password to verify")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Fatal("expected wrong password to fail")
	}
}
