package auth

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("demo123")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "demo123" {
		t.Fatal("hash equals plaintext")
	}
	if err := VerifyPassword(hash, "demo123"); err != nil {
		t.Fatalf("correct password rejected: %v", err)
	}
	if err := VerifyPassword(hash, "wrong-password"); err == nil {
		t.Fatal("wrong password accepted")
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("demo123")
	if err != nil {
		t.Fatal(err)
	}
	h2, err := HashPassword("demo123")
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 {
		t.Fatal("expected distinct hashes for same password")
	}
}
