package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("S3cretPass!")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "S3cretPass!" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword(hash, "S3cretPass!") {
		t.Error("correct password should verify")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Error("wrong password should not verify")
	}
}
