package util

import (
	"bytes"
	"strings"
	"testing"
)

func TestHashSecretAndCheck(t *testing.T) {
	hashed, err := HashSecret("hunter2")
	if err != nil {
		t.Fatalf("HashSecret error = %v", err)
	}
	if !strings.Contains(hashed, "$") {
		t.Fatalf("hash %q missing salt separator", hashed)
	}
	if !CheckSecret("hunter2", hashed) {
		t.Error("correct secret rejected")
	}
	if CheckSecret("hunter3", hashed) {
		t.Error("wrong secret accepted")
	}

	// each call salts independently
	again, _ := HashSecret("hunter2")
	if again == hashed {
		t.Error("two hashes of the same secret should differ")
	}
}

func TestHashSecret_Empty(t *testing.T) {
	if _, err := HashSecret(""); err == nil {
		t.Error("empty secret should be rejected")
	}
}

func TestCheckSecret_Plaintext(t *testing.T) {
	// values without a "$" are compared directly
	if !CheckSecret("letmein", "letmein") {
		t.Error("matching plaintext rejected")
	}
	if CheckSecret("letmein", "other") {
		t.Error("mismatched plaintext accepted")
	}
	if CheckSecret("", "letmein") || CheckSecret("letmein", "") {
		t.Error("empty side should never match")
	}
}

func TestCheckSecret_MalformedStored(t *testing.T) {
	if CheckSecret("x", "not base64!$also not!") {
		t.Error("malformed stored value accepted")
	}
}

func TestRandomString(t *testing.T) {
	s, err := RandomString(32)
	if err != nil {
		t.Fatalf("RandomString error = %v", err)
	}
	if len(s) != 32 {
		t.Errorf("len = %d, want 32", len(s))
	}
	s2, _ := RandomString(32)
	if s == s2 {
		t.Error("two random strings should differ")
	}
	if _, err := RandomString(0); err == nil {
		t.Error("zero length should be rejected")
	}
}

func TestEncryptDecryptAES(t *testing.T) {
	plain := []byte(`{"created":"2024-03-01","entries":[]}`)

	enc, err := EncryptAES("backup-key", plain)
	if err != nil {
		t.Fatalf("EncryptAES error = %v", err)
	}
	if bytes.Contains(enc, plain) {
		t.Error("ciphertext contains the plaintext")
	}

	dec, err := DecryptAES("backup-key", enc)
	if err != nil {
		t.Fatalf("DecryptAES error = %v", err)
	}
	if !bytes.Equal(dec, plain) {
		t.Errorf("round trip = %q, want %q", dec, plain)
	}
}

func TestDecryptAES_WrongKey(t *testing.T) {
	enc, err := EncryptAES("key-a", []byte("payload"))
	if err != nil {
		t.Fatalf("EncryptAES error = %v", err)
	}
	if _, err := DecryptAES("key-b", enc); err == nil {
		t.Error("wrong key should fail to decrypt")
	}
}

func TestDecryptAES_Truncated(t *testing.T) {
	if _, err := DecryptAES("key", []byte{1, 2, 3}); err == nil {
		t.Error("data shorter than a nonce should fail")
	}
}
