package crypto

import (
	"encoding/base64"
	"testing"
)

func TestEncryptor_RoundTrip(t *testing.T) {
	enc := NewEncryptor("test-secret")

	tests := []struct {
		name      string
		plaintext string
	}{
		{"ordinary text", "user signed in from a new device"},
		{"empty string", ""},
		{"unicode", "senha alterada ✓"},
		{"binary-ish", "a\x00b\x00c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := enc.Encrypt(tt.plaintext)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got, err := enc.Decrypt(blob)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.plaintext {
				t.Errorf("round trip changed %q to %q", tt.plaintext, got)
			}
		})
	}
}

func TestEncryptor_BlobsAreUnique(t *testing.T) {
	enc := NewEncryptor("test-secret")

	b1, err := enc.Encrypt("same plaintext")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b2, err := enc.Encrypt("same plaintext")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b1 == b2 {
		t.Error("expected fresh salt and nonce per call")
	}
}

func TestEncryptor_BlobLayout(t *testing.T) {
	enc := NewEncryptor("test-secret")

	blob, err := enc.Encrypt("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		t.Fatalf("blob is not valid base64: %v", err)
	}
	if len(raw) != saltLength+nonceLength+tagLength+1 {
		t.Errorf("unexpected blob length %d", len(raw))
	}
}

func TestEncryptor_FailsClosed(t *testing.T) {
	enc := NewEncryptor("test-secret")

	blob, err := enc.Encrypt("protect me")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("tampered ciphertext", func(t *testing.T) {
		raw, _ := base64.StdEncoding.DecodeString(blob)
		raw[len(raw)-1] ^= 0xff
		if _, err := enc.Decrypt(base64.StdEncoding.EncodeToString(raw)); err == nil {
			t.Error("expected tampered blob to fail")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewEncryptor("other-secret")
		if _, err := other.Decrypt(blob); err == nil {
			t.Error("expected wrong secret to fail")
		}
	})

	t.Run("not base64", func(t *testing.T) {
		if _, err := enc.Decrypt("%%%not-base64%%%"); err == nil {
			t.Error("expected malformed encoding to fail")
		}
	})

	t.Run("truncated blob", func(t *testing.T) {
		short := base64.StdEncoding.EncodeToString(make([]byte, saltLength))
		if _, err := enc.Decrypt(short); err == nil {
			t.Error("expected truncated blob to fail")
		}
	})
}
