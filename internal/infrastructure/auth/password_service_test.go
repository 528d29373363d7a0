package auth

import (
	"strings"
	"testing"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("correcthorse1A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected a bcrypt hash, got %q", hash)
	}
	if !strings.Contains(hash, "$12$") {
		t.Errorf("expected cost 12 embedded in hash, got %q", hash)
	}

	if !svc.Verify(hash, "correcthorse1A") {
		t.Error("expected the original password to verify")
	}
	if svc.Verify(hash, "wrongpassword1A") {
		t.Error("expected a wrong password to fail")
	}
}

func TestPasswordService_HashesAreSalted(t *testing.T) {
	svc := NewPasswordService()

	h1, err := svc.Hash("samepassword1A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h2, err := svc.Hash("samepassword1A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h1 == h2 {
		t.Error("expected two hashes of the same password to differ")
	}
}

func TestPasswordService_MalformedHash(t *testing.T) {
	svc := NewPasswordService()

	for _, hash := range []string{"", "not-a-hash", "$2b$garbage"} {
		if svc.Verify(hash, "anything1A") {
			t.Errorf("malformed hash %q must not verify", hash)
		}
	}
}

func TestGenerateToken(t *testing.T) {
	t1, err := GenerateToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 32 bytes in unpadded base64url is 43 characters.
	if len(t1) != 43 {
		t.Errorf("expected 43-character token, got %d", len(t1))
	}
	if strings.ContainsAny(t1, "+/=") {
		t.Errorf("token %q is not URL-safe", t1)
	}

	t2, err := GenerateToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if t1 == t2 {
		t.Error("expected distinct tokens")
	}
}
