package mocks

import (
	"errors"
	"strings"

	"github.com/Cheskazzzz/portal-master/domain"
)

// MockEncryptor implements domain.Encryptor interface for testing. The
// default behavior is a reversible marker, not real encryption.
type MockEncryptor struct {
	EncryptFunc func(plaintext string) (string, error)
	DecryptFunc func(blob string) (string, error)
}

// NewMockEncryptor creates a new MockEncryptor
func NewMockEncryptor() *MockEncryptor {
	return &MockEncryptor{}
}

// Encrypt seals a plaintext
func (m *MockEncryptor) Encrypt(plaintext string) (string, error) {
	if m.EncryptFunc != nil {
		return m.EncryptFunc(plaintext)
	}
	return "enc:" + plaintext, nil
}

// Decrypt opens a blob
func (m *MockEncryptor) Decrypt(blob string) (string, error) {
	if m.DecryptFunc != nil {
		return m.DecryptFunc(blob)
	}
	if plaintext, ok := strings.CutPrefix(blob, "enc:"); ok {
		return plaintext, nil
	}
	return "", errors.New("malformed blob")
}

// Compile-time interface compliance verification
var _ domain.Encryptor = (*MockEncryptor)(nil)
