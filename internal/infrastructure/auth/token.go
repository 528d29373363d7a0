package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// sessionTokenBytes gives 256 bits of entropy per token
const sessionTokenBytes = 32

// GenerateToken returns a URL-safe opaque token from a cryptographically
// secure random source
func GenerateToken() (string, error) {
	bytes := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
