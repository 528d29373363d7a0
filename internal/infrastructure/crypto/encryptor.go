package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/scrypt"

	"github.com/Cheskazzzz/portal-master/domain"
)

// Blob layout: salt | nonce | tag | ciphertext, base64-encoded. The salt
// makes each blob self-describing: decryption needs only the shared secret.
const (
	saltLength  = 64
	nonceLength = 16
	tagLength   = 16
	keyLength   = 32

	// scrypt work parameters, fixed system-wide
	scryptN = 16384
	scryptR = 8
	scryptP = 1
)

// EncryptorImpl implements domain.Encryptor with AES-256-GCM and a
// per-call scrypt-derived key
type EncryptorImpl struct {
	secret []byte
}

// NewEncryptor creates an encryptor bound to the configured secret
func NewEncryptor(secret string) *EncryptorImpl {
	return &EncryptorImpl{secret: []byte(secret)}
}

func (e *EncryptorImpl) deriveKey(salt []byte) ([]byte, error) {
	return scrypt.Key(e.secret, salt, scryptN, scryptR, scryptP, keyLength)
}

func (e *EncryptorImpl) newGCM(salt []byte) (cipher.AEAD, error) {
	key, err := e.deriveKey(salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	return cipher.NewGCMWithNonceSize(block, nonceLength)
}

// Encrypt implements domain.Encryptor. Each call draws a fresh salt and
// nonce, so encrypting the same plaintext twice yields different blobs.
func (e *EncryptorImpl) Encrypt(plaintext string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLength)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	gcm, err := e.newGCM(salt)
	if err != nil {
		return "", err
	}

	// Seal appends the tag after the ciphertext; the blob layout wants
	// the tag first.
	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	ciphertext := sealed[:len(sealed)-tagLength]
	tag := sealed[len(sealed)-tagLength:]

	blob := make([]byte, 0, saltLength+nonceLength+tagLength+len(ciphertext))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = append(blob, tag...)
	blob = append(blob, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements domain.Encryptor. It fails closed: any truncated
// blob or authentication tag mismatch yields an error, never tampered
// plaintext.
func (e *EncryptorImpl) Decrypt(encoded string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", domain.ErrTokenInvalid
	}

	if len(blob) < saltLength+nonceLength+tagLength {
		return "", domain.ErrTokenInvalid
	}

	salt := blob[:saltLength]
	nonce := blob[saltLength : saltLength+nonceLength]
	tag := blob[saltLength+nonceLength : saltLength+nonceLength+tagLength]
	ciphertext := blob[saltLength+nonceLength+tagLength:]

	gcm, err := e.newGCM(salt)
	if err != nil {
		return "", err
	}

	sealed := make([]byte, 0, len(ciphertext)+tagLength)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("decryption failed: %w", err)
	}

	return string(plaintext), nil
}
