package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/Cheskazzzz/portal-master/domain"
)

// bcryptCost is fixed system-wide. Raising it later keeps old hashes
// verifiable because the cost is embedded in each stored hash.
const bcryptCost = 12

// PasswordServiceImpl implements domain.PasswordService
type PasswordServiceImpl struct {
	cost int
}

// NewPasswordService creates a new password service
func NewPasswordService() domain.PasswordService {
	return &PasswordServiceImpl{cost: bcryptCost}
}

// Hash implements domain.PasswordService
func (p *PasswordServiceImpl) Hash(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Verify implements domain.PasswordService. A malformed stored hash is
// treated as "does not match", never as an error.
func (p *PasswordServiceImpl) Verify(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
