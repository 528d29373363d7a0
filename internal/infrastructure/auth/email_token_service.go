package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Cheskazzzz/portal-master/domain"
)

// EmailTokenServiceImpl issues signed, short-lived tokens for email
// verification links, implementing domain.EmailTokenService
type EmailTokenServiceImpl struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
}

// NewEmailTokenService creates a new email token service
func NewEmailTokenService(secretKey, issuer string, ttl time.Duration) domain.EmailTokenService {
	return &EmailTokenServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       ttl,
	}
}

// Generate implements domain.EmailTokenService
func (s *EmailTokenServiceImpl) Generate(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Parse implements domain.EmailTokenService; it returns the user id the
// token was issued for
func (s *EmailTokenServiceImpl) Parse(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenInvalid
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())

	if err != nil || !token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", domain.ErrTokenInvalid
	}

	return claims.Subject, nil
}
