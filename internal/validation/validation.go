// Package validation normalizes and checks the user-supplied fields the
// auth endpoints accept. Rules match the account portal's contract:
// email RFC-shape and at most 320 chars, name 2-256 chars with collapsed
// whitespace, password 8-128 chars with upper, lower and digit.
package validation

import (
	"net/mail"
	"strings"
	"unicode"
)

const (
	emailMaxLen    = 320
	nameMinLen     = 2
	nameMaxLen     = 256
	passwordMinLen = 8
	passwordMaxLen = 128
)

// Email lowercases and trims the address, then checks shape and length.
// The returned message is empty when the address is acceptable.
func Email(raw string) (string, string) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", "email is required"
	}
	if len(email) > emailMaxLen {
		return "", "email is too long"
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", "invalid email format"
	}
	return email, ""
}

// Name trims and collapses internal whitespace, then checks length
func Name(raw string) (string, string) {
	name := strings.Join(strings.Fields(raw), " ")
	if len(name) < nameMinLen {
		return "", "name must be at least 2 characters"
	}
	if len(name) > nameMaxLen {
		return "", "name is too long"
	}
	return name, ""
}

// Password checks length and character-class requirements
func Password(password string) string {
	if len(password) < passwordMinLen {
		return "password must be at least 8 characters"
	}
	if len(password) > passwordMaxLen {
		return "password is too long"
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return "password must contain at least one uppercase letter, one lowercase letter, and one number"
	}
	return ""
}
