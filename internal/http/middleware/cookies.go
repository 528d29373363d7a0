package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieConfig describes the session cookie contract: http-only,
// SameSite=Lax, path "/", secure in production.
type CookieConfig struct {
	Name   string
	MaxAge int // seconds
	Secure bool
}

// SetSessionCookie writes the session token to the client
func SetSessionCookie(c *gin.Context, cfg CookieConfig, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.Name, token, cfg.MaxAge, "/", "", cfg.Secure, true)
}

// ClearSessionCookie removes the session cookie from the client
func ClearSessionCookie(c *gin.Context, cfg CookieConfig) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.Name, "", -1, "/", "", cfg.Secure, true)
}
