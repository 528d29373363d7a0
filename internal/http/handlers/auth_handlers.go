package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Cheskazzzz/portal-master/domain"
	"github.com/Cheskazzzz/portal-master/internal/http/middleware"
	"github.com/Cheskazzzz/portal-master/internal/validation"
)

// AuthHandlers handles registration, login and session HTTP requests
type AuthHandlers struct {
	authSvc    domain.AuthService
	sessionSvc domain.SessionService
	audit      domain.AuditService
	cookie     middleware.CookieConfig
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, sessionSvc domain.SessionService, audit domain.AuditService, cookie middleware.CookieConfig) *AuthHandlers {
	return &AuthHandlers{
		authSvc:    authSvc,
		sessionSvc: sessionSvc,
		audit:      audit,
		cookie:     cookie,
	}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest represents an authenticated password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// ForgotPasswordRequest starts the password reset flow
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordRequest completes the password reset flow
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

func userJSON(user *domain.User) gin.H {
	return gin.H{
		"id":     user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"roleId": user.RoleID,
	}
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	fields := map[string]string{}
	name, msg := validation.Name(req.Name)
	if msg != "" {
		fields["name"] = msg
	}
	email, msg := validation.Email(req.Email)
	if msg != "" {
		fields["email"] = msg
	}
	if msg := validation.Password(req.Password); msg != "" {
		fields["password"] = msg
	}
	if len(fields) > 0 {
		h.audit.Record(c.Request.Context(), domain.AuditEvent{
			Action:    domain.ActionCreateUser,
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			Details:   map[string]any{"reason": "validation_error", "fields": fields},
		})
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": fields})
		return
	}

	user, token, err := h.authSvc.Register(c.Request.Context(), domain.RegisterInput{
		Name:      name,
		Email:     email,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	middleware.SetSessionCookie(c, h.cookie, token)
	c.JSON(http.StatusOK, gin.H{"success": true, "user": userJSON(user)})
}

// Login handles user login. Unknown email and wrong password get the
// same generic message; only an inactive account is called out.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.audit.Record(c.Request.Context(), domain.AuditEvent{
			Action:    domain.ActionLoginFailed,
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			Details:   map[string]any{"reason": "validation_error"},
		})
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	email, msg := validation.Email(req.Email)
	if msg != "" {
		h.audit.Record(c.Request.Context(), domain.AuditEvent{
			Action:    domain.ActionLoginFailed,
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			Details:   map[string]any{"reason": "validation_error", "fields": map[string]string{"email": msg}},
		})
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": gin.H{"email": msg}})
		return
	}

	user, token, err := h.authSvc.Login(c.Request.Context(), domain.LoginInput{
		Email:     email,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		case errors.Is(err, domain.ErrUserInactive):
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is inactive"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	middleware.SetSessionCookie(c, h.cookie, token)
	c.JSON(http.StatusOK, gin.H{"success": true, "user": userJSON(user)})
}

// Logout revokes the session server-side and clears the cookie
func (h *AuthHandlers) Logout(c *gin.Context) {
	token, err := c.Cookie(h.cookie.Name)
	if err == nil && token != "" {
		if err := h.authSvc.Logout(c.Request.Context(), token, c.ClientIP(), c.Request.UserAgent()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}
	middleware.ClearSessionCookie(c, h.cookie)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Session probes the cookie and reports whether it identifies a live
// session
func (h *AuthHandlers) Session(c *gin.Context) {
	token, err := c.Cookie(h.cookie.Name)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"isAuth": false})
		return
	}

	info, err := h.sessionSvc.Validate(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"isAuth": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isAuth": true, "email": info.Email})
}

// ChangePassword handles an authenticated password change
func (h *AuthHandlers) ChangePassword(c *gin.Context) {
	info, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if msg := validation.Password(req.NewPassword); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": gin.H{"newPassword": msg}})
		return
	}

	err := h.authSvc.ChangePassword(c.Request.Context(), info.UserID, req.CurrentPassword, req.NewPassword, info.Token)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ForgotPassword starts the reset flow. The response does not reveal
// whether the email exists.
func (h *AuthHandlers) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	email, msg := validation.Email(req.Email)
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": gin.H{"email": msg}})
		return
	}

	if err := h.authSvc.RequestPasswordReset(c.Request.Context(), email, c.ClientIP(), c.Request.UserAgent()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ResetPassword completes the reset flow
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if msg := validation.Password(req.NewPassword); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": gin.H{"newPassword": msg}})
		return
	}

	if err := h.authSvc.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		if errors.Is(err, domain.ErrTokenInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// VerifyEmail confirms the address from a signed verification link
func (h *AuthHandlers) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": gin.H{"token": "token is required"}})
		return
	}

	if err := h.authSvc.VerifyEmail(c.Request.Context(), token); err != nil {
		if errors.Is(err, domain.ErrTokenInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
