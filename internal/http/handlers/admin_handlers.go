package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Cheskazzzz/portal-master/domain"
	"github.com/Cheskazzzz/portal-master/internal/http/middleware"
	"github.com/Cheskazzzz/portal-master/internal/validation"
)

// AdminHandlers handles the admin back office: user management and the
// audit log viewer
type AdminHandlers struct {
	userSvc domain.UserService
	audit   domain.AuditService
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(userSvc domain.UserService, audit domain.AuditService) *AdminHandlers {
	return &AdminHandlers{userSvc: userSvc, audit: audit}
}

// CreateUserRequest is an admin-created account
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	RoleID   int    `json:"roleId" binding:"required"`
}

// UpdateUserRequest mutates name, role or active flag; omitted fields
// are left untouched
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	RoleID   *int    `json:"roleId"`
	IsActive *bool   `json:"isActive"`
}

func adminUserJSON(user *domain.User) gin.H {
	return gin.H{
		"id":            user.ID,
		"name":          user.Name,
		"email":         user.Email,
		"roleId":        user.RoleID,
		"emailVerified": user.EmailVerified,
		"isActive":      user.IsActive,
		"lastLoginAt":   user.LastLoginAt,
		"createdAt":     user.CreatedAt,
	}
}

// ListUsers returns all accounts
func (h *AdminHandlers) ListUsers(c *gin.Context) {
	users, err := h.userSvc.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, adminUserJSON(&users[i]))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": out})
}

// CreateUser creates an account on behalf of an admin
func (h *AdminHandlers) CreateUser(c *gin.Context) {
	info, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req CreateUserRequest
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
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": fields})
		return
	}

	user, err := h.userSvc.CreateUser(c.Request.Context(), domain.AdminCreateUserInput{
		ActorID:   info.UserID,
		Name:      name,
		Email:     email,
		Password:  req.Password,
		RoleID:    req.RoleID,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoleNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "user": adminUserJSON(user)})
}

// UpdateUser patches an account
func (h *AdminHandlers) UpdateUser(c *gin.Context) {
	info, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if req.Name != nil {
		name, msg := validation.Name(*req.Name)
		if msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": gin.H{"name": msg}})
			return
		}
		req.Name = &name
	}

	user, err := h.userSvc.UpdateUser(c.Request.Context(), domain.AdminUpdateUserInput{
		ActorID:   info.UserID,
		UserID:    c.Param("id"),
		Name:      req.Name,
		RoleID:    req.RoleID,
		IsActive:  req.IsActive,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, domain.ErrRoleNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": adminUserJSON(user)})
}

// DeleteUser removes an account and all of its sessions
func (h *AdminHandlers) DeleteUser(c *gin.Context) {
	info, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.userSvc.DeleteUser(c.Request.Context(), info.UserID, c.Param("id"), c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logs queries the audit log. Reading the log is itself audited.
func (h *AdminHandlers) Logs(c *gin.Context) {
	info, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	filter := domain.AuditFilter{
		UserID:   c.Query("userId"),
		Action:   domain.AuditAction(c.Query("action")),
		Resource: c.Query("resource"),
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 1000 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": gin.H{"limit": "limit must be between 1 and 1000"}})
			return
		}
		filter.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": gin.H{"offset": "offset must be non-negative"}})
			return
		}
		filter.Offset = n
	}
	if filter.Action != "" && !filter.Action.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": gin.H{"action": "unknown action"}})
		return
	}

	records, err := h.audit.Query(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.audit.Record(c.Request.Context(), domain.AuditEvent{
		ActorID:   info.UserID,
		Action:    domain.ActionDataAccess,
		Resource:  "audit_logs",
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Details:   map[string]any{"filter": gin.H{"userId": filter.UserID, "action": filter.Action, "resource": filter.Resource}, "returned": len(records)},
	})

	out := make([]gin.H, 0, len(records))
	for _, r := range records {
		item := gin.H{
			"id":         r.ID,
			"userId":     r.UserID,
			"action":     r.Action,
			"resource":   r.Resource,
			"resourceId": r.ResourceID,
			"ipAddress":  r.IPAddress,
			"userAgent":  r.UserAgent,
			"details":    r.Details,
			"createdAt":  r.CreatedAt,
		}
		if r.Decrypted {
			item["sensitive"] = r.Sensitive
		}
		out = append(out, item)
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "logs": out})
}
