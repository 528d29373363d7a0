package domain

import "time"

// Default role names. Call sites compare role names through the role
// directory, never raw role IDs.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
	RoleGuest = "GUEST"
)

// User represents an account in the portal
type User struct {
	ID            string
	Name          string
	Email         string
	PasswordHash  string
	RoleID        int
	EmailVerified bool
	IsActive      bool
	LastLoginAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Role is a named permission bucket (ADMIN, USER, GUEST)
type Role struct {
	ID          int
	Name        string
	Description string
	CreatedAt   time.Time
}

// Session is a server-side login session owned by one user
type Session struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	IPAddress string
	UserAgent string
	CreatedAt time.Time
}

// Expired reports whether the session's absolute expiry has passed
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// SessionInfo is the result of validating a session token: the joined
// session and owner fields a request handler needs
type SessionInfo struct {
	UserID string
	RoleID int
	Email  string
	Name   string
	Token  string
}

// SessionUser is a session row joined with its owning user
type SessionUser struct {
	Session Session
	User    User
}

// AuditAction is the closed set of auditable event kinds
type AuditAction string

const (
	ActionLogin          AuditAction = "LOGIN"
	ActionLogout         AuditAction = "LOGOUT"
	ActionLoginFailed    AuditAction = "LOGIN_FAILED"
	ActionCreateUser     AuditAction = "CREATE_USER"
	ActionUpdateUser     AuditAction = "UPDATE_USER"
	ActionDeleteUser     AuditAction = "DELETE_USER"
	ActionChangeRole     AuditAction = "CHANGE_ROLE"
	ActionChangePassword AuditAction = "CHANGE_PASSWORD"
	ActionAccessDenied   AuditAction = "ACCESS_DENIED"
	ActionDataAccess     AuditAction = "DATA_ACCESS"
	ActionDataModify     AuditAction = "DATA_MODIFY"
	ActionEmailSent      AuditAction = "EMAIL_SENT"
	ActionSessionExpired AuditAction = "SESSION_EXPIRED"
	ActionInvalidToken   AuditAction = "INVALID_TOKEN"
)

// Valid reports whether the action belongs to the closed set
func (a AuditAction) Valid() bool {
	switch a {
	case ActionLogin, ActionLogout, ActionLoginFailed, ActionCreateUser,
		ActionUpdateUser, ActionDeleteUser, ActionChangeRole, ActionChangePassword,
		ActionAccessDenied, ActionDataAccess, ActionDataModify, ActionEmailSent,
		ActionSessionExpired, ActionInvalidToken:
		return true
	}
	return false
}

// AuditEvent is the input to the audit logger. Sensitive, when set, is
// encrypted before the entry is persisted.
type AuditEvent struct {
	ActorID    string // empty for pre-authentication events
	Action     AuditAction
	Resource   string
	ResourceID string
	IPAddress  string
	UserAgent  string
	Details    map[string]any
	Sensitive  string
}

// AuditEntry is a persisted, immutable audit fact
type AuditEntry struct {
	ID            string
	UserID        *string
	Action        AuditAction
	Resource      string
	ResourceID    string
	IPAddress     string
	UserAgent     string
	Details       string // JSON blob
	EncryptedData string
	CreatedAt     time.Time
}

// AuditRecord is an entry prepared for display: the sensitive blob is
// opportunistically decrypted, Decrypted reports whether that succeeded.
type AuditRecord struct {
	AuditEntry
	Sensitive string
	Decrypted bool
}

// AuditFilter narrows an audit log query. Zero values mean "no filter".
type AuditFilter struct {
	UserID   string
	Action   AuditAction
	Resource string
	Limit    int
	Offset   int
}

// Appointment is a customer booking owned by one user
type Appointment struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Date        time.Time
	Status      string
	Location    string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Appointment statuses
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)
