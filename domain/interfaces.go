package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	MarkVerified(ctx context.Context, userID string) error
	RecordLogin(ctx context.Context, userID string, at time.Time) error
	Delete(ctx context.Context, userID string) error
}

// RoleRepository defines role data access operations
type RoleRepository interface {
	// EnsureAll inserts the given roles, skipping any whose name already
	// exists. Safe under concurrent callers.
	EnsureAll(ctx context.Context, roles []Role) error
	FindByID(ctx context.Context, id int) (*Role, error)
	FindByName(ctx context.Context, name string) (*Role, error)
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	// FindWithUser returns the session joined with its owning user.
	FindWithUser(ctx context.Context, token string) (*SessionUser, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userID string) error
	DeleteOthersByUser(ctx context.Context, userID, keepToken string) error
	// DeleteExpired removes sessions whose expiry has passed and reports
	// how many rows went away.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// AuditLogRepository defines audit log persistence
type AuditLogRepository interface {
	Create(ctx context.Context, entry *AuditEntry) error
	Find(ctx context.Context, filter AuditFilter) ([]AuditEntry, error)
}

// AppointmentRepository defines appointment data access operations
type AppointmentRepository interface {
	Create(ctx context.Context, appt *Appointment) error
	ListByUser(ctx context.Context, userID string) ([]Appointment, error)
	FindByID(ctx context.Context, id string) (*Appointment, error)
	Delete(ctx context.Context, id string) error
}

// TokenRepository stores short-lived single-use tokens (password reset)
type TokenRepository interface {
	Set(ctx context.Context, token, userID string, ttl time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	// Verify is timing-safe and returns false for malformed hashes.
	Verify(hashedPassword, password string) bool
}

// SessionService is the session store: issues, validates and revokes
// opaque session tokens
type SessionService interface {
	Issue(ctx context.Context, userID, ip, userAgent string) (string, error)
	Validate(ctx context.Context, token string) (*SessionInfo, error)
	Revoke(ctx context.Context, token string) error
	RevokeAll(ctx context.Context, userID string) error
	RevokeOthers(ctx context.Context, userID, keepToken string) error
}

// RoleDirectory maps role identifiers to names and answers membership checks
type RoleDirectory interface {
	EnsureDefaultRoles(ctx context.Context) error
	RoleName(ctx context.Context, roleID int) (string, error)
	RoleID(ctx context.Context, name string) (int, error)
	HasAnyRole(ctx context.Context, userID string, names []string) (bool, error)
}

// AuditService records and queries security-relevant events
type AuditService interface {
	// Record never returns an error to the caller; failures are reported
	// to the operational log only.
	Record(ctx context.Context, event AuditEvent)
	Query(ctx context.Context, filter AuditFilter) ([]AuditRecord, error)
}

// Encryptor is authenticated symmetric encryption for sensitive audit payloads
type Encryptor interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(blob string) (string, error)
}

// Mailer sends transactional email. Sends are best-effort side effects.
type Mailer interface {
	SendWelcome(ctx context.Context, to, name string) error
	SendPasswordReset(ctx context.Context, to, resetURL string) error
	SendVerification(ctx context.Context, to, verifyURL string) error
}

// EmailTokenService issues and parses signed email-verification tokens
type EmailTokenService interface {
	Generate(userID string) (string, error)
	Parse(token string) (string, error)
}

// AuthService defines the portal's authentication use cases
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*User, string, error)
	Login(ctx context.Context, input LoginInput) (*User, string, error)
	Logout(ctx context.Context, token, ip, userAgent string) error
	ChangePassword(ctx context.Context, userID, current, next, keepToken string) error
	RequestPasswordReset(ctx context.Context, email, ip, userAgent string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	VerifyEmail(ctx context.Context, token string) error
}

// RegisterInput carries validated registration data plus request metadata
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

// LoginInput carries login credentials plus request metadata
type LoginInput struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

// UserService defines the admin user-management use cases
type UserService interface {
	ListUsers(ctx context.Context) ([]User, error)
	CreateUser(ctx context.Context, input AdminCreateUserInput) (*User, error)
	UpdateUser(ctx context.Context, input AdminUpdateUserInput) (*User, error)
	DeleteUser(ctx context.Context, actorID, userID, ip, userAgent string) error
}

// AdminCreateUserInput is an admin-created account
type AdminCreateUserInput struct {
	ActorID   string
	Name      string
	Email     string
	Password  string
	RoleID    int
	IPAddress string
	UserAgent string
}

// AdminUpdateUserInput mutates name, role or active flag; nil fields are
// left untouched
type AdminUpdateUserInput struct {
	ActorID   string
	UserID    string
	Name      *string
	RoleID    *int
	IsActive  *bool
	IPAddress string
	UserAgent string
}

// AppointmentService defines owner-scoped appointment use cases
type AppointmentService interface {
	ListForUser(ctx context.Context, userID string) ([]Appointment, error)
	Create(ctx context.Context, input CreateAppointmentInput) (*Appointment, error)
	Delete(ctx context.Context, userID, appointmentID, ip, userAgent string) error
}

// CreateAppointmentInput is a new booking request
type CreateAppointmentInput struct {
	UserID      string
	Title       string
	Description string
	Date        time.Time
	Location    string
	Notes       string
	IPAddress   string
	UserAgent   string
}
