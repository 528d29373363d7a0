package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Cheskazzzz/portal-master/domain"
	"github.com/Cheskazzzz/portal-master/internal/infrastructure/auth"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	roleDir     domain.RoleDirectory
	sessionSvc  domain.SessionService
	passwordSvc domain.PasswordService
	resetTokens domain.TokenRepository
	emailTokens domain.EmailTokenService
	mailer      domain.Mailer
	audit       domain.AuditService
	baseURL     string
	resetTTL    time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	roleDir domain.RoleDirectory,
	sessionSvc domain.SessionService,
	passwordSvc domain.PasswordService,
	resetTokens domain.TokenRepository,
	emailTokens domain.EmailTokenService,
	mailer domain.Mailer,
	audit domain.AuditService,
	baseURL string,
	resetTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		roleDir:     roleDir,
		sessionSvc:  sessionSvc,
		passwordSvc: passwordSvc,
		resetTokens: resetTokens,
		emailTokens: emailTokens,
		mailer:      mailer,
		audit:       audit,
		baseURL:     baseURL,
		resetTTL:    resetTTL,
	}
}

// Register implements domain.AuthService: creates the account with the
// default USER role, opens a session, and kicks off the welcome and
// verification emails as non-blocking side effects.
func (s *AuthServiceImpl) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, string, error) {
	if err := s.roleDir.EnsureDefaultRoles(ctx); err != nil {
		return nil, "", err
	}

	roleID, err := s.roleDir.RoleID(ctx, domain.RoleUser)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve default role: %w", err)
	}

	passwordHash, err := s.passwordSvc.Hash(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:          input.Name,
		Email:         input.Email,
		PasswordHash:  passwordHash,
		RoleID:        roleID,
		EmailVerified: false,
		IsActive:      true,
	}

	// The unique index on email decides the race; no pre-check.
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			s.audit.Record(ctx, domain.AuditEvent{
				Action:    domain.ActionCreateUser,
				IPAddress: input.IPAddress,
				UserAgent: input.UserAgent,
				Details:   map[string]any{"reason": "email_already_exists", "email": input.Email},
			})
			return nil, "", domain.ErrEmailTaken
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.sessionSvc.Issue(ctx, user.ID, input.IPAddress, input.UserAgent)
	if err != nil {
		return nil, "", err
	}

	s.audit.Record(ctx, domain.AuditEvent{
		ActorID:    user.ID,
		Action:     domain.ActionCreateUser,
		Resource:   "user",
		ResourceID: user.ID,
		IPAddress:  input.IPAddress,
		UserAgent:  input.UserAgent,
		Details:    map[string]any{"email": user.Email, "roleId": user.RoleID},
	})

	go s.sendRegistrationEmails(context.WithoutCancel(ctx), user)

	return user, token, nil
}

func (s *AuthServiceImpl) sendRegistrationEmails(ctx context.Context, user *domain.User) {
	_ = s.mailer.SendWelcome(ctx, user.Email, user.Name)

	verifyToken, err := s.emailTokens.Generate(user.ID)
	if err != nil {
		return
	}
	verifyURL := s.baseURL + "/account/verify-email?token=" + verifyToken
	_ = s.mailer.SendVerification(ctx, user.Email, verifyURL)
}

// Login implements domain.AuthService. The caller gets the same generic
// error whether the email is unknown or the password wrong; only the
// audit trail distinguishes the reasons.
func (s *AuthServiceImpl) Login(ctx context.Context, input domain.LoginInput) (*domain.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		s.audit.Record(ctx, domain.AuditEvent{
			Action:    domain.ActionLoginFailed,
			IPAddress: input.IPAddress,
			UserAgent: input.UserAgent,
			Details:   map[string]any{"reason": "user_not_found", "email": input.Email},
		})
		return nil, "", domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		s.audit.Record(ctx, domain.AuditEvent{
			ActorID:   user.ID,
			Action:    domain.ActionLoginFailed,
			IPAddress: input.IPAddress,
			UserAgent: input.UserAgent,
			Details:   map[string]any{"reason": "account_inactive"},
		})
		return nil, "", domain.ErrUserInactive
	}

	if !s.passwordSvc.Verify(user.PasswordHash, input.Password) {
		s.audit.Record(ctx, domain.AuditEvent{
			ActorID:   user.ID,
			Action:    domain.ActionLoginFailed,
			IPAddress: input.IPAddress,
			UserAgent: input.UserAgent,
			Details:   map[string]any{"reason": "invalid_password"},
		})
		return nil, "", domain.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.userRepo.RecordLogin(ctx, user.ID, now); err != nil {
		return nil, "", fmt.Errorf("failed to record login: %w", err)
	}
	user.LastLoginAt = &now

	token, err := s.sessionSvc.Issue(ctx, user.ID, input.IPAddress, input.UserAgent)
	if err != nil {
		return nil, "", err
	}

	s.audit.Record(ctx, domain.AuditEvent{
		ActorID:   user.ID,
		Action:    domain.ActionLogin,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
	})

	return user, token, nil
}

// Logout implements domain.AuthService; idempotent, a dead token is not
// an error
func (s *AuthServiceImpl) Logout(ctx context.Context, token, ip, userAgent string) error {
	info, err := s.sessionSvc.Validate(ctx, token)
	if err == nil {
		s.audit.Record(ctx, domain.AuditEvent{
			ActorID:   info.UserID,
			Action:    domain.ActionLogout,
			IPAddress: ip,
			UserAgent: userAgent,
		})
	}
	return s.sessionSvc.Revoke(ctx, token)
}

// ChangePassword implements domain.AuthService: verify the current
// password, rotate the hash, and force re-login everywhere else
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, userID, current, next, keepToken string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !s.passwordSvc.Verify(user.PasswordHash, current) {
		return domain.ErrInvalidCredentials
	}

	passwordHash, err := s.passwordSvc.Hash(next)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.sessionSvc.RevokeOthers(ctx, userID, keepToken); err != nil {
		return fmt.Errorf("failed to revoke other sessions: %w", err)
	}

	s.audit.Record(ctx, domain.AuditEvent{
		ActorID:    userID,
		Action:     domain.ActionChangePassword,
		Resource:   "user",
		ResourceID: userID,
	})

	return nil
}

// RequestPasswordReset implements domain.AuthService. An unknown email
// succeeds silently so the endpoint cannot be used for enumeration.
func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, email, ip, userAgent string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil
	}

	token, err := auth.GenerateToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	if err := s.resetTokens.Set(ctx, token, user.ID, s.resetTTL); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	resetURL := s.baseURL + "/account/reset-password?token=" + token
	go func(ctx context.Context) {
		_ = s.mailer.SendPasswordReset(ctx, user.Email, resetURL)
	}(context.WithoutCancel(ctx))

	return nil
}

// ResetPassword implements domain.AuthService: consume the single-use
// token, rotate the hash, and revoke every session the user had
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, err := s.resetTokens.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenInvalid) {
			s.audit.Record(ctx, domain.AuditEvent{
				Action:   domain.ActionInvalidToken,
				Resource: "password_reset",
			})
		}
		return err
	}

	passwordHash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	_ = s.sessionSvc.RevokeAll(ctx, userID)
	_ = s.resetTokens.Delete(ctx, token)

	s.audit.Record(ctx, domain.AuditEvent{
		ActorID:    userID,
		Action:     domain.ActionChangePassword,
		Resource:   "user",
		ResourceID: userID,
		Details:    map[string]any{"reason": "password_reset"},
	})

	return nil
}

// VerifyEmail implements domain.AuthService
func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, token string) error {
	userID, err := s.emailTokens.Parse(token)
	if err != nil {
		s.audit.Record(ctx, domain.AuditEvent{
			Action:   domain.ActionInvalidToken,
			Resource: "email_verification",
		})
		return domain.ErrTokenInvalid
	}

	if err := s.userRepo.MarkVerified(ctx, userID); err != nil {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}

	s.audit.Record(ctx, domain.AuditEvent{
		ActorID:    userID,
		Action:     domain.ActionUpdateUser,
		Resource:   "user",
		ResourceID: userID,
		Details:    map[string]any{"emailVerified": true},
	})

	return nil
}
