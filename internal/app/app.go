package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Cheskazzzz/portal-master/domain"
	"github.com/Cheskazzzz/portal-master/internal/config"
	httpx "github.com/Cheskazzzz/portal-master/internal/http"
	"github.com/Cheskazzzz/portal-master/internal/http/handlers"
	"github.com/Cheskazzzz/portal-master/internal/http/middleware"
	"github.com/Cheskazzzz/portal-master/internal/infrastructure/auth"
	"github.com/Cheskazzzz/portal-master/internal/infrastructure/crypto"
	"github.com/Cheskazzzz/portal-master/internal/infrastructure/database"
	"github.com/Cheskazzzz/portal-master/internal/infrastructure/mail"
	"github.com/Cheskazzzz/portal-master/internal/infrastructure/repositories"
	"github.com/Cheskazzzz/portal-master/internal/services"
)

const sessionSweepInterval = time.Hour

func Run(cfg *config.Config) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}
	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	emailTokenSvc := auth.NewEmailTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.VerifyTTL)
	encryptor := crypto.NewEncryptor(cfg.EncryptionKey)

	// Repositories
	userRepo := repositories.NewUserRepository(gdb)
	roleRepo := repositories.NewRoleRepository(gdb)
	sessionRepo := repositories.NewSessionRepository(gdb)
	auditRepo := repositories.NewAuditLogRepository(gdb)
	apptRepo := repositories.NewAppointmentRepository(gdb)
	resetTokens := repositories.NewTokenRepository(rdb, "pwreset:")

	// Services
	auditSvc := services.NewAuditService(auditRepo, encryptor, logger)
	roleDir := services.NewRoleDirectory(roleRepo, userRepo)
	sessionSvc := services.NewSessionService(sessionRepo, cfg.SessionTTL)
	mailer := mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}, auditSvc, logger)
	authSvc := services.NewAuthService(userRepo, roleDir, sessionSvc, passwordSvc, resetTokens, emailTokenSvc, mailer, auditSvc, cfg.BaseURL, cfg.ResetTTL)
	userSvc := services.NewUserService(userRepo, roleDir, passwordSvc, sessionSvc, auditSvc)
	apptSvc := services.NewAppointmentService(apptRepo, auditSvc)

	ctx := context.Background()
	if err := roleDir.EnsureDefaultRoles(ctx); err != nil {
		return err
	}
	if err := seedAdmin(ctx, cfg, userRepo, roleDir, passwordSvc, logger); err != nil {
		return err
	}

	go sweepSessions(ctx, sessionRepo, auditSvc, logger)

	// Handlers and middleware
	cookie := middleware.CookieConfig{
		Name:   cfg.CookieName,
		MaxAge: int(cfg.SessionTTL.Seconds()),
		Secure: cfg.CookieSecure,
	}
	authH := handlers.NewAuthHandlers(authSvc, sessionSvc, auditSvc, cookie)
	adminH := handlers.NewAdminHandlers(userSvc, auditSvc)
	apptH := handlers.NewAppointmentHandlers(apptSvc)
	guard := middleware.NewAccessGuard(sessionSvc, roleDir, auditSvc, cookie)

	r := httpx.BuildRouter(authH, adminH, apptH, guard)

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, r)
}

// seedAdmin inserts the bootstrap admin account when configured and not
// already present. An existing account is left untouched.
func seedAdmin(ctx context.Context, cfg *config.Config, userRepo domain.UserRepository, roleDir domain.RoleDirectory, passwordSvc domain.PasswordService, logger *zap.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	_, err := userRepo.FindByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	roleID, err := roleDir.RoleID(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}
	hash, err := passwordSvc.Hash(cfg.AdminPassword)
	if err != nil {
		return err
	}

	name := cfg.AdminName
	if name == "" {
		name = "Administrator"
	}
	admin := &domain.User{
		Name:          name,
		Email:         cfg.AdminEmail,
		PasswordHash:  hash,
		RoleID:        roleID,
		EmailVerified: true,
		IsActive:      true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		// Lost a race with a concurrent replica; the account exists.
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil
		}
		return err
	}

	logger.Info("seeded admin account", zap.String("email", cfg.AdminEmail))
	return nil
}

// sweepSessions periodically removes expired sessions so the table does
// not grow without bound. Validation already rejects expired tokens, so
// the sweep is hygiene, not enforcement.
func sweepSessions(ctx context.Context, sessionRepo domain.SessionRepository, audit domain.AuditService, logger *zap.Logger) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for range ticker.C {
		n, err := sessionRepo.DeleteExpired(ctx, time.Now())
		if err != nil {
			logger.Error("session sweep failed", zap.Error(err))
			continue
		}
		if n > 0 {
			logger.Info("session sweep", zap.Int64("removed", n))
			audit.Record(ctx, domain.AuditEvent{
				Action:  domain.ActionSessionExpired,
				Details: map[string]any{"removed": n},
			})
		}
	}
}
