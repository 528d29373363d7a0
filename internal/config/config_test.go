package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testYAML = `
app:
  port: 8080
  gin_mode: release
  base_url: https://portal.example.com
database:
  dsn: host=localhost user=portal dbname=portal
redis:
  addr: localhost:6379
  db: 1
session:
  ttl: 168h
  cookie_name: portal_session
  cookie_secure: true
security:
  encryption_key: file-encryption-key
  jwt_secret: file-jwt-secret
  jwt_issuer: portal
  verify_ttl: 24h
  reset_ttl: 1h
smtp:
  host: smtp.example.com
  port: 587
  from: no-reply@example.com
admin:
  email: admin@example.com
  name: Administrator
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFrom(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, testYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.SessionTTL != 168*time.Hour {
		t.Errorf("expected session TTL 168h, got %v", cfg.SessionTTL)
	}
	if cfg.VerifyTTL != 24*time.Hour || cfg.ResetTTL != time.Hour {
		t.Errorf("unexpected token TTLs: %v / %v", cfg.VerifyTTL, cfg.ResetTTL)
	}
	if cfg.CookieName != "portal_session" || !cfg.CookieSecure {
		t.Errorf("unexpected cookie settings: %s secure=%v", cfg.CookieName, cfg.CookieSecure)
	}
	if cfg.EncryptionKey != "file-encryption-key" {
		t.Errorf("unexpected encryption key %q", cfg.EncryptionKey)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_DSN", "host=db user=other")
	t.Setenv("ENCRYPTION_KEY", "env-encryption-key")
	t.Setenv("JWT_SECRET", "env-jwt-secret")

	cfg, err := LoadFrom(writeConfig(t, testYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DSN != "host=db user=other" {
		t.Errorf("expected env DSN to win, got %q", cfg.DSN)
	}
	if cfg.EncryptionKey != "env-encryption-key" || cfg.JWTSecret != "env-jwt-secret" {
		t.Error("expected env secrets to win over the file")
	}
}

func TestLoadFrom_MissingSecrets(t *testing.T) {
	withoutKey := `
app:
  port: 8080
session:
  ttl: 1h
security:
  jwt_secret: s
  verify_ttl: 1h
  reset_ttl: 1h
`
	if _, err := LoadFrom(writeConfig(t, withoutKey)); err == nil {
		t.Fatal("expected an error for a missing encryption key")
	}
}

func TestLoadFrom_BadDuration(t *testing.T) {
	bad := `
app:
  port: 8080
session:
  ttl: one week
security:
  encryption_key: k
  jwt_secret: s
  verify_ttl: 1h
  reset_ttl: 1h
`
	if _, err := LoadFrom(writeConfig(t, bad)); err == nil {
		t.Fatal("expected an error for a malformed duration")
	}
}
