package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
	BaseURL string `yaml:"base_url"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type SessionConfig struct {
	TTL          string `yaml:"ttl"`
	CookieName   string `yaml:"cookie_name"`
	CookieSecure bool   `yaml:"cookie_secure"`
}

type SecurityConfig struct {
	EncryptionKey string `yaml:"encryption_key"`
	JWTSecret     string `yaml:"jwt_secret"`
	JWTIssuer     string `yaml:"jwt_issuer"`
	VerifyTTL     string `yaml:"verify_ttl"`
	ResetTTL      string `yaml:"reset_ttl"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type AdminConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Session  SessionConfig  `yaml:"session"`
	Security SecurityConfig `yaml:"security"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Admin    AdminConfig    `yaml:"admin"`
}

type Config struct {
	Port          string
	GinMode       string
	BaseURL       string
	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionTTL   time.Duration
	CookieName   string
	CookieSecure bool

	EncryptionKey string
	JWTSecret     string
	JWTIssuer     string
	VerifyTTL     time.Duration
	ResetTTL      time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	AdminEmail    string
	AdminPassword string
	AdminName     string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml and applies environment overrides for
// secrets that should not live in the file.
func Load() (*Config, error) {
	return LoadFrom(env("CONFIG_PATH", "config/config.yml"))
}

func LoadFrom(path string) (*Config, error) {
	file, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	sessionTTL, err := time.ParseDuration(file.Session.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	verifyTTL, err := time.ParseDuration(file.Security.VerifyTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid verify TTL: %w", err)
	}

	resetTTL, err := time.ParseDuration(file.Security.ResetTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid reset TTL: %w", err)
	}

	cfg := &Config{
		Port:          fmt.Sprintf("%d", file.App.Port),
		GinMode:       file.App.GinMode,
		BaseURL:       file.App.BaseURL,
		DSN:           env("DATABASE_DSN", file.Database.DSN),
		RedisAddr:     env("REDIS_ADDR", file.Redis.Addr),
		RedisPassword: env("REDIS_PASSWORD", file.Redis.Password),
		RedisDB:       file.Redis.DB,
		SessionTTL:    sessionTTL,
		CookieName:    file.Session.CookieName,
		CookieSecure:  file.Session.CookieSecure,
		EncryptionKey: env("ENCRYPTION_KEY", file.Security.EncryptionKey),
		JWTSecret:     env("JWT_SECRET", file.Security.JWTSecret),
		JWTIssuer:     file.Security.JWTIssuer,
		VerifyTTL:     verifyTTL,
		ResetTTL:      resetTTL,
		SMTPHost:      env("SMTP_HOST", file.SMTP.Host),
		SMTPPort:      file.SMTP.Port,
		SMTPUsername:  env("SMTP_USER", file.SMTP.Username),
		SMTPPassword:  env("SMTP_PASS", file.SMTP.Password),
		SMTPFrom:      env("SMTP_FROM", file.SMTP.From),
		AdminEmail:    env("ADMIN_EMAIL", file.Admin.Email),
		AdminPassword: env("ADMIN_PASSWORD", file.Admin.Password),
		AdminName:     file.Admin.Name,
	}

	if cfg.CookieName == "" {
		cfg.CookieName = "portal_session"
	}
	if cfg.EncryptionKey == "" {
		return nil, fmt.Errorf("encryption key is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
