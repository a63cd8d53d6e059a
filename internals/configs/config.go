package configs

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"schoolhub_backend/internals/constants"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

const devJWTSecret = "dev-secret-change-me"

// Config is built once at startup and handed to every component that needs it.
type Config struct {
	Port    string
	AppEnv  string
	AppName string

	DBDriver    string // "postgres" | "memory"
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	JWTSecret    string
	SessionTTL   time.Duration
	CookieSecure bool

	CORSOrigins      []string
	RateLimitEnabled bool
	// TrustedProxies may set X-Forwarded-For. Empty means the peer address is the client IP.
	TrustedProxies []string

	UploadDir   string
	SeedOnStart bool

	AdminEmail    string
	AdminPassword string

	App AppConfig
}

// AppConfig carries the non-secret UI defaults that used to live in browser storage.
type AppConfig struct {
	AppName         string `json:"app_name"`
	DefaultTheme    string `json:"default_theme"`
	DefaultLanguage string `json:"default_language"`

	ProtectedPrefixes []string `json:"protected_prefixes"`
	AuthPrefixes      []string `json:"auth_prefixes"`
}

var (
	Themes    = []string{"light", "dark"}
	Languages = []string{"en", "vi"}
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() *Config {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[INFO] .env file not found, using system environment")
		} else {
			log.Println("[INFO] .env file loaded")
		}
	} else {
		log.Println("[INFO] Running in Railway, using system environment")
	}
	return Load()
}

// Load reads the process environment through viper. It does not touch .env files.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("APP_NAME", "SchoolHub")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "schoolhub")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("SEED_ON_START", false)
	v.SetDefault("DEFAULT_THEME", "light")
	v.SetDefault("DEFAULT_LANGUAGE", "en")

	cfg := &Config{
		Port:    v.GetString("PORT"),
		AppEnv:  v.GetString("APP_ENV"),
		AppName: v.GetString("APP_NAME"),

		DBDriver:    strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseURL: v.GetString("DATABASE_URL"),
		DBHost:      v.GetString("DB_HOST"),
		DBPort:      v.GetString("DB_PORT"),
		DBUser:      v.GetString("DB_USER"),
		DBPassword:  v.GetString("DB_PASSWORD"),
		DBName:      v.GetString("DB_NAME"),
		DBSSLMode:   v.GetString("DB_SSLMODE"),

		JWTSecret:    strings.TrimSpace(v.GetString("JWT_SECRET")),
		SessionTTL:   v.GetDuration("SESSION_TTL"),
		CookieSecure: v.GetBool("COOKIE_SECURE"),

		CORSOrigins:      splitList(v.GetString("CORS_ORIGINS")),
		RateLimitEnabled: v.GetBool("RATE_LIMIT_ENABLED"),
		TrustedProxies:   splitList(v.GetString("TRUSTED_PROXIES")),

		UploadDir:   v.GetString("UPLOAD_DIR"),
		SeedOnStart: v.GetBool("SEED_ON_START"),

		AdminEmail:    v.GetString("ADMIN_EMAIL"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
	}
	cfg.App = AppConfig{
		AppName:         cfg.AppName,
		DefaultTheme:    v.GetString("DEFAULT_THEME"),
		DefaultLanguage: v.GetString("DEFAULT_LANGUAGE"),

		ProtectedPrefixes: constants.ProtectedPrefixes,
		AuthPrefixes:      constants.AuthPrefixes,
	}
	if !oneOf(cfg.App.DefaultTheme, Themes) {
		log.Printf("[WARN] DEFAULT_THEME %q is not supported, using %s", cfg.App.DefaultTheme, Themes[0])
		cfg.App.DefaultTheme = Themes[0]
	}
	if !oneOf(cfg.App.DefaultLanguage, Languages) {
		log.Printf("[WARN] DEFAULT_LANGUAGE %q is not supported, using %s", cfg.App.DefaultLanguage, Languages[0])
		cfg.App.DefaultLanguage = Languages[0]
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set")
		if !cfg.IsProduction() {
			cfg.JWTSecret = devJWTSecret
		}
	}
	return cfg
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production") || strings.EqualFold(c.AppEnv, "prod")
}

// DSN prefers DATABASE_URL and falls back to the discrete DB_* variables.
func (c *Config) DSN() string {
	if strings.TrimSpace(c.DatabaseURL) != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=schoolhub",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger(level gormLogger.LogLevel) gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	return &GormLogger{SlowThreshold: l.SlowThreshold, LogLevel: level}
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error:
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
