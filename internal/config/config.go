package config

import (
	"strings"
	"time"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Questions QuestionsConfig `yaml:"questions"`
	Stripe    StripeConfig    `yaml:"stripe"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,Accept-Language"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// StatementTimeout bounds every query server side; zero leaves the server default.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"10s"`
	ApplicationName  string        `yaml:"application_name"  env:"DATABASE_APPLICATION_NAME"  env-default:"parentstories"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret"        env:"AUTH_JWT_SECRET"        env-required:"true"`
	JWTIssuer       string        `yaml:"jwt_issuer"        env:"AUTH_JWT_ISSUER"        env-default:"parentstories"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"  env:"AUTH_ACCESS_TOKEN_TTL"  env-default:"15m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"AUTH_REFRESH_TOKEN_TTL" env-default:"720h"`
	PasswordCost    int           `yaml:"password_cost"     env:"AUTH_PASSWORD_COST"     env-default:"12"`
}

// QuestionsConfig holds tier limits and text bounds for questions and answers.
type QuestionsConfig struct {
	FreeMaxQuestions    int    `yaml:"free_max_questions"     env:"QUESTIONS_FREE_MAX"            env-default:"25"`
	PremiumMaxQuestions int    `yaml:"premium_max_questions"  env:"QUESTIONS_PREMIUM_MAX"         env-default:"100"`
	FreeCatalogCount    int    `yaml:"free_catalog_count"     env:"QUESTIONS_FREE_CATALOG_COUNT"  env-default:"25"`
	CustomTextMaxLength int    `yaml:"custom_text_max_length" env:"QUESTIONS_CUSTOM_MAX_LENGTH"   env-default:"500"`
	AnswerMaxLength     int    `yaml:"answer_max_length"      env:"QUESTIONS_ANSWER_MAX_LENGTH"   env-default:"10000"`
	DefaultLocale       string `yaml:"default_locale"         env:"QUESTIONS_DEFAULT_LOCALE"      env-default:"en"`
	FreeCustomDisabled  bool   `yaml:"free_custom_disabled"   env:"QUESTIONS_FREE_CUSTOM_DISABLED"`
	FreeCatalogOnly     bool   `yaml:"free_catalog_only"      env:"QUESTIONS_FREE_CATALOG_ONLY"`
}

// TierPolicy returns the quota policy described by the config.
func (q QuestionsConfig) TierPolicy() domain.TierPolicy {
	return domain.TierPolicy{
		FreeMaxQuestions:    q.FreeMaxQuestions,
		PremiumMaxQuestions: q.PremiumMaxQuestions,
		FreeCustomDisabled:  q.FreeCustomDisabled,
		FreeCatalogOnly:     q.FreeCatalogOnly,
	}
}

// StripeConfig holds payment gateway settings. Billing is disabled when
// SecretKey is empty.
type StripeConfig struct {
	SecretKey     string `yaml:"secret_key"     env:"STRIPE_SECRET_KEY"`
	WebhookSecret string `yaml:"webhook_secret" env:"STRIPE_WEBHOOK_SECRET"`
	PriceID       string `yaml:"price_id"       env:"STRIPE_PRICE_ID"`
	AppURL        string `yaml:"app_url"        env:"STRIPE_APP_URL"        env-default:"http://localhost:3000"`
}

// Enabled reports whether billing is configured.
func (c StripeConfig) Enabled() bool {
	return c.SecretKey != ""
}

// StorageConfig holds S3-compatible object storage settings for profile
// photos. Uploads are disabled when Bucket is empty.
type StorageConfig struct {
	Endpoint      string `yaml:"endpoint"        env:"STORAGE_ENDPOINT"`
	Region        string `yaml:"region"          env:"STORAGE_REGION"          env-default:"us-east-1"`
	Bucket        string `yaml:"bucket"          env:"STORAGE_BUCKET"`
	AccessKey     string `yaml:"access_key"      env:"STORAGE_ACCESS_KEY"`
	SecretKey     string `yaml:"secret_key"      env:"STORAGE_SECRET_KEY"`
	PublicBaseURL string `yaml:"public_base_url" env:"STORAGE_PUBLIC_BASE_URL"`
	UsePathStyle  bool   `yaml:"use_path_style"  env:"STORAGE_USE_PATH_STYLE"  env-default:"false"`
	MaxPhotoBytes int64  `yaml:"max_photo_bytes" env:"STORAGE_MAX_PHOTO_BYTES" env-default:"5242880"`
}

// Enabled reports whether photo storage is configured.
func (c StorageConfig) Enabled() bool {
	return c.Bucket != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig bounds auth endpoint traffic per client IP. Zero
// auth_per_minute switches the limit off.
type RateLimitConfig struct {
	AuthPerMinute int `yaml:"auth_per_minute" env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"10"`
	AuthBurst     int `yaml:"auth_burst"      env:"RATE_LIMIT_AUTH_BURST"      env-default:"5"`
}

// AllowedOriginList splits AllowedOrigins on commas.
func (c CORSConfig) AllowedOriginList() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
