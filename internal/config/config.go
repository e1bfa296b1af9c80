package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Storage   StorageConfig   `yaml:"storage"`
	Redis     RedisConfig     `yaml:"redis"`
	Cache     CacheConfig     `yaml:"cache"`
	Activity  ActivityConfig  `yaml:"activity"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Idempotency-Key"`
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
	TrustProxy      bool          `yaml:"trust_proxy"      env:"SERVER_TRUST_PROXY"      env-default:"false"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token signing settings and the bootstrap super admin.
type AuthConfig struct {
	JWTSecret         string        `yaml:"jwt_secret"          env:"AUTH_JWT_SECRET"          env-required:"true"`
	JWTIssuer         string        `yaml:"jwt_issuer"          env:"AUTH_JWT_ISSUER"          env-default:"regional-site"`
	AccessTokenTTL    time.Duration `yaml:"access_token_ttl"    env:"AUTH_ACCESS_TOKEN_TTL"    env-default:"12h"`
	BootstrapUsername string        `yaml:"bootstrap_username"  env:"AUTH_BOOTSTRAP_USERNAME"`
	BootstrapPassword string        `yaml:"bootstrap_password"  env:"AUTH_BOOTSTRAP_PASSWORD"`
	BootstrapEmail    string        `yaml:"bootstrap_email"     env:"AUTH_BOOTSTRAP_EMAIL"`
	BcryptCost        int           `yaml:"bcrypt_cost"         env:"AUTH_BCRYPT_COST"         env-default:"12"`
}

// HasBootstrapAdmin reports whether a super admin should be ensured on startup.
func (c AuthConfig) HasBootstrapAdmin() bool {
	return c.BootstrapUsername != "" && c.BootstrapPassword != ""
}

// StorageConfig holds object storage settings.
type StorageConfig struct {
	Driver          string `yaml:"driver"            env:"STORAGE_DRIVER"            env-default:"r2"`
	AccountID       string `yaml:"account_id"        env:"STORAGE_ACCOUNT_ID"`
	Endpoint        string `yaml:"endpoint"          env:"STORAGE_ENDPOINT"`
	Bucket          string `yaml:"bucket"            env:"STORAGE_BUCKET"`
	AccessKeyID     string `yaml:"access_key_id"     env:"STORAGE_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"STORAGE_SECRET_ACCESS_KEY"`
	PublicBaseURL   string `yaml:"public_base_url"   env:"STORAGE_PUBLIC_BASE_URL"`
	MobilePrefix    string `yaml:"mobile_prefix"     env:"STORAGE_MOBILE_PREFIX"     env-default:"/cdn-cgi/image/width=768,quality=80"`
	MaxUploadBytes  int64  `yaml:"max_upload_bytes"  env:"STORAGE_MAX_UPLOAD_BYTES"  env-default:"10485760"`
}

// ResolvedEndpoint returns the S3 endpoint, deriving it from the account ID for R2.
func (s StorageConfig) ResolvedEndpoint() string {
	if s.Endpoint != "" {
		return s.Endpoint
	}
	if s.AccountID != "" {
		return fmt.Sprintf("https://%s.r2.cloudflarestorage.com", s.AccountID)
	}
	return ""
}

// RedisConfig holds Redis settings. An empty URL selects in-process fallbacks.
type RedisConfig struct {
	URL     string `yaml:"url"     env:"REDIS_URL"`
	Channel string `yaml:"channel" env:"REDIS_CHANNEL" env-default:"site:invalidations"`
	Prefix  string `yaml:"prefix"  env:"REDIS_PREFIX"  env-default:"site"`
}

// Enabled reports whether Redis is configured.
func (r RedisConfig) Enabled() bool { return r.URL != "" }

// CacheConfig holds public read cache settings.
type CacheConfig struct {
	TTL            time.Duration `yaml:"ttl"             env:"CACHE_TTL"             env-default:"5m"`
	IdempotencyTTL time.Duration `yaml:"idempotency_ttl" env:"CACHE_IDEMPOTENCY_TTL" env-default:"60s"`
	PublicMaxAge   int           `yaml:"public_max_age"  env:"CACHE_PUBLIC_MAX_AGE"  env-default:"60"`
}

// ActivityConfig holds activity logger settings.
type ActivityConfig struct {
	QueueSize    int           `yaml:"queue_size"    env:"ACTIVITY_QUEUE_SIZE"    env-default:"256"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"ACTIVITY_WRITE_TIMEOUT" env-default:"5s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds request rate limits.
type RateLimitConfig struct {
	LoginPerMinute  int           `yaml:"login_per_minute" env:"RATE_LIMIT_LOGIN_PER_MINUTE" env-default:"10"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}
