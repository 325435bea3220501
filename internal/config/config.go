package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Redis     RedisConfig     `yaml:"redis"`
	Badges    BadgesConfig    `yaml:"badges"`
}

// SweepConfig is the configuration of the offline badge sweep.
type SweepConfig struct {
	Database DatabaseConfig `yaml:"database"`
	Badges   BadgesConfig   `yaml:"badges"`
	Log      LogConfig      `yaml:"log"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
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
}

// AuthConfig holds settings for validating bearer tokens issued by the
// hosted auth platform.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"bucketly"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds the request rate limiter settings.
// Backend "memory" keeps counters in-process; "redis" shares them across instances.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"             env-default:"true"`
	Backend           string        `yaml:"backend"             env:"RATE_LIMIT_BACKEND"             env-default:"memory"`
	HealthPath        string        `yaml:"health_path"         env:"RATE_LIMIT_HEALTH_PATH"         env-default:"/health"`
	StrictPrefixesRaw string        `yaml:"strict_prefixes"     env:"RATE_LIMIT_STRICT_PREFIXES"     env-default:"/auth,/api"`
	StrictWindow      time.Duration `yaml:"strict_window"       env:"RATE_LIMIT_STRICT_WINDOW"       env-default:"60s"`
	StrictMax         int           `yaml:"strict_max"          env:"RATE_LIMIT_STRICT_MAX"          env-default:"10"`
	ModerateWindow    time.Duration `yaml:"moderate_window"     env:"RATE_LIMIT_MODERATE_WINDOW"     env-default:"60s"`
	ModerateMax       int           `yaml:"moderate_max"        env:"RATE_LIMIT_MODERATE_MAX"        env-default:"30"`
	KeyPrefix         string        `yaml:"key_prefix"          env:"RATE_LIMIT_KEY_PREFIX"          env-default:"ratelimit"`

	// StrictPrefixes is parsed from StrictPrefixesRaw during validation.
	StrictPrefixes []string `yaml:"-" env:"-"`
}

// RedisConfig holds Redis connection settings. Only used by the redis
// rate-limit backend.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// BadgesConfig holds badge engine settings.
type BadgesConfig struct {
	// AwardTimeout bounds a single check-and-award pass triggered by a mutation.
	AwardTimeout time.Duration `yaml:"award_timeout" env:"BADGES_AWARD_TIMEOUT" env-default:"5s"`
	// SweepBatchSize is the page size used by the offline award sweep.
	SweepBatchSize int `yaml:"sweep_batch_size" env:"BADGES_SWEEP_BATCH_SIZE" env-default:"500"`
	// CatalogTTL caches the badge catalog in memory; 0 disables the cache.
	CatalogTTL time.Duration `yaml:"catalog_ttl" env:"BADGES_CATALOG_TTL" env-default:"5m"`
}
