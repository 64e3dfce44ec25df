package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Storage     StorageConfig     `yaml:"storage"`
	Database    DatabaseConfig    `yaml:"database"`
	Redis       RedisConfig       `yaml:"redis"`
	Auth        AuthConfig        `yaml:"auth"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Progression ProgressionConfig `yaml:"progression"`
	Trainer     TrainerConfig     `yaml:"trainer"`
	Generator   GeneratorConfig   `yaml:"generator"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"0s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// StorageConfig selects the key-value backend holding the two state blobs.
type StorageConfig struct {
	Driver     string `yaml:"driver"      env:"STORAGE_DRIVER"      env-default:"sqlite"`
	KeyPrefix  string `yaml:"key_prefix"  env:"STORAGE_KEY_PREFIX"  env-default:"praxis"`
	SQLitePath string `yaml:"sqlite_path" env:"STORAGE_SQLITE_PATH" env-default:"./praxis.db"`
	// QuotaBytes caps the memory driver's total size; 0 means unlimited.
	QuotaBytes int `yaml:"quota_bytes" env:"STORAGE_QUOTA_BYTES" env-default:"0"`
}

// LibraryKey is the storage key of the library blob.
func (s StorageConfig) LibraryKey() string { return s.KeyPrefix + "_lib" }

// ProgressionKey is the storage key of the progression blob.
func (s StorageConfig) ProgressionKey() string { return s.KeyPrefix + "_progression" }

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"5"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr        string        `yaml:"addr"         env:"REDIS_ADDR"         env-default:"localhost:6379"`
	Password    string        `yaml:"password"     env:"REDIS_PASSWORD"`
	DB          int           `yaml:"db"           env:"REDIS_DB"           env-default:"0"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
}

// AuthConfig holds API token settings. With an empty secret the API is open.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"praxis"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"720h"`
}

// Enabled reports whether bearer tokens are required.
func (c AuthConfig) Enabled() bool { return c.JWTSecret != "" }

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" env:"RATE_LIMIT_ENABLED" env-default:"true"`
	RPS     float64 `yaml:"rps"     env:"RATE_LIMIT_RPS"     env-default:"20"`
	Burst   int     `yaml:"burst"   env:"RATE_LIMIT_BURST"   env-default:"40"`
}

// ProgressionConfig holds XP and streak parameters.
type ProgressionConfig struct {
	XPPerLevel int    `yaml:"xp_per_level" env:"PROGRESSION_XP_PER_LEVEL" env-default:"1000"`
	SeedXP     int    `yaml:"seed_xp"      env:"PROGRESSION_SEED_XP"      env-default:"2840"`
	SeedStreak int    `yaml:"seed_streak"  env:"PROGRESSION_SEED_STREAK"  env-default:"14"`
	Timezone   string `yaml:"timezone"     env:"PROGRESSION_TIMEZONE"     env-default:"UTC"`

	// Location is parsed from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// TrainerConfig holds the flashcard session baseline.
type TrainerConfig struct {
	BaselineAnswered int `yaml:"baseline_answered" env:"TRAINER_BASELINE_ANSWERED" env-default:"26"`
	Target           int `yaml:"target"            env:"TRAINER_TARGET"            env-default:"40"`
	BaselinePoints   int `yaml:"baseline_points"   env:"TRAINER_BASELINE_POINTS"   env-default:"50"`
}

// GeneratorConfig holds the simulated generation latency.
type GeneratorConfig struct {
	Delay time.Duration `yaml:"delay" env:"GENERATOR_DELAY" env-default:"2500ms"`
}
