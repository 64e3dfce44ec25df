package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.Storage.Driver == DriverPostgres && strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required for the postgres driver")
	}

	if c.Auth.Enabled() && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate_limit: rps and burst must be > 0")
	}

	if err := c.Progression.validate(); err != nil {
		return fmt.Errorf("progression: %w", err)
	}

	if err := c.Trainer.validate(); err != nil {
		return fmt.Errorf("trainer: %w", err)
	}

	if c.Generator.Delay < 0 {
		return fmt.Errorf("generator.delay must be >= 0 (got %s)", c.Generator.Delay)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	switch s.Driver {
	case DriverMemory, DriverSQLite, DriverPostgres, DriverRedis:
	default:
		return fmt.Errorf("unknown driver %q", s.Driver)
	}
	if strings.TrimSpace(s.KeyPrefix) == "" {
		return fmt.Errorf("key_prefix must not be empty")
	}
	if s.Driver == DriverSQLite && strings.TrimSpace(s.SQLitePath) == "" {
		return fmt.Errorf("sqlite_path is required for the sqlite driver")
	}
	if s.QuotaBytes < 0 {
		return fmt.Errorf("quota_bytes must be >= 0 (got %d)", s.QuotaBytes)
	}
	return nil
}

func (p *ProgressionConfig) validate() error {
	if p.XPPerLevel <= 0 {
		return fmt.Errorf("xp_per_level must be > 0 (got %d)", p.XPPerLevel)
	}
	if p.SeedXP < 0 || p.SeedStreak < 0 {
		return fmt.Errorf("seed_xp and seed_streak must be >= 0")
	}

	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", p.Timezone, err)
	}
	p.Location = loc

	return nil
}

func (t *TrainerConfig) validate() error {
	if t.Target <= 0 {
		return fmt.Errorf("target must be > 0 (got %d)", t.Target)
	}
	if t.BaselineAnswered < 0 || t.BaselineAnswered >= t.Target {
		return fmt.Errorf("baseline_answered must be within [0, %d) (got %d)", t.Target, t.BaselineAnswered)
	}
	if t.BaselinePoints < 0 {
		return fmt.Errorf("baseline_points must be >= 0 (got %d)", t.BaselinePoints)
	}
	return nil
}
