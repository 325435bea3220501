package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	if c.RateLimit.Backend == "redis" && strings.TrimSpace(c.Redis.Addr) == "" {
		return fmt.Errorf("redis.addr is required when rate_limit.backend is redis")
	}

	if err := c.Badges.validate(); err != nil {
		return fmt.Errorf("badges: %w", err)
	}

	return nil
}

func (b *BadgesConfig) validate() error {
	if b.AwardTimeout <= 0 {
		return fmt.Errorf("award_timeout must be > 0 (got %s)", b.AwardTimeout)
	}
	if b.SweepBatchSize <= 0 {
		return fmt.Errorf("sweep_batch_size must be > 0 (got %d)", b.SweepBatchSize)
	}
	if b.CatalogTTL < 0 {
		return fmt.Errorf("catalog_ttl must be >= 0 (got %s)", b.CatalogTTL)
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	switch r.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("backend must be memory or redis (got %q)", r.Backend)
	}
	if r.StrictWindow <= 0 || r.ModerateWindow <= 0 {
		return fmt.Errorf("windows must be > 0")
	}
	if r.StrictMax <= 0 {
		return fmt.Errorf("strict_max must be > 0 (got %d)", r.StrictMax)
	}
	if r.ModerateMax <= 0 {
		return fmt.Errorf("moderate_max must be > 0 (got %d)", r.ModerateMax)
	}
	if !strings.HasPrefix(r.HealthPath, "/") {
		return fmt.Errorf("health_path must start with / (got %q)", r.HealthPath)
	}

	r.StrictPrefixes = ParsePrefixes(r.StrictPrefixesRaw)
	return nil
}

// ParsePrefixes splits a comma-separated list of path prefixes, trimming
// blanks. An empty string returns a nil slice.
func ParsePrefixes(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	prefixes := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		prefixes = append(prefixes, p)
	}
	return prefixes
}
