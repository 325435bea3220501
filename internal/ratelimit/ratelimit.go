// Package ratelimit implements fixed-window request counting keyed by a
// client identifier.
//
// A Limiter is constructed explicitly per preset; there is no package-level
// state. MemoryStore keeps counters in the process and is lost on restart.
// RedisStore shares counters between instances.
package ratelimit

import (
	"context"
	"time"
)

// Config is a (window, maxRequests) pair.
type Config struct {
	Name        string
	Window      time.Duration
	MaxRequests int
}

// Named presets.
var (
	Strict   = Config{Name: "strict", Window: time.Minute, MaxRequests: 10}
	Moderate = Config{Name: "moderate", Window: time.Minute, MaxRequests: 30}
	Lenient  = Config{Name: "lenient", Window: time.Minute, MaxRequests: 100}
)

// Decision is the outcome of one Check.
type Decision struct {
	Allowed bool
	// Limit is the configured maximum for the window.
	Limit int
	// Remaining is max(0, Limit-count).
	Remaining int
	// ResetAt is when the current window ends.
	ResetAt time.Time
	// RetryAfter is the whole number of seconds until ResetAt. Set only on deny.
	RetryAfter int
}

// Limiter counts a request from clientID at now and decides whether to admit it.
type Limiter interface {
	Check(ctx context.Context, clientID string, now time.Time) (Decision, error)
}

// decide turns a post-increment count into a Decision.
func decide(cfg Config, count int64, resetAt, now time.Time) Decision {
	d := Decision{
		Limit:   cfg.MaxRequests,
		ResetAt: resetAt,
	}

	if count > int64(cfg.MaxRequests) {
		d.RetryAfter = retryAfterSeconds(resetAt, now)
		return d
	}

	d.Allowed = true
	d.Remaining = max(0, cfg.MaxRequests-int(count))
	return d
}

// retryAfterSeconds is ceil((resetAt-now)/1s), never less than 1 so that a
// denied client is always told to wait.
func retryAfterSeconds(resetAt, now time.Time) int {
	left := resetAt.Sub(now)
	secs := int((left + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}
