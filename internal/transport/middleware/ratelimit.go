package middleware

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bucketly/bucketly-backend/internal/ratelimit"
	"github.com/bucketly/bucketly-backend/pkg/ctxutil"
)

// UnknownClient is the shared bucket for requests that carry no client IP header.
const UnknownClient = "unknown"

// RateLimitPolicy routes a request to a limiter by path.
type RateLimitPolicy struct {
	// HealthPath is exempt from limiting (exact match).
	HealthPath string
	// StrictPrefixes select the Strict limiter; everything else uses Default.
	StrictPrefixes []string
	Strict         ratelimit.Limiter
	Default        ratelimit.Limiter
	// Now defaults to time.Now.
	Now func() time.Time
}

func (p RateLimitPolicy) limiterFor(path string) ratelimit.Limiter {
	if path == p.HealthPath {
		return nil
	}
	for _, prefix := range p.StrictPrefixes {
		if strings.HasPrefix(path, prefix) {
			return p.Strict
		}
	}
	return p.Default
}

type rateLimitBody struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	RetryAfter string `json:"retryAfter"`
}

// RateLimit returns middleware that gates requests through the policy's
// limiters. A denied request gets 429 with X-RateLimit-* headers and never
// reaches next. An allowed request passes through without extra headers.
// If the limiter itself fails (e.g. Redis is down) the request is admitted.
func RateLimit(policy RateLimitPolicy, logger *slog.Logger) Middleware {
	if policy.Now == nil {
		policy.Now = time.Now
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lim := policy.limiterFor(r.URL.Path)
			if lim == nil {
				next.ServeHTTP(w, r)
				return
			}

			clientID := ClientID(r)
			ctx := ctxutil.WithClientID(r.Context(), clientID)

			dec, err := lim.Check(ctx, clientID, policy.Now())
			if err != nil {
				logger.WarnContext(ctx, "rate limit check failed, admitting request",
					slog.String("client_id", clientID),
					slog.String("path", r.URL.Path),
					slog.String("error", err.Error()),
				)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if !dec.Allowed {
				retry := strconv.Itoa(dec.RetryAfter)
				h := w.Header()
				h.Set("Content-Type", "application/json")
				h.Set("X-RateLimit-Limit", strconv.Itoa(dec.Limit))
				h.Set("X-RateLimit-Remaining", "0")
				h.Set("X-RateLimit-Reset", dec.ResetAt.UTC().Format(time.RFC3339))
				h.Set("X-RateLimit-Retry-After", retry)
				h.Set("Retry-After", retry)
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(rateLimitBody{ //nolint:errcheck
					Error:      "Too Many Requests",
					Message:    fmt.Sprintf("Too many requests, please try again in %d seconds.", dec.RetryAfter),
					RetryAfter: retry,
				})

				logger.InfoContext(ctx, "rate limited",
					slog.String("client_id", clientID),
					slog.String("path", r.URL.Path),
					slog.Int("retry_after", dec.RetryAfter),
				)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientID derives the rate-limit bucket key from forwarding headers:
// X-Forwarded-For (first hop), X-Real-IP, CF-Connecting-IP, else UnknownClient.
func ClientID(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	if ip := strings.TrimSpace(r.Header.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}
	return UnknownClient
}
