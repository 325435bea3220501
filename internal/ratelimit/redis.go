package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// fixedWindowScript increments the counter and starts the window on the
// first hit. A key that lost its TTL is re-armed so it cannot live forever.
// Returns {count, pttl_ms}.
var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
  ttl = tonumber(ARGV[1])
end
return {count, ttl}
`)

// RedisStore is a fixed-window limiter whose counters live in Redis, so every
// instance behind a load balancer shares them. Window boundaries follow the
// Redis key TTL; now is only used to express ResetAt.
type RedisStore struct {
	rdb    redis.Scripter
	cfg    Config
	prefix string
}

// NewRedisStore creates a RedisStore. Keys are "<prefix>:<cfg.Name>:<clientID>".
func NewRedisStore(rdb redis.Scripter, cfg Config, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, cfg: cfg, prefix: prefix}
}

// Check implements Limiter.
func (s *RedisStore) Check(ctx context.Context, clientID string, now time.Time) (Decision, error) {
	key := s.key(clientID)

	res, err := fixedWindowScript.Run(ctx, s.rdb, []string{key}, s.cfg.Window.Milliseconds()).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("ratelimit: redis check %s: %w", key, err)
	}
	if len(res) != 2 {
		return Decision{}, fmt.Errorf("ratelimit: redis check %s: unexpected reply %v", key, res)
	}

	count, ttl := res[0], res[1]
	resetAt := now.Add(time.Duration(ttl) * time.Millisecond)

	return decide(s.cfg, count, resetAt, now), nil
}

func (s *RedisStore) key(clientID string) string {
	return s.prefix + ":" + s.cfg.Name + ":" + clientID
}
