package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/bucketly/bucketly-backend/internal/adapter/postgres"
	badgerepo "github.com/bucketly/bucketly-backend/internal/adapter/postgres/badge"
	listrepo "github.com/bucketly/bucketly-backend/internal/adapter/postgres/bucketlist"
	userrepo "github.com/bucketly/bucketly-backend/internal/adapter/postgres/user"
	"github.com/bucketly/bucketly-backend/internal/auth"
	"github.com/bucketly/bucketly-backend/internal/config"
	"github.com/bucketly/bucketly-backend/internal/ratelimit"
	"github.com/bucketly/bucketly-backend/internal/service/badge"
	"github.com/bucketly/bucketly-backend/internal/service/bucketlist"
	usersvc "github.com/bucketly/bucketly-backend/internal/service/user"
	"github.com/bucketly/bucketly-backend/internal/transport/middleware"
	"github.com/bucketly/bucketly-backend/internal/transport/rest"
)

// handlers groups the REST handlers the router dispatches to.
type handlers struct {
	health *rest.HealthHandler
	badges *rest.BadgeHandler
	lists  *rest.BucketListHandler
	users  *rest.UserHandler
}

// newServer builds repositories, services and handlers on top of pool and
// returns the fully wrapped HTTP handler. rdb may be nil.
func newServer(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, rdb *redis.Client) http.Handler {
	// Repositories.
	badgeRepo := badgerepo.New(pool)
	userRepo := userrepo.New(pool)
	listRepo := listrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	// Services.
	badgeService := badge.NewService(logger, userRepo, badgeRepo, cfg.Badges.CatalogTTL)
	listService := bucketlist.NewService(logger, listRepo, userRepo, badgeService, txm, cfg.Badges.AwardTimeout)
	userService := usersvc.NewService(logger, userRepo)

	// Handlers.
	checks := map[string]rest.Pinger{"database": pool}
	if rdb != nil {
		checks["redis"] = rest.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	}
	h := handlers{
		health: rest.NewHealthHandler(BuildVersion(), checks),
		badges: rest.NewBadgeHandler(badgeService, logger),
		lists:  rest.NewBucketListHandler(listService, logger),
		users:  rest.NewUserHandler(userService, logger),
	}

	return newHandler(cfg, logger, rdb, h)
}

// newHandler wraps the router in the middleware chain. Logger sits outside
// RateLimit and Auth so the access line carries the client and user IDs they
// resolve.
func newHandler(cfg *config.Config, logger *slog.Logger, rdb *redis.Client, h handlers) http.Handler {
	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimitMiddleware(cfg.RateLimit, rdb, logger),
		middleware.Auth(verifier),
	)(newRouter(h))
}

// newRouter registers every route. Reads are public; anything that acts on
// behalf of the caller requires a bearer token.
func newRouter(h handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.health.Live)
	mux.HandleFunc("GET /ready", h.health.Ready)
	mux.HandleFunc("GET /health", h.health.Health)

	mux.HandleFunc("GET /api/badges", h.badges.Catalog)
	mux.HandleFunc("GET /api/users/{id}", h.users.Get)
	mux.HandleFunc("GET /api/users/{id}/badges", h.badges.UserProgress)
	mux.HandleFunc("GET /api/leaderboard", h.lists.Leaderboard)

	user := func(fn http.HandlerFunc) http.Handler { return middleware.RequireUser(fn) }
	mux.Handle("GET /api/me", user(h.users.Me))
	mux.Handle("PUT /api/me", user(h.users.SyncMe))
	mux.Handle("GET /api/me/badges", user(h.badges.MyProgress))
	mux.Handle("POST /api/me/badges/check", user(h.badges.Check))
	mux.Handle("POST /api/lists", user(h.lists.CreateList))
	mux.Handle("POST /api/lists/{id}/items", user(h.lists.AddItem))
	mux.Handle("POST /api/items/{id}/toggle", user(h.lists.ToggleItem))
	mux.Handle("POST /api/lists/{id}/follow", user(h.lists.Follow))
	mux.Handle("DELETE /api/lists/{id}/follow", user(h.lists.Unfollow))

	return mux
}

// rateLimitMiddleware returns nil when limiting is disabled.
func rateLimitMiddleware(cfg config.RateLimitConfig, rdb *redis.Client, logger *slog.Logger) middleware.Middleware {
	if !cfg.Enabled {
		return nil
	}
	strict, moderate := newLimiters(cfg, rdb)
	return middleware.RateLimit(middleware.RateLimitPolicy{
		HealthPath:     cfg.HealthPath,
		StrictPrefixes: cfg.StrictPrefixes,
		Strict:         strict,
		Default:        moderate,
	}, logger)
}

// newLimiters builds the strict and moderate limiters on the configured
// backend. A nil rdb falls back to in-process counters.
func newLimiters(cfg config.RateLimitConfig, rdb *redis.Client) (strict, moderate ratelimit.Limiter) {
	strictCfg := ratelimit.Config{Name: ratelimit.Strict.Name, Window: cfg.StrictWindow, MaxRequests: cfg.StrictMax}
	moderateCfg := ratelimit.Config{Name: ratelimit.Moderate.Name, Window: cfg.ModerateWindow, MaxRequests: cfg.ModerateMax}

	if cfg.Backend == "redis" && rdb != nil {
		return ratelimit.NewRedisStore(rdb, strictCfg, cfg.KeyPrefix),
			ratelimit.NewRedisStore(rdb, moderateCfg, cfg.KeyPrefix)
	}
	return ratelimit.NewMemoryStore(strictCfg), ratelimit.NewMemoryStore(moderateCfg)
}
