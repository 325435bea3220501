package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bucketly/bucketly-backend/pkg/ctxutil"
)

// Logger returns middleware that writes one access log line per request.
// 5xx responses log at ERROR, 429 at WARN, everything else at INFO.
// The user and client IDs set by Auth and RateLimit further down the chain
// are picked up through ctxutil.RequestInfo.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			ctx, info := ctxutil.WithRequestInfo(r.Context())

			next.ServeHTTP(sw, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			}
			userID, ok := info.UserID()
			if !ok {
				userID, ok = ctxutil.UserIDFromCtx(ctx)
			}
			if ok {
				attrs = append(attrs, slog.String("user_id", userID.String()))
			}
			clientID := info.ClientID()
			if clientID == "" {
				clientID = ctxutil.ClientIDFromCtx(ctx)
			}
			if clientID != "" {
				attrs = append(attrs, slog.String("client_id", clientID))
			}

			logger.LogAttrs(ctx, levelFor(sw.status), "http.request", attrs...)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status == http.StatusTooManyRequests:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// statusWriter captures the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
