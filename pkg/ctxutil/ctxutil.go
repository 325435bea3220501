// Package ctxutil carries request-scoped identifiers through context.Context.
package ctxutil

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	requestIDKey ctxKey = "request_id"
	clientIDKey  ctxKey = "client_id"
	infoKey      ctxKey = "request_info"
)

// RequestInfo collects identifiers resolved deeper in the middleware chain so
// that an outer middleware can read them after the handler returns. Inner
// middleware derive new requests, so their context values never travel back
// out; the shared pointer does.
type RequestInfo struct {
	mu       sync.Mutex
	userID   uuid.UUID
	clientID string
}

// WithRequestInfo installs an empty RequestInfo on the context.
func WithRequestInfo(ctx context.Context) (context.Context, *RequestInfo) {
	info := &RequestInfo{}
	return context.WithValue(ctx, infoKey, info), info
}

// RequestInfoFromCtx returns the RequestInfo installed on ctx, or nil.
func RequestInfoFromCtx(ctx context.Context) *RequestInfo {
	info, _ := ctx.Value(infoKey).(*RequestInfo)
	return info
}

// UserID returns the recorded user ID. Safe on a nil receiver.
func (i *RequestInfo) UserID() (uuid.UUID, bool) {
	if i == nil {
		return uuid.Nil, false
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.userID, i.userID != uuid.Nil
}

// ClientID returns the recorded client identifier. Safe on a nil receiver.
func (i *RequestInfo) ClientID() string {
	if i == nil {
		return ""
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.clientID
}

// WithUserID stores the authenticated user ID in the context and records it
// on the request's RequestInfo, if any.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	if info := RequestInfoFromCtx(ctx); info != nil {
		info.mu.Lock()
		info.userID = id
		info.mu.Unlock()
	}
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithClientID stores the rate-limit client identifier in the context and
// records it on the request's RequestInfo, if any.
func WithClientID(ctx context.Context, id string) context.Context {
	if info := RequestInfoFromCtx(ctx); info != nil {
		info.mu.Lock()
		info.clientID = id
		info.mu.Unlock()
	}
	return context.WithValue(ctx, clientIDKey, id)
}

// ClientIDFromCtx returns the client identifier, or "" if the request
// did not pass through the rate limiter.
func ClientIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(clientIDKey).(string)
	return id
}
