package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bucketly/bucketly-backend/internal/domain"
	"github.com/bucketly/bucketly-backend/internal/service/user"
)

type userService interface {
	GetProfile(ctx context.Context) (*user.Profile, error)
	GetUserProfile(ctx context.Context, userID uuid.UUID) (*user.Profile, error)
	SyncProfile(ctx context.Context, input user.SyncProfileInput) (*domain.User, error)
}

// UserHandler serves profile endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type syncProfileRequest struct {
	Username    string  `json:"username"`
	DisplayName string  `json:"displayName"`
	AvatarURL   *string `json:"avatarUrl"`
}

type userResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	AvatarURL   *string   `json:"avatarUrl,omitempty"`
	TotalPoints int64     `json:"totalPoints"`
	CreatedAt   time.Time `json:"createdAt"`
}

type statisticsResponse struct {
	TotalPoints    int64 `json:"totalPoints"`
	ItemsCompleted int64 `json:"itemsCompleted"`
	ListsCreated   int64 `json:"listsCreated"`
	ListsFollowed  int64 `json:"listsFollowed"`
	FollowersCount int64 `json:"followersCount"`
}

type profileResponse struct {
	User       userResponse       `json:"user"`
	Statistics statisticsResponse `json:"statistics"`
}

// Me handles GET /api/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}

// SyncMe handles PUT /api/me.
func (h *UserHandler) SyncMe(w http.ResponseWriter, r *http.Request) {
	var req syncProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	u, err := h.svc.SyncProfile(r.Context(), user.SyncProfileInput{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	profile, err := h.svc.GetUserProfile(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID.String(),
		Username:    u.Username,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		TotalPoints: u.TotalPoints,
		CreatedAt:   u.CreatedAt,
	}
}

func toProfileResponse(p *user.Profile) profileResponse {
	return profileResponse{
		User: toUserResponse(p.User),
		Statistics: statisticsResponse{
			TotalPoints:    p.Statistics.TotalPoints,
			ItemsCompleted: p.Statistics.ItemsCompleted,
			ListsCreated:   p.Statistics.ListsCreated,
			ListsFollowed:  p.Statistics.ListsFollowed,
			FollowersCount: p.Statistics.FollowersCount,
		},
	}
}
