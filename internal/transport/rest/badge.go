package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bucketly/bucketly-backend/internal/domain"
	"github.com/bucketly/bucketly-backend/internal/service/badge"
	"github.com/bucketly/bucketly-backend/pkg/ctxutil"
)

type badgeService interface {
	Catalog(ctx context.Context) ([]domain.BadgeDefinition, error)
	Progress(ctx context.Context, userID uuid.UUID) (*badge.Report, error)
	CheckAndAwardBadges(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// BadgeHandler serves the badge catalog and per-user progress.
type BadgeHandler struct {
	svc badgeService
	log *slog.Logger
}

// NewBadgeHandler creates a BadgeHandler.
func NewBadgeHandler(svc badgeService, logger *slog.Logger) *BadgeHandler {
	return &BadgeHandler{svc: svc, log: logger.With("handler", "badge")}
}

type badgeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Metric      string `json:"metric"`
	Threshold   int64  `json:"threshold"`
}

type progressResponse struct {
	Percentage   int   `json:"percentage"`
	IsEarned     bool  `json:"isEarned"`
	CurrentValue int64 `json:"currentValue"`
	Threshold    int64 `json:"threshold"`
}

type badgeProgressResponse struct {
	badgeResponse
	Progress progressResponse `json:"progress"`
	EarnedAt *time.Time       `json:"earnedAt,omitempty"`
}

type userBadgesResponse struct {
	UserID string                  `json:"userId"`
	Badges []badgeProgressResponse `json:"badges"`
	Earned []string                `json:"earned"`
}

type newBadgesResponse struct {
	NewBadges []string `json:"newBadges"`
}

// Catalog handles GET /api/badges.
func (h *BadgeHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.svc.Catalog(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]badgeResponse, len(catalog))
	for i, b := range catalog {
		out[i] = toBadgeResponse(b)
	}
	writeJSON(w, http.StatusOK, out)
}

// UserProgress handles GET /api/users/{id}/badges.
func (h *BadgeHandler) UserProgress(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeProgress(w, r, userID)
}

// MyProgress handles GET /api/me/badges.
func (h *BadgeHandler) MyProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		handleError(h.log, w, r, domain.ErrUnauthorized)
		return
	}
	h.writeProgress(w, r, userID)
}

// Check handles POST /api/me/badges/check. It awards anything the caller has
// completed but not yet been given.
func (h *BadgeHandler) Check(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		handleError(h.log, w, r, domain.ErrUnauthorized)
		return
	}

	awarded, err := h.svc.CheckAndAwardBadges(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newBadgesResponse{NewBadges: awarded})
}

func (h *BadgeHandler) writeProgress(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	report, err := h.svc.Progress(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserBadgesResponse(userID, report))
}

func toBadgeResponse(b domain.BadgeDefinition) badgeResponse {
	return badgeResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Icon:        b.Icon,
		Metric:      b.Metric.String(),
		Threshold:   b.Threshold,
	}
}

// toUserBadgesResponse lists badges in catalog order.
func toUserBadgesResponse(userID uuid.UUID, report *badge.Report) userBadgesResponse {
	earnedAt := make(map[string]time.Time, len(report.Earned))
	earned := make([]string, 0, len(report.Earned))
	for _, e := range report.Earned {
		earnedAt[e.BadgeID] = e.EarnedAt
		earned = append(earned, e.BadgeID)
	}

	badges := make([]badgeProgressResponse, 0, len(report.Catalog))
	for _, b := range report.Catalog {
		p := report.Progress[b.ID]
		item := badgeProgressResponse{
			badgeResponse: toBadgeResponse(b),
			Progress: progressResponse{
				Percentage:   p.Percentage,
				IsEarned:     p.IsEarned,
				CurrentValue: p.CurrentValue,
				Threshold:    p.Threshold,
			},
		}
		if at, ok := earnedAt[b.ID]; ok {
			item.EarnedAt = &at
		}
		badges = append(badges, item)
	}

	return userBadgesResponse{
		UserID: userID.String(),
		Badges: badges,
		Earned: earned,
	}
}
