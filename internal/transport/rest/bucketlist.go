package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bucketly/bucketly-backend/internal/domain"
	"github.com/bucketly/bucketly-backend/internal/service/bucketlist"
)

type bucketListService interface {
	CreateList(ctx context.Context, input bucketlist.CreateListInput) (*bucketlist.CreateListResult, error)
	AddItem(ctx context.Context, listID uuid.UUID, input bucketlist.AddItemInput) (*domain.ListItem, error)
	ToggleItem(ctx context.Context, itemID uuid.UUID) (*bucketlist.ToggleItemResult, error)
	FollowList(ctx context.Context, listID uuid.UUID) (*bucketlist.FollowResult, error)
	UnfollowList(ctx context.Context, listID uuid.UUID) (*bucketlist.FollowResult, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

// BucketListHandler serves list, item, follow and leaderboard endpoints.
type BucketListHandler struct {
	svc bucketListService
	log *slog.Logger
}

// NewBucketListHandler creates a BucketListHandler.
func NewBucketListHandler(svc bucketListService, logger *slog.Logger) *BucketListHandler {
	return &BucketListHandler{svc: svc, log: logger.With("handler", "bucketlist")}
}

type createListRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"isPublic"`
}

type addItemRequest struct {
	Title  string `json:"title"`
	Points int    `json:"points"`
}

type listResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	IsPublic    bool      `json:"isPublic"`
	CreatedAt   time.Time `json:"createdAt"`
}

type itemResponse struct {
	ID          string     `json:"id"`
	ListID      string     `json:"listId"`
	Title       string     `json:"title"`
	Points      int        `json:"points"`
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type createListResponse struct {
	List      listResponse `json:"list"`
	NewBadges []string     `json:"newBadges"`
}

type toggleItemResponse struct {
	Item        itemResponse `json:"item"`
	TotalPoints int64        `json:"totalPoints"`
	NewBadges   []string     `json:"newBadges"`
}

type followResponse struct {
	Following bool     `json:"following"`
	NewBadges []string `json:"newBadges"`
}

type leaderboardEntryResponse struct {
	Rank        int     `json:"rank"`
	UserID      string  `json:"userId"`
	Username    string  `json:"username"`
	DisplayName string  `json:"displayName"`
	AvatarURL   *string `json:"avatarUrl,omitempty"`
	TotalPoints int64   `json:"totalPoints"`
	BadgeCount  int     `json:"badgeCount"`
}

// CreateList handles POST /api/lists.
func (h *BucketListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req createListRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.CreateList(r.Context(), bucketlist.CreateListInput{
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createListResponse{
		List:      toListResponse(res.List),
		NewBadges: res.NewBadges,
	})
}

// AddItem handles POST /api/lists/{id}/items.
func (h *BucketListHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	listID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req addItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	item, err := h.svc.AddItem(r.Context(), listID, bucketlist.AddItemInput{
		Title:  req.Title,
		Points: req.Points,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

// ToggleItem handles POST /api/items/{id}/toggle.
func (h *BucketListHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.ToggleItem(r.Context(), itemID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toggleItemResponse{
		Item:        toItemResponse(res.Item),
		TotalPoints: res.TotalPoints,
		NewBadges:   res.NewBadges,
	})
}

// Follow handles POST /api/lists/{id}/follow.
func (h *BucketListHandler) Follow(w http.ResponseWriter, r *http.Request) {
	h.follow(w, r, h.svc.FollowList)
}

// Unfollow handles DELETE /api/lists/{id}/follow.
func (h *BucketListHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	h.follow(w, r, h.svc.UnfollowList)
}

func (h *BucketListHandler) follow(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, uuid.UUID) (*bucketlist.FollowResult, error),
) {
	listID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := op(r.Context(), listID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, followResponse{Following: res.Following, NewBadges: res.NewBadges})
}

// Leaderboard handles GET /api/leaderboard?limit=N.
func (h *BucketListHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.svc.Leaderboard(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]leaderboardEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = leaderboardEntryResponse{
			Rank:        e.Rank,
			UserID:      e.UserID.String(),
			Username:    e.Username,
			DisplayName: e.DisplayName,
			AvatarURL:   e.AvatarURL,
			TotalPoints: e.TotalPoints,
			BadgeCount:  e.BadgeCount,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func toListResponse(l *domain.BucketList) listResponse {
	return listResponse{
		ID:          l.ID.String(),
		OwnerID:     l.OwnerID.String(),
		Title:       l.Title,
		Description: l.Description,
		IsPublic:    l.IsPublic,
		CreatedAt:   l.CreatedAt,
	}
}

func toItemResponse(i *domain.ListItem) itemResponse {
	return itemResponse{
		ID:          i.ID.String(),
		ListID:      i.ListID.String(),
		Title:       i.Title,
		Points:      i.Points,
		IsCompleted: i.IsCompleted,
		CompletedAt: i.CompletedAt,
	}
}
