// Package badge computes badge progress and awards badges whose thresholds a
// user has crossed.
package badge

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bucketly/bucketly-backend/internal/domain"
)

type statsReader interface {
	GetStatistics(ctx context.Context, userID uuid.UUID) (domain.UserStatistics, error)
}

type badgeStore interface {
	ListCatalog(ctx context.Context) ([]domain.BadgeDefinition, error)
	ListEarned(ctx context.Context, userID uuid.UUID) ([]domain.EarnedBadge, error)
	Award(ctx context.Context, userID uuid.UUID, badgeID string) (bool, error)
}

// Service is the badge progress engine.
type Service struct {
	stats   statsReader
	store   badgeStore
	catalog catalogSource
	log     *slog.Logger
}

// NewService creates a badge service. A positive catalogTTL caches the
// catalog in memory for that long; zero reads it from the store every time.
func NewService(log *slog.Logger, stats statsReader, store badgeStore, catalogTTL time.Duration) *Service {
	var catalog catalogSource = store
	if catalogTTL > 0 {
		catalog = newCatalogCache(store, catalogTTL)
	}
	return &Service{
		stats:   stats,
		store:   store,
		catalog: catalog,
		log:     log.With("service", "badge"),
	}
}

// Catalog returns every badge definition in display order.
func (s *Service) Catalog(ctx context.Context) ([]domain.BadgeDefinition, error) {
	catalog, err := s.catalog.ListCatalog(ctx)
	if err != nil {
		return nil, &domain.FetchError{What: "badge catalog", Err: err}
	}
	return catalog, nil
}

func earnedSet(earned []domain.EarnedBadge) map[string]struct{} {
	set := make(map[string]struct{}, len(earned))
	for _, e := range earned {
		set[e.BadgeID] = struct{}{}
	}
	return set
}
