package badge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bucketly/bucketly-backend/internal/domain"
)

// Report is a user's progress over the whole catalog.
type Report struct {
	Catalog  []domain.BadgeDefinition
	Progress map[string]domain.BadgeProgress
	Earned   []domain.EarnedBadge
}

// snapshot is everything one computation reads from the store.
type snapshot struct {
	stats   domain.UserStatistics
	catalog []domain.BadgeDefinition
	earned  []domain.EarnedBadge
}

// fetch loads statistics, catalog and earned badges concurrently. Any failure
// cancels the others and comes back as a *domain.FetchError.
func (s *Service) fetch(ctx context.Context, userID uuid.UUID) (snapshot, error) {
	var snap snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.stats.GetStatistics(gctx, userID)
		if err != nil {
			return &domain.FetchError{What: "statistics", Err: err}
		}
		snap.stats = stats
		return nil
	})
	g.Go(func() error {
		catalog, err := s.catalog.ListCatalog(gctx)
		if err != nil {
			return &domain.FetchError{What: "badge catalog", Err: err}
		}
		snap.catalog = catalog
		return nil
	})
	g.Go(func() error {
		earned, err := s.store.ListEarned(gctx, userID)
		if err != nil {
			return &domain.FetchError{What: "earned badges", Err: err}
		}
		snap.earned = earned
		return nil
	})

	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

// Progress computes the user's progress on every badge. Misconfigured badges
// are logged and reported at 0% rather than failing the call.
func (s *Service) Progress(ctx context.Context, userID uuid.UUID) (*Report, error) {
	snap, err := s.fetch(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("badge.Progress: %w", err)
	}

	progress, cfgErr := ComputeAllProgress(snap.stats, snap.catalog, earnedSet(snap.earned))
	if cfgErr != nil {
		s.log.WarnContext(ctx, "misconfigured badges", slog.String("error", cfgErr.Error()))
	}

	return &Report{
		Catalog:  snap.catalog,
		Progress: progress,
		Earned:   snap.earned,
	}, nil
}
