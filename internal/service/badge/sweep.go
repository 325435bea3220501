package badge

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type userPager interface {
	ListIDs(ctx context.Context, after uuid.UUID, limit int) ([]uuid.UUID, error)
}

// SweepResult summarises one pass over every user.
type SweepResult struct {
	Users   int
	Awarded int
	Failed  int
}

// Sweep runs CheckAndAwardBadges for every user, batchSize users at a time
// with at most workers checks in flight. It awards badges that no mutation
// triggered, such as badges added to the catalog after the user qualified.
// A failed user is logged and counted; only a paging error or a cancelled
// ctx stops the sweep.
func (s *Service) Sweep(ctx context.Context, users userPager, batchSize, workers int) (SweepResult, error) {
	if batchSize <= 0 {
		return SweepResult{}, fmt.Errorf("badge.Sweep: batch size must be > 0 (got %d)", batchSize)
	}
	if workers <= 0 {
		workers = 1
	}

	var (
		res    SweepResult
		mu     sync.Mutex
		cursor = uuid.Nil
	)

	for {
		ids, err := users.ListIDs(ctx, cursor, batchSize)
		if err != nil {
			return res, fmt.Errorf("badge.Sweep: list users after %s: %w", cursor, err)
		}
		if len(ids) == 0 {
			break
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for _, id := range ids {
			g.Go(func() error {
				awarded, err := s.CheckAndAwardBadges(gctx, id)

				mu.Lock()
				defer mu.Unlock()
				res.Users++
				if err != nil {
					res.Failed++
					s.log.WarnContext(gctx, "sweep: check failed",
						slog.String("user_id", id.String()),
						slog.String("error", err.Error()),
					)
					return nil
				}
				res.Awarded += len(awarded)
				return nil
			})
		}
		_ = g.Wait()

		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("badge.Sweep: %w", err)
		}

		cursor = ids[len(ids)-1]
		if len(ids) < batchSize {
			break
		}
	}

	s.log.InfoContext(ctx, "sweep finished",
		slog.Int("users", res.Users),
		slog.Int("awarded", res.Awarded),
		slog.Int("failed", res.Failed),
	)
	return res, nil
}
