package badge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// CheckAndAwardBadges awards every badge the user now qualifies for but does
// not hold yet, and returns the IDs this call persisted, in catalog order.
//
// A fetch failure aborts before anything is written. An award that another
// caller already stored is skipped silently; any other write failure is
// logged, left out of the result, and the remaining badges are still tried.
// The result is never nil.
func (s *Service) CheckAndAwardBadges(ctx context.Context, userID uuid.UUID) ([]string, error) {
	snap, err := s.fetch(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("badge.CheckAndAwardBadges: %w", err)
	}

	already := earnedSet(snap.earned)
	progress, cfgErr := ComputeAllProgress(snap.stats, snap.catalog, already)
	if cfgErr != nil {
		s.log.WarnContext(ctx, "misconfigured badges excluded from awarding",
			slog.String("user_id", userID.String()),
			slog.String("error", cfgErr.Error()),
		)
	}

	awarded := make([]string, 0)
	for _, b := range snap.catalog {
		if _, ok := already[b.ID]; ok {
			continue
		}
		if !progress[b.ID].IsEarned {
			continue
		}

		inserted, err := s.store.Award(ctx, userID, b.ID)
		if err != nil {
			s.log.ErrorContext(ctx, "award badge",
				slog.String("user_id", userID.String()),
				slog.String("badge_id", b.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		if !inserted {
			s.log.DebugContext(ctx, "badge already awarded",
				slog.String("user_id", userID.String()),
				slog.String("badge_id", b.ID),
			)
			continue
		}
		awarded = append(awarded, b.ID)
	}

	if len(awarded) > 0 {
		s.log.InfoContext(ctx, "badges awarded",
			slog.String("user_id", userID.String()),
			slog.Any("badge_ids", awarded),
		)
	}
	return awarded, nil
}
