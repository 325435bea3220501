package bucketlist

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bucketly/bucketly-backend/internal/domain"
)

// FollowResult is the follow state after the call and the badges the caller
// unlocked.
type FollowResult struct {
	Following bool
	NewBadges []string
}

// FollowList makes the current user follow a public list owned by someone
// else. Following twice is a no-op. A new follow runs the badge check for the
// follower (reported) and for the list owner (logged only).
func (s *Service) FollowList(ctx context.Context, listID uuid.UUID) (*FollowResult, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.lists.GetList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("bucketlist.FollowList: %w", err)
	}
	if list.OwnerID == userID {
		return nil, domain.NewValidationError("list_id", "cannot follow your own list")
	}
	if !list.IsPublic {
		return nil, fmt.Errorf("bucketlist.FollowList: list %s: %w", listID, domain.ErrForbidden)
	}

	added, err := s.lists.Follow(ctx, userID, listID)
	if err != nil {
		return nil, fmt.Errorf("bucketlist.FollowList: %w", err)
	}
	if !added {
		return &FollowResult{Following: true, NewBadges: []string{}}, nil
	}

	newBadges := s.awardAfter(ctx, userID, "list_followed")
	if owner := s.awardAfter(ctx, list.OwnerID, "follower_gained"); len(owner) > 0 {
		s.log.InfoContext(ctx, "list owner unlocked badges",
			"owner_id", list.OwnerID.String(),
			"badge_ids", owner,
		)
	}

	return &FollowResult{Following: true, NewBadges: newBadges}, nil
}

// UnfollowList removes the current user's follow. Badges already earned
// stay earned.
func (s *Service) UnfollowList(ctx context.Context, listID uuid.UUID) (*FollowResult, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.lists.Unfollow(ctx, userID, listID); err != nil {
		return nil, fmt.Errorf("bucketlist.UnfollowList: %w", err)
	}
	return &FollowResult{Following: false, NewBadges: []string{}}, nil
}

// Leaderboard returns the top users by points. limit is clamped to
// [1, MaxLeaderboardLimit]; zero or negative selects the default.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	entries, err := s.users.Leaderboard(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("bucketlist.Leaderboard: %w", err)
	}
	return entries, nil
}
