// Package bucketlist implements the list, item and follow operations. Every
// mutation that can move a badge metric runs the badge check once it has
// committed and reports what was unlocked.
package bucketlist

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bucketly/bucketly-backend/internal/domain"
	"github.com/bucketly/bucketly-backend/pkg/ctxutil"
)

type listRepo interface {
	CreateList(ctx context.Context, l *domain.BucketList) (*domain.BucketList, error)
	GetList(ctx context.Context, id uuid.UUID) (*domain.BucketList, error)
	CreateItem(ctx context.Context, item *domain.ListItem) (*domain.ListItem, error)
	GetItemForUpdate(ctx context.Context, id uuid.UUID) (*domain.ListItem, uuid.UUID, error)
	UpdateItemCompletion(ctx context.Context, item *domain.ListItem) error
	Follow(ctx context.Context, userID, listID uuid.UUID) (bool, error)
	Unfollow(ctx context.Context, userID, listID uuid.UUID) (bool, error)
}

type userRepo interface {
	AddPoints(ctx context.Context, userID uuid.UUID, delta int64) (int64, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

type badgeAwarder interface {
	CheckAndAwardBadges(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides bucket list operations.
type Service struct {
	lists        listRepo
	users        userRepo
	badges       badgeAwarder
	tx           txManager
	log          *slog.Logger
	awardTimeout time.Duration
	now          func() time.Time
}

// NewService creates a bucket list service. awardTimeout bounds the badge
// check that follows each triggering mutation.
func NewService(
	log *slog.Logger,
	lists listRepo,
	users userRepo,
	badges badgeAwarder,
	tx txManager,
	awardTimeout time.Duration,
) *Service {
	return &Service{
		lists:        lists,
		users:        users,
		badges:       badges,
		tx:           tx,
		log:          log.With("service", "bucketlist"),
		awardTimeout: awardTimeout,
		now:          time.Now,
	}
}

func currentUser(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// awardAfter runs the badge check for userID after a committed mutation. The
// mutation already succeeded, so a failed check is logged and yields no
// badges; the next check picks them up.
func (s *Service) awardAfter(ctx context.Context, userID uuid.UUID, trigger string) []string {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.awardTimeout)
	defer cancel()

	awarded, err := s.badges.CheckAndAwardBadges(ctx, userID)
	if err != nil {
		s.log.WarnContext(ctx, "badge check failed",
			slog.String("trigger", trigger),
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return []string{}
	}
	return awarded
}
