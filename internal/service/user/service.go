// Package user manages Bucketly profiles. Accounts live in the hosted auth
// platform; the first authenticated call syncs a profile row keyed by the
// token subject.
package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bucketly/bucketly-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetStatistics(ctx context.Context, userID uuid.UUID) (domain.UserStatistics, error)
	Upsert(ctx context.Context, u *domain.User) (*domain.User, error)
}

// Service implements profile operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	now   func() time.Time
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		now:   time.Now,
	}
}

// Profile is a user together with the counters their badges track.
type Profile struct {
	User       *domain.User
	Statistics domain.UserStatistics
}
