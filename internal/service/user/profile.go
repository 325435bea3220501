package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/bucketly/bucketly-backend/internal/domain"
	"github.com/bucketly/bucketly-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}
	return profile, nil
}

// GetUserProfile returns any user's public profile.
func (s *Service) GetUserProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetUserProfile: %w", err)
	}
	return profile, nil
}

func (s *Service) profile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats, err := s.users.GetStatistics(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Profile{User: u, Statistics: stats}, nil
}

// SyncProfile creates the authenticated user's profile on first call and
// refreshes the display name and avatar afterwards. The username is fixed
// once the profile exists. A taken username returns ErrAlreadyExists.
func (s *Service) SyncProfile(ctx context.Context, input SyncProfileInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		displayName = input.Username
	}

	now := s.now().UTC()
	u, err := s.users.Upsert(ctx, &domain.User{
		ID:          userID,
		Username:    input.Username,
		DisplayName: displayName,
		AvatarURL:   input.AvatarURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("user.SyncProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile synced",
		slog.String("user_id", userID.String()),
		slog.String("username", u.Username))

	return u, nil
}
