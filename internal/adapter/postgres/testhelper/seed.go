package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bucketly/bucketly-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique username and zero points.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:          uuid.New(),
		Username:    "user_" + suffix,
		DisplayName: "Test User " + suffix,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, display_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.DisplayName, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedList inserts a public bucket list owned by ownerID.
func SeedList(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.BucketList {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	list := domain.BucketList{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     "List " + uniqueSuffix(),
		IsPublic:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO bucket_lists (id, owner_id, title, is_public, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		list.ID, list.OwnerID, list.Title, list.IsPublic, list.CreatedAt, list.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedList: %v", err)
	}
	return list
}

// SeedItem inserts an item worth points into listID. completed marks it done.
func SeedItem(t *testing.T, pool *pgxpool.Pool, listID uuid.UUID, points int, completed bool) domain.ListItem {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.ListItem{
		ID:          uuid.New(),
		ListID:      listID,
		Title:       "Item " + uniqueSuffix(),
		Points:      points,
		IsCompleted: completed,
		CreatedAt:   now,
	}
	if completed {
		item.CompletedAt = &now
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO list_items (id, list_id, title, points, is_completed, completed_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		item.ID, item.ListID, item.Title, item.Points, item.IsCompleted, item.CompletedAt, item.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem: %v", err)
	}
	return item
}

// SeedFollow makes userID follow listID.
func SeedFollow(t *testing.T, pool *pgxpool.Pool, userID, listID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO list_follows (user_id, list_id) VALUES ($1, $2)`, userID, listID)
	if err != nil {
		t.Fatalf("testhelper: SeedFollow: %v", err)
	}
}

// SetPoints overwrites a user's total points.
func SetPoints(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, points int64) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`UPDATE users SET total_points = $2 WHERE id = $1`, userID, points)
	if err != nil {
		t.Fatalf("testhelper: SetPoints: %v", err)
	}
}

// SeedBadge inserts a catalog entry with a unique ID and returns it.
func SeedBadge(t *testing.T, pool *pgxpool.Pool, metric domain.Metric, threshold int64) domain.BadgeDefinition {
	t.Helper()

	badge := domain.BadgeDefinition{
		ID:        "test-" + uniqueSuffix(),
		Name:      "Test badge",
		Metric:    metric,
		Threshold: threshold,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO badges (id, name, metric, threshold, position) VALUES ($1, $2, $3, $4, 1000)`,
		badge.ID, badge.Name, string(badge.Metric), badge.Threshold,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBadge: %v", err)
	}
	return badge
}
