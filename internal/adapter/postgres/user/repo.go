// Package user implements profile, statistics and leaderboard queries on
// PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/bucketly/bucketly-backend/internal/adapter/postgres"
	"github.com/bucketly/bucketly-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID          uuid.UUID `db:"id"`
	Username    string    `db:"username"`
	DisplayName string    `db:"display_name"`
	AvatarURL   *string   `db:"avatar_url"`
	TotalPoints int64     `db:"total_points"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

var userColumns = []string{"id", "username", "display_name", "avatar_url", "total_points", "created_at", "updated_at"}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return row.toDomain(), nil
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:          r.ID,
		Username:    r.Username,
		DisplayName: r.DisplayName,
		AvatarURL:   r.AvatarURL,
		TotalPoints: r.TotalPoints,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Upsert creates the profile for u.ID or, when it exists, refreshes the
// display name and avatar. The username is only set on insert.
func (r *Repo) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Insert("users").
		Columns("id", "username", "display_name", "avatar_url", "created_at", "updated_at").
		Values(u.ID, u.Username, u.DisplayName, u.AvatarURL, u.CreatedAt, u.UpdatedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET display_name = EXCLUDED.display_name, " +
			"avatar_url = EXCLUDED.avatar_url, updated_at = EXCLUDED.updated_at").
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user upsert: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}
	return row.toDomain(), nil
}

type statsRow struct {
	TotalPoints    int64 `db:"total_points"`
	ItemsCompleted int64 `db:"items_completed"`
	ListsCreated   int64 `db:"lists_created"`
	ListsFollowed  int64 `db:"lists_followed"`
	FollowersCount int64 `db:"followers_count"`
}

const (
	itemsCompletedExpr = `(SELECT count(*) FROM list_items i JOIN bucket_lists l ON l.id = i.list_id
		WHERE l.owner_id = u.id AND i.is_completed) AS items_completed`
	listsCreatedExpr   = `(SELECT count(*) FROM bucket_lists l WHERE l.owner_id = u.id) AS lists_created`
	listsFollowedExpr  = `(SELECT count(*) FROM list_follows f WHERE f.user_id = u.id) AS lists_followed`
	followersCountExpr = `(SELECT count(DISTINCT f.user_id) FROM list_follows f JOIN bucket_lists l ON l.id = f.list_id
		WHERE l.owner_id = u.id) AS followers_count`
)

// GetStatistics reads every badge metric for userID in a single statement so
// the counters come from one snapshot. Followers are distinct users following
// any of the user's lists.
func (r *Repo) GetStatistics(ctx context.Context, userID uuid.UUID) (domain.UserStatistics, error) {
	query, args, err := postgres.Builder.
		Select("u.total_points").
		Column(itemsCompletedExpr).
		Column(listsCreatedExpr).
		Column(listsFollowedExpr).
		Column(followersCountExpr).
		From("users u").
		Where(sq.Eq{"u.id": userID}).
		ToSql()
	if err != nil {
		return domain.UserStatistics{}, fmt.Errorf("build statistics query: %w", err)
	}

	var row statsRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.UserStatistics{}, postgres.MapError(err, "user statistics", userID)
	}

	return domain.UserStatistics{
		TotalPoints:    row.TotalPoints,
		ItemsCompleted: row.ItemsCompleted,
		ListsCreated:   row.ListsCreated,
		ListsFollowed:  row.ListsFollowed,
		FollowersCount: row.FollowersCount,
	}, nil
}

// AddPoints adjusts the user's total by delta, flooring at zero, and returns
// the new total.
func (r *Repo) AddPoints(ctx context.Context, userID uuid.UUID, delta int64) (int64, error) {
	query, args, err := postgres.Builder.
		Update("users").
		Set("total_points", sq.Expr("GREATEST(total_points + ?, 0)", delta)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING total_points").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build points update: %w", err)
	}

	var total int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "user", userID)
	}
	return total, nil
}

type leaderboardRow struct {
	Rank        int       `db:"rank"`
	ID          uuid.UUID `db:"id"`
	Username    string    `db:"username"`
	DisplayName string    `db:"display_name"`
	AvatarURL   *string   `db:"avatar_url"`
	TotalPoints int64     `db:"total_points"`
	BadgeCount  int       `db:"badge_count"`
}

// Leaderboard returns the top users by points. Tied users share a rank.
func (r *Repo) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	query, args, err := postgres.Builder.
		Select("RANK() OVER (ORDER BY u.total_points DESC) AS rank",
			"u.id", "u.username", "u.display_name", "u.avatar_url", "u.total_points").
		Column("(SELECT count(*) FROM user_badges b WHERE b.user_id = u.id) AS badge_count").
		From("users u").
		OrderBy("u.total_points DESC", "u.id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build leaderboard query: %w", err)
	}

	var rows []leaderboardRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "leaderboard", limit)
	}

	entries := make([]domain.LeaderboardEntry, len(rows))
	for i, row := range rows {
		entries[i] = domain.LeaderboardEntry{
			Rank:        row.Rank,
			UserID:      row.ID,
			Username:    row.Username,
			DisplayName: row.DisplayName,
			AvatarURL:   row.AvatarURL,
			TotalPoints: row.TotalPoints,
			BadgeCount:  row.BadgeCount,
		}
	}
	return entries, nil
}

// ListIDs pages through user IDs in ascending order, starting after the given
// cursor. Pass uuid.Nil for the first page.
func (r *Repo) ListIDs(ctx context.Context, after uuid.UUID, limit int) ([]uuid.UUID, error) {
	query, args, err := postgres.Builder.
		Select("id").
		From("users").
		Where(sq.Gt{"id": after}).
		OrderBy("id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user id query: %w", err)
	}

	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, query, args...); err != nil {
		return nil, postgres.MapError(err, "user ids", after)
	}
	return ids, nil
}
