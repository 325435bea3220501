// Package badge implements the badge catalog and award store on PostgreSQL.
package badge

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/bucketly/bucketly-backend/internal/adapter/postgres"
	"github.com/bucketly/bucketly-backend/internal/domain"
)

// Repo reads the catalog and persists awards.
type Repo struct {
	db postgres.Querier
}

// New creates a badge repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type badgeRow struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Icon        string `db:"icon"`
	Metric      string `db:"metric"`
	Threshold   int64  `db:"threshold"`
}

func (r badgeRow) toDomain() domain.BadgeDefinition {
	return domain.BadgeDefinition{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Icon:        r.Icon,
		Metric:      domain.Metric(r.Metric),
		Threshold:   r.Threshold,
	}
}

// ListCatalog returns every badge definition in display order.
func (r *Repo) ListCatalog(ctx context.Context) ([]domain.BadgeDefinition, error) {
	query, args, err := postgres.Builder.
		Select("id", "name", "description", "icon", "metric", "threshold").
		From("badges").
		OrderBy("position", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build catalog query: %w", err)
	}

	var rows []badgeRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "badge catalog", "*")
	}

	catalog := make([]domain.BadgeDefinition, len(rows))
	for i, row := range rows {
		catalog[i] = row.toDomain()
	}
	return catalog, nil
}

type earnedRow struct {
	BadgeID  string    `db:"badge_id"`
	EarnedAt time.Time `db:"earned_at"`
}

// ListEarned returns the user's awards, oldest first.
func (r *Repo) ListEarned(ctx context.Context, userID uuid.UUID) ([]domain.EarnedBadge, error) {
	query, args, err := postgres.Builder.
		Select("badge_id", "earned_at").
		From("user_badges").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("earned_at", "badge_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build earned query: %w", err)
	}

	var rows []earnedRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "user badges", userID)
	}

	earned := make([]domain.EarnedBadge, len(rows))
	for i, row := range rows {
		earned[i] = domain.EarnedBadge{BadgeID: row.BadgeID, EarnedAt: row.EarnedAt}
	}
	return earned, nil
}

// Award records badgeID for userID. It reports false without error when the
// award already exists; only the caller whose insert lands sees true.
func (r *Repo) Award(ctx context.Context, userID uuid.UUID, badgeID string) (bool, error) {
	query, args, err := postgres.Builder.
		Insert("user_badges").
		Columns("user_id", "badge_id").
		Values(userID, badgeID).
		Suffix("ON CONFLICT (user_id, badge_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build award query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "badge", badgeID)
	}
	return tag.RowsAffected() == 1, nil
}
