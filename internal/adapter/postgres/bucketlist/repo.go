// Package bucketlist implements bucket lists, their items and follows on
// PostgreSQL.
package bucketlist

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

// Repo provides bucket list persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new bucket list repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Lists
// ---------------------------------------------------------------------------

type listRow struct {
	ID          uuid.UUID `db:"id"`
	OwnerID     uuid.UUID `db:"owner_id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	IsPublic    bool      `db:"is_public"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r listRow) toDomain() *domain.BucketList {
	return &domain.BucketList{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		Title:       r.Title,
		Description: r.Description,
		IsPublic:    r.IsPublic,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

var listColumns = []string{"id", "owner_id", "title", "description", "is_public", "created_at", "updated_at"}

// CreateList inserts l and returns the stored row.
func (r *Repo) CreateList(ctx context.Context, l *domain.BucketList) (*domain.BucketList, error) {
	query, args, err := postgres.Builder.
		Insert("bucket_lists").
		Columns(listColumns...).
		Values(l.ID, l.OwnerID, l.Title, l.Description, l.IsPublic, l.CreatedAt, l.UpdatedAt).
		Suffix("RETURNING " + strings.Join(listColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list insert: %w", err)
	}

	var row listRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "list", l.ID)
	}
	return row.toDomain(), nil
}

// GetList returns a list by ID.
func (r *Repo) GetList(ctx context.Context, id uuid.UUID) (*domain.BucketList, error) {
	query, args, err := postgres.Builder.
		Select(listColumns...).
		From("bucket_lists").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var row listRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "list", id)
	}
	return row.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Items
// ---------------------------------------------------------------------------

type itemRow struct {
	ID          uuid.UUID  `db:"id"`
	ListID      uuid.UUID  `db:"list_id"`
	Title       string     `db:"title"`
	Points      int        `db:"points"`
	IsCompleted bool       `db:"is_completed"`
	CompletedAt *time.Time `db:"completed_at"`
	CreatedAt   time.Time  `db:"created_at"`
}

func (r itemRow) toDomain() *domain.ListItem {
	return &domain.ListItem{
		ID:          r.ID,
		ListID:      r.ListID,
		Title:       r.Title,
		Points:      r.Points,
		IsCompleted: r.IsCompleted,
		CompletedAt: r.CompletedAt,
		CreatedAt:   r.CreatedAt,
	}
}

var itemColumns = []string{"id", "list_id", "title", "points", "is_completed", "completed_at", "created_at"}

// CreateItem inserts item and returns the stored row. An unknown list maps to
// domain.ErrNotFound.
func (r *Repo) CreateItem(ctx context.Context, item *domain.ListItem) (*domain.ListItem, error) {
	query, args, err := postgres.Builder.
		Insert("list_items").
		Columns(itemColumns...).
		Values(item.ID, item.ListID, item.Title, item.Points, item.IsCompleted, item.CompletedAt, item.CreatedAt).
		Suffix("RETURNING " + strings.Join(itemColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item insert: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "list", item.ListID)
	}
	return row.toDomain(), nil
}

type ownedItemRow struct {
	itemRow
	OwnerID uuid.UUID `db:"owner_id"`
}

// GetItemForUpdate loads an item with its list owner and locks the item row
// until the surrounding transaction ends.
func (r *Repo) GetItemForUpdate(ctx context.Context, id uuid.UUID) (*domain.ListItem, uuid.UUID, error) {
	cols := make([]string, 0, len(itemColumns)+1)
	for _, c := range itemColumns {
		cols = append(cols, "i."+c)
	}
	cols = append(cols, "l.owner_id")

	query, args, err := postgres.Builder.
		Select(cols...).
		From("list_items i").
		Join("bucket_lists l ON l.id = i.list_id").
		Where(sq.Eq{"i.id": id}).
		Suffix("FOR UPDATE OF i").
		ToSql()
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("build item query: %w", err)
	}

	var row ownedItemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, uuid.Nil, postgres.MapError(err, "item", id)
	}
	return row.itemRow.toDomain(), row.OwnerID, nil
}

// UpdateItemCompletion persists the completion flag and timestamp of item.
func (r *Repo) UpdateItemCompletion(ctx context.Context, item *domain.ListItem) error {
	query, args, err := postgres.Builder.
		Update("list_items").
		Set("is_completed", item.IsCompleted).
		Set("completed_at", item.CompletedAt).
		Where(sq.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build item update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "item", item.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", item.ID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Follows
// ---------------------------------------------------------------------------

// Follow records that userID follows listID. It reports false when the follow
// already existed.
func (r *Repo) Follow(ctx context.Context, userID, listID uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder.
		Insert("list_follows").
		Columns("user_id", "list_id").
		Values(userID, listID).
		Suffix("ON CONFLICT (user_id, list_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build follow insert: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "list", listID)
	}
	return tag.RowsAffected() == 1, nil
}

// Unfollow removes the follow. It reports false when there was nothing to remove.
func (r *Repo) Unfollow(ctx context.Context, userID, listID uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder.
		Delete("list_follows").
		Where(sq.Eq{"user_id": userID, "list_id": listID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build follow delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "list", listID)
	}
	return tag.RowsAffected() == 1, nil
}
