package domain

import (
	"time"

	"github.com/google/uuid"
)

// BucketList is a named collection of goals owned by one user.
type BucketList struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description *string
	IsPublic    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ListItem is a single goal on a bucket list.
type ListItem struct {
	ID          uuid.UUID
	ListID      uuid.UUID
	Title       string
	Points      int
	IsCompleted bool
	CompletedAt *time.Time
	CreatedAt   time.Time
}

// Toggle flips the completion flag and returns the signed points delta
// the owner's total must be adjusted by.
func (i *ListItem) Toggle(now time.Time) int {
	if i.IsCompleted {
		i.IsCompleted = false
		i.CompletedAt = nil
		return -i.Points
	}
	i.IsCompleted = true
	i.CompletedAt = &now
	return i.Points
}

// ListFollow records that a user follows someone else's list.
type ListFollow struct {
	UserID    uuid.UUID
	ListID    uuid.UUID
	CreatedAt time.Time
}
