package bucketlist

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/bucketly/bucketly-backend/internal/domain"
)

// CreateListResult is a new list and the badges its creation unlocked.
type CreateListResult struct {
	List      *domain.BucketList
	NewBadges []string
}

// CreateList creates a list owned by the current user.
func (s *Service) CreateList(ctx context.Context, input CreateListInput) (*CreateListResult, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}

	list, err := s.lists.CreateList(ctx, &domain.BucketList{
		ID:          uuid.New(),
		OwnerID:     userID,
		Title:       strings.TrimSpace(input.Title),
		Description: trimOrNil(input.Description),
		IsPublic:    isPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("bucketlist.CreateList: %w", err)
	}

	s.log.InfoContext(ctx, "list created",
		"user_id", userID.String(),
		"list_id", list.ID.String(),
	)

	return &CreateListResult{
		List:      list,
		NewBadges: s.awardAfter(ctx, userID, "list_created"),
	}, nil
}

// AddItem appends an item to one of the current user's lists.
func (s *Service) AddItem(ctx context.Context, listID uuid.UUID, input AddItemInput) (*domain.ListItem, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	list, err := s.lists.GetList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("bucketlist.AddItem: %w", err)
	}
	if list.OwnerID != userID {
		return nil, fmt.Errorf("bucketlist.AddItem: list %s: %w", listID, domain.ErrForbidden)
	}

	item, err := s.lists.CreateItem(ctx, &domain.ListItem{
		ID:        uuid.New(),
		ListID:    listID,
		Title:     strings.TrimSpace(input.Title),
		Points:    input.Points,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("bucketlist.AddItem: %w", err)
	}
	return item, nil
}

// ToggleItemResult is the item after the toggle, the owner's new point total
// and the badges a completion unlocked.
type ToggleItemResult struct {
	Item        *domain.ListItem
	TotalPoints int64
	NewBadges   []string
}

// ToggleItem flips an item between done and not done and moves the item's
// points onto or off the owner's total in the same transaction. Only a
// transition to done runs the badge check.
func (s *Service) ToggleItem(ctx context.Context, itemID uuid.UUID) (*ToggleItemResult, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	var result ToggleItemResult
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		item, ownerID, err := s.lists.GetItemForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if ownerID != userID {
			return fmt.Errorf("item %s: %w", itemID, domain.ErrForbidden)
		}

		delta := item.Toggle(s.now().UTC())
		if err := s.lists.UpdateItemCompletion(ctx, item); err != nil {
			return err
		}
		total, err := s.users.AddPoints(ctx, userID, int64(delta))
		if err != nil {
			return err
		}

		result.Item = item
		result.TotalPoints = total
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("bucketlist.ToggleItem: %w", err)
	}

	result.NewBadges = []string{}
	if result.Item.IsCompleted {
		result.NewBadges = s.awardAfter(ctx, userID, "item_completed")
	}
	return &result, nil
}
