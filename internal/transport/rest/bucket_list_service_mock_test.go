package rest

import (
	"context"
	"github.com/bucketly/bucketly-backend/internal/domain"
	"github.com/bucketly/bucketly-backend/internal/service/bucketlist"
	"github.com/google/uuid"
	"sync"
)

var _ bucketListService = &bucketListServiceMock{}

type bucketListServiceMock struct {
	AddItemFunc func(ctx context.Context, listID uuid.UUID, input bucketlist.AddItemInput) (*domain.ListItem, error)

	CreateListFunc func(ctx context.Context, input bucketlist.CreateListInput) (*bucketlist.CreateListResult, error)

	FollowListFunc func(ctx context.Context, listID uuid.UUID) (*bucketlist.FollowResult, error)

	LeaderboardFunc func(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)

	ToggleItemFunc func(ctx context.Context, itemID uuid.UUID) (*bucketlist.ToggleItemResult, error)

	UnfollowListFunc func(ctx context.Context, listID uuid.UUID) (*bucketlist.FollowResult, error)

	calls struct {
		AddItem []struct {
			Ctx context.Context
			ListID uuid.UUID
			Input bucketlist.AddItemInput
		}
		CreateList []struct {
			Ctx context.Context
			Input bucketlist.CreateListInput
		}
		FollowList []struct {
			Ctx context.Context
			ListID uuid.UUID
		}
		Leaderboard []struct {
			Ctx context.Context
			Limit int
		}
		ToggleItem []struct {
			Ctx context.Context
			ItemID uuid.UUID
		}
		UnfollowList []struct {
			Ctx context.Context
			ListID uuid.UUID
		}
	}
	lockAddItem sync.RWMutex
	lockCreateList sync.RWMutex
	lockFollowList sync.RWMutex
	lockLeaderboard sync.RWMutex
	lockToggleItem sync.RWMutex
	lockUnfollowList sync.RWMutex
}

func (mock *bucketListServiceMock) AddItem(ctx context.Context, listID uuid.UUID, input bucketlist.AddItemInput) (*domain.ListItem, error) {
	if mock.AddItemFunc == nil {
		panic("bucketListServiceMock.AddItemFunc: method is nil but bucketListService.AddItem was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ListID uuid.UUID
		Input bucketlist.AddItemInput
	}{Ctx: ctx, ListID: listID, Input: input}
	mock.lockAddItem.Lock()
	mock.calls.AddItem = append(mock.calls.AddItem, callInfo)
	mock.lockAddItem.Unlock()
	return mock.AddItemFunc(ctx, listID, input)
}

func (mock *bucketListServiceMock) AddItemCalls() []struct {
	Ctx context.Context
	ListID uuid.UUID
	Input bucketlist.AddItemInput
} {
	mock.lockAddItem.RLock()
	calls := mock.calls.AddItem
	mock.lockAddItem.RUnlock()
	return calls
}

func (mock *bucketListServiceMock) CreateList(ctx context.Context, input bucketlist.CreateListInput) (*bucketlist.CreateListResult, error) {
	if mock.CreateListFunc == nil {
		panic("bucketListServiceMock.CreateListFunc: method is nil but bucketListService.CreateList was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Input bucketlist.CreateListInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateList.Lock()
	mock.calls.CreateList = append(mock.calls.CreateList, callInfo)
	mock.lockCreateList.Unlock()
	return mock.CreateListFunc(ctx, input)
}

func (mock *bucketListServiceMock) CreateListCalls() []struct {
	Ctx context.Context
	Input bucketlist.CreateListInput
} {
	mock.lockCreateList.RLock()
	calls := mock.calls.CreateList
	mock.lockCreateList.RUnlock()
	return calls
}

func (mock *bucketListServiceMock) FollowList(ctx context.Context, listID uuid.UUID) (*bucketlist.FollowResult, error) {
	if mock.FollowListFunc == nil {
		panic("bucketListServiceMock.FollowListFunc: method is nil but bucketListService.FollowList was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ListID uuid.UUID
	}{Ctx: ctx, ListID: listID}
	mock.lockFollowList.Lock()
	mock.calls.FollowList = append(mock.calls.FollowList, callInfo)
	mock.lockFollowList.Unlock()
	return mock.FollowListFunc(ctx, listID)
}

func (mock *bucketListServiceMock) FollowListCalls() []struct {
	Ctx context.Context
	ListID uuid.UUID
} {
	mock.lockFollowList.RLock()
	calls := mock.calls.FollowList
	mock.lockFollowList.RUnlock()
	return calls
}

func (mock *bucketListServiceMock) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if mock.LeaderboardFunc == nil {
		panic("bucketListServiceMock.LeaderboardFunc: method is nil but bucketListService.Leaderboard was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockLeaderboard.Lock()
	mock.calls.Leaderboard = append(mock.calls.Leaderboard, callInfo)
	mock.lockLeaderboard.Unlock()
	return mock.LeaderboardFunc(ctx, limit)
}

func (mock *bucketListServiceMock) LeaderboardCalls() []struct {
	Ctx context.Context
	Limit int
} {
	mock.lockLeaderboard.RLock()
	calls := mock.calls.Leaderboard
	mock.lockLeaderboard.RUnlock()
	return calls
}

func (mock *bucketListServiceMock) ToggleItem(ctx context.Context, itemID uuid.UUID) (*bucketlist.ToggleItemResult, error) {
	if mock.ToggleItemFunc == nil {
		panic("bucketListServiceMock.ToggleItemFunc: method is nil but bucketListService.ToggleItem was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockToggleItem.Lock()
	mock.calls.ToggleItem = append(mock.calls.ToggleItem, callInfo)
	mock.lockToggleItem.Unlock()
	return mock.ToggleItemFunc(ctx, itemID)
}

func (mock *bucketListServiceMock) ToggleItemCalls() []struct {
	Ctx context.Context
	ItemID uuid.UUID
} {
	mock.lockToggleItem.RLock()
	calls := mock.calls.ToggleItem
	mock.lockToggleItem.RUnlock()
	return calls
}

func (mock *bucketListServiceMock) UnfollowList(ctx context.Context, listID uuid.UUID) (*bucketlist.FollowResult, error) {
	if mock.UnfollowListFunc == nil {
		panic("bucketListServiceMock.UnfollowListFunc: method is nil but bucketListService.UnfollowList was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ListID uuid.UUID
	}{Ctx: ctx, ListID: listID}
	mock.lockUnfollowList.Lock()
	mock.calls.UnfollowList = append(mock.calls.UnfollowList, callInfo)
	mock.lockUnfollowList.Unlock()
	return mock.UnfollowListFunc(ctx, listID)
}

func (mock *bucketListServiceMock) UnfollowListCalls() []struct {
	Ctx context.Context
	ListID uuid.UUID
} {
	mock.lockUnfollowList.RLock()
	calls := mock.calls.UnfollowList
	mock.lockUnfollowList.RUnlock()
	return calls
}
