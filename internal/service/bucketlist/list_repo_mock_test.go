package bucketlist

import (
	"context"
	"github.com/bucketly/bucketly-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ listRepo = &listRepoMock{}

type listRepoMock struct {
	CreateListFunc func(ctx context.Context, l *domain.BucketList) (*domain.BucketList, error)

	CreateItemFunc func(ctx context.Context, item *domain.ListItem) (*domain.ListItem, error)

	FollowFunc func(ctx context.Context, userID uuid.UUID, listID uuid.UUID) (bool, error)

	GetItemForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.ListItem, uuid.UUID, error)

	GetListFunc func(ctx context.Context, id uuid.UUID) (*domain.BucketList, error)

	UnfollowFunc func(ctx context.Context, userID uuid.UUID, listID uuid.UUID) (bool, error)

	UpdateItemCompletionFunc func(ctx context.Context, item *domain.ListItem) error

	calls struct {
		CreateList []struct {
			Ctx context.Context
			L *domain.BucketList
		}
		CreateItem []struct {
			Ctx context.Context
			Item *domain.ListItem
		}
		Follow []struct {
			Ctx context.Context
			UserID uuid.UUID
			ListID uuid.UUID
		}
		GetItemForUpdate []struct {
			Ctx context.Context
			Id uuid.UUID
		}
		GetList []struct {
			Ctx context.Context
			Id uuid.UUID
		}
		Unfollow []struct {
			Ctx context.Context
			UserID uuid.UUID
			ListID uuid.UUID
		}
		UpdateItemCompletion []struct {
			Ctx context.Context
			Item *domain.ListItem
		}
	}
	lockCreateList sync.RWMutex
	lockCreateItem sync.RWMutex
	lockFollow sync.RWMutex
	lockGetItemForUpdate sync.RWMutex
	lockGetList sync.RWMutex
	lockUnfollow sync.RWMutex
	lockUpdateItemCompletion sync.RWMutex
}

func (mock *listRepoMock) CreateList(ctx context.Context, l *domain.BucketList) (*domain.BucketList, error) {
	if mock.CreateListFunc == nil {
		panic("listRepoMock.CreateListFunc: method is nil but listRepo.CreateList was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L *domain.BucketList
	}{Ctx: ctx, L: l}
	mock.lockCreateList.Lock()
	mock.calls.CreateList = append(mock.calls.CreateList, callInfo)
	mock.lockCreateList.Unlock()
	return mock.CreateListFunc(ctx, l)
}

func (mock *listRepoMock) CreateListCalls() []struct {
	Ctx context.Context
	L *domain.BucketList
} {
	mock.lockCreateList.RLock()
	calls := mock.calls.CreateList
	mock.lockCreateList.RUnlock()
	return calls
}

func (mock *listRepoMock) CreateItem(ctx context.Context, item *domain.ListItem) (*domain.ListItem, error) {
	if mock.CreateItemFunc == nil {
		panic("listRepoMock.CreateItemFunc: method is nil but listRepo.CreateItem was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Item *domain.ListItem
	}{Ctx: ctx, Item: item}
	mock.lockCreateItem.Lock()
	mock.calls.CreateItem = append(mock.calls.CreateItem, callInfo)
	mock.lockCreateItem.Unlock()
	return mock.CreateItemFunc(ctx, item)
}

func (mock *listRepoMock) CreateItemCalls() []struct {
	Ctx context.Context
	Item *domain.ListItem
} {
	mock.lockCreateItem.RLock()
	calls := mock.calls.CreateItem
	mock.lockCreateItem.RUnlock()
	return calls
}

func (mock *listRepoMock) Follow(ctx context.Context, userID uuid.UUID, listID uuid.UUID) (bool, error) {
	if mock.FollowFunc == nil {
		panic("listRepoMock.FollowFunc: method is nil but listRepo.Follow was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
		ListID uuid.UUID
	}{Ctx: ctx, UserID: userID, ListID: listID}
	mock.lockFollow.Lock()
	mock.calls.Follow = append(mock.calls.Follow, callInfo)
	mock.lockFollow.Unlock()
	return mock.FollowFunc(ctx, userID, listID)
}

func (mock *listRepoMock) FollowCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
	ListID uuid.UUID
} {
	mock.lockFollow.RLock()
	calls := mock.calls.Follow
	mock.lockFollow.RUnlock()
	return calls
}

func (mock *listRepoMock) GetItemForUpdate(ctx context.Context, id uuid.UUID) (*domain.ListItem, uuid.UUID, error) {
	if mock.GetItemForUpdateFunc == nil {
		panic("listRepoMock.GetItemForUpdateFunc: method is nil but listRepo.GetItemForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetItemForUpdate.Lock()
	mock.calls.GetItemForUpdate = append(mock.calls.GetItemForUpdate, callInfo)
	mock.lockGetItemForUpdate.Unlock()
	return mock.GetItemForUpdateFunc(ctx, id)
}

func (mock *listRepoMock) GetItemForUpdateCalls() []struct {
	Ctx context.Context
	Id uuid.UUID
} {
	mock.lockGetItemForUpdate.RLock()
	calls := mock.calls.GetItemForUpdate
	mock.lockGetItemForUpdate.RUnlock()
	return calls
}

func (mock *listRepoMock) GetList(ctx context.Context, id uuid.UUID) (*domain.BucketList, error) {
	if mock.GetListFunc == nil {
		panic("listRepoMock.GetListFunc: method is nil but listRepo.GetList was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetList.Lock()
	mock.calls.GetList = append(mock.calls.GetList, callInfo)
	mock.lockGetList.Unlock()
	return mock.GetListFunc(ctx, id)
}

func (mock *listRepoMock) GetListCalls() []struct {
	Ctx context.Context
	Id uuid.UUID
} {
	mock.lockGetList.RLock()
	calls := mock.calls.GetList
	mock.lockGetList.RUnlock()
	return calls
}

func (mock *listRepoMock) Unfollow(ctx context.Context, userID uuid.UUID, listID uuid.UUID) (bool, error) {
	if mock.UnfollowFunc == nil {
		panic("listRepoMock.UnfollowFunc: method is nil but listRepo.Unfollow was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
		ListID uuid.UUID
	}{Ctx: ctx, UserID: userID, ListID: listID}
	mock.lockUnfollow.Lock()
	mock.calls.Unfollow = append(mock.calls.Unfollow, callInfo)
	mock.lockUnfollow.Unlock()
	return mock.UnfollowFunc(ctx, userID, listID)
}

func (mock *listRepoMock) UnfollowCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
	ListID uuid.UUID
} {
	mock.lockUnfollow.RLock()
	calls := mock.calls.Unfollow
	mock.lockUnfollow.RUnlock()
	return calls
}

func (mock *listRepoMock) UpdateItemCompletion(ctx context.Context, item *domain.ListItem) error {
	if mock.UpdateItemCompletionFunc == nil {
		panic("listRepoMock.UpdateItemCompletionFunc: method is nil but listRepo.UpdateItemCompletion was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Item *domain.ListItem
	}{Ctx: ctx, Item: item}
	mock.lockUpdateItemCompletion.Lock()
	mock.calls.UpdateItemCompletion = append(mock.calls.UpdateItemCompletion, callInfo)
	mock.lockUpdateItemCompletion.Unlock()
	return mock.UpdateItemCompletionFunc(ctx, item)
}

func (mock *listRepoMock) UpdateItemCompletionCalls() []struct {
	Ctx context.Context
	Item *domain.ListItem
} {
	mock.lockUpdateItemCompletion.RLock()
	calls := mock.calls.UpdateItemCompletion
	mock.lockUpdateItemCompletion.RUnlock()
	return calls
}
