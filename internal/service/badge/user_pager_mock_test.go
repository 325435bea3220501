package badge

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ userPager = &userPagerMock{}

type userPagerMock struct {
	ListIDsFunc func(ctx context.Context, after uuid.UUID, limit int) ([]uuid.UUID, error)

	calls struct {
		ListIDs []struct {
			Ctx context.Context
			After uuid.UUID
			Limit int
		}
	}
	lockListIDs sync.RWMutex
}

func (mock *userPagerMock) ListIDs(ctx context.Context, after uuid.UUID, limit int) ([]uuid.UUID, error) {
	if mock.ListIDsFunc == nil {
		panic("userPagerMock.ListIDsFunc: method is nil but userPager.ListIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		After uuid.UUID
		Limit int
	}{Ctx: ctx, After: after, Limit: limit}
	mock.lockListIDs.Lock()
	mock.calls.ListIDs = append(mock.calls.ListIDs, callInfo)
	mock.lockListIDs.Unlock()
	return mock.ListIDsFunc(ctx, after, limit)
}

func (mock *userPagerMock) ListIDsCalls() []struct {
	Ctx context.Context
	After uuid.UUID
	Limit int
} {
	mock.lockListIDs.RLock()
	calls := mock.calls.ListIDs
	mock.lockListIDs.RUnlock()
	return calls
}
