package bucketlist

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ badgeAwarder = &badgeAwarderMock{}

type badgeAwarderMock struct {
	CheckAndAwardBadgesFunc func(ctx context.Context, userID uuid.UUID) ([]string, error)

	calls struct {
		CheckAndAwardBadges []struct {
			Ctx context.Context
			UserID uuid.UUID
		}
	}
	lockCheckAndAwardBadges sync.RWMutex
}

func (mock *badgeAwarderMock) CheckAndAwardBadges(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if mock.CheckAndAwardBadgesFunc == nil {
		panic("badgeAwarderMock.CheckAndAwardBadgesFunc: method is nil but badgeAwarder.CheckAndAwardBadges was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCheckAndAwardBadges.Lock()
	mock.calls.CheckAndAwardBadges = append(mock.calls.CheckAndAwardBadges, callInfo)
	mock.lockCheckAndAwardBadges.Unlock()
	return mock.CheckAndAwardBadgesFunc(ctx, userID)
}

func (mock *badgeAwarderMock) CheckAndAwardBadgesCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
} {
	mock.lockCheckAndAwardBadges.RLock()
	calls := mock.calls.CheckAndAwardBadges
	mock.lockCheckAndAwardBadges.RUnlock()
	return calls
}
