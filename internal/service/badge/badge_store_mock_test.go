package badge

import (
	"context"
	"github.com/bucketly/bucketly-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ badgeStore = &badgeStoreMock{}

type badgeStoreMock struct {
	AwardFunc       func(ctx context.Context, userID uuid.UUID, badgeID string) (bool, error)
	ListCatalogFunc func(ctx context.Context) ([]domain.BadgeDefinition, error)
	ListEarnedFunc  func(ctx context.Context, userID uuid.UUID) ([]domain.EarnedBadge, error)

	calls struct {
		Award []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			BadgeID string
		}
		ListCatalog []struct {
			Ctx context.Context
		}
		ListEarned []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockAward       sync.RWMutex
	lockListCatalog sync.RWMutex
	lockListEarned  sync.RWMutex
}

func (mock *badgeStoreMock) Award(ctx context.Context, userID uuid.UUID, badgeID string) (bool, error) {
	if mock.AwardFunc == nil {
		panic("badgeStoreMock.AwardFunc: method is nil but badgeStore.Award was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		BadgeID string
	}{Ctx: ctx, UserID: userID, BadgeID: badgeID}
	mock.lockAward.Lock()
	mock.calls.Award = append(mock.calls.Award, callInfo)
	mock.lockAward.Unlock()
	return mock.AwardFunc(ctx, userID, badgeID)
}

func (mock *badgeStoreMock) AwardCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	BadgeID string
} {
	mock.lockAward.RLock()
	calls := mock.calls.Award
	mock.lockAward.RUnlock()
	return calls
}

func (mock *badgeStoreMock) ListCatalog(ctx context.Context) ([]domain.BadgeDefinition, error) {
	if mock.ListCatalogFunc == nil {
		panic("badgeStoreMock.ListCatalogFunc: method is nil but badgeStore.ListCatalog was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListCatalog.Lock()
	mock.calls.ListCatalog = append(mock.calls.ListCatalog, callInfo)
	mock.lockListCatalog.Unlock()
	return mock.ListCatalogFunc(ctx)
}

func (mock *badgeStoreMock) ListCatalogCalls() []struct {
	Ctx context.Context
} {
	mock.lockListCatalog.RLock()
	calls := mock.calls.ListCatalog
	mock.lockListCatalog.RUnlock()
	return calls
}

func (mock *badgeStoreMock) ListEarned(ctx context.Context, userID uuid.UUID) ([]domain.EarnedBadge, error) {
	if mock.ListEarnedFunc == nil {
		panic("badgeStoreMock.ListEarnedFunc: method is nil but badgeStore.ListEarned was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListEarned.Lock()
	mock.calls.ListEarned = append(mock.calls.ListEarned, callInfo)
	mock.lockListEarned.Unlock()
	return mock.ListEarnedFunc(ctx, userID)
}

func (mock *badgeStoreMock) ListEarnedCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListEarned.RLock()
	calls := mock.calls.ListEarned
	mock.lockListEarned.RUnlock()
	return calls
}
