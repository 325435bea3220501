package user

import (
	"context"
	"github.com/bucketly/bucketly-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	GetStatisticsFunc func(ctx context.Context, userID uuid.UUID) (domain.UserStatistics, error)

	UpsertFunc func(ctx context.Context, u *domain.User) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id uuid.UUID
		}
		GetStatistics []struct {
			Ctx context.Context
			UserID uuid.UUID
		}
		Upsert []struct {
			Ctx context.Context
			U *domain.User
		}
	}
	lockGetByID sync.RWMutex
	lockGetStatistics sync.RWMutex
	lockUpsert sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetStatistics(ctx context.Context, userID uuid.UUID) (domain.UserStatistics, error) {
	if mock.GetStatisticsFunc == nil {
		panic("userRepoMock.GetStatisticsFunc: method is nil but userRepo.GetStatistics was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetStatistics.Lock()
	mock.calls.GetStatistics = append(mock.calls.GetStatistics, callInfo)
	mock.lockGetStatistics.Unlock()
	return mock.GetStatisticsFunc(ctx, userID)
}

func (mock *userRepoMock) GetStatisticsCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
} {
	mock.lockGetStatistics.RLock()
	calls := mock.calls.GetStatistics
	mock.lockGetStatistics.RUnlock()
	return calls
}

func (mock *userRepoMock) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.UpsertFunc == nil {
		panic("userRepoMock.UpsertFunc: method is nil but userRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U *domain.User
	}{Ctx: ctx, U: u}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, u)
}

func (mock *userRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	U *domain.User
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
