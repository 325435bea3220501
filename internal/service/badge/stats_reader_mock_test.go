package badge

import (
	"context"
	"github.com/bucketly/bucketly-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ statsReader = &statsReaderMock{}

type statsReaderMock struct {
	GetStatisticsFunc func(ctx context.Context, userID uuid.UUID) (domain.UserStatistics, error)

	calls struct {
		GetStatistics []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGetStatistics sync.RWMutex
}

func (mock *statsReaderMock) GetStatistics(ctx context.Context, userID uuid.UUID) (domain.UserStatistics, error) {
	if mock.GetStatisticsFunc == nil {
		panic("statsReaderMock.GetStatisticsFunc: method is nil but statsReader.GetStatistics was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetStatistics.Lock()
	mock.calls.GetStatistics = append(mock.calls.GetStatistics, callInfo)
	mock.lockGetStatistics.Unlock()
	return mock.GetStatisticsFunc(ctx, userID)
}

func (mock *statsReaderMock) GetStatisticsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetStatistics.RLock()
	calls := mock.calls.GetStatistics
	mock.lockGetStatistics.RUnlock()
	return calls
}
