package bucketlist

import (
	"context"
	"github.com/bucketly/bucketly-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	AddPointsFunc func(ctx context.Context, userID uuid.UUID, delta int64) (int64, error)

	LeaderboardFunc func(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)

	calls struct {
		AddPoints []struct {
			Ctx context.Context
			UserID uuid.UUID
			Delta int64
		}
		Leaderboard []struct {
			Ctx context.Context
			Limit int
		}
	}
	lockAddPoints sync.RWMutex
	lockLeaderboard sync.RWMutex
}

func (mock *userRepoMock) AddPoints(ctx context.Context, userID uuid.UUID, delta int64) (int64, error) {
	if mock.AddPointsFunc == nil {
		panic("userRepoMock.AddPointsFunc: method is nil but userRepo.AddPoints was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
		Delta int64
	}{Ctx: ctx, UserID: userID, Delta: delta}
	mock.lockAddPoints.Lock()
	mock.calls.AddPoints = append(mock.calls.AddPoints, callInfo)
	mock.lockAddPoints.Unlock()
	return mock.AddPointsFunc(ctx, userID, delta)
}

func (mock *userRepoMock) AddPointsCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
	Delta int64
} {
	mock.lockAddPoints.RLock()
	calls := mock.calls.AddPoints
	mock.lockAddPoints.RUnlock()
	return calls
}

func (mock *userRepoMock) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if mock.LeaderboardFunc == nil {
		panic("userRepoMock.LeaderboardFunc: method is nil but userRepo.Leaderboard was just called")
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

func (mock *userRepoMock) LeaderboardCalls() []struct {
	Ctx context.Context
	Limit int
} {
	mock.lockLeaderboard.RLock()
	calls := mock.calls.Leaderboard
	mock.lockLeaderboard.RUnlock()
	return calls
}
