package rest

import (
	"context"
	"github.com/bucketly/bucketly-backend/internal/domain"
	"github.com/bucketly/bucketly-backend/internal/service/user"
	"github.com/google/uuid"
	"sync"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	GetProfileFunc func(ctx context.Context) (*user.Profile, error)

	GetUserProfileFunc func(ctx context.Context, userID uuid.UUID) (*user.Profile, error)

	SyncProfileFunc func(ctx context.Context, input user.SyncProfileInput) (*domain.User, error)

	calls struct {
		GetProfile []struct {
			Ctx context.Context
		}
		GetUserProfile []struct {
			Ctx context.Context
			UserID uuid.UUID
		}
		SyncProfile []struct {
			Ctx context.Context
			Input user.SyncProfileInput
		}
	}
	lockGetProfile sync.RWMutex
	lockGetUserProfile sync.RWMutex
	lockSyncProfile sync.RWMutex
}

func (mock *userServiceMock) GetProfile(ctx context.Context) (*user.Profile, error) {
	if mock.GetProfileFunc == nil {
		panic("userServiceMock.GetProfileFunc: method is nil but userService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx)
}

func (mock *userServiceMock) GetProfileCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetProfile.RLock()
	calls := mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *userServiceMock) GetUserProfile(ctx context.Context, userID uuid.UUID) (*user.Profile, error) {
	if mock.GetUserProfileFunc == nil {
		panic("userServiceMock.GetUserProfileFunc: method is nil but userService.GetUserProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetUserProfile.Lock()
	mock.calls.GetUserProfile = append(mock.calls.GetUserProfile, callInfo)
	mock.lockGetUserProfile.Unlock()
	return mock.GetUserProfileFunc(ctx, userID)
}

func (mock *userServiceMock) GetUserProfileCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
} {
	mock.lockGetUserProfile.RLock()
	calls := mock.calls.GetUserProfile
	mock.lockGetUserProfile.RUnlock()
	return calls
}

func (mock *userServiceMock) SyncProfile(ctx context.Context, input user.SyncProfileInput) (*domain.User, error) {
	if mock.SyncProfileFunc == nil {
		panic("userServiceMock.SyncProfileFunc: method is nil but userService.SyncProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Input user.SyncProfileInput
	}{Ctx: ctx, Input: input}
	mock.lockSyncProfile.Lock()
	mock.calls.SyncProfile = append(mock.calls.SyncProfile, callInfo)
	mock.lockSyncProfile.Unlock()
	return mock.SyncProfileFunc(ctx, input)
}

func (mock *userServiceMock) SyncProfileCalls() []struct {
	Ctx context.Context
	Input user.SyncProfileInput
} {
	mock.lockSyncProfile.RLock()
	calls := mock.calls.SyncProfile
	mock.lockSyncProfile.RUnlock()
	return calls
}
