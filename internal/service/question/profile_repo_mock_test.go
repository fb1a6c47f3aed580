package question

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByIDFunc             func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Profile, error)
	GetForUpdateFunc        func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Profile, error)
	AdjustQuestionCountFunc func(ctx context.Context, id uuid.UUID, delta int) error

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		GetForUpdate []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		AdjustQuestionCount []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Delta int
		}
	}
	lockGetByID             sync.RWMutex
	lockGetForUpdate        sync.RWMutex
	lockAdjustQuestionCount sync.RWMutex
}

func (mock *profileRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Profile, error) {
	if mock.GetByIDFunc == nil {
		panic("profileRepoMock.GetByIDFunc: method is nil but profileRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *profileRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *profileRepoMock) GetForUpdate(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Profile, error) {
	if mock.GetForUpdateFunc == nil {
		panic("profileRepoMock.GetForUpdateFunc: method is nil but profileRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, userID, id)
}

func (mock *profileRepoMock) GetForUpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *profileRepoMock) AdjustQuestionCount(ctx context.Context, id uuid.UUID, delta int) error {
	if mock.AdjustQuestionCountFunc == nil {
		panic("profileRepoMock.AdjustQuestionCountFunc: method is nil but profileRepo.AdjustQuestionCount was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Delta int
	}{Ctx: ctx, ID: id, Delta: delta}
	mock.lockAdjustQuestionCount.Lock()
	mock.calls.AdjustQuestionCount = append(mock.calls.AdjustQuestionCount, callInfo)
	mock.lockAdjustQuestionCount.Unlock()
	return mock.AdjustQuestionCountFunc(ctx, id, delta)
}

func (mock *profileRepoMock) AdjustQuestionCountCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Delta int
} {
	mock.lockAdjustQuestionCount.RLock()
	calls := mock.calls.AdjustQuestionCount
	mock.lockAdjustQuestionCount.RUnlock()
	return calls
}
