package answer

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/werdnakof/ask-parents-25-questions/internal/service/question"
)

var _ questionLister = &questionListerMock{}

type questionListerMock struct {
	ComposedListFunc          func(ctx context.Context, profileID uuid.UUID) (*question.ComposedList, error)
	ComposedListForUpdateFunc func(ctx context.Context, profileID uuid.UUID) (*question.ComposedList, error)

	calls struct {
		ComposedList []struct {
			Ctx       context.Context
			ProfileID uuid.UUID
		}
		ComposedListForUpdate []struct {
			Ctx       context.Context
			ProfileID uuid.UUID
		}
	}
	lockComposedList          sync.RWMutex
	lockComposedListForUpdate sync.RWMutex
}

func (mock *questionListerMock) ComposedList(ctx context.Context, profileID uuid.UUID) (*question.ComposedList, error) {
	if mock.ComposedListFunc == nil {
		panic("questionListerMock.ComposedListFunc: method is nil but questionLister.ComposedList was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProfileID uuid.UUID
	}{Ctx: ctx, ProfileID: profileID}
	mock.lockComposedList.Lock()
	mock.calls.ComposedList = append(mock.calls.ComposedList, callInfo)
	mock.lockComposedList.Unlock()
	return mock.ComposedListFunc(ctx, profileID)
}

func (mock *questionListerMock) ComposedListCalls() []struct {
	Ctx       context.Context
	ProfileID uuid.UUID
} {
	mock.lockComposedList.RLock()
	calls := mock.calls.ComposedList
	mock.lockComposedList.RUnlock()
	return calls
}

func (mock *questionListerMock) ComposedListForUpdate(ctx context.Context, profileID uuid.UUID) (*question.ComposedList, error) {
	if mock.ComposedListForUpdateFunc == nil {
		panic("questionListerMock.ComposedListForUpdateFunc: method is nil but questionLister.ComposedListForUpdate was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProfileID uuid.UUID
	}{Ctx: ctx, ProfileID: profileID}
	mock.lockComposedListForUpdate.Lock()
	mock.calls.ComposedListForUpdate = append(mock.calls.ComposedListForUpdate, callInfo)
	mock.lockComposedListForUpdate.Unlock()
	return mock.ComposedListForUpdateFunc(ctx, profileID)
}

func (mock *questionListerMock) ComposedListForUpdateCalls() []struct {
	Ctx       context.Context
	ProfileID uuid.UUID
} {
	mock.lockComposedListForUpdate.RLock()
	calls := mock.calls.ComposedListForUpdate
	mock.lockComposedListForUpdate.RUnlock()
	return calls
}
