package billing

import (
	"context"
	"sync"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	MarkProcessedFunc func(ctx context.Context, id string, eventType string) (bool, error)

	calls struct {
		MarkProcessed []struct {
			Ctx       context.Context
			ID        string
			EventType string
		}
	}
	lockMarkProcessed sync.RWMutex
}

func (mock *eventRepoMock) MarkProcessed(ctx context.Context, id string, eventType string) (bool, error) {
	if mock.MarkProcessedFunc == nil {
		panic("eventRepoMock.MarkProcessedFunc: method is nil but eventRepo.MarkProcessed was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        string
		EventType string
	}{Ctx: ctx, ID: id, EventType: eventType}
	mock.lockMarkProcessed.Lock()
	mock.calls.MarkProcessed = append(mock.calls.MarkProcessed, callInfo)
	mock.lockMarkProcessed.Unlock()
	return mock.MarkProcessedFunc(ctx, id, eventType)
}

func (mock *eventRepoMock) MarkProcessedCalls() []struct {
	Ctx       context.Context
	ID        string
	EventType string
} {
	mock.lockMarkProcessed.RLock()
	calls := mock.calls.MarkProcessed
	mock.lockMarkProcessed.RUnlock()
	return calls
}
