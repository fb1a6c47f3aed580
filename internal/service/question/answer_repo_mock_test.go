package question

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

var _ answerRepo = &answerRepoMock{}

type answerRepoMock struct {
	GetFunc             func(ctx context.Context, profileID uuid.UUID, questionID string) (*domain.Answer, error)
	ListAnsweredIDsFunc func(ctx context.Context, profileID uuid.UUID) ([]string, error)
	DeleteFunc          func(ctx context.Context, profileID uuid.UUID, questionID string) (bool, error)

	calls struct {
		Get []struct {
			Ctx        context.Context
			ProfileID  uuid.UUID
			QuestionID string
		}
		ListAnsweredIDs []struct {
			Ctx       context.Context
			ProfileID uuid.UUID
		}
		Delete []struct {
			Ctx        context.Context
			ProfileID  uuid.UUID
			QuestionID string
		}
	}
	lockGet             sync.RWMutex
	lockListAnsweredIDs sync.RWMutex
	lockDelete          sync.RWMutex
}

func (mock *answerRepoMock) Get(ctx context.Context, profileID uuid.UUID, questionID string) (*domain.Answer, error) {
	if mock.GetFunc == nil {
		panic("answerRepoMock.GetFunc: method is nil but answerRepo.Get was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ProfileID  uuid.UUID
		QuestionID string
	}{Ctx: ctx, ProfileID: profileID, QuestionID: questionID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, profileID, questionID)
}

func (mock *answerRepoMock) GetCalls() []struct {
	Ctx        context.Context
	ProfileID  uuid.UUID
	QuestionID string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *answerRepoMock) ListAnsweredIDs(ctx context.Context, profileID uuid.UUID) ([]string, error) {
	if mock.ListAnsweredIDsFunc == nil {
		panic("answerRepoMock.ListAnsweredIDsFunc: method is nil but answerRepo.ListAnsweredIDs was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProfileID uuid.UUID
	}{Ctx: ctx, ProfileID: profileID}
	mock.lockListAnsweredIDs.Lock()
	mock.calls.ListAnsweredIDs = append(mock.calls.ListAnsweredIDs, callInfo)
	mock.lockListAnsweredIDs.Unlock()
	return mock.ListAnsweredIDsFunc(ctx, profileID)
}

func (mock *answerRepoMock) ListAnsweredIDsCalls() []struct {
	Ctx       context.Context
	ProfileID uuid.UUID
} {
	mock.lockListAnsweredIDs.RLock()
	calls := mock.calls.ListAnsweredIDs
	mock.lockListAnsweredIDs.RUnlock()
	return calls
}

func (mock *answerRepoMock) Delete(ctx context.Context, profileID uuid.UUID, questionID string) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("answerRepoMock.DeleteFunc: method is nil but answerRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ProfileID  uuid.UUID
		QuestionID string
	}{Ctx: ctx, ProfileID: profileID, QuestionID: questionID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, profileID, questionID)
}

func (mock *answerRepoMock) DeleteCalls() []struct {
	Ctx        context.Context
	ProfileID  uuid.UUID
	QuestionID string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
