package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/internal/service/answer"
)

var _ answerService = &answerServiceMock{}

type answerServiceMock struct {
	ListAnswersFunc func(ctx context.Context, profileID uuid.UUID) ([]domain.Answer, error)
	GetAnswerFunc   func(ctx context.Context, profileID uuid.UUID, questionID string) (*domain.Answer, error)
	SaveAnswerFunc  func(ctx context.Context, input answer.SaveAnswerInput) (answer.SaveResult, error)
	SummaryFunc     func(ctx context.Context, profileID uuid.UUID) (*answer.Summary, error)

	calls struct {
		ListAnswers []struct {
			Ctx       context.Context
			ProfileID uuid.UUID
		}
		GetAnswer []struct {
			Ctx        context.Context
			ProfileID  uuid.UUID
			QuestionID string
		}
		SaveAnswer []struct {
			Ctx   context.Context
			Input answer.SaveAnswerInput
		}
		Summary []struct {
			Ctx       context.Context
			ProfileID uuid.UUID
		}
	}
	lockListAnswers sync.RWMutex
	lockGetAnswer   sync.RWMutex
	lockSaveAnswer  sync.RWMutex
	lockSummary     sync.RWMutex
}

func (mock *answerServiceMock) ListAnswers(ctx context.Context, profileID uuid.UUID) ([]domain.Answer, error) {
	if mock.ListAnswersFunc == nil {
		panic("answerServiceMock.ListAnswersFunc: method is nil but answerService.ListAnswers was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProfileID uuid.UUID
	}{Ctx: ctx, ProfileID: profileID}
	mock.lockListAnswers.Lock()
	mock.calls.ListAnswers = append(mock.calls.ListAnswers, callInfo)
	mock.lockListAnswers.Unlock()
	return mock.ListAnswersFunc(ctx, profileID)
}

func (mock *answerServiceMock) ListAnswersCalls() []struct {
	Ctx       context.Context
	ProfileID uuid.UUID
} {
	mock.lockListAnswers.RLock()
	calls := mock.calls.ListAnswers
	mock.lockListAnswers.RUnlock()
	return calls
}

func (mock *answerServiceMock) GetAnswer(ctx context.Context, profileID uuid.UUID, questionID string) (*domain.Answer, error) {
	if mock.GetAnswerFunc == nil {
		panic("answerServiceMock.GetAnswerFunc: method is nil but answerService.GetAnswer was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ProfileID  uuid.UUID
		QuestionID string
	}{Ctx: ctx, ProfileID: profileID, QuestionID: questionID}
	mock.lockGetAnswer.Lock()
	mock.calls.GetAnswer = append(mock.calls.GetAnswer, callInfo)
	mock.lockGetAnswer.Unlock()
	return mock.GetAnswerFunc(ctx, profileID, questionID)
}

func (mock *answerServiceMock) GetAnswerCalls() []struct {
	Ctx        context.Context
	ProfileID  uuid.UUID
	QuestionID string
} {
	mock.lockGetAnswer.RLock()
	calls := mock.calls.GetAnswer
	mock.lockGetAnswer.RUnlock()
	return calls
}

func (mock *answerServiceMock) SaveAnswer(ctx context.Context, input answer.SaveAnswerInput) (answer.SaveResult, error) {
	if mock.SaveAnswerFunc == nil {
		panic("answerServiceMock.SaveAnswerFunc: method is nil but answerService.SaveAnswer was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input answer.SaveAnswerInput
	}{Ctx: ctx, Input: input}
	mock.lockSaveAnswer.Lock()
	mock.calls.SaveAnswer = append(mock.calls.SaveAnswer, callInfo)
	mock.lockSaveAnswer.Unlock()
	return mock.SaveAnswerFunc(ctx, input)
}

func (mock *answerServiceMock) SaveAnswerCalls() []struct {
	Ctx   context.Context
	Input answer.SaveAnswerInput
} {
	mock.lockSaveAnswer.RLock()
	calls := mock.calls.SaveAnswer
	mock.lockSaveAnswer.RUnlock()
	return calls
}

func (mock *answerServiceMock) Summary(ctx context.Context, profileID uuid.UUID) (*answer.Summary, error) {
	if mock.SummaryFunc == nil {
		panic("answerServiceMock.SummaryFunc: method is nil but answerService.Summary was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProfileID uuid.UUID
	}{Ctx: ctx, ProfileID: profileID}
	mock.lockSummary.Lock()
	mock.calls.Summary = append(mock.calls.Summary, callInfo)
	mock.lockSummary.Unlock()
	return mock.SummaryFunc(ctx, profileID)
}

func (mock *answerServiceMock) SummaryCalls() []struct {
	Ctx       context.Context
	ProfileID uuid.UUID
} {
	mock.lockSummary.RLock()
	calls := mock.calls.Summary
	mock.lockSummary.RUnlock()
	return calls
}
