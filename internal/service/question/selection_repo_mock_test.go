package question

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

var _ selectionRepo = &selectionRepoMock{}

type selectionRepoMock struct {
	ListSelectedFunc   func(ctx context.Context, profileID uuid.UUID) ([]domain.SelectedQuestion, error)
	AddSelectedFunc    func(ctx context.Context, profileID uuid.UUID, q domain.SelectedQuestion) error
	DeleteSelectedFunc func(ctx context.Context, profileID uuid.UUID, questionID string) (bool, error)
	ListCustomFunc     func(ctx context.Context, profileID uuid.UUID) ([]domain.CustomQuestion, error)
	AddCustomFunc      func(ctx context.Context, profileID uuid.UUID, q domain.CustomQuestion) error
	DeleteCustomFunc   func(ctx context.Context, profileID uuid.UUID, id string) (bool, error)

	calls struct {
		ListSelected []struct {
			Ctx       context.Context
			ProfileID uuid.UUID
		}
		AddSelected []struct {
			Ctx       context.Context
			ProfileID uuid.UUID
			Q         domain.SelectedQuestion
		}
		DeleteSelected []struct {
			Ctx        context.Context
			ProfileID  uuid.UUID
			QuestionID string
		}
		ListCustom []struct {
			Ctx       context.Context
			ProfileID uuid.UUID
		}
		AddCustom []struct {
			Ctx       context.Context
			ProfileID uuid.UUID
			Q         domain.CustomQuestion
		}
		DeleteCustom []struct {
			Ctx       context.Context
			ProfileID uuid.UUID
			ID        string
		}
	}
	lockListSelected   sync.RWMutex
	lockAddSelected    sync.RWMutex
	lockDeleteSelected sync.RWMutex
	lockListCustom     sync.RWMutex
	lockAddCustom      sync.RWMutex
	lockDeleteCustom   sync.RWMutex
}

func (mock *selectionRepoMock) ListSelected(ctx context.Context, profileID uuid.UUID) ([]domain.SelectedQuestion, error) {
	if mock.ListSelectedFunc == nil {
		panic("selectionRepoMock.ListSelectedFunc: method is nil but selectionRepo.ListSelected was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProfileID uuid.UUID
	}{Ctx: ctx, ProfileID: profileID}
	mock.lockListSelected.Lock()
	mock.calls.ListSelected = append(mock.calls.ListSelected, callInfo)
	mock.lockListSelected.Unlock()
	return mock.ListSelectedFunc(ctx, profileID)
}

func (mock *selectionRepoMock) ListSelectedCalls() []struct {
	Ctx       context.Context
	ProfileID uuid.UUID
} {
	mock.lockListSelected.RLock()
	calls := mock.calls.ListSelected
	mock.lockListSelected.RUnlock()
	return calls
}

func (mock *selectionRepoMock) AddSelected(ctx context.Context, profileID uuid.UUID, q domain.SelectedQuestion) error {
	if mock.AddSelectedFunc == nil {
		panic("selectionRepoMock.AddSelectedFunc: method is nil but selectionRepo.AddSelected was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProfileID uuid.UUID
		Q         domain.SelectedQuestion
	}{Ctx: ctx, ProfileID: profileID, Q: q}
	mock.lockAddSelected.Lock()
	mock.calls.AddSelected = append(mock.calls.AddSelected, callInfo)
	mock.lockAddSelected.Unlock()
	return mock.AddSelectedFunc(ctx, profileID, q)
}

func (mock *selectionRepoMock) AddSelectedCalls() []struct {
	Ctx       context.Context
	ProfileID uuid.UUID
	Q         domain.SelectedQuestion
} {
	mock.lockAddSelected.RLock()
	calls := mock.calls.AddSelected
	mock.lockAddSelected.RUnlock()
	return calls
}

func (mock *selectionRepoMock) DeleteSelected(ctx context.Context, profileID uuid.UUID, questionID string) (bool, error) {
	if mock.DeleteSelectedFunc == nil {
		panic("selectionRepoMock.DeleteSelectedFunc: method is nil but selectionRepo.DeleteSelected was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ProfileID  uuid.UUID
		QuestionID string
	}{Ctx: ctx, ProfileID: profileID, QuestionID: questionID}
	mock.lockDeleteSelected.Lock()
	mock.calls.DeleteSelected = append(mock.calls.DeleteSelected, callInfo)
	mock.lockDeleteSelected.Unlock()
	return mock.DeleteSelectedFunc(ctx, profileID, questionID)
}

func (mock *selectionRepoMock) DeleteSelectedCalls() []struct {
	Ctx        context.Context
	ProfileID  uuid.UUID
	QuestionID string
} {
	mock.lockDeleteSelected.RLock()
	calls := mock.calls.DeleteSelected
	mock.lockDeleteSelected.RUnlock()
	return calls
}

func (mock *selectionRepoMock) ListCustom(ctx context.Context, profileID uuid.UUID) ([]domain.CustomQuestion, error) {
	if mock.ListCustomFunc == nil {
		panic("selectionRepoMock.ListCustomFunc: method is nil but selectionRepo.ListCustom was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProfileID uuid.UUID
	}{Ctx: ctx, ProfileID: profileID}
	mock.lockListCustom.Lock()
	mock.calls.ListCustom = append(mock.calls.ListCustom, callInfo)
	mock.lockListCustom.Unlock()
	return mock.ListCustomFunc(ctx, profileID)
}

func (mock *selectionRepoMock) ListCustomCalls() []struct {
	Ctx       context.Context
	ProfileID uuid.UUID
} {
	mock.lockListCustom.RLock()
	calls := mock.calls.ListCustom
	mock.lockListCustom.RUnlock()
	return calls
}

func (mock *selectionRepoMock) AddCustom(ctx context.Context, profileID uuid.UUID, q domain.CustomQuestion) error {
	if mock.AddCustomFunc == nil {
		panic("selectionRepoMock.AddCustomFunc: method is nil but selectionRepo.AddCustom was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProfileID uuid.UUID
		Q         domain.CustomQuestion
	}{Ctx: ctx, ProfileID: profileID, Q: q}
	mock.lockAddCustom.Lock()
	mock.calls.AddCustom = append(mock.calls.AddCustom, callInfo)
	mock.lockAddCustom.Unlock()
	return mock.AddCustomFunc(ctx, profileID, q)
}

func (mock *selectionRepoMock) AddCustomCalls() []struct {
	Ctx       context.Context
	ProfileID uuid.UUID
	Q         domain.CustomQuestion
} {
	mock.lockAddCustom.RLock()
	calls := mock.calls.AddCustom
	mock.lockAddCustom.RUnlock()
	return calls
}

func (mock *selectionRepoMock) DeleteCustom(ctx context.Context, profileID uuid.UUID, id string) (bool, error) {
	if mock.DeleteCustomFunc == nil {
		panic("selectionRepoMock.DeleteCustomFunc: method is nil but selectionRepo.DeleteCustom was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProfileID uuid.UUID
		ID        string
	}{Ctx: ctx, ProfileID: profileID, ID: id}
	mock.lockDeleteCustom.Lock()
	mock.calls.DeleteCustom = append(mock.calls.DeleteCustom, callInfo)
	mock.lockDeleteCustom.Unlock()
	return mock.DeleteCustomFunc(ctx, profileID, id)
}

func (mock *selectionRepoMock) DeleteCustomCalls() []struct {
	Ctx       context.Context
	ProfileID uuid.UUID
	ID        string
} {
	mock.lockDeleteCustom.RLock()
	calls := mock.calls.DeleteCustom
	mock.lockDeleteCustom.RUnlock()
	return calls
}
