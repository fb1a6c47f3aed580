package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/internal/service/profile"
)

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	CreateFunc      func(ctx context.Context, input profile.CreateProfileInput) (*domain.Profile, error)
	ListFunc        func(ctx context.Context) ([]domain.Profile, error)
	GetFunc         func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	UpdateFunc      func(ctx context.Context, input profile.UpdateProfileInput) (*domain.Profile, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
	UploadPhotoFunc func(ctx context.Context, input profile.UploadPhotoInput) (*domain.Profile, error)
	RemovePhotoFunc func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input profile.CreateProfileInput
		}
		List []struct {
			Ctx context.Context
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx   context.Context
			Input profile.UpdateProfileInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UploadPhoto []struct {
			Ctx   context.Context
			Input profile.UploadPhotoInput
		}
		RemovePhoto []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockList        sync.RWMutex
	lockGet         sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
	lockUploadPhoto sync.RWMutex
	lockRemovePhoto sync.RWMutex
}

func (mock *profileServiceMock) Create(ctx context.Context, input profile.CreateProfileInput) (*domain.Profile, error) {
	if mock.CreateFunc == nil {
		panic("profileServiceMock.CreateFunc: method is nil but profileService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input profile.CreateProfileInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *profileServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input profile.CreateProfileInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *profileServiceMock) List(ctx context.Context) ([]domain.Profile, error) {
	if mock.ListFunc == nil {
		panic("profileServiceMock.ListFunc: method is nil but profileService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *profileServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *profileServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if mock.GetFunc == nil {
		panic("profileServiceMock.GetFunc: method is nil but profileService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *profileServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *profileServiceMock) Update(ctx context.Context, input profile.UpdateProfileInput) (*domain.Profile, error) {
	if mock.UpdateFunc == nil {
		panic("profileServiceMock.UpdateFunc: method is nil but profileService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input profile.UpdateProfileInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *profileServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input profile.UpdateProfileInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *profileServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("profileServiceMock.DeleteFunc: method is nil but profileService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *profileServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *profileServiceMock) UploadPhoto(ctx context.Context, input profile.UploadPhotoInput) (*domain.Profile, error) {
	if mock.UploadPhotoFunc == nil {
		panic("profileServiceMock.UploadPhotoFunc: method is nil but profileService.UploadPhoto was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input profile.UploadPhotoInput
	}{Ctx: ctx, Input: input}
	mock.lockUploadPhoto.Lock()
	mock.calls.UploadPhoto = append(mock.calls.UploadPhoto, callInfo)
	mock.lockUploadPhoto.Unlock()
	return mock.UploadPhotoFunc(ctx, input)
}

func (mock *profileServiceMock) UploadPhotoCalls() []struct {
	Ctx   context.Context
	Input profile.UploadPhotoInput
} {
	mock.lockUploadPhoto.RLock()
	calls := mock.calls.UploadPhoto
	mock.lockUploadPhoto.RUnlock()
	return calls
}

func (mock *profileServiceMock) RemovePhoto(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if mock.RemovePhotoFunc == nil {
		panic("profileServiceMock.RemovePhotoFunc: method is nil but profileService.RemovePhoto was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockRemovePhoto.Lock()
	mock.calls.RemovePhoto = append(mock.calls.RemovePhoto, callInfo)
	mock.lockRemovePhoto.Unlock()
	return mock.RemovePhotoFunc(ctx, id)
}

func (mock *profileServiceMock) RemovePhotoCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockRemovePhoto.RLock()
	calls := mock.calls.RemovePhoto
	mock.lockRemovePhoto.RUnlock()
	return calls
}
