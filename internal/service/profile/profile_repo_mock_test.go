package profile

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByIDFunc    func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Profile, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error)
	CreateFunc     func(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	UpdateFunc     func(ctx context.Context, userID uuid.UUID, id uuid.UUID, name *string, rel *domain.Relationship) (*domain.Profile, error)
	SetPhotoFunc   func(ctx context.Context, userID uuid.UUID, id uuid.UUID, url *string, key *string) (*domain.Profile, error)
	DeleteFunc     func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			P   *domain.Profile
		}
		Update []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
			Name   *string
			Rel    *domain.Relationship
		}
		SetPhoto []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
			Url    *string
			Key    *string
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockGetByID    sync.RWMutex
	lockListByUser sync.RWMutex
	lockCreate     sync.RWMutex
	lockUpdate     sync.RWMutex
	lockSetPhoto   sync.RWMutex
	lockDelete     sync.RWMutex
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

func (mock *profileRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error) {
	if mock.ListByUserFunc == nil {
		panic("profileRepoMock.ListByUserFunc: method is nil but profileRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *profileRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *profileRepoMock) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	if mock.CreateFunc == nil {
		panic("profileRepoMock.CreateFunc: method is nil but profileRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Profile
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *profileRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Profile
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *profileRepoMock) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, name *string, rel *domain.Relationship) (*domain.Profile, error) {
	if mock.UpdateFunc == nil {
		panic("profileRepoMock.UpdateFunc: method is nil but profileRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
		Name   *string
		Rel    *domain.Relationship
	}{Ctx: ctx, UserID: userID, ID: id, Name: name, Rel: rel}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, id, name, rel)
}

func (mock *profileRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
	Name   *string
	Rel    *domain.Relationship
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *profileRepoMock) SetPhoto(ctx context.Context, userID uuid.UUID, id uuid.UUID, url *string, key *string) (*domain.Profile, error) {
	if mock.SetPhotoFunc == nil {
		panic("profileRepoMock.SetPhotoFunc: method is nil but profileRepo.SetPhoto was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
		Url    *string
		Key    *string
	}{Ctx: ctx, UserID: userID, ID: id, Url: url, Key: key}
	mock.lockSetPhoto.Lock()
	mock.calls.SetPhoto = append(mock.calls.SetPhoto, callInfo)
	mock.lockSetPhoto.Unlock()
	return mock.SetPhotoFunc(ctx, userID, id, url, key)
}

func (mock *profileRepoMock) SetPhotoCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
	Url    *string
	Key    *string
} {
	mock.lockSetPhoto.RLock()
	calls := mock.calls.SetPhoto
	mock.lockSetPhoto.RUnlock()
	return calls
}

func (mock *profileRepoMock) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("profileRepoMock.DeleteFunc: method is nil but profileRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *profileRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
