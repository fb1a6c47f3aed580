package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc          func(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.Session, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	GetActiveByHashFunc func(ctx context.Context, tokenHash string) (*domain.Session, error)
	RotateFunc          func(ctx context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) error
	RevokeFunc          func(ctx context.Context, id uuid.UUID) error
	DeleteExpiredFunc   func(ctx context.Context) (int, error)

	calls struct {
		Create []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			TokenHash string
			ExpiresAt time.Time
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetActiveByHash []struct {
			Ctx       context.Context
			TokenHash string
		}
		Rotate []struct {
			Ctx       context.Context
			ID        uuid.UUID
			TokenHash string
			ExpiresAt time.Time
		}
		Revoke []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		DeleteExpired []struct {
			Ctx context.Context
		}
	}
	lockCreate          sync.RWMutex
	lockGetByID         sync.RWMutex
	lockGetActiveByHash sync.RWMutex
	lockRotate          sync.RWMutex
	lockRevoke          sync.RWMutex
	lockDeleteExpired   sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.Session, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		TokenHash string
		ExpiresAt time.Time
	}{Ctx: ctx, UserID: userID, TokenHash: tokenHash, ExpiresAt: expiresAt}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, tokenHash, expiresAt)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *sessionRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetActiveByHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	if mock.GetActiveByHashFunc == nil {
		panic("sessionRepoMock.GetActiveByHashFunc: method is nil but sessionRepo.GetActiveByHash was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
	}{Ctx: ctx, TokenHash: tokenHash}
	mock.lockGetActiveByHash.Lock()
	mock.calls.GetActiveByHash = append(mock.calls.GetActiveByHash, callInfo)
	mock.lockGetActiveByHash.Unlock()
	return mock.GetActiveByHashFunc(ctx, tokenHash)
}

func (mock *sessionRepoMock) GetActiveByHashCalls() []struct {
	Ctx       context.Context
	TokenHash string
} {
	mock.lockGetActiveByHash.RLock()
	calls := mock.calls.GetActiveByHash
	mock.lockGetActiveByHash.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Rotate(ctx context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) error {
	if mock.RotateFunc == nil {
		panic("sessionRepoMock.RotateFunc: method is nil but sessionRepo.Rotate was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		TokenHash string
		ExpiresAt time.Time
	}{Ctx: ctx, ID: id, TokenHash: tokenHash, ExpiresAt: expiresAt}
	mock.lockRotate.Lock()
	mock.calls.Rotate = append(mock.calls.Rotate, callInfo)
	mock.lockRotate.Unlock()
	return mock.RotateFunc(ctx, id, tokenHash, expiresAt)
}

func (mock *sessionRepoMock) RotateCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	TokenHash string
	ExpiresAt time.Time
} {
	mock.lockRotate.RLock()
	calls := mock.calls.Rotate
	mock.lockRotate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Revoke(ctx context.Context, id uuid.UUID) error {
	if mock.RevokeFunc == nil {
		panic("sessionRepoMock.RevokeFunc: method is nil but sessionRepo.Revoke was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockRevoke.Lock()
	mock.calls.Revoke = append(mock.calls.Revoke, callInfo)
	mock.lockRevoke.Unlock()
	return mock.RevokeFunc(ctx, id)
}

func (mock *sessionRepoMock) RevokeCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockRevoke.RLock()
	calls := mock.calls.Revoke
	mock.lockRevoke.RUnlock()
	return calls
}

func (mock *sessionRepoMock) DeleteExpired(ctx context.Context) (int, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("sessionRepoMock.DeleteExpiredFunc: method is nil but sessionRepo.DeleteExpired was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDeleteExpired.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, callInfo)
	mock.lockDeleteExpired.Unlock()
	return mock.DeleteExpiredFunc(ctx)
}

func (mock *sessionRepoMock) DeleteExpiredCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteExpired.RLock()
	calls := mock.calls.DeleteExpired
	mock.lockDeleteExpired.RUnlock()
	return calls
}
