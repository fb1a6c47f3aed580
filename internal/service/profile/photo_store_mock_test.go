package profile

import (
	"context"
	"io"
	"sync"
)

var _ photoStore = &photoStoreMock{}

type photoStoreMock struct {
	PutFunc    func(ctx context.Context, key string, contentType string, size int64, body io.Reader) (string, error)
	DeleteFunc func(ctx context.Context, key string) error

	calls struct {
		Put []struct {
			Ctx         context.Context
			Key         string
			ContentType string
			Size        int64
			Body        io.Reader
		}
		Delete []struct {
			Ctx context.Context
			Key string
		}
	}
	lockPut    sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *photoStoreMock) Put(ctx context.Context, key string, contentType string, size int64, body io.Reader) (string, error) {
	if mock.PutFunc == nil {
		panic("photoStoreMock.PutFunc: method is nil but photoStore.Put was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Key         string
		ContentType string
		Size        int64
		Body        io.Reader
	}{Ctx: ctx, Key: key, ContentType: contentType, Size: size, Body: body}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, key, contentType, size, body)
}

func (mock *photoStoreMock) PutCalls() []struct {
	Ctx         context.Context
	Key         string
	ContentType string
	Size        int64
	Body        io.Reader
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

func (mock *photoStoreMock) Delete(ctx context.Context, key string) error {
	if mock.DeleteFunc == nil {
		panic("photoStoreMock.DeleteFunc: method is nil but photoStore.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, key)
}

func (mock *photoStoreMock) DeleteCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
