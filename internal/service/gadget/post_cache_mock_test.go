package gadget

import (
	"context"
	"sync"

	"github.com/mknhm1/itemproject/internal/domain"
)

var _ postCache = &postCacheMock{}

type postCacheMock struct {
	DeleteFunc func(ctx context.Context, id int64) error
	GetFunc    func(ctx context.Context, id int64) (*domain.Post, bool, error)
	SetFunc    func(ctx context.Context, post *domain.Post) error

	calls struct {
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		Get []struct {
			Ctx context.Context
			ID  int64
		}
		Set []struct {
			Ctx  context.Context
			Post *domain.Post
		}
	}
	lockDelete sync.RWMutex
	lockGet    sync.RWMutex
	lockSet    sync.RWMutex
}

func (mock *postCacheMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("postCacheMock.DeleteFunc: method is nil but postCache.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *postCacheMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *postCacheMock) Get(ctx context.Context, id int64) (*domain.Post, bool, error) {
	if mock.GetFunc == nil {
		panic("postCacheMock.GetFunc: method is nil but postCache.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *postCacheMock) GetCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *postCacheMock) Set(ctx context.Context, post *domain.Post) error {
	if mock.SetFunc == nil {
		panic("postCacheMock.SetFunc: method is nil but postCache.Set was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Post *domain.Post
	}{Ctx: ctx, Post: post}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, post)
}

func (mock *postCacheMock) SetCalls() []struct {
	Ctx  context.Context
	Post *domain.Post
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}
