package gadget

import (
	"context"
	"sync"

	"github.com/mknhm1/itemproject/internal/domain"
)

var _ postStore = &postStoreMock{}

type postStoreMock struct {
	CreateFunc           func(ctx context.Context, post *domain.Post) (*domain.Post, error)
	DeleteFunc           func(ctx context.Context, id int64) error
	GetByIDFunc          func(ctx context.Context, id int64) (*domain.Post, error)
	GetByIDForUpdateFunc func(ctx context.Context, id int64) (*domain.Post, error)
	ListFunc             func(ctx context.Context, scope domain.Scope, page domain.PageRequest) (*domain.Page, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Post *domain.Post
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  int64
		}
		List []struct {
			Ctx   context.Context
			Scope domain.Scope
			Page  domain.PageRequest
		}
	}
	lockCreate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockList             sync.RWMutex
}

func (mock *postStoreMock) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if mock.CreateFunc == nil {
		panic("postStoreMock.CreateFunc: method is nil but postStore.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Post *domain.Post
	}{Ctx: ctx, Post: post}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, post)
}

func (mock *postStoreMock) CreateCalls() []struct {
	Ctx  context.Context
	Post *domain.Post
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *postStoreMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("postStoreMock.DeleteFunc: method is nil but postStore.Delete was just called")
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

func (mock *postStoreMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *postStoreMock) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	if mock.GetByIDFunc == nil {
		panic("postStoreMock.GetByIDFunc: method is nil but postStore.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *postStoreMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *postStoreMock) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Post, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("postStoreMock.GetByIDForUpdateFunc: method is nil but postStore.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *postStoreMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *postStoreMock) List(ctx context.Context, scope domain.Scope, page domain.PageRequest) (*domain.Page, error) {
	if mock.ListFunc == nil {
		panic("postStoreMock.ListFunc: method is nil but postStore.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.Scope
		Page  domain.PageRequest
	}{Ctx: ctx, Scope: scope, Page: page}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, scope, page)
}

func (mock *postStoreMock) ListCalls() []struct {
	Ctx   context.Context
	Scope domain.Scope
	Page  domain.PageRequest
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
