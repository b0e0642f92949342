package seeder

import (
	"context"
	"sync"

	"github.com/mknhm1/itemproject/internal/domain"
	"github.com/mknhm1/itemproject/internal/service/gadget"
)

var _ postCreator = &postCreatorMock{}

type postCreatorMock struct {
	CreatePostFunc func(ctx context.Context, input gadget.CreatePostInput) (*domain.Post, error)

	calls struct {
		CreatePost []struct {
			Ctx   context.Context
			Input gadget.CreatePostInput
		}
	}
	lockCreatePost sync.RWMutex
}

func (mock *postCreatorMock) CreatePost(ctx context.Context, input gadget.CreatePostInput) (*domain.Post, error) {
	if mock.CreatePostFunc == nil {
		panic("postCreatorMock.CreatePostFunc: method is nil but postCreator.CreatePost was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input gadget.CreatePostInput
	}{Ctx: ctx, Input: input}
	mock.lockCreatePost.Lock()
	mock.calls.CreatePost = append(mock.calls.CreatePost, callInfo)
	mock.lockCreatePost.Unlock()
	return mock.CreatePostFunc(ctx, input)
}

func (mock *postCreatorMock) CreatePostCalls() []struct {
	Ctx   context.Context
	Input gadget.CreatePostInput
} {
	mock.lockCreatePost.RLock()
	calls := mock.calls.CreatePost
	mock.lockCreatePost.RUnlock()
	return calls
}
