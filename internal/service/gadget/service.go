package gadget

import (
	"context"
	"log/slog"
	"time"

	"github.com/mknhm1/itemproject/internal/domain"
)

type postStore interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Post, error)
	List(ctx context.Context, scope domain.Scope, page domain.PageRequest) (*domain.Page, error)
	Delete(ctx context.Context, id int64) error
}

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
}

// postCache is a read-through cache of post details. After Delete(id)
// returns, a later Set of the same id must not make the post visible again.
type postCache interface {
	Get(ctx context.Context, id int64) (*domain.Post, bool, error)
	Set(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id int64) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the post listing, submission, detail and deletion flows.
type Service struct {
	posts      postStore
	categories categoryRepo
	cache      postCache
	tx         txManager
	pageSize   int
	now        func() time.Time
	log        *slog.Logger
}

// NewService creates a new gadget Service. A nil cache disables caching;
// a non-positive pageSize falls back to domain.DefaultPageSize.
func NewService(
	log *slog.Logger,
	posts postStore,
	categories categoryRepo,
	cache postCache,
	tx txManager,
	pageSize int,
) *Service {
	if cache == nil {
		cache = noCache{}
	}
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &Service{
		posts:      posts,
		categories: categories,
		cache:      cache,
		tx:         tx,
		pageSize:   pageSize,
		now:        time.Now,
		log:        log.With("service", "gadget"),
	}
}

type noCache struct{}

func (noCache) Get(context.Context, int64) (*domain.Post, bool, error) { return nil, false, nil }
func (noCache) Set(context.Context, *domain.Post) error               { return nil }
func (noCache) Delete(context.Context, int64) error                   { return nil }
