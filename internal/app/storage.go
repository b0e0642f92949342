package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mknhm1/itemproject/internal/adapter/memory"
	"github.com/mknhm1/itemproject/internal/adapter/postgres"
	"github.com/mknhm1/itemproject/internal/adapter/postgres/category"
	"github.com/mknhm1/itemproject/internal/adapter/postgres/post"
	"github.com/mknhm1/itemproject/internal/config"
	"github.com/mknhm1/itemproject/internal/domain"
)

type postStore interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Post, error)
	List(ctx context.Context, scope domain.Scope, page domain.PageRequest) (*domain.Page, error)
	Delete(ctx context.Context, id int64) error
}

type categoryLister interface {
	List(ctx context.Context) ([]domain.Category, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// storage is the post store selected by configuration.
type storage struct {
	posts      postStore
	categories categoryLister
	tx         txRunner
	health     pinger
	close      func()
}

func openStorage(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*storage, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		log.Warn("using in-memory post store, data is lost on restart")
		store := memory.NewStore(nil)
		return &storage{
			posts:      store,
			categories: store.Categories(),
			tx:         memory.NewTxManager(),
			health:     store,
			close:      func() {},
		}, nil

	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Info("connected to database",
			slog.Int("max_conns", int(cfg.MaxConns)),
		)
		return &storage{
			posts:      post.New(pool),
			categories: category.New(pool),
			tx:         postgres.NewTxManager(pool),
			health:     pool,
			close:      pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown database backend %q", cfg.Backend)
	}
}
