// Package memory is a process-local post store for development and tests.
// Data is lost on restart.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mknhm1/itemproject/internal/domain"
)

// DefaultCategories mirrors the categories seeded by the SQL migrations.
var DefaultCategories = []domain.Category{
	{ID: 1, Name: "Smartphone"},
	{ID: 2, Name: "PC"},
	{ID: 3, Name: "Audio"},
	{ID: 4, Name: "Camera"},
	{ID: 5, Name: "Wearable"},
	{ID: 6, Name: "Other"},
}

// Store keeps posts in a map guarded by a RWMutex.
type Store struct {
	mu         sync.RWMutex
	posts      map[int64]domain.Post
	nextID     int64
	categories []domain.Category
	now        func() time.Time
}

// NewStore creates an empty store with the given categories.
// A nil slice means DefaultCategories.
func NewStore(categories []domain.Category) *Store {
	if categories == nil {
		categories = DefaultCategories
	}
	return &Store{
		posts:      make(map[int64]domain.Post),
		nextID:     1,
		categories: append([]domain.Category(nil), categories...),
		now:        time.Now,
	}
}

func (s *Store) hasCategory(id int64) bool {
	for _, c := range s.categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Create stores a copy of p with a fresh ID.
func (s *Store) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasCategory(p.CategoryID) {
		return nil, fmt.Errorf("insert post in category %d: %w", p.CategoryID, domain.ErrNotFound)
	}

	stored := *p
	stored.ID = s.nextID
	if stored.PostedAt.IsZero() {
		stored.PostedAt = s.now()
	}
	stored.PostedAt = stored.PostedAt.UTC().Truncate(time.Microsecond)
	s.nextID++
	s.posts[stored.ID] = stored

	out := stored
	return &out, nil
}

// GetByID returns a copy of the post or domain.ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, fmt.Errorf("post %d: %w", id, domain.ErrNotFound)
	}
	return &p, nil
}

// GetByIDForUpdate is GetByID; TxManager already serializes writers.
func (s *Store) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Post, error) {
	return s.GetByID(ctx, id)
}

// List returns one page of posts in scope, newest first.
func (s *Store) List(ctx context.Context, scope domain.Scope, page domain.PageRequest) (*domain.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	matched := make([]*domain.Post, 0, len(s.posts))
	for _, p := range s.posts {
		if scope.Matches(&p) {
			cp := p
			matched = append(matched, &cp)
		}
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[j].OlderThan(matched[i].PostedAt, matched[i].ID)
	})

	start := 0
	if c := page.Cursor; c != nil {
		start = sort.Search(len(matched), func(i int) bool {
			return matched[i].OlderThan(c.PostedAt, c.ID)
		})
	} else {
		start = min(max(page.Offset(), 0), len(matched))
	}

	end := min(start+page.Size+1, len(matched))
	return domain.NewPage(matched[start:end], page), nil
}

// Delete removes the post or returns domain.ErrNotFound.
func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return fmt.Errorf("post %d: %w", id, domain.ErrNotFound)
	}
	delete(s.posts, id)
	return nil
}

// Count returns the number of stored posts.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

// Categories returns a category repository backed by this store.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{store: s} }

// CategoryRepo lists the store's categories.
type CategoryRepo struct {
	store *Store
}

// List returns the configured categories ordered by ID.
func (r *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := append([]domain.Category(nil), r.store.categories...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// TxManager serializes callbacks. There is no rollback: a failed callback
// leaves whatever it already wrote.
type TxManager struct {
	mu sync.Mutex
}

// NewTxManager creates a new TxManager.
func NewTxManager() *TxManager { return &TxManager{} }

// RunInTx runs fn while holding the transaction lock.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}
