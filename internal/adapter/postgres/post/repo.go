// Package post implements the post store on PostgreSQL.
package post

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/mknhm1/itemproject/internal/adapter/postgres"
	"github.com/mknhm1/itemproject/internal/domain"
)

const table = "posts"

var columns = []string{
	"id", "user_id", "category_id", "title", "comment",
	"image1", "image2", "map_embed", "posted_at",
}

// row is the scan target for posts.
type row struct {
	ID         int64     `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	CategoryID int64     `db:"category_id"`
	Title      string    `db:"title"`
	Comment    string    `db:"comment"`
	Image1     string    `db:"image1"`
	Image2     string    `db:"image2"`
	MapEmbed   string    `db:"map_embed"`
	PostedAt   time.Time `db:"posted_at"`
}

func (r row) toDomain() *domain.Post {
	return &domain.Post{
		ID:         r.ID,
		UserID:     r.UserID,
		CategoryID: r.CategoryID,
		Title:      r.Title,
		Comment:    r.Comment,
		Image1:     r.Image1,
		Image2:     r.Image2,
		MapEmbed:   r.MapEmbed,
		PostedAt:   r.PostedAt.UTC(),
	}
}

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new post repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a post and returns it with the assigned ID.
// A zero PostedAt is filled in by the database.
// Returns domain.ErrNotFound if the category does not exist.
func (r *Repo) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	insert := postgres.Builder().
		Insert(table).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	if p.PostedAt.IsZero() {
		insert = insert.
			Columns("user_id", "category_id", "title", "comment", "image1", "image2", "map_embed").
			Values(p.UserID, p.CategoryID, p.Title, p.Comment, p.Image1, p.Image2, p.MapEmbed)
	} else {
		insert = insert.
			Columns("user_id", "category_id", "title", "comment", "image1", "image2", "map_embed", "posted_at").
			Values(p.UserID, p.CategoryID, p.Title, p.Comment, p.Image1, p.Image2, p.MapEmbed, p.PostedAt)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert post: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "insert post in category", p.CategoryID)
	}

	return out.toDomain(), nil
}

// GetByID returns a post by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	return r.get(ctx, id, "")
}

// GetByIDForUpdate is GetByID with a row lock held until the surrounding
// transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Post, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id int64, suffix string) (*domain.Post, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
	if suffix != "" {
		query = query.Suffix(suffix)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select post: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "post", id)
	}

	return out.toDomain(), nil
}

// List returns one page of posts in scope, newest first (posted_at, id).
// With a cursor it seeks past the cursor row; otherwise it skips
// page.Offset() rows.
func (r *Repo) List(ctx context.Context, scope domain.Scope, page domain.PageRequest) (*domain.Page, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("posted_at DESC", "id DESC").
		Limit(uint64(page.Size + 1))

	switch scope.Kind {
	case domain.ScopeCategory:
		query = query.Where(squirrel.Eq{"category_id": scope.CategoryID})
	case domain.ScopeOwner:
		query = query.Where(squirrel.Eq{"user_id": scope.OwnerID})
	}

	if c := page.Cursor; c != nil {
		query = query.Where(squirrel.Expr("(posted_at, id) < (?, ?)", c.PostedAt, c.ID))
	} else if off := page.Offset(); off > 0 {
		query = query.Offset(uint64(off))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list posts: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list posts %s: %w", scope, err)
	}

	posts := make([]*domain.Post, len(rows))
	for i := range rows {
		posts[i] = rows[i].toDomain()
	}

	return domain.NewPage(posts, page), nil
}

// Delete removes a post. Returns domain.ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete post: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "post", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %d: %w", id, domain.ErrNotFound)
	}

	return nil
}
