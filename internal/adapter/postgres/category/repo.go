// Package category reads the seeded post categories from PostgreSQL.
package category

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/mknhm1/itemproject/internal/adapter/postgres"
	"github.com/mknhm1/itemproject/internal/domain"
)

type row struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// Repo provides read access to categories.
type Repo struct {
	db postgres.Querier
}

// New creates a new category repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns all categories ordered by ID.
func (r *Repo) List(ctx context.Context) ([]domain.Category, error) {
	sql, args, err := postgres.Builder().
		Select("id", "name").
		From("categories").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list categories: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	out := make([]domain.Category, len(rows))
	for i, r := range rows {
		out[i] = domain.Category{ID: r.ID, Name: r.Name}
	}
	return out, nil
}
