package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mknhm1/itemproject/internal/domain"
)

// SeedCategory inserts a category with a unique name.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()

	c := domain.Category{Name: "category-" + uuid.New().String()[:8]}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`, c.Name,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}
	return c
}

// SeedPost inserts a post owned by userID in categoryID at postedAt.
func SeedPost(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, categoryID int64, postedAt time.Time) domain.Post {
	t.Helper()

	p := domain.Post{
		UserID:     userID,
		CategoryID: categoryID,
		Title:      "post-" + uuid.New().String()[:8],
		Comment:    "seeded",
		Image1:     "https://img.example.com/1.jpg",
		PostedAt:   postedAt.UTC().Truncate(time.Microsecond),
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO posts (user_id, category_id, title, comment, image1, posted_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		p.UserID, p.CategoryID, p.Title, p.Comment, p.Image1, p.PostedAt,
	).Scan(&p.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedPost: %v", err)
	}
	return p
}
