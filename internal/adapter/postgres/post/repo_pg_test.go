package post_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	postgres "github.com/mknhm1/itemproject/internal/adapter/postgres"
	"github.com/mknhm1/itemproject/internal/adapter/postgres/post"
	"github.com/mknhm1/itemproject/internal/adapter/postgres/testhelper"
	"github.com/mknhm1/itemproject/internal/domain"
)

func TestRepo_PG_CreateGetDelete(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := post.New(pool)
	ctx := context.Background()
	cat := testhelper.SeedCategory(t, pool)

	created, err := repo.Create(ctx, &domain.Post{
		UserID:     uuid.New(),
		CategoryID: cat.ID,
		Title:      "Walkman",
		Comment:    "still works",
		Image1:     "https://img.example.com/w.jpg",
		PostedAt:   time.Now().UTC().Truncate(time.Microsecond),
	})
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Empty(t, got.Image2)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), domain.ErrNotFound)
}

func TestRepo_PG_Create_UnknownCategory(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := post.New(pool)

	_, err := repo.Create(context.Background(), &domain.Post{
		UserID:     uuid.New(),
		CategoryID: 999_999,
		Title:      "x",
		Comment:    "y",
		Image1:     "z",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_PG_List_PagesReproduceOrdering(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := post.New(pool)
	ctx := context.Background()
	cat := testhelper.SeedCategory(t, pool)
	owner := uuid.New()

	// Two posts share a timestamp so the id tiebreak is exercised.
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	var want []int64
	for i := 0; i < 7; i++ {
		at := base.Add(time.Duration(i/2) * time.Minute)
		p := testhelper.SeedPost(t, pool, owner, cat.ID, at)
		want = append([]int64{p.ID}, want...)
	}

	for _, mode := range []string{"cursor", "offset"} {
		t.Run(mode, func(t *testing.T) {
			var got []int64
			req := domain.PageRequest{Size: 3, Number: 1}
			for n := 1; ; n++ {
				page, err := repo.List(ctx, domain.ByCategory(cat.ID), req)
				require.NoError(t, err)
				for _, p := range page.Posts {
					got = append(got, p.ID)
				}
				if !page.HasNext {
					break
				}
				if mode == "cursor" {
					c, err := domain.DecodeCursor(page.NextCursor)
					require.NoError(t, err)
					req = domain.PageRequest{Size: 3, Cursor: &c}
				} else {
					req = domain.PageRequest{Size: 3, Number: n + 1}
				}
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestRepo_PG_GetByIDForUpdate_InTx(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := post.New(pool)
	tm := postgres.NewTxManager(pool)
	cat := testhelper.SeedCategory(t, pool)
	p := testhelper.SeedPost(t, pool, uuid.New(), cat.ID, time.Now())

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		locked, err := repo.GetByIDForUpdate(ctx, p.ID)
		if err != nil {
			return err
		}
		return repo.Delete(ctx, locked.ID)
	})
	require.NoError(t, err)

	_, err = repo.GetByID(context.Background(), p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
