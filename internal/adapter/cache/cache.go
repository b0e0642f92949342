// Package cache keeps post details in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/mknhm1/itemproject/internal/config"
	"github.com/mknhm1/itemproject/internal/domain"
)

const keyPrefix = "post:"

// tombstone marks a deleted post. It blocks refills by readers that
// loaded the row before the delete committed.
const tombstone = "deleted"

type cachedPost struct {
	ID         int64     `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	CategoryID int64     `json:"category_id"`
	Title      string    `json:"title"`
	Comment    string    `json:"comment"`
	Image1     string    `json:"image1"`
	Image2     string    `json:"image2"`
	MapEmbed   string    `json:"map_embed"`
	PostedAt   time.Time `json:"posted_at"`
}

// PostCache stores posts as JSON under "post:<id>" with a fixed TTL.
// Deleted posts leave a tombstone for the same TTL; Set never overwrites
// an existing key, so a stale read cannot resurrect a deleted post.
type PostCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewClient creates a go-redis client from RedisConfig.
func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewPostCache wraps an existing client.
func NewPostCache(client *redis.Client, ttl time.Duration) *PostCache {
	return &PostCache{client: client, ttl: ttl}
}

func key(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}

// Get returns the cached post. A miss is (nil, false, nil).
func (c *PostCache) Get(ctx context.Context, id int64) (*domain.Post, bool, error) {
	raw, err := c.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key(id), err)
	}
	if string(raw) == tombstone {
		return nil, false, nil
	}

	var cp cachedPost
	if err := json.Unmarshal(raw, &cp); err != nil {
		return nil, false, fmt.Errorf("decode cached post %d: %w", id, err)
	}

	return &domain.Post{
		ID:         cp.ID,
		UserID:     cp.UserID,
		CategoryID: cp.CategoryID,
		Title:      cp.Title,
		Comment:    cp.Comment,
		Image1:     cp.Image1,
		Image2:     cp.Image2,
		MapEmbed:   cp.MapEmbed,
		PostedAt:   cp.PostedAt.UTC(),
	}, true, nil
}

// Set stores the post unless the key already holds a value or a tombstone.
// Posts are immutable, so a present value is never stale.
func (c *PostCache) Set(ctx context.Context, p *domain.Post) error {
	raw, err := json.Marshal(cachedPost{
		ID:         p.ID,
		UserID:     p.UserID,
		CategoryID: p.CategoryID,
		Title:      p.Title,
		Comment:    p.Comment,
		Image1:     p.Image1,
		Image2:     p.Image2,
		MapEmbed:   p.MapEmbed,
		PostedAt:   p.PostedAt,
	})
	if err != nil {
		return fmt.Errorf("encode post %d: %w", p.ID, err)
	}

	if err := c.client.SetNX(ctx, key(p.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key(p.ID), err)
	}
	return nil
}

// Delete replaces the entry with a tombstone. Deleting a post that was
// never cached is not an error.
func (c *PostCache) Delete(ctx context.Context, id int64) error {
	if err := c.client.Set(ctx, key(id), tombstone, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis tombstone %s: %w", key(id), err)
	}
	return nil
}

// Ping checks the connection.
func (c *PostCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
