package gadget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mknhm1/itemproject/internal/domain"
)

// GetPost returns a single post. Cache failures are logged and otherwise
// ignored.
func (s *Service) GetPost(ctx context.Context, input GetPostInput) (*domain.Post, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cached, hit, err := s.cache.Get(ctx, input.PostID)
	if err != nil {
		s.log.WarnContext(ctx, "post cache read failed",
			slog.Int64("post_id", input.PostID),
			slog.String("error", err.Error()),
		)
	}
	if hit {
		return cached, nil
	}

	post, err := s.posts.GetByID(ctx, input.PostID)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}

	if err := s.cache.Set(ctx, post); err != nil {
		s.log.WarnContext(ctx, "post cache write failed",
			slog.Int64("post_id", post.ID),
			slog.String("error", err.Error()),
		)
	}

	return post, nil
}
