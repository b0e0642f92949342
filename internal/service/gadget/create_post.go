package gadget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mknhm1/itemproject/internal/domain"
	"github.com/mknhm1/itemproject/pkg/ctxutil"
)

// CreatePost stores a new post owned by the authenticated user.
func (s *Service) CreatePost(ctx context.Context, input CreatePostInput) (*domain.Post, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	post, err := s.posts.Create(ctx, &domain.Post{
		UserID:     userID,
		CategoryID: input.CategoryID,
		Title:      strings.TrimSpace(input.Title),
		Comment:    strings.TrimSpace(input.Comment),
		Image1:     strings.TrimSpace(input.Image1),
		Image2:     strings.TrimSpace(input.Image2),
		MapEmbed:   strings.TrimSpace(input.MapEmbed),
		PostedAt:   s.now().UTC().Truncate(time.Microsecond),
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewValidationError("category_id", "unknown category")
	}
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.log.InfoContext(ctx, "post created",
		slog.String("user_id", userID.String()),
		slog.Int64("post_id", post.ID),
		slog.Int64("category_id", post.CategoryID),
	)

	return post, nil
}
