package gadget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mknhm1/itemproject/internal/domain"
	"github.com/mknhm1/itemproject/pkg/ctxutil"
)

// DeletePost removes a post owned by the authenticated user.
// The post is loaded and locked, ownership is checked, then it is deleted.
func (s *Service) DeletePost(ctx context.Context, input DeletePostInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		post, err := s.posts.GetByIDForUpdate(txCtx, input.PostID)
		if err != nil {
			return fmt.Errorf("get post: %w", err)
		}

		if !domain.CanMutate(userID, post) {
			return domain.ErrForbidden
		}

		if err := s.posts.Delete(txCtx, input.PostID); err != nil {
			return fmt.Errorf("delete post: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, input.PostID); err != nil {
		s.log.WarnContext(ctx, "post cache evict failed",
			slog.Int64("post_id", input.PostID),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "post deleted",
		slog.String("user_id", userID.String()),
		slog.Int64("post_id", input.PostID),
	)

	return nil
}
