package gadget

import (
	"context"
	"fmt"

	"github.com/mknhm1/itemproject/internal/domain"
	"github.com/mknhm1/itemproject/pkg/ctxutil"
)

// ListPosts returns one page of posts, newest first, for the scope the
// route selects. Anonymous callers may list everything except their own page.
func (s *Service) ListPosts(ctx context.Context, input ListPostsInput) (*domain.Page, error) {
	scope, err := domain.ScopeFromRoute(input.Route, ctxutil.RequesterFromCtx(ctx))
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	req := domain.PageRequest{Size: s.pageSize, Number: max(input.Page, 1)}
	if input.Cursor != "" {
		c, err := domain.DecodeCursor(input.Cursor)
		if err != nil {
			return nil, err
		}
		req.Cursor = &c
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	page, err := s.posts.List(ctx, scope, req)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return page, nil
}
