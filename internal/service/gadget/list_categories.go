package gadget

import (
	"context"
	"fmt"

	"github.com/mknhm1/itemproject/internal/domain"
)

// ListCategories returns every category posts can be filed under.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
