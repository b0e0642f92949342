package gadget

import (
	"strings"
	"unicode/utf8"

	"github.com/mknhm1/itemproject/internal/domain"
)

// Field length limits, counted in runes.
const (
	MaxTitleLen    = 200
	MaxCommentLen  = 2000
	MaxImageRefLen = 500
	MaxMapEmbedLen = 2000
)

// CreatePostInput holds the parameters for submitting a post.
type CreatePostInput struct {
	CategoryID int64
	Title      string
	Comment    string
	Image1     string
	Image2     string
	MapEmbed   string
}

// Validate checks all fields and collects all errors.
func (i CreatePostInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(title) > MaxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	comment := strings.TrimSpace(i.Comment)
	if comment == "" {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "required"})
	} else if utf8.RuneCountInString(comment) > MaxCommentLen {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "max 2000 characters"})
	}

	if i.CategoryID == 0 {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	} else if i.CategoryID < 0 {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "must be positive"})
	}

	image1 := strings.TrimSpace(i.Image1)
	if image1 == "" {
		errs = append(errs, domain.FieldError{Field: "image1", Message: "required"})
	} else if utf8.RuneCountInString(image1) > MaxImageRefLen {
		errs = append(errs, domain.FieldError{Field: "image1", Message: "max 500 characters"})
	}

	if utf8.RuneCountInString(strings.TrimSpace(i.Image2)) > MaxImageRefLen {
		errs = append(errs, domain.FieldError{Field: "image2", Message: "max 500 characters"})
	}

	if utf8.RuneCountInString(strings.TrimSpace(i.MapEmbed)) > MaxMapEmbedLen {
		errs = append(errs, domain.FieldError{Field: "map_embed", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListPostsInput holds the parameters for listing posts.
// Route selects the scope; Cursor, when set, wins over Page.
type ListPostsInput struct {
	Route  domain.RouteParams
	Page   int
	Cursor string
}

// Validate checks all fields and collects all errors.
func (i ListPostsInput) Validate() error {
	if i.Page < 0 {
		return domain.NewValidationError("page", "must be positive")
	}
	return nil
}

// GetPostInput holds the parameters for reading one post.
type GetPostInput struct {
	PostID int64
}

// Validate checks all fields and collects all errors.
func (i GetPostInput) Validate() error {
	if i.PostID <= 0 {
		return domain.NewValidationError("post_id", "required")
	}
	return nil
}

// DeletePostInput holds the parameters for deleting a post.
type DeletePostInput struct {
	PostID int64
}

// Validate checks all fields and collects all errors.
func (i DeletePostInput) Validate() error {
	if i.PostID <= 0 {
		return domain.NewValidationError("post_id", "required")
	}
	return nil
}
