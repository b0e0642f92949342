package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/mknhm1/itemproject/internal/domain"
	"github.com/mknhm1/itemproject/internal/service/gadget"
)

type gadgetService interface {
	ListPosts(ctx context.Context, input gadget.ListPostsInput) (*domain.Page, error)
	GetPost(ctx context.Context, input gadget.GetPostInput) (*domain.Post, error)
	CreatePost(ctx context.Context, input gadget.CreatePostInput) (*domain.Post, error)
	DeletePost(ctx context.Context, input gadget.DeletePostInput) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// PostHandler serves the post and category endpoints.
type PostHandler struct {
	svc gadgetService
	log *slog.Logger
}

// NewPostHandler creates a PostHandler.
func NewPostHandler(svc gadgetService, logger *slog.Logger) *PostHandler {
	return &PostHandler{svc: svc, log: logger.With("handler", "posts")}
}

type postResponse struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	CategoryID int64     `json:"category_id"`
	Title      string    `json:"title"`
	Comment    string    `json:"comment"`
	Image1     string    `json:"image1"`
	Image2     string    `json:"image2,omitempty"`
	MapEmbed   string    `json:"map_embed,omitempty"`
	MapURL     *string   `json:"map_url"`
	PostedAt   time.Time `json:"posted_at"`
}

type pageResponse struct {
	Posts       []postResponse `json:"posts"`
	Page        int            `json:"page"`
	HasNext     bool           `json:"has_next"`
	HasPrevious bool           `json:"has_previous"`
	NextCursor  string         `json:"next_cursor,omitempty"`
}

type categoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type createPostRequest struct {
	CategoryID int64  `json:"category_id"`
	Title      string `json:"title"`
	Comment    string `json:"comment"`
	Image1     string `json:"image1"`
	Image2     string `json:"image2"`
	MapEmbed   string `json:"map_embed"`
}

// List handles GET /api/posts.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.RouteParams{})
}

// ListByCategory handles GET /api/categories/{categoryID}/posts.
func (h *PostHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["categoryID"], 10, 64)
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("category_id", "must be a number"))
		return
	}
	h.list(w, r, domain.RouteParams{CategoryID: &id})
}

// ListByUser handles GET /api/users/{userID}/posts.
func (h *PostHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["userID"])
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("user_id", "must be a UUID"))
		return
	}
	h.list(w, r, domain.RouteParams{UserID: &id})
}

// ListMine handles GET /api/me/posts.
func (h *PostHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.RouteParams{Mine: true})
}

func (h *PostHandler) list(w http.ResponseWriter, r *http.Request, route domain.RouteParams) {
	q := r.URL.Query()
	input := gadget.ListPostsInput{Route: route, Cursor: q.Get("cursor")}

	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			handleError(h.log, w, r, domain.NewValidationError("page", "must be a positive number"))
			return
		}
		input.Page = n
	}

	page, err := h.svc.ListPosts(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(page))
}

// Get handles GET /api/posts/{postID}.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	post, err := h.svc.GetPost(r.Context(), gadget.GetPostInput{PostID: id})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(post))
}

// Create handles POST /api/posts.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	post, err := h.svc.CreatePost(r.Context(), gadget.CreatePostInput{
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Comment:    req.Comment,
		Image1:     req.Image1,
		Image2:     req.Image2,
		MapEmbed:   req.MapEmbed,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/posts/%d", post.ID))
	writeJSON(w, http.StatusCreated, toPostResponse(post))
}

// Delete handles DELETE /api/posts/{postID}.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeletePost(r.Context(), gadget.DeletePostInput{PostID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Categories handles GET /api/categories.
func (h *PostHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryResponse{ID: c.ID, Name: c.Name})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *PostHandler) postID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["postID"], 10, 64)
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("post_id", "must be a number"))
		return 0, false
	}
	return id, true
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:         p.ID,
		UserID:     p.UserID.String(),
		CategoryID: p.CategoryID,
		Title:      p.Title,
		Comment:    p.Comment,
		Image1:     p.Image1,
		Image2:     p.Image2,
		MapEmbed:   p.MapEmbed,
		MapURL:     p.MapURL(),
		PostedAt:   p.PostedAt,
	}
}

func toPageResponse(p *domain.Page) pageResponse {
	posts := make([]postResponse, 0, len(p.Posts))
	for _, post := range p.Posts {
		posts = append(posts, toPostResponse(post))
	}
	return pageResponse{
		Posts:       posts,
		Page:        p.Number,
		HasNext:     p.HasNext,
		HasPrevious: p.HasPrevious,
		NextCursor:  p.NextCursor,
	}
}
