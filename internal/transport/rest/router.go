package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mknhm1/itemproject/internal/transport/middleware"
)

// Handlers groups everything the router dispatches to.
type Handlers struct {
	Posts   *PostHandler
	Contact *ContactHandler
	Health  *HealthHandler
}

// NewRouter registers all routes. contactLimit guards the contact form and
// may be nil.
func NewRouter(h Handlers, contactLimit middleware.Middleware) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "no such route")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	r.HandleFunc("/live", h.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
	r.HandleFunc("/openapi.yaml", ServeOpenAPI).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/posts", h.Posts.List).Methods(http.MethodGet)
	api.HandleFunc("/posts", h.Posts.Create).Methods(http.MethodPost)
	api.HandleFunc("/posts/{postID:[0-9]+}", h.Posts.Get).Methods(http.MethodGet)
	api.HandleFunc("/posts/{postID:[0-9]+}", h.Posts.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/categories", h.Posts.Categories).Methods(http.MethodGet)
	api.HandleFunc("/categories/{categoryID:[0-9]+}/posts", h.Posts.ListByCategory).Methods(http.MethodGet)
	api.HandleFunc("/users/{userID}/posts", h.Posts.ListByUser).Methods(http.MethodGet)
	api.HandleFunc("/me/posts", h.Posts.ListMine).Methods(http.MethodGet)

	api.Handle("/contact", middleware.Chain(contactLimit)(http.HandlerFunc(h.Contact.Submit))).Methods(http.MethodPost)

	return r
}
