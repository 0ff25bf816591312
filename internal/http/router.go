package http

import (
	"net/http"
	"strconv"
)

// Middleware wraps a handler, typically to gate it behind authentication.
type Middleware func(http.Handler) http.Handler

// NewRouter mounts the API routes. Reads are open; every mutating route
// goes through requireAuth before any validation or side effect runs.
func NewRouter(authors *AuthorHandler, books *BookHandler, requireAuth Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /api/authors/{$}", http.HandlerFunc(authors.List))
	mux.Handle("POST /api/authors/{$}", requireAuth(http.HandlerFunc(authors.Create)))
	mux.Handle("GET /api/authors/{id}/{$}", http.HandlerFunc(authors.Get))
	mux.Handle("PUT /api/authors/{id}/{$}", requireAuth(http.HandlerFunc(authors.Update)))
	mux.Handle("PATCH /api/authors/{id}/{$}", requireAuth(http.HandlerFunc(authors.Update)))
	mux.Handle("DELETE /api/authors/{id}/{$}", requireAuth(http.HandlerFunc(authors.Delete)))

	mux.Handle("GET /api/books/{$}", http.HandlerFunc(books.List))
	mux.Handle("POST /api/books/{$}", requireAuth(http.HandlerFunc(books.Create)))
	mux.Handle("GET /api/books/{id}/{$}", http.HandlerFunc(books.Get))
	mux.Handle("PUT /api/books/{id}/{$}", requireAuth(http.HandlerFunc(books.Update)))
	mux.Handle("PATCH /api/books/{id}/{$}", requireAuth(http.HandlerFunc(books.Update)))
	mux.Handle("DELETE /api/books/{id}/{$}", requireAuth(http.HandlerFunc(books.Delete)))

	return mux
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
