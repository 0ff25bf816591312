package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"catalogapi/internal/usecase"
)

const tokenScheme = "Token "

// TokenValidator resolves an opaque API token key. Implemented by the
// token store.
type TokenValidator interface {
	GetByKey(ctx context.Context, key string) (name string, err error)
}

// tokenRepoValidator adapts a usecase.TokenRepository.
type tokenRepoValidator struct {
	repo usecase.TokenRepository
}

func (v tokenRepoValidator) GetByKey(ctx context.Context, key string) (string, error) {
	t, err := v.repo.GetByKey(ctx, key)
	if err != nil {
		return "", err
	}
	return t.Name, nil
}

// AuthMiddleware rejects requests lacking a valid "Authorization:
// Token <key>" header before the wrapped handler runs. The repository
// lookup means revoked tokens stop working immediately.
func AuthMiddleware(repo usecase.TokenRepository) func(http.Handler) http.Handler {
	return authMiddleware(tokenRepoValidator{repo: repo})
}

func authMiddleware(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
				return
			}
			if !strings.HasPrefix(authHeader, tokenScheme) {
				writeDetail(w, http.StatusUnauthorized, "Invalid token.")
				return
			}
			key := strings.TrimSpace(strings.TrimPrefix(authHeader, tokenScheme))

			name, err := tokens.GetByKey(r.Context(), key)
			if err != nil {
				if !errors.Is(err, usecase.ErrInvalidToken) {
					slog.Error("token lookup failed", "request_id", RequestIDFrom(r), "error", err)
					writeDetail(w, http.StatusInternalServerError, "Internal server error.")
					return
				}
				writeDetail(w, http.StatusUnauthorized, "Invalid token.")
				return
			}

			ctx := ContextWithTokenName(r.Context(), name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
