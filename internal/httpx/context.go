package httpx

import (
	"context"
	"net/http"
)

type contextKey string

const (
	tokenNameKey contextKey = "tokenName"
	requestIDKey contextKey = "requestID"
)

// TokenNameFrom retrieves the authenticated token's name from the
// request context. Empty on unauthenticated (read) requests.
func TokenNameFrom(r *http.Request) string {
	if v, ok := r.Context().Value(tokenNameKey).(string); ok {
		return v
	}
	return ""
}

// RequestIDFrom retrieves the request ID from the request context.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

func ContextWithTokenName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, tokenNameKey, name)
}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
