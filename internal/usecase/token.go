package usecase

import (
	"context"

	"catalogapi/internal/entity"
)

// TokenRepository defines the contract for API token storage.
type TokenRepository interface {
	// GetByKey returns ErrInvalidToken for unknown keys.
	GetByKey(ctx context.Context, key string) (entity.APIToken, error)
	Create(ctx context.Context, t *entity.APIToken) error
	List(ctx context.Context) ([]entity.APIToken, error)
	// DeleteByKey returns ErrInvalidToken if the key does not exist.
	DeleteByKey(ctx context.Context, key string) error
}
