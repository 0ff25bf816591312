package store

import (
	"context"
	"testing"

	"catalogapi/internal/entity"
	"catalogapi/internal/testutil"
	"catalogapi/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenPG_Lifecycle(t *testing.T) {
	pool := testutil.OpenTestDB(t)
	repo := NewTokenPG(pool)
	ctx := context.Background()

	token := entity.APIToken{Key: "a1b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6a7b8c9d0", Name: "ci"}
	require.NoError(t, repo.Create(ctx, &token))
	assert.NotZero(t, token.ID)
	assert.False(t, token.CreatedAt.IsZero())

	got, err := repo.GetByKey(ctx, token.Key)
	require.NoError(t, err)
	assert.Equal(t, "ci", got.Name)

	_, err = repo.GetByKey(ctx, "unknown-key")
	assert.ErrorIs(t, err, usecase.ErrInvalidToken)

	tokens, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tokens, 1)

	require.NoError(t, repo.DeleteByKey(ctx, token.Key))
	_, err = repo.GetByKey(ctx, token.Key)
	assert.ErrorIs(t, err, usecase.ErrInvalidToken, "revoked token must stop working")

	assert.ErrorIs(t, repo.DeleteByKey(ctx, token.Key), usecase.ErrInvalidToken)
}
