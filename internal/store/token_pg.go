package store

import (
	"context"
	"errors"
	"fmt"

	"catalogapi/internal/entity"
	"catalogapi/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TokenPG struct {
	db *pgxpool.Pool
}

func NewTokenPG(db *pgxpool.Pool) *TokenPG {
	return &TokenPG{db: db}
}

func (r *TokenPG) GetByKey(ctx context.Context, key string) (entity.APIToken, error) {
	var t entity.APIToken
	row := r.db.QueryRow(ctx, "SELECT id, key, name, created_at FROM api_tokens WHERE key = $1", key)
	if err := row.Scan(&t.ID, &t.Key, &t.Name, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.APIToken{}, usecase.ErrInvalidToken
		}
		return entity.APIToken{}, fmt.Errorf("get token: %w", err)
	}
	return t, nil
}

func (r *TokenPG) Create(ctx context.Context, t *entity.APIToken) error {
	const query = `
	INSERT INTO api_tokens (key, name)
	VALUES ($1, $2)
	RETURNING id, created_at
	`
	if err := r.db.QueryRow(ctx, query, t.Key, t.Name).Scan(&t.ID, &t.CreatedAt); err != nil {
		return fmt.Errorf("create token: %w", err)
	}
	return nil
}

func (r *TokenPG) List(ctx context.Context) ([]entity.APIToken, error) {
	rows, err := r.db.Query(ctx, "SELECT id, key, name, created_at FROM api_tokens ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("list tokens: %w", err)
	}
	defer rows.Close()

	var tokens []entity.APIToken
	for rows.Next() {
		var t entity.APIToken
		if err := rows.Scan(&t.ID, &t.Key, &t.Name, &t.CreatedAt); err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}

func (r *TokenPG) DeleteByKey(ctx context.Context, key string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM api_tokens WHERE key = $1", key)
	if err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrInvalidToken
	}
	return nil
}
