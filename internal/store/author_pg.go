package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalogapi/internal/entity"
	"catalogapi/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthorPG struct {
	db *pgxpool.Pool
}

func NewAuthorPG(db *pgxpool.Pool) *AuthorPG {
	return &AuthorPG{db: db}
}

var authorOrderings = map[string]string{
	"name":       "name",
	"birth_date": "birth_date",
}

func (r *AuthorPG) List(ctx context.Context, p usecase.ListParams) ([]entity.Author, int, error) {
	where := "($1 = '' OR name ILIKE $2 ESCAPE '\\' OR country ILIKE $2 ESCAPE '\\')"
	args := []any{p.Search, "%" + escapeLike(p.Search) + "%"}

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM authors WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count authors: %w", err)
	}

	query := fmt.Sprintf(`
	SELECT id, name, birth_date, country
	FROM authors
	WHERE %s
	ORDER BY %s
	LIMIT $3 OFFSET $4
	`, where, orderByClause(p.Ordering, authorOrderings, "name ASC"))
	args = append(args, p.Limit, p.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list authors: %w", err)
	}
	defer rows.Close()

	var (
		authors []entity.Author
		ids     []int64
	)
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, 0, err
		}
		authors = append(authors, a)
		ids = append(ids, a.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	summaries, err := loadBookSummaries(ctx, r.db, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("load author books: %w", err)
	}
	for i := range authors {
		if s := summaries[authors[i].ID]; s != nil {
			authors[i].Books = s
		}
	}
	return authors, total, nil
}

func (r *AuthorPG) Get(ctx context.Context, id int64) (entity.Author, error) {
	row := r.db.QueryRow(ctx, "SELECT id, name, birth_date, country FROM authors WHERE id = $1", id)
	a, err := scanAuthor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Author{}, usecase.ErrNotFound
		}
		return entity.Author{}, fmt.Errorf("get author: %w", err)
	}

	summaries, err := loadBookSummaries(ctx, r.db, []int64{a.ID})
	if err != nil {
		return entity.Author{}, fmt.Errorf("load author books: %w", err)
	}
	if s := summaries[a.ID]; s != nil {
		a.Books = s
	}
	return a, nil
}

func (r *AuthorPG) Create(ctx context.Context, a *entity.Author) error {
	const query = `
	INSERT INTO authors (name, birth_date, country)
	VALUES ($1, $2, $3)
	RETURNING id
	`
	if err := r.db.QueryRow(ctx, query, a.Name, birthDateArg(a.BirthDate), a.Country).Scan(&a.ID); err != nil {
		return fmt.Errorf("create author: %w", err)
	}
	if a.Books == nil {
		a.Books = []entity.BookSummary{}
	}
	return nil
}

func (r *AuthorPG) Update(ctx context.Context, a *entity.Author) error {
	const query = `
	UPDATE authors
	SET name = $1, birth_date = $2, country = $3
	WHERE id = $4
	`
	tag, err := r.db.Exec(ctx, query, a.Name, birthDateArg(a.BirthDate), a.Country, a.ID)
	if err != nil {
		return fmt.Errorf("update author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

// Delete removes the author; dependent books go with it via the
// ON DELETE CASCADE constraint.
func (r *AuthorPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM authors WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func scanAuthor(row pgx.Row) (entity.Author, error) {
	var (
		a  entity.Author
		bd *time.Time
	)
	if err := row.Scan(&a.ID, &a.Name, &bd, &a.Country); err != nil {
		return entity.Author{}, err
	}
	if bd != nil {
		a.BirthDate = &entity.Date{Time: *bd}
	}
	a.Books = []entity.BookSummary{}
	return a, nil
}

func birthDateArg(d *entity.Date) *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}
