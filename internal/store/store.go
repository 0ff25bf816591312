package store

// Repository implementations (Postgres, pgx).

import (
	"context"
	"errors"
	"strings"

	"catalogapi/internal/entity"
	"catalogapi/internal/usecase"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is satisfied by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters so user search terms match
// as literal substrings. Patterns built from it rely on backslash being
// the escape character, stated explicitly with ESCAPE in the queries.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// orderByClause resolves a user-supplied ordering key against an
// allow-list of column names. A "-" prefix reverses direction. Unknown
// keys fall back to the default order rather than failing.
func orderByClause(ordering string, allowed map[string]string, def string) string {
	key := strings.TrimSpace(ordering)
	desc := strings.HasPrefix(key, "-")
	key = strings.TrimPrefix(key, "-")
	col, ok := allowed[key]
	if key == "" || !ok {
		return def
	}
	if desc {
		return col + " DESC"
	}
	return col + " ASC"
}

// mapBookWriteErr translates constraint violations on book writes into
// the sentinel errors the HTTP layer switches on.
func mapBookWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return usecase.ErrDuplicateISBN
		case pgerrcode.ForeignKeyViolation:
			return usecase.ErrAuthorNotFound
		}
	}
	return err
}

// loadBookSummaries fetches the reduced book projection for the given
// authors, ordered by title, keyed by author id.
func loadBookSummaries(ctx context.Context, q querier, authorIDs []int64) (map[int64][]entity.BookSummary, error) {
	out := make(map[int64][]entity.BookSummary, len(authorIDs))
	if len(authorIDs) == 0 {
		return out, nil
	}

	const query = `
	SELECT id, author_id, title, published_date, isbn
	FROM books
	WHERE author_id = ANY($1)
	ORDER BY title
	`
	rows, err := q.Query(ctx, query, authorIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			s        entity.BookSummary
			authorID int64
		)
		if err := rows.Scan(&s.ID, &authorID, &s.Title, &s.PublishedDate.Time, &s.ISBN); err != nil {
			return nil, err
		}
		out[authorID] = append(out[authorID], s)
	}
	return out, rows.Err()
}
