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

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

var bookOrderings = map[string]string{
	"title":          "b.title",
	"published_date": "b.published_date",
}

func (r *BookPG) List(ctx context.Context, p usecase.ListParams) ([]entity.Book, int, error) {
	where := "($1 = '' OR b.title ILIKE $2 ESCAPE '\\' OR a.name ILIKE $2 ESCAPE '\\' OR b.isbn ILIKE $2 ESCAPE '\\')"
	args := []any{p.Search, "%" + escapeLike(p.Search) + "%"}

	const from = "FROM books b JOIN authors a ON a.id = b.author_id"

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) "+from+" WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	query := fmt.Sprintf(`
	SELECT b.id, b.title, b.author_id, b.published_date, b.isbn
	%s
	WHERE %s
	ORDER BY %s
	LIMIT $3 OFFSET $4
	`, from, where, orderByClause(p.Ordering, bookOrderings, "b.title ASC"))
	args = append(args, p.Limit, p.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.AuthorID, &b.PublishedDate.Time, &b.ISBN); err != nil {
			return nil, 0, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachAuthors(ctx, books); err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *BookPG) Get(ctx context.Context, id int64) (entity.Book, error) {
	var b entity.Book
	row := r.db.QueryRow(ctx, "SELECT id, title, author_id, published_date, isbn FROM books WHERE id = $1", id)
	if err := row.Scan(&b.ID, &b.Title, &b.AuthorID, &b.PublishedDate.Time, &b.ISBN); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, fmt.Errorf("get book: %w", err)
	}

	books := []entity.Book{b}
	if err := r.attachAuthors(ctx, books); err != nil {
		return entity.Book{}, err
	}
	return books[0], nil
}

func (r *BookPG) Create(ctx context.Context, b *entity.Book) error {
	const query = `
	INSERT INTO books (title, author_id, published_date, isbn)
	VALUES ($1, $2, $3, $4)
	RETURNING id
	`
	err := r.db.QueryRow(ctx, query, b.Title, b.AuthorID, b.PublishedDate.Time, b.ISBN).Scan(&b.ID)
	if err != nil {
		if mapped := mapBookWriteErr(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("create book: %w", err)
	}

	books := []entity.Book{*b}
	if err := r.attachAuthors(ctx, books); err != nil {
		return err
	}
	*b = books[0]
	return nil
}

func (r *BookPG) Update(ctx context.Context, b *entity.Book) error {
	const query = `
	UPDATE books
	SET title = $1, author_id = $2, published_date = $3, isbn = $4
	WHERE id = $5
	`
	tag, err := r.db.Exec(ctx, query, b.Title, b.AuthorID, b.PublishedDate.Time, b.ISBN, b.ID)
	if err != nil {
		if mapped := mapBookWriteErr(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("update book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}

	books := []entity.Book{*b}
	if err := r.attachAuthors(ctx, books); err != nil {
		return err
	}
	*b = books[0]
	return nil
}

func (r *BookPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

// attachAuthors loads the full author projection (including the reduced
// book lists) for every book in the slice.
func (r *BookPG) attachAuthors(ctx context.Context, books []entity.Book) error {
	if len(books) == 0 {
		return nil
	}

	seen := make(map[int64]bool, len(books))
	var ids []int64
	for _, b := range books {
		if !seen[b.AuthorID] {
			seen[b.AuthorID] = true
			ids = append(ids, b.AuthorID)
		}
	}

	rows, err := r.db.Query(ctx, "SELECT id, name, birth_date, country FROM authors WHERE id = ANY($1)", ids)
	if err != nil {
		return fmt.Errorf("load book authors: %w", err)
	}
	defer rows.Close()

	authors := make(map[int64]entity.Author, len(ids))
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return err
		}
		authors[a.ID] = a
	}
	if err := rows.Err(); err != nil {
		return err
	}

	summaries, err := loadBookSummaries(ctx, r.db, ids)
	if err != nil {
		return fmt.Errorf("load author books: %w", err)
	}

	for i := range books {
		a, ok := authors[books[i].AuthorID]
		if !ok {
			return usecase.ErrAuthorNotFound
		}
		if s := summaries[a.ID]; s != nil {
			a.Books = s
		}
		books[i].Author = &a
	}
	return nil
}
