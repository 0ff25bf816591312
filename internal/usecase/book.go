package usecase

import (
	"context"

	"catalogapi/internal/entity"
)

// BookRepository defines the contract for book storage.
//
// Returned books carry the full author projection loaded. Search covers
// title, author name and isbn; ordering keys are title and
// published_date, defaulting to title ascending. Writes resolve
// AuthorID against existing authors (ErrAuthorNotFound) and enforce
// global isbn uniqueness (ErrDuplicateISBN).
type BookRepository interface {
	List(ctx context.Context, p ListParams) ([]entity.Book, int, error)
	Get(ctx context.Context, id int64) (entity.Book, error)
	// Create assigns the generated id to b and loads b.Author.
	Create(ctx context.Context, b *entity.Book) error
	// Update rewrites the row identified by b.ID; ErrNotFound if absent.
	Update(ctx context.Context, b *entity.Book) error
	Delete(ctx context.Context, id int64) error
}
