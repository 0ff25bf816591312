package usecase

import (
	"context"

	"catalogapi/internal/entity"
)

// AuthorRepository defines the contract for author storage.
//
// Returned authors always carry their Books projection loaded and
// ordered by title. List returns the page plus the total match count.
// Search covers name and country; ordering keys are name and birth_date,
// defaulting to name ascending.
type AuthorRepository interface {
	List(ctx context.Context, p ListParams) ([]entity.Author, int, error)
	Get(ctx context.Context, id int64) (entity.Author, error)
	// Create assigns the generated id to a.
	Create(ctx context.Context, a *entity.Author) error
	// Update rewrites the row identified by a.ID; ErrNotFound if absent.
	Update(ctx context.Context, a *entity.Author) error
	// Delete cascades to the author's books.
	Delete(ctx context.Context, id int64) error
}
