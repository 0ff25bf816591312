package usecase

import "errors"

// Sentinel errors shared by the store implementations and the HTTP layer.
var (
	// ErrNotFound signals an unknown entity id.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateISBN signals a write that would violate the global
	// isbn uniqueness constraint.
	ErrDuplicateISBN = errors.New("isbn already exists")

	// ErrAuthorNotFound signals a book write whose author_id does not
	// resolve to an existing author.
	ErrAuthorNotFound = errors.New("author does not exist")

	// ErrInvalidToken signals an unknown API token key.
	ErrInvalidToken = errors.New("invalid token")
)
