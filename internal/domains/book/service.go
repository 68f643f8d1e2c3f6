package book

import "context"

// Service defines business logic operations for the Book domain.
type Service interface {
	// Create validates and persists a new book.
	// Business rules:
	// - Author ids are deduplicated, first occurrence wins; the
	//   normalized list must be non-empty and every id must exist.
	// - The existence check covers the full set before any write, so a
	//   failure reports "one or more" without partial inserts.
	// - Status, when given, must be a recognized publication state.
	// Errors: ErrNoAuthors, ErrAuthorsNotFound, ErrInvalidStatus,
	// ErrConstraintViolation
	Create(ctx context.Context, req *CreateBookRequest) (*BookResponse, error)

	// GetByID returns one book with its ordered author ids.
	// Errors: ErrBookNotFound
	GetByID(ctx context.Context, id int64) (*BookResponse, error)

	// Update applies a partial update. Omitted fields keep their stored
	// value; a request with no fields at all is a valid no-op that
	// returns the current record. A present-but-empty author list is
	// rejected. A present author list fully replaces the links.
	// Errors: ErrBookNotFound, ErrNoAuthors, ErrAuthorsNotFound,
	// ErrInvalidStatus, ErrUpdateConflict
	Update(ctx context.Context, id int64, req *UpdateBookRequest) (*BookResponse, error)
}
