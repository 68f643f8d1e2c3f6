package author

import (
	"context"

	"bookcatalog-backend/internal/domains/book"
)

// Service defines business logic operations for the Author domain.
type Service interface {
	// Create validates and persists a new author.
	// Business rules:
	// - Name must not be blank (whitespace-only counts as blank).
	// - Birth date must not be after "today" in the reference timezone.
	// - The (name, birthDate) pair must be unique; duplicates surface
	//   as a conflict from the storage constraint.
	// Errors: ErrBlankName, ErrBirthDateInFuture, ErrAuthorAlreadyExists
	Create(ctx context.Context, req *CreateAuthorRequest) (*AuthorResponse, error)

	// GetByID returns one author.
	// Errors: ErrAuthorNotFound
	GetByID(ctx context.Context, id int64) (*AuthorResponse, error)

	// Update applies a field-level partial update: only supplied fields
	// replace stored values. A request with no fields is rejected.
	// Errors: ErrAuthorNotFound, ErrNothingToUpdate, ErrBlankName,
	// ErrBirthDateInFuture, ErrUpdateConflict, ErrAuthorAlreadyExists
	Update(ctx context.Context, id int64, req *UpdateAuthorRequest) (*AuthorResponse, error)

	// GetBooks returns every book of the author, ordered by book id,
	// each with its complete author-id list in author order. An author
	// with no books yields an empty list, not an error.
	// Errors: ErrAuthorNotFound
	GetBooks(ctx context.Context, id int64) ([]book.BookResponse, error)
}
