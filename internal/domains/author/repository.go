package author

import "context"

// Repository defines data access for the Author domain.
// Implementations translate storage failures into the domain errors
// declared in errors.go.
type Repository interface {
	// Create inserts a new author. The storage layer enforces the
	// (name, birth_date) uniqueness invariant.
	// Errors: ErrAuthorAlreadyExists
	Create(ctx context.Context, a *Author) (*Author, error)

	// GetByID retrieves an author.
	// Errors: ErrAuthorNotFound
	GetByID(ctx context.Context, id int64) (*Author, error)

	// Update writes the full merged record addressed by a.ID.
	// A write that affects zero rows despite the prior read is a
	// lost-update race.
	// Errors: ErrAuthorNotFound, ErrUpdateConflict, ErrAuthorAlreadyExists
	Update(ctx context.Context, a *Author) (*Author, error)

	// ExistsByID checks author existence without fetching the row.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
