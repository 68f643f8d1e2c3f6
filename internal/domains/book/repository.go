package book

import "context"

// Repository defines data access for the Book domain.
// Implementations translate storage failures into the domain errors
// declared in errors.go.
type Repository interface {
	// Create inserts the book row and its author links as one atomic
	// unit. A partially created book (row without links) is never
	// visible. b.AuthorIDs must already be normalized; the link order
	// is their position in the slice. Nil price/status leave the
	// columns at their storage default.
	// Errors: ErrConstraintViolation
	Create(ctx context.Context, b *Book) (*Book, error)

	// GetByID retrieves a book with its complete author-id list in
	// author order.
	// Errors: ErrBookNotFound
	GetByID(ctx context.Context, id int64) (*Book, error)

	// Update applies the scalar patch and, when authorIDs is non-nil,
	// replaces the author links (delete-all, reinsert with fresh order)
	// in the same transaction. An empty patch with nil authorIDs issues
	// no write and re-reads the current row.
	// Errors: ErrBookNotFound, ErrUpdateConflict, ErrConstraintViolation
	Update(ctx context.Context, id int64, patch Patch, authorIDs []int64) (*Book, error)

	// ExistsByID checks book existence without fetching the row.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// CountAuthors returns how many of the given author ids exist.
	// Callers compare the count against len(ids) to validate the full
	// set at once.
	CountAuthors(ctx context.Context, ids []int64) (int, error)

	// ListByAuthor returns every book that includes the author, ordered
	// by book id, each with its complete ordered author-id list.
	ListByAuthor(ctx context.Context, authorID int64) ([]Book, error)
}
