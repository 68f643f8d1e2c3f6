package book

import "errors"

var (
	// Validation errors
	ErrNoAuthors       = errors.New("book must have at least one author")
	ErrAuthorsNotFound = errors.New("one or more authors not found")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrBlankTitle      = errors.New("title must not be blank")

	// Business rule errors
	ErrBookNotFound = errors.New("book not found")

	// Storage conflicts
	ErrUpdateConflict      = errors.New("book was modified concurrently")
	ErrConstraintViolation = errors.New("conflict performing db operation")
)

// ToHTTPStatus converts a book domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return 404
	case errors.Is(err, ErrNoAuthors),
		errors.Is(err, ErrAuthorsNotFound),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrBlankTitle):
		return 400
	case errors.Is(err, ErrUpdateConflict),
		errors.Is(err, ErrConstraintViolation):
		return 409
	default:
		return 500
	}
}
