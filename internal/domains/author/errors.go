package author

import "errors"

var (
	// Validation errors
	ErrBlankName         = errors.New("name must not be blank")
	ErrBirthDateRequired = errors.New("birthDate is required")
	ErrBirthDateInFuture = errors.New("birthDate must not be in the future")
	ErrNothingToUpdate   = errors.New("nothing to update")

	// Business rule errors
	ErrAuthorNotFound = errors.New("author not found")

	// Storage conflicts
	ErrAuthorAlreadyExists = errors.New("author already exists")
	ErrUpdateConflict      = errors.New("author was modified concurrently")
)

// ToHTTPStatus converts an author domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrBlankName),
		errors.Is(err, ErrBirthDateRequired),
		errors.Is(err, ErrBirthDateInFuture),
		errors.Is(err, ErrNothingToUpdate):
		return 400
	case errors.Is(err, ErrAuthorAlreadyExists),
		errors.Is(err, ErrUpdateConflict):
		return 409
	default:
		return 500
	}
}
