package book

// Status is the publication state of a book.
type Status string

const (
	StatusUnpublished Status = "UNPUBLISHED"
	StatusPublished   Status = "PUBLISHED"

	// StatusUnknown is a render-only fallback for books whose status was
	// never set. It is not accepted as input and never persisted.
	StatusUnknown Status = "UNKNOWN"
)

// ParseStatus validates a caller-supplied status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusUnpublished, StatusPublished:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
