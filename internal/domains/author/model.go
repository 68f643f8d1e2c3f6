package author

import (
	"bookcatalog-backend/internal/shared"
)

// Author is the catalog entity. The (Name, BirthDate) pair is unique
// system-wide; ids are generated on creation and never change.
type Author struct {
	ID        int64
	Name      string
	BirthDate shared.Date
}

// ToResponse converts an Author entity to its API representation.
func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		BirthDate: a.BirthDate,
	}
}
