package author

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookcatalog-backend/internal/shared"
)

// CreateAuthorRequest - POST /v1/authors
type CreateAuthorRequest struct {
	Name      string      `json:"name"`
	BirthDate shared.Date `json:"birthDate"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.By(notBlank),
		),
		validation.Field(&r.BirthDate, validation.By(dateSupplied)),
	)
}

// UpdateAuthorRequest - PUT /v1/authors/:id
// Both fields are optional; nil means "no change". A request with
// neither field is rejected, unlike book updates.
type UpdateAuthorRequest struct {
	NewName      *string      `json:"newName,omitempty"`
	NewBirthDate *shared.Date `json:"newBirthDate,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NewName, validation.By(notBlankPtr)),
	)
}

// IsEmpty reports whether the request carries no change at all.
func (r UpdateAuthorRequest) IsEmpty() bool {
	return r.NewName == nil && r.NewBirthDate == nil
}

// ApplyTo merges the supplied fields into an existing entity; absent
// fields keep their stored value.
func (r *UpdateAuthorRequest) ApplyTo(a *Author) {
	if r.NewName != nil {
		a.Name = *r.NewName
	}
	if r.NewBirthDate != nil {
		a.BirthDate = *r.NewBirthDate
	}
}

// AuthorResponse is the API representation of an author.
type AuthorResponse struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	BirthDate shared.Date `json:"birthDate"`
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if s != "" && strings.TrimSpace(s) == "" {
		return ErrBlankName
	}
	return nil
}

func notBlankPtr(value interface{}) error {
	s, ok := value.(*string)
	if !ok || s == nil {
		return nil
	}
	if strings.TrimSpace(*s) == "" {
		return ErrBlankName
	}
	return nil
}

func dateSupplied(value interface{}) error {
	d, ok := value.(shared.Date)
	if !ok || d.IsZero() {
		return ErrBirthDateRequired
	}
	return nil
}
