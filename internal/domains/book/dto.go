package book

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// CreateBookRequest - POST /v1/books
type CreateBookRequest struct {
	Title     string           `json:"title"`
	AuthorIDs []int64          `json:"authorIds"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Status    *string          `json:"status,omitempty"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.By(notBlank),
		),
		validation.Field(&r.AuthorIDs,
			validation.Required.Error("book must have at least one author"),
		),
	)
}

// UpdateBookRequest - PUT /v1/books/:id
// All fields are optional; an omitted field keeps its stored value.
// AuthorIDs is special: nil means "leave unchanged", an explicit empty
// list is rejected because a book must always keep at least one author.
type UpdateBookRequest struct {
	Title     *string          `json:"title,omitempty"`
	AuthorIDs []int64          `json:"authorIds,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Status    *string          `json:"status,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.By(notBlankPtr)),
	)
}

// IsEmpty reports whether the request carries no change at all.
func (r UpdateBookRequest) IsEmpty() bool {
	return r.Title == nil && r.AuthorIDs == nil && r.Price == nil && r.Status == nil
}

// Patch holds the scalar fields of an update that were actually supplied.
// The repository issues no UPDATE statement when the patch is empty.
type Patch struct {
	Title  *string
	Price  *decimal.Decimal
	Status *Status
}

func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Price == nil && p.Status == nil
}

// BookResponse is the API representation of a book. AuthorIDs are in
// author order; a never-set price renders as 0 and a never-set status
// as UNKNOWN.
type BookResponse struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	AuthorIDs []int64         `json:"authorIds"`
	Price     decimal.Decimal `json:"price"`
	Status    Status          `json:"status"`
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if s != "" && strings.TrimSpace(s) == "" {
		return ErrBlankTitle
	}
	return nil
}

func notBlankPtr(value interface{}) error {
	s, ok := value.(*string)
	if !ok || s == nil {
		return nil
	}
	if strings.TrimSpace(*s) == "" {
		return ErrBlankTitle
	}
	return nil
}
