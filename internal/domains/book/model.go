package book

import (
	"github.com/shopspring/decimal"
)

// Book is the catalog entity. Price and Status are nil when the columns
// were never set; rendering maps those to 0 and UNKNOWN.
type Book struct {
	ID        int64
	Title     string
	Price     *decimal.Decimal
	Status    *Status
	AuthorIDs []int64
}

// ToResponse converts a Book entity to its API representation.
func (b *Book) ToResponse() *BookResponse {
	price := decimal.Zero
	if b.Price != nil {
		price = *b.Price
	}

	status := StatusUnknown
	if b.Status != nil {
		status = *b.Status
	}

	return &BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		AuthorIDs: b.AuthorIDs,
		Price:     price,
		Status:    status,
	}
}
