package book

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookRequestValidate(t *testing.T) {
	valid := CreateBookRequest{Title: "Clean Architecture", AuthorIDs: []int64{1}}
	assert.NoError(t, valid.Validate())

	missingTitle := CreateBookRequest{AuthorIDs: []int64{1}}
	assert.Error(t, missingTitle.Validate())

	blankTitle := CreateBookRequest{Title: "   ", AuthorIDs: []int64{1}}
	assert.Error(t, blankTitle.Validate())

	noAuthors := CreateBookRequest{Title: "T"}
	assert.Error(t, noAuthors.Validate())

	emptyAuthors := CreateBookRequest{Title: "T", AuthorIDs: []int64{}}
	assert.Error(t, emptyAuthors.Validate())
}

func TestUpdateBookRequestValidate(t *testing.T) {
	assert.NoError(t, UpdateBookRequest{}.Validate())

	title := "New Title"
	assert.NoError(t, UpdateBookRequest{Title: &title}.Validate())

	blank := "  "
	assert.Error(t, UpdateBookRequest{Title: &blank}.Validate())
}

func TestUpdateBookRequestIsEmpty(t *testing.T) {
	assert.True(t, UpdateBookRequest{}.IsEmpty())

	title := "x"
	assert.False(t, UpdateBookRequest{Title: &title}.IsEmpty())

	// An explicit empty list is present, not absent.
	assert.False(t, UpdateBookRequest{AuthorIDs: []int64{}}.IsEmpty())
}

func TestBookToResponseDefaults(t *testing.T) {
	b := &Book{ID: 1, Title: "Untitled", AuthorIDs: []int64{2}}

	resp := b.ToResponse()
	require.NotNil(t, resp)
	assert.True(t, resp.Price.Equal(decimal.Zero))
	assert.Equal(t, StatusUnknown, resp.Status)
}

func TestBookToResponseSetFields(t *testing.T) {
	price := decimal.RequireFromString("19.99")
	status := StatusPublished
	b := &Book{ID: 1, Title: "T", Price: &price, Status: &status, AuthorIDs: []int64{4, 2}}

	resp := b.ToResponse()
	assert.True(t, resp.Price.Equal(price))
	assert.Equal(t, StatusPublished, resp.Status)
	assert.Equal(t, []int64{4, 2}, resp.AuthorIDs)
}
