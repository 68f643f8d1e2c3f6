package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog-backend/internal/domains/book"
)

// fakeRepo is an in-memory book.Repository for service tests.
type fakeRepo struct {
	authors map[int64]struct{}
	books   map[int64]*book.Book
	nextID  int64

	createCalls int
	lastPatch   *book.Patch
	lastLinkIDs []int64
}

func newFakeRepo(authorIDs ...int64) *fakeRepo {
	authors := make(map[int64]struct{}, len(authorIDs))
	for _, id := range authorIDs {
		authors[id] = struct{}{}
	}
	return &fakeRepo{
		authors: authors,
		books:   make(map[int64]*book.Book),
		nextID:  1,
	}
}

func (r *fakeRepo) Create(_ context.Context, b *book.Book) (*book.Book, error) {
	r.createCalls++
	created := *b
	created.ID = r.nextID
	r.nextID++
	created.AuthorIDs = append([]int64(nil), b.AuthorIDs...)
	r.books[created.ID] = &created
	copied := created
	return &copied, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	copied := *b
	copied.AuthorIDs = append([]int64(nil), b.AuthorIDs...)
	return &copied, nil
}

func (r *fakeRepo) Update(_ context.Context, id int64, patch book.Patch, authorIDs []int64) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrUpdateConflict
	}

	r.lastPatch = &patch
	r.lastLinkIDs = authorIDs

	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Price != nil {
		b.Price = patch.Price
	}
	if patch.Status != nil {
		b.Status = patch.Status
	}
	if authorIDs != nil {
		b.AuthorIDs = append([]int64(nil), authorIDs...)
	}

	copied := *b
	copied.AuthorIDs = append([]int64(nil), b.AuthorIDs...)
	return &copied, nil
}

func (r *fakeRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.books[id]
	return ok, nil
}

func (r *fakeRepo) CountAuthors(_ context.Context, ids []int64) (int, error) {
	count := 0
	for _, id := range ids {
		if _, ok := r.authors[id]; ok {
			count++
		}
	}
	return count, nil
}

func (r *fakeRepo) ListByAuthor(_ context.Context, authorID int64) ([]book.Book, error) {
	var result []book.Book
	for _, b := range r.books {
		for _, id := range b.AuthorIDs {
			if id == authorID {
				result = append(result, *b)
				break
			}
		}
	}
	return result, nil
}

func TestCreateBookRejectsEmptyAuthors(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:     "T",
		AuthorIDs: []int64{},
	})

	assert.ErrorIs(t, err, book.ErrNoAuthors)
}

func TestCreateBookDeduplicatesPreservingOrder(t *testing.T) {
	repo := newFakeRepo(10, 20)
	svc := NewService(repo)

	resp, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:     "T",
		AuthorIDs: []int64{10, 20, 10},
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{10, 20}, resp.AuthorIDs)
}

func TestCreateBookRejectsUnknownStatus(t *testing.T) {
	repo := newFakeRepo(10)
	svc := NewService(repo)

	status := "NOT_REAL"
	_, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:     "T",
		AuthorIDs: []int64{10},
		Status:    &status,
	})

	assert.ErrorIs(t, err, book.ErrInvalidStatus)
	assert.Zero(t, repo.createCalls, "no insert may happen after a validation failure")
}

func TestCreateBookRejectsMissingAuthors(t *testing.T) {
	repo := newFakeRepo(10)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:     "T",
		AuthorIDs: []int64{10, 999},
	})

	assert.ErrorIs(t, err, book.ErrAuthorsNotFound)
	assert.Zero(t, repo.createCalls)
}

func TestCreateBookDefaults(t *testing.T) {
	repo := newFakeRepo(10)
	svc := NewService(repo)

	resp, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:     "T",
		AuthorIDs: []int64{10},
	})

	require.NoError(t, err)
	assert.True(t, resp.Price.Equal(decimal.Zero))
	assert.Equal(t, book.StatusUnknown, resp.Status)
}

func TestUpdateBookNotFound(t *testing.T) {
	svc := NewService(newFakeRepo(10))

	title := "x"
	_, err := svc.Update(context.Background(), 42, &book.UpdateBookRequest{Title: &title})

	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestUpdateBookRejectsExplicitEmptyAuthorList(t *testing.T) {
	repo := newFakeRepo(10)
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:     "T",
		AuthorIDs: []int64{10},
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, &book.UpdateBookRequest{
		AuthorIDs: []int64{},
	})

	assert.ErrorIs(t, err, book.ErrNoAuthors)
}

func TestUpdateBookAllFieldsAbsentIsNoOp(t *testing.T) {
	repo := newFakeRepo(10)
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:     "T",
		AuthorIDs: []int64{10},
	})
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), created.ID, &book.UpdateBookRequest{})

	require.NoError(t, err)
	assert.Equal(t, created, resp)
	require.NotNil(t, repo.lastPatch)
	assert.True(t, repo.lastPatch.IsEmpty())
	assert.Nil(t, repo.lastLinkIDs)
}

func TestUpdateBookReplacesAuthors(t *testing.T) {
	repo := newFakeRepo(10, 20, 30)
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:     "T",
		AuthorIDs: []int64{10, 20},
	})
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), created.ID, &book.UpdateBookRequest{
		AuthorIDs: []int64{30},
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{30}, resp.AuthorIDs)
	assert.Equal(t, []int64{30}, repo.lastLinkIDs)
}

func TestUpdateBookMissingAuthorInReplacement(t *testing.T) {
	repo := newFakeRepo(10)
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:     "T",
		AuthorIDs: []int64{10},
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, &book.UpdateBookRequest{
		AuthorIDs: []int64{10, 999},
	})

	assert.ErrorIs(t, err, book.ErrAuthorsNotFound)
}

func TestUpdateBookTitleIsIdempotent(t *testing.T) {
	repo := newFakeRepo(10)
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:     "First Title",
		AuthorIDs: []int64{10},
	})
	require.NoError(t, err)

	title := "Same"
	first, err := svc.Update(context.Background(), created.ID, &book.UpdateBookRequest{Title: &title})
	require.NoError(t, err)

	second, err := svc.Update(context.Background(), created.ID, &book.UpdateBookRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUpdateBookScalarFieldsMergeIndependently(t *testing.T) {
	repo := newFakeRepo(10)
	svc := NewService(repo)

	price := decimal.RequireFromString("12.50")
	status := "PUBLISHED"
	created, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:     "T",
		AuthorIDs: []int64{10},
		Price:     &price,
		Status:    &status,
	})
	require.NoError(t, err)

	newTitle := "T2"
	resp, err := svc.Update(context.Background(), created.ID, &book.UpdateBookRequest{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "T2", resp.Title)
	assert.True(t, resp.Price.Equal(price), "price must be untouched")
	assert.Equal(t, book.StatusPublished, resp.Status, "status must be untouched")
	assert.Equal(t, []int64{10}, resp.AuthorIDs, "author links must be untouched")
}
