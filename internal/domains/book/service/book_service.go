package service

import (
	"context"
	"fmt"

	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/pkg/logger"
)

// BookService implements book.Service.
type BookService struct {
	repo book.Repository
}

func NewService(repo book.Repository) book.Service {
	return &BookService{repo: repo}
}

// Create validates the request in full before any write, then persists
// the book and its ordered author links atomically.
func (s *BookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.BookResponse, error) {
	// Dedup keeps the caller's order, first occurrence wins.
	authorIDs := book.NormalizeAuthorIDs(req.AuthorIDs)
	if len(authorIDs) == 0 {
		return nil, book.ErrNoAuthors
	}

	status, err := parseOptionalStatus(req.Status)
	if err != nil {
		return nil, err
	}

	if err := s.checkAuthorsExist(ctx, authorIDs); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &book.Book{
		Title:     req.Title,
		Price:     req.Price,
		Status:    status,
		AuthorIDs: authorIDs,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("book created", map[string]interface{}{
		"id":      created.ID,
		"authors": len(created.AuthorIDs),
	})

	return created.ToResponse(), nil
}

func (s *BookService) GetByID(ctx context.Context, id int64) (*book.BookResponse, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return b.ToResponse(), nil
}

// Update applies a field-level partial update. Omitted fields keep
// their stored value; an all-absent request is a valid no-op.
func (s *BookService) Update(ctx context.Context, id int64, req *book.UpdateBookRequest) (*book.BookResponse, error) {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, book.ErrBookNotFound
	}

	// nil means "leave unchanged"; an explicit empty list is invalid
	// because a book must always keep at least one author.
	var authorIDs []int64
	if req.AuthorIDs != nil {
		authorIDs = book.NormalizeAuthorIDs(req.AuthorIDs)
		if len(authorIDs) == 0 {
			return nil, book.ErrNoAuthors
		}
		if err := s.checkAuthorsExist(ctx, authorIDs); err != nil {
			return nil, err
		}
	}

	status, err := parseOptionalStatus(req.Status)
	if err != nil {
		return nil, err
	}

	patch := book.Patch{
		Title:  req.Title,
		Price:  req.Price,
		Status: status,
	}

	updated, err := s.repo.Update(ctx, id, patch, authorIDs)
	if err != nil {
		return nil, err
	}

	return updated.ToResponse(), nil
}

// checkAuthorsExist validates the full id set at once; a failure reports
// "one or more" missing rather than which one, and nothing has been
// written yet when it fires.
func (s *BookService) checkAuthorsExist(ctx context.Context, ids []int64) error {
	count, err := s.repo.CountAuthors(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to validate authors: %w", err)
	}
	if count != len(ids) {
		return book.ErrAuthorsNotFound
	}
	return nil
}

func parseOptionalStatus(s *string) (*book.Status, error) {
	if s == nil {
		return nil, nil
	}
	status, err := book.ParseStatus(*s)
	if err != nil {
		return nil, err
	}
	return &status, nil
}
