package service

import (
	"context"
	"strings"
	"time"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/internal/shared"
	"bookcatalog-backend/pkg/logger"
)

// AuthorService implements author.Service. The location is the fixed
// reference timezone for deciding whether a birth date is in the future.
type AuthorService struct {
	repo  author.Repository
	books book.Repository
	loc   *time.Location
}

func NewService(repo author.Repository, books book.Repository, loc *time.Location) author.Service {
	return &AuthorService{
		repo:  repo,
		books: books,
		loc:   loc,
	}
}

// Create validates the request and persists a new author. Duplicate
// (name, birthDate) pairs are caught by the storage constraint, not a
// pre-check, so concurrent creates cannot slip through.
func (s *AuthorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.AuthorResponse, error) {
	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	if req.BirthDate.IsZero() {
		return nil, author.ErrBirthDateRequired
	}
	if err := s.validateBirthDate(req.BirthDate); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &author.Author{
		Name:      req.Name,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("author created", map[string]interface{}{"id": created.ID})

	return created.ToResponse(), nil
}

func (s *AuthorService) GetByID(ctx context.Context, id int64) (*author.AuthorResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return a.ToResponse(), nil
}

// Update merges the supplied fields into the stored record and writes
// the result back. Fields absent from the request keep their value.
func (s *AuthorService) Update(ctx context.Context, id int64, req *author.UpdateAuthorRequest) (*author.AuthorResponse, error) {
	// An empty patch is rejected before touching storage, regardless of
	// whether the id exists.
	if req.IsEmpty() {
		return nil, author.ErrNothingToUpdate
	}

	if req.NewName != nil {
		if err := validateName(*req.NewName); err != nil {
			return nil, err
		}
	}
	if req.NewBirthDate != nil {
		if err := s.validateBirthDate(*req.NewBirthDate); err != nil {
			return nil, err
		}
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(existing)

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	return updated.ToResponse(), nil
}

// GetBooks lists the author's books ordered by book id, each carrying
// its complete author-id list in author order.
func (s *AuthorService) GetBooks(ctx context.Context, id int64) ([]book.BookResponse, error) {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, author.ErrAuthorNotFound
	}

	books, err := s.books.ListByAuthor(ctx, id)
	if err != nil {
		return nil, err
	}

	// An author without books is an empty list, never an error.
	responses := make([]book.BookResponse, len(books))
	for i := range books {
		responses[i] = *books[i].ToResponse()
	}
	return responses, nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return author.ErrBlankName
	}
	return nil
}

// validateBirthDate rejects dates strictly after "today" evaluated in
// the reference timezone.
func (s *AuthorService) validateBirthDate(d shared.Date) error {
	if d.After(shared.Today(s.loc)) {
		return author.ErrBirthDateInFuture
	}
	return nil
}
