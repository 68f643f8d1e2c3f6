package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcatalog-backend/internal/domains/author"
)

// postgresRepository implements author.Repository on pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

// Create inserts a new author. The unique constraint on
// (name, birth_date) backs the duplicate-pair conflict.
func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	var created author.Author
	err := r.pool.QueryRow(ctx,
		"INSERT INTO authors (name, birth_date) VALUES ($1, $2) RETURNING id, name, birth_date",
		a.Name, a.BirthDate,
	).Scan(&created.ID, &created.Name, &created.BirthDate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, author.ErrAuthorAlreadyExists
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	var a author.Author
	err := r.pool.QueryRow(ctx,
		"SELECT id, name, birth_date FROM authors WHERE id = $1", id,
	).Scan(&a.ID, &a.Name, &a.BirthDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	return &a, nil
}

// Update writes the full merged record back.
func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	var updated author.Author
	err := r.pool.QueryRow(ctx,
		"UPDATE authors SET name = $1, birth_date = $2 WHERE id = $3 RETURNING id, name, birth_date",
		a.Name, a.BirthDate, a.ID,
	).Scan(&updated.ID, &updated.Name, &updated.BirthDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Distinguish "row gone" from "row gone mid-flight": the
			// service read the row just before this write.
			exists, checkErr := r.ExistsByID(ctx, a.ID)
			if checkErr != nil {
				return nil, checkErr
			}
			if !exists {
				return nil, author.ErrAuthorNotFound
			}
			return nil, author.ErrUpdateConflict
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, author.ErrAuthorAlreadyExists
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return &updated, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}
