package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/pkg/database"
)

// postgresRepository implements book.Repository on pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

// queryer is satisfied by both *pgxpool.Pool and pgx.Tx, so the read
// helpers work inside and outside a transaction.
type queryer interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Create inserts the book and its author links in one transaction.
func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*book.Book, error) {
		// Columns not supplied stay at their storage default (NULL).
		columns := []string{"title"}
		placeholders := []string{"$1"}
		args := []interface{}{b.Title}

		if b.Price != nil {
			args = append(args, *b.Price)
			columns = append(columns, "price")
			placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
		}
		if b.Status != nil {
			args = append(args, string(*b.Status))
			columns = append(columns, "status")
			placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
		}

		query := fmt.Sprintf(
			"INSERT INTO books (%s) VALUES (%s) RETURNING id, title, price, status",
			strings.Join(columns, ", "),
			strings.Join(placeholders, ", "),
		)

		var created book.Book
		var price decimal.NullDecimal
		var status *string
		if err := tx.QueryRow(ctx, query, args...).Scan(
			&created.ID, &created.Title, &price, &status,
		); err != nil {
			return nil, translateBookError(err)
		}
		created.Price = toPrice(price)
		created.Status = toStatus(status)

		if err := insertAuthorLinks(ctx, tx, created.ID, b.AuthorIDs); err != nil {
			return nil, err
		}
		created.AuthorIDs = b.AuthorIDs

		return &created, nil
	})
}

// GetByID retrieves a book with its ordered author ids.
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	b, err := scanBookRow(ctx, r.pool, id)
	if err != nil {
		return nil, err
	}

	b.AuthorIDs, err = authorIDsOf(ctx, r.pool, id)
	if err != nil {
		return nil, err
	}

	return b, nil
}

// Update applies the scalar patch and the optional author-link
// replacement inside one transaction.
func (r *postgresRepository) Update(ctx context.Context, id int64, patch book.Patch, authorIDs []int64) (*book.Book, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*book.Book, error) {
		// Replace author links first: delete all rows for the book, then
		// reinsert the normalized set with fresh 1-based order values.
		if authorIDs != nil {
			if _, err := tx.Exec(ctx, "DELETE FROM book_authors WHERE book_id = $1", id); err != nil {
				return nil, fmt.Errorf("failed to delete author links: %w", err)
			}
			if err := insertAuthorLinks(ctx, tx, id, authorIDs); err != nil {
				return nil, err
			}
		}

		var b *book.Book
		var err error
		if patch.IsEmpty() {
			// No scalar change requested: a valid no-op, re-read the row.
			b, err = scanBookRow(ctx, tx, id)
		} else {
			b, err = updateBookRow(ctx, tx, id, patch)
		}
		if err != nil {
			return nil, err
		}

		if authorIDs != nil {
			b.AuthorIDs = authorIDs
		} else {
			b.AuthorIDs, err = authorIDsOf(ctx, tx, id)
			if err != nil {
				return nil, err
			}
		}

		return b, nil
	})
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}
	return exists, nil
}

// CountAuthors reports how many of the given author ids exist, so the
// caller can validate the whole set before any write.
func (r *postgresRepository) CountAuthors(ctx context.Context, ids []int64) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM authors WHERE id = ANY($1)", ids).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}
	return count, nil
}

// ListByAuthor joins every relationship row of every book that includes
// the author, so each returned book carries its complete ordered list.
func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID int64) ([]book.Book, error) {
	query := `
        SELECT b.id, b.title, b.price, b.status, ba.author_id
        FROM books b
        JOIN book_authors ba ON ba.book_id = b.id
        WHERE b.id IN (SELECT book_id FROM book_authors WHERE author_id = $1)
        ORDER BY b.id, ba.author_order
    `

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list books by author: %w", err)
	}
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		var (
			id           int64
			title        string
			price        decimal.NullDecimal
			status       *string
			linkAuthorID int64
		)
		if err := rows.Scan(&id, &title, &price, &status, &linkAuthorID); err != nil {
			return nil, fmt.Errorf("failed to scan book row: %w", err)
		}

		// Rows arrive ordered by (book id, author order); a new book id
		// starts a new group.
		if n := len(books); n == 0 || books[n-1].ID != id {
			books = append(books, book.Book{
				ID:     id,
				Title:  title,
				Price:  toPrice(price),
				Status: toStatus(status),
			})
		}
		books[len(books)-1].AuthorIDs = append(books[len(books)-1].AuthorIDs, linkAuthorID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

// ---------------- helpers ----------------

func scanBookRow(ctx context.Context, q queryer, id int64) (*book.Book, error) {
	var b book.Book
	var price decimal.NullDecimal
	var status *string
	err := q.QueryRow(ctx,
		"SELECT id, title, price, status FROM books WHERE id = $1", id,
	).Scan(&b.ID, &b.Title, &price, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	b.Price = toPrice(price)
	b.Status = toStatus(status)
	return &b, nil
}

// updateBookRow builds an UPDATE containing only the supplied fields.
func updateBookRow(ctx context.Context, tx pgx.Tx, id int64, patch book.Patch) (*book.Book, error) {
	sets := []string{}
	args := []interface{}{}

	if patch.Title != nil {
		args = append(args, *patch.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if patch.Price != nil {
		args = append(args, *patch.Price)
		sets = append(sets, fmt.Sprintf("price = $%d", len(args)))
	}
	if patch.Status != nil {
		args = append(args, string(*patch.Status))
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE books SET %s WHERE id = $%d RETURNING id, title, price, status",
		strings.Join(sets, ", "),
		len(args),
	)

	var b book.Book
	var price decimal.NullDecimal
	var status *string
	err := tx.QueryRow(ctx, query, args...).Scan(&b.ID, &b.Title, &price, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// The row vanished between the existence check and the
			// update: a lost-update race, surfaced as a conflict.
			return nil, book.ErrUpdateConflict
		}
		return nil, translateBookError(err)
	}
	b.Price = toPrice(price)
	b.Status = toStatus(status)
	return &b, nil
}

func insertAuthorLinks(ctx context.Context, tx pgx.Tx, bookID int64, authorIDs []int64) error {
	for _, link := range book.BuildAuthorLinks(bookID, authorIDs) {
		_, err := tx.Exec(ctx,
			"INSERT INTO book_authors (book_id, author_id, author_order) VALUES ($1, $2, $3)",
			link.BookID, link.AuthorID, link.Order,
		)
		if err != nil {
			return translateBookError(err)
		}
	}
	return nil
}

func authorIDsOf(ctx context.Context, q queryer, bookID int64) ([]int64, error) {
	rows, err := q.Query(ctx,
		"SELECT author_id FROM book_authors WHERE book_id = $1 ORDER BY author_order", bookID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load author links: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan author link: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating author links: %w", err)
	}
	return ids, nil
}

// translateBookError maps storage constraint violations to the domain
// conflict error, matching the error-to-status contract.
func translateBookError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", "23503", "23514": // unique, foreign key, check
			return book.ErrConstraintViolation
		}
	}
	return fmt.Errorf("book storage error: %w", err)
}

func toStatus(s *string) *book.Status {
	if s == nil {
		return nil
	}
	status := book.Status(*s)
	return &status
}

func toPrice(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	return &d.Decimal
}
