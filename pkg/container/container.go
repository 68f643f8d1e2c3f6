package container

import (
	"context"
	"fmt"
	"time"

	"bookcatalog-backend/internal/config"
	"bookcatalog-backend/internal/infrastructure/database"

	"bookcatalog-backend/internal/domains/author"
	authorHandler "bookcatalog-backend/internal/domains/author/handler"
	authorRepo "bookcatalog-backend/internal/domains/author/repository"
	authorService "bookcatalog-backend/internal/domains/author/service"
	"bookcatalog-backend/internal/domains/book"
	bookHandler "bookcatalog-backend/internal/domains/book/handler"
	bookRepo "bookcatalog-backend/internal/domains/book/repository"
	bookService "bookcatalog-backend/internal/domains/book/service"
)

// Container is the root of the dependency graph. Every component is a
// singleton wired once at startup; handlers, services and repositories
// are stateless.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	AuthorRepo author.Repository
	BookRepo   book.Repository

	AuthorService author.Service
	BookService   book.Service

	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
}

// NewContainer loads config, connects infrastructure and wires the
// domain layers bottom-up. Any failure aborts startup.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db := database.NewPostgresDB(&cfg.Database)
	connectCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	if err := db.Connect(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	c := &Container{
		Config: cfg,
		DB:     db,
	}

	// Repositories
	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool)

	// Services
	c.AuthorService = authorService.NewService(c.AuthorRepo, c.BookRepo, cfg.ReferenceLocation())
	c.BookService = bookService.NewService(c.BookRepo)

	// Handlers
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
