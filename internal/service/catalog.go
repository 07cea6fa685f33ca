package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mmcdole/folio/internal/domain"
)

// CatalogService loads the book collection once per session and serves
// single-book lookups for the detail view.
type CatalogService struct {
	client domain.BookClient
	logger *slog.Logger

	mu     sync.RWMutex
	books  []domain.Book
	loaded bool
}

// NewCatalogService creates a new catalog service
func NewCatalogService(client domain.BookClient, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{client: client, logger: logger}
}

// Load fetches the catalog on first call and returns the cached copy after that.
// A failed fetch leaves the service unloaded.
func (s *CatalogService) Load(ctx context.Context) ([]domain.Book, error) {
	s.mu.RLock()
	if s.loaded {
		books := s.books
		s.mu.RUnlock()
		return books, nil
	}
	s.mu.RUnlock()

	books, err := s.client.ListBooks(ctx)
	if err != nil {
		s.logger.Error("failed to fetch catalog", "error", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		// Lost a race with a concurrent Load; keep the first result
		return s.books, nil
	}
	s.books = books
	s.loaded = true
	s.logger.Info("catalog loaded", "count", len(books))
	return books, nil
}

// Books returns the loaded catalog, nil before Load succeeds
func (s *CatalogService) Books() []domain.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.books
}

// Loaded reports whether the catalog has been fetched
func (s *CatalogService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// FetchBook always goes to the API; the detail view does not read the catalog.
func (s *CatalogService) FetchBook(ctx context.Context, id int) (*domain.Book, error) {
	book, err := s.client.GetBook(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch book", "id", id, "error", err)
		return nil, err
	}
	return book, nil
}
