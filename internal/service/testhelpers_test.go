package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/mmcdole/folio/internal/domain"
	"github.com/mmcdole/folio/internal/store"
	"github.com/stretchr/testify/require"
)

func newMemStore(t *testing.T) *store.LocalStore {
	t.Helper()
	s, err := store.NewLocalStore("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// makeBooks builds n books with ids 1..n and the given subjects
func makeBooks(n int, subjects ...string) []domain.Book {
	books := make([]domain.Book, n)
	for i := range books {
		books[i] = domain.Book{
			ID:       i + 1,
			Title:    fmt.Sprintf("Book %d", i+1),
			Subjects: subjects,
		}
	}
	return books
}

type fakeClient struct {
	books     []domain.Book
	err       error
	listCalls int
	getCalls  int
}

func (f *fakeClient) ListBooks(ctx context.Context) ([]domain.Book, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.books, nil
}

func (f *fakeClient) GetBook(ctx context.Context, id int) (*domain.Book, error) {
	f.getCalls++
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.books {
		if b.ID == id {
			book := b
			return &book, nil
		}
	}
	return nil, domain.ErrBookNotFound
}
