package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mmcdole/folio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_LoadsOnce(t *testing.T) {
	client := &fakeClient{books: makeBooks(32)}
	svc := NewCatalogService(client, nil)

	assert.False(t, svc.Loaded())
	assert.Nil(t, svc.Books())

	books, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, books, 32)

	again, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, again, 32)
	assert.Equal(t, 1, client.listCalls)
	assert.True(t, svc.Loaded())
}

func TestCatalog_FailedLoadStaysUnloaded(t *testing.T) {
	client := &fakeClient{err: domain.ErrAPIUnavailable}
	svc := NewCatalogService(client, nil)

	_, err := svc.Load(context.Background())
	assert.True(t, errors.Is(err, domain.ErrAPIUnavailable))
	assert.False(t, svc.Loaded())
}

func TestCatalog_FetchBookBypassesCatalog(t *testing.T) {
	client := &fakeClient{books: makeBooks(3)}
	svc := NewCatalogService(client, nil)

	book, err := svc.FetchBook(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Book 2", book.Title)
	assert.Equal(t, 0, client.listCalls)
	assert.Equal(t, 1, client.getCalls)

	_, err = svc.FetchBook(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
}
