package gutendex

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mmcdole/folio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listBody = `{
  "count": 2,
  "next": "https://gutendex.com/books/?page=2",
  "previous": null,
  "results": [
    {
      "id": 84,
      "title": "Frankenstein; Or, The Modern Prometheus",
      "authors": [{"name": "Shelley, Mary Wollstonecraft", "birth_year": 1797, "death_year": 1851}],
      "subjects": ["Frankenstein's monster (Fictitious character) -- Fiction", "Horror tales"],
      "languages": ["en"],
      "formats": {"image/jpeg": "https://example.org/84.jpg", "text/html": "https://example.org/84.html"},
      "download_count": 1000
    },
    {
      "id": 1342,
      "title": "Pride and Prejudice",
      "authors": [{"name": "Austen, Jane"}],
      "subjects": ["England -- Fiction"],
      "formats": {}
    }
  ]
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/books", 5*time.Second, nil)
}

func TestListBooks(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/books", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(listBody))
	})

	books, err := c.ListBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 2)

	assert.Equal(t, 84, books[0].ID)
	assert.Equal(t, "Shelley, Mary Wollstonecraft", books[0].AuthorNames())
	assert.Equal(t, "https://example.org/84.jpg", books[0].CoverURL())
	assert.Equal(t, []string{"en"}, books[0].Languages)
	assert.Equal(t, 1342, books[1].ID)
	assert.Empty(t, books[1].CoverURL())
}

func TestGetBook(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "84", r.URL.Query().Get("ids"))
		w.Write([]byte(listBody))
	})

	book, err := c.GetBook(context.Background(), 84)
	require.NoError(t, err)
	assert.Equal(t, "Frankenstein; Or, The Modern Prometheus", book.Title)
}

func TestGetBook_NotFound(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":0,"results":[]}`))
	})

	_, err := c.GetBook(context.Background(), 999999)
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
}

func TestListBooks_Errors(t *testing.T) {
	t.Run("bad status", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		_, err := c.ListBooks(context.Background())
		assert.ErrorIs(t, err, domain.ErrBadResponse)
	})

	t.Run("malformed body", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>oops</html>`))
		})
		_, err := c.ListBooks(context.Background())
		assert.ErrorIs(t, err, domain.ErrBadResponse)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		c := NewClient(srv.URL, time.Second, nil)
		_, err := c.ListBooks(context.Background())
		assert.ErrorIs(t, err, domain.ErrAPIUnavailable)
	})
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	c := NewClient("https://gutendex.com/books/", 0, nil)
	assert.Equal(t, "https://gutendex.com/books", c.baseURL)
	assert.Equal(t, defaultTimeout, c.httpClient.Timeout)
}
