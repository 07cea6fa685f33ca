package domain

import "context"

// BookClient fetches books from the remote API
type BookClient interface {
	// ListBooks returns the first page of the collection, sized by the API default
	ListBooks(ctx context.Context) ([]Book, error)

	// GetBook returns a single book by id
	GetBook(ctx context.Context, id int) (*Book, error)
}

// Opener opens a URL outside the terminal
type Opener interface {
	Open(url string) error
}
