package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrBookNotFound indicates the requested book id returned no result
	ErrBookNotFound = errors.New("book not found")

	// ErrAPIUnavailable indicates the books API is unreachable
	ErrAPIUnavailable = errors.New("books API is unreachable")

	// ErrBadResponse indicates the API answered with an unexpected status or body
	ErrBadResponse = errors.New("unexpected response from books API")
)
