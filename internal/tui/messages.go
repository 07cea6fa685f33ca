package tui

import "github.com/mmcdole/folio/internal/domain"

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// CatalogLoadedMsg signals that the catalog fetch completed
type CatalogLoadedMsg struct {
	Books []domain.Book
}

// CatalogFailedMsg signals that the catalog fetch failed
type CatalogFailedMsg struct {
	Err error
}

// BookLoadedMsg signals that a detail fetch completed
type BookLoadedMsg struct {
	ID   int
	Book *domain.Book
}

// BookFailedMsg signals that a detail fetch failed
type BookFailedMsg struct {
	ID  int
	Err error
}

// LinkOpenedMsg signals that a format link was handed to the opener
type LinkOpenedMsg struct {
	Link domain.Link
}

// WishlistFadeDoneMsg removes a faded row from the wishlist view
type WishlistFadeDoneMsg struct {
	BookID int
}

// TickMsg drives the loading spinner
type TickMsg struct{}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}
