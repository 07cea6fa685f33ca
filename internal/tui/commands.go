package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/folio/internal/domain"
	"github.com/mmcdole/folio/internal/service"
)

// Command factories for async operations

// FadeDelay is how long a removed wishlist row stays visible while fading
const FadeDelay = 500 * time.Millisecond

// LoadCatalogCmd fetches the catalog. The client carries its own timeout.
func LoadCatalogCmd(svc *service.CatalogService) tea.Cmd {
	return func() tea.Msg {
		books, err := svc.Load(context.Background())
		if err != nil {
			return CatalogFailedMsg{Err: err}
		}
		return CatalogLoadedMsg{Books: books}
	}
}

// LoadBookCmd fetches a single book for the detail view
func LoadBookCmd(svc *service.CatalogService, id int) tea.Cmd {
	return func() tea.Msg {
		book, err := svc.FetchBook(context.Background(), id)
		if err != nil {
			return BookFailedMsg{ID: id, Err: err}
		}
		return BookLoadedMsg{ID: id, Book: book}
	}
}

// OpenLinkCmd hands a link to the opener
func OpenLinkCmd(opener domain.Opener, link domain.Link) tea.Cmd {
	return func() tea.Msg {
		if err := opener.Open(link.URL); err != nil {
			return ErrMsg{Err: err, Context: "opening " + link.Label}
		}
		return LinkOpenedMsg{Link: link}
	}
}

// FadeOutCmd schedules the view-only removal of a wishlist row
func FadeOutCmd(bookID int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return WishlistFadeDoneMsg{BookID: bookID}
	})
}

// TickCmd creates a tick command for animations
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd clears the status message after a delay
func ClearStatusCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
