package service

import (
	"sort"
	"strings"

	"github.com/mmcdole/folio/internal/domain"
)

// ListPage is everything the list view needs to draw one page
type ListPage struct {
	Books         []domain.Book // books on the current page
	FilteredCount int           // matches across all pages
	PageCount     int
	CurrentPage   int
}

// MatchesFilter reports whether a book passes the title search and genre filter.
// Both comparisons are case-insensitive substring matches.
func MatchesFilter(book domain.Book, settings domain.FilterSettings) bool {
	term := strings.ToLower(settings.SearchTerm)
	if !strings.Contains(strings.ToLower(book.Title), term) {
		return false
	}
	if settings.Genre == domain.GenreAll {
		return true
	}
	genres := strings.ToLower(domain.ExtractGenres(book.Subjects))
	return strings.Contains(genres, strings.ToLower(settings.Genre))
}

// VisibleBooks filters the catalog, preserving catalog order
func VisibleBooks(catalog []domain.Book, settings domain.FilterSettings) []domain.Book {
	var visible []domain.Book
	for _, b := range catalog {
		if MatchesFilter(b, settings) {
			visible = append(visible, b)
		}
	}
	return visible
}

// PageCount returns the number of pages needed for n books
func PageCount(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + domain.PageSize - 1) / domain.PageSize
}

// PageSlice returns the books on a 1-based page. Out-of-range pages are empty.
func PageSlice(visible []domain.Book, page int) []domain.Book {
	if page < 1 {
		return nil
	}
	start := (page - 1) * domain.PageSize
	if start >= len(visible) {
		return nil
	}
	end := start + domain.PageSize
	if end > len(visible) {
		end = len(visible)
	}
	return visible[start:end]
}

// BuildListPage combines catalog, filter and pagination into one page.
// The current page is clamped into [1, PageCount].
func BuildListPage(catalog []domain.Book, settings domain.FilterSettings, p domain.Pagination) ListPage {
	visible := VisibleBooks(catalog, settings)
	pages := PageCount(len(visible))

	current := p.CurrentPage
	if current > pages {
		current = pages
	}
	if current < 1 {
		current = 1
	}

	return ListPage{
		Books:         PageSlice(visible, current),
		FilteredCount: len(visible),
		PageCount:     pages,
		CurrentPage:   current,
	}
}

// GenreOptions returns the picker choices: "all" followed by every
// label found in the catalog, sorted case-insensitively.
func GenreOptions(catalog []domain.Book) []string {
	seen := make(map[string]struct{})
	var labels []string
	for _, b := range catalog {
		for _, label := range domain.GenreLabels(b.Subjects) {
			if label == "" {
				continue
			}
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			labels = append(labels, label)
		}
	}

	sort.Slice(labels, func(i, j int) bool {
		return strings.ToLower(labels[i]) < strings.ToLower(labels[j])
	})

	return append([]string{domain.GenreAll}, labels...)
}

// WishlistBooks returns catalog books whose id is in ids, in catalog order.
// Ids with no catalog entry are skipped.
func WishlistBooks(catalog []domain.Book, ids []int) []domain.Book {
	if len(ids) == 0 {
		return nil
	}
	members := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		members[id] = struct{}{}
	}

	var books []domain.Book
	for _, b := range catalog {
		if _, ok := members[b.ID]; ok {
			books = append(books, b)
		}
	}
	return books
}
