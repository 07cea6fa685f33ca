package domain

import "strings"

// Book is a single catalog entry as returned by the books API.
type Book struct {
	ID            int               `json:"id"`
	Title         string            `json:"title"`
	Authors       []Author          `json:"authors"`
	Subjects      []string          `json:"subjects"`
	Bookshelves   []string          `json:"bookshelves,omitempty"`
	Languages     []string          `json:"languages,omitempty"`
	Formats       map[string]string `json:"formats"`
	DownloadCount int               `json:"download_count,omitempty"`
}

// Author is a book contributor
type Author struct {
	Name      string `json:"name"`
	BirthYear *int   `json:"birth_year,omitempty"`
	DeathYear *int   `json:"death_year,omitempty"`
}

// AuthorNames returns the author names joined for display
func (b Book) AuthorNames() string {
	names := make([]string, len(b.Authors))
	for i, a := range b.Authors {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}

// CoverURL returns the jpeg cover URL, empty if the book has none
func (b Book) CoverURL() string {
	return b.Formats[FormatJPEG]
}

// Genres returns the extracted genre label string
func (b Book) Genres() string {
	return ExtractGenres(b.Subjects)
}

// GenreAll is the sentinel genre meaning "no genre filter".
const GenreAll = "all"

// PageSize is the number of books shown per list page.
const PageSize = 10

// FilterSettings holds the persisted search term and genre selection.
type FilterSettings struct {
	SearchTerm string
	Genre      string
}

// DefaultFilterSettings returns settings that match every book
func DefaultFilterSettings() FilterSettings {
	return FilterSettings{Genre: GenreAll}
}

// Pagination tracks the current list page. It is never persisted.
type Pagination struct {
	CurrentPage int
}

// FirstPage returns pagination positioned at page 1
func FirstPage() Pagination {
	return Pagination{CurrentPage: 1}
}
