package service

import (
	"testing"

	"github.com/mmcdole/folio/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMatchesFilter(t *testing.T) {
	book := domain.Book{
		Title:    "The Adventures of Sherlock Holmes",
		Subjects: []string{"Detective and mystery stories, English", "Holmes, Sherlock (Fictitious character) -- Fiction"},
	}

	tests := []struct {
		name     string
		settings domain.FilterSettings
		want     bool
	}{
		{"empty filter", domain.DefaultFilterSettings(), true},
		{"title case-insensitive", domain.FilterSettings{SearchTerm: "sherLOCK", Genre: domain.GenreAll}, true},
		{"title miss", domain.FilterSettings{SearchTerm: "watson", Genre: domain.GenreAll}, false},
		{"genre case-insensitive", domain.FilterSettings{Genre: "detective"}, true},
		{"genre substring of label", domain.FilterSettings{Genre: "mystery"}, true},
		{"genre miss", domain.FilterSettings{Genre: "Romance"}, false},
		{"both must match", domain.FilterSettings{SearchTerm: "holmes", Genre: "Romance"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesFilter(book, tt.settings))
		})
	}
}

func TestGenreAllPassesEveryBook(t *testing.T) {
	catalog := []domain.Book{
		{ID: 1, Title: "A", Subjects: nil},
		{ID: 2, Title: "B", Subjects: []string{"Poetry"}},
		{ID: 3, Title: "C", Subjects: []string{"--, ,--"}},
	}
	visible := VisibleBooks(catalog, domain.FilterSettings{Genre: domain.GenreAll})
	assert.Len(t, visible, 3)
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0))
	assert.Equal(t, 1, PageCount(1))
	assert.Equal(t, 1, PageCount(10))
	assert.Equal(t, 2, PageCount(11))
	assert.Equal(t, 3, PageCount(25))
	assert.Equal(t, 4, PageCount(32))
}

func TestPageSlice_CoversEveryBookOnce(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25, 32} {
		visible := makeBooks(n)
		seen := make(map[int]int)
		total := 0
		for p := 1; p <= PageCount(n)+1; p++ {
			page := PageSlice(visible, p)
			assert.LessOrEqual(t, len(page), domain.PageSize)
			total += len(page)
			for _, b := range page {
				seen[b.ID]++
			}
		}
		assert.Equal(t, n, total, "n=%d", n)
		for id, count := range seen {
			assert.Equal(t, 1, count, "book %d duplicated", id)
		}
	}
	assert.Empty(t, PageSlice(makeBooks(5), 0))
}

func TestBuildListPage_TwentyFiveBooks(t *testing.T) {
	catalog := makeBooks(25, "Fiction")
	settings := domain.DefaultFilterSettings()

	page := BuildListPage(catalog, settings, domain.Pagination{CurrentPage: 3})
	assert.Equal(t, 3, page.PageCount)
	assert.Equal(t, 25, page.FilteredCount)
	assert.Equal(t, 3, page.CurrentPage)
	assert.Len(t, page.Books, 5)
	assert.Equal(t, 21, page.Books[0].ID)
}

func TestBuildListPage_ClampsPage(t *testing.T) {
	catalog := makeBooks(12)

	page := BuildListPage(catalog, domain.DefaultFilterSettings(), domain.Pagination{CurrentPage: 9})
	assert.Equal(t, 2, page.CurrentPage)
	assert.Len(t, page.Books, 2)

	empty := BuildListPage(nil, domain.DefaultFilterSettings(), domain.FirstPage())
	assert.Equal(t, 0, empty.PageCount)
	assert.Equal(t, 1, empty.CurrentPage)
	assert.Empty(t, empty.Books)
}

func TestBuildListPage_PageCountUsesFilteredCount(t *testing.T) {
	catalog := append(makeBooks(15, "Poetry"), makeBooks(3, "Drama")...)
	for i := range catalog[15:] {
		catalog[15+i].ID = 100 + i
	}

	page := BuildListPage(catalog, domain.FilterSettings{Genre: "drama"}, domain.FirstPage())
	assert.Equal(t, 3, page.FilteredCount)
	assert.Equal(t, 1, page.PageCount)
}

func TestGenreOptions(t *testing.T) {
	catalog := []domain.Book{
		{Subjects: []string{"Fiction -- General", "adventure"}},
		{Subjects: []string{"Fiction, Poetry"}},
	}
	assert.Equal(t, []string{"all", "adventure", "Fiction", "General", "Poetry"}, GenreOptions(catalog))
	assert.Equal(t, []string{"all"}, GenreOptions(nil))
}

func TestWishlistBooks(t *testing.T) {
	catalog := makeBooks(5)

	t.Run("catalog order", func(t *testing.T) {
		books := WishlistBooks(catalog, []int{4, 2})
		assert.Len(t, books, 2)
		assert.Equal(t, 2, books[0].ID)
		assert.Equal(t, 4, books[1].ID)
	})

	t.Run("orphaned id is skipped", func(t *testing.T) {
		books := WishlistBooks(catalog, []int{42, 3})
		assert.Len(t, books, 1)
		assert.Equal(t, 3, books[0].ID)
	})

	t.Run("empty wishlist", func(t *testing.T) {
		assert.Empty(t, WishlistBooks(catalog, nil))
	})
}
