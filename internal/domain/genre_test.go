package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractGenres(t *testing.T) {
	t.Run("empty subjects", func(t *testing.T) {
		assert.Equal(t, "", ExtractGenres(nil))
		assert.Equal(t, "", ExtractGenres([]string{}))
	})

	t.Run("splits and strips separators", func(t *testing.T) {
		got := ExtractGenres([]string{"Fiction -- General, Fiction -- Short Stories"})
		labels := strings.Split(got, ", ")
		assert.ElementsMatch(t, []string{"Fiction", "General", "Short Stories"}, labels)
	})

	t.Run("duplicates across subjects collapse", func(t *testing.T) {
		got := GenreLabels([]string{
			"Science fiction",
			"Adventure stories, Science fiction",
			"Science fiction -- Adventure stories",
		})
		assert.ElementsMatch(t, []string{"Science fiction", "Adventure stories"}, got)
	})

	t.Run("double dash separates labels", func(t *testing.T) {
		got := GenreLabels([]string{"Science fiction -- Adventure stories"})
		assert.Equal(t, []string{"Science fiction", "Adventure stories"}, got)
		for _, label := range got {
			assert.NotContains(t, label, "  ")
		}
	})

	t.Run("case is preserved", func(t *testing.T) {
		got := GenreLabels([]string{"Horror", "horror"})
		assert.ElementsMatch(t, []string{"Horror", "horror"}, got)
	})

	t.Run("trailing comma keeps empty label", func(t *testing.T) {
		got := GenreLabels([]string{"Poetry,"})
		assert.ElementsMatch(t, []string{"Poetry", ""}, got)
	})
}

func TestBookHelpers(t *testing.T) {
	b := Book{
		ID:      84,
		Title:   "Frankenstein",
		Authors: []Author{{Name: "Shelley, Mary"}, {Name: "Anon"}},
		Formats: map[string]string{FormatJPEG: "https://example.org/84.jpg"},
	}

	assert.Equal(t, "Shelley, Mary, Anon", b.AuthorNames())
	assert.Equal(t, "https://example.org/84.jpg", b.CoverURL())
	assert.Empty(t, Book{}.CoverURL())
}
