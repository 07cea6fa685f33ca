package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLabel(t *testing.T) {
	cases := map[string]string{
		"text/html":                      "Read",
		"application/epub+zip":           "Download Epub",
		"application/x-mobipocket-ebook": "Download Mobi",
		"application/rdf+xml":            "Download RDF",
		"image/jpeg":                     "View Original Picture",
		"text/plain":                     "Read As Text",
		"application/octet-stream":       "Download as ZIP",
		"text/plain; charset=us-ascii":   "Download as ZIP",
	}
	for format, want := range cases {
		assert.Equal(t, want, FormatLabel(format), format)
	}
}

func TestBookLinks(t *testing.T) {
	b := Book{Formats: map[string]string{
		"text/html":            "https://example.org/h",
		"application/epub+zip": "https://example.org/e",
	}}

	links := b.Links()
	assert.Len(t, links, 2)
	assert.Equal(t, Link{Format: "application/epub+zip", Label: "Download Epub", URL: "https://example.org/e"}, links[0])
	assert.Equal(t, Link{Format: "text/html", Label: "Read", URL: "https://example.org/h"}, links[1])

	assert.Empty(t, Book{}.Links())
}
