package domain

import "sort"

// Well-known format keys used by the books API
const (
	FormatHTML = "text/html"
	FormatEPUB = "application/epub+zip"
	FormatMOBI = "application/x-mobipocket-ebook"
	FormatRDF  = "application/rdf+xml"
	FormatJPEG = "image/jpeg"
	FormatText = "text/plain"
)

// defaultFormatLabel is used for any key not listed in formatLabels
const defaultFormatLabel = "Download as ZIP"

var formatLabels = map[string]string{
	FormatHTML: "Read",
	FormatEPUB: "Download Epub",
	FormatMOBI: "Download Mobi",
	FormatRDF:  "Download RDF",
	FormatJPEG: "View Original Picture",
	FormatText: "Read As Text",
}

// FormatLabel returns the human label for a format key.
// Matching is exact, so parameterised keys such as
// "text/plain; charset=utf-8" get the default label.
func FormatLabel(format string) string {
	if label, ok := formatLabels[format]; ok {
		return label
	}
	return defaultFormatLabel
}

// Link is a labelled download or reading URL for a book
type Link struct {
	Format string
	Label  string
	URL    string
}

// Links returns one link per available format, ordered by format key
func (b Book) Links() []Link {
	keys := make([]string, 0, len(b.Formats))
	for k := range b.Formats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	links := make([]Link, len(keys))
	for i, k := range keys {
		links[i] = Link{Format: k, Label: FormatLabel(k), URL: b.Formats[k]}
	}
	return links
}
