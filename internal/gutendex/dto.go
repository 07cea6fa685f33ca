package gutendex

import "github.com/mmcdole/folio/internal/domain"

// ListResponse is the envelope returned by the books endpoint
type ListResponse struct {
	Count    int           `json:"count"`
	Next     *string       `json:"next"`
	Previous *string       `json:"previous"`
	Results  []domain.Book `json:"results"`
}
