// Package catalog talks to the remote product catalog and tracks the
// lifecycle of each fetch.
//
// The remote source is a read-only JSON API (dummyjson.com in production).
// Products are taken verbatim from the API response and never mutated after
// ingestion; a new fetch replaces the previous result wholesale.
package catalog

// Product is a single catalog entry as returned by the remote source.
// Description and Brand are only populated by the detail endpoint.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Category    string  `json:"category"`
	Thumbnail   string  `json:"thumbnail"`
	Description string  `json:"description,omitempty"`
	Brand       string  `json:"brand,omitempty"`
}
