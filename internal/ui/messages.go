// Package ui provides the Bubble Tea TUI for the product dashboard.
package ui

import "github.com/PhilTech-Hub/DQ-Product-Dashboard/internal/catalog"

// ProductsLoaded is sent when the product list fetch settles.
// Gen ties the message to the fetch that produced it (for stale-check):
// results from superseded requests are recognized and discarded.
type ProductsLoaded struct {
	Gen      int
	Products []catalog.Product
	Total    int
	Err      error
}

// ProductLoaded is sent when a product detail fetch settles.
type ProductLoaded struct {
	Gen     int
	Product catalog.Product
	Err     error
}

// listSkeletonMsg fires when the list skeleton delay elapses. A stale
// generation means loading already settled or was superseded, and the
// message is dropped, which is how the scheduled skeleton is cancelled.
type listSkeletonMsg struct {
	gen int
}

// detailSkeletonMsg fires when the detail skeleton delay elapses.
type detailSkeletonMsg struct {
	gen int
}
