// Package view turns the raw product list into the page the UI renders.
// All functions are pure: []Product in, []Product out. No side effects,
// deterministic, safe to call on every input change.
//
// Composition order is fixed: filter, then sort, then paginate. Sorting
// after filtering keeps page boundaries meaningful for the filtered set.
package view

import (
	"sort"
	"strings"

	"github.com/PhilTech-Hub/DQ-Product-Dashboard/internal/catalog"
)

// DefaultPageSize is how many products one page shows.
const DefaultPageSize = 10

// Derived is the fully recomputed view: never stored as a source of
// truth, always a function of (products, controls).
type Derived struct {
	Categories []string          // distinct categories, first-appearance order
	Filtered   []catalog.Product // after filter + sort
	TotalPages int               // 0 when Filtered is empty
	Page       int               // requested page clamped into range
	PageSlice  []catalog.Product // the visible page, len <= page size
}

// Categories returns the distinct category values in order of first
// appearance in products. Used to populate the filter control only; it
// does not validate the selected category.
func Categories(products []catalog.Product) []string {
	seen := make(map[string]bool, len(products))
	var categories []string
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// ApplyFilters keeps products matching both the search term and the
// category. A blank (after trimming) search term matches everything;
// otherwise the title must contain the term, case-insensitively. An
// empty category matches everything; otherwise the category must match
// exactly, case-sensitively. The two checks compose with AND, so their
// order does not affect the result.
func ApplyFilters(products []catalog.Product, searchTerm, category string) []catalog.Product {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	result := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if term != "" && !strings.Contains(strings.ToLower(p.Title), term) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		result = append(result, p)
	}
	return result
}

// ApplySort returns products ordered by the given Order. The sort is
// stable: products with equal keys keep their relative input order.
// SortNone returns the input order. The input slice is never mutated.
func ApplySort(products []catalog.Product, order Order) []catalog.Product {
	result := make([]catalog.Product, len(products))
	copy(result, products)

	switch order {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case SortRatingDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	}

	return result
}

// Paginate returns the 1-based page of products and the total page
// count. The slice bounds are clamped to the available length; an empty
// input has zero total pages and renders as a single empty page.
func Paginate(products []catalog.Product, page, pageSize int) ([]catalog.Product, int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	totalPages := (len(products) + pageSize - 1) / pageSize

	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start > len(products) {
		start = len(products)
	}
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}

	return products[start:end], totalPages
}

// Derive runs the whole pipeline (filter, sort, paginate) and clamps
// the requested page into [1, max(1, totalPages)].
func Derive(products []catalog.Product, c Controls, pageSize int) Derived {
	filtered := ApplySort(ApplyFilters(products, c.SearchTerm, c.Category), c.Sort)

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	totalPages := (len(filtered) + pageSize - 1) / pageSize

	page := c.Page
	if page < 1 {
		page = 1
	}
	if max := maxPage(totalPages); page > max {
		page = max
	}

	slice, _ := Paginate(filtered, page, pageSize)

	return Derived{
		Categories: Categories(products),
		Filtered:   filtered,
		TotalPages: totalPages,
		Page:       page,
		PageSlice:  slice,
	}
}

// DisplayPages is TotalPages floored at one: an empty result still
// shows as "Page 1 of 1".
func (d Derived) DisplayPages() int {
	return maxPage(d.TotalPages)
}

func maxPage(totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	return totalPages
}
