package view

// Order selects how the filtered product list is sorted.
type Order int

const (
	SortNone Order = iota
	SortPriceAsc
	SortPriceDesc
	SortRatingDesc
)

// String returns the label shown in the sort control.
func (o Order) String() string {
	switch o {
	case SortPriceAsc:
		return "Price: Low to High"
	case SortPriceDesc:
		return "Price: High to Low"
	case SortRatingDesc:
		return "Rating: High to Low"
	default:
		return "Sort By"
	}
}

// Next cycles to the following sort order, wrapping back to SortNone.
func (o Order) Next() Order {
	if o >= SortRatingDesc {
		return SortNone
	}
	return o + 1
}

// Controls holds the user-facing view inputs: search term, category
// filter, sort order and current page. It is a plain value: update
// operations return a new Controls rather than mutating in place, which
// keeps partial-update bugs out and makes the pipeline trivially
// testable.
type Controls struct {
	SearchTerm string
	Category   string // empty = no filter
	Sort       Order
	Page       int // 1-based
}

// NewControls returns the initial control state: no filters, source
// order, page 1.
func NewControls() Controls {
	return Controls{Page: 1}
}

// WithSearch returns a copy with the search term replaced.
// Changing the search always snaps back to page 1.
func (c Controls) WithSearch(term string) Controls {
	c.SearchTerm = term
	c.Page = 1
	return c
}

// WithCategory returns a copy with the category filter replaced.
// Changing the category always snaps back to page 1.
func (c Controls) WithCategory(category string) Controls {
	c.Category = category
	c.Page = 1
	return c
}

// WithSort returns a copy with the sort order replaced. The page is
// kept: reordering does not change which page exists, only what is on
// it.
func (c Controls) WithSort(order Order) Controls {
	c.Sort = order
	return c
}

// WithPage returns a copy on the given page, floored at 1. The upper
// bound depends on the filtered set and is enforced by Derive.
func (c Controls) WithPage(page int) Controls {
	if page < 1 {
		page = 1
	}
	c.Page = page
	return c
}
