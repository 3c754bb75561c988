package view

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/PhilTech-Hub/DQ-Product-Dashboard/internal/catalog"
)

// makeProducts builds n products cycling through three categories.
func makeProducts(n int) []catalog.Product {
	categories := []string{"smartphones", "laptops", "fragrances"}
	products := make([]catalog.Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, catalog.Product{
			ID:       i,
			Title:    fmt.Sprintf("Product %d", i),
			Price:    float64(i * 10),
			Rating:   float64(i%5) + 0.5,
			Category: categories[i%len(categories)],
		})
	}
	return products
}

func TestCategoriesFirstAppearanceOrder(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, Category: "smartphones"},
		{ID: 2, Category: "laptops"},
		{ID: 3, Category: "smartphones"},
		{ID: 4, Category: "fragrances"},
		{ID: 5, Category: "laptops"},
	}

	got := Categories(products)
	want := []string{"smartphones", "laptops", "fragrances"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestCategoriesEmpty(t *testing.T) {
	if got := Categories(nil); len(got) != 0 {
		t.Errorf("Categories(nil) = %v, want empty", got)
	}
}

func TestApplyFiltersSearchCaseInsensitive(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, Title: "iPhone 9", Category: "smartphones"},
		{ID: 2, Title: "Samsung Universe 9", Category: "smartphones"},
		{ID: 3, Title: "MacBook Pro", Category: "laptops"},
	}

	// "phone" must match "iPhone 9" as a case-insensitive substring.
	got := ApplyFilters(products, "phone", "")
	if len(got) != 1 || got[0].Title != "iPhone 9" {
		t.Errorf("ApplyFilters(phone) = %v, want [iPhone 9]", got)
	}
}

func TestApplyFiltersTrimsSearchTerm(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, Title: "iPhone 9"},
		{ID: 2, Title: "MacBook Pro"},
	}

	got := ApplyFilters(products, "   ", "")
	if len(got) != 2 {
		t.Errorf("blank search should match everything, got %d products", len(got))
	}

	got = ApplyFilters(products, "  macbook  ", "")
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("ApplyFilters('  macbook  ') = %v, want [MacBook Pro]", got)
	}
}

func TestApplyFiltersCategoryExact(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, Title: "A", Category: "smartphones"},
		{ID: 2, Title: "B", Category: "Smartphones"}, // different case, no match
		{ID: 3, Title: "C", Category: "laptops"},
	}

	got := ApplyFilters(products, "", "smartphones")
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("category filter should be exact and case-sensitive, got %v", got)
	}
}

func TestApplyFiltersCompose(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, Title: "iPhone 9", Category: "smartphones"},
		{ID: 2, Title: "iPhone X", Category: "smartphones"},
		{ID: 3, Title: "iPhone Case", Category: "accessories"},
	}

	got := ApplyFilters(products, "iphone", "smartphones")
	if len(got) != 2 {
		t.Errorf("AND composition should keep 2 products, got %d", len(got))
	}
}

func TestApplyFiltersIdempotent(t *testing.T) {
	products := makeProducts(30)

	once := ApplyFilters(products, "1", "laptops")
	twice := ApplyFilters(once, "1", "laptops")
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("ApplyFilters is not idempotent: %v != %v", once, twice)
	}
}

func TestApplySortPriceDesc(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, Price: 10},
		{ID: 2, Price: 5},
		{ID: 3, Price: 20},
	}

	got := ApplySort(products, SortPriceDesc)
	prices := []float64{got[0].Price, got[1].Price, got[2].Price}
	if !reflect.DeepEqual(prices, []float64{20, 10, 5}) {
		t.Errorf("SortPriceDesc = %v, want [20 10 5]", prices)
	}
}

func TestApplySortPriceAsc(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, Price: 10},
		{ID: 2, Price: 5},
		{ID: 3, Price: 20},
	}

	got := ApplySort(products, SortPriceAsc)
	prices := []float64{got[0].Price, got[1].Price, got[2].Price}
	if !reflect.DeepEqual(prices, []float64{5, 10, 20}) {
		t.Errorf("SortPriceAsc = %v, want [5 10 20]", prices)
	}
}

func TestApplySortStable(t *testing.T) {
	// Equal prices: relative input order must survive the sort.
	products := []catalog.Product{
		{ID: 1, Price: 10},
		{ID: 2, Price: 10},
		{ID: 3, Price: 5},
		{ID: 4, Price: 10},
	}

	got := ApplySort(products, SortPriceAsc)
	ids := []int{got[0].ID, got[1].ID, got[2].ID, got[3].ID}
	if !reflect.DeepEqual(ids, []int{3, 1, 2, 4}) {
		t.Errorf("stable sort order = %v, want [3 1 2 4]", ids)
	}
}

func TestApplySortNoneKeepsSourceOrder(t *testing.T) {
	products := makeProducts(10)
	got := ApplySort(products, SortNone)
	if !reflect.DeepEqual(got, products) {
		t.Error("SortNone should keep source order")
	}
}

func TestApplySortDoesNotMutateInput(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, Price: 30},
		{ID: 2, Price: 10},
		{ID: 3, Price: 20},
	}

	ApplySort(products, SortPriceAsc)
	if products[0].ID != 1 || products[1].ID != 2 || products[2].ID != 3 {
		t.Error("ApplySort mutated its input slice")
	}
}

func TestPaginateScenario(t *testing.T) {
	// 25 products at page size 10: 3 pages, last has 5.
	products := makeProducts(25)

	slice, totalPages := Paginate(products, 3, 10)
	if totalPages != 3 {
		t.Errorf("totalPages = %d, want 3", totalPages)
	}
	if len(slice) != 5 {
		t.Errorf("page 3 length = %d, want 5", len(slice))
	}
	if slice[0].ID != 21 {
		t.Errorf("page 3 starts at ID %d, want 21", slice[0].ID)
	}
}

func TestPaginatePartition(t *testing.T) {
	// Slices of pages 1..totalPages partition the input exactly, and no
	// slice exceeds the page size.
	for _, n := range []int{0, 1, 9, 10, 11, 25, 100} {
		for _, size := range []int{1, 3, 10, 50} {
			products := makeProducts(n)
			_, totalPages := Paginate(products, 1, size)

			total := 0
			for page := 1; page <= totalPages; page++ {
				slice, _ := Paginate(products, page, size)
				if len(slice) > size {
					t.Errorf("n=%d size=%d page=%d: slice length %d exceeds page size", n, size, page, len(slice))
				}
				total += len(slice)
			}
			if total != n {
				t.Errorf("n=%d size=%d: page slices sum to %d, want %d", n, size, total, n)
			}
		}
	}
}

func TestPaginateEmpty(t *testing.T) {
	slice, totalPages := Paginate(nil, 1, 10)
	if totalPages != 0 {
		t.Errorf("totalPages = %d, want 0", totalPages)
	}
	if len(slice) != 0 {
		t.Errorf("slice length = %d, want 0", len(slice))
	}
}

func TestPaginateBeyondEnd(t *testing.T) {
	products := makeProducts(5)
	slice, _ := Paginate(products, 99, 10)
	if len(slice) != 0 {
		t.Errorf("page past the end should be empty, got %d products", len(slice))
	}
}

func TestControlsResetPage(t *testing.T) {
	c := NewControls().WithPage(4)

	if got := c.WithSearch("phone"); got.Page != 1 {
		t.Errorf("WithSearch should reset page to 1, got %d", got.Page)
	}
	if got := c.WithCategory("laptops"); got.Page != 1 {
		t.Errorf("WithCategory should reset page to 1, got %d", got.Page)
	}
	if got := c.WithSort(SortPriceAsc); got.Page != 4 {
		t.Errorf("WithSort should keep the page, got %d", got.Page)
	}
}

func TestControlsWithPageFloor(t *testing.T) {
	c := NewControls().WithPage(0)
	if c.Page != 1 {
		t.Errorf("WithPage(0) should floor at 1, got %d", c.Page)
	}
}

func TestOrderCycle(t *testing.T) {
	o := SortNone
	seen := map[Order]bool{}
	for i := 0; i < 4; i++ {
		if seen[o] {
			t.Fatalf("order %v repeated before cycle completed", o)
		}
		seen[o] = true
		o = o.Next()
	}
	if o != SortNone {
		t.Errorf("cycle should wrap to SortNone, got %v", o)
	}
}

func TestDeriveClampsPage(t *testing.T) {
	products := makeProducts(25)

	// Page 9 with only 3 pages available clamps to 3.
	d := Derive(products, Controls{Page: 9}, 10)
	if d.Page != 3 {
		t.Errorf("Derive should clamp page to 3, got %d", d.Page)
	}
	if len(d.PageSlice) != 5 {
		t.Errorf("clamped page slice length = %d, want 5", len(d.PageSlice))
	}
}

func TestDeriveEmptyResultIsOnePage(t *testing.T) {
	products := makeProducts(25)

	d := Derive(products, Controls{SearchTerm: "no such product", Page: 2}, 10)
	if d.TotalPages != 0 {
		t.Errorf("TotalPages = %d, want 0", d.TotalPages)
	}
	if d.DisplayPages() != 1 {
		t.Errorf("DisplayPages() = %d, want 1", d.DisplayPages())
	}
	if d.Page != 1 {
		t.Errorf("page should clamp to 1 on empty result, got %d", d.Page)
	}
	if len(d.PageSlice) != 0 {
		t.Errorf("empty result should yield empty page slice, got %d", len(d.PageSlice))
	}
}

func TestDeriveFilterThenSort(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, Title: "iPhone 9", Category: "smartphones", Price: 549},
		{ID: 2, Title: "MacBook Pro", Category: "laptops", Price: 1749},
		{ID: 3, Title: "iPhone X", Category: "smartphones", Price: 899},
	}

	d := Derive(products, Controls{Category: "smartphones", Sort: SortPriceDesc, Page: 1}, 10)
	if len(d.Filtered) != 2 {
		t.Fatalf("filtered length = %d, want 2", len(d.Filtered))
	}
	if d.Filtered[0].ID != 3 || d.Filtered[1].ID != 1 {
		t.Errorf("filter+sort order = [%d %d], want [3 1]", d.Filtered[0].ID, d.Filtered[1].ID)
	}
	// Categories come from the unfiltered product list.
	if len(d.Categories) != 2 {
		t.Errorf("categories = %v, want both categories", d.Categories)
	}
}

func TestDeriveDeterministic(t *testing.T) {
	products := makeProducts(40)
	c := Controls{SearchTerm: "1", Sort: SortRatingDesc, Page: 2}

	a := Derive(products, c, 10)
	b := Derive(products, c, 10)
	if !reflect.DeepEqual(a, b) {
		t.Error("Derive is not deterministic for identical inputs")
	}
}
