package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PhilTech-Hub/DQ-Product-Dashboard/internal/catalog"
	"github.com/charmbracelet/lipgloss"
)

// skeletonRows is how many placeholder rows the list shows while
// loading, matching the card count of the web original.
const skeletonRows = 8

// RenderProducts renders the current page of products.
func RenderProducts(products []catalog.Product, cursor, width int) string {
	if len(products) == 0 {
		return HelpStyle.Render("No products match your filters.")
	}

	var b strings.Builder
	for i, p := range products {
		b.WriteString(renderProductRow(p, i == cursor, width))
		b.WriteString("\n")
	}
	return b.String()
}

// renderProductRow renders a single product line:
// [category] Title ............. $price ★rating
func renderProductRow(p catalog.Product, selected bool, width int) string {
	badge := CategoryBadge.Render(p.Category)
	badgeWidth := lipgloss.Width(badge)

	price := fmt.Sprintf("$%.2f", p.Price)
	rating := fmt.Sprintf("★%.1f", p.Rating)
	rightWidth := utf8.RuneCountInString(price) + utf8.RuneCountInString(rating) + 2

	// Truncate title if needed (rune count, not bytes, for Unicode titles)
	titleWidth := width - badgeWidth - rightWidth - 6
	if titleWidth < 20 {
		titleWidth = 20
	}
	title := p.Title
	if utf8.RuneCountInString(title) > titleWidth {
		runes := []rune(title)
		title = string(runes[:titleWidth-3]) + "..."
	}

	if selected {
		line := fmt.Sprintf("%s  %s  %s %s", p.Category, title, price, rating)
		return SelectedItem.Width(width).Render(line)
	}

	left := badge + NormalItem.Render(title)
	leftWidth := lipgloss.Width(left)
	dotCount := width - leftWidth - rightWidth - 2
	if dotCount < 0 {
		dotCount = 0
	}
	dots := MetaItem.Render(strings.Repeat(".", dotCount))

	return left + dots + " " + PriceStyle.Render(price) + " " + RatingStyle.Render(rating)
}

// RenderSkeletons renders placeholder rows shown once the skeleton
// delay has elapsed during a slow load.
func RenderSkeletons(width int) string {
	rowWidth := width - 4
	if rowWidth < 10 {
		rowWidth = 10
	}

	var b strings.Builder
	for i := 0; i < skeletonRows; i++ {
		b.WriteString(SkeletonRow.Render(strings.Repeat("░", rowWidth)))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderPagination renders the "Page X of Y" line with nav hints.
// Shown even for a single (possibly empty) page.
func RenderPagination(page, displayPages, width int) string {
	var b strings.Builder
	if page > 1 {
		b.WriteString(StatusBarKey.Render("←"))
		b.WriteString(StatusBarText.Render(" prev  "))
	}
	b.WriteString(fmt.Sprintf("Page %d of %d", page, displayPages))
	if page < displayPages {
		b.WriteString(StatusBarText.Render("  next "))
		b.WriteString(StatusBarKey.Render("→"))
	}
	return FilterBar.Width(width).Render(b.String())
}

// RenderListStatusBar renders the bottom status bar for the list view.
func RenderListStatusBar(cursor, pageCount int, width int, loading bool) string {
	var position string
	if loading {
		position = " Loading... "
	} else if pageCount > 0 {
		position = fmt.Sprintf(" %d/%d ", cursor+1, pageCount)
	} else {
		position = " 0/0 "
	}

	keys := []string{
		StatusBarKey.Render("j/k") + StatusBarText.Render(":nav"),
		StatusBarKey.Render("Enter") + StatusBarText.Render(":open"),
		StatusBarKey.Render("/") + StatusBarText.Render(":search"),
		StatusBarKey.Render("c") + StatusBarText.Render(":category"),
		StatusBarKey.Render("s") + StatusBarText.Render(":sort"),
		StatusBarKey.Render("←/→") + StatusBarText.Render(":page"),
		StatusBarKey.Render("r") + StatusBarText.Render(":refresh"),
		StatusBarKey.Render("q") + StatusBarText.Render(":quit"),
	}
	keyHints := strings.Join(keys, " ")

	leftWidth := lipgloss.Width(position)
	rightWidth := lipgloss.Width(keyHints)
	padding := width - leftWidth - rightWidth
	if padding < 0 {
		padding = 0
	}

	bar := position + strings.Repeat(" ", padding) + keyHints
	return StatusBar.Width(width).Render(bar)
}
