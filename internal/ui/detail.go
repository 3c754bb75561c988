package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/PhilTech-Hub/DQ-Product-Dashboard/internal/catalog"
)

// renderStars builds a five-star rating line: full stars for each whole
// point, a half star when the fraction reaches 0.5, empty stars to pad
// to five. "⭑" stands in for the half-star glyph terminals lack.
func renderStars(rating float64) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}

	full := int(math.Floor(rating))
	half := rating-float64(full) >= 0.5

	var b strings.Builder
	for i := 0; i < full; i++ {
		b.WriteString("★")
	}
	stars := full
	if half {
		b.WriteString("⭑")
		stars++
	}
	for ; stars < 5; stars++ {
		b.WriteString("☆")
	}
	return b.String()
}

// RenderDetail renders the product detail screen.
func RenderDetail(p catalog.Product, width int) string {
	var b strings.Builder

	b.WriteString(DetailTitle.Render(p.Title))
	b.WriteString("\n\n")

	if p.Description != "" {
		b.WriteString(DetailBody.Width(width - 4).Render(p.Description))
		b.WriteString("\n\n")
	}

	b.WriteString(PriceStyle.Render(fmt.Sprintf("$%.2f", p.Price)))
	b.WriteString("\n")
	b.WriteString(RatingStyle.Render(renderStars(p.Rating)))
	b.WriteString(DetailLabel.Render(fmt.Sprintf(" %.2f/5", p.Rating)))
	b.WriteString("\n\n")

	b.WriteString(DetailLabel.Render("Category: "))
	b.WriteString(p.Category)
	b.WriteString("\n")
	if p.Brand != "" {
		b.WriteString(DetailLabel.Render("Brand:    "))
		b.WriteString(p.Brand)
		b.WriteString("\n")
	}
	if p.Thumbnail != "" {
		b.WriteString(DetailLabel.Render("Image:    "))
		b.WriteString(MetaItem.Render(p.Thumbnail))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderDetailSkeleton renders the placeholder shown once the detail
// skeleton delay has elapsed during a slow load.
func RenderDetailSkeleton(width int) string {
	rowWidth := width - 4
	if rowWidth < 10 {
		rowWidth = 10
	}

	var b strings.Builder
	b.WriteString(SkeletonRow.Render(strings.Repeat("░", rowWidth/2)))
	b.WriteString("\n\n")
	for i := 0; i < 4; i++ {
		b.WriteString(SkeletonRow.Render(strings.Repeat("░", rowWidth)))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderNotFound renders the dedicated not-found screen, distinct from
// the transport-failure presentation.
func RenderNotFound(id, width int) string {
	var b strings.Builder
	b.WriteString(DetailTitle.Render("Product Not Found"))
	b.WriteString("\n\n")
	b.WriteString(DetailBody.Render(fmt.Sprintf("The catalog has no product with id %d.", id)))
	b.WriteString("\n\n")
	b.WriteString(StatusBarKey.Render("esc"))
	b.WriteString(StatusBarText.Render(" back to products"))
	return b.String()
}

// RenderDetailStatusBar renders the bottom status bar for the detail view.
func RenderDetailStatusBar(width int) string {
	keys := []string{
		StatusBarKey.Render("esc") + StatusBarText.Render(":back"),
		StatusBarKey.Render("r") + StatusBarText.Render(":retry"),
		StatusBarKey.Render("q") + StatusBarText.Render(":quit"),
	}
	return StatusBar.Width(width).Render(strings.Join(keys, " "))
}
