// Package widgets holds the small page behaviours that are not navigation or
// content rendering: portfolio filter buttons, reveal-on-scroll animations
// and transient notifications.
package widgets

import (
	"github.com/mrlokans/portfolio/internal/dom"
)

// FilterAll shows every portfolio item.
const FilterAll = "all"

// InitPortfolioFilters makes each .filter-btn show only the portfolio items
// whose data-category matches its data-filter. Items are looked up on every
// click, so cards rendered later are filtered too.
func InitPortfolioFilters(doc *dom.Document) {
	buttons := doc.QueryAll(".filter-btn")
	for _, btn := range buttons {
		filter := dom.GetAttr(btn, "data-filter")
		doc.On(btn, dom.EventClick, func(*dom.Event) {
			for _, other := range buttons {
				dom.RemoveClass(other, "active")
			}
			dom.AddClass(btn, "active")

			for _, item := range doc.QueryAll(".portfolio-item") {
				visible := filter == FilterAll || dom.GetAttr(item, "data-category") == filter
				dom.SetDisplay(item, visible)
			}
		})
	}
}

// HidePortfolioGrid hides #portfolio-grid until a filter or listing page
// reveals it.
func HidePortfolioGrid(doc *dom.Document) {
	if grid := doc.ByID("portfolio-grid"); grid != nil {
		dom.SetDisplay(grid, false)
	}
}
