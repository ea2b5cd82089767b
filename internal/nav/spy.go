package nav

import (
	"github.com/mrlokans/portfolio/internal/dom"
)

// ScrollSpy reacts to window scrolling: it marks the nav link of the section
// under the viewport top, shrinks the header and reveals the back-to-top
// control.
type ScrollSpy struct {
	doc                 *dom.Document
	activeSectionOffset float64
	headerScrolledAt    float64
	backToTopVisibleAt  float64
}

// CurrentSection returns the id of the section containing the scroll
// position. When sections overlap the last one in document order wins.
func (s *ScrollSpy) CurrentSection() string {
	win := s.doc.Window
	current := ""
	for _, section := range s.doc.QueryAll("section[id]") {
		box := win.BoxOf(section)
		top := box.Top - s.activeSectionOffset
		if win.ScrollY >= top && win.ScrollY < top+box.Height {
			current = dom.GetAttr(section, "id")
		}
	}
	return current
}

// Update recomputes every scroll-driven state.
func (s *ScrollSpy) Update() {
	y := s.doc.Window.ScrollY

	if header := s.doc.ByID("header"); header != nil {
		dom.ToggleClass(header, "scrolled", y > s.headerScrolledAt)
	}
	if backToTop := s.doc.ByID("back-to-top"); backToTop != nil {
		dom.ToggleClass(backToTop, "visible", y > s.backToTopVisibleAt)
	}

	current := s.CurrentSection()
	for _, link := range s.doc.QueryAll(".nav-link") {
		dom.ToggleClass(link, activeClass, current != "" && dom.GetAttr(link, "href") == "#"+current)
	}
}
