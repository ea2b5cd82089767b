package widgets

import (
	"github.com/mrlokans/portfolio/internal/dom"
	"golang.org/x/net/html"
)

// RevealSelector matches the elements animated into view.
const RevealSelector = ".service-card, .blog-card, .social-card, .portfolio-item"

const (
	revealThreshold    = 0.1
	revealBottomMargin = 50.0
)

// Reveal adds "animate-in" to observed elements once enough of them enters
// the viewport. The class is never removed.
type Reveal struct {
	doc      *dom.Document
	observed []*html.Node
}

// InitReveal marks the animated elements present in the page and observes
// them from now on.
func InitReveal(doc *dom.Document) *Reveal {
	r := &Reveal{doc: doc}
	for _, n := range doc.QueryAll(RevealSelector) {
		dom.AddClass(n, "animate-on-scroll")
		r.observed = append(r.observed, n)
	}
	doc.Window.On(dom.EventScroll, func(*dom.Event) { r.Check() })
	doc.Window.On(dom.EventResize, func(*dom.Event) { r.Check() })
	r.Check()
	return r
}

// Check reveals every observed element that currently intersects the
// viewport shrunk by the bottom margin.
func (r *Reveal) Check() {
	win := r.doc.Window
	top := win.ScrollY
	bottom := win.ScrollY + win.InnerHeight - revealBottomMargin

	pending := r.observed[:0]
	for _, n := range r.observed {
		if !r.doc.Attached(n) {
			continue
		}
		var box dom.Box
		known := false
		if win.Layout != nil {
			box, known = win.Layout.Box(n)
		}
		if known && intersects(box, top, bottom) {
			dom.AddClass(n, "animate-in")
			continue
		}
		pending = append(pending, n)
	}
	r.observed = pending
}

func intersects(box dom.Box, top, bottom float64) bool {
	if box.Height <= 0 {
		return box.Top >= top && box.Top < bottom
	}
	visible := min(box.Top+box.Height, bottom) - max(box.Top, top)
	return visible > 0 && visible/box.Height >= revealThreshold
}
