// Package nav drives in-page navigation: the mobile menu, eased scrolling to
// anchors and scroll position tracking.
package nav

import (
	"log"
	"time"

	"github.com/mrlokans/portfolio/internal/config"
	"github.com/mrlokans/portfolio/internal/dom"
	"github.com/mrlokans/portfolio/internal/eventloop"
	"github.com/mrlokans/portfolio/internal/scrolllock"
)

type Options struct {
	MenuBreakpoint      float64
	HeaderOffset        float64
	ActiveSectionOffset float64
	HeaderScrolledAt    float64
	BackToTopVisibleAt  float64
	ScrollDuration      time.Duration
	LinkScrollDelay     time.Duration
}

func OptionsFromConfig(ui config.UI) Options {
	return Options{
		MenuBreakpoint:      float64(ui.MenuBreakpoint),
		HeaderOffset:        ui.HeaderOffset,
		ActiveSectionOffset: ui.ActiveSectionOffset,
		HeaderScrolledAt:    ui.HeaderScrolledAt,
		BackToTopVisibleAt:  ui.BackToTopVisibleAt,
		ScrollDuration:      ui.ScrollDuration,
		LinkScrollDelay:     ui.NavScrollDelay,
	}
}

// Controller wires navigation into a document.
type Controller struct {
	doc      *dom.Document
	Scroller *Scroller
	Spy      *ScrollSpy
	// Menu is nil when the page has no hamburger menu.
	Menu *Menu
}

func New(doc *dom.Document, sched eventloop.Scheduler, lock *scrolllock.Lock, opts Options) *Controller {
	scroller := NewScroller(doc, sched, opts.ScrollDuration, opts.HeaderOffset)
	c := &Controller{
		doc:      doc,
		Scroller: scroller,
		Spy: &ScrollSpy{
			doc:                 doc,
			activeSectionOffset: opts.ActiveSectionOffset,
			headerScrolledAt:    opts.HeaderScrolledAt,
			backToTopVisibleAt:  opts.BackToTopVisibleAt,
		},
	}

	hamburger := doc.ByID("hamburger")
	panel := doc.ByID("nav-menu")
	if hamburger != nil && panel != nil {
		c.Menu = &Menu{
			doc:        doc,
			sched:      sched,
			lock:       lock,
			scroller:   scroller,
			breakpoint: opts.MenuBreakpoint,
			linkDelay:  opts.LinkScrollDelay,
			hamburger:  hamburger,
			panel:      panel,
		}
	}
	return c
}

// Init registers the navigation listeners.
func (c *Controller) Init() {
	if c.Menu != nil {
		c.Menu.bind()
	} else {
		log.Printf("Navigation: no hamburger menu in template, menu disabled")
	}

	c.doc.Window.On(dom.EventScroll, func(*dom.Event) { c.Spy.Update() })
}

// InitBackToTop makes #back-to-top scroll the page to #home.
func (c *Controller) InitBackToTop() {
	backToTop := c.doc.ByID("back-to-top")
	if backToTop == nil {
		return
	}
	c.doc.On(backToTop, dom.EventClick, func(*dom.Event) {
		c.Scroller.ScrollToHref("#home")
	})
}
