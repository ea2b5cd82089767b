package nav

import (
	"log"
	"time"

	"github.com/mrlokans/portfolio/internal/dom"
	"github.com/mrlokans/portfolio/internal/eventloop"
	"github.com/mrlokans/portfolio/internal/scrolllock"
	"golang.org/x/net/html"
)

const activeClass = "active"

// Menu is the mobile hamburger menu: closed or open, mirrored by the
// "active" class on both the control and the panel.
type Menu struct {
	doc        *dom.Document
	sched      eventloop.Scheduler
	lock       *scrolllock.Lock
	scroller   *Scroller
	breakpoint float64
	linkDelay  time.Duration

	hamburger *html.Node
	panel     *html.Node
	release   func()
}

// IsOpen reports the menu state.
func (m *Menu) IsOpen() bool {
	return m.release != nil
}

func (m *Menu) Open() {
	if m.IsOpen() {
		return
	}
	dom.AddClass(m.hamburger, activeClass)
	dom.AddClass(m.panel, activeClass)
	m.release = m.lock.Acquire(scrolllock.Menu)
	log.Printf("Navigation: menu opened")
}

func (m *Menu) Close() {
	if !m.IsOpen() {
		return
	}
	dom.RemoveClass(m.hamburger, activeClass)
	dom.RemoveClass(m.panel, activeClass)
	m.release()
	m.release = nil
	log.Printf("Navigation: menu closed")
}

func (m *Menu) Toggle() {
	if m.IsOpen() {
		m.Close()
	} else {
		m.Open()
	}
}

func (m *Menu) bind() {
	m.doc.On(m.hamburger, dom.EventClick, func(e *dom.Event) {
		e.PreventDefault()
		e.StopPropagation()
		m.Toggle()
	})

	for _, link := range m.doc.QueryAll(".nav-link") {
		href := dom.GetAttr(link, "href")
		m.doc.On(link, dom.EventClick, func(e *dom.Event) {
			e.PreventDefault()
			m.Close()
			m.sched.SetTimeout(m.linkDelay, func() { m.scroller.ScrollToHref(href) })
		})
	}

	m.doc.On(m.doc.Root, dom.EventClick, func(e *dom.Event) {
		if !m.IsOpen() || dom.Contains(m.hamburger, e.Target) || dom.Contains(m.panel, e.Target) {
			return
		}
		m.Close()
	})

	m.doc.On(m.doc.Root, dom.EventKeyDown, func(e *dom.Event) {
		if e.Key == dom.KeyEscape {
			m.Close()
		}
	})

	m.doc.Window.On(dom.EventResize, func(*dom.Event) {
		if m.doc.Window.InnerWidth > m.breakpoint {
			m.Close()
		}
	})
}
