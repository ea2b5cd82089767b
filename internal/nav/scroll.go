package nav

import (
	"strings"
	"time"

	"github.com/mrlokans/portfolio/internal/dom"
	"github.com/mrlokans/portfolio/internal/eventloop"
	"golang.org/x/net/html"
)

// EaseInOutQuad interpolates from b by c over d at elapsed t.
func EaseInOutQuad(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t + b
	}
	t--
	return -c/2*(t*(t-2)-1) + b
}

// Scroller animates the window scroll position towards page anchors.
type Scroller struct {
	doc          *dom.Document
	sched        eventloop.Scheduler
	duration     time.Duration
	headerOffset float64
	frame        eventloop.TimerID
}

func NewScroller(doc *dom.Document, sched eventloop.Scheduler, duration time.Duration, headerOffset float64) *Scroller {
	return &Scroller{
		doc:          doc,
		sched:        sched,
		duration:     duration,
		headerOffset: headerOffset,
	}
}

// ScrollToHref scrolls to the element an in-page href ("#id") points at.
// Other hrefs and unknown ids are ignored.
func (s *Scroller) ScrollToHref(href string) {
	id, ok := strings.CutPrefix(href, "#")
	if !ok || id == "" {
		return
	}
	s.ScrollTo(s.doc.ByID(id))
}

// ScrollTo eases the window so target sits just below the fixed header. A
// new scroll replaces one still in flight.
func (s *Scroller) ScrollTo(target *html.Node) {
	if target == nil {
		return
	}
	win := s.doc.Window
	destination := win.BoxOf(target).Top - s.headerOffset
	if limit := win.MaxScrollY(); limit >= 0 && destination > limit {
		destination = limit
	}
	destination = max(destination, 0)
	start := win.ScrollY
	distance := destination - start
	duration := float64(s.duration.Milliseconds())

	if s.frame != 0 {
		s.sched.ClearTimeout(s.frame)
		s.frame = 0
	}
	if duration <= 0 {
		win.ScrollTo(destination)
		return
	}

	var startTime time.Time
	var step func(now time.Time)
	step = func(now time.Time) {
		if startTime.IsZero() {
			startTime = now
		}
		elapsed := float64(now.Sub(startTime).Milliseconds())
		if elapsed > duration {
			elapsed = duration
		}
		win.ScrollTo(EaseInOutQuad(elapsed, start, distance, duration))
		if elapsed < duration {
			s.frame = s.sched.RequestAnimationFrame(step)
			return
		}
		s.frame = 0
	}
	s.frame = s.sched.RequestAnimationFrame(step)
}

// Scrolling reports whether an animation is in flight.
func (s *Scroller) Scrolling() bool {
	return s.frame != 0
}
