package dom

import (
	"golang.org/x/net/html"
)

// Window event types.
const (
	EventScroll   = "scroll"
	EventResize   = "resize"
	EventNavigate = "navigate"
)

// Box is the vertical geometry of a laid out element.
type Box struct {
	Top    float64
	Height float64
}

// Layout supplies element geometry. A headless document has no layout
// engine, so whoever drives the page provides one.
type Layout interface {
	Box(n *html.Node) (Box, bool)
}

// StaticLayout maps element ids to fixed boxes.
type StaticLayout map[string]Box

func (l StaticLayout) Box(n *html.Node) (Box, bool) {
	box, ok := l[GetAttr(n, "id")]
	return box, ok
}

// OpenedWindow records a request to open a new browsing context.
type OpenedWindow struct {
	URL      string
	Target   string
	Features string
}

// Window holds viewport state and window-level listeners.
type Window struct {
	ScrollY     float64
	InnerWidth  float64
	InnerHeight float64
	Layout      Layout

	// ScrollHeight is the document height. Zero leaves scrolling unbounded
	// below.
	ScrollHeight float64

	// Location is the last URL the page navigated to.
	Location string
	Opened   []OpenedWindow

	listeners map[string][]*listener
	nextID    uint64
}

func newWindow() *Window {
	return &Window{
		InnerWidth:  1280,
		InnerHeight: 800,
		Layout:      StaticLayout{},
		listeners:   make(map[string][]*listener),
	}
}

// On registers a window-level listener and returns its remover.
func (w *Window) On(eventType string, fn Listener) func() {
	w.nextID++
	l := &listener{id: w.nextID, fn: fn}
	w.listeners[eventType] = append(w.listeners[eventType], l)

	return func() {
		list := w.listeners[eventType]
		for i, existing := range list {
			if existing.id == l.id {
				w.listeners[eventType] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

func (w *Window) emit(eventType string) {
	list := w.listeners[eventType]
	snapshot := make([]*listener, len(list))
	copy(snapshot, list)

	ev := &Event{Type: eventType}
	for _, l := range snapshot {
		l.fn(ev)
	}
}

// MaxScrollY is the furthest the viewport can scroll, or -1 when the
// document height is unknown.
func (w *Window) MaxScrollY() float64 {
	if w.ScrollHeight <= 0 {
		return -1
	}
	return max(w.ScrollHeight-w.InnerHeight, 0)
}

// ScrollTo moves the viewport, clamped to the document, and fires scroll
// listeners.
func (w *Window) ScrollTo(y float64) {
	if limit := w.MaxScrollY(); limit >= 0 && y > limit {
		y = limit
	}
	if y < 0 {
		y = 0
	}
	w.ScrollY = y
	w.emit(EventScroll)
}

// Resize changes the viewport size and fires resize listeners.
func (w *Window) Resize(width, height float64) {
	w.InnerWidth = width
	w.InnerHeight = height
	w.emit(EventResize)
}

// Navigate records a page navigation.
func (w *Window) Navigate(url string) {
	w.Location = url
	w.emit(EventNavigate)
}

// Open records a request to open url in another browsing context.
func (w *Window) Open(url, target, features string) {
	w.Opened = append(w.Opened, OpenedWindow{URL: url, Target: target, Features: features})
}

// BoxOf returns the layout box of n, or a zero box when unknown.
func (w *Window) BoxOf(n *html.Node) Box {
	if n == nil || w.Layout == nil {
		return Box{}
	}
	box, _ := w.Layout.Box(n)
	return box
}
