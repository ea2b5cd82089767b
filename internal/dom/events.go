package dom

import (
	"golang.org/x/net/html"
)

// Event types dispatched through the tree.
const (
	EventClick      = "click"
	EventKeyDown    = "keydown"
	EventSubmit     = "submit"
	EventMouseEnter = "mouseenter"
	EventMouseLeave = "mouseleave"
)

// KeyEscape is the Key of an Escape keydown event.
const KeyEscape = "Escape"

// Event is dispatched from Target up through its ancestors to the document.
type Event struct {
	Type          string
	Key           string
	Target        *html.Node
	CurrentTarget *html.Node

	defaultPrevented bool
	stopped          bool
}

func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

func (e *Event) StopPropagation() {
	e.stopped = true
}

// Listener handles a dispatched event.
type Listener func(e *Event)

type listener struct {
	id uint64
	fn Listener
}

func bubbles(eventType string) bool {
	return eventType != EventMouseEnter && eventType != EventMouseLeave
}

// On registers fn for events of eventType reaching n. Register on d.Root to
// listen at document level. The returned function removes the listener.
func (d *Document) On(n *html.Node, eventType string, fn Listener) func() {
	d.nextID++
	l := &listener{id: d.nextID, fn: fn}

	byType, ok := d.listeners[n]
	if !ok {
		byType = make(map[string][]*listener)
		d.listeners[n] = byType
	}
	byType[eventType] = append(byType[eventType], l)

	return func() { d.off(n, eventType, l.id) }
}

func (d *Document) off(n *html.Node, eventType string, id uint64) {
	byType, ok := d.listeners[n]
	if !ok {
		return
	}
	list := byType[eventType]
	for i, l := range list {
		if l.id == id {
			byType[eventType] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(byType[eventType]) == 0 {
		delete(byType, eventType)
	}
	if len(byType) == 0 {
		delete(d.listeners, n)
	}
}

func (d *Document) forget(n *html.Node) {
	delete(d.listeners, n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.forget(c)
	}
}

// Dispatch delivers ev to target and, for bubbling types, to its ancestors.
// It returns false when a listener called PreventDefault.
func (d *Document) Dispatch(target *html.Node, ev *Event) bool {
	ev.Target = target
	for n := target; n != nil; n = n.Parent {
		d.deliver(n, ev)
		if ev.stopped || !bubbles(ev.Type) {
			break
		}
	}
	ev.CurrentTarget = nil
	return !ev.defaultPrevented
}

func (d *Document) deliver(n *html.Node, ev *Event) {
	list := d.listeners[n][ev.Type]
	if len(list) == 0 {
		return
	}
	// Listeners may add or remove listeners while running.
	snapshot := make([]*listener, len(list))
	copy(snapshot, list)

	ev.CurrentTarget = n
	for _, l := range snapshot {
		l.fn(ev)
	}
}

// Click dispatches a click on n.
func (d *Document) Click(n *html.Node) bool {
	return d.Dispatch(n, &Event{Type: EventClick})
}

// KeyDown dispatches a keydown with the given key at the focused element,
// which is always the body in this model.
func (d *Document) KeyDown(key string) bool {
	target := d.Body()
	if target == nil {
		target = d.Root
	}
	return d.Dispatch(target, &Event{Type: EventKeyDown, Key: key})
}

// Hover dispatches mouseenter on n.
func (d *Document) Hover(n *html.Node) {
	d.Dispatch(n, &Event{Type: EventMouseEnter})
}

func (d *Document) Unhover(n *html.Node) {
	d.Dispatch(n, &Event{Type: EventMouseLeave})
}

// ListenerCount reports how many listeners are registered on n.
func (d *Document) ListenerCount(n *html.Node) int {
	total := 0
	for _, list := range d.listeners[n] {
		total += len(list)
	}
	return total
}
