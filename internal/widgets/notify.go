package widgets

import (
	"time"

	"github.com/mrlokans/portfolio/internal/dom"
	"github.com/mrlokans/portfolio/internal/eventloop"
	"golang.org/x/net/html"
)

// Notification types.
const (
	NotifyInfo    = "info"
	NotifySuccess = "success"
	NotifyError   = "error"
)

const (
	DefaultNotificationShowWait = 100 * time.Millisecond
	DefaultNotificationLifetime = 5 * time.Second
)

// Notifier shows one transient message at a time at the end of the body.
type Notifier struct {
	doc      *dom.Document
	sched    eventloop.Scheduler
	showWait time.Duration
	lifetime time.Duration
}

func NewNotifier(doc *dom.Document, sched eventloop.Scheduler, showWait, lifetime time.Duration) *Notifier {
	if showWait <= 0 {
		showWait = DefaultNotificationShowWait
	}
	if lifetime <= 0 {
		lifetime = DefaultNotificationLifetime
	}
	return &Notifier{doc: doc, sched: sched, showWait: showWait, lifetime: lifetime}
}

// Show replaces any visible notification with message. It slides in after a
// short wait and disappears on its own or when its close button is clicked.
func (n *Notifier) Show(message, kind string) *html.Node {
	if kind == "" {
		kind = NotifyInfo
	}
	if existing := n.doc.Query(".notification"); existing != nil {
		n.doc.Remove(existing)
	}

	closeBtn := dom.Element("button", dom.Text("×"))
	note := dom.Element("div",
		dom.Class("notification", "notification-"+kind),
		dom.Children(
			dom.Element("span", dom.Text(message)),
			closeBtn,
		),
	)

	parent := n.doc.Body()
	if parent == nil {
		parent = n.doc.Root
	}
	dom.Append(parent, note)

	showTimer := n.sched.SetTimeout(n.showWait, func() { dom.AddClass(note, "show") })
	removeTimer := n.sched.SetTimeout(n.lifetime, func() { n.doc.Remove(note) })
	n.doc.On(closeBtn, dom.EventClick, func(*dom.Event) {
		n.sched.ClearTimeout(showTimer)
		n.sched.ClearTimeout(removeTimer)
		n.doc.Remove(note)
	})
	return note
}
