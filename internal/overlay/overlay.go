// Package overlay implements full-screen modal layers: the image lightbox,
// the blog article reader and the about detail page. All of them share one
// life cycle, closed → opening → open → closing → closed, and one builder.
package overlay

import (
	"log"
	"time"

	"github.com/mrlokans/portfolio/internal/dom"
	"github.com/mrlokans/portfolio/internal/eventloop"
	"github.com/mrlokans/portfolio/internal/scrolllock"
	"golang.org/x/net/html"
)

// Kind names an overlay variant. At most one overlay of a kind exists.
type Kind string

const (
	KindLightbox    Kind = "lightbox"
	KindArticle     Kind = "article"
	KindAboutDetail Kind = "about-detail"
)

type State int

const (
	Closed State = iota
	Opening
	Open
	Closing
)

func (s State) String() string {
	switch s {
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	default:
		return "closed"
	}
}

// Reveal selects how an overlay becomes visible.
type Reveal int

const (
	// RevealClass toggles the "active" class; the stylesheet owns the look.
	RevealClass Reveal = iota
	// RevealOpacity fades an inline-styled layer from opacity 0 to 1.
	RevealOpacity
)

// Manager owns every overlay of a document.
type Manager struct {
	doc     *dom.Document
	sched   eventloop.Scheduler
	lock    *scrolllock.Lock
	options Options

	byKind map[Kind]*Overlay
	// opening and open overlays, most recent last
	stack []*Overlay
}

// Options configure a Manager. Zero delays fall back to the defaults.
type Options struct {
	Theme              Theme
	LightboxCloseDelay time.Duration
	ArticleCloseDelay  time.Duration
}

const (
	DefaultLightboxCloseDelay = 300 * time.Millisecond
	DefaultArticleCloseDelay  = 400 * time.Millisecond
)

func NewManager(doc *dom.Document, sched eventloop.Scheduler, lock *scrolllock.Lock, opts Options) *Manager {
	if opts.LightboxCloseDelay <= 0 {
		opts.LightboxCloseDelay = DefaultLightboxCloseDelay
	}
	if opts.ArticleCloseDelay <= 0 {
		opts.ArticleCloseDelay = DefaultArticleCloseDelay
	}
	if opts.Theme == (Theme{}) {
		opts.Theme = DefaultTheme
	}

	m := &Manager{
		doc:     doc,
		sched:   sched,
		lock:    lock,
		options: opts,
		byKind:  make(map[Kind]*Overlay),
	}
	doc.On(doc.Root, dom.EventKeyDown, m.onKeyDown)
	return m
}

func (m *Manager) onKeyDown(e *dom.Event) {
	if e.Key != dom.KeyEscape || len(m.stack) == 0 {
		return
	}
	m.stack[len(m.stack)-1].Close()
}

// Get returns the live overlay of kind, or nil.
func (m *Manager) Get(kind Kind) *Overlay {
	return m.byKind[kind]
}

// State reports the life cycle state of the overlay of kind.
func (m *Manager) State(kind Kind) State {
	if o := m.byKind[kind]; o != nil {
		return o.state
	}
	return Closed
}

// Open builds def, inserts it hidden and reveals it on the next frame. Any
// existing overlay of the same kind is removed first.
func (m *Manager) Open(def Definition) *Overlay {
	if existing := m.byKind[def.Kind]; existing != nil {
		existing.remove()
	}

	o := &Overlay{def: def, manager: m, state: Opening}
	o.root = m.build(o)

	parent := m.doc.Body()
	if parent == nil {
		parent = m.doc.Root
	}
	dom.Append(parent, o.root)
	o.release = m.lock.Acquire(scrolllock.Overlay)

	m.byKind[def.Kind] = o
	m.stack = append(m.stack, o)
	o.timer = m.sched.RequestAnimationFrame(func(time.Time) { o.reveal() })

	log.Printf("Overlay %s: opened", def.Kind)
	return o
}

func (m *Manager) unstack(o *Overlay) {
	for i, existing := range m.stack {
		if existing == o {
			m.stack = append(m.stack[:i], m.stack[i+1:]...)
			return
		}
	}
}

// Overlay is one inserted modal layer.
type Overlay struct {
	def     Definition
	manager *Manager
	root    *html.Node
	state   State
	release func()
	timer   eventloop.TimerID
}

func (o *Overlay) Root() *html.Node {
	return o.root
}

func (o *Overlay) Kind() Kind {
	return o.def.Kind
}

func (o *Overlay) State() State {
	return o.state
}

func (o *Overlay) reveal() {
	if o.state != Opening {
		return
	}
	o.timer = 0
	switch o.def.Reveal {
	case RevealOpacity:
		dom.SetStyle(o.root, "opacity", "1")
	default:
		dom.AddClass(o.root, "active")
	}
	o.state = Open
}

// Close hides the overlay and removes it once the transition delay passes.
// Closing an overlay that is already closing or closed does nothing.
func (o *Overlay) Close() {
	if o.state != Opening && o.state != Open {
		return
	}
	m := o.manager
	if o.timer != 0 {
		m.sched.ClearTimeout(o.timer)
	}

	switch o.def.Reveal {
	case RevealOpacity:
		dom.SetStyle(o.root, "opacity", "0")
	default:
		dom.RemoveClass(o.root, "active")
	}
	o.state = Closing
	m.unstack(o)
	o.timer = m.sched.SetTimeout(o.def.CloseDelay, o.remove)
}

// remove detaches the overlay immediately and releases its scroll lock.
func (o *Overlay) remove() {
	if o.state == Closed {
		return
	}
	m := o.manager
	if o.timer != 0 {
		m.sched.ClearTimeout(o.timer)
		o.timer = 0
	}

	m.doc.Remove(o.root)
	o.release()
	o.state = Closed
	m.unstack(o)
	if m.byKind[o.def.Kind] == o {
		delete(m.byKind, o.def.Kind)
	}
	log.Printf("Overlay %s: closed", o.def.Kind)
}
