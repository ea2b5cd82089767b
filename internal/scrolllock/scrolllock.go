// Package scrolllock suppresses page scrolling on behalf of several
// independent holders. The body is restored only when the last holder lets
// go, so overlapping menu and overlay locks cannot leak an unlocked page.
package scrolllock

import (
	"sort"

	"github.com/mrlokans/portfolio/internal/dom"
	"golang.org/x/net/html"
)

// Kind selects the body styles a holder needs.
type Kind int

const (
	// Overlay hides body overflow.
	Overlay Kind = iota
	// Menu also pins the body so the page behind the mobile menu cannot move.
	Menu
)

var kindStyles = map[Kind]map[string]string{
	Overlay: {
		"overflow": "hidden",
	},
	Menu: {
		"overflow": "hidden",
		"position": "fixed",
		"width":    "100%",
		"height":   "100vh",
	},
}

// Lock is a reference-counted scroll lock on the document body.
type Lock struct {
	body    *html.Node
	holders map[uint64]Kind
	nextID  uint64
	// original inline values of the properties currently overridden
	saved map[string]string
}

func New(body *html.Node) *Lock {
	return &Lock{
		body:    body,
		holders: make(map[uint64]Kind),
		saved:   make(map[string]string),
	}
}

// Acquire registers a holder and returns its release function. Calling the
// release function more than once has no further effect.
func (l *Lock) Acquire(kind Kind) func() {
	l.nextID++
	id := l.nextID
	l.holders[id] = kind
	l.apply()

	return func() {
		if _, ok := l.holders[id]; !ok {
			return
		}
		delete(l.holders, id)
		l.apply()
	}
}

// Count is the number of active holders.
func (l *Lock) Count() int {
	return len(l.holders)
}

func (l *Lock) Locked() bool {
	return len(l.holders) > 0
}

func (l *Lock) apply() {
	if l.body == nil {
		return
	}

	wanted := map[string]string{}
	for _, kind := range l.holders {
		for prop, value := range kindStyles[kind] {
			wanted[prop] = value
		}
	}

	for _, prop := range sortedKeys(l.saved) {
		if _, still := wanted[prop]; !still {
			dom.SetStyle(l.body, prop, l.saved[prop])
			delete(l.saved, prop)
		}
	}
	for _, prop := range sortedKeys(wanted) {
		if _, ok := l.saved[prop]; !ok {
			l.saved[prop] = dom.GetStyle(l.body, prop)
		}
		dom.SetStyle(l.body, prop, wanted[prop])
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
