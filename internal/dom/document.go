// Package dom is a headless document model: an HTML tree parsed from the page
// template, CSS selector queries, a typed element builder, event dispatch with
// bubbling and a window with scroll geometry.
//
// A Document is not safe for concurrent use. All access goes through the
// event loop that owns it.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Node is an element or text node of a document tree.
type Node = html.Node

// Document is a parsed page with its event listeners and window.
type Document struct {
	Root   *html.Node
	Window *Window

	listeners map[*html.Node]map[string][]*listener
	nextID    uint64
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	doc := &Document{
		Root:      root,
		listeners: make(map[*html.Node]map[string][]*listener),
	}
	doc.Window = newWindow()
	return doc, nil
}

// ParseString is Parse for in-memory markup.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// Render writes the current tree as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.Root)
}

// String renders the current tree, mostly for tests and previews.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func (d *Document) Body() *html.Node {
	return d.Query("body")
}

func (d *Document) Head() *html.Node {
	return d.Query("head")
}

// Title returns the text of the <title> element.
func (d *Document) Title() string {
	if title := d.Query("title"); title != nil {
		return TextContent(title)
	}
	return ""
}

// SetTitle replaces the document title, creating <title> when absent.
func (d *Document) SetTitle(s string) {
	title := d.Query("title")
	if title == nil {
		head := d.Head()
		if head == nil {
			return
		}
		title = Element("title")
		head.AppendChild(title)
	}
	SetText(title, s)
}

// ByID returns the element with the given id attribute.
func (d *Document) ByID(id string) *html.Node {
	return findFirst(d.Root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && GetAttr(n, "id") == id
	})
}

// Query returns the first element in document order matching sel.
func (d *Document) Query(sel string) *html.Node {
	return Query(d.Root, sel)
}

// QueryAll returns every element matching sel in document order.
func (d *Document) QueryAll(sel string) []*html.Node {
	return QueryAll(d.Root, sel)
}

// Query returns the first descendant of n matching sel.
func Query(n *html.Node, sel string) *html.Node {
	if n == nil {
		return nil
	}
	return cascadia.Query(n, compile(sel))
}

// QueryAll returns every descendant of n matching sel.
func QueryAll(n *html.Node, sel string) []*html.Node {
	if n == nil {
		return nil
	}
	return cascadia.QueryAll(n, compile(sel))
}

var (
	selectorsMu sync.Mutex
	selectors   = map[string]cascadia.SelectorGroup{}
)

// compile caches parsed selectors. Selectors are program constants, so an
// invalid one is a programming error.
func compile(sel string) cascadia.SelectorGroup {
	selectorsMu.Lock()
	defer selectorsMu.Unlock()

	if group, ok := selectors[sel]; ok {
		return group
	}
	group, err := cascadia.ParseGroup(sel)
	if err != nil {
		panic(fmt.Sprintf("dom: invalid selector %q: %v", sel, err))
	}
	selectors[sel] = group
	return group
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if match(c) {
			return c
		}
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

// Contains reports whether n is ancestor itself or one of its descendants.
func Contains(ancestor, n *html.Node) bool {
	if ancestor == nil {
		return false
	}
	for ; n != nil; n = n.Parent {
		if n == ancestor {
			return true
		}
	}
	return false
}

// Attached reports whether n is still part of the document tree.
func (d *Document) Attached(n *html.Node) bool {
	return Contains(d.Root, n)
}

// Append detaches child from any previous parent and appends it to parent.
func Append(parent, child *html.Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	parent.AppendChild(child)
}

// Remove detaches n and drops the listeners of its subtree.
func (d *Document) Remove(n *html.Node) {
	if n == nil {
		return
	}
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	d.forget(n)
}

// Clear removes every child of n.
func (d *Document) Clear(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		d.Remove(c)
		c = next
	}
}

// InnerHTML renders the children of n.
func InnerHTML(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return buf.String()
		}
	}
	return buf.String()
}

// OuterHTML renders n itself.
func OuterHTML(n *html.Node) string {
	var buf bytes.Buffer
	_ = html.Render(&buf, n)
	return buf.String()
}
