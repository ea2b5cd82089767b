package dom

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Option configures an element built with Element. Content always enters the
// tree as attribute values or text nodes, never as markup, so record fields
// cannot inject elements.
type Option func(n *html.Node)

// Element builds a detached element.
func Element(tag string, opts ...Option) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	return n
}

func Attr(key, val string) Option {
	return func(n *html.Node) { SetAttr(n, key, val) }
}

func ID(id string) Option {
	return Attr("id", id)
}

func Class(classes ...string) Option {
	return func(n *html.Node) {
		for _, c := range classes {
			AddClass(n, c)
		}
	}
}

func Style(prop, value string) Option {
	return func(n *html.Node) { SetStyle(n, prop, value) }
}

// Text appends a text node.
func Text(s string) Option {
	return func(n *html.Node) {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	}
}

// Children appends already built nodes.
func Children(children ...*html.Node) Option {
	return func(n *html.Node) {
		for _, c := range children {
			if c != nil {
				Append(n, c)
			}
		}
	}
}

// If applies opt only when cond holds.
func If(cond bool, opt Option) Option {
	if !cond {
		return nil
	}
	return opt
}

// TextNode builds a detached text node.
func TextNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
