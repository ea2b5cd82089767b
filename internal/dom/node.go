package dom

import (
	"strings"

	"golang.org/x/net/html"
)

func GetAttr(n *html.Node, key string) string {
	v, _ := LookupAttr(n, key)
	return v
}

func LookupAttr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func RemoveAttr(n *html.Node, key string) {
	attrs := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		attrs = append(attrs, a)
	}
	n.Attr = attrs
}

// Classes returns the class list of n.
func Classes(n *html.Node) []string {
	return strings.Fields(GetAttr(n, "class"))
}

func HasClass(n *html.Node, class string) bool {
	for _, c := range Classes(n) {
		if c == class {
			return true
		}
	}
	return false
}

func AddClass(n *html.Node, class string) {
	if class == "" || HasClass(n, class) {
		return
	}
	SetAttr(n, "class", strings.TrimSpace(GetAttr(n, "class")+" "+class))
}

func RemoveClass(n *html.Node, class string) {
	if !HasClass(n, class) {
		return
	}
	kept := make([]string, 0)
	for _, c := range Classes(n) {
		if c != class {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		RemoveAttr(n, "class")
		return
	}
	SetAttr(n, "class", strings.Join(kept, " "))
}

// ToggleClass adds class when on is true and removes it otherwise.
func ToggleClass(n *html.Node, class string, on bool) {
	if on {
		AddClass(n, class)
	} else {
		RemoveClass(n, class)
	}
}

type declaration struct {
	prop  string
	value string
}

func parseStyle(s string) []declaration {
	var decls []declaration
	for _, part := range strings.Split(s, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		if prop == "" {
			continue
		}
		decls = append(decls, declaration{prop: prop, value: strings.TrimSpace(value)})
	}
	return decls
}

func formatStyle(decls []declaration) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.prop + ": " + d.value
	}
	return strings.Join(parts, "; ")
}

// GetStyle returns an inline style property of n.
func GetStyle(n *html.Node, prop string) string {
	for _, d := range parseStyle(GetAttr(n, "style")) {
		if d.prop == prop {
			return d.value
		}
	}
	return ""
}

// SetStyle sets an inline style property. An empty value removes it, like
// assigning "" to element.style in a browser.
func SetStyle(n *html.Node, prop, value string) {
	decls := parseStyle(GetAttr(n, "style"))
	out := decls[:0]
	replaced := false
	for _, d := range decls {
		if d.prop != prop {
			out = append(out, d)
			continue
		}
		if value != "" && !replaced {
			out = append(out, declaration{prop: prop, value: value})
			replaced = true
		}
	}
	if value != "" && !replaced {
		out = append(out, declaration{prop: prop, value: value})
	}
	if len(out) == 0 {
		RemoveAttr(n, "style")
		return
	}
	SetAttr(n, "style", formatStyle(out))
}

// SetDisplay shows or hides n through its inline display property.
func SetDisplay(n *html.Node, visible bool) {
	if visible {
		SetStyle(n, "display", "block")
	} else {
		SetStyle(n, "display", "none")
	}
}

// Hidden reports whether n is hidden by an inline display: none.
func Hidden(n *html.Node) bool {
	return GetStyle(n, "display") == "none"
}

// TextContent concatenates the text of n's subtree.
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}

// SetText replaces the children of n with a single text node.
func SetText(n *html.Node, s string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}
