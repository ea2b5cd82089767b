package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RichText converts CMS rich text into detached nodes. Sources may be
// Markdown, HTML or a mix of both.
type RichText struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRichText builds a converter. Embedded HTML is kept and sanitized with a
// user-content policy; trustHTML skips sanitizing.
func NewRichText(trustHTML bool) *RichText {
	r := &RichText{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
	}
	if !trustHTML {
		r.policy = bluemonday.UGCPolicy()
	}
	return r
}

// HTML renders source to an HTML string.
func (r *RichText) HTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("convert rich text: %w", err)
	}
	if r.policy == nil {
		return buf.String(), nil
	}
	return r.policy.Sanitize(buf.String()), nil
}

// Nodes renders source and parses the result into nodes ready to insert.
// It returns nil when nothing visible is left.
func (r *RichText) Nodes(source string) ([]*html.Node, error) {
	if strings.TrimSpace(source) == "" {
		return nil, nil
	}
	markup, err := r.HTML(source)
	if err != nil {
		return nil, err
	}
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, fmt.Errorf("parse rich text: %w", err)
	}

	// drop comments and the newlines goldmark puts between blocks
	var kept []*html.Node
	visible := false
	for _, n := range nodes {
		switch {
		case n.Type == html.CommentNode:
			continue
		case n.Type == html.TextNode && strings.TrimSpace(n.Data) == "":
			continue
		}
		if hasContent(n) {
			visible = true
		}
		kept = append(kept, n)
	}
	if !visible {
		return nil, nil
	}
	return kept, nil
}

// hasContent reports whether n shows text or is a void element such as img.
func hasContent(n *html.Node) bool {
	switch n.Type {
	case html.TextNode:
		return strings.TrimSpace(n.Data) != ""
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Img, atom.Hr, atom.Br, atom.Iframe, atom.Video:
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if hasContent(c) {
				return true
			}
		}
	}
	return false
}
