// Package render maps fetched content records onto the page. Every renderer
// is a pure function of its input list: it discards what the container held
// and builds fresh nodes with the typed dom builder, so record fields only
// ever reach the tree as text or attribute values.
package render

import (
	"log"

	"github.com/mrlokans/portfolio/internal/config"
	"github.com/mrlokans/portfolio/internal/dom"
	"github.com/mrlokans/portfolio/internal/entities"
	"golang.org/x/net/html"
)

// Actions are the page behaviours cards trigger when clicked.
type Actions interface {
	OpenLightbox(imageURL, title, description string)
	OpenBlogPost(post entities.BlogPost)
	OpenAboutDetail()
	// Navigate leaves the page for url.
	Navigate(url string)
	// OpenWindow opens url in a new browsing context.
	OpenWindow(url string)
}

// Options configure a Renderer.
type Options struct {
	MediaBaseURL string
	Placeholders config.Placeholders
	Locale       string
	AllowRawHTML bool
	// OwnerName is the alt text of the about image when the CMS has none.
	OwnerName string
}

// OptionsFromConfig collects renderer options from the application config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		MediaBaseURL: cfg.CMS.MediaBaseURL,
		Placeholders: cfg.Placeholders,
		Locale:       cfg.Content.Locale,
		AllowRawHTML: cfg.Content.AllowRawHTML,
		OwnerName:    cfg.Content.OwnerName,
	}
}

type Renderer struct {
	doc       *dom.Document
	actions   Actions
	images    ImageResolver
	richText  *RichText
	dates     *DateFormatter
	ownerName string
}

func New(doc *dom.Document, actions Actions, opts Options) (*Renderer, error) {
	dates, err := NewDateFormatter(opts.Locale)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		doc:       doc,
		actions:   actions,
		images:    ImageResolver{Base: opts.MediaBaseURL, Placeholders: opts.Placeholders},
		richText:  NewRichText(opts.AllowRawHTML),
		dates:     dates,
		ownerName: opts.OwnerName,
	}, nil
}

// FormatDate formats ts in the configured locale; invalid timestamps yield "".
func (r *Renderer) FormatDate(ts *entities.Timestamp) string {
	if !ts.Valid() {
		return ""
	}
	return r.dates.Format(ts.Time)
}

// RichText renders source into nodes, logging and returning nil on failure.
func (r *Renderer) RichText(source string) []*html.Node {
	nodes, err := r.richText.Nodes(source)
	if err != nil {
		log.Printf("Render: rich text skipped: %v", err)
		return nil
	}
	return nodes
}

// setRichText replaces the children of n with rendered source. Source that
// renders to nothing visible leaves n untouched.
func (r *Renderer) setRichText(n *html.Node, source string) {
	nodes := r.RichText(source)
	if len(nodes) == 0 {
		return
	}
	r.doc.Clear(n)
	for _, child := range nodes {
		dom.Append(n, child)
	}
}

// replace clears container and appends cards.
func (r *Renderer) replace(container *html.Node, cards []*html.Node) {
	r.doc.Clear(container)
	for _, card := range cards {
		dom.Append(container, card)
	}
}
