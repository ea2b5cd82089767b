package overlay

import (
	"strings"

	"github.com/mrlokans/portfolio/internal/dom"
	"golang.org/x/net/html"
)

// Texts shown by the built-in overlays.
const (
	TextDiscover         = "Scopri di più"
	TextHide             = "Nascondi"
	TextCloseArticle     = "Chiudi Articolo"
	TextArticleFallback  = "Contenuto non disponibile."
	TextAboutHeading     = "La Mia Storia"
	TextAboutUnavailable = "Contenuto non disponibile. Verifica la configurazione di Strapi."
	TextAboutFailed      = "Errore nel caricamento. Controlla la connessione a Strapi."
	TextContactCTA       = "Contattami per il tuo progetto"
)

// LightboxContent is an enlarged image with its caption.
type LightboxContent struct {
	ImageURL    string
	Title       string
	Description string
}

// OpenLightbox shows an image full screen. A non-empty description is
// hidden behind a toggle button.
func (m *Manager) OpenLightbox(c LightboxContent) *Overlay {
	container := dom.Element("div",
		dom.Class("lightbox-image-container"),
		dom.Children(dom.Element("img",
			dom.Class("lightbox-image"),
			dom.Attr("src", c.ImageURL),
			dom.Attr("alt", c.Title),
		)),
	)

	if strings.TrimSpace(c.Description) != "" {
		description := dom.Element("div",
			dom.Class("lightbox-description"),
			dom.Style("display", "none"),
			dom.Children(
				dom.Element("h4", dom.Text(c.Title)),
				dom.Element("p", dom.Text(c.Description)),
			),
		)
		toggle := dom.Element("button", dom.Class("lightbox-discover-btn"), dom.Text(TextDiscover))
		m.doc.On(toggle, dom.EventClick, func(*dom.Event) {
			hidden := dom.Hidden(description)
			dom.SetDisplay(description, hidden)
			if hidden {
				dom.SetText(toggle, TextHide)
			} else {
				dom.SetText(toggle, TextDiscover)
			}
		})
		dom.Append(container, dom.Element("div",
			dom.Class("lightbox-info"),
			dom.Children(toggle, description),
		))
	}

	return m.Open(Definition{
		Kind:          KindLightbox,
		Class:         "lightbox",
		ContentClass:  "lightbox-content",
		CloseClass:    "lightbox-close",
		BackdropClass: "lightbox-overlay",
		CloseDelay:    m.options.LightboxCloseDelay,
		Reveal:        RevealClass,
		Content: []*html.Node{
			container,
			dom.Element("div", dom.Class("lightbox-title"), dom.Text(c.Title)),
		},
	})
}

// ArticleContent is a full blog post. Body holds already rendered rich text.
type ArticleContent struct {
	ImageURL string
	Title    string
	Date     string
	Body     []*html.Node
}

// OpenArticle shows a blog post in the reader overlay.
func (m *Manager) OpenArticle(c ArticleContent) *Overlay {
	theme := m.options.Theme
	var content []*html.Node

	if c.ImageURL != "" {
		content = append(content, dom.Element("div",
			dom.Class("blog-post-image"),
			dom.Style("width", "100%"),
			dom.Style("height", "400px"),
			dom.Style("margin-bottom", "2.5rem"),
			dom.Style("border-radius", "10px"),
			dom.Style("overflow", "hidden"),
			dom.Children(dom.Element("img",
				dom.Attr("src", c.ImageURL),
				dom.Attr("alt", c.Title),
				dom.Style("width", "100%"),
				dom.Style("height", "100%"),
				dom.Style("object-fit", "cover"),
			)),
		))
	}

	title := c.Title
	if title == "" {
		title = "Untitled"
	}
	content = append(content, dom.Element("div",
		dom.Class("blog-post-header"),
		dom.Style("margin-bottom", "2rem"),
		dom.Children(
			dom.Element("h1",
				dom.Style("color", theme.Text),
				dom.Style("font-size", "2.5rem"),
				dom.Text(title),
			),
			dateNode(c.Date, theme),
		),
	))

	body := c.Body
	if len(body) == 0 {
		body = []*html.Node{dom.Element("p", dom.Text(TextArticleFallback))}
	}
	content = append(content, dom.Element("div",
		dom.Class("blog-post-body"),
		dom.Style("font-size", "1.1rem"),
		dom.Style("line-height", "1.8"),
		dom.Style("color", theme.Text),
		dom.Children(body...),
	))

	return m.Open(Definition{
		Kind:         KindArticle,
		Class:        "blog-post-overlay",
		ContentClass: "blog-post-content",
		CloseClass:   "close-blog-post",
		MaxWidth:     "1000px",
		CloseDelay:   m.options.ArticleCloseDelay,
		Reveal:       RevealOpacity,
		Content:      content,
		Buttons:      []Button{{Label: TextCloseArticle, Class: "close-blog-btn"}},
	})
}

func dateNode(date string, theme Theme) *html.Node {
	if date == "" {
		return nil
	}
	return dom.Element("time",
		dom.Style("color", theme.Muted),
		dom.Style("font-style", "italic"),
		dom.Text(date),
	)
}

// AboutContent is the extended about text. When Body is empty, Message is
// shown under the default heading instead.
type AboutContent struct {
	Body    []*html.Node
	Message string
}

// OpenAboutDetail shows the extended about page. Its call to action closes
// the overlay and calls onContact once the closing transition is over.
func (m *Manager) OpenAboutDetail(c AboutContent, onContact func()) *Overlay {
	theme := m.options.Theme
	var content []*html.Node

	if len(c.Body) > 0 {
		content = append(content, textBlock(theme, c.Body...))
	} else {
		message := c.Message
		if message == "" {
			message = TextAboutUnavailable
		}
		content = append(content,
			dom.Element("h1",
				dom.Style("color", theme.Text),
				dom.Style("margin-bottom", "2rem"),
				dom.Style("font-size", "2.5rem"),
				dom.Text(TextAboutHeading),
			),
			textBlock(theme, dom.Element("p", dom.Text(message))),
		)
	}

	delay := m.options.ArticleCloseDelay
	return m.Open(Definition{
		Kind:         KindAboutDetail,
		Class:        "about-detailed-overlay",
		ContentClass: "about-detailed-content",
		CloseClass:   "close-detailed",
		MaxWidth:     "800px",
		CloseDelay:   delay,
		Reveal:       RevealOpacity,
		Content:      content,
		Buttons: []Button{{
			Label: TextContactCTA,
			Class: "contact-cta",
			Href:  "#contact",
			OnClick: func(o *Overlay) {
				o.Close()
				if onContact != nil {
					m.sched.SetTimeout(delay, onContact)
				}
			},
		}},
	})
}

func textBlock(theme Theme, children ...*html.Node) *html.Node {
	return dom.Element("div",
		dom.Style("font-size", "1.1rem"),
		dom.Style("line-height", "1.7"),
		dom.Style("color", theme.Muted),
		dom.Children(children...),
	)
}
