// Package page wires every page component to a document and runs the
// content loaders once the document is ready.
package page

import (
	"context"
	"fmt"
	"log"

	"github.com/mrlokans/portfolio/internal/config"
	"github.com/mrlokans/portfolio/internal/contact"
	"github.com/mrlokans/portfolio/internal/dom"
	"github.com/mrlokans/portfolio/internal/entities"
	"github.com/mrlokans/portfolio/internal/eventloop"
	"github.com/mrlokans/portfolio/internal/nav"
	"github.com/mrlokans/portfolio/internal/overlay"
	"github.com/mrlokans/portfolio/internal/render"
	"github.com/mrlokans/portfolio/internal/scrolllock"
	"github.com/mrlokans/portfolio/internal/widgets"
)

// Content is the content API as the page uses it. *cms.Client implements it.
type Content interface {
	SiteSettings(ctx context.Context) (*entities.SiteSettings, error)
	Sections(ctx context.Context) ([]entities.Section, error)
	Section(ctx context.Context, name string) (*entities.Section, error)
	PortfolioItems(ctx context.Context) ([]entities.PortfolioItem, error)
	PortfolioCategories(ctx context.Context) ([]entities.PortfolioCategory, error)
	BlogPosts(ctx context.Context) ([]entities.BlogPost, error)
	SocialLinks(ctx context.Context) ([]entities.SocialLink, error)
	SubmitContact(ctx context.Context, form entities.ContactForm) error
}

// Page is a document with its widgets. All methods run on the event loop.
type Page struct {
	ctx    context.Context
	doc    *dom.Document
	sched  eventloop.Scheduler
	client Content

	Lock     *scrolllock.Lock
	Overlays *overlay.Manager
	Renderer *render.Renderer
	Nav      *nav.Controller
	Notifier *widgets.Notifier
	Contact  *contact.Form
	Reveal   *widgets.Reveal

	loaded chan struct{}
}

// New assembles the page components. Nothing is bound or fetched until Ready.
func New(ctx context.Context, doc *dom.Document, sched eventloop.Scheduler, client Content, cfg *config.Config) (*Page, error) {
	p := &Page{
		ctx:    ctx,
		doc:    doc,
		sched:  sched,
		client: client,
		loaded: make(chan struct{}),
	}

	renderer, err := render.New(doc, p, render.OptionsFromConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	p.Renderer = renderer

	p.Lock = scrolllock.New(doc.Body())
	p.Overlays = overlay.NewManager(doc, sched, p.Lock, overlay.Options{
		LightboxCloseDelay: cfg.UI.LightboxCloseDelay,
		ArticleCloseDelay:  cfg.UI.ArticleCloseDelay,
	})
	p.Nav = nav.New(doc, sched, p.Lock, nav.OptionsFromConfig(cfg.UI))
	p.Notifier = widgets.NewNotifier(doc, sched, cfg.UI.NotificationShowWait, cfg.UI.NotificationLifetime)
	return p, nil
}

// Ready initializes the widgets and starts the loader sequence, like a
// DOMContentLoaded handler.
func (p *Page) Ready() {
	p.Nav.Init()
	widgets.InitPortfolioFilters(p.doc)
	p.Contact = contact.Init(p.ctx, p.doc, p.sched, p.client, p.Notifier)
	p.Nav.InitBackToTop()
	p.Reveal = widgets.InitReveal(p.doc)

	p.startLoaders()

	widgets.HidePortfolioGrid(p.doc)
}

// Loaded is closed once every loader has finished, successfully or not.
func (p *Page) Loaded() <-chan struct{} {
	return p.loaded
}

// Actions

func (p *Page) OpenLightbox(imageURL, title, description string) {
	p.Overlays.OpenLightbox(overlay.LightboxContent{
		ImageURL:    imageURL,
		Title:       title,
		Description: description,
	})
}

func (p *Page) OpenBlogPost(post entities.BlogPost) {
	p.Overlays.OpenArticle(p.Renderer.Article(post))
}

// OpenAboutDetail fetches the extended about text and opens the overlay with
// whatever it got; a failed fetch still opens it with a fallback message.
func (p *Page) OpenAboutDetail() {
	p.sched.Go(func() {
		section, err := p.client.Section(p.ctx, entities.SectionAbout)
		if err != nil {
			log.Printf("About detail: content unavailable: %v", err)
		}
		p.sched.Do(func() {
			p.Overlays.OpenAboutDetail(p.Renderer.AboutDetail(section, err), func() {
				p.Nav.Scroller.ScrollToHref("#contact")
			})
		})
	})
}

func (p *Page) Navigate(url string) {
	log.Printf("Page: navigating to %s", url)
	p.doc.Window.Navigate(url)
}

func (p *Page) OpenWindow(url string) {
	p.doc.Window.Open(url, "_blank", "noopener,noreferrer")
}
