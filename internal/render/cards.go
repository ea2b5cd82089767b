package render

import (
	"errors"
	"net/url"

	"github.com/mrlokans/portfolio/internal/cms"
	"github.com/mrlokans/portfolio/internal/dom"
	"github.com/mrlokans/portfolio/internal/entities"
	"github.com/mrlokans/portfolio/internal/overlay"
	"golang.org/x/net/html"
)

// RecentPostsLimit is how many blog posts the page shows.
const RecentPostsLimit = 5

const (
	defaultTitle       = "Untitled"
	defaultCategory    = "all"
	defaultSocialColor = "#8D6E63"

	emptyBlogTitle   = "Blog in arrivo"
	emptyBlogMessage = "Presto condividerò consigli, tutorial e storie dal mondo della fotografia con drone."
)

// CategoryURL is the listing page that filters the portfolio by slug.
func CategoryURL(slug string) string {
	return "categoria.html?categoria=" + url.QueryEscape(slug)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// Portfolio renders items into #portfolio-grid. Clicking a card opens its
// image in the lightbox.
func (r *Renderer) Portfolio(items []entities.PortfolioItem) {
	grid := r.doc.ByID("portfolio-grid")
	if grid == nil {
		return
	}

	cards := make([]*html.Node, 0, len(items))
	for _, item := range items {
		imageURL := r.images.Portfolio(item.Image)
		title := orDefault(item.Title, defaultTitle)
		description := item.Description

		var date *html.Node
		if formatted := r.FormatDate(item.Date); formatted != "" {
			date = dom.Element("span", dom.Class("portfolio-date"), dom.Text(formatted))
		}

		card := dom.Element("div",
			dom.Class("portfolio-item"),
			dom.Attr("data-category", orDefault(item.Category, defaultCategory)),
			dom.Children(
				dom.Element("div",
					dom.Class("portfolio-image"),
					dom.Children(dom.Element("img",
						dom.Attr("src", imageURL),
						dom.Attr("alt", title),
						dom.Attr("loading", "lazy"),
					)),
				),
				dom.Element("div",
					dom.Class("portfolio-overlay"),
					dom.Children(
						dom.Element("h3", dom.Text(title)),
						dom.Element("p", dom.Text(description)),
						date,
					),
				),
			),
		)
		r.doc.On(card, dom.EventClick, func(*dom.Event) {
			r.actions.OpenLightbox(imageURL, title, description)
		})
		cards = append(cards, card)
	}
	r.replace(grid, cards)
}

// Categories renders category cards into #dynamic-categories. Filtering
// happens on the listing page, so a click navigates there.
func (r *Renderer) Categories(categories []entities.PortfolioCategory) {
	container := r.doc.ByID("dynamic-categories")
	if container == nil {
		return
	}

	cards := make([]*html.Node, 0, len(categories))
	for _, category := range categories {
		slug := category.Slug
		card := dom.Element("div",
			dom.Class("category-card"),
			dom.Attr("data-filter", slug),
			dom.Children(
				dom.Element("div",
					dom.Class("category-image"),
					dom.Children(dom.Element("img",
						dom.Attr("src", r.images.Category(category.CategoryImage)),
						dom.Attr("alt", category.Name),
						dom.Attr("loading", "lazy"),
					)),
				),
				dom.Element("div",
					dom.Class("category-overlay"),
					dom.Children(
						dom.Element("h3", dom.Text(category.Name)),
						dom.Element("p", dom.Text(category.Description)),
					),
				),
			),
		)
		r.doc.On(card, dom.EventClick, func(e *dom.Event) {
			e.PreventDefault()
			r.actions.Navigate(CategoryURL(slug))
		})
		cards = append(cards, card)
	}
	r.replace(container, cards)
}

// SocialLinks renders social cards into .social-grid.
func (r *Renderer) SocialLinks(links []entities.SocialLink) {
	grid := r.doc.Query(".social-grid")
	if grid == nil {
		return
	}

	cards := make([]*html.Node, 0, len(links))
	for _, link := range links {
		target := link.PlatformURL
		card := dom.Element("div",
			dom.Class("social-card-modern"),
			dom.Style("--social-color", orDefault(link.PlatformColor, defaultSocialColor)),
			dom.Style("cursor", "pointer"),
			dom.Children(
				dom.Element("div",
					dom.Class("social-icon-container"),
					dom.Children(dom.Element("img",
						dom.Class("social-icon-img"),
						dom.Attr("src", r.images.Social(link.PlatformIcon)),
						dom.Attr("alt", link.PlatformName),
					)),
				),
				dom.Element("div",
					dom.Class("social-info"),
					dom.Children(
						dom.Element("h3", dom.Class("social-platform-name"), dom.Text(link.PlatformName)),
						dom.Element("p", dom.Class("social-description"), dom.Text(link.Description)),
					),
				),
			),
		)
		r.doc.On(card, dom.EventClick, func(*dom.Event) {
			r.actions.OpenWindow(target)
		})
		cards = append(cards, card)
	}
	r.replace(grid, cards)
}

// Blog renders the most recent posts into #blog-grid, newest first. An empty
// list shows the coming-soon placeholder instead.
func (r *Renderer) Blog(posts []entities.BlogPost) {
	grid := r.doc.ByID("blog-grid")
	if grid == nil {
		return
	}
	if len(posts) == 0 {
		r.EmptyBlog()
		return
	}

	recent := entities.RecentPosts(posts, RecentPostsLimit)
	cards := make([]*html.Node, 0, len(recent))
	for _, post := range recent {
		var date *html.Node
		if published, ok := post.Published(); ok {
			date = dom.Element("time",
				dom.Class("blog-date"),
				dom.Attr("datetime", published.Format("2006-01-02")),
				dom.Text(r.dates.Format(published)),
			)
		}

		card := dom.Element("article",
			dom.Class("blog-card"),
			dom.Style("cursor", "pointer"),
			dom.Children(
				dom.Element("div",
					dom.Class("blog-image"),
					dom.Children(dom.Element("img",
						dom.Attr("src", r.images.Blog(post.FeaturedImage)),
						dom.Attr("alt", orDefault(post.Title, "Blog post")),
						dom.Attr("loading", "lazy"),
					)),
				),
				dom.Element("div",
					dom.Class("blog-content"),
					dom.Children(
						dom.Element("h3", dom.Class("blog-title"), dom.Text(orDefault(post.Title, defaultTitle))),
						dom.Element("p", dom.Class("blog-excerpt"), dom.Text(post.Excerpt)),
						date,
					),
				),
			),
		)
		r.doc.On(card, dom.EventClick, func(*dom.Event) {
			r.actions.OpenBlogPost(post)
		})
		cards = append(cards, card)
	}
	r.replace(grid, cards)
}

// EmptyBlog shows the coming-soon placeholder in #blog-grid.
func (r *Renderer) EmptyBlog() {
	if grid := r.doc.ByID("blog-grid"); grid != nil {
		r.replace(grid, []*html.Node{emptyBlog()})
	}
}

func emptyBlog() *html.Node {
	return dom.Element("div",
		dom.Class("blog-empty"),
		dom.Style("grid-column", "1 / -1"),
		dom.Style("text-align", "center"),
		dom.Style("padding", "3rem"),
		dom.Style("color", "var(--color-brown-medium)"),
		dom.Style("font-style", "italic"),
		dom.Children(
			dom.Element("h3", dom.Style("margin-bottom", "1rem"), dom.Text(emptyBlogTitle)),
			dom.Element("p", dom.Text(emptyBlogMessage)),
		),
	)
}

// Article prepares a blog post for the reader overlay. The body falls back
// from the full content to the excerpt.
func (r *Renderer) Article(post entities.BlogPost) overlay.ArticleContent {
	body := r.RichText(post.Content)
	if len(body) == 0 {
		body = r.RichText(post.Excerpt)
	}
	var date string
	if published, ok := post.Published(); ok {
		date = r.dates.Format(published)
	}
	return overlay.ArticleContent{
		ImageURL: r.images.Optional(post.FeaturedImage),
		Title:    post.Title,
		Date:     date,
		Body:     body,
	}
}

// AboutDetail prepares the extended about content. A failed fetch and a
// missing record degrade to fixed messages; an error status from the API
// counts as a missing record.
func (r *Renderer) AboutDetail(section *entities.Section, err error) overlay.AboutContent {
	var statusErr *cms.StatusError
	if errors.As(err, &statusErr) {
		return overlay.AboutContent{Message: overlay.TextAboutUnavailable}
	}
	if err != nil {
		return overlay.AboutContent{Message: overlay.TextAboutFailed}
	}
	if section == nil || section.DetailedContent == "" {
		return overlay.AboutContent{Message: overlay.TextAboutUnavailable}
	}
	body := r.RichText(section.DetailedContent)
	if len(body) == 0 {
		return overlay.AboutContent{Message: overlay.TextAboutUnavailable}
	}
	return overlay.AboutContent{Body: body}
}
