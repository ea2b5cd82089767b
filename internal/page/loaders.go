package page

import (
	"log"
)

type loader struct {
	name string
	load func()
}

// startLoaders runs the loaders one after another off the loop. Each waits
// for its own fetch; a failure is logged and the next loader runs anyway.
func (p *Page) startLoaders() {
	loaders := []loader{
		{name: "site settings", load: p.loadSiteSettings},
		{name: "sections", load: p.loadSections},
		{name: "portfolio", load: p.loadPortfolio},
		{name: "blog", load: p.loadBlog},
		{name: "categories", load: p.loadCategories},
		{name: "social links", load: p.loadSocialLinks},
	}

	p.sched.Go(func() {
		defer p.sched.Do(func() { close(p.loaded) })
		for _, l := range loaders {
			l.load()
		}
		log.Printf("Page: %d loaders finished", len(loaders))
	})
}

func (p *Page) loadSiteSettings() {
	settings, err := p.client.SiteSettings(p.ctx)
	if err != nil {
		log.Printf("Loader site settings: content unavailable, keeping template defaults: %v", err)
		return
	}
	p.sched.Do(func() { p.Renderer.SiteSettings(settings) })
}

func (p *Page) loadSections() {
	sections, err := p.client.Sections(p.ctx)
	if err != nil {
		log.Printf("Loader sections: content unavailable, keeping template defaults: %v", err)
		return
	}
	p.sched.Do(func() { p.Renderer.Sections(sections) })
}

func (p *Page) loadPortfolio() {
	items, err := p.client.PortfolioItems(p.ctx)
	if err != nil {
		log.Printf("Loader portfolio: content unavailable, keeping template defaults: %v", err)
		return
	}
	if len(items) == 0 {
		return
	}
	p.sched.Do(func() { p.Renderer.Portfolio(items) })
}

func (p *Page) loadBlog() {
	posts, err := p.client.BlogPosts(p.ctx)
	if err != nil {
		log.Printf("Loader blog: content unavailable, showing placeholder: %v", err)
		posts = nil
	}
	p.sched.Do(func() { p.Renderer.Blog(posts) })
}

func (p *Page) loadCategories() {
	categories, err := p.client.PortfolioCategories(p.ctx)
	if err != nil {
		log.Printf("Loader categories: content unavailable, keeping template defaults: %v", err)
		return
	}
	if len(categories) == 0 {
		return
	}
	p.sched.Do(func() { p.Renderer.Categories(categories) })
}

func (p *Page) loadSocialLinks() {
	links, err := p.client.SocialLinks(p.ctx)
	if err != nil {
		log.Printf("Loader social links: content unavailable, keeping template defaults: %v", err)
		return
	}
	if len(links) == 0 {
		return
	}
	p.sched.Do(func() { p.Renderer.SocialLinks(links) })
}
