package render

import (
	"github.com/mrlokans/portfolio/internal/dom"
	"github.com/mrlokans/portfolio/internal/entities"
	"golang.org/x/net/html"
)

// SiteSettings applies the global copy: hero texts, about text and the
// document title. Empty fields leave the template untouched.
func (r *Renderer) SiteSettings(s *entities.SiteSettings) {
	if s == nil {
		return
	}
	if heroTitle := r.doc.Query(".hero-title"); heroTitle != nil && s.HeroTitle != "" {
		dom.SetText(heroTitle, s.HeroTitle)
		dom.SetDisplay(heroTitle, true)
	}
	if heroSubtitle := r.doc.Query(".hero-subtitle"); heroSubtitle != nil && s.HeroSubtitle != "" {
		dom.SetText(heroSubtitle, s.HeroSubtitle)
	}
	if about := r.doc.Query(".about-description"); about != nil && s.AboutText != "" {
		r.setRichText(about, s.AboutText)
	}
	if s.SiteTitle != "" {
		r.doc.SetTitle(s.SiteTitle)
	}
}

// Sections applies visibility and copy for each section independently.
// Sections without a matching container are skipped.
func (r *Renderer) Sections(sections []entities.Section) {
	for _, section := range sections {
		r.section(section)
	}
}

func (r *Renderer) section(s entities.Section) {
	if s.SectionName == "" {
		return
	}
	container := r.doc.ByID(s.SectionName)
	if container != nil {
		dom.SetDisplay(container, s.IsVisible)
	}
	if link := r.navLink(s.SectionName); link != nil && link.Parent != nil {
		dom.SetDisplay(link.Parent, s.IsVisible)
	}
	if !s.IsVisible || container == nil {
		return
	}

	if title := dom.Query(container, ".section-title, .hero-title, h1, h2"); title != nil && s.Title != "" {
		dom.SetText(title, s.Title)
	}
	if subtitle := dom.Query(container, ".hero-subtitle, .section-subtitle"); subtitle != nil && s.Subtitle != "" {
		dom.SetText(subtitle, s.Subtitle)
	}

	if s.SectionName == entities.SectionAbout {
		r.about(s, container)
		return
	}
	if content := dom.Query(container, ".section-content"); content != nil && s.Content != "" {
		r.setRichText(content, s.Content)
	}
}

// navLink finds the anchor pointing at #name. Names come from the CMS, so
// they are compared rather than spliced into a selector.
func (r *Renderer) navLink(name string) *html.Node {
	for _, a := range r.doc.QueryAll("a[href]") {
		if dom.GetAttr(a, "href") == "#"+name {
			return a
		}
	}
	return nil
}

func (r *Renderer) about(s entities.Section, container *html.Node) {
	if description := dom.Query(container, ".about-description"); description != nil && s.Content != "" {
		r.setRichText(description, s.Content)
	}

	if img := dom.Query(container, ".about-img"); img != nil && s.SectionImage.Present() {
		dom.SetAttr(img, "src", r.images.Optional(s.SectionImage))
		alt := s.SectionImage.AlternativeText
		if alt == "" {
			alt = r.ownerName
		}
		dom.SetAttr(img, "alt", alt)
	}

	if s.ButtonText != "" {
		r.aboutButton(s.ButtonText, container)
	}
}

func (r *Renderer) aboutButton(label string, container *html.Node) {
	aboutText := dom.Query(container, ".about-text")
	if aboutText == nil {
		return
	}
	if existing := dom.Query(aboutText, ".about-btn"); existing != nil {
		r.doc.Remove(existing)
	}

	button := dom.Element("a",
		dom.Class("about-btn"),
		dom.Attr("href", "#"),
		dom.Style("display", "inline-block"),
		dom.Style("margin-top", "1.5rem"),
		dom.Style("padding", "12px 24px"),
		dom.Style("background-color", "#8D6E63"),
		dom.Style("color", "#F8F4F0"),
		dom.Style("text-decoration", "none"),
		dom.Style("border-radius", "25px"),
		dom.Style("font-weight", "500"),
		dom.Style("cursor", "pointer"),
		dom.Text(label),
	)
	r.doc.On(button, dom.EventClick, func(e *dom.Event) {
		e.PreventDefault()
		r.actions.OpenAboutDetail()
	})
	dom.Append(aboutText, button)
}
