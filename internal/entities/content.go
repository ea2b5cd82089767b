package entities

import (
	"sort"
	"time"
)

// SectionAbout is the section with an image, a detail button and extended
// content.
const SectionAbout = "about"

// Media is an uploaded file reference. URL is relative to the media host.
type Media struct {
	URL             string `json:"url"`
	AlternativeText string `json:"alternativeText,omitempty"`
	Name            string `json:"name,omitempty"`
	Width           int    `json:"width,omitempty"`
	Height          int    `json:"height,omitempty"`
}

// Present reports whether the media carries a usable URL.
func (m *Media) Present() bool {
	return m != nil && m.URL != ""
}

// SiteSettings is the singleton with global page copy.
type SiteSettings struct {
	ID           int    `json:"id,omitempty"`
	SiteTitle    string `json:"site_title"`
	HeroTitle    string `json:"hero_title"`
	HeroSubtitle string `json:"hero_subtitle"`
	AboutText    string `json:"about_text"`
}

// Section is a named, independently visible content block on the page.
type Section struct {
	ID              int    `json:"id,omitempty"`
	SectionName     string `json:"section_name"`
	IsVisible       bool   `json:"is_visible"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	Content         string `json:"content"`
	SectionImage    *Media `json:"section_image"`
	ButtonText      string `json:"button_text"`
	DetailedContent string `json:"detailed_content"`
	Order           int    `json:"order"`
}

type PortfolioItem struct {
	ID          int        `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Image       *Media     `json:"image"`
	Date        *Timestamp `json:"date"`
}

type PortfolioCategory struct {
	ID            int    `json:"id,omitempty"`
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	CategoryImage *Media `json:"category_image"`
	Order         int    `json:"order"`
}

type BlogPost struct {
	ID            int        `json:"id,omitempty"`
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	FeaturedImage *Media     `json:"featured_image"`
	DateTime      *Timestamp `json:"DateTime"`
	PublishedAt   *Timestamp `json:"publishedAt"`
}

// Published returns the post's publish timestamp: the editorial DateTime when
// set, the CMS publication time otherwise.
func (p BlogPost) Published() (time.Time, bool) {
	if p.DateTime.Valid() {
		return p.DateTime.Time, true
	}
	if p.PublishedAt.Valid() {
		return p.PublishedAt.Time, true
	}
	return time.Time{}, false
}

// RecentPosts returns at most limit posts ordered by publish timestamp,
// newest first. Equal timestamps keep their fetched order and posts without a
// timestamp sort last. The input slice is not modified.
func RecentPosts(posts []BlogPost, limit int) []BlogPost {
	sorted := make([]BlogPost, len(posts))
	copy(sorted, posts)

	sort.SliceStable(sorted, func(i, j int) bool {
		ti, okI := sorted[i].Published()
		tj, okJ := sorted[j].Published()
		if okI != okJ {
			return okI
		}
		return ti.After(tj)
	})

	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

type SocialLink struct {
	ID            int    `json:"id,omitempty"`
	PlatformName  string `json:"platform_name"`
	PlatformURL   string `json:"platform_url"`
	PlatformIcon  *Media `json:"platform_icon"`
	PlatformColor string `json:"platform_color"`
	Description   string `json:"description"`
	IsVisible     bool   `json:"is_visible"`
	Order         int    `json:"order"`
}
