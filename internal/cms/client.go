package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mrlokans/portfolio/internal/entities"
)

// Content API endpoints.
const (
	PathSiteSetting         = "/api/site-setting"
	PathSectionSettings     = "/api/section-settings"
	PathPortfolioItems      = "/api/portfolio-items"
	PathPortfolioCategories = "/api/portfolio-categories"
	PathBlogPosts           = "/api/blog-posts"
	PathSocialLinks         = "/api/social-links"
	PathContactMessages     = "/api/contact-messages"
)

const userAgent = "PortfolioSite/1.0"

// Envelope is the response wrapper of every content API endpoint.
type Envelope[T any] struct {
	Data T               `json:"data"`
	Meta json.RawMessage `json:"meta,omitempty"`
}

// Client talks to the headless content API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a content API client for baseURL. A zero timeout leaves
// requests unbounded.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the API host the client was configured with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET request and decodes the JSON body into out.
func (c *Client) Get(ctx context.Context, path string, params Params, out any) error {
	target := c.baseURL + path
	if query := params.Encode(); query != "" {
		target += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return unavailable("create request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return unavailable("GET "+path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Method: http.MethodGet, Path: path, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return unavailable("decode "+path, err)
	}
	return nil
}

// PostJSON sends body as JSON and reports only whether the API accepted it.
func (c *Client) PostJSON(ctx context.Context, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return unavailable("create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return unavailable("POST "+path, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: http.MethodPost, Path: path, StatusCode: resp.StatusCode}
	}
	return nil
}

func getData[T any](ctx context.Context, c *Client, path string, params Params) (T, error) {
	var env Envelope[T]
	if err := c.Get(ctx, path, params, &env); err != nil {
		var zero T
		return zero, err
	}
	return env.Data, nil
}

// SiteSettings fetches the site-wide settings singleton.
func (c *Client) SiteSettings(ctx context.Context) (*entities.SiteSettings, error) {
	settings, err := getData[*entities.SiteSettings](ctx, c, PathSiteSetting, nil)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, unavailable("GET "+PathSiteSetting, fmt.Errorf("empty data"))
	}
	return settings, nil
}

// Sections fetches all sections in display order.
func (c *Client) Sections(ctx context.Context) ([]entities.Section, error) {
	return getData[[]entities.Section](ctx, c, PathSectionSettings, Params{
		Sort("order:asc"),
		Populate("section_image"),
	})
}

// Section fetches a single section by name. It returns (nil, nil) when the
// API knows no such section.
func (c *Client) Section(ctx context.Context, name string) (*entities.Section, error) {
	sections, err := getData[[]entities.Section](ctx, c, PathSectionSettings, Params{
		FilterEq("section_name", name),
	})
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, nil
	}
	return &sections[0], nil
}

func (c *Client) PortfolioItems(ctx context.Context) ([]entities.PortfolioItem, error) {
	return getData[[]entities.PortfolioItem](ctx, c, PathPortfolioItems, Params{
		Populate("image"),
	})
}

func (c *Client) PortfolioCategories(ctx context.Context) ([]entities.PortfolioCategory, error) {
	return getData[[]entities.PortfolioCategory](ctx, c, PathPortfolioCategories, Params{
		Populate("category_image"),
		Sort("order:asc"),
	})
}

func (c *Client) BlogPosts(ctx context.Context) ([]entities.BlogPost, error) {
	return getData[[]entities.BlogPost](ctx, c, PathBlogPosts, Params{
		Populate("featured_image"),
	})
}

// SocialLinks fetches the visible social links in display order.
func (c *Client) SocialLinks(ctx context.Context) ([]entities.SocialLink, error) {
	return getData[[]entities.SocialLink](ctx, c, PathSocialLinks, Params{
		Sort("order:asc"),
		Populate("platform_icon"),
		FilterEq("is_visible", "true"),
	})
}

// SubmitContact posts a contact form submission.
func (c *Client) SubmitContact(ctx context.Context, form entities.ContactForm) error {
	return c.PostJSON(ctx, PathContactMessages, Envelope[entities.ContactForm]{Data: form})
}

// Ping checks that the content API answers.
func (c *Client) Ping(ctx context.Context) error {
	var discard json.RawMessage
	return c.Get(ctx, PathSiteSetting, nil, &discard)
}
