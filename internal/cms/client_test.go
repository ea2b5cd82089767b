package cms

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/portfolio/internal/entities"
)

func TestParams_Encode(t *testing.T) {
	tests := []struct {
		name     string
		params   Params
		expected string
	}{
		{"empty", nil, ""},
		{"populate only", Params{Populate("image")}, "populate=image"},
		{
			name:     "sections",
			params:   Params{Sort("order:asc"), Populate("section_image")},
			expected: "sort=order:asc&populate=section_image",
		},
		{
			name:     "social links",
			params:   Params{Sort("order:asc"), Populate("platform_icon"), FilterEq("is_visible", "true")},
			expected: "sort=order:asc&populate=platform_icon&filters[is_visible][$eq]=true",
		},
		{
			name:     "escapes values",
			params:   Params{FilterEq("section_name", "a b&c")},
			expected: "filters[section_name][$eq]=a+b%26c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.params.Encode())
		})
	}
}

// recordingServer answers every request with body and remembers the request URIs.
func recordingServer(t *testing.T, status int, body string) (*httptest.Server, *[]string) {
	t.Helper()
	var uris []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uris = append(uris, r.Method+" "+r.URL.RequestURI())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server, &uris
}

func TestClient_EndpointQueries(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		call     func(c *Client) error
		expected string
	}{
		{
			name:     "sections",
			call:     func(c *Client) error { _, err := c.Sections(ctx); return err },
			expected: "GET /api/section-settings?sort=order:asc&populate=section_image",
		},
		{
			name:     "single section",
			call:     func(c *Client) error { _, err := c.Section(ctx, "about"); return err },
			expected: "GET /api/section-settings?filters[section_name][$eq]=about",
		},
		{
			name:     "portfolio items",
			call:     func(c *Client) error { _, err := c.PortfolioItems(ctx); return err },
			expected: "GET /api/portfolio-items?populate=image",
		},
		{
			name:     "portfolio categories",
			call:     func(c *Client) error { _, err := c.PortfolioCategories(ctx); return err },
			expected: "GET /api/portfolio-categories?populate=category_image&sort=order:asc",
		},
		{
			name:     "blog posts",
			call:     func(c *Client) error { _, err := c.BlogPosts(ctx); return err },
			expected: "GET /api/blog-posts?populate=featured_image",
		},
		{
			name:     "social links",
			call:     func(c *Client) error { _, err := c.SocialLinks(ctx); return err },
			expected: "GET /api/social-links?sort=order:asc&populate=platform_icon&filters[is_visible][$eq]=true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, uris := recordingServer(t, http.StatusOK, `{"data":[]}`)
			client := NewClient(server.URL, 0)

			require.NoError(t, tt.call(client))
			require.Len(t, *uris, 1)
			assert.Equal(t, tt.expected, (*uris)[0])
		})
	}
}

func TestClient_PortfolioItems(t *testing.T) {
	server, _ := recordingServer(t, http.StatusOK,
		`{"data":[{"id":1,"title":"Aerial Shot","category":"nature","image":{"url":"/img1.jpg"}}],"meta":{"pagination":{"total":1}}}`)
	client := NewClient(server.URL+"/", 0)

	items, err := client.PortfolioItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Aerial Shot", items[0].Title)
	assert.Equal(t, "nature", items[0].Category)
	assert.Equal(t, "/img1.jpg", items[0].Image.URL)
}

func TestClient_SiteSettings(t *testing.T) {
	t.Run("decodes singleton", func(t *testing.T) {
		server, uris := recordingServer(t, http.StatusOK, `{"data":{"id":1,"attributes":{"hero_title":"Sky"}}}`)
		client := NewClient(server.URL, 0)

		settings, err := client.SiteSettings(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Sky", settings.HeroTitle)
		assert.Equal(t, []string{"GET /api/site-setting"}, *uris)
	})

	t.Run("null data is unavailable", func(t *testing.T) {
		server, _ := recordingServer(t, http.StatusOK, `{"data":null}`)
		client := NewClient(server.URL, 0)

		_, err := client.SiteSettings(context.Background())
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestClient_Section(t *testing.T) {
	t.Run("first match", func(t *testing.T) {
		server, _ := recordingServer(t, http.StatusOK, `{"data":[{"section_name":"about","detailed_content":"Long story"}]}`)
		client := NewClient(server.URL, 0)

		section, err := client.Section(context.Background(), "about")
		require.NoError(t, err)
		require.NotNil(t, section)
		assert.Equal(t, "Long story", section.DetailedContent)
	})

	t.Run("no match", func(t *testing.T) {
		server, _ := recordingServer(t, http.StatusOK, `{"data":[]}`)
		client := NewClient(server.URL, 0)

		section, err := client.Section(context.Background(), "about")
		require.NoError(t, err)
		assert.Nil(t, section)
	})
}

func TestClient_Failures(t *testing.T) {
	t.Run("non-2xx status", func(t *testing.T) {
		server, _ := recordingServer(t, http.StatusNotFound, `{"error":{"status":404}}`)
		client := NewClient(server.URL, 0)

		_, err := client.BlogPosts(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnavailable)

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
		assert.Equal(t, PathBlogPosts, statusErr.Path)
	})

	t.Run("malformed body", func(t *testing.T) {
		server, _ := recordingServer(t, http.StatusOK, `{"data":[`)
		client := NewClient(server.URL, 0)

		_, err := client.PortfolioItems(context.Background())
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("network failure", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		client := NewClient(url, 0)
		_, err := client.SocialLinks(context.Background())
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestClient_SubmitContact(t *testing.T) {
	t.Run("posts wrapped payload", func(t *testing.T) {
		var received map[string]map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, PathContactMessages, r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := NewClient(server.URL, 0)
		form := entities.NewContactForm("Ada", "ada@example.com", "Shoot", "Hello")
		require.NoError(t, client.SubmitContact(context.Background(), form))

		data := received["data"]
		assert.Equal(t, "Ada", data["name"])
		assert.Equal(t, "ada@example.com", data["email"])
		assert.Equal(t, "Shoot", data["subject"])
		assert.Equal(t, "Hello", data["message"])
		assert.Equal(t, false, data["read"])
		assert.Equal(t, false, data["replied"])
	})

	t.Run("non-2xx is failure", func(t *testing.T) {
		server, _ := recordingServer(t, http.StatusBadRequest, `{}`)
		client := NewClient(server.URL, 0)

		err := client.SubmitContact(context.Background(), entities.NewContactForm("a", "b", "", "c"))
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestClient_Ping(t *testing.T) {
	server, uris := recordingServer(t, http.StatusOK, `{"data":{}}`)
	client := NewClient(server.URL, 0)

	require.NoError(t, client.Ping(context.Background()))
	assert.Equal(t, []string{"GET /api/site-setting"}, *uris)
}
