package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioItem_DecodesFlatRecords(t *testing.T) {
	data := `{"id":3,"title":"Aerial Shot","category":"nature","image":{"url":"/img1.jpg","alternativeText":"coast"},"date":"2024-03-15"}`

	var item PortfolioItem
	require.NoError(t, json.Unmarshal([]byte(data), &item))

	assert.Equal(t, 3, item.ID)
	assert.Equal(t, "Aerial Shot", item.Title)
	assert.Equal(t, "nature", item.Category)
	require.True(t, item.Image.Present())
	assert.Equal(t, "/img1.jpg", item.Image.URL)
	assert.Equal(t, "coast", item.Image.AlternativeText)
	require.True(t, item.Date.Valid())
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), item.Date.Time)
}

func TestPortfolioItem_DecodesAttributeRecords(t *testing.T) {
	data := `{"id":7,"attributes":{"title":"Harbour","category":"city","image":{"data":{"id":1,"attributes":{"url":"/uploads/harbour.jpg"}}}}}`

	var item PortfolioItem
	require.NoError(t, json.Unmarshal([]byte(data), &item))

	assert.Equal(t, 7, item.ID)
	assert.Equal(t, "Harbour", item.Title)
	require.True(t, item.Image.Present())
	assert.Equal(t, "/uploads/harbour.jpg", item.Image.URL)
}

func TestMedia_EmptyRelation(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"missing", `{"title":"x"}`},
		{"null", `{"title":"x","image":null}`},
		{"null relation", `{"title":"x","image":{"data":null}}`},
		{"empty url", `{"title":"x","image":{"url":""}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item PortfolioItem
			require.NoError(t, json.Unmarshal([]byte(tt.json), &item))
			assert.False(t, item.Image.Present())
		})
	}
}

func TestSiteSettings_DecodesAttributes(t *testing.T) {
	data := `{"id":1,"attributes":{"site_title":"Studio","hero_title":"Above it all","hero_subtitle":"Drone photography","about_text":"Hello"}}`

	var settings SiteSettings
	require.NoError(t, json.Unmarshal([]byte(data), &settings))

	assert.Equal(t, "Studio", settings.SiteTitle)
	assert.Equal(t, "Above it all", settings.HeroTitle)
	assert.Equal(t, "Drone photography", settings.HeroSubtitle)
	assert.Equal(t, "Hello", settings.AboutText)
}

func TestTimestamp_Layouts(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
		ok    bool
	}{
		{"2024-03-15T10:30:00.000Z", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), true},
		{"2024-03-15T10:30:00Z", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), true},
		{"2024-03-15T10:30:00", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), true},
		{"2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"yesterday", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseTimestamp(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, tt.want.Equal(got.Time), "got %v", got.Time)
		})
	}
}

func TestTimestamp_InvalidDoesNotFailRecord(t *testing.T) {
	var post BlogPost
	require.NoError(t, json.Unmarshal([]byte(`{"title":"x","DateTime":"not a date","publishedAt":42}`), &post))

	_, ok := post.Published()
	assert.False(t, ok)
}

func TestBlogPost_Published(t *testing.T) {
	editorial := Timestamp{Time: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)}
	published := Timestamp{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}

	t.Run("prefers DateTime", func(t *testing.T) {
		got, ok := BlogPost{DateTime: &editorial, PublishedAt: &published}.Published()
		assert.True(t, ok)
		assert.Equal(t, editorial.Time, got)
	})

	t.Run("falls back to publishedAt", func(t *testing.T) {
		got, ok := BlogPost{PublishedAt: &published}.Published()
		assert.True(t, ok)
		assert.Equal(t, published.Time, got)
	})

	t.Run("none", func(t *testing.T) {
		_, ok := BlogPost{}.Published()
		assert.False(t, ok)
	})
}

func postAt(title string, day int) BlogPost {
	ts := Timestamp{Time: time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)}
	return BlogPost{Title: title, PublishedAt: &ts}
}

func titles(posts []BlogPost) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Title
	}
	return out
}

func TestRecentPosts(t *testing.T) {
	t.Run("keeps the five newest, newest first", func(t *testing.T) {
		posts := []BlogPost{
			postAt("d3", 3), postAt("d7", 7), postAt("d1", 1), postAt("d5", 5),
			postAt("d2", 2), postAt("d6", 6), postAt("d4", 4),
		}

		got := RecentPosts(posts, 5)

		assert.Equal(t, []string{"d7", "d6", "d5", "d4", "d3"}, titles(got))
		assert.Equal(t, "d3", posts[0].Title, "input must not be reordered")
	})

	t.Run("fewer than the limit", func(t *testing.T) {
		got := RecentPosts([]BlogPost{postAt("a", 1), postAt("b", 2)}, 5)
		assert.Equal(t, []string{"b", "a"}, titles(got))
	})

	t.Run("ties keep fetched order", func(t *testing.T) {
		got := RecentPosts([]BlogPost{postAt("first", 2), postAt("second", 2), postAt("third", 2)}, 5)
		assert.Equal(t, []string{"first", "second", "third"}, titles(got))
	})

	t.Run("undated posts sort last", func(t *testing.T) {
		got := RecentPosts([]BlogPost{{Title: "undated"}, postAt("dated", 1)}, 5)
		assert.Equal(t, []string{"dated", "undated"}, titles(got))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, RecentPosts(nil, 5))
	})
}

func TestNewContactForm_DefaultSubject(t *testing.T) {
	form := NewContactForm("Ada", "ada@example.com", "", "Hi")

	assert.Equal(t, DefaultContactSubject, form.Subject)
	assert.False(t, form.Read)
	assert.False(t, form.Replied)

	data, err := json.Marshal(form)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ada","email":"ada@example.com","subject":"Messaggio dal sito","message":"Hi","read":false,"replied":false}`, string(data))
}
