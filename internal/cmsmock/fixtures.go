package cmsmock

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/default.yaml
var defaultFixtures []byte

// Record is one content entry as served by the API. Fixtures keep the field
// names of the real content types so records are served unchanged.
type Record map[string]any

// Fixtures is the canned content served by the mock API.
type Fixtures struct {
	SiteSetting         Record   `yaml:"site_setting"`
	SectionSettings     []Record `yaml:"section_settings"`
	PortfolioItems      []Record `yaml:"portfolio_items"`
	PortfolioCategories []Record `yaml:"portfolio_categories"`
	BlogPosts           []Record `yaml:"blog_posts"`
	SocialLinks         []Record `yaml:"social_links"`
}

// ParseFixtures decodes YAML fixtures.
func ParseFixtures(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	f.assignIDs()
	return &f, nil
}

// LoadFixtures reads fixtures from path, or the bundled sample content when
// path is empty.
func LoadFixtures(path string) (*Fixtures, error) {
	if path == "" {
		return ParseFixtures(defaultFixtures)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures %s: %w", path, err)
	}
	return ParseFixtures(data)
}

// assignIDs numbers records that carry no id, the way the content API always
// returns one.
func (f *Fixtures) assignIDs() {
	for _, records := range [][]Record{f.SectionSettings, f.PortfolioItems, f.PortfolioCategories, f.BlogPosts, f.SocialLinks} {
		for i, r := range records {
			if _, ok := r["id"]; !ok {
				r["id"] = i + 1
			}
		}
	}
	if f.SiteSetting != nil {
		if _, ok := f.SiteSetting["id"]; !ok {
			f.SiteSetting["id"] = 1
		}
	}
}

// Query is the subset of the content API query language the page uses:
// sort=field:asc|desc and filters[field][$eq]=value.
type Query struct {
	SortField string
	SortDesc  bool
	Filters   map[string]string
}

// Apply filters and sorts records, returning a new slice.
func (q Query) Apply(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if q.matches(r) {
			out = append(out, r)
		}
	}
	if q.SortField != "" {
		sort.SliceStable(out, func(i, j int) bool {
			c := compare(out[i][q.SortField], out[j][q.SortField])
			if q.SortDesc {
				return c > 0
			}
			return c < 0
		})
	}
	return out
}

func (q Query) matches(r Record) bool {
	for field, want := range q.Filters {
		if fmt.Sprint(r[field]) != want {
			return false
		}
	}
	return true
}

// compare orders numbers numerically and everything else as text. Missing
// values sort first.
func compare(a, b any) int {
	fa, okA := number(a)
	fb, okB := number(b)
	if okA && okB {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	}
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		}
		return 1
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
