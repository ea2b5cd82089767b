package render

import (
	"github.com/mrlokans/portfolio/internal/config"
	"github.com/mrlokans/portfolio/internal/entities"
)

// ImageResolver turns media references into absolute URLs.
type ImageResolver struct {
	Base         string
	Placeholders config.Placeholders
}

// Resolve prefixes the media host to a present reference and substitutes
// placeholder otherwise.
func (r ImageResolver) Resolve(m *entities.Media, placeholder string) string {
	if !m.Present() {
		return placeholder
	}
	return r.Base + m.URL
}

func (r ImageResolver) Portfolio(m *entities.Media) string {
	return r.Resolve(m, r.Placeholders.Portfolio)
}

func (r ImageResolver) Category(m *entities.Media) string {
	return r.Resolve(m, r.Placeholders.Category)
}

func (r ImageResolver) Blog(m *entities.Media) string {
	return r.Resolve(m, r.Placeholders.Blog)
}

func (r ImageResolver) Social(m *entities.Media) string {
	return r.Resolve(m, r.Placeholders.Social)
}

// Optional resolves m without a placeholder; absent media yields "".
func (r ImageResolver) Optional(m *entities.Media) string {
	return r.Resolve(m, "")
}
