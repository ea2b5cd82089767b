package render

import (
	"fmt"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// Long date layouts for locales that do not put the day first.
var longLayouts = map[monday.Locale]string{
	monday.LocaleEnUS: "January 2, 2006",
}

const defaultLongLayout = "2 January 2006"

// DateFormatter prints dates in the long form of one locale, e.g.
// "15 marzo 2024" for it-IT.
type DateFormatter struct {
	locale monday.Locale
	layout string
}

// NewDateFormatter accepts a BCP 47 tag such as "it-IT".
func NewDateFormatter(tag string) (*DateFormatter, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", tag, err)
	}
	base, _ := parsed.Base()
	region, _ := parsed.Region()
	locale := monday.Locale(fmt.Sprintf("%s_%s", base, region))

	if !supported(locale) {
		return nil, fmt.Errorf("locale %q has no date translations", tag)
	}

	layout, ok := longLayouts[locale]
	if !ok {
		layout = defaultLongLayout
	}
	return &DateFormatter{locale: locale, layout: layout}, nil
}

func supported(locale monday.Locale) bool {
	for _, l := range monday.ListLocales() {
		if l == locale {
			return true
		}
	}
	return false
}

func (f *DateFormatter) Format(t time.Time) string {
	return monday.Format(t, f.layout, f.locale)
}
