package overlay

import (
	"fmt"
	"time"

	"github.com/mrlokans/portfolio/internal/dom"
	"golang.org/x/net/html"
)

// Theme holds the colors every overlay is painted with.
type Theme struct {
	Backdrop    string
	Surface     string
	Text        string
	Muted       string
	Accent      string
	AccentHover string
	AccentText  string
	CloseHover  string
	Shadow      string
	ZIndex      string
}

var DefaultTheme = Theme{
	Backdrop:    "rgba(248, 244, 240, 0.98)",
	Surface:     "white",
	Text:        "#4E342E",
	Muted:       "#8D6E63",
	Accent:      "#8D6E63",
	AccentHover: "#4E342E",
	AccentText:  "#F8F4F0",
	CloseHover:  "#BCAAA4",
	Shadow:      "0 15px 50px rgba(78, 52, 46, 0.2)",
	ZIndex:      "10000",
}

// Button is an action rendered below the overlay content.
type Button struct {
	Label string
	Class string
	// Href renders the action as a link instead of a button.
	Href    string
	OnClick func(o *Overlay)
}

// Definition describes one overlay to build.
type Definition struct {
	Kind         Kind
	Class        string
	ContentClass string
	CloseClass   string
	// BackdropClass adds a dedicated backdrop element that also dismisses.
	BackdropClass string
	MaxWidth      string
	CloseDelay    time.Duration
	Reveal        Reveal
	Content       []*html.Node
	Buttons       []Button
}

func (m *Manager) build(o *Overlay) *html.Node {
	def := o.def
	theme := m.options.Theme
	inline := def.Reveal == RevealOpacity

	root := dom.Element("div", dom.Class(def.Class))
	if inline {
		for _, decl := range [][2]string{
			{"position", "fixed"},
			{"top", "0"},
			{"left", "0"},
			{"width", "100%"},
			{"height", "100%"},
			{"background", theme.Backdrop},
			{"z-index", theme.ZIndex},
			{"overflow-y", "auto"},
			{"padding", "100px 20px 50px"},
			{"opacity", "0"},
			{"transition", fmt.Sprintf("opacity %gs ease", def.CloseDelay.Seconds())},
		} {
			dom.SetStyle(root, decl[0], decl[1])
		}
	}
	m.doc.On(root, dom.EventClick, func(e *dom.Event) {
		if e.Target == root {
			o.Close()
		}
	})

	if def.BackdropClass != "" {
		backdrop := dom.Element("div", dom.Class(def.BackdropClass))
		m.doc.On(backdrop, dom.EventClick, func(*dom.Event) { o.Close() })
		dom.Append(root, backdrop)
	}

	content := dom.Element("div", dom.Class(def.ContentClass))
	if inline {
		for _, decl := range [][2]string{
			{"max-width", def.MaxWidth},
			{"margin", "0 auto"},
			{"background", theme.Surface},
			{"padding", "3rem"},
			{"border-radius", "15px"},
			{"box-shadow", theme.Shadow},
			{"position", "relative"},
		} {
			dom.SetStyle(content, decl[0], decl[1])
		}
	}
	dom.Append(root, content)

	closeBtn := dom.Element("button", dom.Class(def.CloseClass), dom.Text("×"))
	if inline {
		for _, decl := range [][2]string{
			{"position", "absolute"},
			{"top", "20px"},
			{"right", "20px"},
			{"background", "none"},
			{"border", "none"},
			{"font-size", "2rem"},
			{"cursor", "pointer"},
			{"color", theme.Accent},
			{"width", "40px"},
			{"height", "40px"},
			{"border-radius", "50%"},
		} {
			dom.SetStyle(closeBtn, decl[0], decl[1])
		}
	}
	m.hover(closeBtn,
		map[string]string{"background": theme.CloseHover},
		map[string]string{"background": "none"},
	)
	m.doc.On(closeBtn, dom.EventClick, func(*dom.Event) { o.Close() })
	dom.Append(content, closeBtn)

	for _, n := range def.Content {
		dom.Append(content, n)
	}

	if len(def.Buttons) > 0 {
		actions := dom.Element("div",
			dom.Class("overlay-actions"),
			dom.Style("text-align", "center"),
			dom.Style("margin-top", "2rem"),
		)
		for _, b := range def.Buttons {
			dom.Append(actions, m.button(o, b))
		}
		dom.Append(content, actions)
	}
	return root
}

func (m *Manager) button(o *Overlay, b Button) *html.Node {
	theme := m.options.Theme

	tag := "button"
	if b.Href != "" {
		tag = "a"
	}
	n := dom.Element(tag,
		dom.Class(b.Class),
		dom.If(b.Href != "", dom.Attr("href", b.Href)),
		dom.Style("display", "inline-block"),
		dom.Style("padding", "12px 24px"),
		dom.Style("background", theme.Accent),
		dom.Style("color", theme.AccentText),
		dom.Style("border", "none"),
		dom.Style("border-radius", "25px"),
		dom.Style("text-decoration", "none"),
		dom.Style("cursor", "pointer"),
		dom.Style("font-weight", "500"),
		dom.Text(b.Label),
	)
	m.hover(n,
		map[string]string{"background": theme.AccentHover, "transform": "translateY(-2px)"},
		map[string]string{"background": theme.Accent, "transform": "translateY(0)"},
	)
	m.doc.On(n, dom.EventClick, func(e *dom.Event) {
		e.PreventDefault()
		if b.OnClick != nil {
			b.OnClick(o)
			return
		}
		o.Close()
	})
	return n
}

// hover swaps inline styles while the pointer is over n.
func (m *Manager) hover(n *html.Node, enter, leave map[string]string) {
	m.doc.On(n, dom.EventMouseEnter, func(*dom.Event) {
		for prop, value := range enter {
			dom.SetStyle(n, prop, value)
		}
	})
	m.doc.On(n, dom.EventMouseLeave, func(*dom.Event) {
		for prop, value := range leave {
			dom.SetStyle(n, prop, value)
		}
	})
}
