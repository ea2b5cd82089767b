package nav

import (
	"math"
	"testing"
	"time"

	"github.com/mrlokans/portfolio/internal/dom"
	"github.com/mrlokans/portfolio/internal/eventloop"
	"github.com/mrlokans/portfolio/internal/scrolllock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body>
<header id="header">
  <div id="hamburger"><span class="bar"></span></div>
  <ul id="nav-menu">
    <li><a class="nav-link" href="#home">Home</a></li>
    <li><a class="nav-link" href="#about">About</a></li>
    <li><a class="nav-link" href="#contact">Contatti</a></li>
  </ul>
</header>
<section id="home"></section>
<section id="about"><p class="inside">text</p></section>
<section id="contact"></section>
<button id="back-to-top">top</button>
</body></html>`

var testOptions = Options{
	MenuBreakpoint:      768,
	HeaderOffset:        80,
	ActiveSectionOffset: 120,
	HeaderScrolledAt:    100,
	BackToTopVisibleAt:  500,
	ScrollDuration:      time.Second,
	LinkScrollDelay:     300 * time.Millisecond,
}

type fixture struct {
	doc  *dom.Document
	loop *eventloop.Manual
	lock *scrolllock.Lock
	nav  *Controller
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	doc, err := dom.ParseString(page)
	require.NoError(t, err)
	doc.Window.Layout = dom.StaticLayout{
		"home":    {Top: 0, Height: 800},
		"about":   {Top: 800, Height: 1000},
		"contact": {Top: 1800, Height: 600},
	}
	doc.Window.InnerWidth = 375

	loop := eventloop.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	lock := scrolllock.New(doc.Body())
	c := New(doc, loop, lock, testOptions)
	c.Init()
	c.InitBackToTop()
	return &fixture{doc: doc, loop: loop, lock: lock, nav: c}
}

func (f *fixture) menuActive() (bool, bool) {
	return dom.HasClass(f.doc.ByID("hamburger"), "active"), dom.HasClass(f.doc.ByID("nav-menu"), "active")
}

func TestEaseInOutQuad(t *testing.T) {
	tests := []struct {
		t, want float64
	}{
		{t: 0, want: 100},
		{t: 250, want: 125},
		{t: 500, want: 200},
		{t: 750, want: 275},
		{t: 1000, want: 300},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, EaseInOutQuad(tt.t, 100, 200, 1000), 1e-9, "t=%v", tt.t)
	}
}

func TestEaseInOutQuad_Monotonic(t *testing.T) {
	prev := math.Inf(-1)
	for ms := 0.0; ms <= 1000; ms += 16 {
		v := EaseInOutQuad(ms, 0, 1000, 1000)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestMenu_ToggleMirrorsClassesAndLock(t *testing.T) {
	f := newFixture(t)
	hamburger := f.doc.ByID("hamburger")

	f.doc.Click(hamburger)
	burger, panel := f.menuActive()
	assert.True(t, burger)
	assert.True(t, panel)
	assert.True(t, f.nav.Menu.IsOpen())
	assert.Equal(t, "fixed", dom.GetStyle(f.doc.Body(), "position"))

	f.doc.Click(dom.Query(hamburger, ".bar"))
	burger, panel = f.menuActive()
	assert.False(t, burger)
	assert.False(t, panel)
	assert.False(t, f.lock.Locked())
	assert.Empty(t, dom.GetStyle(f.doc.Body(), "position"))
}

func TestMenu_CloseTriggers(t *testing.T) {
	tests := []struct {
		name  string
		close func(f *fixture)
		open  bool
	}{
		{name: "outside click", close: func(f *fixture) { f.doc.Click(f.doc.Query(".inside")) }},
		{name: "escape", close: func(f *fixture) { f.doc.KeyDown(dom.KeyEscape) }},
		{name: "resize above breakpoint", close: func(f *fixture) { f.doc.Window.Resize(1024, 768) }},
		{name: "resize at breakpoint", close: func(f *fixture) { f.doc.Window.Resize(768, 1024) }, open: true},
		{name: "click inside panel", close: func(f *fixture) { f.doc.Click(f.doc.ByID("nav-menu")) }, open: true},
		{name: "other key", close: func(f *fixture) { f.doc.KeyDown("Enter") }, open: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.nav.Menu.Open()

			tt.close(f)

			assert.Equal(t, tt.open, f.nav.Menu.IsOpen())
			assert.Equal(t, tt.open, f.lock.Locked())
		})
	}
}

func TestMenu_ResizeForcesClosedRegardlessOfState(t *testing.T) {
	f := newFixture(t)

	f.doc.Window.Resize(1280, 800)
	assert.False(t, f.nav.Menu.IsOpen())
	assert.False(t, f.lock.Locked())
}

func TestMenu_LinkClosesThenScrolls(t *testing.T) {
	f := newFixture(t)
	f.nav.Menu.Open()

	link := f.doc.Query(`.nav-link[href="#about"]`)
	assert.False(t, f.doc.Click(link))
	assert.False(t, f.nav.Menu.IsOpen())

	f.loop.Advance(299 * time.Millisecond)
	assert.False(t, f.nav.Scroller.Scrolling())
	assert.Zero(t, f.doc.Window.ScrollY)

	f.loop.Advance(time.Millisecond)
	assert.True(t, f.nav.Scroller.Scrolling())

	f.loop.Advance(500 * time.Millisecond)
	mid := f.doc.Window.ScrollY
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 720.0)

	f.loop.Advance(time.Second)
	assert.Equal(t, 720.0, f.doc.Window.ScrollY)
	assert.False(t, f.nav.Scroller.Scrolling())
}

func TestScroller_UnknownTargets(t *testing.T) {
	f := newFixture(t)

	f.nav.Scroller.ScrollToHref("#nowhere")
	f.nav.Scroller.ScrollToHref("https://example.com")
	f.nav.Scroller.ScrollToHref("#")

	assert.False(t, f.nav.Scroller.Scrolling())
	assert.Zero(t, f.loop.Pending())
}

func TestScroller_NewScrollReplacesRunning(t *testing.T) {
	f := newFixture(t)

	f.nav.Scroller.ScrollToHref("#contact")
	f.loop.Advance(200 * time.Millisecond)
	f.nav.Scroller.ScrollToHref("#about")
	f.loop.Advance(2 * time.Second)

	assert.Equal(t, 720.0, f.doc.Window.ScrollY)
	assert.Equal(t, 0, f.loop.Pending())
}

func TestScroller_TargetClampedToDocument(t *testing.T) {
	f := newFixture(t)
	f.doc.Window.InnerHeight = 800
	f.doc.Window.ScrollHeight = 2400

	var positions []float64
	f.doc.Window.On(dom.EventScroll, func(*dom.Event) {
		positions = append(positions, f.doc.Window.ScrollY)
	})

	f.nav.Scroller.ScrollToHref("#contact")
	f.loop.Advance(2 * time.Second)

	assert.Equal(t, 1600.0, f.doc.Window.ScrollY)
	for i := 1; i < len(positions); i++ {
		assert.LessOrEqual(t, positions[i-1], positions[i], "eases toward the clamped target")
	}
}

func TestScrollSpy_ActiveLink(t *testing.T) {
	tests := []struct {
		scrollY float64
		want    string
	}{
		{scrollY: 0, want: "#home"},
		{scrollY: 679, want: "#home"},
		{scrollY: 680, want: "#about"},
		{scrollY: 1679, want: "#about"},
		{scrollY: 1700, want: "#contact"},
		{scrollY: 5000, want: ""},
	}

	for _, tt := range tests {
		f := newFixture(t)
		f.doc.Window.ScrollTo(tt.scrollY)

		var active []string
		for _, link := range f.doc.QueryAll(".nav-link.active") {
			active = append(active, dom.GetAttr(link, "href"))
		}
		if tt.want == "" {
			assert.Empty(t, active, "scrollY=%v", tt.scrollY)
			continue
		}
		assert.Equal(t, []string{tt.want}, active, "scrollY=%v", tt.scrollY)
	}
}

func TestScrollSpy_LastMatchingSectionWins(t *testing.T) {
	f := newFixture(t)
	f.doc.Window.Layout = dom.StaticLayout{
		"home":  {Top: 0, Height: 2000},
		"about": {Top: 300, Height: 2000},
	}

	assert.Equal(t, "about", func() string {
		f.doc.Window.ScrollTo(400)
		return f.nav.Spy.CurrentSection()
	}())
	assert.Len(t, f.doc.QueryAll(".nav-link.active"), 1)
}

func TestScrollSpy_HeaderAndBackToTop(t *testing.T) {
	f := newFixture(t)
	header := f.doc.ByID("header")
	backToTop := f.doc.ByID("back-to-top")

	f.doc.Window.ScrollTo(100)
	assert.False(t, dom.HasClass(header, "scrolled"))

	f.doc.Window.ScrollTo(101)
	assert.True(t, dom.HasClass(header, "scrolled"))
	assert.False(t, dom.HasClass(backToTop, "visible"))

	f.doc.Window.ScrollTo(900)
	assert.True(t, dom.HasClass(backToTop, "visible"))

	f.doc.Click(backToTop)
	f.loop.Advance(2 * time.Second)
	assert.Zero(t, f.doc.Window.ScrollY, "home sits above the header offset, so the scroll clamps at the top")
	assert.False(t, dom.HasClass(header, "scrolled"))
}

func TestController_WithoutMenu(t *testing.T) {
	doc, err := dom.ParseString(`<html><body><section id="home"></section></body></html>`)
	require.NoError(t, err)
	loop := eventloop.NewManual(time.Now())

	c := New(doc, loop, scrolllock.New(doc.Body()), testOptions)
	c.Init()
	c.InitBackToTop()

	assert.Nil(t, c.Menu)
	doc.Window.ScrollTo(10)
	doc.KeyDown(dom.KeyEscape)
}
