package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/mindpath/mindpath/internal/services/web/routepath"
)

// LandingView carries the state for the marketing page.
type LandingView struct {
	Loc      Localizer
	SignedIn bool
}

var landingFeatures = []struct{ icon, key string }{
	{"💭", "landing.features.emotion"},
	{"📈", "landing.features.growth"},
	{"🔒", "landing.features.privacy"},
}

const landingSteps = 4

// LandingPage renders the hero, features, usage steps and about sections.
func LandingPage(view LandingView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		loc := view.Loc

		h.raw(`<section class="hero">`)
		h.element("h1", "hero-title", T(loc, "landing.hero.title"))
		h.element("p", "hero-subtitle", T(loc, "landing.hero.subtitle"))
		h.element("p", "hero-lead", T(loc, "landing.hero.subtitle_more"))
		h.raw(`<div class="hero-actions"><a class="btn btn-primary btn-lg"`)
		if view.SignedIn {
			h.attr("href", routepath.AppDashboard)
			h.raw(">")
			h.text(T(loc, "nav.dashboard"))
		} else {
			h.attr("href", routepath.SignUp)
			h.raw(">")
			h.text(T(loc, "landing.cta.get_started"))
		}
		h.raw(`</a><a class="btn btn-outline btn-lg"`)
		h.attr("href", routepath.AnchorHowTo)
		h.raw(">")
		h.text(T(loc, "landing.cta.how_it_works"))
		h.raw("</a></div></section>")

		h.raw(`<section class="section" id="features">`)
		h.element("h2", "section-title", T(loc, "landing.features.heading"))
		h.raw(`<div class="feature-grid">`)
		for _, feature := range landingFeatures {
			h.raw(`<article class="card feature">`)
			h.element("div", "feature-icon", feature.icon)
			h.element("h3", "", T(loc, feature.key+".title"))
			h.element("p", "muted", T(loc, feature.key+".body"))
			h.raw("</article>")
		}
		h.raw("</div></section>")

		h.raw(`<section class="section section-alt" id="how-to-use">`)
		h.element("h2", "section-title", T(loc, "landing.how.heading"))
		h.raw(`<ol class="steps">`)
		for step := 1; step <= landingSteps; step++ {
			key := "landing.how.step" + strconv.Itoa(step)
			h.raw(`<li class="step">`)
			h.element("span", "step-number", strconv.Itoa(step))
			h.raw(`<div>`)
			h.element("h3", "", T(loc, key+".title"))
			h.element("p", "muted", T(loc, key+".body"))
			h.raw("</div></li>")
		}
		h.raw("</ol></section>")

		h.raw(`<section class="section" id="about">`)
		h.element("h2", "section-title", T(loc, "landing.about.heading"))
		h.element("p", "about-body", T(loc, "landing.about.body"))
		h.raw("</section>")

		h.raw(`<footer class="site-footer">`)
		h.element("p", "", T(loc, "landing.footer"))
		h.raw("</footer>")
		return h.err
	})
}
