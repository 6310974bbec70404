package templates

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/mindpath/mindpath/internal/services/web/platform/httpx"
	"github.com/mindpath/mindpath/internal/services/web/routepath"
)

// Layout renders a full HTML document around the component children.
func Layout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		lang := strings.TrimSpace(opts.Lang)
		if lang == "" {
			lang = "en"
		}
		h.raw("<!DOCTYPE html>\n<html")
		h.attr("lang", lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw("<title>")
		h.text(opts.Title)
		h.raw("</title>")
		if desc := strings.TrimSpace(opts.MetaDescription); desc != "" {
			h.raw(`<meta name="description"`)
			h.attr("content", desc)
			h.raw(">")
		}
		if opts.Redirect != nil {
			h.raw(`<meta http-equiv="refresh"`)
			h.attr("content", httpx.RefreshValue(opts.Redirect.Delay, opts.Redirect.URL))
			h.raw(">")
		}
		h.raw(`<link rel="stylesheet" href="`, routepath.StaticPrefix, `app.css">`)
		h.raw(`<script src="`, routepath.StaticPrefix, `app.js" defer></script></head><body`)
		if opts.Redirect != nil {
			h.attr("data-redirect-url", opts.Redirect.URL)
			h.attr("data-redirect-ms", strconv.FormatInt(opts.Redirect.Delay.Milliseconds(), 10))
		}
		h.raw(">")
		writeNav(h, opts)
		mainClass := "main"
		if opts.MainClass != "" {
			mainClass += " " + opts.MainClass
		}
		h.raw("<main")
		h.attr("class", mainClass)
		h.raw(` id="main">`)
		writeToast(h, opts.Toast)
		h.children(ctx)
		h.raw("</main></body></html>")
		return h.err
	})
}

// Fragment renders only the component children, for HTMX swaps.
func Fragment() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.children(ctx)
		return h.err
	})
}

func writeNav(h *htmlWriter, opts LayoutOptions) {
	loc := opts.Loc
	h.raw(`<header class="site-header"><nav class="nav"><a class="brand"`)
	h.attr("href", routepath.Root)
	h.raw(">")
	h.text(T(loc, "app.name"))
	h.raw(`</a><div class="nav-links">`)
	for _, link := range []struct{ href, key string }{
		{routepath.Root + routepath.AnchorFeatures, "nav.features"},
		{routepath.Root + routepath.AnchorHowTo, "nav.how_to_use"},
		{routepath.Root + routepath.AnchorAbout, "nav.about"},
	} {
		h.raw(`<a class="nav-link"`)
		h.attr("href", link.href)
		h.raw(">")
		h.text(T(loc, link.key))
		h.raw("</a>")
	}
	h.raw(`</div><div class="nav-actions">`)
	if opts.Viewer.SignedIn {
		h.raw(`<a class="btn btn-primary"`)
		h.attr("href", routepath.AppDashboard)
		h.raw(">")
		h.text(T(loc, "nav.dashboard"))
		h.raw(`</a>`)
		writeSignOutForm(h, loc, "btn btn-ghost")
	} else {
		h.raw(`<a class="btn btn-ghost"`)
		h.attr("href", routepath.SignIn)
		h.raw(">")
		h.text(T(loc, "nav.sign_in"))
		h.raw(`</a><a class="btn btn-primary"`)
		h.attr("href", routepath.SignUp)
		h.raw(">")
		h.text(T(loc, "nav.sign_up"))
		h.raw("</a>")
	}
	h.raw("</div></nav></header>")
}

func writeSignOutForm(h *htmlWriter, loc Localizer, class string) {
	h.raw(`<form class="inline-form" method="post"`)
	h.attr("action", routepath.Logout)
	h.raw(`><button type="submit"`)
	h.attr("class", class)
	h.raw(">")
	h.text(T(loc, "nav.sign_out"))
	h.raw("</button></form>")
}

func writeToast(h *htmlWriter, toast *Toast) {
	if toast == nil || strings.TrimSpace(toast.Message) == "" {
		return
	}
	h.raw(`<div id="app-toast">`)
	writeAlert(h, toast.Kind, toast.Message)
	h.raw("</div>")
}

func writeAlert(h *htmlWriter, kind, message string) {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		kind = "info"
	}
	role := "status"
	if kind == "error" {
		role = "alert"
	}
	h.raw(`<div`)
	h.attr("class", "alert alert-"+kind)
	h.attr("role", role)
	h.raw(">")
	h.text(message)
	h.raw("</div>")
}
