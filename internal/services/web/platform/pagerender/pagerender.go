// Package pagerender centralizes page rendering behavior for web modules.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/mindpath/mindpath/internal/services/web/module"
	flashnotice "github.com/mindpath/mindpath/internal/services/web/platform/flash"
	"github.com/mindpath/mindpath/internal/services/web/platform/httpx"
	webi18n "github.com/mindpath/mindpath/internal/services/web/platform/i18n"
	"github.com/mindpath/mindpath/internal/services/web/platform/requestmeta"
	webtemplates "github.com/mindpath/mindpath/internal/services/web/templates"
)

// RequestResolver resolves viewer, language and cookie policy from a request.
// This decouples platform rendering from the module-layer Dependencies type.
type RequestResolver interface {
	ResolveRequestViewer(r *http.Request) module.Viewer
	ResolveRequestLanguage(r *http.Request) string
	SchemePolicy() requestmeta.SchemePolicy
}

// ModulePage describes a page response for both full-page and HTMX flows.
type ModulePage struct {
	Title           string
	MetaDescription string
	StatusCode      int
	MainClass       string
	Redirect        *webtemplates.Redirect
	Fragment        templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage writes a page inside the shared shell, or only its
// fragment for HTMX requests. Full pages consume a pending flash notice.
func WriteModulePage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	var (
		resolveLanguage module.ResolveLanguage
		viewer          module.Viewer
		policy          requestmeta.SchemePolicy
	)
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
		viewer = resolver.ResolveRequestViewer(r)
		policy = resolver.SchemePolicy()
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, resolveLanguage)
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)

	var buf bytes.Buffer
	var shell templ.Component
	if httpx.IsHTMXRequest(r) {
		shell = webtemplates.Fragment()
	} else {
		toast := resolveFlashToast(w, r, loc, policy)
		metaDescription := page.MetaDescription
		if metaDescription == "" {
			metaDescription = webtemplates.T(loc, "meta.description")
		}
		shell = webtemplates.Layout(webtemplates.LayoutOptions{
			Title:           page.Title,
			MetaDescription: metaDescription,
			Lang:            lang,
			Loc:             loc,
			Viewer:          viewer,
			Toast:           toast,
			Redirect:        page.Redirect,
			MainClass:       page.MainClass,
		})
	}
	if err := shell.Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// WritePublicPage writes a page for unauthenticated surfaces and falls back
// to a bare 500 when rendering fails.
func WritePublicPage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page ModulePage) {
	if err := WriteModulePage(w, r, resolver, page); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func resolveFlashToast(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer, policy requestmeta.SchemePolicy) *webtemplates.Toast {
	notice, ok := flashnotice.ReadAndClear(w, r, policy)
	if !ok {
		return nil
	}
	if !webi18n.HasKey(notice.Key) {
		return nil
	}
	message := strings.TrimSpace(loc.Sprintf(notice.Key))
	if message == "" {
		return nil
	}
	return &webtemplates.Toast{
		Kind:    string(notice.Kind),
		Message: message,
	}
}
