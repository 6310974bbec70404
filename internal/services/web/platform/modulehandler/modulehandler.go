// Package modulehandler provides a composable base for web module handlers.
//
// Modules share handler infrastructure for viewer resolution, localization,
// page rendering and error handling. Handlers embed Base rather than
// duplicating that scaffold.
package modulehandler

import (
	"net/http"

	module "github.com/mindpath/mindpath/internal/services/web/module"
	flashnotice "github.com/mindpath/mindpath/internal/services/web/platform/flash"
	"github.com/mindpath/mindpath/internal/services/web/platform/httpx"
	webi18n "github.com/mindpath/mindpath/internal/services/web/platform/i18n"
	"github.com/mindpath/mindpath/internal/services/web/platform/pagerender"
	"github.com/mindpath/mindpath/internal/services/web/platform/requestmeta"
	"github.com/mindpath/mindpath/internal/services/web/platform/weberror"
	"go.uber.org/zap"
)

// Base carries the shared request-scoped resolvers used by module handlers.
type Base struct {
	deps module.Dependencies
}

// NewBase builds a handler base from module dependencies.
func NewBase(deps module.Dependencies) Base {
	return Base{deps: deps}
}

// NewTestBase builds a handler base with no resolvers, for tests that do not
// exercise viewer or language state.
func NewTestBase() Base {
	return Base{}
}

// ResolveRequestViewer resolves chrome viewer state for a request.
func (b Base) ResolveRequestViewer(r *http.Request) module.Viewer {
	return b.deps.ResolveRequestViewer(r)
}

// ResolveRequestLanguage returns the effective request language.
func (b Base) ResolveRequestLanguage(r *http.Request) string {
	return b.deps.ResolveRequestLanguage(r)
}

// SchemePolicy returns the cookie scheme policy.
func (b Base) SchemePolicy() requestmeta.SchemePolicy {
	return b.deps.SchemePolicy()
}

// IsViewerSignedIn reports whether the request carries a live session.
func (b Base) IsViewerSignedIn(r *http.Request) bool {
	return b.deps.IsSignedIn(r)
}

// Logger returns the module logger.
func (b Base) Logger() *zap.Logger {
	return b.deps.Log()
}

// PageLocalizer resolves a localizer and language tag from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webi18n.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r, b.deps.ResolveLanguage)
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b)
}

// WriteNotFound renders a 404 error page within the shared shell.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b)
}

// WritePage renders a page (HTMX-aware), falling back to an error page when
// rendering fails.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, page pagerender.ModulePage) {
	if err := pagerender.WriteModulePage(w, r, b, page); err != nil {
		b.Logger().Error("render page", zap.String("path", r.URL.Path), zap.Error(err))
		b.WriteError(w, r, err)
	}
}

// WriteFlash stores a one-time notice for the next rendered page.
func (b Base) WriteFlash(w http.ResponseWriter, r *http.Request, notice flashnotice.Notice) {
	flashnotice.Write(w, r, notice, b.SchemePolicy())
}

// Redirect writes an HTMX-aware redirect.
func (Base) Redirect(w http.ResponseWriter, r *http.Request, location string) {
	httpx.WriteRedirect(w, r, location)
}
