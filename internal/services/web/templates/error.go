package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/mindpath/mindpath/internal/services/web/routepath"
)

const (
	appErrorPageTitleNotFoundKey  = "error.page.title.not_found"
	appErrorPageTitleServerErrKey = "error.page.title.server"
	appErrorMessageNotFoundKey    = "error.page.not_found"
	appErrorMessageServerErrKey   = "error.page.server"
	appErrorBackHomeKey           = "error.page.home"
)

// AppErrorPageTitle returns the browser page title for error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorPageTitleNotFoundKey)
	}
	return T(loc, appErrorPageTitleServerErrKey)
}

func appErrorMessage(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorMessageNotFoundKey)
	}
	return T(loc, appErrorMessageServerErrKey)
}

func normalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// AppErrorState renders the error page body.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section class="card error-state" id="app-error-state">`)
		h.element("p", "error-code", http.StatusText(normalizeAppErrorStatus(statusCode)))
		h.element("h1", "", AppErrorPageTitle(statusCode, loc))
		h.element("p", "muted", appErrorMessage(statusCode, loc))
		h.raw(`<a class="btn btn-primary"`)
		h.attr("href", routepath.Root)
		h.raw(">")
		h.text(T(loc, appErrorBackHomeKey))
		h.raw("</a></section>")
		return h.err
	})
}
