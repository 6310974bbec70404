package modulehandler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/mindpath/mindpath/internal/services/web/module"
	flashnotice "github.com/mindpath/mindpath/internal/services/web/platform/flash"
	"github.com/mindpath/mindpath/internal/services/web/platform/pagerender"
)

func TestNewBaseExtractsResolvers(t *testing.T) {
	t.Parallel()

	base := NewBase(module.Dependencies{
		ResolveLanguage: func(*http.Request) string { return "en" },
		ResolveViewer:   func(*http.Request) module.Viewer { return module.Viewer{SignedIn: true, DisplayName: "Test"} },
	})
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	if got := base.ResolveRequestLanguage(r); got != "en" {
		t.Fatalf("ResolveRequestLanguage() = %q, want %q", got, "en")
	}
	if got := base.ResolveRequestViewer(r); got.DisplayName != "Test" {
		t.Fatalf("ResolveRequestViewer() = %+v, want DisplayName=Test", got)
	}
	if !base.IsViewerSignedIn(r) {
		t.Fatalf("IsViewerSignedIn() = false, want true")
	}
}

func TestNewTestBaseReturnsZeroState(t *testing.T) {
	t.Parallel()

	base := NewTestBase()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := base.ResolveRequestViewer(r); got != (module.Viewer{}) {
		t.Fatalf("ResolveRequestViewer() = %+v, want zero Viewer", got)
	}
	if got := base.ResolveRequestLanguage(r); got != "" {
		t.Fatalf("ResolveRequestLanguage() = %q, want empty", got)
	}
	if base.Logger() == nil {
		t.Fatalf("Logger() = nil")
	}
}

func TestWritePageRendersShell(t *testing.T) {
	t.Parallel()

	base := NewTestBase()
	r := httptest.NewRequest(http.MethodGet, "/app/dashboard", nil)
	rr := httptest.NewRecorder()
	base.WritePage(rr, r, pagerender.ModulePage{Title: "Dashboard"})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if body := rr.Body.String(); !strings.Contains(body, "<title>Dashboard</title>") {
		t.Fatalf("body missing title: %q", body)
	}
}

func TestWriteNotFoundRendersErrorPage(t *testing.T) {
	t.Parallel()

	base := NewTestBase()
	r := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rr := httptest.NewRecorder()
	base.WriteNotFound(rr, r)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestWriteErrorUntypedIsServerError(t *testing.T) {
	t.Parallel()

	base := NewTestBase()
	r := httptest.NewRequest(http.MethodGet, "/app/dashboard", nil)
	rr := httptest.NewRecorder()
	base.WriteError(rr, r, errors.New("boom"))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rr.Body.String(), "boom") {
		t.Fatalf("body leaked internal error text")
	}
}

func TestWriteFlashSetsCookie(t *testing.T) {
	t.Parallel()

	base := NewTestBase()
	r := httptest.NewRequest(http.MethodPost, "/app/dashboard/entries", nil)
	rr := httptest.NewRecorder()
	base.WriteFlash(rr, r, flashnotice.NoticeError("dashboard.error.save_failed"))
	found := false
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == flashnotice.CookieName {
			found = true
		}
	}
	if !found {
		t.Fatalf("flash cookie not set")
	}
}
