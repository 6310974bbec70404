// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"github.com/mindpath/mindpath/internal/services/web/platform/requestmeta"
	"go.uber.org/zap"
)

// Viewer contains user-facing chrome data for rendered pages.
type Viewer struct {
	SignedIn    bool
	DisplayName string
	Email       string
}

// ResolveViewer resolves chrome viewer state for a request.
type ResolveViewer func(*http.Request) Viewer

// ResolveSignedIn reports whether the request carries a live session.
type ResolveSignedIn func(*http.Request) bool

// ResolveLanguage returns the effective request language.
type ResolveLanguage func(*http.Request) string

// Dependencies carries request resolvers and shared policies every module
// receives from the server.
type Dependencies struct {
	ResolveViewer       ResolveViewer
	ResolveSignedIn     ResolveSignedIn
	ResolveLanguage     ResolveLanguage
	RequestSchemePolicy requestmeta.SchemePolicy
	Logger              *zap.Logger
}

// ResolveRequestViewer resolves viewer state, or a signed-out viewer.
func (d Dependencies) ResolveRequestViewer(r *http.Request) Viewer {
	if d.ResolveViewer == nil {
		return Viewer{}
	}
	return d.ResolveViewer(r)
}

// ResolveRequestLanguage returns the effective request language, or "".
func (d Dependencies) ResolveRequestLanguage(r *http.Request) string {
	if d.ResolveLanguage == nil {
		return ""
	}
	return d.ResolveLanguage(r)
}

// IsSignedIn reports whether the request carries a live session.
func (d Dependencies) IsSignedIn(r *http.Request) bool {
	if d.ResolveSignedIn != nil {
		return d.ResolveSignedIn(r)
	}
	return d.ResolveRequestViewer(r).SignedIn
}

// Log returns the configured logger or a no-op logger.
func (d Dependencies) Log() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is implemented by modules that depend on a remote gateway
// and can report whether it is configured.
type HealthReporter interface {
	Healthy() bool
}

// SchemePolicy returns the request scheme policy for cookie writes.
func (d Dependencies) SchemePolicy() requestmeta.SchemePolicy {
	return d.RequestSchemePolicy
}
