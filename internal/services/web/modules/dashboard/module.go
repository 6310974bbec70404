package dashboard

import (
	"net/http"
	"time"

	module "github.com/mindpath/mindpath/internal/services/web/module"
	"github.com/mindpath/mindpath/internal/services/web/platform/modulehandler"
	"github.com/mindpath/mindpath/internal/services/web/routepath"
	"github.com/mindpath/mindpath/internal/services/web/storage"
)

// ResolveSession returns the live session carried by a request.
type ResolveSession func(*http.Request) (storage.Session, bool)

// Config wires the dashboard module.
type Config struct {
	Gateway        JournalGateway
	Sessions       SessionWriter
	ResolveSession ResolveSession
	Dependencies   module.Dependencies
	// Now overrides the clock used for provisional entries.
	Now func() time.Time
}

// Module serves the signed-in journal dashboard.
type Module struct {
	cfg Config
}

// New returns a dashboard module.
func New(cfg Config) Module {
	return Module{cfg: cfg}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Healthy reports whether the journal gateway is configured.
func (m Module) Healthy() bool {
	if m.cfg.Gateway == nil {
		return false
	}
	_, unavailable := m.cfg.Gateway.(unavailableGateway)
	return !unavailable
}

// Mount serves dashboard routes under the dashboard prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.cfg.Gateway, m.cfg.Sessions, m.cfg.Dependencies.Log(), m.cfg.Now)
	registerRoutes(mux, newHandlers(svc, m.cfg.ResolveSession, modulehandler.NewBase(m.cfg.Dependencies)))
	return module.Mount{Prefix: routepath.DashboardPrefix, Handler: mux}, nil
}
