package public

import (
	"net/http"
	"time"

	module "github.com/mindpath/mindpath/internal/services/web/module"
	"github.com/mindpath/mindpath/internal/services/web/platform/modulehandler"
	"github.com/mindpath/mindpath/internal/services/web/routepath"
)

// Config wires the public module.
type Config struct {
	Gateway  AuthGateway
	Sessions SessionStarter
	// SessionTTL caps sessions whose token carries no earlier expiry.
	SessionTTL   time.Duration
	Dependencies module.Dependencies
	Now          func() time.Time
}

// Module provides the landing page and the unauthenticated account routes.
type Module struct {
	cfg Config
}

// New returns a public module.
func New(cfg Config) Module {
	return Module{cfg: cfg}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return "public" }

// Healthy reports whether the auth gateway is configured.
func (m Module) Healthy() bool {
	if m.cfg.Gateway == nil {
		return false
	}
	_, unavailable := m.cfg.Gateway.(unavailableAuthGateway)
	return !unavailable
}

// Mount wires public routes under the root prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.cfg.Gateway, m.cfg.Sessions, m.cfg.SessionTTL, m.cfg.Now)
	registerRoutes(mux, newHandlers(svc, modulehandler.NewBase(m.cfg.Dependencies)))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
