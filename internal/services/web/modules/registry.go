package modules

import (
	module "github.com/mindpath/mindpath/internal/services/web/module"
	"github.com/mindpath/mindpath/internal/services/web/modules/dashboard"
	"github.com/mindpath/mindpath/internal/services/web/modules/public"
)

// DefaultPublicModules returns the unauthenticated web modules.
func DefaultPublicModules(deps Dependencies, shared module.Dependencies) []Module {
	return []Module{
		public.New(public.Config{
			Gateway:      public.NewAPIAuthGateway(deps.AuthClient),
			Sessions:     deps.Sessions,
			SessionTTL:   deps.SessionTTL,
			Dependencies: shared,
		}),
	}
}

// DefaultProtectedModules returns the authenticated web modules.
func DefaultProtectedModules(deps Dependencies, shared module.Dependencies) []Module {
	return []Module{
		dashboard.New(dashboard.Config{
			Gateway:        dashboard.NewAPIGateway(deps.JournalClient),
			Sessions:       deps.Sessions,
			ResolveSession: deps.ResolveSession,
			Dependencies:   shared,
		}),
	}
}

// Unhealthy returns the IDs of modules that report a missing gateway.
func Unhealthy(groups ...[]Module) []string {
	var ids []string
	for _, group := range groups {
		for _, feature := range group {
			reporter, ok := feature.(module.HealthReporter)
			if ok && !reporter.Healthy() {
				ids = append(ids, feature.ID())
			}
		}
	}
	return ids
}
