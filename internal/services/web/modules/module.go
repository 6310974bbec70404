// Package modules defines web module registry helpers.
package modules

import (
	"time"

	module "github.com/mindpath/mindpath/internal/services/web/module"
	"github.com/mindpath/mindpath/internal/services/web/modules/dashboard"
	"github.com/mindpath/mindpath/internal/services/web/modules/public"
	"github.com/mindpath/mindpath/internal/services/web/storage"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the clients and session wiring required to compose
// the web module registry. Each client field is typed as the narrow
// interface defined by the consuming module.
type Dependencies struct {
	// Public module client.
	AuthClient public.AuthClient

	// Dashboard module client.
	JournalClient dashboard.JournalClient

	Sessions       storage.SessionStore
	SessionTTL     time.Duration
	ResolveSession dashboard.ResolveSession
}
