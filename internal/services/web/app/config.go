package app

import (
	"net/http"

	module "github.com/mindpath/mindpath/internal/services/web/module"
	"github.com/mindpath/mindpath/internal/services/web/platform/requestmeta"
)

// Config captures the composition inputs for the web root handler.
type Config struct {
	PublicModules       []module.Module
	ProtectedModules    []module.Module
	Authenticated       func(*http.Request) bool
	RequestSchemePolicy requestmeta.SchemePolicy
}
