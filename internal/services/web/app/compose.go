package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	module "github.com/mindpath/mindpath/internal/services/web/module"
	"github.com/mindpath/mindpath/internal/services/web/platform/requestmeta"
	"github.com/mindpath/mindpath/internal/services/web/routepath"
)

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	// Authenticated reports whether a request carries a live session.
	Authenticated       func(*http.Request) bool
	PublicModules       []module.Module
	ProtectedModules    []module.Module
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Compose mounts public modules at their own prefixes and protected modules
// under /app/ behind the session guard.
func Compose(input ComposeInput) (http.Handler, error) {
	r := router{mux: http.NewServeMux(), owners: make(map[string]string)}
	guard := sessionGuard{authenticated: input.Authenticated, policy: input.RequestSchemePolicy}
	if guard.authenticated == nil {
		guard.authenticated = func(*http.Request) bool { return false }
	}
	for _, feature := range input.PublicModules {
		if err := r.mount(feature, false, nil); err != nil {
			return nil, err
		}
	}
	for _, feature := range input.ProtectedModules {
		if err := r.mount(feature, true, guard.wrap); err != nil {
			return nil, err
		}
	}
	return r.mux, nil
}

// router records which module owns each mux pattern.
type router struct {
	mux    *http.ServeMux
	owners map[string]string
}

func (r router) mount(feature module.Module, protected bool, wrap func(http.Handler) http.Handler) error {
	if feature == nil {
		if protected {
			return errors.New("protected module is nil")
		}
		return errors.New("public module is nil")
	}
	id := feature.ID()
	m, err := feature.Mount()
	if err != nil {
		return fmt.Errorf("mount module %q: %w", id, err)
	}
	if err := validatePrefix(m.Prefix); err != nil {
		return fmt.Errorf("mount module %q has invalid prefix %q: %w", id, m.Prefix, err)
	}
	if m.Handler == nil {
		return fmt.Errorf("mount module %q: handler is required", id)
	}
	underApp := strings.HasPrefix(m.Prefix, routepath.AppPrefix)
	if protected && !underApp {
		return fmt.Errorf("module %q must mount under %s, got %q", id, routepath.AppPrefix, m.Prefix)
	}
	if !protected && underApp {
		return fmt.Errorf("module %q has protected prefix %q in public group", id, m.Prefix)
	}

	handler := m.Handler
	if wrap != nil {
		handler = wrap(handler)
	}
	patterns := []string{m.Prefix}
	if protected {
		// The slashless form must hit the guard, not the public catch-all.
		patterns = append(patterns, strings.TrimSuffix(m.Prefix, "/"))
	}
	for _, pattern := range patterns {
		if owner, ok := r.owners[pattern]; ok {
			return fmt.Errorf("module %q duplicates prefix %q owned by module %q", id, pattern, owner)
		}
		r.owners[pattern] = id
		r.mux.Handle(pattern, handler)
	}
	return nil
}

func validatePrefix(prefix string) error {
	switch {
	case prefix == "":
		return errors.New("prefix is required")
	case strings.TrimSpace(prefix) != prefix:
		return errors.New("prefix must not include surrounding whitespace")
	case !strings.HasPrefix(prefix, "/"):
		return errors.New("prefix must begin with /")
	case !strings.HasSuffix(prefix, "/"):
		return errors.New("prefix must end with /")
	}
	return nil
}
