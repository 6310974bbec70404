package web

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	module "github.com/mindpath/mindpath/internal/services/web/module"
	"github.com/mindpath/mindpath/internal/services/web/platform/sessioncookie"
	"github.com/mindpath/mindpath/internal/services/web/storage"
	"go.uber.org/zap"
)

type requestPrincipalState struct {
	sessionOnce sync.Once
	session     storage.Session
	found       bool
}

type requestPrincipalStateKey struct{}

func withRequestPrincipalState() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r == nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), requestPrincipalStateKey{}, &requestPrincipalState{})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func requestPrincipalStateFromRequest(r *http.Request) *requestPrincipalState {
	if r == nil {
		return nil
	}
	state, _ := r.Context().Value(requestPrincipalStateKey{}).(*requestPrincipalState)
	return state
}

// principalResolver turns the session cookie into session and viewer state,
// looking the session up at most once per request.
type principalResolver struct {
	sessions storage.SessionStore
	logger   *zap.Logger
}

func newPrincipalResolver(sessions storage.SessionStore, logger *zap.Logger) principalResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return principalResolver{sessions: sessions, logger: logger}
}

func (p principalResolver) resolveSessionUncached(r *http.Request) (storage.Session, bool) {
	if r == nil || p.sessions == nil {
		return storage.Session{}, false
	}
	sessionID, ok := sessioncookie.Read(r)
	if !ok {
		return storage.Session{}, false
	}
	session, err := p.sessions.Get(r.Context(), sessionID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			p.logger.Warn("load web session", zap.Error(err))
		}
		return storage.Session{}, false
	}
	if strings.TrimSpace(session.AccessToken) == "" {
		return storage.Session{}, false
	}
	return session, true
}

func (p principalResolver) resolveSession(r *http.Request) (storage.Session, bool) {
	if state := requestPrincipalStateFromRequest(r); state != nil {
		state.sessionOnce.Do(func() {
			state.session, state.found = p.resolveSessionUncached(r)
		})
		return state.session, state.found
	}
	return p.resolveSessionUncached(r)
}

func (p principalResolver) authenticated(r *http.Request) bool {
	_, ok := p.resolveSession(r)
	return ok
}

func (p principalResolver) resolveSignedIn(r *http.Request) bool {
	return p.authenticated(r)
}

func (p principalResolver) resolveViewer(r *http.Request) module.Viewer {
	session, ok := p.resolveSession(r)
	if !ok {
		return module.Viewer{}
	}
	name := strings.TrimSpace(session.DisplayName)
	if name == "" {
		name = session.Email
	}
	return module.Viewer{SignedIn: true, DisplayName: name, Email: session.Email}
}
