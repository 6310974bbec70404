package app

import (
	"net/http"

	"github.com/mindpath/mindpath/internal/services/web/platform/httpx"
	"github.com/mindpath/mindpath/internal/services/web/platform/requestmeta"
	"github.com/mindpath/mindpath/internal/services/web/platform/sessioncookie"
	"github.com/mindpath/mindpath/internal/services/web/routepath"
)

// sessionGuard admits dashboard requests that carry a live session. Mutations
// sent with the session cookie also need same-origin proof.
type sessionGuard struct {
	authenticated func(*http.Request) bool
	policy        requestmeta.SchemePolicy
}

func (g sessionGuard) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.authenticated(r) {
			httpx.WriteRedirect(w, r, signInPath(r))
			return
		}
		if isMutation(r.Method) && hasSessionCookie(r) && !g.policy.HasSameOriginProof(r) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// signInPath returns the sign-in route. Only reads carry the requested page
// back as next.
func signInPath(r *http.Request) string {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return routepath.SignIn
	}
	return routepath.SignInWithNext(r.URL.RequestURI())
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func hasSessionCookie(r *http.Request) bool {
	_, ok := sessioncookie.Read(r)
	return ok
}
