// Package sessioncookie centralizes the web session cookie.
//
// The cookie carries only the opaque server-side session id; the bearer token
// issued by the journal service never reaches the browser.
package sessioncookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/mindpath/mindpath/internal/services/web/platform/requestmeta"
)

// Name is the canonical web session cookie name.
const Name = "mindpath_session"

// Read returns the trimmed session cookie value when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write sets the session cookie. A non-zero expiresAt bounds the cookie lifetime.
func Write(w http.ResponseWriter, r *http.Request, sessionID string, expiresAt time.Time, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	cookie := newCookie(r, policy)
	cookie.Value = strings.TrimSpace(sessionID)
	if !expiresAt.IsZero() {
		cookie.Expires = expiresAt.UTC()
		if maxAge := int(time.Until(expiresAt).Seconds()); maxAge > 0 {
			cookie.MaxAge = maxAge
		}
	}
	http.SetCookie(w, cookie)
}

// Clear expires the session cookie.
func Clear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	cookie := newCookie(r, policy)
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
}

func newCookie(r *http.Request, policy requestmeta.SchemePolicy) *http.Cookie {
	return &http.Cookie{
		Name:     Name,
		Path:     "/",
		HttpOnly: true,
		Secure:   policy.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	}
}
