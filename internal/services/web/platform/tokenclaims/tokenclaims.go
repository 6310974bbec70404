// Package tokenclaims reads unverified claims from bearer tokens issued by
// the journal service. The web service never trusts these claims for
// authorization; they only bound how long a session is kept.
package tokenclaims

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresAt returns the exp claim of a JWT. The bool is false when token is
// not a JWT or carries no expiry.
func ExpiresAt(token string) (time.Time, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// SessionExpiry bounds a session by the token expiry and the configured TTL,
// whichever comes first.
func SessionExpiry(token string, now time.Time, ttl time.Duration) time.Time {
	expiresAt := now.Add(ttl)
	if exp, ok := ExpiresAt(token); ok && exp.Before(expiresAt) {
		return exp
	}
	return expiresAt
}
