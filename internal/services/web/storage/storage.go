package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mindpath/mindpath/internal/journalapi"
)

// ErrNotFound reports a missing or expired session.
var ErrNotFound = errors.New("session not found")

// Session is one signed-in browser session.
type Session struct {
	ID          string    `json:"id"`
	AccessToken string    `json:"access_token"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`

	// LastAnalysis is the result for the most recently submitted entry.
	LastAnalysis *journalapi.Analysis `json:"last_analysis,omitempty"`
	// Weekly holds the latest weekly analysis points.
	Weekly []journalapi.EmotionPoint `json:"weekly,omitempty"`
	// Provisional holds entries saved since the last successful list fetch,
	// newest first.
	Provisional []journalapi.Entry `json:"provisional,omitempty"`
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// State returns the dashboard view state of s.
func (s Session) State() State {
	return State{LastAnalysis: s.LastAnalysis, Weekly: s.Weekly, Provisional: s.Provisional}
}

// WithState returns s carrying state.
func (s Session) WithState(state State) Session {
	s.LastAnalysis = state.LastAnalysis
	s.Weekly = state.Weekly
	s.Provisional = state.Provisional
	return s
}

// State is the dashboard view state persisted alongside a session.
type State struct {
	LastAnalysis *journalapi.Analysis     `json:"last_analysis,omitempty"`
	Weekly       []journalapi.EmotionPoint `json:"weekly,omitempty"`
	Provisional  []journalapi.Entry        `json:"provisional,omitempty"`
}

// NewSessionID returns a fresh opaque session id.
func NewSessionID() string {
	return uuid.NewString()
}

// SessionStore persists sessions. Get returns ErrNotFound for missing and
// expired sessions alike.
type SessionStore interface {
	Create(ctx context.Context, session Session) error
	Get(ctx context.Context, id string) (Session, error)
	Update(ctx context.Context, session Session) error
	Delete(ctx context.Context, id string) error
	// DeleteExpired removes sessions expired at now and returns how many.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
	Close() error
}
