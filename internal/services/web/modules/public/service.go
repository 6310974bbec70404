package public

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mindpath/mindpath/internal/journalapi"
	"github.com/mindpath/mindpath/internal/platform/timeouts"
	apperrors "github.com/mindpath/mindpath/internal/services/web/platform/errors"
	"github.com/mindpath/mindpath/internal/services/web/platform/tokenclaims"
	"github.com/mindpath/mindpath/internal/services/web/storage"
)

const (
	keySignInRequired = "error.signin.required"
	keySignUpRequired = "error.signup.required"
	keyUnexpected     = "error.unexpected"
)

// AuthGateway creates accounts and issues bearer tokens.
type AuthGateway interface {
	SignUp(ctx context.Context, email, username, password string) (journalapi.User, error)
	SignIn(ctx context.Context, email, password string) (journalapi.SignInResult, error)
}

// SessionStarter persists and ends browser sessions.
type SessionStarter interface {
	Create(ctx context.Context, session storage.Session) error
	Delete(ctx context.Context, id string) error
}

var formValidator = validator.New()

type signInInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type signUpInput struct {
	Email    string `validate:"required"`
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type service struct {
	auth     AuthGateway
	sessions SessionStarter
	ttl      time.Duration
	now      func() time.Time
}

func newService(gateway AuthGateway, sessions SessionStarter, ttl time.Duration, now func() time.Time) service {
	if gateway == nil {
		gateway = unavailableAuthGateway{}
	}
	if sessions == nil {
		sessions = unavailableSessions{}
	}
	if ttl <= 0 {
		ttl = timeouts.SessionTTL
	}
	if now == nil {
		now = time.Now
	}
	return service{auth: gateway, sessions: sessions, ttl: ttl, now: now}
}

func (service) healthBody() string {
	return "ok"
}

// signIn exchanges credentials for a bearer token and starts a session
// holding it.
func (s service) signIn(ctx context.Context, input signInInput) (storage.Session, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := formValidator.Struct(signInInput{Email: input.Email, Password: strings.TrimSpace(input.Password)}); err != nil {
		return storage.Session{}, apperrors.EK(apperrors.KindInvalidInput, keySignInRequired, "email and password are required")
	}
	result, err := s.auth.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		return storage.Session{}, err
	}
	now := s.now()
	expiresAt := tokenclaims.SessionExpiry(result.Token, now, s.ttl)
	if !expiresAt.After(now) {
		return storage.Session{}, apperrors.E(apperrors.KindUnauthorized, journalapi.MessageSignInFailed)
	}
	session := storage.Session{
		ID:          storage.NewSessionID(),
		AccessToken: result.Token,
		Email:       firstNonEmpty(result.User.Email, input.Email),
		DisplayName: firstNonEmpty(result.User.Username, result.User.Email, input.Email),
		CreatedAt:   now,
		ExpiresAt:   expiresAt,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return storage.Session{}, apperrors.Error{Kind: apperrors.KindUnavailable, Key: keyUnexpected, Message: "start session", Cause: err}
	}
	return session, nil
}

// signUp creates an account. No session is started.
func (s service) signUp(ctx context.Context, input signUpInput) error {
	input.Email = strings.TrimSpace(input.Email)
	input.Username = strings.TrimSpace(input.Username)
	check := input
	check.Password = strings.TrimSpace(check.Password)
	if err := formValidator.Struct(check); err != nil {
		return apperrors.EK(apperrors.KindInvalidInput, keySignUpRequired, "email, username and password are required")
	}
	_, err := s.auth.SignUp(ctx, input.Email, input.Username, input.Password)
	return err
}

func (s service) endSession(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return ""
}
