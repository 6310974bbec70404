package public

import (
	"context"
	"net/http"
	"sync"

	"github.com/mindpath/mindpath/internal/journalapi"
	module "github.com/mindpath/mindpath/internal/services/web/module"
	"github.com/mindpath/mindpath/internal/services/web/storage"
)

// fakeAuthGateway implements AuthGateway with configurable results and call
// tracking.
type fakeAuthGateway struct {
	mu sync.Mutex

	user      journalapi.User
	signUpErr error
	result    journalapi.SignInResult
	signInErr error

	signUpCalls  int
	signInCalls  int
	lastEmail    string
	lastUsername string
	lastPassword string
}

func (f *fakeAuthGateway) SignUp(_ context.Context, email, username, password string) (journalapi.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signUpCalls++
	f.lastEmail, f.lastUsername, f.lastPassword = email, username, password
	if f.signUpErr != nil {
		return journalapi.User{}, f.signUpErr
	}
	return f.user, nil
}

func (f *fakeAuthGateway) SignIn(_ context.Context, email, password string) (journalapi.SignInResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signInCalls++
	f.lastEmail, f.lastPassword = email, password
	if f.signInErr != nil {
		return journalapi.SignInResult{}, f.signInErr
	}
	return f.result, nil
}

// fakeSessionStarter records created and deleted sessions.
type fakeSessionStarter struct {
	mu        sync.Mutex
	created   []storage.Session
	deleted   []string
	createErr error
}

func (f *fakeSessionStarter) Create(_ context.Context, session storage.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, session)
	return nil
}

func (f *fakeSessionStarter) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeAuthClient implements AuthClient for gateway tests.
type fakeAuthClient struct {
	err        error
	lastSignUp journalapi.SignUpRequest
	lastSignIn journalapi.SignInRequest
}

func (f *fakeAuthClient) SignUp(_ context.Context, req journalapi.SignUpRequest) (journalapi.User, error) {
	f.lastSignUp = req
	if f.err != nil {
		return journalapi.User{}, f.err
	}
	return journalapi.User{ID: "7", Email: req.Email, Username: req.Username}, nil
}

func (f *fakeAuthClient) SignIn(_ context.Context, req journalapi.SignInRequest) (journalapi.SignInResult, error) {
	f.lastSignIn = req
	if f.err != nil {
		return journalapi.SignInResult{}, f.err
	}
	return journalapi.SignInResult{Token: "tok", User: journalapi.User{Email: req.Email}}, nil
}

func signedInDependencies() module.Dependencies {
	return module.Dependencies{
		ResolveViewer: func(*http.Request) module.Viewer {
			return module.Viewer{SignedIn: true, DisplayName: "ada"}
		},
	}
}
