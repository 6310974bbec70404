package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	module "github.com/mindpath/mindpath/internal/services/web/module"
	"github.com/mindpath/mindpath/internal/services/web/platform/sessioncookie"
	"github.com/mindpath/mindpath/internal/services/web/storage"
	"github.com/mindpath/mindpath/internal/services/web/storage/memory"
)

// countingStore counts Get calls on top of a memory store.
type countingStore struct {
	*memory.Store
	gets int
}

func (s *countingStore) Get(ctx context.Context, id string) (storage.Session, error) {
	s.gets++
	return s.Store.Get(ctx, id)
}

func seededStore(t *testing.T, session storage.Session) *countingStore {
	t.Helper()
	store := &countingStore{Store: memory.New()}
	if err := store.Create(context.Background(), session); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return store
}

func requestWithSession(id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/app/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: id})
	return req
}

func TestPrincipalResolverCachesSessionPerRequest(t *testing.T) {
	t.Parallel()

	store := seededStore(t, storage.Session{
		ID:          "s-1",
		AccessToken: "tok",
		Email:       "ada@example.com",
		ExpiresAt:   time.Now().Add(time.Hour),
	})
	resolver := newPrincipalResolver(store, nil)

	var viewer module.Viewer
	var signedIn bool
	h := withRequestPrincipalState()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		signedIn = resolver.authenticated(r)
		viewer = resolver.resolveViewer(r)
		_, _ = resolver.resolveSession(r)
	}))
	h.ServeHTTP(httptest.NewRecorder(), requestWithSession("s-1"))

	if !signedIn {
		t.Fatalf("authenticated = false, want true")
	}
	if viewer.DisplayName != "ada@example.com" || !viewer.SignedIn {
		t.Fatalf("viewer = %+v, want signed-in viewer named by email", viewer)
	}
	if store.gets != 1 {
		t.Fatalf("store gets = %d, want 1", store.gets)
	}
}

func TestPrincipalResolverRejectsMissingAndExpiredSessions(t *testing.T) {
	t.Parallel()

	store := seededStore(t, storage.Session{
		ID:          "old",
		AccessToken: "tok",
		ExpiresAt:   time.Now().Add(-time.Minute),
	})
	resolver := newPrincipalResolver(store, nil)

	tests := []struct {
		name string
		req  *http.Request
	}{
		{name: "no cookie", req: httptest.NewRequest(http.MethodGet, "/", nil)},
		{name: "unknown id", req: requestWithSession("nope")},
		{name: "expired", req: requestWithSession("old")},
	}
	for _, tc := range tests {
		if resolver.authenticated(tc.req) {
			t.Fatalf("%s: authenticated = true, want false", tc.name)
		}
		if got := resolver.resolveViewer(tc.req); got != (module.Viewer{}) {
			t.Fatalf("%s: viewer = %+v, want zero", tc.name, got)
		}
	}
}
