package public

import (
	"net/http"

	"github.com/mindpath/mindpath/internal/services/web/platform/httpx"
	"github.com/mindpath/mindpath/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleLanding)
	mux.HandleFunc(http.MethodGet+" "+routepath.SignIn, h.handleSignInPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.SignIn, h.handleSignIn)
	mux.HandleFunc(http.MethodGet+" "+routepath.SignUp, h.handleSignUpPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.SignUp, h.handleSignUp)
	mux.HandleFunc(http.MethodPost+" "+routepath.Logout, h.handleLogout)
	mux.HandleFunc(http.MethodGet+" "+routepath.Logout, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(http.MethodGet+" "+routepath.LegacyDashboard, h.handleLegacyDashboard)
	mux.HandleFunc("/", h.WriteNotFound)
}
