package public

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/mindpath/mindpath/internal/services/web/platform/errors"
	flashnotice "github.com/mindpath/mindpath/internal/services/web/platform/flash"
	"github.com/mindpath/mindpath/internal/services/web/platform/httpx"
	"github.com/mindpath/mindpath/internal/services/web/platform/modulehandler"
	"github.com/mindpath/mindpath/internal/services/web/platform/pagerender"
	"github.com/mindpath/mindpath/internal/services/web/platform/sessioncookie"
	"github.com/mindpath/mindpath/internal/services/web/routepath"
	webtemplates "github.com/mindpath/mindpath/internal/services/web/templates"
	"go.uber.org/zap"
)

const (
	signInRedirectDelay = 1500 * time.Millisecond
	signUpRedirectDelay = 2 * time.Second
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, pagerender.ModulePage{
		Title:     webtemplates.T(loc, "title.landing"),
		MainClass: "main-landing",
		Fragment:  webtemplates.LandingPage(webtemplates.LandingView{Loc: loc, SignedIn: h.IsViewerSignedIn(r)}),
	})
}

func (h handlers) handleSignInPage(w http.ResponseWriter, r *http.Request) {
	if h.redirectAuthenticatedToApp(w, r) {
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	next, _ := routepath.LocalAppPath(r.URL.Query().Get(routepath.NextQueryKey))
	h.writeSignIn(w, r, webtemplates.SignInView{Loc: loc, Next: next}, http.StatusOK, nil)
}

func (h handlers) handleSignIn(w http.ResponseWriter, r *http.Request) {
	if h.redirectAuthenticatedToApp(w, r) {
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	if err := r.ParseForm(); err != nil {
		h.writeSignIn(w, r, webtemplates.SignInView{Loc: loc, Error: webtemplates.T(loc, keyUnexpected)}, http.StatusBadRequest, nil)
		return
	}
	next, _ := routepath.LocalAppPath(r.PostFormValue(routepath.NextQueryKey))
	view := webtemplates.SignInView{Loc: loc, Email: strings.TrimSpace(r.PostFormValue("email")), Next: next}

	session, err := h.service.signIn(r.Context(), signInInput{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		if apperrors.KindOf(err) != apperrors.KindInvalidInput || apperrors.LocalizationKey(err) == "" {
			h.Logger().Warn("sign in failed", zap.String("kind", string(apperrors.KindOf(err))), zap.Error(err))
		}
		view.Error = formErrorMessage(loc, err)
		h.writeSignIn(w, r, view, formErrorStatus(err), nil)
		return
	}

	sessioncookie.Write(w, r, session.ID, session.ExpiresAt, h.SchemePolicy())
	target := routepath.AppDashboard
	if next != "" {
		target = next
	}
	httpx.SetRefresh(w, signInRedirectDelay, target)
	view.Success = webtemplates.T(loc, "signin.success")
	h.writeSignIn(w, r, view, http.StatusOK, &webtemplates.Redirect{URL: target, Delay: signInRedirectDelay})
}

func (h handlers) handleSignUpPage(w http.ResponseWriter, r *http.Request) {
	if h.redirectAuthenticatedToApp(w, r) {
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	h.writeSignUp(w, r, webtemplates.SignUpView{Loc: loc}, http.StatusOK, nil)
}

func (h handlers) handleSignUp(w http.ResponseWriter, r *http.Request) {
	if h.redirectAuthenticatedToApp(w, r) {
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	if err := r.ParseForm(); err != nil {
		h.writeSignUp(w, r, webtemplates.SignUpView{Loc: loc, Error: webtemplates.T(loc, keyUnexpected)}, http.StatusBadRequest, nil)
		return
	}
	view := webtemplates.SignUpView{
		Loc:      loc,
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Username: strings.TrimSpace(r.PostFormValue("username")),
	}
	err := h.service.signUp(r.Context(), signUpInput{
		Email:    r.PostFormValue("email"),
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		if apperrors.KindOf(err) != apperrors.KindInvalidInput || apperrors.LocalizationKey(err) == "" {
			h.Logger().Warn("sign up failed", zap.String("kind", string(apperrors.KindOf(err))), zap.Error(err))
		}
		view.Error = formErrorMessage(loc, err)
		h.writeSignUp(w, r, view, formErrorStatus(err), nil)
		return
	}
	httpx.SetRefresh(w, signUpRedirectDelay, routepath.SignIn)
	view.Success = webtemplates.T(loc, "signup.success")
	h.writeSignUp(w, r, view, http.StatusOK, &webtemplates.Redirect{URL: routepath.SignIn, Delay: signUpRedirectDelay})
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	sessionID, hasSession := sessioncookie.Read(r)
	if hasSession && !h.SchemePolicy().HasSameOriginProof(r) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	sessioncookie.Clear(w, r, h.SchemePolicy())
	if hasSession {
		if err := h.service.endSession(r.Context(), sessionID); err != nil {
			h.Logger().Warn("end session", zap.String("session_id", sessionID), zap.Error(err))
		}
		h.WriteFlash(w, r, flashnotice.NoticeSuccess("auth.signed_out"))
	}
	h.Redirect(w, r, routepath.Root)
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, h.service.healthBody())
}

func (h handlers) handleLegacyDashboard(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.AppDashboard, http.StatusFound)
}

// redirectAuthenticatedToApp sends signed-in visitors to the app, honoring
// a local next path.
func (h handlers) redirectAuthenticatedToApp(w http.ResponseWriter, r *http.Request) bool {
	if !h.IsViewerSignedIn(r) {
		return false
	}
	target := routepath.AppDashboard
	if next, ok := routepath.LocalAppPath(r.FormValue(routepath.NextQueryKey)); ok {
		target = next
	}
	h.Redirect(w, r, target)
	return true
}

func (h handlers) writeSignIn(w http.ResponseWriter, r *http.Request, view webtemplates.SignInView, status int, redirect *webtemplates.Redirect) {
	h.WritePage(w, r, pagerender.ModulePage{
		Title:      webtemplates.T(view.Loc, "title.signin"),
		StatusCode: status,
		MainClass:  "main-auth",
		Redirect:   redirect,
		Fragment:   webtemplates.SignInForm(view),
	})
}

func (h handlers) writeSignUp(w http.ResponseWriter, r *http.Request, view webtemplates.SignUpView, status int, redirect *webtemplates.Redirect) {
	h.WritePage(w, r, pagerender.ModulePage{
		Title:      webtemplates.T(view.Loc, "title.signup"),
		StatusCode: status,
		MainClass:  "main-auth",
		Redirect:   redirect,
		Fragment:   webtemplates.SignUpForm(view),
	})
}

// formErrorMessage prefers a localized key, then the service message.
func formErrorMessage(loc webtemplates.Localizer, err error) string {
	if key := apperrors.LocalizationKey(err); key != "" {
		return webtemplates.T(loc, key)
	}
	var appErr apperrors.Error
	if errors.As(err, &appErr) && strings.TrimSpace(appErr.Message) != "" {
		return appErr.Message
	}
	return webtemplates.T(loc, keyUnexpected)
}

func formErrorStatus(err error) int {
	if apperrors.KindOf(err) == apperrors.KindUnavailable {
		return http.StatusServiceUnavailable
	}
	return http.StatusBadRequest
}
