package dashboard

import (
	"net/http"

	apperrors "github.com/mindpath/mindpath/internal/services/web/platform/errors"
	flashnotice "github.com/mindpath/mindpath/internal/services/web/platform/flash"
	"github.com/mindpath/mindpath/internal/services/web/platform/modulehandler"
	"github.com/mindpath/mindpath/internal/services/web/platform/pagerender"
	"github.com/mindpath/mindpath/internal/services/web/platform/sessioncookie"
	"github.com/mindpath/mindpath/internal/services/web/routepath"
	"github.com/mindpath/mindpath/internal/services/web/storage"
	webtemplates "github.com/mindpath/mindpath/internal/services/web/templates"
	"go.uber.org/zap"
)

const (
	noticeSaveFailed     = "dashboard.error.save_failed"
	noticeWeeklyFailed   = "dashboard.error.weekly_failed"
	noticeSessionExpired = "error.session_expired"
)

type handlers struct {
	modulehandler.Base
	service        service
	resolveSession ResolveSession
}

func newHandlers(s service, resolveSession ResolveSession, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s, resolveSession: resolveSession}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	data, err := h.service.loadDashboard(r.Context(), session)
	if err != nil {
		if h.expireRejectedSession(w, r, session, err) {
			return
		}
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, pagerender.ModulePage{
		Title:     webtemplates.T(loc, "title.dashboard"),
		MainClass: "main-dashboard",
		Fragment:  webtemplates.DashboardPage(buildDashboardView(loc, data)),
	})
}

func (h handlers) handleSaveEntry(w http.ResponseWriter, r *http.Request) {
	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.WriteFlash(w, r, flashnotice.NoticeError(noticeSaveFailed))
		h.Redirect(w, r, routepath.AppDashboard)
		return
	}
	if err := h.service.saveEntry(r.Context(), session, r.PostFormValue("content")); err != nil {
		if h.expireRejectedSession(w, r, session, err) {
			return
		}
		h.Logger().Warn("save journal entry", zap.String("session_id", session.ID), zap.Error(err))
		h.WriteFlash(w, r, flashnotice.NoticeError(noticeSaveFailed))
	}
	h.Redirect(w, r, routepath.AppDashboard)
}

func (h handlers) handleAnalyzeWeek(w http.ResponseWriter, r *http.Request) {
	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	if err := h.service.analyzeWeek(r.Context(), session); err != nil {
		if h.expireRejectedSession(w, r, session, err) {
			return
		}
		h.Logger().Warn("analyze weekly emotions", zap.String("session_id", session.ID), zap.Error(err))
		h.WriteFlash(w, r, flashnotice.NoticeError(noticeWeeklyFailed))
	}
	h.Redirect(w, r, routepath.AppDashboard)
}

func (h handlers) requireSession(w http.ResponseWriter, r *http.Request) (storage.Session, bool) {
	if h.resolveSession != nil {
		if session, ok := h.resolveSession(r); ok {
			return session, true
		}
	}
	h.Redirect(w, r, routepath.SignIn)
	return storage.Session{}, false
}

// expireRejectedSession ends the session when the journal service rejected
// its token and sends the browser to sign in.
func (h handlers) expireRejectedSession(w http.ResponseWriter, r *http.Request, session storage.Session, err error) bool {
	if apperrors.KindOf(err) != apperrors.KindUnauthorized {
		return false
	}
	h.Logger().Info("journal service rejected session token", zap.String("session_id", session.ID))
	h.service.endSession(r.Context(), session.ID)
	sessioncookie.Clear(w, r, h.SchemePolicy())
	h.WriteFlash(w, r, flashnotice.NoticeError(noticeSessionExpired))
	h.Redirect(w, r, routepath.SignIn)
	return true
}
