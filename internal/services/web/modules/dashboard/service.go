package dashboard

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/mindpath/mindpath/internal/journalapi"
	apperrors "github.com/mindpath/mindpath/internal/services/web/platform/errors"
	"github.com/mindpath/mindpath/internal/services/web/storage"
	"go.uber.org/zap"
)

const (
	weeklyEntryLimit      = 7
	provisionalDateLayout = "1/2/2006"
)

// JournalGateway reads and records journal entries for one bearer token.
type JournalGateway interface {
	ListEntries(ctx context.Context, token string) ([]journalapi.Entry, error)
	Analyze(ctx context.Context, token string, content string) (journalapi.Analysis, error)
	SaveEntry(ctx context.Context, token string, draft journalapi.EntryDraft) (journalapi.Entry, error)
	AnalyzeWeek(ctx context.Context, token string, entries []journalapi.Entry) ([]journalapi.EmotionPoint, error)
}

// SessionWriter persists dashboard state on the signed-in session.
type SessionWriter interface {
	Update(ctx context.Context, session storage.Session) error
	Delete(ctx context.Context, id string) error
}

// dashboardData is everything the dashboard page renders.
type dashboardData struct {
	DisplayName        string
	Entries            []journalapi.Entry
	EntriesUnavailable bool
	Analysis           *journalapi.Analysis
	Weekly             []journalapi.EmotionPoint
}

type service struct {
	journal  JournalGateway
	sessions SessionWriter
	logger   *zap.Logger
	now      func() time.Time
}

type discardSessions struct{}

func (discardSessions) Update(context.Context, storage.Session) error { return nil }
func (discardSessions) Delete(context.Context, string) error          { return nil }

func newService(gateway JournalGateway, sessions SessionWriter, logger *zap.Logger, now func() time.Time) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	if sessions == nil {
		sessions = discardSessions{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return service{journal: gateway, sessions: sessions, logger: logger, now: now}
}

func (s service) loadDashboard(ctx context.Context, session storage.Session) (dashboardData, error) {
	entries, unavailable, err := s.listEntries(ctx, &session)
	if err != nil {
		return dashboardData{}, err
	}
	return dashboardData{
		DisplayName:        session.DisplayName,
		Entries:            entries,
		EntriesUnavailable: unavailable,
		Analysis:           session.LastAnalysis,
		Weekly:             session.Weekly,
	}, nil
}

// listEntries fetches the saved entries. A successful fetch replaces any
// provisional entries; a failed one falls back to them unless the token
// was rejected.
func (s service) listEntries(ctx context.Context, session *storage.Session) ([]journalapi.Entry, bool, error) {
	entries, err := s.journal.ListEntries(ctx, session.AccessToken)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindUnauthorized {
			return nil, false, err
		}
		s.logger.Warn("list journal entries", zap.String("session_id", session.ID), zap.Error(err))
		return session.Provisional, true, nil
	}
	if len(session.Provisional) > 0 {
		session.Provisional = nil
		s.persist(ctx, *session)
	}
	if entries == nil {
		entries = []journalapi.Entry{}
	}
	return entries, false, nil
}

// saveEntry analyzes content, records the analysis on the session, then
// saves the entry. The analysis is kept even when the save fails.
func (s service) saveEntry(ctx context.Context, session storage.Session, content string) error {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	analysis, err := s.journal.Analyze(ctx, session.AccessToken, content)
	if err != nil {
		return err
	}
	session.LastAnalysis = &analysis

	_, saveErr := s.journal.SaveEntry(ctx, session.AccessToken, journalapi.EntryDraft{
		Content:      content,
		Emotion:      analysis.Emotion,
		EmotionScore: analysis.EmotionScore,
		Advice:       analysis.Advice,
	})
	if saveErr == nil {
		now := s.now()
		provisional := journalapi.Entry{
			ID:           journalapi.ID(strconv.FormatInt(now.UnixMilli(), 10)),
			Date:         now.Format(provisionalDateLayout),
			Content:      content,
			Emotion:      analysis.Emotion,
			EmotionScore: analysis.EmotionScore,
			Advice:       analysis.Advice,
		}
		session.Provisional = append([]journalapi.Entry{provisional}, session.Provisional...)
	}
	s.persist(ctx, session)
	return saveErr
}

// analyzeWeek runs weekly analysis over the seven most recent entries in
// chronological order. It does nothing when there are no entries.
func (s service) analyzeWeek(ctx context.Context, session storage.Session) error {
	entries, _, err := s.listEntries(ctx, &session)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	points, err := s.journal.AnalyzeWeek(ctx, session.AccessToken, chronological(entries, weeklyEntryLimit))
	if err != nil {
		return err
	}
	if points == nil {
		points = []journalapi.EmotionPoint{}
	}
	session.Weekly = points
	s.persist(ctx, session)
	return nil
}

func (s service) endSession(ctx context.Context, sessionID string) {
	if strings.TrimSpace(sessionID) == "" {
		return
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Warn("delete rejected session", zap.String("session_id", sessionID), zap.Error(err))
	}
}

func (s service) persist(ctx context.Context, session storage.Session) {
	if err := s.sessions.Update(ctx, session); err != nil {
		s.logger.Warn("persist dashboard state", zap.String("session_id", session.ID), zap.Error(err))
	}
}

// chronological returns the first limit entries (newest first) reversed
// into oldest-first order.
func chronological(entries []journalapi.Entry, limit int) []journalapi.Entry {
	if len(entries) > limit {
		entries = entries[:limit]
	}
	out := make([]journalapi.Entry, len(entries))
	for i, entry := range entries {
		out[len(entries)-1-i] = entry
	}
	return out
}
