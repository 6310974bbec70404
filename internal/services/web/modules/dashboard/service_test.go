package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mindpath/mindpath/internal/journalapi"
	apperrors "github.com/mindpath/mindpath/internal/services/web/platform/errors"
	"github.com/mindpath/mindpath/internal/services/web/storage"
)

var fixedNow = time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func testSession() storage.Session {
	return storage.Session{ID: "sess-1", AccessToken: "tok-1", DisplayName: "ada"}
}

func TestLoadDashboardUsesFetchedEntriesAndClearsProvisional(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{entries: []journalapi.Entry{{ID: "9", Content: "saved"}}}
	sessions := &fakeSessions{}
	svc := newService(gateway, sessions, nil, fixedClock)
	session := testSession()
	session.Provisional = []journalapi.Entry{{ID: "1", Content: "pending"}}
	session.LastAnalysis = &journalapi.Analysis{Emotion: "happy"}

	data, err := svc.loadDashboard(context.Background(), session)
	if err != nil {
		t.Fatalf("loadDashboard() error = %v", err)
	}
	if len(data.Entries) != 1 || data.Entries[0].ID != "9" {
		t.Fatalf("Entries = %+v, want fetched entry", data.Entries)
	}
	if data.EntriesUnavailable {
		t.Fatalf("EntriesUnavailable = true, want false")
	}
	if data.Analysis == nil || data.Analysis.Emotion != "happy" {
		t.Fatalf("Analysis = %+v, want session analysis", data.Analysis)
	}
	if gateway.tokens[0] != "tok-1" {
		t.Fatalf("token = %q, want %q", gateway.tokens[0], "tok-1")
	}
	stored, ok := sessions.last()
	if !ok {
		t.Fatalf("expected session update clearing provisional entries")
	}
	if len(stored.Provisional) != 0 {
		t.Fatalf("Provisional = %+v, want empty", stored.Provisional)
	}
}

func TestLoadDashboardFallsBackToProvisionalEntries(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{listErr: apperrors.E(apperrors.KindUnavailable, "down")}
	sessions := &fakeSessions{}
	svc := newService(gateway, sessions, nil, fixedClock)
	session := testSession()
	session.Provisional = []journalapi.Entry{{ID: "1", Content: "pending"}}

	data, err := svc.loadDashboard(context.Background(), session)
	if err != nil {
		t.Fatalf("loadDashboard() error = %v", err)
	}
	if !data.EntriesUnavailable {
		t.Fatalf("EntriesUnavailable = false, want true")
	}
	if len(data.Entries) != 1 || data.Entries[0].Content != "pending" {
		t.Fatalf("Entries = %+v, want provisional entry", data.Entries)
	}
	if _, ok := sessions.last(); ok {
		t.Fatalf("expected no session update on failed fetch")
	}
}

func TestLoadDashboardReturnsUnauthorized(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeGateway{listErr: apperrors.E(apperrors.KindUnauthorized, "expired")}, nil, nil, fixedClock)
	_, err := svc.loadDashboard(context.Background(), testSession())
	if got := apperrors.KindOf(err); got != apperrors.KindUnauthorized {
		t.Fatalf("KindOf(err) = %q, want %q", got, apperrors.KindUnauthorized)
	}
}

func TestLoadDashboardNilEntriesBecomeEmpty(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeGateway{}, nil, nil, fixedClock)
	data, err := svc.loadDashboard(context.Background(), testSession())
	if err != nil {
		t.Fatalf("loadDashboard() error = %v", err)
	}
	if data.Entries == nil || len(data.Entries) != 0 {
		t.Fatalf("Entries = %#v, want empty slice", data.Entries)
	}
}

func TestSaveEntrySkipsBlankContent(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	sessions := &fakeSessions{}
	svc := newService(gateway, sessions, nil, fixedClock)
	if err := svc.saveEntry(context.Background(), testSession(), "  \n\t "); err != nil {
		t.Fatalf("saveEntry() error = %v", err)
	}
	if gateway.analyzeCalls != 0 || gateway.saveCalls != 0 {
		t.Fatalf("calls analyze=%d save=%d, want none", gateway.analyzeCalls, gateway.saveCalls)
	}
	if _, ok := sessions.last(); ok {
		t.Fatalf("expected no session update")
	}
}

func TestSaveEntryAnalyzesSavesAndAddsProvisionalEntry(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{analysis: journalapi.Analysis{Emotion: "hopeful", EmotionScore: 72, Advice: "Keep going."}}
	sessions := &fakeSessions{}
	svc := newService(gateway, sessions, nil, fixedClock)
	session := testSession()
	session.Provisional = []journalapi.Entry{{ID: "older"}}

	if err := svc.saveEntry(context.Background(), session, "Today went well."); err != nil {
		t.Fatalf("saveEntry() error = %v", err)
	}
	if gateway.lastContent != "Today went well." {
		t.Fatalf("analyzed content = %q, want submitted text", gateway.lastContent)
	}
	wantDraft := journalapi.EntryDraft{Content: "Today went well.", Emotion: "hopeful", EmotionScore: 72, Advice: "Keep going."}
	if gateway.lastDraft != wantDraft {
		t.Fatalf("draft = %+v, want %+v", gateway.lastDraft, wantDraft)
	}
	stored, ok := sessions.last()
	if !ok {
		t.Fatalf("expected session update")
	}
	if stored.LastAnalysis == nil || stored.LastAnalysis.Emotion != "hopeful" {
		t.Fatalf("LastAnalysis = %+v, want hopeful", stored.LastAnalysis)
	}
	if len(stored.Provisional) != 2 {
		t.Fatalf("len(Provisional) = %d, want 2", len(stored.Provisional))
	}
	first := stored.Provisional[0]
	if want := journalapi.ID("1772616600000"); first.ID != want {
		t.Fatalf("provisional ID = %q, want %q", first.ID, want)
	}
	if first.Date != "3/4/2026" {
		t.Fatalf("provisional Date = %q, want %q", first.Date, "3/4/2026")
	}
	if first.EmotionScore != 72 || first.Content != "Today went well." {
		t.Fatalf("provisional entry = %+v", first)
	}
	if stored.Provisional[1].ID != "older" {
		t.Fatalf("older provisional entry moved: %+v", stored.Provisional)
	}
}

func TestSaveEntryKeepsAnalysisWhenSaveFails(t *testing.T) {
	t.Parallel()

	saveErr := apperrors.E(apperrors.KindInvalidInput, "Failed to save journal")
	gateway := &fakeGateway{analysis: journalapi.Analysis{Emotion: "sad"}, saveErr: saveErr}
	sessions := &fakeSessions{}
	svc := newService(gateway, sessions, nil, fixedClock)

	err := svc.saveEntry(context.Background(), testSession(), "rough day")
	if !errors.Is(err, saveErr) {
		t.Fatalf("saveEntry() error = %v, want %v", err, saveErr)
	}
	stored, ok := sessions.last()
	if !ok {
		t.Fatalf("expected session update")
	}
	if stored.LastAnalysis == nil || stored.LastAnalysis.Emotion != "sad" {
		t.Fatalf("LastAnalysis = %+v, want sad", stored.LastAnalysis)
	}
	if len(stored.Provisional) != 0 {
		t.Fatalf("Provisional = %+v, want empty after failed save", stored.Provisional)
	}
}

func TestSaveEntryStopsWhenAnalyzeFails(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{analyzeErr: apperrors.E(apperrors.KindUnavailable, "down")}
	sessions := &fakeSessions{}
	svc := newService(gateway, sessions, nil, fixedClock)

	if err := svc.saveEntry(context.Background(), testSession(), "text"); err == nil {
		t.Fatalf("saveEntry() error = nil, want error")
	}
	if gateway.saveCalls != 0 {
		t.Fatalf("saveCalls = %d, want 0", gateway.saveCalls)
	}
	if _, ok := sessions.last(); ok {
		t.Fatalf("expected no session update")
	}
}

func TestSaveEntryIgnoresSessionPersistFailure(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{analysis: journalapi.Analysis{Emotion: "calm"}}
	svc := newService(gateway, &fakeSessions{updateErr: errors.New("disk full")}, nil, fixedClock)
	if err := svc.saveEntry(context.Background(), testSession(), "text"); err != nil {
		t.Fatalf("saveEntry() error = %v, want nil", err)
	}
}

func TestAnalyzeWeekUsesSevenMostRecentInChronologicalOrder(t *testing.T) {
	t.Parallel()

	var entries []journalapi.Entry
	for i := 10; i >= 1; i-- {
		entries = append(entries, journalapi.Entry{ID: journalapi.ID(string(rune('a' + i - 1)))})
	}
	points := []journalapi.EmotionPoint{{Date: "Day 1", Emotion: "calm", Score: 60}}
	gateway := &fakeGateway{entries: entries, points: points}
	sessions := &fakeSessions{}
	svc := newService(gateway, sessions, nil, fixedClock)

	if err := svc.analyzeWeek(context.Background(), testSession()); err != nil {
		t.Fatalf("analyzeWeek() error = %v", err)
	}
	if len(gateway.lastWeekly) != 7 {
		t.Fatalf("len(weekly entries) = %d, want 7", len(gateway.lastWeekly))
	}
	if gateway.lastWeekly[0].ID != "d" || gateway.lastWeekly[6].ID != "j" {
		t.Fatalf("weekly entries = %+v, want oldest-first d..j", gateway.lastWeekly)
	}
	stored, ok := sessions.last()
	if !ok {
		t.Fatalf("expected session update")
	}
	if len(stored.Weekly) != 1 || stored.Weekly[0].Score != 60 {
		t.Fatalf("Weekly = %+v, want analysis points", stored.Weekly)
	}
}

func TestAnalyzeWeekSkipsWhenNoEntries(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	svc := newService(gateway, &fakeSessions{}, nil, fixedClock)
	if err := svc.analyzeWeek(context.Background(), testSession()); err != nil {
		t.Fatalf("analyzeWeek() error = %v", err)
	}
	if gateway.weeklyCalls != 0 {
		t.Fatalf("weeklyCalls = %d, want 0", gateway.weeklyCalls)
	}
}

func TestAnalyzeWeekUsesProvisionalEntriesWhenListFails(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{listErr: apperrors.E(apperrors.KindUnavailable, "down")}
	svc := newService(gateway, &fakeSessions{}, nil, fixedClock)
	session := testSession()
	session.Provisional = []journalapi.Entry{{ID: "p2"}, {ID: "p1"}}

	if err := svc.analyzeWeek(context.Background(), session); err != nil {
		t.Fatalf("analyzeWeek() error = %v", err)
	}
	if len(gateway.lastWeekly) != 2 || gateway.lastWeekly[0].ID != "p1" {
		t.Fatalf("weekly entries = %+v, want provisional oldest-first", gateway.lastWeekly)
	}
}

func TestAnalyzeWeekReturnsGatewayError(t *testing.T) {
	t.Parallel()

	weeklyErr := apperrors.E(apperrors.KindUnknown, "boom")
	gateway := &fakeGateway{entries: []journalapi.Entry{{ID: "1"}}, weeklyErr: weeklyErr}
	sessions := &fakeSessions{}
	svc := newService(gateway, sessions, nil, fixedClock)
	if err := svc.analyzeWeek(context.Background(), testSession()); !errors.Is(err, weeklyErr) {
		t.Fatalf("analyzeWeek() error = %v, want %v", err, weeklyErr)
	}
	if _, ok := sessions.last(); ok {
		t.Fatalf("expected no session update")
	}
}

func TestEndSessionDeletesSession(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{}
	svc := newService(nil, sessions, nil, nil)
	svc.endSession(context.Background(), "sess-1")
	svc.endSession(context.Background(), " ")
	if len(sessions.deleted) != 1 || sessions.deleted[0] != "sess-1" {
		t.Fatalf("deleted = %v, want [sess-1]", sessions.deleted)
	}
}

func TestNewServiceDefaultsToUnavailableGateway(t *testing.T) {
	t.Parallel()

	svc := newService(nil, nil, nil, nil)
	_, err := svc.loadDashboard(context.Background(), testSession())
	if err != nil {
		t.Fatalf("loadDashboard() error = %v, want degraded view", err)
	}
	if err := svc.saveEntry(context.Background(), testSession(), "text"); apperrors.KindOf(err) != apperrors.KindUnavailable {
		t.Fatalf("saveEntry() kind = %q, want %q", apperrors.KindOf(err), apperrors.KindUnavailable)
	}
}
