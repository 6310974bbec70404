package dashboard

import (
	"context"
	"net/http"
	"sync"

	"github.com/mindpath/mindpath/internal/journalapi"
	"github.com/mindpath/mindpath/internal/services/web/storage"
)

// fakeGateway implements JournalGateway with configurable results and call
// tracking.
type fakeGateway struct {
	mu sync.Mutex

	entries    []journalapi.Entry
	listErr    error
	analysis   journalapi.Analysis
	analyzeErr error
	saved      journalapi.Entry
	saveErr    error
	points     []journalapi.EmotionPoint
	weeklyErr  error

	listCalls    int
	analyzeCalls int
	saveCalls    int
	weeklyCalls  int
	tokens       []string
	lastContent  string
	lastDraft    journalapi.EntryDraft
	lastWeekly   []journalapi.Entry
}

func (f *fakeGateway) ListEntries(_ context.Context, token string) ([]journalapi.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	f.tokens = append(f.tokens, token)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.entries, nil
}

func (f *fakeGateway) Analyze(_ context.Context, token string, content string) (journalapi.Analysis, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.analyzeCalls++
	f.tokens = append(f.tokens, token)
	f.lastContent = content
	if f.analyzeErr != nil {
		return journalapi.Analysis{}, f.analyzeErr
	}
	return f.analysis, nil
}

func (f *fakeGateway) SaveEntry(_ context.Context, token string, draft journalapi.EntryDraft) (journalapi.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls++
	f.tokens = append(f.tokens, token)
	f.lastDraft = draft
	if f.saveErr != nil {
		return journalapi.Entry{}, f.saveErr
	}
	return f.saved, nil
}

func (f *fakeGateway) AnalyzeWeek(_ context.Context, token string, entries []journalapi.Entry) ([]journalapi.EmotionPoint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.weeklyCalls++
	f.tokens = append(f.tokens, token)
	f.lastWeekly = append([]journalapi.Entry(nil), entries...)
	if f.weeklyErr != nil {
		return nil, f.weeklyErr
	}
	return f.points, nil
}

// fakeSessions records session writes.
type fakeSessions struct {
	mu        sync.Mutex
	updated   []storage.Session
	deleted   []string
	updateErr error
}

func (f *fakeSessions) Update(_ context.Context, session storage.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, session)
	return nil
}

func (f *fakeSessions) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeSessions) last() (storage.Session, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.updated) == 0 {
		return storage.Session{}, false
	}
	return f.updated[len(f.updated)-1], true
}

// fakeJournalClient implements JournalClient for gateway tests.
type fakeJournalClient struct {
	err error
}

func (f fakeJournalClient) ListEntries(context.Context, string) ([]journalapi.Entry, error) {
	return []journalapi.Entry{{ID: "1"}}, f.err
}

func (f fakeJournalClient) Analyze(context.Context, string, string) (journalapi.Analysis, error) {
	return journalapi.Analysis{Emotion: "calm"}, f.err
}

func (f fakeJournalClient) SaveEntry(context.Context, string, journalapi.EntryDraft) (journalapi.Entry, error) {
	return journalapi.Entry{ID: "2"}, f.err
}

func (f fakeJournalClient) AnalyzeWeek(context.Context, string, []journalapi.Entry) ([]journalapi.EmotionPoint, error) {
	return []journalapi.EmotionPoint{{Date: "Day 1"}}, f.err
}

func staticSession(session storage.Session) ResolveSession {
	return func(*http.Request) (storage.Session, bool) {
		return session, true
	}
}

func noSession(*http.Request) (storage.Session, bool) {
	return storage.Session{}, false
}
