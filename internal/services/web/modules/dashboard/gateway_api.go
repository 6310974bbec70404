package dashboard

import (
	"context"

	"github.com/mindpath/mindpath/internal/journalapi"
	apperrors "github.com/mindpath/mindpath/internal/services/web/platform/errors"
)

// JournalClient is the subset of the journal service client the dashboard uses.
type JournalClient interface {
	ListEntries(ctx context.Context, token string) ([]journalapi.Entry, error)
	Analyze(ctx context.Context, token string, content string) (journalapi.Analysis, error)
	SaveEntry(ctx context.Context, token string, draft journalapi.EntryDraft) (journalapi.Entry, error)
	AnalyzeWeek(ctx context.Context, token string, entries []journalapi.Entry) ([]journalapi.EmotionPoint, error)
}

type apiGateway struct {
	client JournalClient
}

// NewAPIGateway returns a JournalGateway backed by the journal service.
func NewAPIGateway(client JournalClient) JournalGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return apiGateway{client: client}
}

func (g apiGateway) ListEntries(ctx context.Context, token string) ([]journalapi.Entry, error) {
	entries, err := g.client.ListEntries(ctx, token)
	if err != nil {
		return nil, mapJournalError(err, journalapi.MessageListFailed)
	}
	return entries, nil
}

func (g apiGateway) Analyze(ctx context.Context, token string, content string) (journalapi.Analysis, error) {
	analysis, err := g.client.Analyze(ctx, token, content)
	if err != nil {
		return journalapi.Analysis{}, mapJournalError(err, journalapi.MessageAnalyzeFailed)
	}
	return analysis, nil
}

func (g apiGateway) SaveEntry(ctx context.Context, token string, draft journalapi.EntryDraft) (journalapi.Entry, error) {
	entry, err := g.client.SaveEntry(ctx, token, draft)
	if err != nil {
		return journalapi.Entry{}, mapJournalError(err, journalapi.MessageSaveFailed)
	}
	return entry, nil
}

func (g apiGateway) AnalyzeWeek(ctx context.Context, token string, entries []journalapi.Entry) ([]journalapi.EmotionPoint, error) {
	points, err := g.client.AnalyzeWeek(ctx, token, entries)
	if err != nil {
		return nil, mapJournalError(err, journalapi.MessageWeeklyAnalysisFail)
	}
	return points, nil
}

func mapJournalError(err error, fallback string) error {
	message := journalapi.Message(err, fallback)
	if journalapi.IsUnauthorized(err) {
		return apperrors.Wrap(apperrors.KindUnauthorized, message, err)
	}
	return apperrors.FromUpstream(journalapi.StatusCode(err), message, err)
}
