package dashboard

import (
	"context"

	"github.com/mindpath/mindpath/internal/journalapi"
	apperrors "github.com/mindpath/mindpath/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func errJournalUnavailable() error {
	return apperrors.E(apperrors.KindUnavailable, "journal service is not configured")
}

func (unavailableGateway) ListEntries(context.Context, string) ([]journalapi.Entry, error) {
	return nil, errJournalUnavailable()
}

func (unavailableGateway) Analyze(context.Context, string, string) (journalapi.Analysis, error) {
	return journalapi.Analysis{}, errJournalUnavailable()
}

func (unavailableGateway) SaveEntry(context.Context, string, journalapi.EntryDraft) (journalapi.Entry, error) {
	return journalapi.Entry{}, errJournalUnavailable()
}

func (unavailableGateway) AnalyzeWeek(context.Context, string, []journalapi.Entry) ([]journalapi.EmotionPoint, error) {
	return nil, errJournalUnavailable()
}
