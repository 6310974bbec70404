package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mindpath/mindpath/internal/journalapi"
)

func TestSessionExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{name: "future", expiresAt: now.Add(time.Minute), want: false},
		{name: "past", expiresAt: now.Add(-time.Minute), want: true},
		{name: "exactly now", expiresAt: now, want: true},
		{name: "zero never expires", expiresAt: time.Time{}, want: false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := (Session{ExpiresAt: tc.expiresAt}).Expired(now); got != tc.want {
				t.Fatalf("Expired() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSessionStateRoundTrip(t *testing.T) {
	t.Parallel()

	state := State{
		LastAnalysis: &journalapi.Analysis{Emotion: "calm", EmotionScore: 70},
		Weekly:       []journalapi.EmotionPoint{{Date: "Day 1", Score: 70}},
		Provisional:  []journalapi.Entry{{ID: "1", Content: "hi"}},
	}
	session := Session{ID: "s1"}.WithState(state)
	got := session.State()
	if got.LastAnalysis == nil || got.LastAnalysis.Emotion != "calm" {
		t.Fatalf("LastAnalysis = %+v", got.LastAnalysis)
	}
	if len(got.Weekly) != 1 || len(got.Provisional) != 1 {
		t.Fatalf("state = %+v", got)
	}
	if session.ID != "s1" {
		t.Fatalf("ID = %q, want s1", session.ID)
	}
}

func TestNewSessionIDIsUUID(t *testing.T) {
	t.Parallel()

	first := NewSessionID()
	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("NewSessionID() = %q, not a uuid: %v", first, err)
	}
	if first == NewSessionID() {
		t.Fatalf("NewSessionID() returned duplicate ids")
	}
}
