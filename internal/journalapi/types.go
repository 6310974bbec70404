package journalapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// User is the account record returned by sign-up and sign-in.
type User struct {
	ID       ID     `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// SignUpRequest carries new-account credentials.
type SignUpRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignInRequest carries sign-in credentials.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResult holds the issued bearer token and any user fields returned with it.
type SignInResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Entry is one saved journal entry with its analysis.
type Entry struct {
	ID           ID     `json:"id"`
	Date         string `json:"date"`
	Content      string `json:"content"`
	Emotion      string `json:"emotion"`
	EmotionScore int    `json:"emotionScore"`
	Advice       string `json:"advice"`
}

// EntryDraft is the payload for creating an entry.
type EntryDraft struct {
	Content      string
	Emotion      string
	EmotionScore int
	Advice       string
}

// MarshalJSON writes the score under both casings; the journal service reads
// emotion_score while older clients sent emotionScore.
func (d EntryDraft) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Content        string `json:"content"`
		Emotion        string `json:"emotion"`
		EmotionScore   int    `json:"emotionScore"`
		EmotionScoreSC int    `json:"emotion_score"`
		Advice         string `json:"advice"`
	}{
		Content:        d.Content,
		Emotion:        d.Emotion,
		EmotionScore:   d.EmotionScore,
		EmotionScoreSC: d.EmotionScore,
		Advice:         d.Advice,
	})
}

// Analysis is the classification of one piece of journal text.
type Analysis struct {
	Emotion      string `json:"emotion"`
	EmotionScore int    `json:"emotionScore"`
	Advice       string `json:"advice"`
}

// EmotionPoint is one chart sample produced by weekly analysis.
type EmotionPoint struct {
	Date    string `json:"date"`
	Emotion string `json:"emotion"`
	Score   int    `json:"score"`
}

// UnmarshalJSON accepts either "date" or "day" as the point label.
func (p *EmotionPoint) UnmarshalJSON(data []byte) error {
	var raw struct {
		Date    string `json:"date"`
		Day     string `json:"day"`
		Emotion string `json:"emotion"`
		Score   int    `json:"score"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Date = strings.TrimSpace(raw.Date)
	if p.Date == "" {
		p.Date = strings.TrimSpace(raw.Day)
	}
	p.Emotion = raw.Emotion
	p.Score = raw.Score
	return nil
}

// ID is an identifier the service may encode as a JSON number or string.
type ID string

// UnmarshalJSON accepts numbers, strings, and null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(value))
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	if _, err := strconv.ParseFloat(number.String(), 64); err != nil {
		return fmt.Errorf("decode id %q: %w", number.String(), err)
	}
	*id = ID(number.String())
	return nil
}

// String returns the identifier text.
func (id ID) String() string { return string(id) }
