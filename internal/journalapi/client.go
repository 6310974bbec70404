// Package journalapi is a typed client for the journal and emotion analysis service.
//
// Every call maps to one HTTP request with a JSON body. The client never
// retries and never caches responses.
package journalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mindpath/mindpath/internal/platform/timeouts"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:8080"

const maxResponseBytes = 1 << 20

// Fallback messages used when the service gives no usable error text.
const (
	MessageSignUpFailed       = "Signup failed"
	MessageSignInFailed       = "Signin failed"
	MessageListFailed         = "Failed to fetch entries"
	MessageAnalyzeFailed      = "Failed to analyze journal"
	MessageSaveFailed         = "Failed to save journal"
	MessageWeeklyAnalysisFail = "Failed to analyze weekly emotions"
)

// Config configures a Client.
type Config struct {
	BaseURL string
	// Timeout bounds each request. Zero uses timeouts.APIRequest.
	Timeout time.Duration
	// Transport overrides the base round tripper. It is always wrapped for tracing.
	Transport http.RoundTripper
}

// Client calls the journal service.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	now        func() time.Time
}

// New validates cfg and builds a Client.
func New(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse journal api base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("journal api base url %q must use http or https", raw)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("journal api base url %q must include a host", raw)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = timeouts.APIRequest
	}
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(transport),
		},
		now: time.Now,
	}, nil
}

// BaseURL returns the configured service root.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// SignUp creates an account. The service responds with the created user.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (User, error) {
	var user User
	err := c.do(ctx, call{
		op:       "sign up",
		method:   http.MethodPost,
		path:     "/signup",
		body:     req,
		out:      &user,
		fallback: MessageSignUpFailed,
		useBody:  true,
	})
	if err != nil {
		return User{}, err
	}
	return user, nil
}

// SignIn exchanges credentials for a bearer token. A 2xx response without a
// token is treated as a failure.
func (c *Client) SignIn(ctx context.Context, req SignInRequest) (SignInResult, error) {
	var result SignInResult
	err := c.do(ctx, call{
		op:       "sign in",
		method:   http.MethodPost,
		path:     "/signin",
		body:     req,
		out:      &result,
		fallback: MessageSignInFailed,
		useBody:  true,
	})
	if err != nil {
		return SignInResult{}, err
	}
	result.Token = strings.TrimSpace(result.Token)
	if result.Token == "" {
		return SignInResult{}, &Error{Op: "sign in", StatusCode: http.StatusUnauthorized, Message: MessageSignInFailed}
	}
	if result.User.Email == "" {
		result.User.Email = strings.TrimSpace(req.Email)
	}
	return result, nil
}

// ListEntries returns the caller's entries, most recent first.
func (c *Client) ListEntries(ctx context.Context, token string) ([]Entry, error) {
	var entries []Entry
	err := c.do(ctx, call{
		op:       "list entries",
		method:   http.MethodGet,
		path:     "/journal",
		token:    token,
		auth:     true,
		out:      &entries,
		fallback: MessageListFailed,
	})
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// Analyze classifies content without saving it.
func (c *Client) Analyze(ctx context.Context, token string, content string) (Analysis, error) {
	var analysis Analysis
	err := c.do(ctx, call{
		op:       "analyze entry",
		method:   http.MethodPost,
		path:     "/journal/analyze",
		token:    token,
		auth:     true,
		body:     map[string]string{"content": content},
		out:      &analysis,
		fallback: MessageAnalyzeFailed,
	})
	if err != nil {
		return Analysis{}, err
	}
	return analysis, nil
}

// SaveEntry stores draft. When the service answers with an empty body the
// returned entry echoes the draft with today's date.
func (c *Client) SaveEntry(ctx context.Context, token string, draft EntryDraft) (Entry, error) {
	var saved Entry
	var decoded bool
	err := c.do(ctx, call{
		op:       "save entry",
		method:   http.MethodPost,
		path:     "/journal",
		token:    token,
		auth:     true,
		body:     draft,
		out:      &saved,
		decoded:  &decoded,
		fallback: MessageSaveFailed,
	})
	if err != nil {
		return Entry{}, err
	}
	if !decoded {
		saved = Entry{
			Date:         c.now().Format(time.DateOnly),
			Content:      draft.Content,
			Emotion:      draft.Emotion,
			EmotionScore: draft.EmotionScore,
			Advice:       draft.Advice,
		}
	}
	return saved, nil
}

// AnalyzeWeek classifies entries as a batch and returns one chart point per entry.
func (c *Client) AnalyzeWeek(ctx context.Context, token string, entries []Entry) ([]EmotionPoint, error) {
	if entries == nil {
		entries = []Entry{}
	}
	var points []EmotionPoint
	err := c.do(ctx, call{
		op:       "analyze week",
		method:   http.MethodPost,
		path:     "/journal/weekly-analysis",
		token:    token,
		auth:     true,
		body:     map[string][]Entry{"entries": entries},
		out:      &points,
		fallback: MessageWeeklyAnalysisFail,
	})
	if err != nil {
		return nil, err
	}
	if points == nil {
		points = []EmotionPoint{}
	}
	return points, nil
}

type call struct {
	op       string
	method   string
	path     string
	token    string
	auth     bool
	body     any
	out      any
	decoded  *bool
	fallback string
	// useBody surfaces service-provided error text to the user.
	useBody bool
}

func (c *Client) do(ctx context.Context, in call) error {
	if c == nil || c.httpClient == nil {
		return &Error{Op: in.op, Message: in.fallback, Err: errors.New("journal api client is not configured")}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	token := strings.TrimSpace(in.token)
	if in.auth && token == "" {
		return &Error{Op: in.op, Message: in.fallback, Err: ErrMissingToken}
	}

	var body io.Reader
	if in.body != nil {
		payload, err := json.Marshal(in.body)
		if err != nil {
			return &Error{Op: in.op, Message: in.fallback, Err: fmt.Errorf("encode request: %w", err)}
		}
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, in.method, c.baseURL.String()+in.path, body)
	if err != nil {
		return &Error{Op: in.op, Message: in.fallback, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if in.auth {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Op: in.op, Message: in.fallback, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &Error{Op: in.op, StatusCode: resp.StatusCode, Message: in.fallback, Err: fmt.Errorf("read response: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := errorText(raw)
		message := in.fallback
		if in.useBody && detail != "" {
			message = detail
		}
		return &Error{Op: in.op, StatusCode: resp.StatusCode, Message: message, Detail: detail}
	}

	raw = bytes.TrimSpace(raw)
	if in.out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, in.out); err != nil {
		return &Error{Op: in.op, StatusCode: resp.StatusCode, Message: in.fallback, Err: fmt.Errorf("decode response: %w", err)}
	}
	if in.decoded != nil {
		*in.decoded = true
	}
	return nil
}

// errorText extracts a message from a JSON {"message"} or {"error"} body, or
// falls back to the trimmed plain-text body.
func errorText(raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if trimmed[0] == '{' && json.Unmarshal(trimmed, &payload) == nil {
		if message := strings.TrimSpace(payload.Message); message != "" {
			return message
		}
		return strings.TrimSpace(payload.Error)
	}
	return strings.TrimSpace(string(trimmed))
}
