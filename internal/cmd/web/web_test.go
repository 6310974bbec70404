package web

import (
	"context"
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:3000" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:3000")
	}
	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Fatalf("APIBaseURL = %q, want %q", cfg.APIBaseURL, "http://localhost:8080")
	}
	if cfg.APITimeout != 30*time.Second {
		t.Fatalf("APITimeout = %s, want %s", cfg.APITimeout, 30*time.Second)
	}
	if cfg.SessionBackend != "memory" {
		t.Fatalf("SessionBackend = %q, want %q", cfg.SessionBackend, "memory")
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("SessionTTL = %s, want %s", cfg.SessionTTL, 24*time.Hour)
	}
	if cfg.SweepSchedule != "@every 10m" {
		t.Fatalf("SweepSchedule = %q, want %q", cfg.SweepSchedule, "@every 10m")
	}
	if cfg.TrustForwardedProto {
		t.Fatalf("TrustForwardedProto = true, want false")
	}
}

func TestParseConfigEnvThenFlags(t *testing.T) {
	t.Setenv("MINDPATH_WEB_HTTP_ADDR", "0.0.0.0:4000")
	t.Setenv("MINDPATH_WEB_API_BASE_URL", "http://api.internal:9000")
	t.Setenv("MINDPATH_WEB_SESSION_BACKEND", "redis")
	t.Setenv("MINDPATH_WEB_REDIS_DB", "3")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{
		"-http-addr", "127.0.0.1:9002",
		"-api-timeout", "5s",
		"-trust-forwarded-proto",
	})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
	if cfg.APIBaseURL != "http://api.internal:9000" {
		t.Fatalf("APIBaseURL = %q, want %q", cfg.APIBaseURL, "http://api.internal:9000")
	}
	if cfg.SessionBackend != "redis" {
		t.Fatalf("SessionBackend = %q, want %q", cfg.SessionBackend, "redis")
	}
	if cfg.RedisDB != 3 {
		t.Fatalf("RedisDB = %d, want 3", cfg.RedisDB)
	}
	if cfg.APITimeout != 5*time.Second {
		t.Fatalf("APITimeout = %s, want %s", cfg.APITimeout, 5*time.Second)
	}
	if !cfg.TrustForwardedProto {
		t.Fatalf("TrustForwardedProto = false, want true")
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	fs.SetOutput(discard{})
	if _, err := ParseConfig(fs, []string{"-no-such-flag"}); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestRunRejectsBadAPIBaseURL(t *testing.T) {
	cfg := Config{
		HTTPAddr:   "127.0.0.1:0",
		APIBaseURL: "ftp://example.com",
		LogFormat:  "console",
	}
	if err := Run(context.Background(), cfg); err == nil {
		t.Fatalf("expected error for non-http api base url")
	}
}

func TestRunRejectsUnknownSessionBackend(t *testing.T) {
	cfg := Config{
		HTTPAddr:       "127.0.0.1:0",
		APIBaseURL:     "http://localhost:8080",
		SessionBackend: "etcd",
		LogFormat:      "console",
	}
	if err := Run(context.Background(), cfg); err == nil {
		t.Fatalf("expected error for unknown session backend")
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
