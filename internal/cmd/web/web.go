// Package web parses web command configuration and launches the web server.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/mindpath/mindpath/internal/journalapi"
	entrypoint "github.com/mindpath/mindpath/internal/platform/cmd"
	"github.com/mindpath/mindpath/internal/platform/logging"
	"github.com/mindpath/mindpath/internal/services/web"
	"github.com/mindpath/mindpath/internal/services/web/platform/requestmeta"
	"go.uber.org/zap"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"MINDPATH_WEB_HTTP_ADDR" envDefault:"localhost:3000"`
	APIBaseURL          string        `env:"MINDPATH_WEB_API_BASE_URL" envDefault:"http://localhost:8080"`
	APITimeout          time.Duration `env:"MINDPATH_WEB_API_TIMEOUT" envDefault:"30s"`
	SessionBackend      string        `env:"MINDPATH_WEB_SESSION_BACKEND" envDefault:"memory"`
	SQLitePath          string        `env:"MINDPATH_WEB_SQLITE_PATH" envDefault:"data/web-sessions.db"`
	RedisAddr           string        `env:"MINDPATH_WEB_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword       string        `env:"MINDPATH_WEB_REDIS_PASSWORD"`
	RedisDB             int           `env:"MINDPATH_WEB_REDIS_DB" envDefault:"0"`
	SessionTTL          time.Duration `env:"MINDPATH_WEB_SESSION_TTL" envDefault:"24h"`
	SweepSchedule       string        `env:"MINDPATH_WEB_SWEEP_SCHEDULE" envDefault:"@every 10m"`
	TrustForwardedProto bool          `env:"MINDPATH_WEB_TRUST_FORWARDED_PROTO" envDefault:"false"`
	LogLevel            string        `env:"MINDPATH_WEB_LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"MINDPATH_WEB_LOG_FORMAT" envDefault:"console"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "Journal API base URL")
	fs.DurationVar(&cfg.APITimeout, "api-timeout", cfg.APITimeout, "Per-request journal API timeout")
	fs.StringVar(&cfg.SessionBackend, "session-backend", cfg.SessionBackend, "Session store backend: memory, sqlite or redis")
	fs.StringVar(&cfg.SQLitePath, "sqlite-path", cfg.SQLitePath, "SQLite session database path")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address for the redis session backend")
	fs.IntVar(&cfg.RedisDB, "redis-db", cfg.RedisDB, "Redis database number")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Maximum session lifetime")
	fs.StringVar(&cfg.SweepSchedule, "sweep-schedule", cfg.SweepSchedule, "Cron schedule for expired session cleanup")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Honor X-Forwarded-Proto for cookie and origin checks")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: console or json")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		return serve(ctx, cfg, logger)
	})
}

func serve(ctx context.Context, cfg Config, logger *zap.Logger) error {
	client, err := journalapi.New(journalapi.Config{BaseURL: cfg.APIBaseURL, Timeout: cfg.APITimeout})
	if err != nil {
		return fmt.Errorf("init journal api client: %w", err)
	}
	sessions, err := web.OpenSessionStore(ctx, web.SessionStoreConfig{
		Backend:       cfg.SessionBackend,
		SQLitePath:    cfg.SQLitePath,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
	})
	if err != nil {
		return err
	}
	server, err := web.NewServer(ctx, web.Config{
		HTTPAddr:            cfg.HTTPAddr,
		AuthClient:          client,
		JournalClient:       client,
		Sessions:            sessions,
		SessionTTL:          cfg.SessionTTL,
		SweepSchedule:       cfg.SweepSchedule,
		RequestSchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		Logger:              logger,
	})
	if err != nil {
		_ = sessions.Close()
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	logger.Info("starting web server",
		zap.String("api_base_url", client.BaseURL()),
		zap.String("session_backend", cfg.SessionBackend),
	)
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
