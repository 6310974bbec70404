package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mindpath/mindpath/internal/platform/timeouts"
	webapp "github.com/mindpath/mindpath/internal/services/web/app"
	module "github.com/mindpath/mindpath/internal/services/web/module"
	"github.com/mindpath/mindpath/internal/services/web/modules"
	"github.com/mindpath/mindpath/internal/services/web/modules/dashboard"
	"github.com/mindpath/mindpath/internal/services/web/modules/public"
	"github.com/mindpath/mindpath/internal/services/web/platform/httpx"
	"github.com/mindpath/mindpath/internal/services/web/platform/observability"
	"github.com/mindpath/mindpath/internal/services/web/platform/requestmeta"
	"github.com/mindpath/mindpath/internal/services/web/routepath"
	webstatic "github.com/mindpath/mindpath/internal/services/web/static"
	"github.com/mindpath/mindpath/internal/services/web/storage"
	"github.com/mindpath/mindpath/internal/services/web/storage/memory"
	"github.com/mindpath/mindpath/internal/services/web/storage/sweeper"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr      string
	AuthClient    public.AuthClient
	JournalClient dashboard.JournalClient
	// Sessions defaults to an in-memory store.
	Sessions   storage.SessionStore
	SessionTTL time.Duration
	// SweepSchedule is the cron schedule for expired-session cleanup.
	SweepSchedule       string
	RequestSchemePolicy requestmeta.SchemePolicy
	Logger              *zap.Logger
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	sessions   storage.SessionStore
	sweeper    *sweeper.Sweeper
	logger     *zap.Logger
}

// NewHandler builds a root handler from the default module registry groups.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sessions := cfg.Sessions
	if sessions == nil {
		sessions = memory.New()
	}
	principal := newPrincipalResolver(sessions, logger)
	shared := module.Dependencies{
		ResolveViewer:       principal.resolveViewer,
		ResolveSignedIn:     principal.resolveSignedIn,
		RequestSchemePolicy: cfg.RequestSchemePolicy,
		Logger:              logger,
	}
	deps := modules.Dependencies{
		AuthClient:     cfg.AuthClient,
		JournalClient:  cfg.JournalClient,
		Sessions:       sessions,
		SessionTTL:     cfg.SessionTTL,
		ResolveSession: principal.resolveSession,
	}
	publicModules := modules.DefaultPublicModules(deps, shared)
	protectedModules := modules.DefaultProtectedModules(deps, shared)
	if ids := modules.Unhealthy(publicModules, protectedModules); len(ids) > 0 {
		logger.Warn("web modules running without a journal api client", zap.Strings("modules", ids))
	}
	h, err := webapp.BuildRootHandler(webapp.Config{
		PublicModules:       publicModules,
		ProtectedModules:    protectedModules,
		Authenticated:       principal.authenticated,
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(webstatic.FS))))
	rootMux.Handle(routepath.Root, h)
	chained := httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		withRequestPrincipalState(),
		observability.RequestLogger(logger),
	)
	return otelhttp.NewHandler(chained, "web"), nil
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Sessions == nil {
		cfg.Sessions = memory.New()
	}
	sweep, err := sweeper.New(cfg.Sessions, cfg.SweepSchedule, cfg.Logger)
	if err != nil {
		return nil, err
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		sessions: cfg.Sessions,
		sweeper:  sweep,
		logger:   cfg.Logger,
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	s.sweeper.Start(ctx)
	defer s.sweeper.Stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()
	s.logger.Info("web server listening", zap.String("addr", s.httpAddr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes the HTTP listener and the session store.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.sessions != nil {
		if err := s.sessions.Close(); err != nil {
			s.logger.Warn("close session store", zap.Error(err))
		}
	}
}
