package web

import (
	"context"
	"fmt"
	"strings"

	"github.com/mindpath/mindpath/internal/services/web/storage"
	"github.com/mindpath/mindpath/internal/services/web/storage/memory"
	redisstore "github.com/mindpath/mindpath/internal/services/web/storage/redis"
	sqlitestore "github.com/mindpath/mindpath/internal/services/web/storage/sqlite"
)

// Session store backends.
const (
	SessionBackendMemory = "memory"
	SessionBackendSQLite = "sqlite"
	SessionBackendRedis  = "redis"
)

// SessionStoreConfig selects and configures a session backend.
type SessionStoreConfig struct {
	Backend       string
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// OpenSessionStore opens the configured session backend. An empty backend
// selects the in-memory store.
func OpenSessionStore(ctx context.Context, cfg SessionStoreConfig) (storage.SessionStore, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", SessionBackendMemory:
		return memory.New(), nil
	case SessionBackendSQLite:
		store, err := sqlitestore.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite session store: %w", err)
		}
		return store, nil
	case SessionBackendRedis:
		store, err := redisstore.Open(ctx, redisstore.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("open redis session store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
	}
}
