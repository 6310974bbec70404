// Package redis provides a session store shared across web instances.
//
// Each session is one JSON value whose key expires with the session, so
// Redis itself reclaims expired sessions.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	webstorage "github.com/mindpath/mindpath/internal/services/web/storage"
	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces session keys.
const DefaultKeyPrefix = "mindpath:session:"

// Config holds Redis connection settings.
type Config struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// Store persists sessions in Redis.
type Store struct {
	client    *redis.Client
	keyPrefix string
	now       func() time.Time
}

// Open connects to Redis and verifies the connection.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.Addr) == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return NewWithClient(client, cfg.KeyPrefix), nil
}

// NewWithClient builds a store around an existing client.
func NewWithClient(client *redis.Client, keyPrefix string) *Store {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	return &Store{client: client, keyPrefix: keyPrefix, now: time.Now}
}

// Create stores a new session; it fails when the id is already taken.
func (s *Store) Create(ctx context.Context, session webstorage.Session) error {
	session.ID = strings.TrimSpace(session.ID)
	if session.ID == "" {
		return fmt.Errorf("session id is required")
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = s.now().UTC()
	}
	payload, ttl, err := s.encode(session)
	if err != nil {
		return err
	}
	created, err := s.client.SetNX(ctx, s.key(session.ID), payload, ttl).Result()
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	if !created {
		return fmt.Errorf("session %q already exists", session.ID)
	}
	return nil
}

// Get loads a live session by id.
func (s *Store) Get(ctx context.Context, id string) (webstorage.Session, error) {
	payload, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return webstorage.Session{}, webstorage.ErrNotFound
		}
		return webstorage.Session{}, fmt.Errorf("get session: %w", err)
	}
	var session webstorage.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return webstorage.Session{}, fmt.Errorf("decode session: %w", err)
	}
	if session.Expired(s.now()) {
		return webstorage.Session{}, webstorage.ErrNotFound
	}
	return session, nil
}

// Update replaces an existing session and refreshes its key expiry.
func (s *Store) Update(ctx context.Context, session webstorage.Session) error {
	payload, ttl, err := s.encode(session)
	if err != nil {
		return err
	}
	updated, err := s.client.SetXX(ctx, s.key(session.ID), payload, ttl).Result()
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if !updated {
		return webstorage.ErrNotFound
	}
	return nil
}

// Delete removes a session by id.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired is a no-op: session keys expire on their own.
func (s *Store) DeleteExpired(context.Context, time.Time) (int, error) {
	return 0, nil
}

// Close closes the Redis client.
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *Store) key(id string) string {
	return s.keyPrefix + strings.TrimSpace(id)
}

func (s *Store) encode(session webstorage.Session) ([]byte, time.Duration, error) {
	ttl, err := keyTTL(session.ExpiresAt, s.now())
	if err != nil {
		return nil, 0, err
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return nil, 0, fmt.Errorf("encode session: %w", err)
	}
	return payload, ttl, nil
}

// keyTTL converts a session expiry into a key lifetime. Redis rejects
// non-positive expirations, so already-expired sessions are refused.
func keyTTL(expiresAt, now time.Time) (time.Duration, error) {
	if expiresAt.IsZero() {
		return 0, fmt.Errorf("session expiry is required")
	}
	ttl := expiresAt.Sub(now)
	if ttl <= 0 {
		return 0, fmt.Errorf("session already expired")
	}
	if ttl < time.Millisecond {
		ttl = time.Millisecond
	}
	return ttl, nil
}
