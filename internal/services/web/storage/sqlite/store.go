package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/mindpath/mindpath/internal/platform/storage/sqlitemigrate"
	webstorage "github.com/mindpath/mindpath/internal/services/web/storage"
	"github.com/mindpath/mindpath/internal/services/web/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for web sessions.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens and migrates a web session SQLite store.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB, now: time.Now}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Create inserts a new session row.
func (s *Store) Create(ctx context.Context, session webstorage.Session) error {
	if err := s.ready(); err != nil {
		return err
	}
	session.ID = strings.TrimSpace(session.ID)
	if session.ID == "" {
		return fmt.Errorf("session id is required")
	}
	if session.ExpiresAt.IsZero() {
		return fmt.Errorf("session expiry is required")
	}
	stateJSON, err := json.Marshal(session.State())
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}
	now := s.now().UTC()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO web_sessions (id, access_token, email, display_name, state_json, created_at, updated_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID,
		session.AccessToken,
		session.Email,
		session.DisplayName,
		string(stateJSON),
		timeToUnixMillis(session.CreatedAt),
		timeToUnixMillis(now),
		timeToUnixMillis(session.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// Get loads a live session by id.
func (s *Store) Get(ctx context.Context, id string) (webstorage.Session, error) {
	if err := s.ready(); err != nil {
		return webstorage.Session{}, err
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, access_token, email, display_name, state_json, created_at, expires_at
		 FROM web_sessions
		 WHERE id = ? AND expires_at > ?`,
		strings.TrimSpace(id),
		timeToUnixMillis(s.now()),
	)

	var (
		session   webstorage.Session
		stateJSON string
		createdAt int64
		expiresAt int64
	)
	if err := row.Scan(
		&session.ID,
		&session.AccessToken,
		&session.Email,
		&session.DisplayName,
		&stateJSON,
		&createdAt,
		&expiresAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return webstorage.Session{}, webstorage.ErrNotFound
		}
		return webstorage.Session{}, fmt.Errorf("get session: %w", err)
	}
	var state webstorage.State
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return webstorage.Session{}, fmt.Errorf("decode session state: %w", err)
	}
	session = session.WithState(state)
	session.CreatedAt = unixMillisToTime(createdAt)
	session.ExpiresAt = unixMillisToTime(expiresAt)
	return session, nil
}

// Update rewrites the mutable columns of an existing session.
func (s *Store) Update(ctx context.Context, session webstorage.Session) error {
	if err := s.ready(); err != nil {
		return err
	}
	stateJSON, err := json.Marshal(session.State())
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}
	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE web_sessions
		 SET access_token = ?, email = ?, display_name = ?, state_json = ?, updated_at = ?, expires_at = ?
		 WHERE id = ?`,
		session.AccessToken,
		session.Email,
		session.DisplayName,
		string(stateJSON),
		timeToUnixMillis(s.now()),
		timeToUnixMillis(session.ExpiresAt),
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update session rows: %w", err)
	}
	if affected == 0 {
		return webstorage.ErrNotFound
	}
	return nil
}

// Delete removes a session by id.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM web_sessions WHERE id = ?`, strings.TrimSpace(id)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired removes sessions expired at now.
func (s *Store) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM web_sessions WHERE expires_at <= ?`, timeToUnixMillis(now))
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions rows: %w", err)
	}
	return int(affected), nil
}

func (s *Store) ready() error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value == 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}
