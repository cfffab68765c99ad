// Package session holds the client's durable session state (token, admin
// flag, username, theme) and gates access to protected views. The store is
// the single source of truth: every gate check re-reads it, and subscribers
// are notified of changes so a logout elsewhere is observable.
package session

import (
	"database/sql"
	"fmt"
	"strconv"
	"sync"

	_ "modernc.org/sqlite"
)

// Storage keys. These mirror what the backend hands out at login.
const (
	KeyToken    = "token"
	KeyIsAdmin  = "is_admin"
	KeyUsername = "username"
	KeyTheme    = "theme"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// Session is a snapshot of the stored credentials. Validity is decided by the
// server; the client only checks that a token is present at all.
type Session struct {
	Token    string
	IsAdmin  bool
	Username string
}

// Store is a SQLite-backed key/value store. Writes are last-writer-wins with
// no transactional grouping across keys.
type Store struct {
	db *sql.DB

	subsMu sync.Mutex
	subs   []chan struct{}
}

// Open opens (or creates) the store at path. Use ":memory:" for an ephemeral
// store in tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create session schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the stored value for key, or "" when absent.
func (s *Store) Get(key string) string {
	var value string
	if err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value); err != nil {
		return ""
	}
	return value
}

// Set writes one key and notifies subscribers.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	s.notifySubscribers()
	return nil
}

// SaveSession stores a fresh login.
func (s *Store) SaveSession(sess Session) error {
	if err := s.Set(KeyToken, sess.Token); err != nil {
		return err
	}
	if err := s.Set(KeyIsAdmin, strconv.FormatBool(sess.IsAdmin)); err != nil {
		return err
	}
	return s.Set(KeyUsername, sess.Username)
}

// Session reads the current credentials.
func (s *Store) Session() Session {
	return Session{
		Token:    s.Get(KeyToken),
		IsAdmin:  s.Get(KeyIsAdmin) == "true",
		Username: s.Get(KeyUsername),
	}
}

// Clear removes the session keys on logout. The theme preference survives.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key IN (?, ?, ?)`,
		KeyToken, KeyIsAdmin, KeyUsername)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.notifySubscribers()
	return nil
}

// Theme returns the stored theme preference, defaulting to "dark".
func (s *Store) Theme() string {
	if theme := s.Get(KeyTheme); theme != "" {
		return theme
	}
	return "dark"
}

func (s *Store) SetTheme(theme string) error {
	return s.Set(KeyTheme, theme)
}

// Subscribe returns a channel signalled on every store change. Signals are
// coalesced.
func (s *Store) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.subsMu.Lock()
	s.subs = append(s.subs, ch)
	s.subsMu.Unlock()
	return ch
}

func (s *Store) notifySubscribers() {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
