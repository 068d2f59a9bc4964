// Package store persists journal profiles and records in a local SQLite
// database. It is the only writer; the report engine reads copies.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"vitalog/internal/taxonomy"
)

var (
	// ErrProfileNotFound is returned when the profile key matches nothing.
	ErrProfileNotFound = errors.New("store: profile not found")
	// ErrProfileExists is returned when creating over an existing key.
	ErrProfileExists = errors.New("store: profile already exists")
)

// Record is one timestamped submission. Data maps subcategory FullIDs to
// their entries. Records are immutable once created; only the profile's
// last-record cache is ever rewritten.
type Record struct {
	ID         string                    `json:"id"`
	CycleID    string                    `json:"cycle_id"`
	RecordedAt time.Time                 `json:"recorded_at"`
	Data       map[string]taxonomy.Entry `json:"data"`
}

// Profile is one local user, addressed by a user-chosen key (the original
// storage layout keys profiles by password; kept as-is).
type Profile struct {
	Key        string
	Name       string
	LastRecord *Record
}

// Store wraps the SQLite database. A single connection with WAL keeps the
// access model simple; the mutex serializes multi-statement operations.
type Store struct {
	db   *sql.DB
	mu   sync.Mutex
	path string
	log  *zap.Logger
}

// Open initializes the database at the given path, creating the directory
// and schema as needed. Use ":memory:" for tests.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		log.Debug("failed to set sqlite busy_timeout", zap.Error(err))
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		log.Debug("failed to set sqlite journal_mode=WAL", zap.Error(err))
	}

	s := &Store{db: db, path: path, log: log}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	log.Debug("store opened", zap.String("path", path))
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS profiles (
		key         TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		last_record TEXT,
		created_at  INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS records (
		id          TEXT PRIMARY KEY,
		profile_key TEXT NOT NULL,
		cycle_id    TEXT NOT NULL,
		recorded_at INTEGER NOT NULL,
		data        TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_records_lookup
		ON records(profile_key, cycle_id, recorded_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database path.
func (s *Store) Path() string {
	return s.path
}

// CreateProfile registers a new profile under the given key.
func (s *Store) CreateProfile(key, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists int
	err := s.db.QueryRow("SELECT COUNT(1) FROM profiles WHERE key = ?", key).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check profile: %w", err)
	}
	if exists > 0 {
		return ErrProfileExists
	}
	_, err = s.db.Exec(
		"INSERT INTO profiles (key, name, created_at) VALUES (?, ?, ?)",
		key, name, time.Now().Unix(),
	)
	if err != nil {
		s.log.Error("failed to create profile", zap.Error(err))
		return fmt.Errorf("failed to create profile: %w", err)
	}
	s.log.Info("profile created", zap.String("name", name))
	return nil
}

// Profile loads a profile by key, including its last-record cache.
func (s *Store) Profile(key string) (*Profile, error) {
	var name string
	var last sql.NullString
	err := s.db.QueryRow("SELECT name, last_record FROM profiles WHERE key = ?", key).
		Scan(&name, &last)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		s.log.Error("failed to load profile", zap.Error(err))
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	p := &Profile{Key: key, Name: name}
	if last.Valid && last.String != "" {
		var rec Record
		if err := json.Unmarshal([]byte(last.String), &rec); err != nil {
			// A broken cache is not fatal; the records table is the truth.
			s.log.Warn("discarding unreadable last-record cache", zap.Error(err))
		} else {
			p.LastRecord = &rec
		}
	}
	return p, nil
}

// RenameProfile changes the display name of a profile.
func (s *Store) RenameProfile(key, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("UPDATE profiles SET name = ? WHERE key = ?", name, key)
	if err != nil {
		return fmt.Errorf("failed to rename profile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// ChangeKey re-addresses a profile and its records under a new key.
func (s *Store) ChangeKey(oldKey, newKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("UPDATE profiles SET key = ? WHERE key = ?", newKey, oldKey)
	if err != nil {
		return fmt.Errorf("failed to update profile key: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProfileNotFound
	}
	if _, err := tx.Exec("UPDATE records SET profile_key = ? WHERE profile_key = ?", newKey, oldKey); err != nil {
		return fmt.Errorf("failed to move records: %w", err)
	}
	return tx.Commit()
}

// AddRecord appends a record for the profile and refreshes the last-record
// cache. The record id is a creation-time-unique opaque token.
func (s *Store) AddRecord(key, cycleID string, at time.Time, data map[string]taxonomy.Entry) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &Record{
		ID:         uuid.NewString(),
		CycleID:    cycleID,
		RecordedAt: at,
		Data:       data,
	}
	payload, err := json.Marshal(rec.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record data: %w", err)
	}
	cache, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("UPDATE profiles SET last_record = ? WHERE key = ?", string(cache), key)
	if err != nil {
		return nil, fmt.Errorf("failed to update last record: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrProfileNotFound
	}
	_, err = tx.Exec(
		"INSERT INTO records (id, profile_key, cycle_id, recorded_at, data) VALUES (?, ?, ?, ?, ?)",
		rec.ID, key, rec.CycleID, rec.RecordedAt.Unix(), string(payload),
	)
	if err != nil {
		s.log.Error("failed to insert record", zap.Error(err))
		return nil, fmt.Errorf("failed to insert record: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit record: %w", err)
	}
	s.log.Debug("record added",
		zap.String("cycle", cycleID),
		zap.Time("recorded_at", at))
	return rec, nil
}

// Records returns the profile's records for a cycle, newest first. Zero
// start/end times leave that side unbounded; when set, both bounds are
// inclusive.
func (s *Store) Records(key, cycleID string, start, end time.Time) ([]Record, error) {
	query := "SELECT id, cycle_id, recorded_at, data FROM records WHERE profile_key = ? AND cycle_id = ?"
	args := []any{key, cycleID}
	if !start.IsZero() {
		query += " AND recorded_at >= ?"
		args = append(args, start.Unix())
	}
	if !end.IsZero() {
		query += " AND recorded_at <= ?"
		args = append(args, end.Unix())
	}
	query += " ORDER BY recorded_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		s.log.Error("failed to query records", zap.Error(err))
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var unix int64
		var data string
		if err := rows.Scan(&rec.ID, &rec.CycleID, &unix, &data); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		rec.RecordedAt = time.Unix(unix, 0)
		if err := json.Unmarshal([]byte(data), &rec.Data); err != nil {
			s.log.Warn("skipping unreadable record", zap.String("id", rec.ID), zap.Error(err))
			continue
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return out, nil
}

// LastRecord returns the profile's cached most recent record, or nil when
// none was ever written.
func (s *Store) LastRecord(key string) (*Record, error) {
	p, err := s.Profile(key)
	if err != nil {
		return nil, err
	}
	return p.LastRecord, nil
}

// ClearRecords deletes all records of a profile and its last-record cache.
func (s *Store) ClearRecords(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("UPDATE profiles SET last_record = NULL WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("failed to clear last record: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProfileNotFound
	}
	if _, err := tx.Exec("DELETE FROM records WHERE profile_key = ?", key); err != nil {
		return fmt.Errorf("failed to delete records: %w", err)
	}
	return tx.Commit()
}
