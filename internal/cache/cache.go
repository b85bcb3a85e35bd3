// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache persists fetched Nutrislice payloads in a local SQLite
// database so repeated runs skip the network. Entries expire by TTL and are
// replaced on the next fetch.
package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mealslice/mealslice/pkg/types"
)

const dbFile = "mealslice.db"

const (
	defaultSchoolTTL = 24 * time.Hour
	defaultMenuTTL   = 6 * time.Hour
)

// Store is an on-disk payload cache. It satisfies the client's Cache
// interface; a lookup error of any kind reads as a miss so a corrupt cache
// never blocks a fetch.
type Store struct {
	db        *sql.DB
	schoolTTL time.Duration
	menuTTL   time.Duration

	// now is swapped by tests to control TTL expiry.
	now func() time.Time
}

// Open creates or opens the cache database under cfg.Dir and creates the
// schema if it does not exist.
func Open(cfg types.CacheConfig) (*Store, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("cache directory not set")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	schoolTTL := cfg.SchoolTTL
	if schoolTTL <= 0 {
		schoolTTL = defaultSchoolTTL
	}
	menuTTL := cfg.MenuTTL
	if menuTTL <= 0 {
		menuTTL = defaultMenuTTL
	}

	s := &Store{
		db:        db,
		schoolTTL: schoolTTL,
		menuTTL:   menuTTL,
		now:       time.Now,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS school_lists (
			district TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			fetched_at INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS menu_weeks (
			district TEXT NOT NULL,
			slug TEXT NOT NULL,
			meal TEXT NOT NULL,
			date TEXT NOT NULL,
			payload TEXT NOT NULL,
			fetched_at INTEGER NOT NULL,
			PRIMARY KEY (district, slug, meal, date)
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// GetSchools returns the cached school list for a district, or a miss when
// absent, expired, or unreadable.
func (s *Store) GetSchools(district string) ([]types.SchoolRecord, bool) {
	var payload string
	var fetchedAt int64
	err := s.db.QueryRow(
		`SELECT payload, fetched_at FROM school_lists WHERE district = ?`, district,
	).Scan(&payload, &fetchedAt)
	if err != nil {
		return nil, false
	}
	if s.expired(fetchedAt, s.schoolTTL) {
		return nil, false
	}

	var schools []types.SchoolRecord
	if err := json.Unmarshal([]byte(payload), &schools); err != nil {
		return nil, false
	}
	return schools, true
}

// PutSchools stores the school list for a district, replacing any previous
// entry.
func (s *Store) PutSchools(district string, schools []types.SchoolRecord) error {
	payload, err := json.Marshal(schools)
	if err != nil {
		return fmt.Errorf("encoding school list: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO school_lists (district, payload, fetched_at) VALUES (?, ?, ?)`,
		district, string(payload), s.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("caching school list: %w", err)
	}
	return nil
}

// GetMenuWeek returns the cached weekly payload for a school, meal, and
// target date, or a miss when absent, expired, or unreadable.
func (s *Store) GetMenuWeek(district, slug, meal, date string) (types.MenuWeek, bool) {
	var payload string
	var fetchedAt int64
	err := s.db.QueryRow(
		`SELECT payload, fetched_at FROM menu_weeks
		 WHERE district = ? AND slug = ? AND meal = ? AND date = ?`,
		district, slug, meal, date,
	).Scan(&payload, &fetchedAt)
	if err != nil {
		return types.MenuWeek{}, false
	}
	if s.expired(fetchedAt, s.menuTTL) {
		return types.MenuWeek{}, false
	}

	var week types.MenuWeek
	if err := json.Unmarshal([]byte(payload), &week); err != nil {
		return types.MenuWeek{}, false
	}
	return week, true
}

// PutMenuWeek stores a weekly payload, replacing any previous entry for the
// same school, meal, and date.
func (s *Store) PutMenuWeek(district, slug, meal, date string, week types.MenuWeek) error {
	payload, err := json.Marshal(week)
	if err != nil {
		return fmt.Errorf("encoding menu week: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO menu_weeks (district, slug, meal, date, payload, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		district, slug, meal, date, string(payload), s.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("caching menu week: %w", err)
	}
	return nil
}

func (s *Store) expired(fetchedAt int64, ttl time.Duration) bool {
	return s.now().Sub(time.Unix(fetchedAt, 0)) > ttl
}
