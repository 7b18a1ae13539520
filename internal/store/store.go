// Package store is the local persistent store: every entity is a JSON blob
// under a fixed key in a single SQLite table. Writes are last-write-wins at
// key granularity; there is no read-modify-write atomicity. That is fine for
// the single-operator admin use case this shop targets.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Fixed storage keys. These are a compatibility contract with previously
// saved data of the same installation; do not rename.
const (
	KeyProducts     = "kevina_products"
	KeyCart         = "kevina_cart"
	KeyOrders       = "kevina_orders"
	KeySiteContent  = "kevina_site_content"
	KeyDeliveryFee  = "kevina_delivery_fee"
	KeyAdmin        = "kevina_admin"
	KeyAdminSession = "kevina_admin_session"
	KeyUserType     = "kevina_user_type"
	KeyMigrated     = "kevina_products_migrated"
	KeyTheme        = "kevina_theme"
)

type Store struct{ db *sqlx.DB }

func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS kv(
  key        TEXT PRIMARY KEY,
  value      TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

func (s *Store) Close() error { return s.db.Close() }

// GetRaw returns the stored JSON text for key, reporting whether the key
// was present.
func (s *Store) GetRaw(key string) (string, bool, error) {
	var value string
	err := s.db.Get(&value, `SELECT value FROM kv WHERE key = ?`, key)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// SetRaw upserts the value for key. Last write wins.
func (s *Store) SetRaw(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv(key, value, updated_at)
		VALUES(?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	return err
}

// Delete removes key; missing keys are not an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}

// Get unmarshals the value for key into out, reporting whether the key
// was present.
func (s *Store) Get(key string, out any) (bool, error) {
	raw, ok, err := s.GetRaw(key)
	if err != nil || !ok {
		return ok, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Set marshals v as JSON and upserts it under key.
func (s *Store) Set(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.SetRaw(key, string(b))
}

// Flag reads a boolean marker key; absent means false.
func (s *Store) Flag(key string) (bool, error) {
	raw, ok, err := s.GetRaw(key)
	if err != nil || !ok {
		return false, err
	}
	return raw == "true", nil
}

// SetFlag stores the marker, or removes it when v is false, so logout
// leaves no session key behind.
func (s *Store) SetFlag(key string, v bool) error {
	if !v {
		return s.Delete(key)
	}
	return s.SetRaw(key, "true")
}
