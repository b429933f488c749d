// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/dotandev/bricks/internal/errors"
	"github.com/dotandev/bricks/internal/logger"
)

// Store handles database operations for the catalog
type Store struct {
	db *sql.DB
}

// Open initializes the SQLite database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.WrapStoreFailed(err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.WrapStoreFailed(err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug("catalog store opened", "path", path)
	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS items (
		part_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		amount INTEGER,
		color_groups TEXT,
		alternative_ids TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_items_name ON items(name);
	`
	if _, err := db.Exec(query); err != nil {
		return errors.WrapStoreFailed(err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts a new item. Fails if the part ID is already present.
func (s *Store) Add(item *Item) error {
	groupsJSON, _ := json.Marshal(item.ColorGroupSet)
	altJSON, _ := json.Marshal(item.AlternativeIDs)

	var amount sql.NullInt64
	if item.Amount != nil {
		amount = sql.NullInt64{Int64: int64(*item.Amount), Valid: true}
	}

	query := `
	INSERT INTO items (part_id, name, amount, color_groups, alternative_ids)
	VALUES (?, ?, ?, ?, ?)
	`
	if _, err := s.db.Exec(query, item.PartID, item.Name, amount, string(groupsJSON), string(altJSON)); err != nil {
		if exists, checkErr := s.exists(item.PartID); checkErr == nil && exists {
			return errors.WrapDuplicateItem(item.PartID)
		}
		return errors.WrapStoreFailed(err)
	}
	return nil
}

// Update rewrites an existing item identified by its part ID.
func (s *Store) Update(item *Item) error {
	groupsJSON, _ := json.Marshal(item.ColorGroupSet)
	altJSON, _ := json.Marshal(item.AlternativeIDs)

	var amount sql.NullInt64
	if item.Amount != nil {
		amount = sql.NullInt64{Int64: int64(*item.Amount), Valid: true}
	}

	query := `
	UPDATE items SET name = ?, amount = ?, color_groups = ?, alternative_ids = ?
	WHERE part_id = ?
	`
	res, err := s.db.Exec(query, item.Name, amount, string(groupsJSON), string(altJSON), item.PartID)
	if err != nil {
		return errors.WrapStoreFailed(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.WrapItemNotFound(item.PartID)
	}
	return nil
}

// Delete removes the item with the given part ID.
func (s *Store) Delete(partID uint32) error {
	res, err := s.db.Exec(`DELETE FROM items WHERE part_id = ?`, partID)
	if err != nil {
		return errors.WrapStoreFailed(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.WrapItemNotFound(partID)
	}
	return nil
}

// Get looks an item up by primary part ID, falling back to a scan over
// alternative IDs.
func (s *Store) Get(partID uint32) (*Item, error) {
	row := s.db.QueryRow(
		`SELECT part_id, name, amount, color_groups, alternative_ids FROM items WHERE part_id = ?`,
		partID,
	)
	item, err := scanItem(row)
	if err == nil {
		return item, nil
	}
	if err != sql.ErrNoRows {
		return nil, errors.WrapStoreFailed(err)
	}

	// Alternative IDs live in a JSON column, so match them in Go.
	all, err := s.All()
	if err != nil {
		return nil, err
	}
	for _, it := range all {
		if it.HasID(partID) {
			return it, nil
		}
	}
	return nil, errors.WrapItemNotFound(partID)
}

// All returns every item ordered by part ID.
func (s *Store) All() ([]*Item, error) {
	rows, err := s.db.Query(
		`SELECT part_id, name, amount, color_groups, alternative_ids FROM items ORDER BY part_id`,
	)
	if err != nil {
		return nil, errors.WrapStoreFailed(err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, errors.WrapStoreFailed(err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapStoreFailed(err)
	}
	return items, nil
}

// SearchName returns items whose name contains the substring,
// case-insensitively, ordered by part ID.
func (s *Store) SearchName(substr string) ([]*Item, error) {
	rows, err := s.db.Query(
		`SELECT part_id, name, amount, color_groups, alternative_ids FROM items
		 WHERE name LIKE '%' || ? || '%' COLLATE NOCASE ORDER BY part_id`,
		substr,
	)
	if err != nil {
		return nil, errors.WrapStoreFailed(err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, errors.WrapStoreFailed(err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapStoreFailed(err)
	}
	return items, nil
}

// Count returns the number of items in the catalog.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(1) FROM items`).Scan(&n); err != nil {
		return 0, errors.WrapStoreFailed(err)
	}
	return n, nil
}

func (s *Store) exists(partID uint32) (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(1) FROM items WHERE part_id = ?`, partID).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*Item, error) {
	var (
		item       Item
		amount     sql.NullInt64
		groupsJSON string
		altJSON    string
	)
	if err := row.Scan(&item.PartID, &item.Name, &amount, &groupsJSON, &altJSON); err != nil {
		return nil, err
	}
	if amount.Valid {
		v := uint32(amount.Int64)
		item.Amount = &v
	}
	if groupsJSON != "" {
		if err := json.Unmarshal([]byte(groupsJSON), &item.ColorGroupSet); err != nil {
			return nil, err
		}
	}
	if altJSON != "" {
		if err := json.Unmarshal([]byte(altJSON), &item.AlternativeIDs); err != nil {
			return nil, err
		}
	}
	return &item, nil
}
