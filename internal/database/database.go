package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"deckhand/internal/cards"
)

var ErrVariationNotFound = errors.New("variation not found")

type DB struct {
	conn   *sql.DB
	logger *zap.Logger
}

// New initializes the database connection and creates the schema.
func New(dsn string, logger *zap.Logger) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	d := &DB{conn: db, logger: logger}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("database connected", zap.String("dsn", dsn))
	return d, nil
}

func (d *DB) migrate() error {
	// Permissions table
	_, err := d.conn.Exec(`
	CREATE TABLE IF NOT EXISTS permissions (
		user_id TEXT NOT NULL,
		node TEXT NOT NULL,
		PRIMARY KEY (user_id, node)
	);`)
	if err != nil {
		return err
	}

	// Custom variation catalog. Only definitions are kept, never deck state.
	_, err = d.conn.Exec(`
	CREATE TABLE IF NOT EXISTS variations (
		name TEXT PRIMARY KEY,
		definition TEXT NOT NULL,
		created_by TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);`)
	return err
}

func (d *DB) Close() error {
	d.logger.Info("database connection closing")
	return d.conn.Close()
}

// AddPermission grants a permission node to a user.
func (d *DB) AddPermission(userID, node string) error {
	_, err := d.conn.Exec("INSERT OR IGNORE INTO permissions (user_id, node) VALUES (?, ?)", userID, node)
	return err
}

// RemovePermission revokes a permission node from a user.
func (d *DB) RemovePermission(userID, node string) error {
	_, err := d.conn.Exec("DELETE FROM permissions WHERE user_id = ? AND node = ?", userID, node)
	return err
}

// HasPermission checks if a user has a specific permission node.
func (d *DB) HasPermission(userID, node string) (bool, error) {
	var exists int
	err := d.conn.QueryRow("SELECT 1 FROM permissions WHERE user_id = ? AND node = ?", userID, node).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListPermissions returns all permission nodes for a user.
func (d *DB) ListPermissions(userID string) ([]string, error) {
	rows, err := d.conn.Query("SELECT node FROM permissions WHERE user_id = ? ORDER BY node", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var nodes []string
	for rows.Next() {
		var node string
		if err := rows.Scan(&node); err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, rows.Err()
}

// Variation Methods

// SaveVariation stores v's definition, replacing any variation of the same name.
func (d *DB) SaveVariation(v *cards.Variation, createdBy string) error {
	def, err := json.Marshal(v.Definition())
	if err != nil {
		return fmt.Errorf("failed to marshal variation: %w", err)
	}
	_, err = d.conn.Exec(`
		INSERT INTO variations (name, definition, created_by, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
		definition = excluded.definition,
		created_by = excluded.created_by,
		created_at = excluded.created_at
	`, v.Name(), string(def), createdBy, time.Now().UTC().Format(time.RFC3339))
	return err
}

// GetVariation rebuilds a stored variation. It returns ErrVariationNotFound
// when no variation has that name.
func (d *DB) GetVariation(name string) (*cards.Variation, error) {
	var raw string
	err := d.conn.QueryRow("SELECT definition FROM variations WHERE name = ?", name).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrVariationNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	return decodeVariation(raw)
}

// ListVariations returns all stored variations ordered by name.
func (d *DB) ListVariations() ([]*cards.Variation, error) {
	rows, err := d.conn.Query("SELECT definition FROM variations ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*cards.Variation
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		v, err := decodeVariation(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// DeleteVariation removes a stored variation, reporting whether it existed.
func (d *DB) DeleteVariation(name string) (bool, error) {
	res, err := d.conn.Exec("DELETE FROM variations WHERE name = ?", name)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func decodeVariation(raw string) (*cards.Variation, error) {
	var def cards.Definition
	if err := json.Unmarshal([]byte(raw), &def); err != nil {
		return nil, fmt.Errorf("failed to unmarshal variation: %w", err)
	}
	return cards.NewVariation(def)
}
