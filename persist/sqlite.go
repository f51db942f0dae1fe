package persist

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	finance "github.com/mmejia-loth/Personal-Finance-Management-App-6304"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB is a snapshot slot stored as one row in a SQLite table, for setups
// where a single JSON file is too fragile (shared disks, backups).
type DB struct {
	db   *sql.DB
	slot string
}

// OpenDB opens (and if needed creates) the SQLite slot database.
func OpenDB(dbPath, slot string) (*DB, error) {
	if slot == "" {
		slot = DefaultSlot
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &DB{db: db, slot: slot}, nil
}

func runMigrations(dbPath string) error {
	// A separate connection keeps migrations away from the main one.
	migrateDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := sqlite.WithInstance(migrateDB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// Load reads the slot row. An absent row means the slot is empty.
func (d *DB) Load() (*finance.Ledger, bool, error) {
	var data []byte
	err := d.db.QueryRow(`SELECT data FROM snapshots WHERE slot = ?`, d.slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cannot read slot %q: %w", d.slot, err)
	}
	ledger := finance.NewLedger()
	if err := json.Unmarshal(data, ledger); err != nil {
		return nil, false, fmt.Errorf("cannot parse slot %q: %w", d.slot, err)
	}
	return ledger, true, nil
}

// Save overwrites the slot row with the full snapshot.
func (d *DB) Save(l *finance.Ledger) error {
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("cannot marshal snapshot: %w", err)
	}
	_, err = d.db.Exec(`
		INSERT INTO snapshots (slot, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		d.slot, data)
	if err != nil {
		return fmt.Errorf("cannot write slot %q: %w", d.slot, err)
	}
	return nil
}

// Close releases the underlying database.
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
