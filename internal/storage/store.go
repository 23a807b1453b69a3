package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mikecappella27/life-rpg/internal/engine"
)

// SaveKey is the slot the game reads and writes.
const SaveKey = "life-rpg-v3"

// DefaultDBPath returns the default save database location.
func DefaultDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".liferpg.db"), nil
}

// SlotStore keeps whole-save snapshots in a keyed SQLite slot table. The
// snapshot blob is the unit of persistence; SQL is only the container.
type SlotStore struct {
	db  *sql.DB
	log *zap.Logger
}

// Open opens (creating if missing) the store at path and runs migrations.
func Open(ctx context.Context, path string, log *zap.Logger) (*SlotStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SlotStore{db: db, log: log}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS save_slots (
			key TEXT PRIMARY KEY,
			version INTEGER NOT NULL,
			data BLOB NOT NULL,
			updated_at DATETIME NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Close closes the underlying database.
func (st *SlotStore) Close() error {
	return st.db.Close()
}

// Load reads the save slot. A missing slot returns (nil, nil): first run. A
// corrupt slot also returns (nil, nil) after a warning, so a damaged file
// degrades to a fresh game rather than a crash loop.
func (st *SlotStore) Load(ctx context.Context) (*engine.SaveState, error) {
	row := st.db.QueryRowContext(ctx, `SELECT data FROM save_slots WHERE key = ?`, SaveKey)

	var data []byte
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("save load: %w", err)
	}

	s, err := Decode(data)
	if err != nil {
		st.log.Warn("save slot corrupt, starting fresh", zap.Error(err))
		return nil, nil
	}
	return s, nil
}

// Save writes the state into the slot, replacing whatever was there.
func (st *SlotStore) Save(ctx context.Context, s *engine.SaveState) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	_, err = st.db.ExecContext(ctx, `
		INSERT INTO save_slots (key, version, data, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			version = excluded.version,
			data = excluded.data,
			updated_at = excluded.updated_at
	`, SaveKey, s.Version, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save write: %w", err)
	}
	return nil
}

// Persist is best-effort Save: a failure is logged and swallowed, never
// surfaced to gameplay. State stays live in memory either way.
func (st *SlotStore) Persist(ctx context.Context, s *engine.SaveState) {
	if err := st.Save(ctx, s); err != nil {
		st.log.Warn("persist failed", zap.Error(err))
	}
}
