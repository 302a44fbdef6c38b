package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// InMemoryDSN selects the in-memory backend instead of a SQLite file.
const InMemoryDSN = ":memory:"

// ClientStorages groups the client-side storage backends into a single
// value that can be passed to the service layer.
type ClientStorages struct {
	// LocalStorage holds the wrapped master key, the bearer token and
	// client preferences.
	LocalStorage LocalStorage

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. for [InMemoryDSN] it returns a memory-backed [LocalStorage];
//  2. otherwise it opens the SQLite file at cfg.DB.DSN, creating it when
//     missing, and runs pending migrations via [DB.Migrate].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	if cfg.DB.DSN == InMemoryDSN {
		logger.Warn().Msg("local storage is in memory, the master key will not survive a restart")
		return &ClientStorages{LocalStorage: NewMemoryLocalStorage()}, nil
	}

	logger.Info().Msg("opening local storage...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		LocalStorage: NewSQLLocalStorage(db, logger),
		db:           db,
	}, nil
}

// Close releases the database connection, if any.
func (c *ClientStorages) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
