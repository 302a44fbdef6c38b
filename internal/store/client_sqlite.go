package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

const (
	localStorageTable  = "local_storage"
	localStorageKeyCol = "storage_key"
	localStorageValCol = "item_value"
	localStorageTSCol  = "updated_at"
)

// sqlite uses ? placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type sqlLocalStorage struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLLocalStorage returns a [LocalStorage] backed by the local_storage
// table of db. The schema must already be migrated.
func NewSQLLocalStorage(db *DB, logger *logger.Logger) LocalStorage {
	return &sqlLocalStorage{db: db, logger: logger}
}

// GetItem implements [LocalStorage].
func (s *sqlLocalStorage) GetItem(ctx context.Context, key LocalStorageKey, itemType ItemType, dest any) (bool, error) {
	query, args, err := buildGetItemQuery(key)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var raw string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqlLocalStorage.GetItem").
			Str("storage_key", string(key)).
			Msg("failed to query local storage item")
		return false, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	if err = decodeItem(raw, itemType, dest); err != nil {
		s.logger.Err(err).
			Str("func", "sqlLocalStorage.GetItem").
			Str("storage_key", string(key)).
			Str("item_type", string(itemType)).
			Msg("failed to decode local storage item")
		return true, fmt.Errorf("get item %s: %w", key, err)
	}

	return true, nil
}

// SetItem implements [LocalStorage].
func (s *sqlLocalStorage) SetItem(ctx context.Context, key LocalStorageKey, value any, itemType ItemType) error {
	raw, err := encodeItem(value, itemType)
	if err != nil {
		return fmt.Errorf("set item %s: %w", key, err)
	}

	query, args, err := buildSetItemQuery(key, raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqlLocalStorage.SetItem").
			Str("storage_key", string(key)).
			Msg("failed to upsert local storage item")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

// RemoveItem implements [LocalStorage].
func (s *sqlLocalStorage) RemoveItem(ctx context.Context, key LocalStorageKey) error {
	query, args, err := buildRemoveItemQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqlLocalStorage.RemoveItem").
			Str("storage_key", string(key)).
			Msg("failed to delete local storage item")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func buildGetItemQuery(key LocalStorageKey) (string, []any, error) {
	return psql.
		Select(localStorageValCol).
		From(localStorageTable).
		Where(sq.Eq{localStorageKeyCol: string(key)}).
		Limit(1).
		ToSql()
}

func buildSetItemQuery(key LocalStorageKey, raw string) (string, []any, error) {
	return psql.
		Insert(localStorageTable).
		Columns(localStorageKeyCol, localStorageValCol, localStorageTSCol).
		Values(string(key), raw, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix(fmt.Sprintf("ON CONFLICT(%s) DO UPDATE SET %s = excluded.%s, %s = excluded.%s",
			localStorageKeyCol,
			localStorageValCol, localStorageValCol,
			localStorageTSCol, localStorageTSCol)).
		ToSql()
}

func buildRemoveItemQuery(key LocalStorageKey) (string, []any, error) {
	return psql.
		Delete(localStorageTable).
		Where(sq.Eq{localStorageKeyCol: string(key)}).
		ToSql()
}
