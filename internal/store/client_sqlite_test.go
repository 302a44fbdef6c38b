// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

func newTestSQLStorage(t *testing.T) (LocalStorage, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	return NewSQLLocalStorage(&DB{DB: db, logger: l}, l), mock, db
}

func TestBuildQueries(t *testing.T) {
	query, args, err := buildGetItemQuery(KeyMasterKey)
	require.NoError(t, err)
	assert.Equal(t, "SELECT item_value FROM local_storage WHERE storage_key = ? LIMIT 1", query)
	assert.Equal(t, []any{"MASTER_KEY"}, args)

	query, args, err = buildSetItemQuery(KeyMasterKey, "{}")
	require.NoError(t, err)
	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "insert into local_storage"))
	assert.Contains(t, q, "current_timestamp")
	assert.Contains(t, q, "on conflict(storage_key) do update set item_value = excluded.item_value")
	assert.NotContains(t, query, "$1")
	assert.Equal(t, []any{"MASTER_KEY", "{}"}, args)

	query, args, err = buildRemoveItemQuery(KeyDevToken)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM local_storage WHERE storage_key = ?", query)
	assert.Equal(t, []any{"DEV_TOKEN"}, args)
}

func TestSQLLocalStorage_GetItem_Found(t *testing.T) {
	s, mock, db := newTestSQLStorage(t)
	defer db.Close()

	mock.ExpectQuery("SELECT item_value FROM local_storage").
		WithArgs("DEV_TOKEN").
		WillReturnRows(sqlmock.NewRows([]string{"item_value"}).AddRow("token-123"))

	var token string
	found, err := s.GetItem(context.Background(), KeyDevToken, ItemString, &token)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "token-123", token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLLocalStorage_GetItem_NotFound(t *testing.T) {
	s, mock, db := newTestSQLStorage(t)
	defer db.Close()

	mock.ExpectQuery("SELECT item_value FROM local_storage").
		WithArgs("MASTER_KEY").
		WillReturnRows(sqlmock.NewRows([]string{"item_value"}))

	var blob map[string]any
	found, err := s.GetItem(context.Background(), KeyMasterKey, ItemObject, &blob)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, blob)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLLocalStorage_GetItem_QueryError(t *testing.T) {
	s, mock, db := newTestSQLStorage(t)
	defer db.Close()

	mock.ExpectQuery("SELECT item_value FROM local_storage").
		WillReturnError(errors.New("disk I/O error"))

	var token string
	found, err := s.GetItem(context.Background(), KeyDevToken, ItemString, &token)
	assert.False(t, found)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSQLLocalStorage_GetItem_Corrupted(t *testing.T) {
	s, mock, db := newTestSQLStorage(t)
	defer db.Close()

	mock.ExpectQuery("SELECT item_value FROM local_storage").
		WithArgs("ACTIVE_TAB_INDEX").
		WillReturnRows(sqlmock.NewRows([]string{"item_value"}).AddRow("three"))

	var idx int
	found, err := s.GetItem(context.Background(), KeyActiveTabIndex, ItemNumber, &idx)
	assert.True(t, found)
	assert.ErrorIs(t, err, ErrCorruptedItem)
}

func TestSQLLocalStorage_SetItem(t *testing.T) {
	s, mock, db := newTestSQLStorage(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO local_storage").
		WithArgs("PROFILE", `{"name":"alice","theme":""}`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := s.SetItem(context.Background(), KeyProfile, profile{Name: "alice"}, ItemObject)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLLocalStorage_SetItem_TypeMismatchSkipsDB(t *testing.T) {
	s, mock, db := newTestSQLStorage(t)
	defer db.Close()

	err := s.SetItem(context.Background(), KeyIsLocalDev, 1, ItemBoolean)
	assert.ErrorIs(t, err, ErrItemTypeMismatch)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLLocalStorage_SetItem_ExecError(t *testing.T) {
	s, mock, db := newTestSQLStorage(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO local_storage").
		WillReturnError(errors.New("database is locked"))

	err := s.SetItem(context.Background(), KeyDevToken, "t", ItemString)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLLocalStorage_RemoveItem(t *testing.T) {
	s, mock, db := newTestSQLStorage(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM local_storage").
		WithArgs("MASTER_KEY").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.RemoveItem(context.Background(), KeyMasterKey))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLLocalStorage_RemoveItem_ExecError(t *testing.T) {
	s, mock, db := newTestSQLStorage(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM local_storage").
		WillReturnError(errors.New("readonly database"))

	err := s.RemoveItem(context.Background(), KeyMasterKey)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// TestNewClientStorages_SQLiteFile exercises the real driver and migrations.
func TestNewClientStorages_SQLiteFile(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "client.db")

	storages, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	require.NoError(t, storages.LocalStorage.SetItem(ctx, KeyDevToken, "first", ItemString))
	require.NoError(t, storages.LocalStorage.SetItem(ctx, KeyDevToken, "second", ItemString))

	var token string
	found, err := storages.LocalStorage.GetItem(ctx, KeyDevToken, ItemString, &token)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", token)

	require.NoError(t, storages.LocalStorage.RemoveItem(ctx, KeyDevToken))
	found, err = storages.LocalStorage.GetItem(ctx, KeyDevToken, ItemString, &token)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNewClientStorages_InMemory(t *testing.T) {
	storages, err := NewClientStorages(context.Background(),
		config.ClientStorage{DB: config.ClientDB{DSN: InMemoryDSN}}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, storages.LocalStorage)
	assert.NoError(t, storages.Close())
}
