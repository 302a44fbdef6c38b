// Package store implements the client's persisted key/value store ("local
// storage") used for the wrapped master key, the bearer token and small UI
// preferences.
//
// Values are (de)serialized according to an [ItemType] chosen by the caller,
// so the same key can be read back as the Go type it was written from. Two
// backends are provided: SQLite with embedded goose migrations for real
// sessions, and an in-memory map for tests and ephemeral sessions.
package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/local_storage_mock.go -package=mock

// LocalStorage is a typed persisted key/value store. Writes are
// last-write-wins; there is no transactional guarantee across keys.
type LocalStorage interface {
	// GetItem reads key and decodes it into dest according to itemType.
	// dest must be a pointer matching the item type (*string, *int, *int64,
	// *float64, *bool, or any JSON target for ItemObject). found is false,
	// with a nil error, when the key is absent.
	GetItem(ctx context.Context, key LocalStorageKey, itemType ItemType, dest any) (found bool, err error)

	// SetItem encodes value according to itemType and stores it under key,
	// replacing any previous value.
	SetItem(ctx context.Context, key LocalStorageKey, value any, itemType ItemType) error

	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key LocalStorageKey) error
}
