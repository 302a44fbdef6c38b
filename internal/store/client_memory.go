package store

import (
	"context"
	"fmt"
	"sync"
)

type memoryLocalStorage struct {
	mu    sync.RWMutex
	items map[LocalStorageKey]string
}

// NewMemoryLocalStorage returns a [LocalStorage] kept in process memory.
// Values are encoded exactly as the SQLite backend encodes them.
func NewMemoryLocalStorage() LocalStorage {
	return &memoryLocalStorage{items: make(map[LocalStorageKey]string)}
}

// GetItem implements [LocalStorage].
func (m *memoryLocalStorage) GetItem(_ context.Context, key LocalStorageKey, itemType ItemType, dest any) (bool, error) {
	m.mu.RLock()
	raw, ok := m.items[key]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if err := decodeItem(raw, itemType, dest); err != nil {
		return true, fmt.Errorf("get item %s: %w", key, err)
	}
	return true, nil
}

// SetItem implements [LocalStorage].
func (m *memoryLocalStorage) SetItem(_ context.Context, key LocalStorageKey, value any, itemType ItemType) error {
	raw, err := encodeItem(value, itemType)
	if err != nil {
		return fmt.Errorf("set item %s: %w", key, err)
	}

	m.mu.Lock()
	m.items[key] = raw
	m.mu.Unlock()
	return nil
}

// RemoveItem implements [LocalStorage].
func (m *memoryLocalStorage) RemoveItem(_ context.Context, key LocalStorageKey) error {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
	return nil
}
