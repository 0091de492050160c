package repository

import (
	"context"
	"strings"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStorage in-memory хранилище слотов поверх go-cache, без истечения срока
type MemoryStorage struct {
	backend *gocache.Cache
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{backend: gocache.New(gocache.NoExpiration, 0)}
}

var _ Storage = (*MemoryStorage)(nil)

func (m *MemoryStorage) GetItem(_ context.Context, key string) ([]byte, bool, error) {
	raw, ok := m.backend.Get(storageKey(key))
	if !ok {
		return nil, false, nil
	}
	v, ok := raw.([]byte)
	if !ok {
		return nil, false, nil
	}
	// return copy
	buf := make([]byte, len(v))
	copy(buf, v)
	return buf, true, nil
}

func (m *MemoryStorage) SetItem(_ context.Context, key string, value []byte) error {
	buf := make([]byte, len(value))
	copy(buf, value)
	m.backend.Set(storageKey(key), buf, gocache.NoExpiration)
	return nil
}

func (m *MemoryStorage) RemoveItem(_ context.Context, key string) error {
	m.backend.Delete(storageKey(key))
	return nil
}

func storageKey(key string) string {
	return strings.TrimSpace(key)
}
