// Package storage_adapter подключает TileStore к кешу как Cold Storage.
package storage_adapter

import (
	"context"

	"github.com/annel0/noisefield/internal/cache"
	"github.com/annel0/noisefield/internal/storage"
)

// TileStorageAdapter адаптирует TileStore к интерфейсу cache.ColdStorage.
// Badger не принимает context, поэтому отменённый контекст проверяется до
// обращения к базе.
type TileStorageAdapter struct {
	storage *storage.TileStore
}

// NewColdStorage создаёт адаптер для открытого TileStore.
func NewColdStorage(ts *storage.TileStore) cache.ColdStorage {
	return &TileStorageAdapter{storage: ts}
}

// Load загружает тайл; отсутствие ключа отдаётся как cache.ErrCacheMiss.
func (a *TileStorageAdapter) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload, found, err := a.storage.Load(key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, cache.ErrCacheMiss
	}
	return payload, nil
}

// Store сохраняет тайл.
func (a *TileStorageAdapter) Store(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.storage.Save(key, value)
}

// BatchStore сохраняет пачку тайлов.
func (a *TileStorageAdapter) BatchStore(ctx context.Context, items map[string][]byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.storage.SaveBatch(items)
}
