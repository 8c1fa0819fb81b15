package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v3"
)

// ErrNotReady возвращается при обращении к закрытому хранилищу.
var ErrNotReady = errors.New("хранилище не готово")

// TileStore: постоянное хранилище закодированных тайлов на BadgerDB.
// Ключ тайла строится field.TileSpec.Key и однозначно определяет пиксели,
// поэтому записи никогда не устаревают по содержимому; TTL только
// ограничивает размер базы.
type TileStore struct {
	db      *badger.DB
	dbPath  string
	ttl     time.Duration
	mutex   sync.RWMutex
	isReady bool
}

// NewTileStore открывает (или создаёт) хранилище в каталоге dataPath/tiles.
// ttl == 0 хранит тайлы бессрочно.
func NewTileStore(dataPath string, ttl time.Duration) (*TileStore, error) {
	dbPath := filepath.Join(dataPath, "tiles")
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Отключаем логирование BadgerDB

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть BadgerDB: %w", err)
	}

	return &TileStore{
		db:      db,
		dbPath:  dbPath,
		ttl:     ttl,
		isReady: true,
	}, nil
}

// Path возвращает каталог базы.
func (ts *TileStore) Path() string {
	return ts.dbPath
}

// Close закрывает хранилище данных
func (ts *TileStore) Close() error {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	if !ts.isReady {
		return nil
	}

	ts.isReady = false
	return ts.db.Close()
}

// Save сохраняет закодированный тайл под ключом key.
func (ts *TileStore) Save(key string, payload []byte) error {
	ts.mutex.RLock()
	defer ts.mutex.RUnlock()

	if !ts.isReady {
		return ErrNotReady
	}

	entry := badger.NewEntry([]byte(key), payload)
	if ts.ttl > 0 {
		entry = entry.WithTTL(ts.ttl)
	}

	err := ts.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("ошибка сохранения в BadgerDB: %w", err)
	}
	return nil
}

// SaveBatch сохраняет несколько тайлов одной пачкой.
func (ts *TileStore) SaveBatch(items map[string][]byte) error {
	ts.mutex.RLock()
	defer ts.mutex.RUnlock()

	if !ts.isReady {
		return ErrNotReady
	}

	wb := ts.db.NewWriteBatch()
	defer wb.Cancel()

	for key, payload := range items {
		entry := badger.NewEntry([]byte(key), payload)
		if ts.ttl > 0 {
			entry = entry.WithTTL(ts.ttl)
		}
		if err := wb.SetEntry(entry); err != nil {
			return fmt.Errorf("ошибка пакетной записи в BadgerDB: %w", err)
		}
	}

	if err := wb.Flush(); err != nil {
		return fmt.Errorf("ошибка пакетной записи в BadgerDB: %w", err)
	}
	return nil
}

// Load читает тайл. Отсутствие ключа не ошибка: возвращается found == false.
func (ts *TileStore) Load(key string) (payload []byte, found bool, err error) {
	ts.mutex.RLock()
	defer ts.mutex.RUnlock()

	if !ts.isReady {
		return nil, false, ErrNotReady
	}

	err = ts.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			payload = append([]byte{}, val...)
			return nil
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("ошибка чтения из BadgerDB: %w", err)
	}
	return payload, true, nil
}

// Delete удаляет тайл; отсутствие ключа не ошибка.
func (ts *TileStore) Delete(key string) error {
	ts.mutex.RLock()
	defer ts.mutex.RUnlock()

	if !ts.isReady {
		return ErrNotReady
	}

	err := ts.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("ошибка удаления из BadgerDB: %w", err)
	}
	return nil
}

// Count возвращает число тайлов с ключами, начинающимися с prefix.
func (ts *TileStore) Count(prefix string) (int, error) {
	ts.mutex.RLock()
	defer ts.mutex.RUnlock()

	if !ts.isReady {
		return 0, ErrNotReady
	}

	n := 0
	err := ts.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("ошибка обхода BadgerDB: %w", err)
	}
	return n, nil
}

// DeletePrefix удаляет все тайлы с ключами, начинающимися с prefix.
func (ts *TileStore) DeletePrefix(prefix string) error {
	ts.mutex.RLock()
	defer ts.mutex.RUnlock()

	if !ts.isReady {
		return ErrNotReady
	}

	if err := ts.db.DropPrefix([]byte(prefix)); err != nil {
		return fmt.Errorf("ошибка удаления префикса %q: %w", prefix, err)
	}
	return nil
}
