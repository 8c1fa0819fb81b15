package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// MemoryCache реализует CacheRepo в памяти процесса: LRU с пределом числа
// записей и TTL. Используется, когда Redis не настроен, и в тестах.
type MemoryCache struct {
	mu          sync.Mutex
	config      CacheConfig
	entries     map[string]*list.Element
	order       *list.List // начало списка: самые свежие
	coldStorage ColdStorage
	writeBehind *writeBehind
	metrics     metricsRecorder
	closed      bool

	now func() time.Time
}

type memoryEntry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

// NewMemoryCache создаёт in-memory кеш с опциональным Cold Storage.
func NewMemoryCache(config CacheConfig, coldStorage ColdStorage) *MemoryCache {
	config = config.withDefaults()

	c := &MemoryCache{
		config:      config,
		entries:     make(map[string]*list.Element),
		order:       list.New(),
		coldStorage: coldStorage,
		now:         time.Now,
	}
	if config.WriteBehindEnabled && coldStorage != nil {
		c.writeBehind = newWriteBehind(coldStorage, config.WriteBehindInterval, config.WriteBehindBatchSize)
	}
	return c
}

// Get получает значение по ключу, при промахе читает Cold Storage.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	defer c.metrics.recordLatency(start)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrCacheClosed
	}
	if e, ok := c.lookupLocked(key); ok {
		c.mu.Unlock()
		c.metrics.hit()
		return e.value, nil
	}
	c.mu.Unlock()

	c.metrics.miss()

	if c.coldStorage != nil {
		val, err := c.coldStorage.Load(ctx, key)
		if err == nil {
			c.metrics.coldHit()
			markColdHit(ctx)
			c.mu.Lock()
			c.storeLocked(key, val, c.config.DefaultTTL)
			c.mu.Unlock()
			return val, nil
		}
		if !IsCacheMiss(err) {
			return nil, err
		}
	}
	return nil, ErrCacheMiss
}

// Set сохраняет значение; при переполнении вытесняется самая старая запись.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	start := time.Now()
	defer c.metrics.recordLatency(start)

	if key == "" {
		return ErrInvalidKey
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrCacheClosed
	}
	c.storeLocked(key, value, c.config.clampTTL(ttl))
	c.mu.Unlock()

	if c.writeBehind != nil {
		c.writeBehind.enqueue(key, value)
	} else if c.coldStorage != nil {
		return c.coldStorage.Store(ctx, key, value)
	}
	return nil
}

// Delete удаляет ключ из кеша.
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.removeLocked(el)
	}
	return nil
}

// Exists проверяет существование непросроченного ключа.
func (c *MemoryCache) Exists(_ context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.lookupLocked(key)
	return ok, nil
}

// BatchGet получает несколько значений; Cold Storage не используется.
func (c *MemoryCache) BatchGet(_ context.Context, keys []string) (map[string][]byte, error) {
	result := make(map[string][]byte)

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		if e, ok := c.lookupLocked(key); ok {
			result[key] = e.value
			c.metrics.hit()
		} else {
			c.metrics.miss()
		}
	}
	return result, nil
}

// BatchSet сохраняет несколько значений.
func (c *MemoryCache) BatchSet(ctx context.Context, items map[string][]byte, ttl time.Duration) error {
	for key, value := range items {
		if err := c.Set(ctx, key, value, ttl); err != nil {
			return err
		}
	}
	return nil
}

// Close очищает кеш и дожидается записи очереди Write-Behind.
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	c.closed = true
	c.entries = make(map[string]*list.Element)
	c.order.Init()
	c.mu.Unlock()

	if c.writeBehind != nil {
		c.writeBehind.close()
	}
	return nil
}

// GetMetrics возвращает текущие метрики кеша.
func (c *MemoryCache) GetMetrics() *CacheMetrics {
	c.mu.Lock()
	keys := int64(len(c.entries))
	c.mu.Unlock()

	var pending int64
	if c.writeBehind != nil {
		pending = c.writeBehind.pending()
	}
	return c.metrics.snapshot(keys, pending)
}

// lookupLocked возвращает живую запись и отмечает её использование.
// Просроченная запись удаляется.
func (c *MemoryCache) lookupLocked(key string) (*memoryEntry, bool) {
	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	e := el.Value.(*memoryEntry)
	if !c.now().Before(e.expiresAt) {
		c.removeLocked(el)
		return nil, false
	}

	c.order.MoveToFront(el)
	return e, true
}

func (c *MemoryCache) storeLocked(key string, value []byte, ttl time.Duration) {
	expiresAt := c.now().Add(ttl)

	if el, ok := c.entries[key]; ok {
		e := el.Value.(*memoryEntry)
		e.value = value
		e.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.entries[key] = c.order.PushFront(&memoryEntry{key: key, value: value, expiresAt: expiresAt})

	for len(c.entries) > c.config.MaxEntries {
		c.removeLocked(c.order.Back())
		c.metrics.evicted()
	}
}

func (c *MemoryCache) removeLocked(el *list.Element) {
	e := c.order.Remove(el).(*memoryEntry)
	delete(c.entries, e.key)
}
