package cache

import (
	"context"
	"errors"
	"time"
)

// CacheRepo определяет интерфейс горячего кеша закодированных тайлов.
// Поддерживает двухуровневую схему: Hot Cache (Redis или память) +
// Cold Storage (BadgerDB) с read-through и write-behind.
//
// Использование:
//
//	c := NewMemoryCache(config, coldStorage)
//	data, err := c.Get(ctx, "key")
//	err = c.Set(ctx, "key", data, 30*time.Second)
type CacheRepo interface {
	// Get получает значение по ключу из кеша.
	// Возвращает ErrCacheMiss если ключ не найден ни в кеше, ни в Cold Storage.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с указанным TTL.
	// TTL = 0 означает TTL по умолчанию из конфигурации.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет ключ из кеша.
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа в кеше.
	Exists(ctx context.Context, key string) (bool, error)

	// BatchGet получает несколько значений за один запрос.
	BatchGet(ctx context.Context, keys []string) (map[string][]byte, error)

	// BatchSet сохраняет несколько значений за один запрос.
	BatchSet(ctx context.Context, items map[string][]byte, ttl time.Duration) error

	// Close сбрасывает очередь write-behind и закрывает соединения.
	Close() error

	// GetMetrics возвращает метрики кеша.
	GetMetrics() *CacheMetrics
}

// ColdStorage определяет интерфейс для постоянного хранения данных.
// Используется как fallback когда данные отсутствуют в Hot Cache.
type ColdStorage interface {
	// Load загружает данные; ErrCacheMiss если ключа нет.
	Load(ctx context.Context, key string) ([]byte, error)

	// Store сохраняет данные в постоянное хранилище.
	Store(ctx context.Context, key string, value []byte) error

	// BatchStore сохраняет несколько записей.
	BatchStore(ctx context.Context, items map[string][]byte) error
}

// CacheMetrics содержит метрики производительности кеша.
type CacheMetrics struct {
	// Общие метрики
	TotalRequests int64   `json:"total_requests"`
	CacheHits     int64   `json:"cache_hits"`
	CacheMisses   int64   `json:"cache_misses"`
	ColdHits      int64   `json:"cold_hits"`
	HitRatio      float64 `json:"hit_ratio"`

	// Метрики производительности
	AvgLatencyMs float64 `json:"avg_latency_ms"`
	MaxLatencyMs float64 `json:"max_latency_ms"`

	// Метрики хранилища
	TotalKeys int64 `json:"total_keys"`
	Evictions int64 `json:"evictions"`

	// Write-Behind метрики
	PendingWrites int64 `json:"pending_writes"`

	// Последнее обновление
	LastUpdate time.Time `json:"last_update"`
}

// CacheConfig содержит конфигурацию для кеша.
type CacheConfig struct {
	// Redis конфигурация
	RedisURL      string
	RedisPassword string
	RedisDB       int

	// TTL настройки
	DefaultTTL time.Duration
	MaxTTL     time.Duration

	// Предел записей in-memory кеша
	MaxEntries int

	// Write-Behind конфигурация
	WriteBehindEnabled   bool
	WriteBehindInterval  time.Duration
	WriteBehindBatchSize int

	// Производительность
	MaxConnections int
	PoolTimeout    time.Duration
}

// withDefaults заполняет нулевые поля значениями по умолчанию.
func (c CacheConfig) withDefaults() CacheConfig {
	if c.DefaultTTL == 0 {
		c.DefaultTTL = 10 * time.Minute
	}
	if c.MaxTTL == 0 {
		c.MaxTTL = 24 * time.Hour
	}
	if c.MaxEntries == 0 {
		c.MaxEntries = 4096
	}
	if c.WriteBehindInterval == 0 {
		c.WriteBehindInterval = 5 * time.Second
	}
	if c.WriteBehindBatchSize == 0 {
		c.WriteBehindBatchSize = 100
	}
	if c.MaxConnections == 0 {
		c.MaxConnections = 10
	}
	if c.PoolTimeout == 0 {
		c.PoolTimeout = 30 * time.Second
	}
	return c
}

// clampTTL приводит TTL к диапазону (0, MaxTTL].
func (c CacheConfig) clampTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		ttl = c.DefaultTTL
	}
	if ttl > c.MaxTTL {
		ttl = c.MaxTTL
	}
	return ttl
}

// Ошибки кеша
var (
	ErrCacheMiss   = NewCacheError("cache miss")
	ErrCacheClosed = NewCacheError("cache closed")
	ErrInvalidKey  = NewCacheError("invalid key")
)

// CacheError представляет ошибку кеша.
type CacheError struct {
	Message string
}

func (e *CacheError) Error() string {
	return e.Message
}

func NewCacheError(message string) *CacheError {
	return &CacheError{Message: message}
}

// IsCacheMiss проверяет, является ли ошибка (или обёрнутая в ней) промахом кеша.
func IsCacheMiss(err error) bool {
	return errors.Is(err, ErrCacheMiss)
}
