package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/annel0/noisefield/internal/logging"
)

// RedisCache реализует CacheRepo используя Redis как Hot Cache.
// Тайлы детерминированы, поэтому несколько экземпляров сервиса могут
// делить один Redis без инвалидации.
//
// Особенности:
//   - метрики hit ratio и latency;
//   - read-through из Cold Storage и Write-Behind в него;
//   - batch операции через pipeline.
type RedisCache struct {
	client      *redis.Client
	config      CacheConfig
	coldStorage ColdStorage
	writeBehind *writeBehind
	metrics     metricsRecorder
}

// NewRedisCache создаёт Redis кеш с опциональным Cold Storage (может быть nil).
func NewRedisCache(config CacheConfig, coldStorage ColdStorage) (*RedisCache, error) {
	config = config.withDefaults()

	rdb := redis.NewClient(&redis.Options{
		Addr:         config.RedisURL,
		Password:     config.RedisPassword,
		DB:           config.RedisDB,
		PoolSize:     config.MaxConnections,
		PoolTimeout:  config.PoolTimeout,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	})

	// Проверяем соединение
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	cache := &RedisCache{
		client:      rdb,
		config:      config,
		coldStorage: coldStorage,
	}

	if config.WriteBehindEnabled && coldStorage != nil {
		cache.writeBehind = newWriteBehind(coldStorage, config.WriteBehindInterval, config.WriteBehindBatchSize)
	}

	logging.Info("Redis cache initialized: %s (Write-Behind: %v)", config.RedisURL, cache.writeBehind != nil)
	return cache, nil
}

// Get получает значение по ключу из Redis кеша.
// При промахе пытается загрузить из Cold Storage (Read-Through).
func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	defer r.metrics.recordLatency(start)

	val, err := r.client.Get(ctx, key).Bytes()
	if err == nil {
		r.metrics.hit()
		return val, nil
	}

	r.metrics.miss()

	if !errors.Is(err, redis.Nil) {
		logging.Error("Redis Get error for key %s: %v", key, err)
		return nil, fmt.Errorf("redis get error: %w", err)
	}

	if r.coldStorage != nil {
		val, err := r.coldStorage.Load(ctx, key)
		if err == nil {
			r.metrics.coldHit()
			markColdHit(ctx)
			// Поднимаем в кеш для следующих запросов
			if err := r.client.Set(ctx, key, val, r.config.DefaultTTL).Err(); err != nil {
				logging.Warn("Redis warm-up failed for key %s: %v", key, err)
			}
			return val, nil
		}
		if !IsCacheMiss(err) {
			logging.Error("Cold storage error for key %s: %v", key, err)
		}
	}

	return nil, ErrCacheMiss
}

// Set сохраняет значение в Redis кеше.
// Cold Storage получает запись через очередь Write-Behind, а без неё синхронно.
func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	start := time.Now()
	defer r.metrics.recordLatency(start)

	if key == "" {
		return ErrInvalidKey
	}

	if err := r.client.Set(ctx, key, value, r.config.clampTTL(ttl)).Err(); err != nil {
		logging.Error("Redis Set error for key %s: %v", key, err)
		return fmt.Errorf("redis set error: %w", err)
	}

	if r.writeBehind != nil {
		r.writeBehind.enqueue(key, value)
	} else if r.coldStorage != nil {
		return r.coldStorage.Store(ctx, key, value)
	}
	return nil
}

// Delete удаляет ключ из кеша.
func (r *RedisCache) Delete(ctx context.Context, key string) error {
	start := time.Now()
	defer r.metrics.recordLatency(start)

	if err := r.client.Del(ctx, key).Err(); err != nil {
		logging.Error("Redis Delete error for key %s: %v", key, err)
		return fmt.Errorf("redis delete error: %w", err)
	}
	return nil
}

// Exists проверяет существование ключа в кеше.
func (r *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	start := time.Now()
	defer r.metrics.recordLatency(start)

	count, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists error: %w", err)
	}
	return count > 0, nil
}

// BatchGet получает несколько значений за один запрос. Промахи в
// результат не попадают.
func (r *RedisCache) BatchGet(ctx context.Context, keys []string) (map[string][]byte, error) {
	start := time.Now()
	defer r.metrics.recordLatency(start)

	result := make(map[string][]byte)
	if len(keys) == 0 {
		return result, nil
	}

	pipe := r.client.Pipeline()
	cmds := make(map[string]*redis.StringCmd, len(keys))
	for _, key := range keys {
		cmds[key] = pipe.Get(ctx, key)
	}

	_, err := pipe.Exec(ctx)
	if err != nil && !errors.Is(err, redis.Nil) {
		logging.Error("Redis BatchGet pipeline error: %v", err)
		return nil, fmt.Errorf("redis batch get error: %w", err)
	}

	for key, cmd := range cmds {
		val, err := cmd.Bytes()
		switch {
		case err == nil:
			result[key] = val
			r.metrics.hit()
		case errors.Is(err, redis.Nil):
			r.metrics.miss()
		default:
			logging.Error("Redis BatchGet error for key %s: %v", key, err)
			r.metrics.miss()
		}
	}
	return result, nil
}

// BatchSet сохраняет несколько значений за один запрос.
func (r *RedisCache) BatchSet(ctx context.Context, items map[string][]byte, ttl time.Duration) error {
	start := time.Now()
	defer r.metrics.recordLatency(start)

	if len(items) == 0 {
		return nil
	}

	ttl = r.config.clampTTL(ttl)
	pipe := r.client.Pipeline()
	for key, value := range items {
		pipe.Set(ctx, key, value, ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		logging.Error("Redis BatchSet pipeline error: %v", err)
		return fmt.Errorf("redis batch set error: %w", err)
	}

	switch {
	case r.writeBehind != nil:
		for key, value := range items {
			r.writeBehind.enqueue(key, value)
		}
	case r.coldStorage != nil:
		return r.coldStorage.BatchStore(ctx, items)
	}
	return nil
}

// Close закрывает соединение с Redis и останавливает Write-Behind.
func (r *RedisCache) Close() error {
	if r.writeBehind != nil {
		r.writeBehind.close()
	}

	if err := r.client.Close(); err != nil {
		logging.Error("Error closing Redis connection: %v", err)
		return err
	}

	logging.Info("Redis cache closed")
	return nil
}

// GetMetrics возвращает текущие метрики кеша.
func (r *RedisCache) GetMetrics() *CacheMetrics {
	var keys int64
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if n, err := r.client.DBSize(ctx).Result(); err == nil {
		keys = n
	}

	var pending int64
	if r.writeBehind != nil {
		pending = r.writeBehind.pending()
	}
	return r.metrics.snapshot(keys, pending)
}
