package cache

import (
	"context"
	"sync/atomic"
	"time"
)

type coldHitKey struct{}

// TrackColdHits возвращает контекст, в котором Get отмечает во флаге
// значения, поднятые из Cold Storage.
func TrackColdHits(ctx context.Context) (context.Context, *atomic.Bool) {
	flag := new(atomic.Bool)
	return context.WithValue(ctx, coldHitKey{}, flag), flag
}

func markColdHit(ctx context.Context) {
	if flag, ok := ctx.Value(coldHitKey{}).(*atomic.Bool); ok {
		flag.Store(true)
	}
}

// metricsRecorder собирает счётчики и latency, общие для реализаций кеша.
type metricsRecorder struct {
	requests  int64
	hits      int64
	misses    int64
	coldHits  int64
	evictions int64

	// Статистика latency в наносекундах
	latencySum   int64
	latencyCount int64
	maxLatency   int64
}

func (m *metricsRecorder) hit()     { atomic.AddInt64(&m.requests, 1); atomic.AddInt64(&m.hits, 1) }
func (m *metricsRecorder) miss()    { atomic.AddInt64(&m.requests, 1); atomic.AddInt64(&m.misses, 1) }
func (m *metricsRecorder) coldHit() { atomic.AddInt64(&m.coldHits, 1) }
func (m *metricsRecorder) evicted() { atomic.AddInt64(&m.evictions, 1) }

// recordLatency записывает latency операции, начатой в start.
func (m *metricsRecorder) recordLatency(start time.Time) {
	latency := time.Since(start).Nanoseconds()

	atomic.AddInt64(&m.latencySum, latency)
	atomic.AddInt64(&m.latencyCount, 1)

	// Обновляем максимальную latency
	for {
		current := atomic.LoadInt64(&m.maxLatency)
		if latency <= current || atomic.CompareAndSwapInt64(&m.maxLatency, current, latency) {
			break
		}
	}
}

// snapshot возвращает копию метрик.
func (m *metricsRecorder) snapshot(totalKeys, pending int64) *CacheMetrics {
	out := &CacheMetrics{
		TotalRequests: atomic.LoadInt64(&m.requests),
		CacheHits:     atomic.LoadInt64(&m.hits),
		CacheMisses:   atomic.LoadInt64(&m.misses),
		ColdHits:      atomic.LoadInt64(&m.coldHits),
		Evictions:     atomic.LoadInt64(&m.evictions),
		TotalKeys:     totalKeys,
		PendingWrites: pending,
		LastUpdate:    time.Now(),
	}

	if out.TotalRequests > 0 {
		out.HitRatio = float64(out.CacheHits) / float64(out.TotalRequests)
	}
	if count := atomic.LoadInt64(&m.latencyCount); count > 0 {
		out.AvgLatencyMs = float64(atomic.LoadInt64(&m.latencySum)) / float64(count) / 1e6 // нс в мс
		out.MaxLatencyMs = float64(atomic.LoadInt64(&m.maxLatency)) / 1e6
	}
	return out
}
