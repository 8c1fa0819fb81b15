package cache

import (
	"context"
	"sync"
	"time"

	"github.com/annel0/noisefield/internal/logging"
)

// writeItem представляет элемент в очереди Write-Behind.
type writeItem struct {
	Key   string
	Value []byte
}

// writeBehind асинхронно пачками переносит записи кеша в Cold Storage.
type writeBehind struct {
	cold      ColdStorage
	queue     chan writeItem
	stop      chan struct{}
	wg        sync.WaitGroup
	interval  time.Duration
	batchSize int
	stopOnce  sync.Once

	// mu защищает closed: отправка в очередь идёт под RLock, close берёт Lock.
	mu     sync.RWMutex
	closed bool
}

func newWriteBehind(cold ColdStorage, interval time.Duration, batchSize int) *writeBehind {
	wb := &writeBehind{
		cold:      cold,
		queue:     make(chan writeItem, batchSize*2),
		stop:      make(chan struct{}),
		interval:  interval,
		batchSize: batchSize,
	}
	wb.start()
	return wb
}

// enqueue ставит запись в очередь. При полной или остановленной очереди
// пишет синхронно, чтобы запись не потерялась.
func (wb *writeBehind) enqueue(key string, value []byte) {
	wb.mu.RLock()
	if !wb.closed {
		select {
		case wb.queue <- writeItem{Key: key, Value: value}:
			wb.mu.RUnlock()
			return
		default:
			logging.Warn("Write-behind queue full, writing synchronously: %s", key)
		}
	}
	wb.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := wb.cold.Store(ctx, key, value); err != nil {
		logging.Error("Failed to write to cold storage: %v", err)
	}
}

func (wb *writeBehind) pending() int64 {
	return int64(len(wb.queue))
}

// start запускает горутину для асинхронной записи в Cold Storage.
func (wb *writeBehind) start() {
	wb.wg.Add(1)
	go func() {
		defer wb.wg.Done()

		ticker := time.NewTicker(wb.interval)
		defer ticker.Stop()

		batch := make(map[string][]byte)

		for {
			select {
			case item := <-wb.queue:
				batch[item.Key] = item.Value

				// Если batch заполнен, записываем
				if len(batch) >= wb.batchSize {
					wb.flush(batch)
					batch = make(map[string][]byte)
				}

			case <-ticker.C:
				if len(batch) > 0 {
					wb.flush(batch)
					batch = make(map[string][]byte)
				}

			case <-wb.stop:
				// Дочитываем очередь и записываем остаток перед выходом
			drain:
				for {
					select {
					case item := <-wb.queue:
						batch[item.Key] = item.Value
					default:
						break drain
					}
				}
				wb.flush(batch)
				return
			}
		}
	}()

	logging.Debug("Write-Behind started (interval: %v, batch size: %d)", wb.interval, wb.batchSize)
}

// close останавливает воркер, дождавшись записи всех элементов очереди.
func (wb *writeBehind) close() {
	wb.stopOnce.Do(func() {
		wb.mu.Lock()
		wb.closed = true
		wb.mu.Unlock()

		close(wb.stop)
		wb.wg.Wait()
	})
}

// flush записывает batch в Cold Storage.
func (wb *writeBehind) flush(batch map[string][]byte) {
	if len(batch) == 0 {
		return
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := wb.cold.BatchStore(ctx, batch); err != nil {
		logging.Error("Write-Behind batch store failed (%d items): %v", len(batch), err)
		return
	}
	logging.Debug("Write-Behind batch stored: %d items in %v", len(batch), time.Since(start))
}
