// Package registry хранит живые контексты шума под непрозрачными
// дескрипторами: создание, освобождение ровно один раз и вычисление по
// дескриптору. Сам контекст неизменяем, поэтому вычисления идут вне
// блокировки реестра.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/annel0/noisefield/internal/logging"
	"github.com/annel0/noisefield/internal/noise"
)

var (
	// ErrCapacityExceeded: достигнут предел одновременно живых контекстов.
	ErrCapacityExceeded = errors.New("registry: достигнут предел числа контекстов")
	// ErrUnknownHandle: дескриптор не выдавался или уже освобождён.
	ErrUnknownHandle = errors.New("registry: неизвестный дескриптор")
)

// Handle: непрозрачный дескриптор контекста (UUID).
type Handle string

// Info описывает живой контекст.
type Info struct {
	Handle      Handle    `json:"id"`
	Seed        int64     `json:"seed"`
	Explicit    bool      `json:"explicit_permutation"`
	Fingerprint string    `json:"fingerprint"`
	CreatedAt   time.Time `json:"created_at"`
	Evaluations uint64    `json:"evaluations"`
}

type entry struct {
	ctx   *noise.Context
	info  Info
	evals atomic.Uint64
}

// Options задаёт параметры реестра.
type Options struct {
	// MaxContexts ограничивает число живых контекстов; 0 означает без предела.
	MaxContexts int
	// Registerer для метрик; nil означает prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer
	Logger     *logging.Logger
}

// Registry: потокобезопасная таблица дескрипторов.
type Registry struct {
	mu          sync.RWMutex
	entries     map[Handle]*entry
	maxContexts int
	logger      *logging.Logger
	metrics     *metrics
}

// New создаёт пустой реестр и регистрирует его метрики.
func New(opts Options) *Registry {
	logger := opts.Logger
	if logger == nil {
		logger = logging.GetRegistryLogger()
	}
	reg := opts.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	return &Registry{
		entries:     make(map[Handle]*entry),
		maxContexts: opts.MaxContexts,
		logger:      logger,
		metrics:     newMetrics(reg),
	}
}

// Create строит контекст из сида и возвращает его дескриптор.
func (r *Registry) Create(seed int64) (Handle, error) {
	// Таблицы строятся до захвата блокировки
	return r.add(noise.NewContext(seed), false)
}

// CreateFromPermutation строит контекст из явной перестановки.
func (r *Registry) CreateFromPermutation(p []int) (Handle, error) {
	ctx, err := noise.NewContextFromPermutation(p)
	if err != nil {
		r.metrics.rejected.WithLabelValues("invalid_permutation").Inc()
		return "", err
	}
	return r.add(ctx, true)
}

func (r *Registry) add(ctx *noise.Context, explicit bool) (Handle, error) {
	e := &entry{
		ctx: ctx,
		info: Info{
			Handle:      Handle(uuid.NewString()),
			Seed:        ctx.Seed(),
			Explicit:    explicit,
			Fingerprint: Fingerprint(ctx),
			CreatedAt:   time.Now().UTC(),
		},
	}

	r.mu.Lock()
	if r.maxContexts > 0 && len(r.entries) >= r.maxContexts {
		r.mu.Unlock()
		r.metrics.rejected.WithLabelValues("capacity").Inc()
		r.logger.Warn("⚠️ Отказ в создании контекста: предел %d исчерпан", r.maxContexts)
		return "", fmt.Errorf("%w (%d)", ErrCapacityExceeded, r.maxContexts)
	}
	r.entries[e.info.Handle] = e
	r.metrics.contexts.Set(float64(len(r.entries)))
	r.mu.Unlock()

	r.metrics.created.Inc()
	r.logger.Debug("Создан контекст %s (seed=%d, fingerprint=%s)", e.info.Handle, e.info.Seed, e.info.Fingerprint)
	return e.info.Handle, nil
}

// Destroy освобождает дескриптор. Повторный вызов возвращает ErrUnknownHandle.
// Вычисления, уже получившие контекст, завершаются нормально.
func (r *Registry) Destroy(h Handle) error {
	r.mu.Lock()
	if _, ok := r.entries[h]; !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownHandle, h)
	}
	delete(r.entries, h)
	r.metrics.contexts.Set(float64(len(r.entries)))
	r.mu.Unlock()

	r.metrics.destroyed.Inc()
	r.logger.Debug("Освобождён контекст %s", h)
	return nil
}

func (r *Registry) lookup(h Handle) (*entry, error) {
	r.mu.RLock()
	e, ok := r.entries[h]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHandle, h)
	}
	return e, nil
}

// CountEvaluations учитывает n вычислений размерности dims, выполненных
// напрямую на контексте из Get (пакетные запросы).
func (r *Registry) CountEvaluations(h Handle, dims, n int) {
	if n <= 0 {
		return
	}
	e, err := r.lookup(h)
	if err != nil {
		return
	}
	e.evals.Add(uint64(n))
	r.metrics.evaluations.WithLabelValues(strconv.Itoa(dims)).Add(float64(n))
}

// Eval2 вычисляет 2D шум контекста h. ErrUnknownHandle для неизвестного
// или освобождённого дескриптора.
func (r *Registry) Eval2(h Handle, x, y float64) (float64, error) {
	e, err := r.lookup(h)
	if err != nil {
		return 0, err
	}
	e.evals.Add(1)
	r.metrics.evaluations.WithLabelValues("2").Inc()
	return e.ctx.Eval2(x, y), nil
}

// Eval3 вычисляет 3D шум контекста h.
func (r *Registry) Eval3(h Handle, x, y, z float64) (float64, error) {
	e, err := r.lookup(h)
	if err != nil {
		return 0, err
	}
	e.evals.Add(1)
	r.metrics.evaluations.WithLabelValues("3").Inc()
	return e.ctx.Eval3(x, y, z), nil
}

// Eval4 вычисляет 4D шум контекста h.
func (r *Registry) Eval4(h Handle, x, y, z, w float64) (float64, error) {
	e, err := r.lookup(h)
	if err != nil {
		return 0, err
	}
	e.evals.Add(1)
	r.metrics.evaluations.WithLabelValues("4").Inc()
	return e.ctx.Eval4(x, y, z, w), nil
}

// Get возвращает описание и контекст дескриптора.
func (r *Registry) Get(h Handle) (Info, *noise.Context, error) {
	e, err := r.lookup(h)
	if err != nil {
		return Info{}, nil, err
	}
	return e.snapshot(), e.ctx, nil
}

// List возвращает описания всех живых контекстов, старые первыми.
func (r *Registry) List() []Info {
	r.mu.RLock()
	out := make([]Info, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.snapshot())
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Handle < out[j].Handle
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Len возвращает число живых контекстов.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Capacity возвращает предел числа контекстов (0 означает без предела).
func (r *Registry) Capacity() int {
	return r.maxContexts
}

func (e *entry) snapshot() Info {
	info := e.info
	info.Evaluations = e.evals.Load()
	return info
}

// Fingerprint возвращает 64-битный отпечаток перестановки контекста в hex.
// Контексты с одинаковой перестановкой дают одинаковое поле и один отпечаток.
func Fingerprint(ctx *noise.Context) string {
	var buf [256]byte
	for i, v := range ctx.Permutation() {
		buf[i] = byte(v)
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(buf[:]))
}
