// Package tiles отдаёт закодированные тайлы полей шума: кеш, затем
// постоянное хранилище, затем растеризация с записью в оба уровня.
// Если задан кеш, он сам читает хранилище при промахе и пишет в него
// (синхронно или через write-behind); без кеша сервис обращается к
// хранилищу напрямую.
package tiles

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/annel0/noisefield/internal/cache"
	"github.com/annel0/noisefield/internal/field"
	"github.com/annel0/noisefield/internal/logging"
	"github.com/annel0/noisefield/internal/observability"
	"github.com/annel0/noisefield/internal/registry"
	"github.com/annel0/noisefield/internal/storage"
	"github.com/annel0/noisefield/internal/storage_adapter"
)

// Источник, из которого получен тайл.
const (
	SourceCache  = "cache"
	SourceStore  = "store"
	SourceRender = "render"
	// SourceTransient: тайл построен без записи в кеш и хранилище.
	SourceTransient = "transient"
)

// Tile содержит закодированный тайл и его карту высот.
type Tile struct {
	Key       string
	Spec      field.TileSpec
	Payload   []byte
	Heightmap *field.Heightmap
	Source    string
}

// Options задаёт зависимости сервиса. Cache и Store необязательны.
// Cache должен быть построен с Cold Storage поверх того же Store
// (storage_adapter.NewColdStorage), иначе тайлы не попадут в хранилище.
type Options struct {
	Registry    *registry.Registry
	Cache       cache.CacheRepo
	Store       *storage.TileStore
	Workers     int
	MaxTileSize int
	CacheTTL    time.Duration
	Registerer  prometheus.Registerer
	Logger      *logging.Logger
}

// Service строит тайлы по дескрипторам реестра.
type Service struct {
	registry    *registry.Registry
	cache       cache.CacheRepo
	store       *storage.TileStore
	cold        cache.ColdStorage
	workers     int
	maxTileSize int
	cacheTTL    time.Duration
	logger      *logging.Logger
	metrics     *metrics

	renders singleflight.Group
}

// NewService создаёт сервис тайлов.
func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = logging.GetTilesLogger()
	}
	reg := opts.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	maxTileSize := opts.MaxTileSize
	if maxTileSize <= 0 {
		maxTileSize = field.MaxTileSize
	}

	s := &Service{
		registry:    opts.Registry,
		cache:       opts.Cache,
		store:       opts.Store,
		workers:     opts.Workers,
		maxTileSize: maxTileSize,
		cacheTTL:    opts.CacheTTL,
		logger:      logger,
		metrics:     newMetrics(reg),
	}
	if opts.Store != nil && opts.Cache == nil {
		s.cold = storage_adapter.NewColdStorage(opts.Store)
	}
	return s
}

// MaxTileSize возвращает допустимый предел стороны тайла.
func (s *Service) MaxTileSize() int {
	return s.maxTileSize
}

// Render возвращает тайл spec поля контекста h. Одновременные запросы
// одного тайла растеризуются один раз.
func (s *Service) Render(ctx context.Context, h registry.Handle, spec field.TileSpec) (*Tile, error) {
	ctx, span := observability.Tracer().Start(ctx, "tiles.Render", trace.WithAttributes(
		attribute.String("noise.kind", string(spec.Kind)),
		attribute.Int("tile.x", spec.Coords.X),
		attribute.Int("tile.y", spec.Coords.Y),
		attribute.Int("tile.size", spec.Size),
	))
	defer span.End()

	tile, err := s.render(ctx, h, spec)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("tile.source", tile.Source))
	s.metrics.served.WithLabelValues(tile.Source).Inc()
	return tile, nil
}

// RenderTransient строит тайл без обращения к кешу и хранилищу. Для
// одноразовых кадров (поток анимации), которые не будут запрошены снова.
func (s *Service) RenderTransient(ctx context.Context, h registry.Handle, spec field.TileSpec) (*Tile, error) {
	key, src, err := s.prepare(h, spec)
	if err != nil {
		return nil, err
	}

	hm, payload, err := s.build(ctx, src, key, spec)
	if err != nil {
		return nil, err
	}
	s.metrics.served.WithLabelValues(SourceTransient).Inc()
	return &Tile{Key: key, Spec: spec, Payload: payload, Heightmap: hm, Source: SourceTransient}, nil
}

// prepare проверяет тайл, находит контекст и строит ключ и источник.
func (s *Service) prepare(h registry.Handle, spec field.TileSpec) (string, field.Source, error) {
	if err := spec.Validate(s.maxTileSize); err != nil {
		return "", nil, err
	}

	info, nctx, err := s.registry.Get(h)
	if err != nil {
		return "", nil, err
	}

	src, err := field.NewSource(spec.Kind, nctx, spec.Z, spec.W)
	if err != nil {
		return "", nil, err
	}
	return spec.Key(info.Fingerprint), src, nil
}

func (s *Service) render(ctx context.Context, h registry.Handle, spec field.TileSpec) (*Tile, error) {
	key, src, err := s.prepare(h, spec)
	if err != nil {
		return nil, err
	}

	if tile, ok := s.fromCache(ctx, key, spec); ok {
		return tile, nil
	}
	if tile, ok := s.fromStore(ctx, key, spec); ok {
		return tile, nil
	}

	// Растеризация общая для всех ожидающих, поэтому не привязана к отмене
	// первого запроса.
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.renders.Do(key, func() (interface{}, error) {
		return s.rasterize(shared, src, key, spec)
	})
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return v.(*Tile), nil
}

func (s *Service) rasterize(ctx context.Context, src field.Source, key string, spec field.TileSpec) (*Tile, error) {
	hm, payload, err := s.build(ctx, src, key, spec)
	if err != nil {
		return nil, err
	}

	if s.cold != nil {
		if err := s.cold.Store(ctx, key, payload); err != nil {
			s.logger.Warn("⚠️ Не удалось сохранить тайл %s: %v", key, err)
		}
	}
	s.putCache(ctx, key, payload)

	return &Tile{Key: key, Spec: spec, Payload: payload, Heightmap: hm, Source: SourceRender}, nil
}

// build растеризует и кодирует тайл.
func (s *Service) build(ctx context.Context, src field.Source, key string, spec field.TileSpec) (*field.Heightmap, []byte, error) {
	start := time.Now()

	hm, err := field.Rasterize(ctx, src, spec, s.workers)
	if err != nil {
		return nil, nil, fmt.Errorf("растеризация тайла %s: %w", key, err)
	}
	payload, err := field.EncodeHeightmap(hm)
	if err != nil {
		return nil, nil, fmt.Errorf("кодирование тайла %s: %w", key, err)
	}

	s.metrics.renderDuration.WithLabelValues(string(spec.Kind)).Observe(time.Since(start).Seconds())
	s.logger.Debug("Тайл %s построен за %v (%d байт)", key, time.Since(start), len(payload))
	return hm, payload, nil
}

func (s *Service) fromCache(ctx context.Context, key string, spec field.TileSpec) (*Tile, bool) {
	if s.cache == nil {
		return nil, false
	}

	ctx, fromCold := cache.TrackColdHits(ctx)
	payload, err := s.cache.Get(ctx, key)
	if err != nil {
		if !cache.IsCacheMiss(err) {
			s.logger.Warn("⚠️ Ошибка кеша для %s: %v", key, err)
		}
		return nil, false
	}

	source := SourceCache
	if fromCold.Load() {
		source = SourceStore
	}
	return s.decode(key, spec, payload, source)
}

// fromStore читает хранилище напрямую; используется только без кеша.
func (s *Service) fromStore(ctx context.Context, key string, spec field.TileSpec) (*Tile, bool) {
	if s.cold == nil {
		return nil, false
	}

	payload, err := s.cold.Load(ctx, key)
	if err != nil {
		if !cache.IsCacheMiss(err) {
			s.logger.Warn("⚠️ Ошибка хранилища для %s: %v", key, err)
		}
		return nil, false
	}

	return s.decode(key, spec, payload, SourceStore)
}

// decode разбирает сохранённый тайл. Повреждённая запись считается промахом
// и будет перезаписана.
func (s *Service) decode(key string, spec field.TileSpec, payload []byte, source string) (*Tile, bool) {
	hm, err := field.DecodeHeightmap(payload)
	if err == nil && (hm.Width != spec.Size || hm.Height != spec.Size) {
		err = fmt.Errorf("%w: размер %dx%d", field.ErrCorruptHeightmap, hm.Width, hm.Height)
	}
	if err != nil {
		s.logger.Warn("⚠️ Повреждённый тайл %s (%s): %v", key, source, err)
		s.metrics.corrupt.WithLabelValues(source).Inc()
		return nil, false
	}
	return &Tile{Key: key, Spec: spec, Payload: payload, Heightmap: hm, Source: source}, true
}

func (s *Service) putCache(ctx context.Context, key string, payload []byte) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, payload, s.cacheTTL); err != nil && !errors.Is(err, cache.ErrCacheClosed) {
		s.logger.Warn("⚠️ Не удалось положить тайл %s в кеш: %v", key, err)
	}
}

// Purge удаляет из постоянного хранилища все тайлы контекста h и
// возвращает их число. Горячий кеш очищается по TTL.
func (s *Service) Purge(h registry.Handle) (int, error) {
	info, _, err := s.registry.Get(h)
	if err != nil {
		return 0, err
	}
	if s.store == nil {
		return 0, nil
	}

	prefix := fmt.Sprintf("tile:%s:", info.Fingerprint)
	n, err := s.store.Count(prefix)
	if err != nil {
		return 0, err
	}
	if err := s.store.DeletePrefix(prefix); err != nil {
		return 0, err
	}
	s.logger.Info("🧹 Удалено %d тайлов контекста %s", n, h)
	return n, nil
}

// Stats описывает уровни хранения тайлов.
type Stats struct {
	StoredTiles int                 `json:"stored_tiles"`
	Cache       *cache.CacheMetrics `json:"cache,omitempty"`
}

// Stats возвращает состояние кеша и хранилища.
func (s *Service) Stats() Stats {
	var st Stats
	if s.store != nil {
		if n, err := s.store.Count("tile:"); err == nil {
			st.StoredTiles = n
		}
	}
	if s.cache != nil {
		st.Cache = s.cache.GetMetrics()
	}
	return st
}
