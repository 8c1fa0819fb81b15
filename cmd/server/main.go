package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/noisefield/internal/api"
	"github.com/annel0/noisefield/internal/cache"
	"github.com/annel0/noisefield/internal/config"
	"github.com/annel0/noisefield/internal/logging"
	"github.com/annel0/noisefield/internal/observability"
	"github.com/annel0/noisefield/internal/registry"
	"github.com/annel0/noisefield/internal/storage"
	"github.com/annel0/noisefield/internal/storage_adapter"
	"github.com/annel0/noisefield/internal/tiles"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (по умолчанию NOISEFIELD_CONFIG)")
	flag.Parse()

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	logOpts, err := loggingOptions(cfg)
	if err != nil {
		log.Fatalf("❌ Ошибка конфигурации логирования: %v", err)
	}
	if err := logging.InitDefaultLoggerWithOptions("server", logOpts); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()
	logging.GetLoggerManager().Configure(logOpts)
	defer logging.GetLoggerManager().CloseAll()

	logging.Info("🌊 Запуск noisefield...")

	restAddr := fmt.Sprintf(":%d", cfg.Server.GetRESTPort())
	logging.Info("📡 Конфигурация: REST API=%s, контекстов до %d, воркеров %d, кеш %s",
		restAddr, cfg.Noise.GetMaxContexts(), cfg.Noise.GetWorkers(), cfg.Cache.GetBackend())

	// === ТЕЛЕМЕТРИЯ ===
	if cfg.Telemetry.Enabled {
		shutdown, err := observability.InitTelemetry(context.Background(), cfg.Telemetry.GetServiceName())
		if err != nil {
			logging.Warn("⚠️ Трассировка отключена: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logging.Warn("⚠️ Ошибка остановки трассировки: %v", err)
				}
			}()
			logging.Info("🔭 Трассировка OTLP включена (%s)", cfg.Telemetry.GetServiceName())
		}
	}

	// === ИНИЦИАЛИЗАЦИЯ КОМПОНЕНТОВ ===
	var store *storage.TileStore
	if path := cfg.Storage.GetPath(); path != "" {
		logging.Debug("Открытие хранилища тайлов в %s...", path)
		store, err = storage.NewTileStore(path, 0)
		if err != nil {
			log.Fatalf("❌ Ошибка открытия хранилища: %v", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				logging.Error("❌ Ошибка закрытия хранилища: %v", err)
			}
		}()
		logging.Info("💾 Хранилище тайлов: %s", store.Path())
	}

	tileCache, err := newCache(cfg, store)
	if err != nil {
		log.Fatalf("❌ Ошибка инициализации кеша: %v", err)
	}
	if tileCache != nil {
		defer tileCache.Close()
	}

	reg := registry.New(registry.Options{MaxContexts: cfg.Noise.GetMaxContexts()})

	tileService := tiles.NewService(tiles.Options{
		Registry:    reg,
		Cache:       tileCache,
		Store:       store,
		Workers:     cfg.Noise.GetWorkers(),
		MaxTileSize: cfg.Noise.GetMaxTileSize(),
		CacheTTL:    cfg.Cache.GetTTL(),
	})

	apiServer := api.NewServerIntegration(api.Config{
		Port:     restAddr,
		Registry: reg,
		Tiles:    tileService,
		MaxBatch: cfg.Noise.GetMaxBatchSize(),
	})

	logging.Debug("Запуск REST API сервера...")
	if err := apiServer.Start(); err != nil {
		logging.Error("❌ Ошибка запуска REST API: %v", err)
		log.Fatalf("❌ Ошибка запуска REST API: %v", err)
	}

	logging.Info("✅ Все сервисы запущены")
	logging.Info("💡 Примеры использования REST API:")
	logging.Info("   curl -X POST http://localhost%s/api/contexts -d '{\"seed\":123}'", restAddr)
	logging.Info("   curl http://localhost%s/api/contexts/<id>/noise2?x=1&y=1", restAddr)

	// Канал для получения сигналов ОС
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info("📡 Получен сигнал %v, завершение работы...", sig)
	case err := <-apiServer.Errors():
		logging.Error("❌ REST API сервер упал: %v", err)
	}

	// === GRACEFUL SHUTDOWN ===
	if err := apiServer.Stop(30 * time.Second); err != nil {
		logging.Error("❌ Ошибка остановки REST API: %v", err)
	}

	logging.Info("👋 Сервер успешно остановлен")
}

func loggingOptions(cfg *config.Config) (logging.Options, error) {
	level, err := logging.ParseLevel(cfg.Logging.GetLevel())
	if err != nil {
		return logging.Options{}, err
	}

	opts := logging.DefaultOptions
	opts.ConsoleLevel = level
	if cfg.Logging.Dir != "" {
		opts.Dir = cfg.Logging.Dir
	}
	return opts, nil
}

// newCache выбирает горячий кеш тайлов; nil при backend "none".
// Кеш читает хранилище при промахе и пишет в него новые тайлы.
func newCache(cfg *config.Config, store *storage.TileStore) (cache.CacheRepo, error) {
	cacheCfg := cache.CacheConfig{
		RedisURL:             cfg.Cache.GetRedisAddr(),
		RedisPassword:        cfg.Cache.Password,
		RedisDB:              cfg.Cache.DB,
		DefaultTTL:           cfg.Cache.GetTTL(),
		MaxEntries:           cfg.Cache.GetMaxEntries(),
		WriteBehindEnabled:   cfg.Cache.IsWriteBehind(),
		WriteBehindInterval:  cfg.Cache.GetWriteBehindInterval(),
		WriteBehindBatchSize: cfg.Cache.GetWriteBehindBatch(),
	}

	var cold cache.ColdStorage
	if store != nil {
		cold = storage_adapter.NewColdStorage(store)
	}

	switch backend := cfg.Cache.GetBackend(); backend {
	case "none":
		logging.Info("Кеш тайлов отключён")
		return nil, nil
	case "memory":
		logging.Info("🧠 Кеш тайлов в памяти, до %d записей (write-behind: %v)", cacheCfg.MaxEntries, cacheCfg.WriteBehindEnabled && cold != nil)
		return cache.NewMemoryCache(cacheCfg, cold), nil
	case "redis":
		return cache.NewRedisCache(cacheCfg, cold)
	default:
		return nil, fmt.Errorf("неизвестный backend кеша %q", backend)
	}
}
