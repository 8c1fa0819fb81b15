package config

import (
	"os"
	"runtime"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации сервиса.
// Нулевые значения полей заменяются переменными окружения или дефолтами
// через методы Get*.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Noise     NoiseConfig     `yaml:"noise"`
	Storage   StorageConfig   `yaml:"storage"`
	Cache     CacheConfig     `yaml:"cache"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

type ServerConfig struct {
	RESTPort int `yaml:"rest_port"`
}

type NoiseConfig struct {
	MaxContexts  int `yaml:"max_contexts"`
	Workers      int `yaml:"workers"`
	MaxTileSize  int `yaml:"max_tile_size"`
	MaxBatchSize int `yaml:"max_batch_size"`
}

type StorageConfig struct {
	// Path каталога badger; пустой путь отключает постоянное хранилище.
	Path string `yaml:"path"`
}

type CacheConfig struct {
	Backend    string `yaml:"backend"` // memory | redis | none
	RedisAddr  string `yaml:"redis_addr"`
	Password   string `yaml:"password"`
	DB         int    `yaml:"db"`
	TTLSeconds int    `yaml:"ttl_seconds"`
	MaxEntries int    `yaml:"max_entries"`

	// Write-behind в хранилище тайлов; без него запись синхронная.
	WriteBehind         bool `yaml:"write_behind"`
	WriteBehindInterval int  `yaml:"write_behind_interval_ms"`
	WriteBehindBatch    int  `yaml:"write_behind_batch"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
}

// GetRESTPort возвращает REST API порт с поддержкой fallback значений
func (s *ServerConfig) GetRESTPort() int {
	return getIntWithEnvFallback(s.RESTPort, "NOISEFIELD_REST_PORT", 8088)
}

// GetMaxContexts возвращает предел числа одновременно живых контекстов
func (n *NoiseConfig) GetMaxContexts() int {
	return getIntWithEnvFallback(n.MaxContexts, "NOISEFIELD_MAX_CONTEXTS", 1024)
}

// GetWorkers возвращает число воркеров растеризации (по умолчанию по числу CPU)
func (n *NoiseConfig) GetWorkers() int {
	return getIntWithEnvFallback(n.Workers, "NOISEFIELD_WORKERS", runtime.NumCPU())
}

// GetMaxTileSize возвращает максимальную сторону тайла в пикселях
func (n *NoiseConfig) GetMaxTileSize() int {
	return getIntWithEnvFallback(n.MaxTileSize, "NOISEFIELD_MAX_TILE_SIZE", 1024)
}

// GetMaxBatchSize возвращает максимальное число точек в пакетном запросе
func (n *NoiseConfig) GetMaxBatchSize() int {
	return getIntWithEnvFallback(n.MaxBatchSize, "NOISEFIELD_MAX_BATCH", 4096)
}

// GetPath возвращает путь хранилища тайлов (config -> env -> отключено)
func (s *StorageConfig) GetPath() string {
	return getStringWithEnvFallback(s.Path, "NOISEFIELD_STORAGE_PATH", "")
}

// GetBackend возвращает тип кэша тайлов
func (c *CacheConfig) GetBackend() string {
	return getStringWithEnvFallback(c.Backend, "NOISEFIELD_CACHE", "memory")
}

// GetRedisAddr возвращает адрес Redis
func (c *CacheConfig) GetRedisAddr() string {
	return getStringWithEnvFallback(c.RedisAddr, "NOISEFIELD_REDIS_ADDR", "localhost:6379")
}

// GetTTL возвращает время жизни записи кэша
func (c *CacheConfig) GetTTL() time.Duration {
	return time.Duration(getIntWithEnvFallback(c.TTLSeconds, "NOISEFIELD_CACHE_TTL", 600)) * time.Second
}

// GetMaxEntries возвращает предел записей in-memory кэша
func (c *CacheConfig) GetMaxEntries() int {
	return getIntWithEnvFallback(c.MaxEntries, "NOISEFIELD_CACHE_ENTRIES", 4096)
}

// IsWriteBehind сообщает, включена ли отложенная запись в хранилище
func (c *CacheConfig) IsWriteBehind() bool {
	return getBoolWithEnvFallback(c.WriteBehind, "NOISEFIELD_CACHE_WRITE_BEHIND")
}

// GetWriteBehindInterval возвращает период сброса очереди write-behind
func (c *CacheConfig) GetWriteBehindInterval() time.Duration {
	return time.Duration(getIntWithEnvFallback(c.WriteBehindInterval, "NOISEFIELD_CACHE_WRITE_BEHIND_MS", 5000)) * time.Millisecond
}

// GetWriteBehindBatch возвращает размер пачки write-behind
func (c *CacheConfig) GetWriteBehindBatch() int {
	return getIntWithEnvFallback(c.WriteBehindBatch, "NOISEFIELD_CACHE_WRITE_BEHIND_BATCH", 100)
}

// GetLevel возвращает уровень логирования
func (l *LoggingConfig) GetLevel() string {
	return getStringWithEnvFallback(l.Level, "NOISEFIELD_LOG_LEVEL", "info")
}

// GetServiceName возвращает имя сервиса для трассировки
func (t *TelemetryConfig) GetServiceName() string {
	return getStringWithEnvFallback(t.ServiceName, "OTEL_SERVICE_NAME", "noisefield")
}

// getIntWithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getIntWithEnvFallback(configValue int, envVar string, defaultValue int) int {
	// Если значение задано в конфиге и больше 0, используем его
	if configValue > 0 {
		return configValue
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if v, err := strconv.Atoi(envVal); err == nil && v > 0 {
			return v
		}
	}

	return defaultValue
}

// getBoolWithEnvFallback: true в конфиге побеждает, иначе читается env
func getBoolWithEnvFallback(configValue bool, envVar string) bool {
	if configValue {
		return true
	}
	if envVal := os.Getenv(envVar); envVal != "" {
		if v, err := strconv.ParseBool(envVal); err == nil {
			return v
		}
	}
	return false
}

func getStringWithEnvFallback(configValue, envVar, defaultValue string) string {
	if configValue != "" {
		return configValue
	}
	if envVal := os.Getenv(envVar); envVal != "" {
		return envVal
	}
	return defaultValue
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать путь из ENV NOISEFIELD_CONFIG; если и он
// не задан, возвращает пустую конфигурацию (все значения берутся из Get*).
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("NOISEFIELD_CONFIG")
		if path == "" {
			return &Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
