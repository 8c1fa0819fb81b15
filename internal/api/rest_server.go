// Package api предоставляет REST API над реестром контекстов шума и
// сервисом тайлов.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/annel0/noisefield/internal/field"
	"github.com/annel0/noisefield/internal/logging"
	"github.com/annel0/noisefield/internal/middleware"
	"github.com/annel0/noisefield/internal/noise"
	"github.com/annel0/noisefield/internal/registry"
	"github.com/annel0/noisefield/internal/tiles"
)

// DefaultMaxBatch ограничивает число точек в одном запросе samples.
const DefaultMaxBatch = 4096

// RestServer представляет REST API сервер
type RestServer struct {
	router   *gin.Engine
	registry *registry.Registry
	tiles    *tiles.Service
	port     string
	maxBatch int
	metrics  *ServerMetrics
	logger   *logging.Logger
}

// Config содержит конфигурацию для REST сервера
type Config struct {
	Port     string // адрес для запуска сервера, например ":8088"
	Registry *registry.Registry
	Tiles    *tiles.Service
	MaxBatch int

	// Registerer и Gatherer для HTTP-метрик и /metrics; nil означает
	// глобальный реестр prometheus.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
	Logger     *logging.Logger
}

// NewRestServer создает новый REST API сервер
func NewRestServer(config Config) *RestServer {
	if config.Port == "" {
		config.Port = ":8088"
	}
	if config.MaxBatch <= 0 {
		config.MaxBatch = DefaultMaxBatch
	}
	if config.Logger == nil {
		config.Logger = logging.GetAPILogger()
	}

	// Устанавливаем режим релиза для gin
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()        // без стандартного logger/recovery
	router.Use(gin.Recovery()) // добавим только recovery

	// === Observability middleware ===
	// otelgin до логгера запросов: trace-id берётся из спана
	router.Use(otelgin.Middleware("noisefield"))
	router.Use(middleware.NewRequestLogger(config.Logger).Handler())

	promMw := middleware.NewPrometheusMiddleware("noisefield", config.Registerer)
	router.Use(promMw.Handler())
	promMw.RegisterMetricsEndpoint(router, config.Gatherer)

	router.Use(middleware.CORS())

	server := &RestServer{
		router:   router,
		registry: config.Registry,
		tiles:    config.Tiles,
		port:     config.Port,
		maxBatch: config.MaxBatch,
		metrics:  NewServerMetrics(),
		logger:   config.Logger,
	}

	// Настраиваем маршруты
	server.setupRoutes()

	return server
}

// Handler возвращает http.Handler сервера.
func (rs *RestServer) Handler() http.Handler {
	return rs.router
}

// setupRoutes настраивает маршруты REST API
func (rs *RestServer) setupRoutes() {
	rs.router.GET("/health", rs.handleHealth)

	api := rs.router.Group("/api")
	api.GET("/stats", rs.handleStats)

	contexts := api.Group("/contexts")
	{
		contexts.POST("", rs.handleCreateContext)
		contexts.GET("", rs.handleListContexts)
		contexts.GET("/:id", rs.handleGetContext)
		contexts.DELETE("/:id", rs.handleDestroyContext)

		contexts.GET("/:id/noise2", rs.handleNoise2)
		contexts.GET("/:id/noise3", rs.handleNoise3)
		contexts.GET("/:id/noise4", rs.handleNoise4)
		contexts.POST("/:id/samples", rs.handleSamples)

		contexts.GET("/:id/tiles/:kind/:tx/:ty", rs.handleTile)
		contexts.DELETE("/:id/tiles", rs.handlePurgeTiles)
		contexts.GET("/:id/stream/:kind/:tx/:ty", rs.handleStream)
	}
}

// GenericResponse представляет общий ответ API
type GenericResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, GenericResponse{Success: true, Message: message, Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, GenericResponse{Success: false, Message: message})
}

// respondErr сопоставляет ошибку домена с HTTP статусом.
func (rs *RestServer) respondErr(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		rs.logger.Error("❌ %s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	respondError(c, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, registry.ErrUnknownHandle):
		return http.StatusNotFound
	case errors.Is(err, registry.ErrCapacityExceeded):
		return http.StatusServiceUnavailable
	case errors.Is(err, noise.ErrInvalidPermutation),
		errors.Is(err, field.ErrInvalidSpec),
		errors.Is(err, field.ErrUnknownKind):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

// handleHealth проверка состояния сервера
func (rs *RestServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Unix(),
	})
}

// handleStats возвращает статистику сервера
func (rs *RestServer) handleStats(c *gin.Context) {
	stats := make(map[string]interface{})

	stats["registry"] = map[string]interface{}{
		"contexts": rs.registry.Len(),
		"capacity": rs.registry.Capacity(),
	}

	if rs.tiles != nil {
		stats["tiles"] = rs.tiles.Stats()
	}

	// Метрики сервера
	server := map[string]interface{}{
		"uptime":      rs.metrics.GetUptime(),
		"memory_mb":   fmt.Sprintf("%.2f", rs.metrics.GetMemoryUsage()),
		"server_time": time.Now().Unix(),
	}
	if cpuPercent, err := rs.metrics.GetCPUUsage(); err == nil {
		server["cpu_percent"] = fmt.Sprintf("%.2f", cpuPercent)
	}
	if systemCPU, err := rs.metrics.GetSystemCPUUsage(100 * time.Millisecond); err == nil {
		server["system_cpu"] = fmt.Sprintf("%.2f", systemCPU)
	}
	if used, total, err := rs.metrics.GetSystemMemory(); err == nil {
		server["system_memory_mb"] = fmt.Sprintf("%.0f/%.0f", used, total)
	}
	stats["server"] = server

	// Детальная статистика памяти
	stats["memory_details"] = rs.metrics.GetDetailedMemoryStats()

	respondOK(c, http.StatusOK, "Статистика получена", stats)
}
