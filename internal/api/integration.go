package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// ServerIntegration управляет жизненным циклом HTTP сервера REST API.
type ServerIntegration struct {
	restServer *RestServer
	httpServer *http.Server
	addr       string
	errCh      chan error
}

// NewServerIntegration создает HTTP обвязку для REST сервера.
func NewServerIntegration(config Config) *ServerIntegration {
	return &ServerIntegration{
		restServer: NewRestServer(config),
		errCh:      make(chan error, 1),
	}
}

// RestServer возвращает обслуживаемый REST сервер.
func (si *ServerIntegration) RestServer() *RestServer {
	return si.restServer
}

// Addr возвращает фактический адрес после Start.
func (si *ServerIntegration) Addr() string {
	return si.addr
}

// Errors возвращает канал фатальной ошибки сервера.
func (si *ServerIntegration) Errors() <-chan error {
	return si.errCh
}

// Start запускает REST API сервер
func (si *ServerIntegration) Start() error {
	logger := si.restServer.logger

	// Ошибка занятого порта возвращается из Start
	ln, err := net.Listen("tcp", si.restServer.port)
	if err != nil {
		return fmt.Errorf("не удалось открыть порт %s: %w", si.restServer.port, err)
	}
	si.addr = ln.Addr().String()

	// Создаем HTTP сервер для graceful shutdown
	si.httpServer = &http.Server{
		Handler:           si.restServer.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запускаем сервер в отдельной горутине
	go func() {
		if err := si.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("❌ Ошибка REST API сервера: %v", err)
			si.errCh <- err
		}
	}()

	logger.Info("✅ REST API сервер запущен на http://%s", si.addr)
	logger.Info("📋 Доступные эндпоинты:")
	logger.Info("   GET    /health                              - Проверка состояния")
	logger.Info("   GET    /metrics                             - Метрики Prometheus")
	logger.Info("   GET    /api/stats                           - Статистика сервера")
	logger.Info("   POST   /api/contexts                        - Создать контекст")
	logger.Info("   GET    /api/contexts/:id/noise2|noise3|noise4 - Значение шума")
	logger.Info("   POST   /api/contexts/:id/samples            - Пакет значений")
	logger.Info("   GET    /api/contexts/:id/tiles/:kind/:tx/:ty - Тайл PNG или raw")
	logger.Info("   GET    /api/contexts/:id/stream/:kind/:tx/:ty - Анимация по WebSocket")

	return nil
}

// Stop останавливает REST API сервер, дожидаясь текущих запросов не дольше timeout.
func (si *ServerIntegration) Stop(timeout time.Duration) error {
	if si.httpServer == nil {
		return nil
	}

	si.restServer.logger.Info("🛑 Остановка REST API сервера...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := si.httpServer.Shutdown(ctx); err != nil {
		si.restServer.logger.Error("❌ Ошибка при остановке HTTP сервера: %v", err)
		return err
	}

	si.restServer.logger.Info("✅ REST API сервер остановлен")
	return nil
}
