package api

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/annel0/noisefield/internal/field"
	"github.com/annel0/noisefield/internal/registry"
)

// Ограничения потока кадров.
const (
	defaultStreamFPS = 10
	maxStreamFPS     = 30
	streamWriteWait  = 10 * time.Second
	streamPongWait   = 60 * time.Second
)

// Конфигурация WebSocket
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 64 * 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// streamParams описывает анимацию: кадр k строится при z = Z + k*DZ.
type streamParams struct {
	FPS    int
	Frames int // 0: до закрытия соединения
	DZ     float64
}

func parseStreamParams(c *gin.Context) (streamParams, error) {
	p := streamParams{FPS: defaultStreamFPS, DZ: 0.05}

	if raw, ok := c.GetQuery("fps"); ok {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > maxStreamFPS {
			return p, fmt.Errorf("fps должен быть в [1, %d]", maxStreamFPS)
		}
		p.FPS = v
	}
	if raw, ok := c.GetQuery("frames"); ok {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return p, fmt.Errorf("frames=%q", raw)
		}
		p.Frames = v
	}
	if raw, ok := c.GetQuery("dz"); ok {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return p, fmt.Errorf("dz=%q", raw)
		}
		p.DZ = v
	}
	return p, nil
}

// handleStream отдаёт по WebSocket последовательность тайлов (бинарные
// сообщения в формате raw), сдвигая срез z с каждым кадром. Это анимация
// турбулентности с z в роли времени.
func (rs *RestServer) handleStream(c *gin.Context) {
	if rs.tiles == nil {
		respondError(c, http.StatusServiceUnavailable, "Сервис тайлов отключён")
		return
	}

	spec, err := parseTileSpec(c, rs.defaultTileSize())
	if err != nil {
		rs.respondErr(c, err)
		return
	}
	if spec.Kind != field.KindSimplex3 && spec.Kind != field.KindSimplex4 {
		respondError(c, http.StatusBadRequest, "Поток поддерживает только simplex3 и simplex4")
		return
	}
	if err := spec.Validate(rs.tiles.MaxTileSize()); err != nil {
		rs.respondErr(c, err)
		return
	}
	params, err := parseStreamParams(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	h := registry.Handle(c.Param("id"))
	if _, _, err := rs.registry.Get(h); err != nil {
		rs.respondErr(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		rs.logger.Warn("⚠️ Ошибка upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	go rs.streamReadPump(conn, cancel)

	rs.logger.Debug("▶ Поток %s для %s: %d fps, dz=%g", spec.Kind, h, params.FPS, params.DZ)
	frames, err := rs.streamFrames(ctx, conn, h, spec, params)
	if err != nil {
		rs.logger.Debug("Поток %s прерван после %d кадров: %v", h, frames, err)
		return
	}

	conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
}

func (rs *RestServer) streamFrames(ctx context.Context, conn *websocket.Conn, h registry.Handle, spec field.TileSpec, params streamParams) (int, error) {
	ticker := time.NewTicker(time.Second / time.Duration(params.FPS))
	defer ticker.Stop()

	for k := 0; params.Frames == 0 || k < params.Frames; k++ {
		if k > 0 {
			select {
			case <-ctx.Done():
				return k, ctx.Err()
			case <-ticker.C:
			}
		}

		frame := spec
		frame.Z = spec.Z + float64(k)*params.DZ

		tile, err := rs.tiles.RenderTransient(ctx, h, frame)
		if err != nil {
			conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseInternalServerErr, err.Error()))
			return k, err
		}

		conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
		if err := conn.WriteMessage(websocket.BinaryMessage, tile.Payload); err != nil {
			return k, err
		}
	}
	return params.Frames, nil
}

// streamReadPump читает управляющие сообщения клиента и отменяет поток,
// когда соединение закрыто.
func (rs *RestServer) streamReadPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(512) // Клиент шлёт только управляющие кадры
	conn.SetReadDeadline(time.Now().Add(streamPongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(streamPongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				rs.logger.Debug("WebSocket закрыт: %v", err)
			}
			return
		}
	}
}
