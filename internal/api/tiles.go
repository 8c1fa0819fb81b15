package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/annel0/noisefield/internal/field"
	"github.com/annel0/noisefield/internal/registry"
	"github.com/annel0/noisefield/internal/vec"
)

// Параметры тайла по умолчанию.
const (
	defaultTileSize  = 256
	defaultTileScale = 0.01
)

// parseTileSpec собирает TileSpec из пути и query-параметров. Без size
// сторона тайла равна defaultSize.
func parseTileSpec(c *gin.Context, defaultSize int) (field.TileSpec, error) {
	kind, err := field.ParseKind(c.Param("kind"))
	if err != nil {
		return field.TileSpec{}, err
	}

	tx, err := strconv.Atoi(c.Param("tx"))
	if err != nil {
		return field.TileSpec{}, fmt.Errorf("%w: tx=%q", field.ErrInvalidSpec, c.Param("tx"))
	}
	ty, err := strconv.Atoi(c.Param("ty"))
	if err != nil {
		return field.TileSpec{}, fmt.Errorf("%w: ty=%q", field.ErrInvalidSpec, c.Param("ty"))
	}

	spec := field.TileSpec{
		Kind:   kind,
		Coords: vec.Vec2{X: tx, Y: ty},
		Size:   defaultSize,
		Scale:  defaultTileScale,
	}

	if raw, ok := c.GetQuery("size"); ok {
		if spec.Size, err = strconv.Atoi(raw); err != nil {
			return field.TileSpec{}, fmt.Errorf("%w: size=%q", field.ErrInvalidSpec, raw)
		}
	}
	for name, dst := range map[string]*float64{"scale": &spec.Scale, "z": &spec.Z, "w": &spec.W} {
		if raw, ok := c.GetQuery(name); ok {
			if *dst, err = strconv.ParseFloat(raw, 64); err != nil {
				return field.TileSpec{}, fmt.Errorf("%w: %s=%q", field.ErrInvalidSpec, name, raw)
			}
		}
	}
	if raw, ok := c.GetQuery("normalize"); ok {
		if spec.Normalize, err = strconv.ParseBool(raw); err != nil {
			return field.TileSpec{}, fmt.Errorf("%w: normalize=%q", field.ErrInvalidSpec, raw)
		}
	}
	return spec, nil
}

func (rs *RestServer) handleTile(c *gin.Context) {
	if rs.tiles == nil {
		respondError(c, http.StatusServiceUnavailable, "Сервис тайлов отключён")
		return
	}

	format := c.DefaultQuery("format", "png")
	if format != "png" && format != "raw" {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Неизвестный формат %q", format))
		return
	}

	spec, err := parseTileSpec(c, rs.defaultTileSize())
	if err != nil {
		rs.respondErr(c, err)
		return
	}

	tile, err := rs.tiles.Render(c.Request.Context(), registry.Handle(c.Param("id")), spec)
	if err != nil {
		rs.respondErr(c, err)
		return
	}

	c.Header("X-Tile-Key", tile.Key)
	c.Header("X-Tile-Source", tile.Source)
	// Тайл полностью определяется ключом
	c.Header("Cache-Control", "public, max-age=86400, immutable")

	if format == "raw" {
		c.Data(http.StatusOK, "application/octet-stream", tile.Payload)
		return
	}

	lo, hi := field.DisplayRange(spec.Normalize)
	var buf bytes.Buffer
	if err := tile.Heightmap.WritePNG(&buf, lo, hi); err != nil {
		rs.respondErr(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (rs *RestServer) defaultTileSize() int {
	return min(defaultTileSize, rs.tiles.MaxTileSize())
}

func (rs *RestServer) handlePurgeTiles(c *gin.Context) {
	if rs.tiles == nil {
		respondError(c, http.StatusServiceUnavailable, "Сервис тайлов отключён")
		return
	}

	n, err := rs.tiles.Purge(registry.Handle(c.Param("id")))
	if err != nil {
		rs.respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Тайлы удалены", gin.H{"deleted": n})
}
