package api

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/annel0/noisefield/internal/registry"
)

// NoiseValue представляет одно значение шума. В JSON нет NaN и Inf,
// поэтому нечисловой результат отдаётся как null с finite=false.
type NoiseValue struct {
	Value  *float64 `json:"value"`
	Finite bool     `json:"finite"`
}

func newNoiseValue(v float64) NoiseValue {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NoiseValue{}
	}
	return NoiseValue{Value: &v, Finite: true}
}

// queryFloats разбирает обязательные параметры запроса names.
func queryFloats(c *gin.Context, names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, name := range names {
		raw, ok := c.GetQuery(name)
		if !ok {
			return nil, fmt.Errorf("не указан параметр %s", name)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("параметр %s: %q не число", name, raw)
		}
		out[i] = v
	}
	return out, nil
}

func (rs *RestServer) handleNoise(c *gin.Context, names []string, eval func(h registry.Handle, p []float64) (float64, error)) {
	p, err := queryFloats(c, names...)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	v, err := eval(registry.Handle(c.Param("id")), p)
	if err != nil {
		rs.respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, "OK", newNoiseValue(v))
}

func (rs *RestServer) handleNoise2(c *gin.Context) {
	rs.handleNoise(c, []string{"x", "y"}, func(h registry.Handle, p []float64) (float64, error) {
		return rs.registry.Eval2(h, p[0], p[1])
	})
}

func (rs *RestServer) handleNoise3(c *gin.Context) {
	rs.handleNoise(c, []string{"x", "y", "z"}, func(h registry.Handle, p []float64) (float64, error) {
		return rs.registry.Eval3(h, p[0], p[1], p[2])
	})
}

func (rs *RestServer) handleNoise4(c *gin.Context) {
	rs.handleNoise(c, []string{"x", "y", "z", "w"}, func(h registry.Handle, p []float64) (float64, error) {
		return rs.registry.Eval4(h, p[0], p[1], p[2], p[3])
	})
}

// SamplesRequest содержит пачку точек одной размерности.
type SamplesRequest struct {
	Dims   int         `json:"dims" binding:"required"`
	Points [][]float64 `json:"points" binding:"required"`
}

// SamplesResponse содержит значения в порядке точек запроса.
type SamplesResponse struct {
	Values []NoiseValue `json:"values"`
}

func (rs *RestServer) handleSamples(c *gin.Context) {
	var req SamplesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Неверный формат запроса")
		return
	}
	if req.Dims < 2 || req.Dims > 4 {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Размерность %d не поддерживается", req.Dims))
		return
	}
	if len(req.Points) > rs.maxBatch {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Не больше %d точек за запрос", rs.maxBatch))
		return
	}
	for i, p := range req.Points {
		if len(p) != req.Dims {
			respondError(c, http.StatusBadRequest, fmt.Sprintf("Точка %d: ожидалось %d координат", i, req.Dims))
			return
		}
	}

	h := registry.Handle(c.Param("id"))
	_, nctx, err := rs.registry.Get(h)
	if err != nil {
		rs.respondErr(c, err)
		return
	}

	values := make([]NoiseValue, len(req.Points))
	for i, p := range req.Points {
		var v float64
		switch req.Dims {
		case 2:
			v = nctx.Eval2(p[0], p[1])
		case 3:
			v = nctx.Eval3(p[0], p[1], p[2])
		default:
			v = nctx.Eval4(p[0], p[1], p[2], p[3])
		}
		values[i] = newNoiseValue(v)
	}
	rs.registry.CountEvaluations(h, req.Dims, len(req.Points))

	respondOK(c, http.StatusOK, "OK", SamplesResponse{Values: values})
}
