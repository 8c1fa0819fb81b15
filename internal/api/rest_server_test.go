package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/noisefield/internal/cache"
	"github.com/annel0/noisefield/internal/field"
	"github.com/annel0/noisefield/internal/logging"
	"github.com/annel0/noisefield/internal/noise"
	"github.com/annel0/noisefield/internal/registry"
	"github.com/annel0/noisefield/internal/storage"
	"github.com/annel0/noisefield/internal/storage_adapter"
	"github.com/annel0/noisefield/internal/tiles"
)

type testServer struct {
	rs    *RestServer
	reg   *registry.Registry
	store *storage.TileStore
	cache *cache.MemoryCache
}

func newTestServer(t *testing.T, maxContexts int) *testServer {
	t.Helper()

	logger, err := logging.NewLoggerWithOptions("api", logging.Options{ConsoleLevel: logging.ERROR})
	require.NoError(t, err)

	promReg := prometheus.NewRegistry()
	reg := registry.New(registry.Options{MaxContexts: maxContexts, Registerer: promReg, Logger: logger})

	store, err := storage.NewTileStore(t.TempDir(), 0)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	memCache := cache.NewMemoryCache(cache.CacheConfig{}, storage_adapter.NewColdStorage(store))
	t.Cleanup(func() { memCache.Close() })

	svc := tiles.NewService(tiles.Options{
		Registry:    reg,
		Cache:       memCache,
		Store:       store,
		Workers:     2,
		MaxTileSize: 128,
		Registerer:  promReg,
		Logger:      logger,
	})

	rs := NewRestServer(Config{
		Registry:   reg,
		Tiles:      svc,
		MaxBatch:   8,
		Registerer: promReg,
		Gatherer:   promReg,
		Logger:     logger,
	})
	return &testServer{rs: rs, reg: reg, store: store, cache: memCache}
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var rd *bytes.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			raw = string(b)
		}
		rd = bytes.NewReader([]byte(raw))
	} else {
		rd = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.rs.Handler().ServeHTTP(w, req)
	return w
}

// decode разбирает конверт ответа, а data кладёт в out (если не nil).
func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) GenericResponse {
	t.Helper()

	var env struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return GenericResponse{Success: env.Success, Message: env.Message}
}

func (ts *testServer) create(t *testing.T, seed int64) registry.Info {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/api/contexts", map[string]int64{"seed": seed})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var info registry.Info
	env := decode(t, w, &info)
	require.True(t, env.Success)
	return info
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, 0)
	w := ts.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, w.Header().Get("X-Trace-Id"))
}

func TestContextLifecycle(t *testing.T) {
	ts := newTestServer(t, 0)

	info := ts.create(t, 123)
	assert.Equal(t, int64(123), info.Seed)
	assert.Equal(t, registry.Fingerprint(noise.NewContext(123)), info.Fingerprint)

	w := ts.do(t, http.MethodGet, "/api/contexts/"+string(info.Handle), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []registry.Info
	decode(t, ts.do(t, http.MethodGet, "/api/contexts", nil), &list)
	require.Len(t, list, 1)
	assert.Equal(t, info.Handle, list[0].Handle)

	w = ts.do(t, http.MethodDelete, "/api/contexts/"+string(info.Handle), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodDelete, "/api/contexts/"+string(info.Handle), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, decode(t, w, nil).Success)

	w = ts.do(t, http.MethodGet, "/api/contexts/"+string(info.Handle)+"/noise2?x=1&y=1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateContext_Errors(t *testing.T) {
	ts := newTestServer(t, 1)

	w := ts.do(t, http.MethodPost, "/api/contexts", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodPost, "/api/contexts", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodPost, "/api/contexts", map[string]interface{}{"permutation": []int{1, 2, 3}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	ts.create(t, 1)
	w = ts.do(t, http.MethodPost, "/api/contexts", map[string]int64{"seed": 2})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCreateContext_FromPermutation(t *testing.T) {
	ts := newTestServer(t, 0)

	perm := make([]int, 256)
	for i := range perm {
		perm[i] = 255 - i
	}
	w := ts.do(t, http.MethodPost, "/api/contexts", map[string]interface{}{"permutation": perm})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var info registry.Info
	decode(t, w, &info)
	assert.True(t, info.Explicit)

	want, err := noise.NewContextFromPermutation(perm)
	require.NoError(t, err)

	var v NoiseValue
	decode(t, ts.do(t, http.MethodGet, "/api/contexts/"+string(info.Handle)+"/noise2?x=0.5&y=2.5", nil), &v)
	require.True(t, v.Finite)
	assert.Equal(t, want.Eval2(0.5, 2.5), *v.Value)
}

func TestNoiseEndpoints(t *testing.T) {
	ts := newTestServer(t, 0)
	info := ts.create(t, 123)
	base := "/api/contexts/" + string(info.Handle)
	ctx := noise.NewContext(123)

	tests := []struct {
		path string
		want float64
	}{
		{"/noise2?x=1&y=1", ctx.Eval2(1, 1)},
		{"/noise3?x=1&y=1&z=1", ctx.Eval3(1, 1, 1)},
		{"/noise4?x=1&y=1&z=1&w=1", ctx.Eval4(1, 1, 1, 1)},
		{"/noise2?x=-3.25&y=17.5", ctx.Eval2(-3.25, 17.5)},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := ts.do(t, http.MethodGet, base+tt.path, nil)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var v NoiseValue
			decode(t, w, &v)
			require.True(t, v.Finite)
			assert.Equal(t, tt.want, *v.Value)
		})
	}

	t.Run("нечисловой результат", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, base+"/noise2?x=NaN&y=1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"value":null`)
		assert.Contains(t, w.Body.String(), `"finite":false`)
	})

	for _, bad := range []string{"/noise2?x=1", "/noise3?x=1&y=a&z=0", "/noise4?x=1&y=1&z=1&w="} {
		t.Run(bad, func(t *testing.T) {
			w := ts.do(t, http.MethodGet, base+bad, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSamples(t *testing.T) {
	ts := newTestServer(t, 0)
	info := ts.create(t, 0)
	path := "/api/contexts/" + string(info.Handle) + "/samples"
	ctx := noise.NewContext(0)

	w := ts.do(t, http.MethodPost, path, SamplesRequest{
		Dims:   3,
		Points: [][]float64{{1, 1, 1}, {-3.25, 17.5, 0.125}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp SamplesResponse
	decode(t, w, &resp)
	require.Len(t, resp.Values, 2)
	assert.Equal(t, ctx.Eval3(1, 1, 1), *resp.Values[0].Value)
	assert.Equal(t, ctx.Eval3(-3.25, 17.5, 0.125), *resp.Values[1].Value)

	got, _, err := ts.reg.Get(info.Handle)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got.Evaluations)

	bad := map[string]SamplesRequest{
		"размерность":     {Dims: 5, Points: [][]float64{{1, 1, 1, 1, 1}}},
		"длина точки":     {Dims: 2, Points: [][]float64{{1, 1, 1}}},
		"слишком большой": {Dims: 2, Points: make([][]float64, 9)},
	}
	for name, req := range bad {
		t.Run(name, func(t *testing.T) {
			for i := range req.Points {
				if req.Points[i] == nil {
					req.Points[i] = []float64{0, 0}
				}
			}
			w := ts.do(t, http.MethodPost, path, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	w = ts.do(t, http.MethodPost, "/api/contexts/missing/samples", SamplesRequest{Dims: 2, Points: [][]float64{{0, 0}}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTiles(t *testing.T) {
	ts := newTestServer(t, 0)
	info := ts.create(t, 42)
	base := "/api/contexts/" + string(info.Handle) + "/tiles"

	w := ts.do(t, http.MethodGet, base+"/simplex2/1/-2?size=32&scale=0.05", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, tiles.SourceRender, w.Header().Get("X-Tile-Source"))

	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())

	w = ts.do(t, http.MethodGet, base+"/simplex2/1/-2?size=32&scale=0.05&format=raw", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, tiles.SourceCache, w.Header().Get("X-Tile-Source"))

	hm, err := field.DecodeHeightmap(w.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, float32(noise.NewContext(42).Eval2(float64(32+3)*0.05, float64(-64+5)*0.05)), hm.At(3, 5))

	for _, bad := range []string{
		"/value/0/0",
		"/simplex2/x/0",
		"/simplex2/0/0?size=0",
		"/simplex2/0/0?size=129",
		"/simplex2/0/0?scale=-1",
		"/simplex3/0/0?z=abc",
		"/simplex2/0/0?normalize=maybe",
		"/simplex2/0/0?format=jpeg",
	} {
		t.Run(bad, func(t *testing.T) {
			w := ts.do(t, http.MethodGet, base+bad, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}

	w = ts.do(t, http.MethodGet, "/api/contexts/missing/tiles/simplex2/0/0", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	stored, err := ts.store.Count("tile:")
	require.NoError(t, err)
	assert.Equal(t, 1, stored, "тайл записан в хранилище через кеш")

	w = ts.do(t, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var purged map[string]int
	decode(t, w, &purged)
	assert.Equal(t, 1, purged["deleted"])
}

func TestStatsAndMetrics(t *testing.T) {
	ts := newTestServer(t, 5)
	ts.create(t, 1)

	var stats map[string]interface{}
	w := ts.do(t, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &stats)

	reg := stats["registry"].(map[string]interface{})
	assert.Equal(t, 1.0, reg["contexts"])
	assert.Equal(t, 5.0, reg["capacity"])
	assert.Contains(t, stats, "server")
	assert.Contains(t, stats, "tiles")

	w = ts.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "noisefield_registry_contexts 1"), body)
	assert.Contains(t, body, "noisefield_http_request_duration_seconds")
}

func TestServerIntegration_StartStop(t *testing.T) {
	logger, err := logging.NewLoggerWithOptions("api", logging.Options{ConsoleLevel: logging.ERROR})
	require.NoError(t, err)
	promReg := prometheus.NewRegistry()

	si := NewServerIntegration(Config{
		Port:       "127.0.0.1:0",
		Registry:   registry.New(registry.Options{Registerer: promReg, Logger: logger}),
		Registerer: promReg,
		Gatherer:   promReg,
		Logger:     logger,
	})
	require.NoError(t, si.Start())

	resp, err := http.Get(fmt.Sprintf("http://%s/health", si.Addr()))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, si.Stop(time.Second))
	select {
	case err := <-si.Errors():
		t.Fatalf("неожиданная ошибка сервера: %v", err)
	default:
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(fmt.Errorf("x: %w", registry.ErrUnknownHandle)))
	assert.Equal(t, http.StatusServiceUnavailable, statusFor(registry.ErrCapacityExceeded))
	assert.Equal(t, http.StatusBadRequest, statusFor(noise.ErrInvalidPermutation))
	assert.Equal(t, http.StatusInternalServerError, statusFor(fmt.Errorf("boom")))
}
