package field

import (
	"bytes"
	"context"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/noisefield/internal/noise"
	"github.com/annel0/noisefield/internal/vec"
)

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Simplex3 ")
	require.NoError(t, err)
	assert.Equal(t, KindSimplex3, k)

	_, err = ParseKind("value")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestSources_MatchKernel(t *testing.T) {
	ctx := noise.NewContext(123)

	tests := []struct {
		kind Kind
		want float64
	}{
		{KindSimplex2, ctx.Eval2(1.5, -2.25)},
		{KindSimplex3, ctx.Eval3(1.5, -2.25, 0.5)},
		{KindSimplex4, ctx.Eval4(1.5, -2.25, 0.5, 3)},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			src, err := NewSource(tt.kind, ctx, 0.5, 3)
			require.NoError(t, err)
			assert.Equal(t, tt.want, src.Sample(1.5, -2.25))
		})
	}

	_, err := NewSource("bogus", ctx, 0, 0)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestPerlin_SeededByPermutation(t *testing.T) {
	a := NewPerlin(noise.NewContext(1))
	b := NewPerlin(noise.NewContext(1))
	c := NewPerlin(noise.NewContext(2))

	assert.Equal(t, a.Sample(0.3, 0.7), b.Sample(0.3, 0.7))
	assert.NotEqual(t, a.Sample(0.3, 0.7), c.Sample(0.3, 0.7))
}

func TestTileSpec_Validate(t *testing.T) {
	ok := TileSpec{Kind: KindSimplex2, Size: 16, Scale: 0.05}
	require.NoError(t, ok.Validate(0))

	bad := map[string]TileSpec{
		"нулевой размер":  {Kind: KindSimplex2, Size: 0, Scale: 1},
		"слишком большой": {Kind: KindSimplex2, Size: 2048, Scale: 1},
		"масштаб 0":       {Kind: KindSimplex2, Size: 8, Scale: 0},
		"масштаб NaN":     {Kind: KindSimplex2, Size: 8, Scale: math.NaN()},
		"масштаб Inf":     {Kind: KindSimplex2, Size: 8, Scale: math.Inf(1)},
		"z NaN":           {Kind: KindSimplex3, Size: 8, Scale: 1, Z: math.NaN()},
	}
	for name, spec := range bad {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, spec.Validate(0), ErrInvalidSpec)
		})
	}

	assert.ErrorIs(t, TileSpec{Kind: "x", Size: 8, Scale: 1}.Validate(0), ErrUnknownKind)
	assert.ErrorIs(t, TileSpec{Kind: KindSimplex2, Size: 64, Scale: 1}.Validate(32), ErrInvalidSpec)
}

func TestTileSpec_Key(t *testing.T) {
	spec := TileSpec{Kind: KindSimplex3, Coords: vec.Vec2{X: -2, Y: 5}, Size: 64, Scale: 0.01, Z: 1.5}
	assert.Equal(t, "tile:abc:simplex3:-2:5:64:0.01:1.5:0:0", spec.Key("abc"))

	norm := spec
	norm.Normalize = true
	assert.NotEqual(t, spec.Key("abc"), norm.Key("abc"))
	assert.NotEqual(t, spec.Key("abc"), spec.Key("abd"))

	assert.Equal(t, vec.Vec2Float{X: -1.28, Y: 3.2}, spec.Origin())
}

func TestRasterize_MatchesDirectSampling(t *testing.T) {
	ctx := noise.NewContext(99)
	spec := TileSpec{Kind: KindSimplex2, Coords: vec.Vec2{X: -1, Y: 2}, Size: 17, Scale: 0.07}

	hm, err := Rasterize(context.Background(), Plane{Ctx: ctx}, spec, 4)
	require.NoError(t, err)
	require.Equal(t, 17, hm.Width)
	require.Len(t, hm.Values, 17*17)

	for _, p := range [][2]int{{0, 0}, {16, 0}, {3, 11}, {16, 16}} {
		x := float64(-17+p[0]) * 0.07
		y := float64(34+p[1]) * 0.07
		assert.Equal(t, float32(ctx.Eval2(x, y)), hm.At(p[0], p[1]), "пиксель %v", p)
	}
}

func TestRasterize_WorkerCountIndependent(t *testing.T) {
	ctx := noise.NewContext(5)
	spec := TileSpec{Kind: KindSimplex4, Size: 48, Scale: 0.03, Z: 0.25, W: -4}
	src := Slice4{Ctx: ctx, Z: spec.Z, W: spec.W}

	one, err := Rasterize(context.Background(), src, spec, 1)
	require.NoError(t, err)
	many, err := Rasterize(context.Background(), src, spec, 16)
	require.NoError(t, err)

	assert.Equal(t, one.Values, many.Values)
}

func TestRasterize_Normalize(t *testing.T) {
	ctx := noise.NewContext(8)
	spec := TileSpec{Kind: KindSimplex2, Size: 32, Scale: 0.1, Normalize: true}

	hm, err := Rasterize(context.Background(), Plane{Ctx: ctx}, spec, 2)
	require.NoError(t, err)

	lo, hi := hm.MinMax()
	assert.GreaterOrEqual(t, lo, float32(0))
	assert.LessOrEqual(t, hi, float32(1))
	assert.Less(t, lo, hi)
}

func TestRasterize_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	spec := TileSpec{Kind: KindSimplex2, Size: 64, Scale: 0.1}
	_, err := Rasterize(ctx, Plane{Ctx: noise.NewContext(1)}, spec, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHeightmap_MinMaxSkipsNaN(t *testing.T) {
	hm := NewHeightmap(2, 2)
	hm.Set(0, 0, float32(math.NaN()))
	hm.Set(1, 0, -0.5)
	hm.Set(0, 1, 0.75)

	lo, hi := hm.MinMax()
	assert.Equal(t, float32(-0.5), lo)
	assert.Equal(t, float32(0.75), hi)

	empty := NewHeightmap(1, 1)
	empty.Set(0, 0, float32(math.NaN()))
	lo, hi = empty.MinMax()
	assert.Equal(t, float32(0), lo)
	assert.Equal(t, float32(0), hi)
}

func TestHeightmap_PNG(t *testing.T) {
	hm := NewHeightmap(3, 1)
	hm.Set(0, 0, -1)
	hm.Set(1, 0, 0)
	hm.Set(2, 0, 5)

	img := hm.Gray16(DisplayRange(false))
	assert.Equal(t, uint16(0), img.Gray16At(0, 0).Y)
	assert.Equal(t, uint16(32768), img.Gray16At(1, 0).Y)
	assert.Equal(t, uint16(65535), img.Gray16At(2, 0).Y, "значения вне диапазона насыщаются")

	var buf bytes.Buffer
	lo, hi := DisplayRange(false)
	require.NoError(t, hm.WritePNG(&buf, lo, hi))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, decoded.Bounds().Dx())
}

func TestCodec_RoundTrip(t *testing.T) {
	hm := NewHeightmap(5, 3)
	for i := range hm.Values {
		hm.Values[i] = float32(i)*0.125 - 1
	}
	hm.Values[7] = float32(math.NaN())

	data, err := EncodeHeightmap(hm)
	require.NoError(t, err)

	got, err := DecodeHeightmap(data)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Width)
	assert.Equal(t, 3, got.Height)
	for i := range hm.Values {
		if i == 7 {
			assert.True(t, math.IsNaN(float64(got.Values[i])))
			continue
		}
		assert.Equal(t, hm.Values[i], got.Values[i])
	}
}

func TestCodec_Corrupt(t *testing.T) {
	_, err := DecodeHeightmap([]byte("not zstd at all"))
	assert.ErrorIs(t, err, ErrCorruptHeightmap)

	hm := NewHeightmap(2, 2)
	data, err := EncodeHeightmap(hm)
	require.NoError(t, err)

	// Валидный zstd, но обрезанный полезный груз
	codecOnce.Do(initCodec)
	raw, err := decoder.DecodeAll(data, nil)
	require.NoError(t, err)
	truncated := encoder.EncodeAll(raw[:len(raw)-4], nil)
	_, err = DecodeHeightmap(truncated)
	assert.ErrorIs(t, err, ErrCorruptHeightmap)

	raw[0] = 'X'
	_, err = DecodeHeightmap(encoder.EncodeAll(raw, nil))
	assert.ErrorIs(t, err, ErrCorruptHeightmap)

	_, err = EncodeHeightmap(&Heightmap{Width: 2, Height: 2, Values: make([]float32, 3)})
	assert.ErrorIs(t, err, ErrCorruptHeightmap)
}
