package lattice

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const squish2D = 0.366025403784439

func TestPairs(t *testing.T) {
	assert.Equal(t, [][2]int{{0, 1}}, Pairs(2))
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}}, Pairs(3))
	assert.Len(t, Pairs(4), 6)
	assert.Equal(t, 4, TableSize(2))
	assert.Equal(t, 24, TableSize(3))
	assert.Equal(t, 256, TableSize(4))
}

func TestBuild_2D(t *testing.T) {
	regions := Build(2, squish2D)
	require.Len(t, regions, 4)

	for i, r := range regions {
		assert.Equal(t, i, r.Index, "области отсортированы по индексу")
		assert.Len(t, r.Offsets, 5)
		// Вершины самой ячейки всегда достижимы
		assert.Contains(t, r.Offsets, []int{0, 0})
		assert.Contains(t, r.Offsets, []int{1, 1})
	}

	// Нижний треугольник (x >= y) ниже диагонали x+y=1 достаёт до (1,-1)
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}, regions[2].Offsets)
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}}, regions[3].Offsets)
}

func TestBuild_3DValidMasks(t *testing.T) {
	regions := Build(3, 1.0/3)
	require.Len(t, regions, 18, "3! порядков по 3 полосы")

	seen := make(map[int]bool)
	for _, r := range regions {
		assert.False(t, seen[r.Index], "повтор индекса %d", r.Index)
		seen[r.Index] = true
		assert.Less(t, r.Index, TableSize(3))
		assert.Len(t, r.Offsets, 10)
	}
}

func TestRegionVertices_InsideSlab(t *testing.T) {
	for _, order := range permutations(3) {
		for band := 0; band < 3; band++ {
			for _, v := range regionVertices(order, band, 0) {
				sum := v[0] + v[1] + v[2]
				assert.GreaterOrEqual(t, sum, float64(band)-1e-12)
				assert.LessOrEqual(t, sum, float64(band+1)+1e-12)
			}
		}
	}
}

func TestHullDist2(t *testing.T) {
	square := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

	assert.InDelta(t, 0.0, hullDist2([]float64{0.5, 0.5}, square), 1e-12, "точка внутри")
	assert.InDelta(t, 1.0, hullDist2([]float64{0.5, 2}, square), 1e-12, "до ребра")
	assert.InDelta(t, 2.0, hullDist2([]float64{2, 2}, square), 1e-12, "до вершины")
}

func TestSolve(t *testing.T) {
	x, ok := solve([][]float64{{2, 1}, {1, 3}}, []float64{3, 5})
	require.True(t, ok)
	assert.InDelta(t, 0.8, x[0], 1e-12)
	assert.InDelta(t, 1.4, x[1], 1e-12)

	_, ok = solve([][]float64{{1, 2}, {2, 4}}, []float64{1, 2})
	assert.False(t, ok, "вырожденная система")
}

func TestPermutations(t *testing.T) {
	perms := permutations(4)
	assert.Len(t, perms, 24)

	seen := make(map[[4]int]bool)
	for _, p := range perms {
		var key [4]int
		copy(key[:], p)
		seen[key] = true
	}
	assert.Len(t, seen, 24)
}

func TestUnsquish(t *testing.T) {
	p := unsquish([]float64{1, 0}, squish2D)
	assert.InDelta(t, 1+squish2D, p[0], 1e-15)
	assert.InDelta(t, squish2D, p[1], 1e-15)
	assert.False(t, math.IsNaN(dist2(p, []float64{0, 0})))
}
