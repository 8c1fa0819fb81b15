package noise

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Полный перебор вершин решётки в окрестности [-3, 3]^N растянутой ячейки.
// Ядро обязано учитывать каждую вершину ближе радиуса затухания: это даёт
// непрерывность поля на границах областей.

const bruteRange = 3

func bruteEval2(c *Context, x, y float64) float64 {
	s := (x + y) * stretch2D
	xb, yb := math.Floor(x+s), math.Floor(y+s)

	var value float64
	for ox := -bruteRange; ox <= bruteRange; ox++ {
		for oy := -bruteRange; oy <= bruteRange; oy++ {
			vx, vy := xb+float64(ox), yb+float64(oy)
			sq := (vx + vy) * squish2D
			dx, dy := x-(vx+sq), y-(vy+sq)
			attn := radiusSq - dx*dx - dy*dy
			if attn > 0 {
				attn *= attn
				value += attn * attn * c.gradient2(int64(vx), int64(vy), dx, dy)
			}
		}
	}
	return value / norm2D
}

func bruteEval3(c *Context, x, y, z float64) float64 {
	s := (x + y + z) * stretch3D
	xb, yb, zb := math.Floor(x+s), math.Floor(y+s), math.Floor(z+s)

	var value float64
	for ox := -bruteRange; ox <= bruteRange; ox++ {
		for oy := -bruteRange; oy <= bruteRange; oy++ {
			for oz := -bruteRange; oz <= bruteRange; oz++ {
				vx, vy, vz := xb+float64(ox), yb+float64(oy), zb+float64(oz)
				sq := (vx + vy + vz) * squish3D
				dx, dy, dz := x-(vx+sq), y-(vy+sq), z-(vz+sq)
				attn := radiusSq - dx*dx - dy*dy - dz*dz
				if attn > 0 {
					attn *= attn
					value += attn * attn * c.gradient3(int64(vx), int64(vy), int64(vz), dx, dy, dz)
				}
			}
		}
	}
	return value / norm3D
}

func bruteEval4(c *Context, x, y, z, w float64) float64 {
	s := (x + y + z + w) * stretch4D
	xb, yb, zb, wb := math.Floor(x+s), math.Floor(y+s), math.Floor(z+s), math.Floor(w+s)

	var value float64
	for ox := -bruteRange; ox <= bruteRange; ox++ {
		for oy := -bruteRange; oy <= bruteRange; oy++ {
			for oz := -bruteRange; oz <= bruteRange; oz++ {
				for ow := -bruteRange; ow <= bruteRange; ow++ {
					vx, vy, vz, vw := xb+float64(ox), yb+float64(oy), zb+float64(oz), wb+float64(ow)
					sq := (vx + vy + vz + vw) * squish4D
					dx, dy, dz, dw := x-(vx+sq), y-(vy+sq), z-(vz+sq), w-(vw+sq)
					attn := radiusSq - dx*dx - dy*dy - dz*dz - dw*dw
					if attn > 0 {
						attn *= attn
						value += attn * attn * c.gradient4(int64(vx), int64(vy), int64(vz), int64(vw), dx, dy, dz, dw)
					}
				}
			}
		}
	}
	return value / norm4D
}

// samplePoints возвращает случайные точки и точки на границах ячеек
// (целые и полуцелые координаты), где выбор области неоднозначен.
func samplePoints(rng *rand.Rand, dims, n int) [][]float64 {
	var pts [][]float64
	for i := 0; i < n; i++ {
		p := make([]float64, dims)
		for k := range p {
			p[k] = (rng.Float64() - 0.5) * 100
		}
		pts = append(pts, p)
	}
	for i := 0; i < n/4; i++ {
		p := make([]float64, dims)
		for k := range p {
			p[k] = float64(rng.Intn(41)-20) * 0.5
		}
		pts = append(pts, p)
	}
	return pts
}

func TestEval_SumsEveryVertexInRadius(t *testing.T) {
	const tolerance = 1e-12
	seeds := []int64{0, 123, 122, -1, 987654321}

	t.Run("2D", func(t *testing.T) {
		for _, seed := range seeds {
			c := NewContext(seed)
			for _, p := range samplePoints(rand.New(rand.NewSource(seed)), 2, 4000) {
				assert.InDelta(t, bruteEval2(c, p[0], p[1]), c.Eval2(p[0], p[1]), tolerance, "сид %d, точка %v", seed, p)
			}
		}
	})

	t.Run("3D", func(t *testing.T) {
		for _, seed := range seeds {
			c := NewContext(seed)
			for _, p := range samplePoints(rand.New(rand.NewSource(seed)), 3, 2000) {
				assert.InDelta(t, bruteEval3(c, p[0], p[1], p[2]), c.Eval3(p[0], p[1], p[2]), tolerance, "сид %d, точка %v", seed, p)
			}
		}
	})

	t.Run("4D", func(t *testing.T) {
		n := 1000
		if testing.Short() {
			n = 100
		}
		for _, seed := range seeds {
			c := NewContext(seed)
			for _, p := range samplePoints(rand.New(rand.NewSource(seed)), 4, n) {
				assert.InDelta(t, bruteEval4(c, p[0], p[1], p[2], p[3]), c.Eval4(p[0], p[1], p[2], p[3]), tolerance, "сид %d, точка %v", seed, p)
			}
		}
	})
}
