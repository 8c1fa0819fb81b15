// Package noise реализует детерминированный шум семейства OpenSimplex в 2, 3
// и 4 измерениях. Константы перестановки и градиентов совпадают с
// OpenSimplex, но в сумму входят все вершины решётки ближе радиуса
// затухания, поэтому в 3D и 4D значения отличаются от классической
// реализации (до ~1e-4 и ~6e-4).
//
// Context строится один раз из сида и затем используется для любого
// количества вычислений из любых горутин.
package noise

import (
	"errors"
	"math"
)

// ErrInvalidPermutation возвращается, если явно переданная таблица
// не является перестановкой [0, 256).
var ErrInvalidPermutation = errors.New("noise: некорректная перестановка")

// Context хранит таблицы одного поля шума. После создания не изменяется,
// поэтому безопасен для параллельного чтения без блокировок.
type Context struct {
	seed            int64
	perm            [permutationSize]uint8
	permGradIndex3D [permutationSize]uint8
}

// NewContext создаёт контекст из 64-битного сида. Допустим любой сид.
func NewContext(seed int64) *Context {
	c := &Context{seed: seed}
	c.perm, c.permGradIndex3D = buildPermutation(seed)
	return c
}

// NewContextFromPermutation создаёт контекст из готовой перестановки
// (256 различных значений из [0, 256)). Seed такого контекста равен 0.
func NewContextFromPermutation(p []int) (*Context, error) {
	if err := validatePermutation(p); err != nil {
		return nil, err
	}

	c := &Context{}
	for i, v := range p {
		c.perm[i] = uint8(v)
		c.permGradIndex3D[i] = gradientIndex3D(uint8(v))
	}
	return c, nil
}

// Seed возвращает сид, из которого построен контекст.
func (c *Context) Seed() int64 {
	return c.seed
}

// Permutation возвращает копию таблицы перестановки.
func (c *Context) Permutation() []int {
	out := make([]int, permutationSize)
	for i, v := range c.perm {
		out[i] = int(v)
	}
	return out
}

// GradientIndex3D возвращает копию таблицы индексов 3D градиентов.
func (c *Context) GradientIndex3D() []int {
	out := make([]int, permutationSize)
	for i, v := range c.permGradIndex3D {
		out[i] = int(v)
	}
	return out
}

// hash2 сворачивает координаты вершины решётки в значение перестановки.
// Отрицательные координаты корректно заворачиваются маской.
func (c *Context) hash2(xsb, ysb int64) int64 {
	return int64(c.perm[(int64(c.perm[xsb&permutationMask])+ysb)&permutationMask])
}

func (c *Context) gradient2(xsb, ysb int64, dx, dy float64) float64 {
	i := c.hash2(xsb, ysb) & 0x0E
	return float64(gradients2D[i]*dx) + float64(gradients2D[i+1]*dy)
}

func (c *Context) gradient3(xsb, ysb, zsb int64, dx, dy, dz float64) float64 {
	i := c.permGradIndex3D[(c.hash2(xsb, ysb)+zsb)&permutationMask]
	return float64(gradients3D[i]*dx) + float64(gradients3D[i+1]*dy) + float64(gradients3D[i+2]*dz)
}

func (c *Context) gradient4(xsb, ysb, zsb, wsb int64, dx, dy, dz, dw float64) float64 {
	h := int64(c.perm[(c.hash2(xsb, ysb)+zsb)&permutationMask])
	i := c.perm[(h+wsb)&permutationMask] & 0xFC
	return float64(gradients4D[i]*dx) + float64(gradients4D[i+1]*dy) +
		float64(gradients4D[i+2]*dz) + float64(gradients4D[i+3]*dw)
}

// floorInt возвращает floor(v) и как float64, и как целую координату решётки.
func floorInt(v float64) (float64, int64) {
	f := math.Floor(v)
	return f, int64(f)
}
