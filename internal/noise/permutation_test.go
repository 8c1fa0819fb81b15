package noise

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPermutation_IsBijection(t *testing.T) {
	seeds := []int64{0, 1, -1, 122, 123, math.MaxInt64, math.MinInt64}
	for i := int64(0); i < 200; i++ {
		seeds = append(seeds, i*7919-100000)
	}

	for _, seed := range seeds {
		perm, _ := buildPermutation(seed)

		values := make([]int, len(perm))
		for i, v := range perm {
			values[i] = int(v)
		}
		sort.Ints(values)

		for i, v := range values {
			if v != i {
				t.Fatalf("Сид %d: перестановка не является биекцией (sorted[%d]=%d)", seed, i, v)
			}
		}
	}
}

func TestBuildPermutation_Golden(t *testing.T) {
	// Значения зафиксированы: изменение констант ГПСЧ меняет весь шум
	tests := []struct {
		seed     int64
		perm     []uint8
		gradient []uint8
	}{
		{123, []uint8{64, 5, 3, 245, 201, 7, 65, 11}, []uint8{48, 15, 9, 15, 27, 21, 51, 33}},
		{122, []uint8{24, 32, 30, 242, 224, 62, 194, 222}, []uint8{0, 24, 18, 6, 24, 42, 6, 18}},
		{0, []uint8{254, 50, 92, 24, 36, 10, 190, 16}, []uint8{42, 6, 60, 0, 36, 30, 66, 48}},
		{-1, []uint8{112, 72, 97, 7, 156, 36, 163, 13}, []uint8{48, 0, 3, 21, 36, 36, 57, 39}},
	}

	for _, tt := range tests {
		perm, gradIndex := buildPermutation(tt.seed)
		assert.Equal(t, tt.perm, perm[:len(tt.perm)], "перестановка для сида %d", tt.seed)
		assert.Equal(t, tt.gradient, gradIndex[:len(tt.gradient)], "индексы градиентов для сида %d", tt.seed)
	}
}

func TestBuildPermutation_GradientIndexDerived(t *testing.T) {
	perm, gradIndex := buildPermutation(98765)
	for i := range perm {
		assert.Equal(t, (int(perm[i])%24)*3, int(gradIndex[i]), "индекс %d", i)
	}
}

func TestNewContext_SameSeedSameTables(t *testing.T) {
	a := NewContext(42)
	b := NewContext(42)

	assert.Equal(t, a.Permutation(), b.Permutation())
	assert.Equal(t, a.GradientIndex3D(), b.GradientIndex3D())
	assert.Equal(t, int64(42), a.Seed())
	assert.NotEqual(t, a.Permutation(), NewContext(43).Permutation())
}

func TestNewContext_AccessorsReturnCopies(t *testing.T) {
	ctx := NewContext(7)
	p := ctx.Permutation()
	p[0] = p[0] + 1

	assert.NotEqual(t, p[0], ctx.Permutation()[0], "изменение копии не должно затрагивать контекст")
}

func TestNewContextFromPermutation(t *testing.T) {
	t.Run("Same field as seeded context", func(t *testing.T) {
		seeded := NewContext(123)
		explicit, err := NewContextFromPermutation(seeded.Permutation())
		require.NoError(t, err)

		assert.Equal(t, int64(0), explicit.Seed())
		assert.Equal(t, seeded.GradientIndex3D(), explicit.GradientIndex3D())
		assert.Equal(t, seeded.Eval2(1.5, -2.25), explicit.Eval2(1.5, -2.25))
		assert.Equal(t, seeded.Eval3(1.5, -2.25, 3), explicit.Eval3(1.5, -2.25, 3))
		assert.Equal(t, seeded.Eval4(1.5, -2.25, 3, 0.5), explicit.Eval4(1.5, -2.25, 3, 0.5))
	})

	t.Run("Identity permutation", func(t *testing.T) {
		p := make([]int, 256)
		for i := range p {
			p[i] = i
		}
		ctx, err := NewContextFromPermutation(p)
		require.NoError(t, err)
		assert.Equal(t, p, ctx.Permutation())
	})

	t.Run("Invalid input", func(t *testing.T) {
		short := make([]int, 255)

		duplicate := make([]int, 256)
		for i := range duplicate {
			duplicate[i] = i
		}
		duplicate[10] = 11

		outOfRange := make([]int, 256)
		for i := range outOfRange {
			outOfRange[i] = i
		}
		outOfRange[0] = 256

		negative := make([]int, 256)
		for i := range negative {
			negative[i] = i
		}
		negative[3] = -3

		for name, p := range map[string][]int{
			"short":        short,
			"duplicate":    duplicate,
			"out of range": outOfRange,
			"negative":     negative,
			"nil":          nil,
		} {
			ctx, err := NewContextFromPermutation(p)
			assert.Nil(t, ctx, name)
			assert.True(t, errors.Is(err, ErrInvalidPermutation), "%s: ожидалась ErrInvalidPermutation, получено %v", name, err)
		}
	})
}
