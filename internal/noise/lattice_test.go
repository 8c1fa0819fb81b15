package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/noisefield/internal/noise/lattice"
)

// Сгенерированные таблицы должны совпадать с тем, что строит пакет lattice.
func TestLatticeTables_MatchBuilder(t *testing.T) {
	check := func(t *testing.T, dims int, table [][][]int) {
		regions := lattice.Build(dims, Squish(dims))
		require.Len(t, table, lattice.TableSize(dims))

		want := make([][][]int, lattice.TableSize(dims))
		for _, r := range regions {
			want[r.Index] = r.Offsets
		}
		for i := range want {
			assert.Equal(t, want[i], table[i], "область %d", i)
		}
	}

	t.Run("2D", func(t *testing.T) {
		table := make([][][]int, len(lattice2Offsets))
		for i, offsets := range lattice2Offsets {
			for _, o := range offsets {
				table[i] = append(table[i], []int{int(o[0]), int(o[1])})
			}
		}
		check(t, 2, table)
	})

	t.Run("3D", func(t *testing.T) {
		table := make([][][]int, len(lattice3Offsets))
		for i, offsets := range lattice3Offsets {
			for _, o := range offsets {
				table[i] = append(table[i], []int{int(o[0]), int(o[1]), int(o[2])})
			}
		}
		check(t, 3, table)
	})

	t.Run("4D", func(t *testing.T) {
		if testing.Short() {
			t.Skip("построение 4D таблиц долгое")
		}
		table := make([][][]int, len(lattice4Offsets))
		for i, offsets := range lattice4Offsets {
			for _, o := range offsets {
				table[i] = append(table[i], []int{int(o[0]), int(o[1]), int(o[2]), int(o[3])})
			}
		}
		check(t, 4, table)
	})
}

func TestLatticeTables_Shape(t *testing.T) {
	valid := 0
	for _, offsets := range lattice2Offsets {
		assert.Len(t, offsets, 5)
	}
	for _, offsets := range lattice3Offsets {
		if len(offsets) > 0 {
			valid++
			assert.Len(t, offsets, 10)
		}
	}
	assert.Equal(t, 18, valid, "3D: число допустимых областей")

	valid = 0
	for _, offsets := range lattice4Offsets {
		if len(offsets) > 0 {
			valid++
			assert.GreaterOrEqual(t, len(offsets), 17)
			assert.LessOrEqual(t, len(offsets), 20)
		}
	}
	assert.Equal(t, 96, valid, "4D: число допустимых областей")
}

func TestRegion_Band(t *testing.T) {
	assert.Equal(t, 0, band(0.5, 2))
	assert.Equal(t, 1, band(1.0, 2))
	assert.Equal(t, 1, band(1.99, 2))
	assert.Equal(t, 2, band(2.5, 3))
	assert.Equal(t, 3, band(3.2, 4))
	assert.Equal(t, 3, band(4.0, 4))
}

func TestRegion_IndexInRange(t *testing.T) {
	fracs := []float64{0, 0.1, 0.25, 0.5, 0.75, 0.999}
	for _, a := range fracs {
		for _, b := range fracs {
			assert.NotEmpty(t, lattice2[region2(a, b)])
			for _, c := range fracs {
				assert.NotEmpty(t, lattice3[region3(a, b, c)], "3D (%v, %v, %v)", a, b, c)
				for _, d := range fracs {
					assert.NotEmpty(t, lattice4[region4(a, b, c, d)], "4D (%v, %v, %v, %v)", a, b, c, d)
				}
			}
		}
	}
}
