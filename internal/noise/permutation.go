package noise

import "fmt"

// Константы линейного конгруэнтного генератора, которым перемешивается
// перестановка. Менять их нельзя: от них зависит каждое значение шума
// для каждого сида.
const (
	lcgMultiplier int64 = 6364136223846793005
	lcgIncrement  int64 = 1442695040888963407
)

// permutationSize задаёт размер таблицы перестановки; индексы решётки
// заворачиваются маской permutationMask.
const (
	permutationSize = 256
	permutationMask = permutationSize - 1
)

// buildPermutation строит перестановку [0, 256) из сида тасованием
// Фишера–Йетса от последнего индекса к первому и выводит из неё
// индексы 3D градиентов.
func buildPermutation(seed int64) (perm, gradIndex3D [permutationSize]uint8) {
	var source [permutationSize]uint8
	for i := range source {
		source[i] = uint8(i)
	}

	state := seed
	for i := 0; i < 3; i++ {
		state = state*lcgMultiplier + lcgIncrement
	}

	for i := permutationSize - 1; i >= 0; i-- {
		state = state*lcgMultiplier + lcgIncrement
		r := (state + 31) % int64(i+1)
		if r < 0 {
			r += int64(i + 1)
		}

		perm[i] = source[r]
		gradIndex3D[i] = gradientIndex3D(perm[i])
		source[r] = source[i]
	}

	return perm, gradIndex3D
}

// gradientIndex3D возвращает смещение первой компоненты градиента
// в плоской таблице gradients3D.
func gradientIndex3D(p uint8) uint8 {
	return uint8(int(p)%gradientCount3D) * 3
}

// validatePermutation проверяет, что p является биекцией на [0, 256).
func validatePermutation(p []int) error {
	if len(p) != permutationSize {
		return fmt.Errorf("%w: ожидалось %d элементов, получено %d", ErrInvalidPermutation, permutationSize, len(p))
	}

	var seen [permutationSize]bool
	for i, v := range p {
		if v < 0 || v >= permutationSize {
			return fmt.Errorf("%w: p[%d]=%d вне диапазона", ErrInvalidPermutation, i, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: значение %d повторяется", ErrInvalidPermutation, v)
		}
		seen[v] = true
	}
	return nil
}
