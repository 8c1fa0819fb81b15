package noise

//go:generate go run ../../cmd/latticegen -out lattice_tables.go

// Решётка задаётся в «растянутых» координатах: единичная ячейка делится
// на области по порядку дробных частей координат и по полосе их суммы.
// Для каждой области заранее известен список вершин решётки, которые
// могут находиться ближе радиуса затухания хотя бы к одной её точке.

const (
	stretch2D = -0.211324865405187 // (1/sqrt(2+1)-1)/2
	squish2D  = 0.366025403784439  // (sqrt(2+1)-1)/2
	stretch3D = -1.0 / 6           // (1/sqrt(3+1)-1)/3
	squish3D  = 1.0 / 3            // (sqrt(3+1)-1)/3
	stretch4D = -0.138196601125011 // (1/sqrt(4+1)-1)/4
	squish4D  = 0.309016994374947  // (sqrt(4+1)-1)/4

	norm2D = 47
	norm3D = 103
	norm4D = 30

	// Квадрат радиуса затухания вклада вершины.
	radiusSq = 2
)

// Squish возвращает коэффициент обратного преобразования решётки для
// размерности dims (2, 3 или 4). Используется генератором таблиц.
func Squish(dims int) float64 {
	switch dims {
	case 2:
		return squish2D
	case 3:
		return squish3D
	case 4:
		return squish4D
	}
	return 0
}

type latticePoint2 struct {
	dx, dy float64
	ox, oy int64
}

type latticePoint3 struct {
	dx, dy, dz float64
	ox, oy, oz int64
}

type latticePoint4 struct {
	dx, dy, dz, dw float64
	ox, oy, oz, ow int64
}

var (
	lattice2 [len(lattice2Offsets)][]latticePoint2
	lattice3 [len(lattice3Offsets)][]latticePoint3
	lattice4 [len(lattice4Offsets)][]latticePoint4
)

// Смещения вершин переводятся из координат решётки в пространство входа
// один раз при загрузке пакета.
func init() {
	for r, offsets := range lattice2Offsets {
		for _, o := range offsets {
			s := float64(float64(int(o[0])+int(o[1])) * squish2D)
			lattice2[r] = append(lattice2[r], latticePoint2{
				dx: float64(o[0]) + s, dy: float64(o[1]) + s,
				ox: int64(o[0]), oy: int64(o[1]),
			})
		}
	}
	for r, offsets := range lattice3Offsets {
		for _, o := range offsets {
			s := float64(float64(int(o[0])+int(o[1])+int(o[2])) * squish3D)
			lattice3[r] = append(lattice3[r], latticePoint3{
				dx: float64(o[0]) + s, dy: float64(o[1]) + s, dz: float64(o[2]) + s,
				ox: int64(o[0]), oy: int64(o[1]), oz: int64(o[2]),
			})
		}
	}
	for r, offsets := range lattice4Offsets {
		for _, o := range offsets {
			s := float64(float64(int(o[0])+int(o[1])+int(o[2])+int(o[3])) * squish4D)
			lattice4[r] = append(lattice4[r], latticePoint4{
				dx: float64(o[0]) + s, dy: float64(o[1]) + s, dz: float64(o[2]) + s, dw: float64(o[3]) + s,
				ox: int64(o[0]), oy: int64(o[1]), oz: int64(o[2]), ow: int64(o[3]),
			})
		}
	}
}

// rank возвращает 1, если ось a стоит в порядке раньше оси b.
// Равенство разрешается в пользу оси с меньшим номером.
func rank(a, b float64) int {
	if a >= b {
		return 1
	}
	return 0
}

// band возвращает номер полосы floor(sum), ограниченный [0, dims-1].
// Для NaN получается 0: результат всё равно станет NaN.
func band(sum float64, dims int) int {
	b := 0
	for k := 1; k < dims; k++ {
		if sum >= float64(k) {
			b = k
		}
	}
	return b
}

func region2(xins, yins float64) int {
	mask := rank(xins, yins)
	return mask*2 + band(xins+yins, 2)
}

func region3(xins, yins, zins float64) int {
	mask := rank(xins, yins) |
		rank(xins, zins)<<1 |
		rank(yins, zins)<<2
	return mask*3 + band(xins+yins+zins, 3)
}

func region4(xins, yins, zins, wins float64) int {
	mask := rank(xins, yins) |
		rank(xins, zins)<<1 |
		rank(xins, wins)<<2 |
		rank(yins, zins)<<3 |
		rank(yins, wins)<<4 |
		rank(zins, wins)<<5
	return mask*4 + band(xins+yins+zins+wins, 4)
}
