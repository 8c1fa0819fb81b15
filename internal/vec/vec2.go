package vec

// Vec2 представляет целочисленные 2D координаты (тайлы, пиксели)
type Vec2 struct {
	X, Y int
}

// Mul умножает вектор на целое
func (v Vec2) Mul(k int) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// TileOrigin возвращает координаты левого верхнего пикселя тайла v
// при стороне тайла size.
func (v Vec2) TileOrigin(size int) Vec2 {
	return v.Mul(size)
}
