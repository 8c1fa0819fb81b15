package noise

// Явные преобразования float64(...) вокруг произведений округляют их
// до сложения и не дают компилятору слить операции в FMA. Без этого
// результат на arm64 отличался бы от amd64 в младших битах.

// Eval2 возвращает значение 2D шума в точке (x, y), примерно в [-1, 1].
// Для NaN и бесконечных координат возвращает NaN.
func (c *Context) Eval2(x, y float64) float64 {
	// Переводим координаты на решётку
	stretchOffset := float64((x + y) * stretch2D)
	xs := x + stretchOffset
	ys := y + stretchOffset

	// Начало ромба (растянутого квадрата), в котором лежит точка
	xsf, xsb := floorInt(xs)
	ysf, ysb := floorInt(ys)

	// Смещение точки от начала ромба во входных координатах
	squishOffset := float64((xsf + ysf) * squish2D)
	dx0 := x - (xsf + squishOffset)
	dy0 := y - (ysf + squishOffset)

	points := lattice2[region2(xs-xsf, ys-ysf)]

	var value float64
	for i := range points {
		p := &points[i]
		dx := dx0 - p.dx
		dy := dy0 - p.dy
		attn := radiusSq - float64(dx*dx) - float64(dy*dy)
		if attn > 0 {
			attn *= attn
			value += float64(attn * attn * c.gradient2(xsb+p.ox, ysb+p.oy, dx, dy))
		}
	}

	return value/norm2D + (x*0 + y*0)
}
