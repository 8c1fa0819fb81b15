package noise

// Eval3 возвращает значение 3D шума в точке (x, y, z).
func (c *Context) Eval3(x, y, z float64) float64 {
	stretchOffset := float64((x + y + z) * stretch3D)
	xs := x + stretchOffset
	ys := y + stretchOffset
	zs := z + stretchOffset

	// Начало ромбоэдра (растянутого куба)
	xsf, xsb := floorInt(xs)
	ysf, ysb := floorInt(ys)
	zsf, zsb := floorInt(zs)

	squishOffset := float64((xsf + ysf + zsf) * squish3D)
	dx0 := x - (xsf + squishOffset)
	dy0 := y - (ysf + squishOffset)
	dz0 := z - (zsf + squishOffset)

	// Все вершины ближе радиуса затухания к любой точке области
	points := lattice3[region3(xs-xsf, ys-ysf, zs-zsf)]

	var value float64
	for i := range points {
		p := &points[i]
		dx := dx0 - p.dx
		dy := dy0 - p.dy
		dz := dz0 - p.dz
		attn := radiusSq - float64(dx*dx) - float64(dy*dy) - float64(dz*dz)
		if attn > 0 {
			attn *= attn
			value += float64(attn * attn * c.gradient3(xsb+p.ox, ysb+p.oy, zsb+p.oz, dx, dy, dz))
		}
	}

	return value/norm3D + (x*0 + y*0 + z*0)
}
