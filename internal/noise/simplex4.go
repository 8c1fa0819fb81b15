package noise

// Eval4 возвращает значение 4D шума в точке (x, y, z, w).
// Четвёртую координату удобно использовать как время для зацикленной
// анимации 3D поля.
func (c *Context) Eval4(x, y, z, w float64) float64 {
	stretchOffset := float64((x + y + z + w) * stretch4D)
	xs := x + stretchOffset
	ys := y + stretchOffset
	zs := z + stretchOffset
	ws := w + stretchOffset

	xsf, xsb := floorInt(xs)
	ysf, ysb := floorInt(ys)
	zsf, zsb := floorInt(zs)
	wsf, wsb := floorInt(ws)

	squishOffset := float64((xsf + ysf + zsf + wsf) * squish4D)
	dx0 := x - (xsf + squishOffset)
	dy0 := y - (ysf + squishOffset)
	dz0 := z - (zsf + squishOffset)
	dw0 := w - (wsf + squishOffset)

	// Все вершины ближе радиуса затухания к любой точке области
	points := lattice4[region4(xs-xsf, ys-ysf, zs-zsf, ws-wsf)]

	var value float64
	for i := range points {
		p := &points[i]
		dx := dx0 - p.dx
		dy := dy0 - p.dy
		dz := dz0 - p.dz
		dw := dw0 - p.dw
		attn := radiusSq - float64(dx*dx) - float64(dy*dy) - float64(dz*dz) - float64(dw*dw)
		if attn > 0 {
			attn *= attn
			value += float64(attn * attn * c.gradient4(xsb+p.ox, ysb+p.oy, zsb+p.oz, wsb+p.ow, dx, dy, dz, dw))
		}
	}

	return value/norm4D + (x*0 + y*0 + z*0 + w*0)
}
