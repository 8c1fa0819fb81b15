// Package lattice строит таблицы вершин решётки для ядра шума.
//
// Единичная ячейка растянутой решётки размерности dims делится на области:
// порядок дробных частей координат (dims! вариантов, кодируется битовой
// маской попарных сравнений) и полоса floor(сумма дробных частей).
// Для каждой области перечисляются целые смещения вершин, расстояние от
// которых до области (во входных координатах) строго меньше радиуса
// затухания sqrt(2). Только эти вершины могут дать ненулевой вклад.
//
// Расчёт дорогой (для 4D порядка секунды), поэтому таблицы генерируются
// заранее командой latticegen и хранятся в исходниках пакета noise.
package lattice

import (
	"math"
	"sort"
)

const (
	// Квадрат радиуса затухания.
	radiusSq = 2.0
	// margin отсекает вершины ровно на границе радиуса: их вклад нулевой.
	margin = 1e-9
	// Диапазон смещений-кандидатов по каждой оси.
	offsetMin = -1
	offsetMax = 2
)

// Region хранит список смещений вершин для одной области.
// Index = mask*dims + band.
type Region struct {
	Index   int
	Offsets [][]int
}

// Pairs возвращает пары осей (i<j) в порядке битов маски.
func Pairs(dims int) [][2]int {
	var pairs [][2]int
	for i := 0; i < dims; i++ {
		for j := i + 1; j < dims; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs
}

// TableSize возвращает длину таблицы областей (включая индексы
// невозможных масок, для которых список пуст).
func TableSize(dims int) int {
	return (1 << len(Pairs(dims))) * dims
}

// Build строит таблицы для размерности dims с коэффициентом squish
// обратного преобразования решётки. Результат отсортирован по Index.
func Build(dims int, squish float64) []Region {
	pairs := Pairs(dims)
	var regions []Region

	for _, order := range permutations(dims) {
		pos := make([]int, dims)
		for i, axis := range order {
			pos[axis] = i
		}

		mask := 0
		for bit, p := range pairs {
			if pos[p[0]] < pos[p[1]] {
				mask |= 1 << bit
			}
		}

		for band := 0; band < dims; band++ {
			verts := regionVertices(order, band, squish)
			regions = append(regions, Region{
				Index:   mask*dims + band,
				Offsets: reachable(dims, verts, squish),
			})
		}
	}

	sort.Slice(regions, func(i, j int) bool { return regions[i].Index < regions[j].Index })
	return regions
}

// reachable перебирает кандидатов в лексикографическом порядке
// (последняя ось меняется быстрее всех) и оставляет достижимые.
func reachable(dims int, verts [][]float64, squish float64) [][]int {
	centroid := make([]float64, dims)
	for _, v := range verts {
		for k := range centroid {
			centroid[k] += v[k]
		}
	}
	for k := range centroid {
		centroid[k] /= float64(len(verts))
	}

	var radius float64
	for _, v := range verts {
		radius = math.Max(radius, math.Sqrt(dist2(v, centroid)))
	}

	span := offsetMax - offsetMin + 1
	total := 1
	for k := 0; k < dims; k++ {
		total *= span
	}

	var out [][]int
	for n := 0; n < total; n++ {
		offset := make([]int, dims)
		rest := n
		for k := dims - 1; k >= 0; k-- {
			offset[k] = rest%span + offsetMin
			rest /= span
		}

		q := make([]float64, dims)
		for k, v := range offset {
			q[k] = float64(v)
		}
		q = unsquish(q, squish)

		// Дешёвое отсечение по описанной сфере области
		if math.Sqrt(dist2(q, centroid))-radius >= math.Sqrt(radiusSq) {
			continue
		}

		if nearestVertex(q, verts) < radiusSq-margin || hullDist2(q, verts) < radiusSq-margin {
			out = append(out, offset)
		}
	}
	return out
}

// regionVertices возвращает вершины области (симплекс Куна для порядка
// order, обрезанный гиперплоскостями sum=band и sum=band+1) во входных
// координатах.
func regionVertices(order []int, band int, squish float64) [][]float64 {
	dims := len(order)

	kuhn := make([][]float64, 0, dims+1)
	v := make([]float64, dims)
	kuhn = append(kuhn, append([]float64(nil), v...))
	for _, axis := range order {
		v[axis]++
		kuhn = append(kuhn, append([]float64(nil), v...))
	}

	pts := [][]float64{kuhn[band], kuhn[band+1]}
	for _, h := range []int{band, band + 1} {
		for i := 0; i < h; i++ {
			for j := h + 1; j <= dims; j++ {
				t := float64(h-i) / float64(j-i)
				p := make([]float64, dims)
				for k := range p {
					p[k] = kuhn[i][k] + t*(kuhn[j][k]-kuhn[i][k])
				}
				pts = append(pts, p)
			}
		}
	}

	out := make([][]float64, len(pts))
	for i, p := range pts {
		out[i] = unsquish(p, squish)
	}
	return out
}

func unsquish(p []float64, squish float64) []float64 {
	var sum float64
	for _, v := range p {
		sum += v
	}
	s := sum * squish

	out := make([]float64, len(p))
	for k, v := range p {
		out[k] = v + s
	}
	return out
}

func dist2(a, b []float64) float64 {
	var d float64
	for k := range a {
		diff := a[k] - b[k]
		d += diff * diff
	}
	return d
}

func nearestVertex(p []float64, verts [][]float64) float64 {
	best := math.Inf(1)
	for _, v := range verts {
		best = math.Min(best, dist2(p, v))
	}
	return best
}

// hullDist2 возвращает квадрат расстояния от p до выпуклой оболочки verts.
// Оболочка покрывается симплексами из не более чем dims+1 вершин, а
// ближайшая точка симплекса лежит внутри одной из его граней, поэтому
// достаточно проекций на аффинные оболочки всех подмножеств с
// неотрицательными барицентрическими координатами.
func hullDist2(p []float64, verts [][]float64) float64 {
	dims := len(p)
	best := nearestVertex(p, verts)

	for size := 2; size <= dims+1 && size <= len(verts); size++ {
		forEachCombination(len(verts), size, func(idx []int) {
			if d, ok := projectDist2(p, verts, idx); ok && d < best {
				best = d
			}
		})
	}
	return best
}

// projectDist2 проецирует p на аффинную оболочку вершин idx.
// ok=false для вырожденного набора или проекции вне симплекса.
func projectDist2(p []float64, verts [][]float64, idx []int) (float64, bool) {
	dims := len(p)
	s0 := verts[idx[0]]
	k := len(idx) - 1

	edges := make([][]float64, k)
	for i := range edges {
		e := make([]float64, dims)
		for q := range e {
			e[q] = verts[idx[i+1]][q] - s0[q]
		}
		edges[i] = e
	}

	gram := make([][]float64, k)
	rhs := make([]float64, k)
	for i := 0; i < k; i++ {
		gram[i] = make([]float64, k)
		for j := 0; j < k; j++ {
			gram[i][j] = dot(edges[i], edges[j])
		}
		r := make([]float64, dims)
		for q := range r {
			r[q] = p[q] - s0[q]
		}
		rhs[i] = dot(edges[i], r)
	}

	lambda, ok := solve(gram, rhs)
	if !ok {
		return 0, false
	}

	rest := 1.0
	for _, l := range lambda {
		if l < -1e-12 {
			return 0, false
		}
		rest -= l
	}
	if rest < -1e-12 {
		return 0, false
	}

	proj := append([]float64(nil), s0...)
	for i, l := range lambda {
		for q := range proj {
			proj[q] += l * edges[i][q]
		}
	}
	return dist2(proj, p), true
}

// solve решает систему методом Гаусса–Жордана с выбором главного элемента.
func solve(a [][]float64, b []float64) ([]float64, bool) {
	n := len(b)
	m := make([][]float64, n)
	for i := range m {
		m[i] = append(append([]float64(nil), a[i]...), b[i])
	}

	for c := 0; c < n; c++ {
		pivot := c
		for r := c + 1; r < n; r++ {
			if math.Abs(m[r][c]) > math.Abs(m[pivot][c]) {
				pivot = r
			}
		}
		if math.Abs(m[pivot][c]) < 1e-9 {
			return nil, false
		}
		m[c], m[pivot] = m[pivot], m[c]

		for r := 0; r < n; r++ {
			if r == c {
				continue
			}
			f := m[r][c] / m[c][c]
			for q := c; q <= n; q++ {
				m[r][q] -= f * m[c][q]
			}
		}
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = m[i][n] / m[i][i]
	}
	return x, true
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func forEachCombination(n, k int, fn func(idx []int)) {
	idx := make([]int, k)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			fn(idx)
			return
		}
		for i := start; i <= n-(k-depth); i++ {
			idx[depth] = i
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
}

func permutations(n int) [][]int {
	var out [][]int
	cur := make([]int, 0, n)
	used := make([]bool, n)
	var rec func()
	rec = func() {
		if len(cur) == n {
			out = append(out, append([]int(nil), cur...))
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			cur = append(cur, i)
			rec()
			cur = cur[:len(cur)-1]
			used[i] = false
		}
	}
	rec()
	return out
}
