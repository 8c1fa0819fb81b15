package field

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
)

// Heightmap хранит прямоугольную карту значений поля построчно.
type Heightmap struct {
	Width, Height int
	Values        []float32
}

// NewHeightmap создаёт карту, заполненную нулями.
func NewHeightmap(width, height int) *Heightmap {
	return &Heightmap{
		Width:  width,
		Height: height,
		Values: make([]float32, width*height),
	}
}

// At возвращает значение пикселя (x, y).
func (h *Heightmap) At(x, y int) float32 {
	return h.Values[y*h.Width+x]
}

// Set записывает значение пикселя (x, y).
func (h *Heightmap) Set(x, y int, v float32) {
	h.Values[y*h.Width+x] = v
}

// MinMax возвращает минимум и максимум конечных значений. Для карты без
// конечных значений возвращает (0, 0).
func (h *Heightmap) MinMax() (lo, hi float32) {
	first := true
	for _, v := range h.Values {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		if first {
			lo, hi = v, v
			first = false
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Gray16 переводит карту в 16-битное серое изображение, линейно отображая
// [lo, hi] на [0, 65535] с насыщением. NaN становится чёрным.
func (h *Heightmap) Gray16(lo, hi float32) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, h.Width, h.Height))
	span := float64(hi - lo)

	for y := 0; y < h.Height; y++ {
		for x := 0; x < h.Width; x++ {
			t := 0.0
			if span > 0 {
				t = (float64(h.At(x, y)) - float64(lo)) / span
			}
			if math.IsNaN(t) || t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
			img.SetGray16(x, y, color.Gray16{Y: uint16(math.Round(t * 65535))})
		}
	}
	return img
}

// WritePNG пишет карту как 16-битный PNG с диапазоном [lo, hi].
func (h *Heightmap) WritePNG(w io.Writer, lo, hi float32) error {
	return png.Encode(w, h.Gray16(lo, hi))
}

// DisplayRange возвращает диапазон значений для изображения тайла:
// [0, 1] для нормализованных тайлов, иначе [-1, 1].
func DisplayRange(normalized bool) (lo, hi float32) {
	if normalized {
		return 0, 1
	}
	return -1, 1
}
