package field

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/annel0/noisefield/internal/vec"
)

// ErrInvalidSpec возвращается для некорректных параметров тайла.
var ErrInvalidSpec = errors.New("field: некорректные параметры тайла")

// MaxTileSize задаёт предел стороны тайла по умолчанию.
const MaxTileSize = 1024

// TileSpec описывает тайл: пиксель (i, j) тайла Coords берёт значение
// поля в точке ((Coords.X*Size + i) * Scale, (Coords.Y*Size + j) * Scale).
type TileSpec struct {
	Kind      Kind
	Coords    vec.Vec2
	Size      int
	Scale     float64
	Z, W      float64
	Normalize bool
}

// Validate проверяет параметры; maxSize <= 0 означает MaxTileSize.
func (s TileSpec) Validate(maxSize int) error {
	if maxSize <= 0 {
		maxSize = MaxTileSize
	}
	if _, err := ParseKind(string(s.Kind)); err != nil {
		return err
	}
	if s.Size < 1 || s.Size > maxSize {
		return fmt.Errorf("%w: размер %d вне [1, %d]", ErrInvalidSpec, s.Size, maxSize)
	}
	if !(s.Scale > 0) || math.IsInf(s.Scale, 0) {
		return fmt.Errorf("%w: масштаб %v", ErrInvalidSpec, s.Scale)
	}
	if !(vec.Vec2Float{X: s.Z, Y: s.W}).IsFinite() {
		return fmt.Errorf("%w: z=%v w=%v", ErrInvalidSpec, s.Z, s.W)
	}
	return nil
}

// Origin возвращает координаты поля левого верхнего пикселя тайла.
func (s TileSpec) Origin() vec.Vec2Float {
	return vec.FromVec2(s.Coords.TileOrigin(s.Size)).Mul(s.Scale)
}

// Key возвращает ключ тайла для кэша и хранилища. Все параметры,
// влияющие на пиксели, входят в ключ.
func (s TileSpec) Key(fingerprint string) string {
	norm := "0"
	if s.Normalize {
		norm = "1"
	}
	return fmt.Sprintf("tile:%s:%s:%d:%d:%d:%s:%s:%s:%s",
		fingerprint, s.Kind, s.Coords.X, s.Coords.Y, s.Size,
		formatFloat(s.Scale), formatFloat(s.Z), formatFloat(s.W), norm)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
