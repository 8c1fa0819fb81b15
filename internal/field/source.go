// Package field превращает контекст шума в растровые тайлы: двумерные
// срезы полей, параллельная растеризация, кодек карт высот и PNG.
package field

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aquilax/go-perlin"
	"github.com/cespare/xxhash/v2"

	"github.com/annel0/noisefield/internal/noise"
)

// ErrUnknownKind возвращается для неизвестного типа источника.
var ErrUnknownKind = errors.New("field: неизвестный тип источника")

// Source задаёт двумерный вид поля шума. Реализации должны быть безопасны
// для вызова из нескольких горутин.
type Source interface {
	Sample(x, y float64) float64
}

// Kind: тип источника тайла.
type Kind string

const (
	KindSimplex2 Kind = "simplex2"
	KindSimplex3 Kind = "simplex3"
	KindSimplex4 Kind = "simplex4"
	KindPerlin2  Kind = "perlin2"
)

// Kinds перечисляет поддерживаемые типы.
var Kinds = []Kind{KindSimplex2, KindSimplex3, KindSimplex4, KindPerlin2}

// ParseKind разбирает тип источника без учёта регистра.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Plane даёт 2D шум контекста.
type Plane struct {
	Ctx *noise.Context
}

func (p Plane) Sample(x, y float64) float64 {
	return p.Ctx.Eval2(x, y)
}

// Slice3 берёт срез 3D шума плоскостью z = Z. Меняя Z как время, получают
// плавно меняющуюся анимацию.
type Slice3 struct {
	Ctx *noise.Context
	Z   float64
}

func (s Slice3) Sample(x, y float64) float64 {
	return s.Ctx.Eval3(x, y, s.Z)
}

// Slice4 берёт срез 4D шума при фиксированных z и w.
type Slice4 struct {
	Ctx  *noise.Context
	Z, W float64
}

func (s Slice4) Sample(x, y float64) float64 {
	return s.Ctx.Eval4(x, y, s.Z, s.W)
}

// Perlin: классический шум Перлина (одна октава) для сравнения с симплексом.
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin создаёт источник Перлина. Сид выводится из перестановки
// контекста, так что контексты с одинаковым полем дают одинаковый Перлин.
func NewPerlin(ctx *noise.Context) *Perlin {
	alpha := 2.0 // Сглаживание шума
	beta := 2.0  // Частота шума
	n := int32(1)
	return &Perlin{p: perlin.NewPerlin(alpha, beta, n, perlinSeed(ctx))}
}

func (p *Perlin) Sample(x, y float64) float64 {
	return p.p.Noise2D(x, y)
}

func perlinSeed(ctx *noise.Context) int64 {
	var buf [256]byte
	for i, v := range ctx.Permutation() {
		buf[i] = byte(v)
	}
	return int64(xxhash.Sum64(buf[:]))
}

// NewSource строит источник типа kind поверх контекста. Z и W
// используются только срезами 3D и 4D.
func NewSource(kind Kind, ctx *noise.Context, z, w float64) (Source, error) {
	switch kind {
	case KindSimplex2:
		return Plane{Ctx: ctx}, nil
	case KindSimplex3:
		return Slice3{Ctx: ctx, Z: z}, nil
	case KindSimplex4:
		return Slice4{Ctx: ctx, Z: z, W: w}, nil
	case KindPerlin2:
		return NewPerlin(ctx), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
