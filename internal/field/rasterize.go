package field

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Rasterize заполняет карту высот тайла spec значениями src. Строки
// распределяются по не более чем workers горутинам (<= 0: по числу CPU).
// Результат не зависит от числа воркеров. Отмена ctx проверяется между
// строками.
func Rasterize(ctx context.Context, src Source, spec TileSpec, workers int) (*Heightmap, error) {
	if err := spec.Validate(spec.Size); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	hm := NewHeightmap(spec.Size, spec.Size)
	origin := spec.Coords.TileOrigin(spec.Size)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for j := 0; j < spec.Size; j++ {
		j := j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			y := float64(origin.Y+j) * spec.Scale
			row := hm.Values[j*hm.Width : (j+1)*hm.Width]
			for i := range row {
				x := float64(origin.X+i) * spec.Scale
				v := src.Sample(x, y)
				if spec.Normalize {
					v = (v + 1) / 2
				}
				row[i] = float32(v)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return hm, nil
}
