// Command noisectl вычисляет шум и строит тайлы локально, без сервера.
//
//	noisectl -cmd sample -seed 123 -dims 3 -x 1 -y 1 -z 1
//	noisectl -cmd render -seed 123 -kind simplex2 -size 512 -scale 0.01 -out tile.png
//	noisectl -cmd perm -seed 123
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/annel0/noisefield/internal/field"
	"github.com/annel0/noisefield/internal/noise"
	"github.com/annel0/noisefield/internal/registry"
	"github.com/annel0/noisefield/internal/vec"
)

// Options содержит разобранные флаги.
type Options struct {
	Command   string
	Seed      int64
	Dims      int
	X, Y      float64
	Z, W      float64
	Kind      string
	TileX     int
	TileY     int
	Size      int
	Scale     float64
	Normalize bool
	Workers   int
	Out       string
}

func main() {
	var opts Options
	flag.StringVar(&opts.Command, "cmd", "sample", "Command: sample, render, perm")
	flag.Int64Var(&opts.Seed, "seed", 0, "Noise seed")
	flag.IntVar(&opts.Dims, "dims", 2, "Dimensions for sample (2, 3, 4)")
	flag.Float64Var(&opts.X, "x", 0, "X coordinate")
	flag.Float64Var(&opts.Y, "y", 0, "Y coordinate")
	flag.Float64Var(&opts.Z, "z", 0, "Z coordinate (sample) or slice (render)")
	flag.Float64Var(&opts.W, "w", 0, "W coordinate (sample) or slice (render)")
	flag.StringVar(&opts.Kind, "kind", string(field.KindSimplex2), "Tile source: "+kindList())
	flag.IntVar(&opts.TileX, "tx", 0, "Tile X")
	flag.IntVar(&opts.TileY, "ty", 0, "Tile Y")
	flag.IntVar(&opts.Size, "size", 256, "Tile size in pixels")
	flag.Float64Var(&opts.Scale, "scale", 0.01, "Field units per pixel")
	flag.BoolVar(&opts.Normalize, "normalize", false, "Map [-1,1] to [0,1]")
	flag.IntVar(&opts.Workers, "workers", 0, "Raster workers (0 = NumCPU)")
	flag.StringVar(&opts.Out, "out", "tile.png", "Output file: .png or .nfh")
	flag.Parse()

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		log.Fatalf("❌ %s failed: %v", opts.Command, err)
	}
}

func run(ctx context.Context, opts Options, out io.Writer) error {
	switch opts.Command {
	case "sample":
		return sample(opts, out)
	case "render":
		return render(ctx, opts, out)
	case "perm":
		return printPermutation(opts, out)
	default:
		return fmt.Errorf("unknown command %q", opts.Command)
	}
}

func sample(opts Options, out io.Writer) error {
	ctx := noise.NewContext(opts.Seed)

	var v float64
	switch opts.Dims {
	case 2:
		v = ctx.Eval2(opts.X, opts.Y)
	case 3:
		v = ctx.Eval3(opts.X, opts.Y, opts.Z)
	case 4:
		v = ctx.Eval4(opts.X, opts.Y, opts.Z, opts.W)
	default:
		return fmt.Errorf("unsupported dims %d", opts.Dims)
	}

	_, err := fmt.Fprintf(out, "%.17g\n", v)
	return err
}

func render(ctx context.Context, opts Options, out io.Writer) error {
	kind, err := field.ParseKind(opts.Kind)
	if err != nil {
		return err
	}
	spec := field.TileSpec{
		Kind:      kind,
		Coords:    vec.Vec2{X: opts.TileX, Y: opts.TileY},
		Size:      opts.Size,
		Scale:     opts.Scale,
		Z:         opts.Z,
		W:         opts.W,
		Normalize: opts.Normalize,
	}
	if err := spec.Validate(field.MaxTileSize); err != nil {
		return err
	}
	ext := strings.ToLower(filepath.Ext(opts.Out))
	if ext != ".png" && ext != ".nfh" {
		return fmt.Errorf("unsupported output extension %q", filepath.Ext(opts.Out))
	}

	nctx := noise.NewContext(opts.Seed)
	src, err := field.NewSource(kind, nctx, opts.Z, opts.W)
	if err != nil {
		return err
	}
	hm, err := field.Rasterize(ctx, src, spec, opts.Workers)
	if err != nil {
		return err
	}

	f, err := os.Create(opts.Out)
	if err != nil {
		return err
	}
	defer f.Close()

	if ext == ".png" {
		lo, hi := field.DisplayRange(opts.Normalize)
		err = hm.WritePNG(f, lo, hi)
	} else {
		var payload []byte
		if payload, err = field.EncodeHeightmap(hm); err == nil {
			_, err = f.Write(payload)
		}
	}
	if err != nil {
		return err
	}

	lo, hi := hm.MinMax()
	_, err = fmt.Fprintf(out, "🖼  %s: %dx%d %s, key %s, range [%.4f, %.4f]\n",
		opts.Out, hm.Width, hm.Height, kind, spec.Key(registry.Fingerprint(nctx)), lo, hi)
	if err != nil {
		return err
	}
	return f.Close()
}

func printPermutation(opts Options, out io.Writer) error {
	ctx := noise.NewContext(opts.Seed)

	fmt.Fprintf(out, "seed: %d\n", opts.Seed)
	fmt.Fprintf(out, "fingerprint: %s\n", registry.Fingerprint(ctx))

	perm := ctx.Permutation()
	for row := 0; row < len(perm); row += 16 {
		parts := make([]string, 0, 16)
		for _, v := range perm[row : row+16] {
			parts = append(parts, fmt.Sprintf("%3d", v))
		}
		if _, err := fmt.Fprintln(out, strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}

func kindList() string {
	names := make([]string, len(field.Kinds))
	for i, k := range field.Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
