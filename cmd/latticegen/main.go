// latticegen генерирует таблицы вершин решётки для пакета noise.
//
//	go run ./cmd/latticegen -out internal/noise/lattice_tables.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"

	"github.com/annel0/noisefield/internal/noise"
	"github.com/annel0/noisefield/internal/noise/lattice"
)

func main() {
	out := flag.String("out", "lattice_tables.go", "Output file")
	pkg := flag.String("package", "noise", "Package name of the generated file")
	flag.Parse()

	var buf bytes.Buffer
	buf.WriteString("// Code generated by latticegen; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n", *pkg)

	for _, dims := range []int{2, 3, 4} {
		regions := lattice.Build(dims, noise.Squish(dims))
		writeTable(&buf, dims, regions)
		log.Printf("✅ %dD: %d областей", dims, len(regions))
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("❌ Ошибка форматирования: %v", err)
	}

	if err := os.WriteFile(*out, src, 0644); err != nil {
		log.Fatalf("❌ Ошибка записи %s: %v", *out, err)
	}
	log.Printf("📄 Таблицы записаны в %s", *out)
}

func writeTable(buf *bytes.Buffer, dims int, regions []lattice.Region) {
	fmt.Fprintf(buf, "\nvar lattice%dOffsets = [%d][][%d]int8{\n", dims, lattice.TableSize(dims), dims)
	for _, r := range regions {
		points := make([]string, len(r.Offsets))
		for i, o := range r.Offsets {
			coords := make([]string, len(o))
			for k, v := range o {
				coords[k] = fmt.Sprint(v)
			}
			points[i] = "{" + strings.Join(coords, ", ") + "}"
		}
		fmt.Fprintf(buf, "\t%d: {%s},\n", r.Index, strings.Join(points, ", "))
	}
	buf.WriteString("}\n")
}
