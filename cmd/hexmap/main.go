// Command hexmap generates a hexagonal biome map, reports its composition,
// and optionally renders it to a PNG file.
package main

import (
	"flag"
	"image/png"
	"log/slog"
	"os"

	"github.com/redblobgames/2543-mapgen1-hexagons/internal/render"
	"github.com/redblobgames/2543-mapgen1-hexagons/internal/world"
)

func main() {
	radius := flag.Int("radius", 10, "hexagon region radius")
	seed := flag.Int64("seed", 42, "noise seed")
	out := flag.String("out", "", "write the rendered map to this PNG file")
	cellSize := flag.Float64("cell", 12, "cell size in pixels for -out")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := world.DefaultGenConfig()
	cfg.Radius = *radius
	cfg.Seed = *seed

	m, err := world.Generate(cfg)
	if err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("map generated",
		"radius", m.Radius,
		"seed", cfg.Seed,
		"hexes", m.HexCount(),
		"edges", m.EdgeCount(),
	)

	counts := world.BiomeCounts(m)
	for b := world.BiomeOcean; b <= world.BiomeMarsh; b++ {
		if counts[b] > 0 {
			slog.Info("biome", "name", b.String(), "count", counts[b])
		}
	}

	coastEdges := 0
	for _, e := range m.Edges {
		if coast, _ := m.Coastline.Get(e); coast {
			coastEdges++
		}
	}
	slog.Info("coastline", "edges", coastEdges)

	if *out == "" {
		return
	}
	img := render.DrawMap(m, *cellSize)
	f, err := os.Create(*out)
	if err != nil {
		slog.Error("create output file", "error", err)
		os.Exit(1)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		slog.Error("encode png", "error", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		slog.Error("close output file", "error", err)
		os.Exit(1)
	}
	slog.Info("map rendered",
		"path", *out,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy(),
	)
}
