// Command mapview opens an interactive window showing a generated map.
// Cells are filled by biome, coastline edges are stroked, and hovering a
// cell shows its coordinates, elevation, moisture, and biome.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/redblobgames/2543-mapgen1-hexagons/internal/render"
	"github.com/redblobgames/2543-mapgen1-hexagons/internal/world"
)

const (
	screenWidth  = 1280
	screenHeight = 800
)

var backgroundColor = color.RGBA{R: 10, G: 10, B: 20, A: 255}

type viewer struct {
	m      *world.Map
	layout world.Layout

	mapImg   *ebiten.Image
	whiteImg *ebiten.Image
}

func newViewer(m *world.Map) *viewer {
	// Fit the whole region on screen with a small margin.
	n := float64(2*m.Radius + 2)
	cell := math.Min(
		float64(screenWidth)/(world.Sqrt3*n),
		float64(screenHeight)/(1.5*n),
	)

	whiteImg := ebiten.NewImage(1, 1)
	whiteImg.Fill(color.White)

	v := &viewer{
		m: m,
		layout: world.Layout{
			Orientation: world.OrientationPointy,
			Size:        world.Point{X: cell, Y: cell},
			Origin:      world.Point{X: screenWidth / 2, Y: screenHeight / 2},
		},
		mapImg:   ebiten.NewImage(screenWidth, screenHeight),
		whiteImg: whiteImg,
	}
	v.renderMapImage()
	return v
}

// renderMapImage prerenders the static map once; Draw only blits it.
func (v *viewer) renderMapImage() {
	v.mapImg.Fill(backgroundColor)
	for _, h := range v.m.Region.Hexes {
		v.fillHex(h, render.BiomeColor(v.m.Biomes.MustGet(h)))
	}
	coastColor := color.RGBA{R: 240, G: 230, B: 200, A: 255}
	for _, e := range v.m.Edges {
		if coast, _ := v.m.Coastline.Get(e); !coast {
			continue
		}
		a, b := v.layout.EdgeCorners(e)
		vector.StrokeLine(v.mapImg,
			float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			2.5, coastColor, true)
	}
}

func (v *viewer) fillHex(h world.Hex, col color.RGBA) {
	corners := v.layout.Corners(h)
	var path vector.Path
	path.MoveTo(float32(corners[0].X), float32(corners[0].Y))
	for i := 1; i < 6; i++ {
		path.LineTo(float32(corners[i].X), float32(corners[i].Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].ColorR = float32(col.R) / 255
		vs[i].ColorG = float32(col.G) / 255
		vs[i].ColorB = float32(col.B) / 255
		vs[i].ColorA = float32(col.A) / 255
	}
	v.mapImg.DrawTriangles(vs, is, v.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (v *viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(v.mapImg, nil)

	mx, my := ebiten.CursorPosition()
	h := v.layout.PixelToHex(world.Point{X: float64(mx), Y: float64(my)})
	if !v.m.Region.Contains(h) {
		return
	}
	elev, _ := v.m.Elevation.Get(h)
	moist, _ := v.m.Moisture.Get(h)
	biome, _ := v.m.Biomes.Get(h)
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"hex (%d, %d)  elevation %.3f  moisture %.3f  %s",
		h.Q, h.R, elev, moist, biome))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	radius := flag.Int("radius", 10, "hexagon region radius")
	seed := flag.Int64("seed", 42, "noise seed")
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
	slog.Info("map generated", "radius", m.Radius, "hexes", m.HexCount(), "edges", m.EdgeCount())

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Hex Biome Map | ESC to quit")
	if err := ebiten.RunGame(newViewer(m)); err != nil {
		slog.Error("viewer exited", "error", err)
		os.Exit(1)
	}
}
