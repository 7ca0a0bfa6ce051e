package render

import (
	"image/color"
	"testing"

	"github.com/redblobgames/2543-mapgen1-hexagons/internal/world"
)

func TestBiomeColorsCoverAllCategories(t *testing.T) {
	for b := world.BiomeOcean; b <= world.BiomeMarsh; b++ {
		if _, ok := BiomeColors[b]; !ok {
			t.Errorf("no color for biome %v", b)
		}
	}
	if got := BiomeColor(world.Biome(200)); got != (color.RGBA{R: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("unmapped biome color = %v, want magenta", got)
	}
}

func TestDrawMapBounds(t *testing.T) {
	m, err := world.Generate(world.GenConfig{Radius: 3, Seed: 11})
	if err != nil {
		t.Fatal(err)
	}
	img := DrawMap(m, 8)
	// Radius 3 spans 7 cells across; at circumradius 8 that is well over
	// 80 pixels in each direction.
	if img.Bounds().Dx() < 80 || img.Bounds().Dy() < 80 {
		t.Fatalf("implausible image bounds %v", img.Bounds())
	}
}

func TestDrawMapCenterPixel(t *testing.T) {
	m, err := world.Generate(world.GenConfig{Radius: 3, Seed: 11})
	if err != nil {
		t.Fatal(err)
	}
	img := DrawMap(m, 8)

	// The region is symmetric, so the image center lands inside the origin
	// cell, which is filled with that cell's biome color.
	cx := img.Bounds().Dx() / 2
	cy := img.Bounds().Dy() / 2
	want := BiomeColor(m.Biomes.MustGet(world.Hex{Q: 0, R: 0}))
	if got := img.RGBAAt(cx, cy); got != want {
		t.Errorf("center pixel = %v, want %v", got, want)
	}
}
