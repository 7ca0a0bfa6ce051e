// Package render draws finished maps for downstream consumers: the biome
// display palette and a raster renderer used by the PNG export.
package render

import (
	"image/color"

	"github.com/redblobgames/2543-mapgen1-hexagons/internal/world"
)

// BiomeColors maps each biome category to its display color.
var BiomeColors = map[world.Biome]color.RGBA{
	world.BiomeOcean:                    {R: 0x44, G: 0x44, B: 0x7a, A: 0xff},
	world.BiomeBeach:                    {R: 0xa0, G: 0x90, B: 0x77, A: 0xff},
	world.BiomeScorched:                 {R: 0x55, G: 0x55, B: 0x55, A: 0xff},
	world.BiomeBare:                     {R: 0x88, G: 0x88, B: 0x88, A: 0xff},
	world.BiomeTundra:                   {R: 0xbb, G: 0xbb, B: 0xaa, A: 0xff},
	world.BiomeSnow:                     {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	world.BiomeTemperateDesert:          {R: 0xc9, G: 0xd2, B: 0x9b, A: 0xff},
	world.BiomeShrubland:                {R: 0x88, G: 0x99, B: 0x77, A: 0xff},
	world.BiomeTaiga:                    {R: 0x99, G: 0xaa, B: 0x77, A: 0xff},
	world.BiomeGrassland:                {R: 0x88, G: 0xaa, B: 0x55, A: 0xff},
	world.BiomeTemperateDeciduousForest: {R: 0x67, G: 0x94, B: 0x59, A: 0xff},
	world.BiomeTemperateRainForest:      {R: 0x44, G: 0x88, B: 0x55, A: 0xff},
	world.BiomeSubtropicalDesert:        {R: 0xd2, G: 0xb9, B: 0x8b, A: 0xff},
	world.BiomeTropicalSeasonalForest:   {R: 0x55, G: 0x99, B: 0x44, A: 0xff},
	world.BiomeTropicalRainForest:       {R: 0x33, G: 0x77, B: 0x55, A: 0xff},
	world.BiomeMarsh:                    {R: 0x2f, G: 0x66, B: 0x66, A: 0xff},
}

// CoastlineColor strokes edges between ocean and land cells.
var CoastlineColor = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}

// BiomeColor returns the display color for a biome. Unmapped values come
// back magenta so palette gaps are visible rather than silent.
func BiomeColor(b world.Biome) color.RGBA {
	if c, ok := BiomeColors[b]; ok {
		return c
	}
	return color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}
}
