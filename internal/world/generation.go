// Map generation: two independently seeded simplex noise fields sampled
// over the region drive the per-cell biome classification.

package world

import (
	"fmt"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds map generation parameters.
type GenConfig struct {
	Radius int    // Hexagon region radius, at least 1
	Seed   int64  // Elevation noise seed; moisture uses Seed+1
	Layout Layout // Projection for noise sampling; zero value means DefaultLayout
}

// DefaultGenConfig returns a reasonable starting configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Radius: 10,
		Seed:   42,
		Layout: DefaultLayout(),
	}
}

// Generate builds a complete map in strict phase order: region, canonical
// edge set, elevation/moisture sampling, biome classification, coastline
// marking. Each phase fills its store completely before the next reads it.
// Identical config produces bit-identical stores.
func Generate(cfg GenConfig) (*Map, error) {
	if cfg.Radius < 1 {
		return nil, fmt.Errorf("generate: radius must be positive, got %d", cfg.Radius)
	}
	if cfg.Layout.Size.X == 0 && cfg.Layout.Size.Y == 0 {
		cfg.Layout = DefaultLayout()
	}

	region, err := BuildHexagon(cfg.Radius)
	if err != nil {
		return nil, err
	}

	m := NewMap(region)
	sampleFields(m, cfg)
	classifyBiomes(m)
	markCoastlines(m)
	return m, nil
}

// sampleFields fills the elevation and moisture stores. Each cell center is
// projected onto the plane and scaled by 1/radius so noise frequency does
// not depend on map size. The two fields use independently seeded
// generators and stay uncorrelated.
func sampleFields(m *Map, cfg GenConfig) {
	elevNoise := opensimplex.New(cfg.Seed)
	moistNoise := opensimplex.New(cfg.Seed + 1)

	scale := 1.0 / float64(m.Radius)
	for _, h := range m.Region.Hexes {
		p := cfg.Layout.HexToPixel(h)
		x := p.X * scale
		y := p.Y * scale
		m.Elevation.Set(h, elevNoise.Eval2(x, y))
		m.Moisture.Set(h, moistNoise.Eval2(x, y))
	}
}

// classifyBiomes fills the biome store from the finished elevation and
// moisture stores.
func classifyBiomes(m *Map) {
	for _, h := range m.Region.Hexes {
		m.Biomes.Set(h, Classify(m.Elevation.MustGet(h), m.Moisture.MustGet(h)))
	}
}

// markCoastlines fills the per-edge coastline store. An edge is coastline
// when both bordering cells lie inside the region and exactly one of them
// is ocean. Outward boundary edges are never coastline.
func markCoastlines(m *Map) {
	for _, e := range m.Edges {
		a, b := e.Hexes()
		coast := false
		if m.Region.Contains(a) && m.Region.Contains(b) {
			coast = (m.Biomes.MustGet(a) == BiomeOcean) != (m.Biomes.MustGet(b) == BiomeOcean)
		}
		m.Coastline.Set(e, coast)
	}
}

// BiomeCounts returns the biome distribution over the map.
func BiomeCounts(m *Map) map[Biome]int {
	counts := make(map[Biome]int)
	for _, h := range m.Region.Hexes {
		counts[m.Biomes.MustGet(h)]++
	}
	return counts
}
