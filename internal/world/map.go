package world

import "fmt"

// Map owns the region, the derived canonical edge set, and the attribute
// stores for one generated map. Stores are write-once per key during their
// generation phase and read-only afterward.
type Map struct {
	Radius int
	Region Region
	Edges  []Edge

	Elevation *Store[Hex, float64]
	Moisture  *Store[Hex, float64]
	Biomes    *Store[Hex, Biome]
	Coastline *Store[Edge, bool]
}

// NewMap creates the aggregate for a built region, deriving the canonical
// edge set and allocating empty attribute stores.
func NewMap(region Region) *Map {
	return &Map{
		Radius:    region.Radius,
		Region:    region,
		Edges:     DeriveEdges(region),
		Elevation: NewStore[Hex, float64](),
		Moisture:  NewStore[Hex, float64](),
		Biomes:    NewStore[Hex, Biome](),
		Coastline: NewStore[Edge, bool](),
	}
}

// HexCount returns the number of cells in the map.
func (m *Map) HexCount() int {
	return m.Region.Len()
}

// EdgeCount returns the number of distinct canonical edges.
func (m *Map) EdgeCount() int {
	return len(m.Edges)
}

// String returns a summary of the map.
func (m *Map) String() string {
	return fmt.Sprintf("Map(radius=%d, hexes=%d, edges=%d)", m.Radius, m.HexCount(), m.EdgeCount())
}
