// Package world provides the hexagonal map model: axial coordinates,
// canonical edges, hexagon-shaped regions, keyed attribute stores, and the
// noise-driven biome generation pipeline.
// Uses axial coordinates (q, r) for the hex grid.
package world

// Hex represents a cell position on the hex grid using axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
type Hex struct {
	Q int
	R int
}

// S returns the implicit third cube coordinate.
func (h Hex) S() int {
	return -h.Q - h.R
}

// hexDirections defines the six neighbor offsets in axial coordinates.
// Directions are numbered 0-5 in a fixed cyclic order. Opposite directions
// differ by 3, so hexDirections[(d+3)%6] == -hexDirections[d]; edge
// canonicalization relies on this.
var hexDirections = [6]Hex{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// normalizeDirection wraps any integer direction into [0, 6).
func normalizeDirection(direction int) int {
	d := direction % 6
	if d < 0 {
		d += 6
	}
	return d
}

// Neighbor returns the adjacent hex in the given cyclic direction.
// Any integer is accepted; the direction wraps modulo 6.
func (h Hex) Neighbor(direction int) Hex {
	dir := hexDirections[normalizeDirection(direction)]
	return Hex{Q: h.Q + dir.Q, R: h.R + dir.R}
}

// Neighbors returns the six adjacent hex coordinates in direction order.
func (h Hex) Neighbors() [6]Hex {
	var result [6]Hex
	for i, dir := range hexDirections {
		result[i] = Hex{Q: h.Q + dir.Q, R: h.R + dir.R}
	}
	return result
}

// Add returns the componentwise sum of two coordinates.
func (h Hex) Add(other Hex) Hex {
	return Hex{Q: h.Q + other.Q, R: h.R + other.R}
}

// Distance returns the hex grid distance between two coordinates.
func Distance(a, b Hex) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	// Max of the three absolute differences in cube coordinates.
	max := dq
	if dr > max {
		max = dr
	}
	if ds > max {
		max = ds
	}
	return max
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
