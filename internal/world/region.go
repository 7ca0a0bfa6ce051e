package world

import "fmt"

// Region is the finite set of hexes forming a hexagon-shaped map area of a
// given radius. Hexes is filled once in deterministic (q, r) order and
// treated as immutable afterward.
type Region struct {
	Radius int
	Hexes  []Hex
}

// BuildHexagon enumerates the hexagon-shaped region of the given radius.
// A region of radius R holds exactly 3R²+3R+1 cells; radius 0 is the
// single hex at the origin. Negative radii are rejected.
func BuildHexagon(radius int) (Region, error) {
	if radius < 0 {
		return Region{}, fmt.Errorf("build hexagon: negative radius %d", radius)
	}
	hexes := make([]Hex, 0, 3*radius*radius+3*radius+1)
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			hexes = append(hexes, Hex{Q: q, R: r})
		}
	}
	return Region{Radius: radius, Hexes: hexes}, nil
}

// Contains reports whether the coordinate lies inside the region.
// Cube coordinate constraint: max(|q|, |r|, |s|) <= radius.
func (rg Region) Contains(h Hex) bool {
	m := abs(h.Q)
	if r := abs(h.R); r > m {
		m = r
	}
	if s := abs(h.S()); s > m {
		m = s
	}
	return m <= rg.Radius
}

// Len returns the number of cells in the region.
func (rg Region) Len() int {
	return len(rg.Hexes)
}

// DeriveEdges returns every distinct canonical edge touching the region:
// interior edges once, outward boundary edges once. Boundary edges whose
// far side lies outside the region are valid and included. Order is
// deterministic, following region order and direction order.
func DeriveEdges(rg Region) []Edge {
	seen := make(map[Edge]struct{}, 3*len(rg.Hexes))
	edges := make([]Edge, 0, 3*len(rg.Hexes))
	for _, h := range rg.Hexes {
		for d := 0; d < 6; d++ {
			e := NewEdge(h, d)
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}
