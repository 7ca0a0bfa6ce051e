package world

// Edge identifies the undirected boundary between two adjacent hexes.
// The canonical form keeps Dir in {0, 1, 2}: directions 3-5 describe the
// same physical boundary as directions 0-2 of the neighbor on that side,
// so NewEdge rewrites them. Both (hex, direction) descriptions of one
// boundary collapse to the same Edge value.
type Edge struct {
	Hex Hex
	Dir int
}

// NewEdge returns the canonical edge for the boundary between h and its
// neighbor in the given direction. Any integer direction is accepted; it
// wraps modulo 6 before folding. Canonicalization is idempotent.
func NewEdge(h Hex, direction int) Edge {
	d := normalizeDirection(direction)
	if d >= 3 {
		h = h.Neighbor(d)
		d -= 3
	}
	return Edge{Hex: h, Dir: d}
}

// Hexes returns the two cells bordering the edge: the canonical owner and
// the far side. Either may lie outside any particular region.
func (e Edge) Hexes() (Hex, Hex) {
	return e.Hex, e.Hex.Neighbor(e.Dir)
}
