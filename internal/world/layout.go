package world

import "math"

// Sqrt3 shows up throughout hex-to-plane math.
const Sqrt3 = 1.7320508075688772935274463415059

// Point is a position in continuous 2D space.
type Point struct {
	X float64
	Y float64
}

// Orientation holds the forward and inverse hex-to-plane matrices plus the
// angle of the first cell corner, in multiples of 60 degrees.
type Orientation struct {
	F0, F1, F2, F3 float64
	B0, B1, B2, B3 float64
	startAngle     float64
}

// OrientationPointy places cells with a vertex up; OrientationFlat with an
// edge up.
var (
	OrientationPointy = Orientation{
		F0: Sqrt3, F1: Sqrt3 / 2, F2: 0, F3: 3.0 / 2,
		B0: Sqrt3 / 3, B1: -1.0 / 3, B2: 0, B3: 2.0 / 3,
		startAngle: 0.5,
	}
	OrientationFlat = Orientation{
		F0: 3.0 / 2, F1: 0, F2: Sqrt3 / 2, F3: Sqrt3,
		B0: 2.0 / 3, B1: 0, B2: -1.0 / 3, B3: Sqrt3 / 3,
		startAngle: 0,
	}
)

// Layout projects hex coordinates onto the plane. Size is the cell
// circumradius per axis; Origin is the plane position of Hex{0, 0}.
type Layout struct {
	Orientation Orientation
	Size        Point
	Origin      Point
}

// DefaultLayout returns the projection used for noise sampling when the
// generation config does not provide one: pointy-top, unit cell size,
// origin at Hex{0, 0}.
func DefaultLayout() Layout {
	return Layout{Orientation: OrientationPointy, Size: Point{X: 1, Y: 1}}
}

// HexToPixel returns the center of the cell on the plane.
func (l Layout) HexToPixel(h Hex) Point {
	o := l.Orientation
	x := (o.F0*float64(h.Q) + o.F1*float64(h.R)) * l.Size.X
	y := (o.F2*float64(h.Q) + o.F3*float64(h.R)) * l.Size.Y
	return Point{X: x + l.Origin.X, Y: y + l.Origin.Y}
}

// PixelToHex returns the cell containing the plane position.
func (l Layout) PixelToHex(p Point) Hex {
	o := l.Orientation
	px := (p.X - l.Origin.X) / l.Size.X
	py := (p.Y - l.Origin.Y) / l.Size.Y
	q := o.B0*px + o.B1*py
	r := o.B2*px + o.B3*py
	return axialRound(q, r)
}

// Corners returns the six cell corners, starting from the orientation's
// first corner and proceeding in increasing angle.
func (l Layout) Corners(h Hex) [6]Point {
	c := l.HexToPixel(h)
	var corners [6]Point
	for i := 0; i < 6; i++ {
		angle := 2 * math.Pi * (l.Orientation.startAngle + float64(i)) / 6
		corners[i] = Point{
			X: c.X + l.Size.X*math.Cos(angle),
			Y: c.Y + l.Size.Y*math.Sin(angle),
		}
	}
	return corners
}

// EdgeCorners returns the two endpoints of the edge segment on the plane:
// the corners shared by the edge's two bordering cells.
func (l Layout) EdgeCorners(e Edge) (Point, Point) {
	a, b := e.Hexes()
	ca := l.HexToPixel(a)
	cb := l.HexToPixel(b)
	mx := (ca.X + cb.X) / 2
	my := (ca.Y + cb.Y) / 2
	// The perpendicular offset is computed in unit-cell space and scaled
	// back per axis, so an anisotropic Size still lands on true corners.
	dx := (cb.X - ca.X) / l.Size.X
	dy := (cb.Y - ca.Y) / l.Size.Y
	// Half the edge length is the center distance over 2·√3.
	k := 1.0 / (2 * Sqrt3)
	return Point{X: mx - dy*k*l.Size.X, Y: my + dx*k*l.Size.Y},
		Point{X: mx + dy*k*l.Size.X, Y: my - dx*k*l.Size.Y}
}

func axialRound(q, r float64) Hex {
	x, y, z := q, -q-r, r
	rx := math.Round(x)
	ry := math.Round(y)
	rz := math.Round(z)
	dx := math.Abs(rx - x)
	dy := math.Abs(ry - y)
	dz := math.Abs(rz - z)
	if dx > dy && dx > dz {
		rx = -ry - rz
	} else if dy <= dz {
		rz = -rx - ry
	}
	return Hex{Q: int(rx), R: int(rz)}
}
