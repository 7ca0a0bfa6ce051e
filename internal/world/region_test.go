package world

import "testing"

func TestBuildHexagonCount(t *testing.T) {
	for radius := 0; radius <= 6; radius++ {
		rg, err := BuildHexagon(radius)
		if err != nil {
			t.Fatalf("BuildHexagon(%d): %v", radius, err)
		}
		want := 3*radius*radius + 3*radius + 1
		if rg.Len() != want {
			t.Errorf("BuildHexagon(%d).Len() = %d, want %d", radius, rg.Len(), want)
		}
	}
}

func TestBuildHexagonBounds(t *testing.T) {
	const radius = 5
	rg, err := BuildHexagon(radius)
	if err != nil {
		t.Fatal(err)
	}
	for _, h := range rg.Hexes {
		if abs(h.Q) > radius || abs(h.R) > radius || abs(h.Q+h.R) > radius {
			t.Errorf("hex %v outside radius %d", h, radius)
		}
	}
}

func TestBuildHexagonNoDuplicates(t *testing.T) {
	rg, err := BuildHexagon(4)
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[Hex]struct{}, rg.Len())
	for _, h := range rg.Hexes {
		if _, dup := seen[h]; dup {
			t.Fatalf("duplicate hex %v", h)
		}
		seen[h] = struct{}{}
	}
}

func TestBuildHexagonZeroRadius(t *testing.T) {
	rg, err := BuildHexagon(0)
	if err != nil {
		t.Fatal(err)
	}
	if rg.Len() != 1 || rg.Hexes[0] != (Hex{Q: 0, R: 0}) {
		t.Errorf("BuildHexagon(0) = %v, want single origin hex", rg.Hexes)
	}
}

func TestBuildHexagonNegativeRadius(t *testing.T) {
	if _, err := BuildHexagon(-1); err == nil {
		t.Error("BuildHexagon(-1) succeeded, want error")
	}
}

func TestRegionContains(t *testing.T) {
	rg, err := BuildHexagon(2)
	if err != nil {
		t.Fatal(err)
	}
	inside := []Hex{{0, 0}, {2, 0}, {-2, 2}, {0, -2}, {1, 1}}
	for _, h := range inside {
		if !rg.Contains(h) {
			t.Errorf("Contains(%v) = false, want true", h)
		}
	}
	outside := []Hex{{3, 0}, {2, 1}, {-1, -2}, {-3, 1}}
	for _, h := range outside {
		if rg.Contains(h) {
			t.Errorf("Contains(%v) = true, want false", h)
		}
	}
}

func TestRegionContainsMatchesEnumeration(t *testing.T) {
	rg, err := BuildHexagon(3)
	if err != nil {
		t.Fatal(err)
	}
	enumerated := make(map[Hex]struct{}, rg.Len())
	for _, h := range rg.Hexes {
		enumerated[h] = struct{}{}
	}
	for q := -5; q <= 5; q++ {
		for r := -5; r <= 5; r++ {
			h := Hex{Q: q, R: r}
			_, inSet := enumerated[h]
			if inSet != rg.Contains(h) {
				t.Errorf("Contains(%v) = %v disagrees with enumeration", h, rg.Contains(h))
			}
		}
	}
}

func TestDeriveEdgesCount(t *testing.T) {
	// A hexagon region of radius R touches exactly 9R²+15R+6 distinct edges.
	for radius := 0; radius <= 4; radius++ {
		rg, err := BuildHexagon(radius)
		if err != nil {
			t.Fatal(err)
		}
		edges := DeriveEdges(rg)
		want := 9*radius*radius + 15*radius + 6
		if len(edges) != want {
			t.Errorf("radius %d: %d edges, want %d", radius, len(edges), want)
		}
	}
}

func TestDeriveEdgesCanonicalAndDistinct(t *testing.T) {
	rg, err := BuildHexagon(3)
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[Edge]struct{})
	for _, e := range DeriveEdges(rg) {
		if e.Dir < 0 || e.Dir > 2 {
			t.Errorf("edge %v has non-canonical direction", e)
		}
		if _, dup := seen[e]; dup {
			t.Errorf("duplicate edge %v", e)
		}
		seen[e] = struct{}{}
	}
}

func TestDeriveEdgesTouchRegion(t *testing.T) {
	rg, err := BuildHexagon(2)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range DeriveEdges(rg) {
		a, b := e.Hexes()
		if !rg.Contains(a) && !rg.Contains(b) {
			t.Errorf("edge %v touches no region cell", e)
		}
	}
}
