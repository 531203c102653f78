package hexmap

import "testing"

func TestDirectionOffsetsAreUnit(t *testing.T) {
	for i, d := range directionOffsets {
		if int(d.q)+int(d.r)+int(d.s) != 0 {
			t.Errorf("offset %d %v: q+r+s != 0", i, d)
		}
		if d.Length() != 1 {
			t.Errorf("offset %d %v: length %v, want 1", i, d, d.Length())
		}
	}
}

func TestDirectionOrderMatchesOffsets(t *testing.T) {
	want := map[Direction]CubeCoords{
		DirEast:      FromCube(1, 0, -1),
		DirNorthEast: FromCube(1, -1, 0),
		DirNorthWest: FromCube(0, -1, 1),
		DirWest:      FromCube(-1, 0, 1),
		DirSouthWest: FromCube(-1, 1, 0),
		DirSouthEast: FromCube(0, 1, -1),
	}
	for d, off := range want {
		if d.Offset() != off {
			t.Errorf("%v offset = %v, want %v", d, d.Offset(), off)
		}
		if d.Offset().Add(d.Opposite().Offset()) != (CubeCoords{}) {
			t.Errorf("%v and its opposite do not cancel", d)
		}
	}
}

func TestFromAxialDerivesS(t *testing.T) {
	c := FromAxial(3, -5)
	if c.S() != 2 {
		t.Fatalf("s = %d, want 2", c.S())
	}
}

func TestFromCubeRejectsInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for q+r+s != 0")
		}
	}()
	FromCube(1, 1, 1)
}

func TestAddSubUseEachAxis(t *testing.T) {
	a := FromCube(2, -3, 1)
	b := FromCube(-1, 4, -3)
	sum := a.Add(b)
	if sum != FromCube(1, 1, -2) {
		t.Fatalf("a+b = %v", sum)
	}
	diff := a.Sub(b)
	if diff != FromCube(3, -7, 4) {
		t.Fatalf("a-b = %v", diff)
	}
	if sum.Sub(b) != a {
		t.Fatal("(a+b)-b != a")
	}
}

func TestDistance(t *testing.T) {
	coords := []CubeCoords{
		{},
		FromAxial(1, 0),
		FromAxial(3, -1),
		FromAxial(-4, 2),
		FromAxial(0, 7),
		FromAxial(-10, -10),
	}
	for _, a := range coords {
		if d := a.DistanceTo(a); d != 0 {
			t.Errorf("distance %v to itself = %v", a, d)
		}
		for _, b := range coords {
			if a.DistanceTo(b) != b.DistanceTo(a) {
				t.Errorf("distance %v <-> %v not symmetric", a, b)
			}
		}
	}

	cases := []struct {
		a, b CubeCoords
		want float64
	}{
		{FromAxial(0, 0), FromAxial(3, -1), 3},
		{FromAxial(0, 0), FromAxial(-4, 2), 4},
		{FromAxial(-10, -10), FromAxial(0, 0), 20},
		{FromAxial(1, 0), FromAxial(0, 1), 1},
	}
	for _, tc := range cases {
		if got := tc.a.DistanceTo(tc.b); got != tc.want {
			t.Errorf("distance %v -> %v = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNeighborsAreAdjacent(t *testing.T) {
	c := FromAxial(5, -2)
	for i, n := range c.Neighbors() {
		if c.DistanceTo(n) != 1 {
			t.Errorf("neighbor %d %v at distance %v", i, n, c.DistanceTo(n))
		}
		if n != c.Neighbor(Directions[i]) {
			t.Errorf("Neighbors()[%d] != Neighbor(%v)", i, Directions[i])
		}
	}
}

func TestHashConsistentWithEquality(t *testing.T) {
	seen := make(map[uint64]CubeCoords)
	for q := CubeScalar(-20); q <= 20; q++ {
		for r := CubeScalar(-20); r <= 20; r++ {
			c := FromAxial(q, r)
			if FromCube(q, r, -q-r).Hash() != c.Hash() {
				t.Fatalf("equal coords %v hash differently", c)
			}
			if prev, dup := seen[c.Hash()]; dup {
				t.Fatalf("%v and %v share a hash", prev, c)
			}
			seen[c.Hash()] = c
		}
	}
}

func TestCompassCollapse(t *testing.T) {
	cases := []struct {
		c    Compass
		want Direction
	}{
		{North, DirNorthWest},
		{NorthEast, DirNorthEast},
		{East, DirEast},
		{SouthEast, DirSouthEast},
		{South, DirSouthEast},
		{SouthWest, DirSouthWest},
		{West, DirWest},
		{NorthWest, DirNorthWest},
	}
	for _, tc := range cases {
		if got := tc.c.Hex(); got != tc.want {
			t.Errorf("%v -> %v, want %v", tc.c, got, tc.want)
		}
	}
	if North.Hex().Opposite() != South.Hex() {
		t.Error("North and South are not opposites")
	}
	if East.Hex().Opposite() != West.Hex() {
		t.Error("East and West are not opposites")
	}
	origin := FromAxial(0, 0)
	if origin.Step(East) != FromCube(1, 0, -1) {
		t.Errorf("step east = %v", origin.Step(East))
	}
}

func mustPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: no panic", what)
		}
	}()
	fn()
}

func TestArithmeticOverflowPanics(t *testing.T) {
	edge := FromAxial(32767, -1)
	mustPanic(t, "neighbor past int16", func() { edge.Neighbor(DirEast) })
	mustPanic(t, "add past int16", func() { edge.Add(FromAxial(1, 0)) })
	mustPanic(t, "sub past int16", func() { FromAxial(-32767, 0).Sub(FromAxial(1, 0)) })

	if _, ok := edge.CheckedAdd(DirEast.Offset()); ok {
		t.Error("CheckedAdd accepted overflow")
	}
	if c, ok := edge.CheckedAdd(DirWest.Offset()); !ok || c != FromAxial(32766, -1) {
		t.Errorf("CheckedAdd west = %v, %v", c, ok)
	}
}

func TestDistanceAcrossFullRange(t *testing.T) {
	a := FromAxial(20000, 0)
	b := FromAxial(-20000, 0)
	if d := a.DistanceTo(b); d != 40000 {
		t.Fatalf("distance = %v, want 40000", d)
	}
}

func TestInvalidDirection(t *testing.T) {
	bad := Direction(6)
	if bad.Valid() {
		t.Fatal("Direction(6) valid")
	}
	mustPanic(t, "offset", func() { bad.Offset() })
	mustPanic(t, "opposite", func() { bad.Opposite() })
	if bad.String() != "Direction(6)" {
		t.Errorf("String = %q", bad.String())
	}
	if DirSouthEast.String() != "SE" {
		t.Errorf("SE String = %q", DirSouthEast.String())
	}
}
