// Package hexmap provides the hex grid coordinate system, tiles and the grid storage.
// Positions use cube coordinates (q, r, s) with q + r + s == 0.
// See https://www.redblobgames.com/grids/hexagons/#coordinates
package hexmap

import (
	"fmt"
	"math"
)

// CubeScalar is the storage type of a single cube axis.
// int16 is plenty for any playable map and keeps CubeCoords at 6 bytes.
type CubeScalar = int16

// CubeCoords is a position on the hex grid. The zero value is the origin.
// Comparable, so it can be used directly as a map key.
type CubeCoords struct {
	q CubeScalar
	r CubeScalar
	s CubeScalar
}

// FromAxial builds coordinates from the two independent axes; s is derived.
func FromAxial(q, r CubeScalar) CubeCoords {
	return FromCube(q, r, -q-r)
}

// FromCube builds coordinates from all three axes.
// Panics if q + r + s != 0: every hash, distance and storage key depends on it.
func FromCube(q, r, s CubeScalar) CubeCoords {
	if int32(q)+int32(r)+int32(s) != 0 {
		panic(fmt.Sprintf("hexmap: invalid cube coordinates (%d, %d, %d): q + r + s != 0", q, r, s))
	}
	return CubeCoords{q: q, r: r, s: s}
}

func (c CubeCoords) Q() CubeScalar { return c.q }
func (c CubeCoords) R() CubeScalar { return c.r }
func (c CubeCoords) S() CubeScalar { return c.s }

// Add returns the component-wise sum.
// Panics if an axis leaves the CubeScalar range.
func (c CubeCoords) Add(o CubeCoords) CubeCoords {
	return fromWide(int32(c.q)+int32(o.q), int32(c.r)+int32(o.r), int32(c.s)+int32(o.s))
}

// CheckedAdd is Add reporting overflow instead of panicking.
func (c CubeCoords) CheckedAdd(o CubeCoords) (CubeCoords, bool) {
	q, r, s := int32(c.q)+int32(o.q), int32(c.r)+int32(o.r), int32(c.s)+int32(o.s)
	if !fits(q) || !fits(r) || !fits(s) {
		return CubeCoords{}, false
	}
	return CubeCoords{q: CubeScalar(q), r: CubeScalar(r), s: CubeScalar(s)}, true
}

// Sub returns the component-wise difference.
// Panics if an axis leaves the CubeScalar range.
func (c CubeCoords) Sub(o CubeCoords) CubeCoords {
	return fromWide(int32(c.q)-int32(o.q), int32(c.r)-int32(o.r), int32(c.s)-int32(o.s))
}

// fromWide narrows axes computed in int32 back to CubeScalar.
func fromWide(q, r, s int32) CubeCoords {
	if !fits(q) || !fits(r) || !fits(s) {
		panic(fmt.Sprintf("hexmap: cube coordinates (%d, %d, %d) overflow %d..%d", q, r, s, math.MinInt16, math.MaxInt16))
	}
	return FromCube(CubeScalar(q), CubeScalar(r), CubeScalar(s))
}

func fits(v int32) bool {
	return v >= math.MinInt16 && v <= math.MaxInt16
}

// Length returns the grid distance from the origin.
// Float so every distance result in the simulation shares one numeric type.
func (c CubeCoords) Length() float64 {
	return float64(abs(c.q)+abs(c.r)+abs(c.s)) / 2
}

// DistanceTo returns the grid distance between c and o. Computed in int32,
// so it never overflows for any two valid coordinates.
func (c CubeCoords) DistanceTo(o CubeCoords) float64 {
	dq := abs32(int32(c.q) - int32(o.q))
	dr := abs32(int32(c.r) - int32(o.r))
	ds := abs32(int32(c.s) - int32(o.s))
	return float64(dq+dr+ds) / 2
}

// Neighbor returns the adjacent coordinates in the given direction.
func (c CubeCoords) Neighbor(d Direction) CubeCoords {
	return c.Add(d.Offset())
}

// Neighbors returns all six adjacent coordinates, in Direction order.
func (c CubeCoords) Neighbors() [6]CubeCoords {
	var out [6]CubeCoords
	for i, off := range directionOffsets {
		out[i] = c.Add(off)
	}
	return out
}

// Key packs the coordinates into a collision-free 32-bit value.
// s is implied by q and r, so (q, r) alone identify the triple.
func (c CubeCoords) Key() uint32 {
	return uint32(uint16(c.q))<<16 | uint32(uint16(c.r))
}

// Hash returns a well-mixed hash consistent with equality.
// The mix is a bijection of Key, so distinct coordinates never collide.
func (c CubeCoords) Hash() uint64 {
	x := uint64(c.Key())
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

func (c CubeCoords) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.q, c.r, c.s)
}

func abs(v CubeScalar) int32 {
	return abs32(int32(v))
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
