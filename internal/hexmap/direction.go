package hexmap

import "fmt"

// Direction is one of the six hex edges of a pointy-top grid.
// The numeric order is fixed and indexes directionOffsets.
type Direction uint8

const (
	DirEast      Direction = iota // (+1,  0, -1)
	DirNorthEast                  // (+1, -1,  0)
	DirNorthWest                  // ( 0, -1, +1)
	DirWest                       // (-1,  0, +1)
	DirSouthWest                  // (-1, +1,  0)
	DirSouthEast                  // ( 0, +1, -1)
)

// directionOffsets holds the unit offset of every Direction, same order.
var directionOffsets = [6]CubeCoords{
	{q: 1, r: 0, s: -1},
	{q: 1, r: -1, s: 0},
	{q: 0, r: -1, s: 1},
	{q: -1, r: 0, s: 1},
	{q: -1, r: 1, s: 0},
	{q: 0, r: 1, s: -1},
}

// Directions lists all six directions in table order.
var Directions = [6]Direction{DirEast, DirNorthEast, DirNorthWest, DirWest, DirSouthWest, DirSouthEast}

// Valid reports whether d is one of the six hex edges.
func (d Direction) Valid() bool { return int(d) < len(directionOffsets) }

// Offset returns the unit cube offset for d. Panics on an invalid direction.
func (d Direction) Offset() CubeCoords {
	if !d.Valid() {
		panic(fmt.Sprintf("hexmap: invalid direction %d", d))
	}
	return directionOffsets[d]
}

// Opposite returns the direction pointing the other way.
// Panics on an invalid direction.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		panic(fmt.Sprintf("hexmap: invalid direction %d", d))
	}
	return (d + 3) % 6
}

func (d Direction) String() string {
	switch d {
	case DirEast:
		return "E"
	case DirNorthEast:
		return "NE"
	case DirNorthWest:
		return "NW"
	case DirWest:
		return "W"
	case DirSouthWest:
		return "SW"
	case DirSouthEast:
		return "SE"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Compass is the eight-point direction used by higher-level callers.
type Compass uint8

const (
	North Compass = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// compassToHex collapses the eight compass points onto the six hex edges.
//
//	North     -> NW    South     -> SE
//	NorthEast -> NE    SouthWest -> SW
//	East      -> E     West      -> W
//	SouthEast -> SE    NorthWest -> NW
//
// A pointy-top hex has no edge facing due north or south. North takes the
// western member of the upper pair and South the eastern member of the lower
// pair, so North and South stay opposites.
var compassToHex = [8]Direction{
	North:     DirNorthWest,
	NorthEast: DirNorthEast,
	East:      DirEast,
	SouthEast: DirSouthEast,
	South:     DirSouthEast,
	SouthWest: DirSouthWest,
	West:      DirWest,
	NorthWest: DirNorthWest,
}

// Hex returns the hex edge a compass point resolves to.
func (c Compass) Hex() Direction {
	if int(c) >= len(compassToHex) {
		panic(fmt.Sprintf("hexmap: invalid compass direction %d", c))
	}
	return compassToHex[c]
}

func (c Compass) String() string {
	switch c {
	case North:
		return "North"
	case NorthEast:
		return "NorthEast"
	case East:
		return "East"
	case SouthEast:
		return "SouthEast"
	case South:
		return "South"
	case SouthWest:
		return "SouthWest"
	case West:
		return "West"
	case NorthWest:
		return "NorthWest"
	}
	return fmt.Sprintf("Compass(%d)", uint8(c))
}

// Step moves one tile from c towards the compass point.
func (c CubeCoords) Step(dir Compass) CubeCoords {
	return c.Neighbor(dir.Hex())
}
