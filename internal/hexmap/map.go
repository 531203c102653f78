package hexmap

import (
	"fmt"
	"sort"
)

// Map holds every tile of the world keyed by position. It owns the tiles;
// tile layer contents are owned by the tiles.
// Accessed only from the simulation goroutine. Read-only queries are safe to
// share while ledgers are updated.
type Map struct {
	tiles map[CubeCoords]*Tile
}

// NewMap returns an empty map with room for sizeHint tiles.
func NewMap(sizeHint int) *Map {
	return &Map{tiles: make(map[CubeCoords]*Tile, sizeHint)}
}

// NewRectangular lays out an "odd-q" rectangle of flat tiles. Columns run
// left..right, rows top..bottom in offset space.
func NewRectangular(left, right, top, bottom CubeScalar) *Map {
	if left > right || top > bottom {
		panic(fmt.Sprintf("hexmap: invalid rectangle [%d..%d]x[%d..%d]", left, right, top, bottom))
	}
	m := NewMap(int(right-left+1) * int(bottom-top+1))
	for q := left; q <= right; q++ {
		off := q >> 1
		for r := top - off; r <= bottom-off; r++ {
			m.tiles[FromAxial(q, r)] = NewTile(0)
		}
	}
	return m
}

// Get returns the tile at c, or nil if the map has none there.
func (m *Map) Get(c CubeCoords) *Tile {
	return m.tiles[c]
}

// Set places a tile at c, replacing any previous one.
func (m *Map) Set(c CubeCoords, t *Tile) {
	m.tiles[c] = t
}

// Has reports whether c lies on the map.
func (m *Map) Has(c CubeCoords) bool {
	_, ok := m.tiles[c]
	return ok
}

// Len returns the number of tiles.
func (m *Map) Len() int {
	return len(m.tiles)
}

// Each visits every tile. Order is unspecified.
func (m *Map) Each(fn func(CubeCoords, *Tile)) {
	for c, t := range m.tiles {
		fn(c, t)
	}
}

// Coords returns every position in a stable order (q, then r).
func (m *Map) Coords() []CubeCoords {
	out := make([]CubeCoords, 0, len(m.tiles))
	for c := range m.tiles {
		out = append(out, c)
	}
	sortCoords(out)
	return out
}

// NeighborsOf returns the on-map neighbors of c in Direction order.
func (m *Map) NeighborsOf(c CubeCoords) []CubeCoords {
	out := make([]CubeCoords, 0, 6)
	for _, off := range directionOffsets {
		if n, ok := c.CheckedAdd(off); ok && m.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// MaxDistance bounds the distance between any two coordinates.
const MaxDistance = 1 << 16

// HexesWithin returns how many coordinates lie at distance <= radius of a
// point, ignoring map bounds. radius is clamped to 0..MaxDistance.
func HexesWithin(radius int) int64 {
	r := int64(min(max(radius, 0), MaxDistance))
	return 3*r*(r+1) + 1
}

// Within returns the on-map positions at distance <= radius from center,
// in stable order. The work done is bounded by the smaller of the ball
// and the map.
func (m *Map) Within(center CubeCoords, radius int) []CubeCoords {
	if radius < 0 {
		return nil
	}
	radius = min(radius, MaxDistance)
	var out []CubeCoords
	if HexesWithin(radius) >= int64(len(m.tiles)) {
		for c := range m.tiles {
			if c.DistanceTo(center) <= float64(radius) {
				out = append(out, c)
			}
		}
		sortCoords(out)
		return out
	}
	for dq := -radius; dq <= radius; dq++ {
		lo := max(-radius, -dq-radius)
		hi := min(radius, -dq+radius)
		for dr := lo; dr <= hi; dr++ {
			off := CubeCoords{q: CubeScalar(dq), r: CubeScalar(dr), s: CubeScalar(-dq - dr)}
			if c, ok := center.CheckedAdd(off); ok && m.Has(c) {
				out = append(out, c)
			}
		}
	}
	sortCoords(out)
	return out
}

func (m *Map) String() string {
	return fmt.Sprintf("Map(tiles=%d)", m.Len())
}

func sortCoords(cs []CubeCoords) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].q != cs[j].q {
			return cs[i].q < cs[j].q
		}
		return cs[i].r < cs[j].r
	})
}
