package world

import (
	"github.com/unshrouded/core/internal/hexmap"
	"github.com/unshrouded/core/internal/simid"
)

// AOIGrid buckets movable entities into square cells of axial space so
// radius queries only visit nearby cells.
// Accessed only from the simulation goroutine, no locks.

const cellSize = 8

type cellKey struct {
	cq int32
	cr int32
}

func toCellCoord(v int32) int32 {
	if v < 0 {
		return (v - cellSize + 1) / cellSize
	}
	return v / cellSize
}

// AOIGrid tracks which entities are in which cells.
type AOIGrid struct {
	cells map[cellKey]map[simid.ID]struct{}
}

func NewAOIGrid() *AOIGrid {
	return &AOIGrid{
		cells: make(map[cellKey]map[simid.ID]struct{}),
	}
}

func (g *AOIGrid) key(pos hexmap.CubeCoords) cellKey {
	return cellKey{cq: toCellCoord(int32(pos.Q())), cr: toCellCoord(int32(pos.R()))}
}

// Add places an entity into the grid.
func (g *AOIGrid) Add(id simid.ID, pos hexmap.CubeCoords) {
	k := g.key(pos)
	cell := g.cells[k]
	if cell == nil {
		cell = make(map[simid.ID]struct{})
		g.cells[k] = cell
	}
	cell[id] = struct{}{}
}

// Remove takes an entity out of the grid.
func (g *AOIGrid) Remove(id simid.ID, pos hexmap.CubeCoords) {
	k := g.key(pos)
	cell := g.cells[k]
	if cell != nil {
		delete(cell, id)
		if len(cell) == 0 {
			delete(g.cells, k)
		}
	}
}

// Move updates an entity's cell when its position changes.
func (g *AOIGrid) Move(id simid.ID, from, to hexmap.CubeCoords) {
	if g.key(from) == g.key(to) {
		return
	}
	g.Remove(id, from)
	g.Add(id, to)
}

// Nearby returns every entity in the cells overlapping the axial box that
// contains all hexes within radius of center. Caller does fine-grained
// distance filtering. When the box spans more cells than are occupied, the
// occupied cells are scanned instead.
func (g *AOIGrid) Nearby(center hexmap.CubeCoords, radius int) []simid.ID {
	if radius < 0 {
		return nil
	}
	q, r, rad := int32(center.Q()), int32(center.R()), int32(min(radius, hexmap.MaxDistance))
	loQ, hiQ := toCellCoord(q-rad), toCellCoord(q+rad)
	loR, hiR := toCellCoord(r-rad), toCellCoord(r+rad)
	var result []simid.ID
	if int64(hiQ-loQ+1)*int64(hiR-loR+1) > int64(len(g.cells)) {
		for k, cell := range g.cells {
			if k.cq < loQ || k.cq > hiQ || k.cr < loR || k.cr > hiR {
				continue
			}
			for id := range cell {
				result = append(result, id)
			}
		}
		return result
	}
	for cq := loQ; cq <= hiQ; cq++ {
		for cr := loR; cr <= hiR; cr++ {
			for id := range g.cells[cellKey{cq: cq, cr: cr}] {
				result = append(result, id)
			}
		}
	}
	return result
}

// Len returns the number of indexed entities.
func (g *AOIGrid) Len() int {
	n := 0
	for _, cell := range g.cells {
		n += len(cell)
	}
	return n
}
