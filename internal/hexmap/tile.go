package hexmap

import "github.com/unshrouded/core/internal/simid"

// Tile is a single cell of the world map.
// Entities on a tile are referenced by identity, never owned.
type Tile struct {
	Elevation  int16 // meters
	Natural    NaturalLayer
	Artificial ArtificialLayer
}

// NaturalLayer holds properties set at world generation. Some still change
// during play, e.g. a deposit mined out.
type NaturalLayer struct {
	Deposits []simid.ID
}

// ArtificialLayer holds geographically static, player-built things.
type ArtificialLayer struct {
	SupplyNode     *simid.ID
	Infrastructure []simid.ID
	Settlement     *simid.ID // from remote outpost to capital
	Buildings      []simid.ID
}

// NewTile returns a tile with empty layers.
func NewTile(elevation int16) *Tile {
	return &Tile{Elevation: elevation}
}

// HasSettlement reports whether a settlement occupies the tile.
func (t *Tile) HasSettlement() bool {
	return t.Artificial.Settlement != nil
}

// IsBuiltUp reports whether anything artificial stands on the tile.
func (t *Tile) IsBuiltUp() bool {
	a := &t.Artificial
	return a.SupplyNode != nil || a.Settlement != nil || len(a.Infrastructure) > 0 || len(a.Buildings) > 0
}
