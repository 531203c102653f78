package entity

import (
	"github.com/unshrouded/core/internal/hexmap"
	"github.com/unshrouded/core/internal/simid"
)

// Settlement is a lived-in place of any size, from remote outpost to capital.
type Settlement struct {
	id         simid.ID
	Name       string
	Position   hexmap.CubeCoords
	Leader     *simid.ID
	Population []simid.ID // population groups
}

func NewSettlement(id simid.ID, name string, pos hexmap.CubeCoords) *Settlement {
	mustKind(id, simid.KindMapEntity, "settlement")
	return &Settlement{id: id, Name: name, Position: pos}
}

func (s *Settlement) ID() simid.ID { return s.id }
