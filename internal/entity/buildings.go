package entity

import (
	"github.com/unshrouded/core/internal/hexmap"
	"github.com/unshrouded/core/internal/resource"
	"github.com/unshrouded/core/internal/simid"
)

// Building stands on one tile and is never moved.
type Building struct {
	id          simid.ID
	Type        string
	Position    hexmap.CubeCoords
	Ledger      resource.Ledger
	Maintenance resource.MaintenanceCosts
}

func NewBuilding(id simid.ID, typ string, pos hexmap.CubeCoords) *Building {
	mustKind(id, simid.KindMapEntity, "building")
	return &Building{id: id, Type: typ, Position: pos, Maintenance: resource.MaintenanceCosts{}}
}

func (b *Building) ID() simid.ID { return b.id }

// Infrastructure (roads, pipelines, power lines...) is never moved either.
type Infrastructure struct {
	id          simid.ID
	Type        string
	Position    hexmap.CubeCoords
	Maintenance resource.MaintenanceCosts
}

func NewInfrastructure(id simid.ID, typ string, pos hexmap.CubeCoords) *Infrastructure {
	mustKind(id, simid.KindMapEntity, "infrastructure")
	return &Infrastructure{id: id, Type: typ, Position: pos, Maintenance: resource.MaintenanceCosts{}}
}

func (i *Infrastructure) ID() simid.ID { return i.id }

// SupplyNode stockpiles resources for the units and settlements around it.
type SupplyNode struct {
	id        simid.ID
	Level     uint8
	Position  hexmap.CubeCoords
	Stockpile resource.Ledger
}

func NewSupplyNode(id simid.ID, level uint8, pos hexmap.CubeCoords) *SupplyNode {
	mustKind(id, simid.KindMapEntity, "supply node")
	return &SupplyNode{id: id, Level: level, Position: pos}
}

func (s *SupplyNode) ID() simid.ID { return s.id }
