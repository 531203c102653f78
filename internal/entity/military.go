package entity

import (
	"github.com/unshrouded/core/internal/hexmap"
	"github.com/unshrouded/core/internal/property"
	"github.com/unshrouded/core/internal/resource"
	"github.com/unshrouded/core/internal/simid"
)

// AttributesKey names the property storage attached to templates and units.
const AttributesKey = "attributes"

// UnitTemplate describes a kind of military unit. Defined by data files and scripts.
type UnitTemplate struct {
	id         simid.ID
	Type       string
	Cost       resource.ConstructionCosts
	Upkeep     resource.MaintenanceCosts
	Attributes *property.Storage
}

func NewUnitTemplate(id simid.ID, typ string) *UnitTemplate {
	mustKind(id, simid.KindAbstract, "unit template")
	return &UnitTemplate{
		id:         id,
		Type:       typ,
		Cost:       resource.ConstructionCosts{},
		Upkeep:     resource.MaintenanceCosts{},
		Attributes: property.New(id, AttributesKey),
	}
}

func (t *UnitTemplate) ID() simid.ID { return t.id }

// Unit is a military unit on the map.
type Unit struct {
	id           simid.ID
	Position     hexmap.CubeCoords
	Template     simid.ID
	HealthPoints uint16
	Attributes   *property.Storage // copy of the template's, owned by the unit
}

// NewUnit instantiates tmpl at pos.
func NewUnit(id simid.ID, tmpl *UnitTemplate, pos hexmap.CubeCoords, hp uint16) *Unit {
	mustKind(id, simid.KindMapEntity, "unit")
	return &Unit{
		id:           id,
		Position:     pos,
		Template:     tmpl.ID(),
		HealthPoints: hp,
		Attributes:   tmpl.Attributes.Clone(id, AttributesKey),
	}
}

func (u *Unit) ID() simid.ID { return u.id }

// HqUnit is a headquarters. Its place in the chain of command lives in the
// arena's hierarchy, keyed by identity.
type HqUnit struct {
	id            simid.ID
	Position      hexmap.CubeCoords
	Leader        *simid.ID
	Attributes    *property.Storage
	AttachedUnits []simid.ID
}

func NewHqUnit(id simid.ID, pos hexmap.CubeCoords) *HqUnit {
	mustKind(id, simid.KindMapEntity, "headquarters")
	return &HqUnit{id: id, Position: pos, Attributes: property.New(id, AttributesKey)}
}

func (h *HqUnit) ID() simid.ID { return h.id }

// Attach adds a unit under this headquarters once.
func (h *HqUnit) Attach(unit simid.ID) {
	for _, u := range h.AttachedUnits {
		if u == unit {
			return
		}
	}
	h.AttachedUnits = append(h.AttachedUnits, unit)
}
