// Package world ties the grid storage and the entity arena together: it
// places entities on tiles, keeps tile layers in sync with the arena, and
// answers spatial queries.
package world

import (
	"errors"
	"fmt"
	"sort"

	"github.com/unshrouded/core/internal/core/ecs"
	"github.com/unshrouded/core/internal/entity"
	"github.com/unshrouded/core/internal/hexmap"
	"github.com/unshrouded/core/internal/resource"
	"github.com/unshrouded/core/internal/simid"
)

var (
	ErrOffMap        = errors.New("world: position is not on the map")
	ErrOccupied      = errors.New("world: tile slot already occupied")
	ErrUnknownEntity = errors.New("world: unknown entity")
)

// State holds the in-memory simulation state.
// Accessed only from the simulation goroutine; no locks needed.
type State struct {
	Map *hexmap.Map
	ECS *ecs.World

	Buildings      *ecs.Store[entity.Building]
	Infrastructure *ecs.Store[entity.Infrastructure]
	SupplyNodes    *ecs.Store[entity.SupplyNode]
	Settlements    *ecs.Store[entity.Settlement]
	Populations    *ecs.Store[entity.PopulationGroup]
	Leaders        *ecs.Store[entity.Leader]
	Templates      *ecs.Store[entity.UnitTemplate]
	Units          *ecs.Store[entity.Unit]
	Headquarters   *ecs.Store[entity.HqUnit]
	Nations        *ecs.Store[entity.Nation]
	Deposits       *ecs.Store[resource.Deposit]

	// Ledgers indexes every resource ledger owned by a record above.
	Ledgers *ecs.Store[resource.Ledger]

	units *AOIGrid
}

// NewState creates an empty arena over m.
func NewState(m *hexmap.Map) *State {
	w := ecs.NewWorld()
	s := &State{Map: m, ECS: w, units: NewAOIGrid()}

	// References go first: scrubbing needs records still in the stores.
	w.Registry().Register(referenceScrubber{s})

	reg := w.Registry()
	s.Buildings = ecs.Register[entity.Building](reg)
	s.Infrastructure = ecs.Register[entity.Infrastructure](reg)
	s.SupplyNodes = ecs.Register[entity.SupplyNode](reg)
	s.Settlements = ecs.Register[entity.Settlement](reg)
	s.Populations = ecs.Register[entity.PopulationGroup](reg)
	s.Leaders = ecs.Register[entity.Leader](reg)
	s.Templates = ecs.Register[entity.UnitTemplate](reg)
	s.Units = ecs.Register[entity.Unit](reg)
	s.Headquarters = ecs.Register[entity.HqUnit](reg)
	s.Nations = ecs.Register[entity.Nation](reg)
	s.Deposits = ecs.Register[resource.Deposit](reg)
	s.Ledgers = ecs.Register[resource.Ledger](reg)
	return s
}

func (s *State) tile(pos hexmap.CubeCoords) (*hexmap.Tile, error) {
	t := s.Map.Get(pos)
	if t == nil {
		return nil, fmt.Errorf("%w: %v", ErrOffMap, pos)
	}
	return t, nil
}

// PlaceBuilding constructs a building on the tile at pos.
func (s *State) PlaceBuilding(typ string, pos hexmap.CubeCoords) (*entity.Building, error) {
	t, err := s.tile(pos)
	if err != nil {
		return nil, err
	}
	b := entity.NewBuilding(s.ECS.CreateMapEntity(), typ, pos)
	s.Buildings.Set(b.ID(), b)
	s.Ledgers.Set(b.ID(), &b.Ledger)
	t.Artificial.Buildings = append(t.Artificial.Buildings, b.ID())
	return b, nil
}

// PlaceInfrastructure lays infrastructure on the tile at pos.
func (s *State) PlaceInfrastructure(typ string, pos hexmap.CubeCoords) (*entity.Infrastructure, error) {
	t, err := s.tile(pos)
	if err != nil {
		return nil, err
	}
	inf := entity.NewInfrastructure(s.ECS.CreateMapEntity(), typ, pos)
	s.Infrastructure.Set(inf.ID(), inf)
	t.Artificial.Infrastructure = append(t.Artificial.Infrastructure, inf.ID())
	return inf, nil
}

// PlaceSupplyNode builds the single supply node a tile can hold.
func (s *State) PlaceSupplyNode(level uint8, pos hexmap.CubeCoords) (*entity.SupplyNode, error) {
	t, err := s.tile(pos)
	if err != nil {
		return nil, err
	}
	if t.Artificial.SupplyNode != nil {
		return nil, fmt.Errorf("%w: supply node at %v", ErrOccupied, pos)
	}
	n := entity.NewSupplyNode(s.ECS.CreateMapEntity(), level, pos)
	id := n.ID()
	s.SupplyNodes.Set(id, n)
	s.Ledgers.Set(id, &n.Stockpile)
	t.Artificial.SupplyNode = &id
	return n, nil
}

// FoundSettlement creates the single settlement a tile can hold.
func (s *State) FoundSettlement(name string, pos hexmap.CubeCoords) (*entity.Settlement, error) {
	t, err := s.tile(pos)
	if err != nil {
		return nil, err
	}
	if t.Artificial.Settlement != nil {
		return nil, fmt.Errorf("%w: settlement at %v", ErrOccupied, pos)
	}
	st := entity.NewSettlement(s.ECS.CreateMapEntity(), name, pos)
	id := st.ID()
	s.Settlements.Set(id, st)
	t.Artificial.Settlement = &id
	return st, nil
}

// AddPopulation creates a population group living in a settlement.
func (s *State) AddPopulation(settlement simid.ID, size uint32) (*entity.PopulationGroup, error) {
	st, ok := s.Settlements.Get(settlement)
	if !ok {
		return nil, fmt.Errorf("%w: settlement %v", ErrUnknownEntity, settlement)
	}
	p := entity.NewPopulationGroup(s.ECS.CreateEntity(), size)
	s.Populations.Set(p.ID(), p)
	s.Ledgers.Set(p.ID(), &p.Ledger)
	st.Population = append(st.Population, p.ID())
	return p, nil
}

// AddLeader creates a leader with a fresh entity id.
func (s *State) AddLeader(name entity.IndividualName) *entity.Leader {
	l := entity.NewLeader(entity.NewIDCard(s.ECS.CreateEntity(), name))
	s.Leaders.Set(l.ID(), l)
	return l
}

// AddDeposit places a natural resource deposit on the tile at pos.
func (s *State) AddDeposit(pos hexmap.CubeCoords, r resource.Resource, quantity uint16) (*resource.Deposit, error) {
	t, err := s.tile(pos)
	if err != nil {
		return nil, err
	}
	d := resource.NewDeposit(s.ECS.CreateMapEntity(), r, quantity)
	s.Deposits.Set(d.ID(), d)
	t.Natural.Deposits = append(t.Natural.Deposits, d.ID())
	return d, nil
}

// RegisterTemplate adds a unit template loaded from data.
func (s *State) RegisterTemplate(tmpl *entity.UnitTemplate) {
	s.ECS.Track(tmpl.ID())
	s.Templates.Set(tmpl.ID(), tmpl)
}

// SpawnUnit instantiates a template at pos.
func (s *State) SpawnUnit(template simid.ID, pos hexmap.CubeCoords, hp uint16) (*entity.Unit, error) {
	tmpl, ok := s.Templates.Get(template)
	if !ok {
		return nil, fmt.Errorf("%w: template %v", ErrUnknownEntity, template)
	}
	if _, err := s.tile(pos); err != nil {
		return nil, err
	}
	u := entity.NewUnit(s.ECS.CreateMapEntity(), tmpl, pos, hp)
	s.Units.Set(u.ID(), u)
	s.units.Add(u.ID(), pos)
	return u, nil
}

// CreateHeadquarters places a headquarters unit at pos.
func (s *State) CreateHeadquarters(pos hexmap.CubeCoords) (*entity.HqUnit, error) {
	if _, err := s.tile(pos); err != nil {
		return nil, err
	}
	hq := entity.NewHqUnit(s.ECS.CreateMapEntity(), pos)
	s.Headquarters.Set(hq.ID(), hq)
	return hq, nil
}

// AssignUnit attaches a unit to a headquarters.
func (s *State) AssignUnit(unit, hq simid.ID) error {
	if !s.Units.Has(unit) {
		return fmt.Errorf("%w: unit %v", ErrUnknownEntity, unit)
	}
	h, ok := s.Headquarters.Get(hq)
	if !ok {
		return fmt.Errorf("%w: headquarters %v", ErrUnknownEntity, hq)
	}
	h.Attach(unit)
	return nil
}

// Subordinate places headquarters sub under superior in the chain of command.
func (s *State) Subordinate(sub, superior simid.ID) error {
	if !s.Headquarters.Has(sub) || !s.Headquarters.Has(superior) {
		return fmt.Errorf("%w: headquarters %v or %v", ErrUnknownEntity, sub, superior)
	}
	return s.ECS.Hierarchy().Attach(sub, superior)
}

// FoundNation creates a nation around its capital.
func (s *State) FoundNation(key, name string, leader, capital simid.ID) (*entity.Nation, error) {
	if !s.Leaders.Has(leader) {
		return nil, fmt.Errorf("%w: leader %v", ErrUnknownEntity, leader)
	}
	if !s.Settlements.Has(capital) {
		return nil, fmt.Errorf("%w: settlement %v", ErrUnknownEntity, capital)
	}
	n := entity.NewNation(simid.NewAbstractID("nation."+key), name, leader, capital)
	s.ECS.Track(n.ID())
	s.Nations.Set(n.ID(), n)
	return n, nil
}

// MoveUnit steps a unit one tile towards a compass point.
func (s *State) MoveUnit(id simid.ID, dir hexmap.Compass) (hexmap.CubeCoords, error) {
	u, ok := s.Units.Get(id)
	if !ok {
		return hexmap.CubeCoords{}, fmt.Errorf("%w: unit %v", ErrUnknownEntity, id)
	}
	next, ok := u.Position.CheckedAdd(dir.Hex().Offset())
	if !ok || !s.Map.Has(next) {
		return u.Position, fmt.Errorf("%w: %v", ErrOffMap, next)
	}
	s.units.Move(id, u.Position, next)
	u.Position = next
	return next, nil
}

// UnitsWithin returns the units at distance <= radius of center, sorted by id.
func (s *State) UnitsWithin(center hexmap.CubeCoords, radius int) []simid.ID {
	var out []simid.ID
	for _, id := range s.units.Nearby(center, radius) {
		u, ok := s.Units.Get(id)
		if ok && u.Position.DistanceTo(center) <= float64(radius) {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UniqueString() < out[j].UniqueString() })
	return out
}

// Destroy queues an entity for removal at the end of the turn.
func (s *State) Destroy(id simid.ID) {
	s.ECS.MarkForDestruction(id)
}

// referenceScrubber removes references to destroyed entities held by tile
// layers, the unit grid and other records.
type referenceScrubber struct{ s *State }

func (rs referenceScrubber) Remove(id simid.ID) {
	s := rs.s
	var pos hexmap.CubeCoords
	switch {
	case s.Buildings.Has(id):
		b, _ := s.Buildings.Get(id)
		pos = b.Position
	case s.Infrastructure.Has(id):
		inf, _ := s.Infrastructure.Get(id)
		pos = inf.Position
	case s.SupplyNodes.Has(id):
		n, _ := s.SupplyNodes.Get(id)
		pos = n.Position
	case s.Settlements.Has(id):
		st, _ := s.Settlements.Get(id)
		pos = st.Position
		s.Nations.Each(func(_ simid.ID, n *entity.Nation) {
			n.Settlements = without(n.Settlements, id)
			if n.Capital == id {
				n.Capital = simid.ID{}
			}
		})
	case s.Deposits.Has(id):
		rs.scrubAll(id)
		return
	case s.Units.Has(id):
		u, _ := s.Units.Get(id)
		s.units.Remove(id, u.Position)
		s.Headquarters.Each(func(_ simid.ID, h *entity.HqUnit) {
			h.AttachedUnits = without(h.AttachedUnits, id)
		})
		return
	case s.Headquarters.Has(id):
		s.Nations.Each(func(_ simid.ID, n *entity.Nation) {
			n.Headquarters = without(n.Headquarters, id)
		})
		return
	case s.Populations.Has(id):
		s.Settlements.Each(func(_ simid.ID, st *entity.Settlement) {
			st.Population = without(st.Population, id)
		})
		return
	case s.Leaders.Has(id):
		rs.dropLeader(id)
		return
	default:
		return
	}
	if t := s.Map.Get(pos); t != nil {
		scrubTile(t, id)
	}
}

// dropLeader leaves every post the leader held vacant.
func (rs referenceScrubber) dropLeader(id simid.ID) {
	s := rs.s
	s.Settlements.Each(func(_ simid.ID, st *entity.Settlement) {
		if st.Leader != nil && *st.Leader == id {
			st.Leader = nil
		}
	})
	s.Headquarters.Each(func(_ simid.ID, h *entity.HqUnit) {
		if h.Leader != nil && *h.Leader == id {
			h.Leader = nil
		}
	})
	s.Nations.Each(func(_ simid.ID, n *entity.Nation) {
		if n.Leader == id {
			n.Leader = simid.ID{}
		}
	})
}

// scrubAll handles records that do not know their tile.
func (rs referenceScrubber) scrubAll(id simid.ID) {
	rs.s.Map.Each(func(_ hexmap.CubeCoords, t *hexmap.Tile) {
		scrubTile(t, id)
	})
}

func scrubTile(t *hexmap.Tile, id simid.ID) {
	a := &t.Artificial
	if a.SupplyNode != nil && *a.SupplyNode == id {
		a.SupplyNode = nil
	}
	if a.Settlement != nil && *a.Settlement == id {
		a.Settlement = nil
	}
	a.Infrastructure = without(a.Infrastructure, id)
	a.Buildings = without(a.Buildings, id)
	t.Natural.Deposits = without(t.Natural.Deposits, id)
}

func without(ids []simid.ID, id simid.ID) []simid.ID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
