package entity

import (
	"github.com/unshrouded/core/internal/resource"
	"github.com/unshrouded/core/internal/simid"
)

// PopulationGroup aggregates thousands to millions of people: their goods
// consumption, voting tendencies...
type PopulationGroup struct {
	id     simid.ID
	Size   uint32
	Ledger resource.Ledger
}

func NewPopulationGroup(id simid.ID, size uint32) *PopulationGroup {
	mustKind(id, simid.KindEntity, "population group")
	return &PopulationGroup{id: id, Size: size}
}

func (p *PopulationGroup) ID() simid.ID { return p.id }

// IndividualName is a firstname/surname pair. Every leader has one.
type IndividualName struct {
	First string
	Last  string
}

func (n IndividualName) String() string {
	if n.Last == "" {
		return n.First
	}
	return n.First + " " + n.Last
}

// IDCard is the public identification of a leader or ancestor.
type IDCard struct {
	id   simid.ID
	Name IndividualName
}

func NewIDCard(id simid.ID, name IndividualName) IDCard {
	mustKind(id, simid.KindEntity, "individual")
	return IDCard{id: id, Name: name}
}

func (c IDCard) ID() simid.ID { return c.id }

// TraitCategory classifies leader traits.
type TraitCategory uint8

const (
	TraitPhysical    TraitCategory = iota // wounded in battle
	TraitPersonality                      // honest, corrupt
	TraitAbility                          // excellent logistician
	TraitLifestyle                        // athletic
	TraitCustom                           // script-defined
)

func (c TraitCategory) String() string {
	switch c {
	case TraitPhysical:
		return "physical"
	case TraitPersonality:
		return "personality"
	case TraitAbility:
		return "ability"
	case TraitLifestyle:
		return "lifestyle"
	case TraitCustom:
		return "custom"
	}
	return "unknown"
}

// Trait is a singular characteristic of an individual.
type Trait struct {
	id       simid.ID
	Category TraitCategory
}

func NewTrait(id simid.ID, category TraitCategory) Trait {
	mustKind(id, simid.KindAbstract, "trait")
	return Trait{id: id, Category: category}
}

func (t Trait) ID() simid.ID { return t.id }

// Ancestor keeps far less data than a Leader and has no active impact.
type Ancestor struct {
	Card   IDCard
	Traits []Trait
}

func (a Ancestor) ID() simid.ID { return a.Card.ID() }

// Parents are usually (mother, father), but adoption is allowed.
type Parents struct {
	First  Ancestor
	Second Ancestor
}

// Leader is an individual worth simulating on their own.
type Leader struct {
	Card    IDCard
	Lineage []Parents // nearest generation first; kept shallow
	Traits  []Trait
	Upkeep  resource.MaintenanceCosts
}

func NewLeader(card IDCard) *Leader {
	return &Leader{Card: card, Upkeep: resource.MaintenanceCosts{}}
}

func (l *Leader) ID() simid.ID { return l.Card.ID() }

// HasTrait reports whether the leader carries the trait with the given id.
func (l *Leader) HasTrait(id simid.ID) bool {
	for _, t := range l.Traits {
		if t.id == id {
			return true
		}
	}
	return false
}

// Retire turns the leader into an ancestor record.
func (l *Leader) Retire() Ancestor {
	return Ancestor{Card: l.Card, Traits: append([]Trait(nil), l.Traits...)}
}
