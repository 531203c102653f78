package entity

import "github.com/unshrouded/core/internal/simid"

// Nation is a playable state.
type Nation struct {
	id           simid.ID
	Name         string
	Leader       simid.ID // zero while vacant
	Capital      simid.ID // zero once the capital is lost
	Settlements  []simid.ID
	Headquarters []simid.ID
}

func NewNation(id simid.ID, name string, leader, capital simid.ID) *Nation {
	mustKind(id, simid.KindAbstract, "nation")
	return &Nation{id: id, Name: name, Leader: leader, Capital: capital, Settlements: []simid.ID{capital}}
}

func (n *Nation) ID() simid.ID { return n.id }
