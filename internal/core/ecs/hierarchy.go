package ecs

import (
	"errors"

	"github.com/unshrouded/core/internal/simid"
)

var (
	ErrCycle         = errors.New("ecs: link would create a cycle")
	ErrSelfReference = errors.New("ecs: entity cannot be its own superior")
)

// Hierarchy stores superior/subordinate links (chain of command, lineage...)
// as identity references resolved through the arena, never as owning pointers.
type Hierarchy struct {
	superior     map[simid.ID]simid.ID
	subordinates map[simid.ID][]simid.ID
}

func NewHierarchy() *Hierarchy {
	return &Hierarchy{
		superior:     make(map[simid.ID]simid.ID),
		subordinates: make(map[simid.ID][]simid.ID),
	}
}

// Attach makes superior the direct superior of child, replacing any previous link.
func (h *Hierarchy) Attach(child, superior simid.ID) error {
	if child == superior {
		return ErrSelfReference
	}
	for cur, ok := superior, true; ok; cur, ok = h.superior[cur] {
		if cur == child {
			return ErrCycle
		}
	}
	h.Detach(child)
	h.superior[child] = superior
	h.subordinates[superior] = append(h.subordinates[superior], child)
	return nil
}

// Detach removes the link between child and its superior, if any.
func (h *Hierarchy) Detach(child simid.ID) {
	sup, ok := h.superior[child]
	if !ok {
		return
	}
	delete(h.superior, child)
	subs := h.subordinates[sup]
	for i, s := range subs {
		if s == child {
			subs = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(subs) == 0 {
		delete(h.subordinates, sup)
	} else {
		h.subordinates[sup] = subs
	}
}

// Superior returns the direct superior of id.
func (h *Hierarchy) Superior(id simid.ID) (simid.ID, bool) {
	sup, ok := h.superior[id]
	return sup, ok
}

// Subordinates returns the direct subordinates of id in attach order.
func (h *Hierarchy) Subordinates(id simid.ID) []simid.ID {
	return append([]simid.ID(nil), h.subordinates[id]...)
}

// Chain returns the superiors of id from the nearest to the top.
func (h *Hierarchy) Chain(id simid.ID) []simid.ID {
	var out []simid.ID
	for sup, ok := h.superior[id]; ok; sup, ok = h.superior[sup] {
		out = append(out, sup)
	}
	return out
}

// Remove drops id from the hierarchy. Its subordinates lose their superior.
func (h *Hierarchy) Remove(id simid.ID) {
	h.Detach(id)
	for _, s := range h.subordinates[id] {
		delete(h.superior, s)
	}
	delete(h.subordinates, id)
}
