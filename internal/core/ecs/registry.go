package ecs

import "github.com/unshrouded/core/internal/simid"

// Registry tracks all component stores and supports bulk cleanup on entity destroy.
type Registry struct {
	stores []Removable
}

func NewRegistry() *Registry {
	return &Registry{
		stores: make([]Removable, 0, 8),
	}
}

// Register adds a component store to the registry.
func (r *Registry) Register(store Removable) {
	r.stores = append(r.stores, store)
}

// RemoveAll clears the given entity from every registered component store.
func (r *Registry) RemoveAll(id simid.ID) {
	for _, s := range r.stores {
		s.Remove(id)
	}
}

// Register creates a store of T and registers it, so destroyed entities
// disappear from it automatically.
func Register[T any](r *Registry) *Store[T] {
	s := NewStore[T]()
	r.Register(s)
	return s
}
