package ecs

import (
	"sort"

	"github.com/unshrouded/core/internal/simid"
)

// Removable is implemented by all component stores so the Registry can
// bulk-remove an entity's data from every store on destroy.
type Removable interface {
	Remove(id simid.ID)
}

// Store is a generic typed map store keyed by identity.
// It indexes components owned elsewhere (usually by the entity record), so
// callers keep the pointer stable for as long as it is registered.
type Store[T any] struct {
	data map[simid.ID]*T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		data: make(map[simid.ID]*T, 64),
	}
}

func (s *Store[T]) Set(id simid.ID, c *T) {
	s.data[id] = c
}

func (s *Store[T]) Get(id simid.ID) (*T, bool) {
	c, ok := s.data[id]
	return c, ok
}

func (s *Store[T]) Remove(id simid.ID) {
	delete(s.data, id)
}

func (s *Store[T]) Has(id simid.ID) bool {
	_, ok := s.data[id]
	return ok
}

func (s *Store[T]) Len() int {
	return len(s.data)
}

// Each visits every component. Order is unspecified.
func (s *Store[T]) Each(fn func(simid.ID, *T)) {
	for id, c := range s.data {
		fn(id, c)
	}
}

// IDs returns the stored ids sorted by canonical rendering, for passes that
// must be deterministic from one run to the next.
func (s *Store[T]) IDs() []simid.ID {
	ids := make([]simid.ID, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

// EachSorted visits every component in IDs order.
func (s *Store[T]) EachSorted(fn func(simid.ID, *T)) {
	for _, id := range s.IDs() {
		fn(id, s.data[id])
	}
}

func sortIDs(ids []simid.ID) {
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].UniqueString() < ids[j].UniqueString()
	})
}
