package ecs

import "github.com/unshrouded/core/internal/simid"

// World is the entity arena. It owns the id allocator, the component
// registry, the command hierarchy and a deferred destruction queue flushed by
// CleanupSystem at the end of each turn.
type World struct {
	alloc        *Allocator
	registry     *Registry
	hierarchy    *Hierarchy
	alive        map[simid.ID]struct{}
	destroyQueue []simid.ID
}

func NewWorld() *World {
	w := &World{
		alloc:        NewAllocator(),
		registry:     NewRegistry(),
		hierarchy:    NewHierarchy(),
		alive:        make(map[simid.ID]struct{}, 256),
		destroyQueue: make([]simid.ID, 0, 16),
	}
	w.registry.Register(w.hierarchy)
	return w
}

func (w *World) Registry() *Registry   { return w.registry }
func (w *World) Hierarchy() *Hierarchy { return w.hierarchy }

// CreateEntity mints and tracks an off-map entity.
func (w *World) CreateEntity() simid.ID {
	id := w.alloc.NewEntity()
	w.alive[id] = struct{}{}
	return id
}

// CreateMapEntity mints and tracks an on-map entity.
func (w *World) CreateMapEntity() simid.ID {
	id := w.alloc.NewMapEntity()
	w.alive[id] = struct{}{}
	return id
}

// Track adds an id minted elsewhere (abstract ids from data files) to the arena.
func (w *World) Track(id simid.ID) {
	w.alloc.Reserve(id)
	w.alive[id] = struct{}{}
}

func (w *World) Alive(id simid.ID) bool {
	_, ok := w.alive[id]
	return ok
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.alive)
}

// MarkForDestruction queues an entity for end-of-turn cleanup.
func (w *World) MarkForDestruction(id simid.ID) {
	w.destroyQueue = append(w.destroyQueue, id)
}

// FlushDestroyQueue destroys all queued entities and clears their components.
// Returns the destroyed ids in queue order.
func (w *World) FlushDestroyQueue() []simid.ID {
	var destroyed []simid.ID
	for _, id := range w.destroyQueue {
		if _, ok := w.alive[id]; !ok {
			continue // queued twice
		}
		w.registry.RemoveAll(id)
		delete(w.alive, id)
		destroyed = append(destroyed, id)
	}
	w.destroyQueue = w.destroyQueue[:0]
	return destroyed
}
