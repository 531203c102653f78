package ecs

import (
	"fmt"
	"math"

	"github.com/unshrouded/core/internal/simid"
)

// Allocator mints numeric entity and map entity ids. Numbers increase
// monotonically and are never reused: an identity must not change or be
// shared for the lifetime of a game. Number 0 is never handed out.
type Allocator struct {
	nextEntity    uint32
	nextMapEntity uint32
}

func NewAllocator() *Allocator {
	return &Allocator{nextEntity: 1, nextMapEntity: 1}
}

// NewEntity mints an off-map entity id.
func (a *Allocator) NewEntity() simid.ID {
	return simid.NewEntityID(a.take(&a.nextEntity, "entity"))
}

// NewMapEntity mints an on-map entity id.
func (a *Allocator) NewMapEntity() simid.ID {
	return simid.NewMapEntityID(a.take(&a.nextMapEntity, "map entity"))
}

// Reserve makes sure numbers up to and including id are never minted again,
// e.g. after entities were created from fixed data.
func (a *Allocator) Reserve(id simid.ID) {
	n, ok := id.Number()
	if !ok || n == math.MaxUint32 {
		return
	}
	switch id.Kind() {
	case simid.KindEntity:
		a.nextEntity = max(a.nextEntity, n+1)
	case simid.KindMapEntity:
		a.nextMapEntity = max(a.nextMapEntity, n+1)
	}
}

func (a *Allocator) take(next *uint32, what string) uint32 {
	if *next == 0 {
		// wrapped past MaxUint32
		panic(fmt.Sprintf("ecs: %s id space exhausted", what))
	}
	n := *next
	*next++
	return n
}
