package event

import (
	"github.com/unshrouded/core/internal/resource"
	"github.com/unshrouded/core/internal/simid"
)

// ResourceShortage is emitted when an entity's ledger could not cover the
// per-turn depletion of a resource.
type ResourceShortage struct {
	Turn     uint64
	Entity   simid.ID
	Resource resource.Resource
	Quantity uint32 // stock left after income
}

// TurnAdvanced is emitted once per completed turn.
type TurnAdvanced struct {
	Turn      uint64
	Shortages int
}

// EntityDestroyed is emitted for every entity flushed from the arena.
type EntityDestroyed struct {
	Turn   uint64
	Entity simid.ID
}

// MaintenanceUnpaid is emitted when a building's ledger cannot cover its
// maintenance costs for the turn.
type MaintenanceUnpaid struct {
	Turn   uint64
	Entity simid.ID
}
