package system

import (
	"go.uber.org/zap"

	"github.com/unshrouded/core/internal/core/ecs"
	"github.com/unshrouded/core/internal/core/event"
	coresys "github.com/unshrouded/core/internal/core/system"
)

// CleanupSystem flushes the deferred entity destruction queue at turn end.
// Phase 2 (Cleanup).
type CleanupSystem struct {
	world *ecs.World
	bus   *event.Bus
	log   *zap.Logger
}

func NewCleanupSystem(world *ecs.World, bus *event.Bus, log *zap.Logger) *CleanupSystem {
	return &CleanupSystem{world: world, bus: bus, log: log}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(turn uint64) {
	destroyed := s.world.FlushDestroyQueue()
	for _, id := range destroyed {
		event.Emit(s.bus, event.EntityDestroyed{Turn: turn, Entity: id})
	}
	if len(destroyed) > 0 {
		s.log.Debug("entities destroyed", zap.Uint64("turn", turn), zap.Int("count", len(destroyed)))
	}
}
