package system

import (
	"go.uber.org/zap"

	"github.com/unshrouded/core/internal/core/event"
	coresys "github.com/unshrouded/core/internal/core/system"
	"github.com/unshrouded/core/internal/entity"
	"github.com/unshrouded/core/internal/simid"
	"github.com/unshrouded/core/internal/world"
)

// MaintenanceSystem charges every building its maintenance from its own
// ledger. Phase 1 (PostEconomy), after income has been applied.
// Payment is all or nothing: a building that cannot cover every cost pays none.
type MaintenanceSystem struct {
	world *world.State
	bus   *event.Bus
	log   *zap.Logger
}

func NewMaintenanceSystem(ws *world.State, bus *event.Bus, log *zap.Logger) *MaintenanceSystem {
	return &MaintenanceSystem{world: ws, bus: bus, log: log}
}

func (s *MaintenanceSystem) Phase() coresys.Phase { return coresys.PhasePostEconomy }

func (s *MaintenanceSystem) Update(turn uint64) {
	s.world.Buildings.EachSorted(func(id simid.ID, b *entity.Building) {
		if len(b.Maintenance) == 0 || b.Ledger.Pay(b.Maintenance) {
			return
		}
		event.Emit(s.bus, event.MaintenanceUnpaid{Turn: turn, Entity: id})
		s.log.Info("maintenance unpaid",
			zap.Uint64("turn", turn),
			zap.Stringer("building", id),
			zap.String("type", b.Type),
		)
	})
}
