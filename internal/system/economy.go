package system

import (
	"go.uber.org/zap"

	"github.com/unshrouded/core/internal/core/event"
	coresys "github.com/unshrouded/core/internal/core/system"
	"github.com/unshrouded/core/internal/resource"
	"github.com/unshrouded/core/internal/simid"
	"github.com/unshrouded/core/internal/world"
)

// EconomySystem advances every resource ledger in the arena by one turn.
// Phase 0 (Economy). Ledgers are visited in id order so replays match.
type EconomySystem struct {
	world *world.State
	bus   *event.Bus
	log   *zap.Logger
}

func NewEconomySystem(ws *world.State, bus *event.Bus, log *zap.Logger) *EconomySystem {
	return &EconomySystem{world: ws, bus: bus, log: log}
}

func (s *EconomySystem) Phase() coresys.Phase { return coresys.PhaseEconomy }

func (s *EconomySystem) Update(turn uint64) {
	s.world.Ledgers.EachSorted(func(id simid.ID, l *resource.Ledger) {
		for _, r := range l.UpdateAll() {
			qty := l.Quantity(r)
			event.Emit(s.bus, event.ResourceShortage{
				Turn:     turn,
				Entity:   id,
				Resource: r,
				Quantity: qty,
			})
			s.log.Warn("resource shortage",
				zap.Uint64("turn", turn),
				zap.Stringer("entity", id),
				zap.Stringer("resource", r),
				zap.Uint32("quantity", qty),
			)
		}
	})
}
