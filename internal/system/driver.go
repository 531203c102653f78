package system

import (
	"go.uber.org/zap"

	"github.com/unshrouded/core/internal/core/event"
	coresys "github.com/unshrouded/core/internal/core/system"
)

// Driver advances the simulation one turn at a time. Every event emitted
// while turn N runs is delivered before Advance returns, TurnAdvanced last.
type Driver struct {
	runner *coresys.Runner
	bus    *event.Bus
	log    *zap.Logger
	turn   uint64
}

func NewDriver(runner *coresys.Runner, bus *event.Bus, log *zap.Logger) *Driver {
	return &Driver{runner: runner, bus: bus, log: log}
}

// Turn returns the number of completed turns.
func (d *Driver) Turn() uint64 { return d.turn }

// Advance runs one full turn and returns the number of events delivered.
func (d *Driver) Advance() int {
	next := d.turn + 1
	d.runner.Turn(next)

	shortages := event.Count[event.ResourceShortage](d.bus)
	event.Emit(d.bus, event.TurnAdvanced{Turn: next, Shortages: shortages})

	d.bus.SwapBuffers()
	n := d.bus.DispatchAll()
	d.turn = next
	d.log.Debug("turn advanced",
		zap.Uint64("turn", next),
		zap.Int("events", n),
		zap.Int("shortages", shortages),
	)
	return n
}

// Run advances n turns.
func (d *Driver) Run(n int) {
	for i := 0; i < n; i++ {
		d.Advance()
	}
}
