package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/unshrouded/core/internal/config"
	"github.com/unshrouded/core/internal/core/event"
	coresys "github.com/unshrouded/core/internal/core/system"
	"github.com/unshrouded/core/internal/data"
	"github.com/unshrouded/core/internal/entity"
	"github.com/unshrouded/core/internal/hexmap"
	"github.com/unshrouded/core/internal/logging"
	"github.com/unshrouded/core/internal/procgen"
	"github.com/unshrouded/core/internal/resource"
	"github.com/unshrouded/core/internal/scripting"
	"github.com/unshrouded/core/internal/system"
	"github.com/unshrouded/core/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(name string) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m            Unshrouded  v0.1.0             \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m        headless simulation driver         \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mScenario:\033[0m %s\n\n", name)
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Simulation ────────────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfg, err := config.Load(config.Path())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Simulation.Name)

	// 3. Load data tables
	printSection("Data")
	templates, err := data.LoadUnitTemplateTable(cfg.Data.UnitTemplates)
	if err != nil {
		return fmt.Errorf("unit templates: %w", err)
	}
	printStat("Unit templates", templates.Count())
	traits, err := data.LoadTraitTable(cfg.Data.Traits)
	if err != nil {
		return fmt.Errorf("traits: %w", err)
	}
	printStat("Leader traits", traits.Count())
	fmt.Println()

	// 4. Scripts
	printSection("Scripts")
	lua, err := scripting.NewEngine(cfg.Data.ScriptsDir, log)
	if err != nil {
		return fmt.Errorf("scripting: %w", err)
	}
	defer lua.Close()
	hooked := 0
	var hookErr error
	templates.Each(func(t *entity.UnitTemplate) {
		if hookErr != nil {
			return
		}
		if err := lua.RunPropertyHook("init_unit_template", t.Attributes); err != nil {
			hookErr = err
			return
		}
		hooked++
	})
	if hookErr != nil {
		return fmt.Errorf("unit template hook: %w", hookErr)
	}
	printStat("Templates passed to scripts", hooked)
	printOK("Lua engine ready")
	fmt.Println()

	// 5. Map and world state
	printSection("World")
	gen := procgen.FromSettings(procgen.MapGeneratorSettings{
		Width:  cfg.Simulation.MapWidth,
		Height: cfg.Simulation.MapHeight,
	})
	m, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("generate map: %w", err)
	}
	printStat("Tiles", m.Len())

	ws := world.NewState(m)
	templates.Each(ws.RegisterTemplate)
	nation, err := seedScenario(ws, templates, traits, lua, cfg.Simulation, log)
	if err != nil {
		return fmt.Errorf("seed scenario: %w", err)
	}
	printStat("Entities", ws.ECS.Len())
	printOK(fmt.Sprintf("Nation %q founded", nation.Name))
	fmt.Println()

	// 6. Systems
	bus := event.NewBus()
	runner := coresys.NewRunner()
	runner.Register(system.NewEconomySystem(ws, bus, log))
	runner.Register(system.NewMaintenanceSystem(ws, bus, log))
	runner.Register(system.NewCleanupSystem(ws.ECS, bus, log))
	driver := system.NewDriver(runner, bus, log)

	shortages := 0
	event.Subscribe(bus, func(ev event.TurnAdvanced) {
		shortages += ev.Shortages
		log.Info("turn complete", zap.Uint64("turn", ev.Turn), zap.Int("shortages", ev.Shortages))
	})

	// 7. Advance
	printSection("Simulation")
	printReady(fmt.Sprintf("Advancing %d turns", cfg.Simulation.Turns))
	driver.Run(cfg.Simulation.Turns)
	printStat("Turns completed", int(driver.Turn()))
	printStat("Shortages reported", shortages)
	if capital, ok := ws.Settlements.Get(nation.Capital); ok {
		for _, id := range capital.Population {
			if l, ok := ws.Ledgers.Get(id); ok {
				printStat("Capital food stock", int(l.Quantity(resource.Food)))
			}
		}
	}
	fmt.Println()
	return nil
}

// seedScenario founds a single nation in the middle of the map: a capital
// with one population group, a farm feeding it, a leader and one unit per
// template around a headquarters.
func seedScenario(
	ws *world.State,
	templates *data.UnitTemplateTable,
	traits *data.TraitTable,
	lua *scripting.Engine,
	sim config.SimulationConfig,
	log *zap.Logger,
) (*entity.Nation, error) {
	col := hexmap.CubeScalar(sim.MapWidth / 2)
	row := hexmap.CubeScalar(sim.MapHeight / 2)
	center := hexmap.FromAxial(col, row-col>>1)

	capital, err := ws.FoundSettlement("Capital", center)
	if err != nil {
		return nil, err
	}
	const popSize = 20000
	pop, err := ws.AddPopulation(capital.ID(), popSize)
	if err != nil {
		return nil, err
	}
	upkeep := lua.CallNumber("population_food_upkeep", popSize/1000, popSize)
	pop.Ledger.Replenish(resource.Food, 200)
	pop.Ledger.SetDepletion(resource.Food, clampUint32(upkeep))

	farm, err := ws.PlaceBuilding("farm", center.Step(hexmap.East))
	if err != nil {
		return nil, err
	}
	farm.Ledger.Replenish(resource.Food, 50)
	farm.Ledger.SetIncome(resource.Food, 15)
	farm.Ledger.Replenish(resource.Credits, 100)
	farm.Maintenance[resource.Credits] = 2

	if _, err := ws.PlaceSupplyNode(1, center); err != nil {
		return nil, err
	}

	leader := ws.AddLeader(entity.IndividualName{First: "Aster", Last: "Vale"})
	for _, c := range []entity.TraitCategory{entity.TraitPersonality, entity.TraitAbility} {
		if list := traits.InCategory(c); len(list) > 0 {
			leader.Traits = append(leader.Traits, list[0])
		}
	}

	nation, err := ws.FoundNation("home", "Home Federation", leader.ID(), capital.ID())
	if err != nil {
		return nil, err
	}

	hq, err := ws.CreateHeadquarters(center)
	if err != nil {
		return nil, err
	}
	nation.Headquarters = append(nation.Headquarters, hq.ID())
	hqLeader := leader.ID()
	hq.Leader = &hqLeader

	var spawnErr error
	templates.Each(func(t *entity.UnitTemplate) {
		if spawnErr != nil {
			return
		}
		u, err := ws.SpawnUnit(t.ID(), center, 100)
		if err != nil {
			spawnErr = err
			return
		}
		spawnErr = ws.AssignUnit(u.ID(), hq.ID())
	})
	if spawnErr != nil {
		return nil, spawnErr
	}

	log.Info("scenario seeded",
		zap.Stringer("capital", capital.ID()),
		zap.Stringer("leader", leader.ID()),
		zap.Int("units", len(hq.AttachedUnits)),
		zap.Float64("food_upkeep", upkeep),
	)
	return nation, nil
}

// clampUint32 converts a script result to a ledger amount, saturating at the
// bounds. NaN counts as zero.
func clampUint32(f float64) uint32 {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(f)
}
