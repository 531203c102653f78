package system

import "sort"

// Runner executes systems in phase order each turn. Systems sharing a phase
// keep their registration order.
type Runner struct {
	systems []System
	sorted  bool
}

func NewRunner() *Runner {
	return &Runner{
		systems: make([]System, 0, 8),
	}
}

func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

// Len returns the number of registered systems.
func (r *Runner) Len() int { return len(r.systems) }

// Turn runs every system once.
func (r *Runner) Turn(turn uint64) {
	r.ensureSorted()
	for _, s := range r.systems {
		s.Update(turn)
	}
}

// RunPhase runs only the systems of one phase.
func (r *Runner) RunPhase(phase Phase, turn uint64) {
	r.ensureSorted()
	for _, s := range r.systems {
		if s.Phase() == phase {
			s.Update(turn)
		}
	}
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
