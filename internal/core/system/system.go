package system

// Phase defines execution ordering within a single turn.
type Phase int

const (
	PhaseEconomy     Phase = iota // 0: advance every resource ledger
	PhasePostEconomy              // 1: react to shortages, settle maintenance
	PhaseCleanup                  // 2: destroy queued entities
)

func (p Phase) String() string {
	switch p {
	case PhaseEconomy:
		return "economy"
	case PhasePostEconomy:
		return "post-economy"
	case PhaseCleanup:
		return "cleanup"
	}
	return "unknown"
}

// System is the interface every turn system implements.
type System interface {
	Phase() Phase
	Update(turn uint64)
}
