package resource

import "math"

// Entry is the state of one tracked resource in a Ledger.
type Entry struct {
	quantity     uint32
	income       uint32
	depletion    uint32
	hasIncome    bool
	hasDepletion bool
}

// Quantity returns the current stock.
func (e Entry) Quantity() uint32 { return e.quantity }

// Income returns the per-turn income, if one is configured.
func (e Entry) Income() (uint32, bool) { return e.income, e.hasIncome }

// Depletion returns the per-turn depletion, if one is configured.
func (e Entry) Depletion() (uint32, bool) { return e.depletion, e.hasDepletion }

// Ledger is the per-entity bookkeeping of resource stock, income and depletion.
// A resource is untracked until its first Replenish. The zero value is ready to use.
// Owned by exactly one entity; not safe for concurrent use.
type Ledger struct {
	entries [resourceCount]Entry
	tracked [resourceCount]bool
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Get returns the entry for r and whether r is tracked.
func (l *Ledger) Get(r Resource) (Entry, bool) {
	if !r.Valid() || !l.tracked[r] {
		return Entry{}, false
	}
	return l.entries[r], true
}

// Quantity returns the stock of r, 0 if untracked.
func (l *Ledger) Quantity(r Resource) uint32 {
	e, _ := l.Get(r)
	return e.quantity
}

// IsTracked reports whether r has been replenished at least once.
func (l *Ledger) IsTracked(r Resource) bool {
	return r.Valid() && l.tracked[r]
}

// Tracked returns the tracked resources in ascending order.
func (l *Ledger) Tracked() []Resource {
	var out []Resource
	for _, r := range All {
		if l.tracked[r] {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of tracked resources.
func (l *Ledger) Len() int {
	n := 0
	for _, t := range l.tracked {
		if t {
			n++
		}
	}
	return n
}

// Replenish credits amount of r. An untracked resource starts tracking with
// quantity = amount and no income or depletion. The quantity saturates at
// math.MaxUint32 instead of wrapping.
func (l *Ledger) Replenish(r Resource, amount uint32) {
	if !r.Valid() {
		return
	}
	if !l.tracked[r] {
		l.tracked[r] = true
		l.entries[r] = Entry{quantity: amount}
		return
	}
	l.entries[r].quantity = addSat(l.entries[r].quantity, amount)
}

// Consume debits amount of r. It succeeds only if the stock is strictly
// greater than amount: a stock is never drained to zero by consumption.
// On failure nothing changes.
func (l *Ledger) Consume(r Resource, amount uint32) bool {
	if !l.IsTracked(r) {
		return false
	}
	e := &l.entries[r]
	if e.quantity <= amount {
		return false
	}
	e.quantity -= amount
	return true
}

// SetIncome configures the per-turn income of a tracked resource.
// Returns false and does nothing if r is untracked.
func (l *Ledger) SetIncome(r Resource, value uint32) bool {
	if !l.IsTracked(r) {
		return false
	}
	l.entries[r].income = value
	l.entries[r].hasIncome = true
	return true
}

// SetDepletion configures the per-turn depletion of a tracked resource.
// Returns false and does nothing if r is untracked.
func (l *Ledger) SetDepletion(r Resource, value uint32) bool {
	if !l.IsTracked(r) {
		return false
	}
	l.entries[r].depletion = value
	l.entries[r].hasDepletion = true
	return true
}

// ClearIncome removes the per-turn income of r.
func (l *Ledger) ClearIncome(r Resource) bool {
	if !l.IsTracked(r) {
		return false
	}
	l.entries[r].income = 0
	l.entries[r].hasIncome = false
	return true
}

// ClearDepletion removes the per-turn depletion of r.
func (l *Ledger) ClearDepletion(r Resource) bool {
	if !l.IsTracked(r) {
		return false
	}
	l.entries[r].depletion = 0
	l.entries[r].hasDepletion = false
	return true
}

// Update advances one turn and returns the last shortage seen, if any.
// See UpdateAll.
func (l *Ledger) Update() (Resource, bool) {
	shortages := l.UpdateAll()
	if len(shortages) == 0 {
		return 0, false
	}
	return shortages[len(shortages)-1], true
}

// UpdateAll advances one turn. Every tracked resource is visited once, in
// ascending order: income is added first, then depletion is subtracted if the
// post-income stock covers it. A depletion larger than the stock is skipped
// for that turn and the resource is reported as a shortage. Income already
// applied is never rolled back. Shortages are returned in visit order.
func (l *Ledger) UpdateAll() []Resource {
	var shortages []Resource
	for _, r := range All {
		if !l.tracked[r] {
			continue
		}
		e := &l.entries[r]
		if e.hasIncome {
			e.quantity = addSat(e.quantity, e.income)
		}
		if !e.hasDepletion {
			continue
		}
		if e.depletion > e.quantity {
			shortages = append(shortages, r)
			continue
		}
		e.quantity -= e.depletion
	}
	return shortages
}

// CanAfford reports whether every cost could be consumed right now.
func (l *Ledger) CanAfford(costs Costs) bool {
	for r, amount := range costs {
		if amount == 0 {
			continue
		}
		if !l.IsTracked(r) || l.entries[r].quantity <= amount {
			return false
		}
	}
	return true
}

// Pay consumes every cost, or nothing if any of them cannot be consumed.
func (l *Ledger) Pay(costs Costs) bool {
	if !l.CanAfford(costs) {
		return false
	}
	for r, amount := range costs {
		if amount == 0 {
			continue
		}
		l.Consume(r, amount)
	}
	return true
}

func addSat(a, b uint32) uint32 {
	if a > math.MaxUint32-b {
		return math.MaxUint32
	}
	return a + b
}
