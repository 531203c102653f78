// Package resource tracks the economy of simulation entities: resource kinds,
// per-entity ledgers advanced once per turn, map deposits and costs.
package resource

import (
	"fmt"
	"strings"
)

// Resource is a kind of economic resource.
type Resource uint8

const (
	Credits Resource = iota
	Water
	Food
	Electricity
	Metals
	Oil
	Uranium

	resourceCount
)

// All lists every resource in ascending order.
var All = [resourceCount]Resource{Credits, Water, Food, Electricity, Metals, Oil, Uranium}

var resourceNames = [resourceCount]string{
	Credits:     "credits",
	Water:       "water",
	Food:        "food",
	Electricity: "electricity",
	Metals:      "metals",
	Oil:         "oil",
	Uranium:     "uranium",
}

func (r Resource) String() string {
	if r < resourceCount {
		return resourceNames[r]
	}
	return fmt.Sprintf("resource(%d)", uint8(r))
}

// Valid reports whether r is a known resource.
func (r Resource) Valid() bool { return r < resourceCount }

// Parse maps a case-insensitive resource name to its Resource.
func Parse(name string) (Resource, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for r, n := range resourceNames {
		if n == name {
			return Resource(r), true
		}
	}
	return 0, false
}

// Costs maps resources to amounts: construction costs, per-turn maintenance...
type Costs map[Resource]uint32

// ConstructionCosts are paid once when something is built.
type ConstructionCosts = Costs

// MaintenanceCosts are paid every turn.
type MaintenanceCosts = Costs
