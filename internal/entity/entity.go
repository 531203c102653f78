// Package entity holds the domain records of the simulation: buildings,
// settlements, people, military units and nations. Records carry an identity
// and, where they model economy or extensible attributes, a resource ledger or
// a property storage. They reference each other by identity only.
package entity

import (
	"fmt"

	"github.com/unshrouded/core/internal/simid"
)

// mustKind panics if id is not of the kind a record requires.
func mustKind(id simid.ID, want simid.Kind, record string) {
	if id.Kind() != want {
		panic(fmt.Sprintf("entity: %s id must be %s, got %s", record, want, id))
	}
}
