package ecs

import (
	"fmt"

	"github.com/unshrouded/core/internal/simid"
)

// Uniqueness is a debug checker layered over identity minting: it records the
// canonical rendering of every id it sees and reports the first duplicate.
// The identity scheme itself needs no registry.
type Uniqueness struct {
	seen map[string]simid.Kind
}

func NewUniqueness() *Uniqueness {
	return &Uniqueness{seen: make(map[string]simid.Kind)}
}

// Check records id, returning an error if its rendering was seen before.
func (u *Uniqueness) Check(id simid.ID) error {
	s := id.UniqueString()
	if k, dup := u.seen[s]; dup {
		return fmt.Errorf("ecs: duplicate identity %q (first seen as %s)", s, k)
	}
	u.seen[s] = id.Kind()
	return nil
}

// Len returns the number of distinct ids recorded.
func (u *Uniqueness) Len() int { return len(u.seen) }
