package property

import "github.com/unshrouded/core/internal/simid"

// Index is the compact per-storage handle of a property.
// Assigned sequentially from 0 and never reused.
type Index uint32

type entry struct {
	key   string
	id    simid.ID
	value Value
}

// Storage holds the properties of exactly one parent component.
// Registration is append-only; there is no removal.
type Storage struct {
	id      simid.ID
	entries []entry // position == Index
	byID    map[simid.ID]Index
}

// New creates the storage attached to parent. key names the storage among
// everything attached to parent (e.g. "attributes").
func New(parent simid.ID, key string) *Storage {
	return &Storage{
		id:   simid.NewAttachedContainerID(parent, key),
		byID: make(map[simid.ID]Index),
	}
}

// ID returns the storage's own attached container id.
func (s *Storage) ID() simid.ID { return s.id }

// Len returns the number of registrations.
func (s *Storage) Len() int { return len(s.entries) }

// PropertyID derives the full id a property registered under key has, or would have.
func (s *Storage) PropertyID(key string) simid.ID {
	return simid.NewPropertyID(s.id, key)
}

// Register adds a property under key and returns s for chaining.
// key must be unique within the storage; registering it again rebinds the
// id to the new value and orphans the old index.
func (s *Storage) Register(key string, value Value) *Storage {
	s.RegisterIndex(key, value)
	return s
}

// RegisterIndex is Register returning the new property's index and id.
func (s *Storage) RegisterIndex(key string, value Value) (Index, simid.ID) {
	id := s.PropertyID(key)
	idx := Index(len(s.entries))
	s.entries = append(s.entries, entry{key: key, id: id, value: value})
	s.byID[id] = idx
	return idx, id
}

// Get returns the value of the property with the given full id.
func (s *Storage) Get(id simid.ID) (Value, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return Value{}, false
	}
	return s.entries[idx].value, true
}

// GetMut returns a pointer to the stored value for in-place updates.
// The pointer is invalidated by the next registration.
func (s *Storage) GetMut(id simid.ID) (*Value, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return &s.entries[idx].value, true
}

// Mutate applies fn to the stored value. Returns false if id is absent.
func (s *Storage) Mutate(id simid.ID, fn func(*Value)) bool {
	v, ok := s.GetMut(id)
	if !ok {
		return false
	}
	fn(v)
	return true
}

// Set replaces the value of an existing property.
func (s *Storage) Set(id simid.ID, value Value) bool {
	return s.Mutate(id, func(v *Value) { *v = value })
}

// Lookup resolves a textual key to its value.
func (s *Storage) Lookup(key string) (Value, bool) {
	return s.Get(s.PropertyID(key))
}

// IndexOf returns the compact index bound to id.
func (s *Storage) IndexOf(id simid.ID) (Index, bool) {
	idx, ok := s.byID[id]
	return idx, ok
}

// At returns the property at idx without re-deriving its id.
func (s *Storage) At(idx Index) (simid.ID, Value, bool) {
	if int(idx) >= len(s.entries) {
		return simid.ID{}, Value{}, false
	}
	e := &s.entries[idx]
	return e.id, e.value, true
}

// Each visits live properties in registration order. Orphaned indexes are skipped.
func (s *Storage) Each(fn func(key string, id simid.ID, v Value)) {
	for i := range s.entries {
		e := &s.entries[i]
		if s.byID[e.id] != Index(i) {
			continue
		}
		fn(e.key, e.id, e.value)
	}
}

// Clone copies the storage onto a new parent, preserving keys, order and values.
// Used to instantiate per-unit attributes from a template.
func (s *Storage) Clone(parent simid.ID, key string) *Storage {
	out := New(parent, key)
	s.Each(func(k string, _ simid.ID, v Value) {
		out.Register(k, v)
	})
	return out
}
