package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/unshrouded/core/internal/entity"
	"github.com/unshrouded/core/internal/simid"
)

var traitCategories = map[string]entity.TraitCategory{
	"physical":    entity.TraitPhysical,
	"personality": entity.TraitPersonality,
	"ability":     entity.TraitAbility,
	"lifestyle":   entity.TraitLifestyle,
	"custom":      entity.TraitCustom,
}

// TraitEntry is a leader trait as written in traits.yaml.
type TraitEntry struct {
	ID       string `yaml:"id"`
	Category string `yaml:"category"`
}

// TraitTable holds every leader trait keyed by abstract id.
type TraitTable struct {
	traits     map[simid.ID]entity.Trait
	byCategory map[entity.TraitCategory][]entity.Trait
}

// LoadTraitTable loads traits.yaml.
func LoadTraitTable(path string) (*TraitTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read traits: %w", err)
	}
	var entries []TraitEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse traits: %w", err)
	}
	t := &TraitTable{
		traits:     make(map[simid.ID]entity.Trait, len(entries)),
		byCategory: make(map[entity.TraitCategory][]entity.Trait),
	}
	for _, e := range entries {
		cat, ok := traitCategories[e.Category]
		if !ok {
			return nil, fmt.Errorf("trait %q: unknown category %q", e.ID, e.Category)
		}
		if e.ID == "" {
			return nil, fmt.Errorf("trait with category %q: missing id", e.Category)
		}
		tr := entity.NewTrait(simid.NewAbstractID(e.ID), cat)
		if _, dup := t.traits[tr.ID()]; dup {
			return nil, fmt.Errorf("trait %q: duplicate id", e.ID)
		}
		t.traits[tr.ID()] = tr
		t.byCategory[cat] = append(t.byCategory[cat], tr)
	}
	return t, nil
}

// Get returns the trait with the given id.
func (t *TraitTable) Get(id simid.ID) (entity.Trait, bool) {
	tr, ok := t.traits[id]
	return tr, ok
}

// InCategory returns the traits of one category in file order.
func (t *TraitTable) InCategory(c entity.TraitCategory) []entity.Trait {
	return t.byCategory[c]
}

// Count returns the total number of traits loaded.
func (t *TraitTable) Count() int {
	return len(t.traits)
}
