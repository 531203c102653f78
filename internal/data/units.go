package data

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/unshrouded/core/internal/entity"
	"github.com/unshrouded/core/internal/property"
	"github.com/unshrouded/core/internal/resource"
	"github.com/unshrouded/core/internal/simid"
)

// ErrUnknownResource is returned when a cost names a resource that does not exist.
var ErrUnknownResource = errors.New("unknown resource")

// AttributeEntry is one property of a unit template. Exactly one of the
// value fields must be set; it selects the property variant.
type AttributeEntry struct {
	Key   string   `yaml:"key"`
	Small *int64   `yaml:"small"`
	Int   *int64   `yaml:"int"`
	Float *float64 `yaml:"float"`
	Text  *string  `yaml:"text"`
}

// UnitTemplateEntry is a template as written in unit_templates.yaml.
type UnitTemplateEntry struct {
	ID         string            `yaml:"id"`
	Type       string            `yaml:"type"`
	Cost       map[string]uint32 `yaml:"cost"`
	Upkeep     map[string]uint32 `yaml:"upkeep"`
	Attributes []AttributeEntry  `yaml:"attributes"`
}

type unitTemplateFile struct {
	Templates []UnitTemplateEntry `yaml:"templates"`
}

// UnitTemplateTable holds every unit template keyed by abstract id.
type UnitTemplateTable struct {
	templates map[simid.ID]*entity.UnitTemplate
}

// LoadUnitTemplateTable loads unit_templates.yaml.
func LoadUnitTemplateTable(path string) (*UnitTemplateTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read unit templates: %w", err)
	}
	var f unitTemplateFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse unit templates: %w", err)
	}
	t := &UnitTemplateTable{
		templates: make(map[simid.ID]*entity.UnitTemplate, len(f.Templates)),
	}
	for i := range f.Templates {
		tmpl, err := f.Templates[i].build()
		if err != nil {
			return nil, fmt.Errorf("unit template %q: %w", f.Templates[i].ID, err)
		}
		if _, dup := t.templates[tmpl.ID()]; dup {
			return nil, fmt.Errorf("unit template %q: duplicate id", f.Templates[i].ID)
		}
		t.templates[tmpl.ID()] = tmpl
	}
	return t, nil
}

func (e *UnitTemplateEntry) build() (*entity.UnitTemplate, error) {
	if e.ID == "" {
		return nil, errors.New("missing id")
	}
	tmpl := entity.NewUnitTemplate(simid.NewAbstractID(e.ID), e.Type)
	if err := fillCosts(tmpl.Cost, e.Cost); err != nil {
		return nil, fmt.Errorf("cost: %w", err)
	}
	if err := fillCosts(tmpl.Upkeep, e.Upkeep); err != nil {
		return nil, fmt.Errorf("upkeep: %w", err)
	}
	for _, a := range e.Attributes {
		v, err := a.value()
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", a.Key, err)
		}
		if _, exists := tmpl.Attributes.Lookup(a.Key); exists {
			return nil, fmt.Errorf("attribute %q: duplicate key", a.Key)
		}
		tmpl.Attributes.Register(a.Key, v)
	}
	return tmpl, nil
}

func fillCosts(dst resource.Costs, src map[string]uint32) error {
	for name, amount := range src {
		r, ok := resource.Parse(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownResource, name)
		}
		dst[r] = amount
	}
	return nil
}

func (a AttributeEntry) value() (property.Value, error) {
	var (
		v   property.Value
		set int
	)
	if a.Small != nil {
		if *a.Small < math.MinInt16 || *a.Small > math.MaxInt16 {
			return v, fmt.Errorf("small %d out of range", *a.Small)
		}
		v, set = property.SmallInteger(int16(*a.Small)), set+1
	}
	if a.Int != nil {
		if *a.Int < math.MinInt32 || *a.Int > math.MaxInt32 {
			return v, fmt.Errorf("int %d out of range", *a.Int)
		}
		v, set = property.Integer(int32(*a.Int)), set+1
	}
	if a.Float != nil {
		v, set = property.Float(*a.Float), set+1
	}
	if a.Text != nil {
		v, set = property.Text(*a.Text), set+1
	}
	if set != 1 {
		return property.Value{}, fmt.Errorf("want exactly one of small, int, float, text; got %d", set)
	}
	return v, nil
}

// Get returns the template with the given id, or nil if none.
func (t *UnitTemplateTable) Get(id simid.ID) *entity.UnitTemplate {
	return t.templates[id]
}

// Count returns the total number of templates loaded.
func (t *UnitTemplateTable) Count() int {
	return len(t.templates)
}

// Each visits templates in id order.
func (t *UnitTemplateTable) Each(fn func(*entity.UnitTemplate)) {
	ids := make([]simid.ID, 0, len(t.templates))
	for id := range t.templates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].UniqueString() < ids[j].UniqueString() })
	for _, id := range ids {
		fn(t.templates[id])
	}
}
