package data

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/unshrouded/core/internal/entity"
	"github.com/unshrouded/core/internal/property"
	"github.com/unshrouded/core/internal/resource"
	"github.com/unshrouded/core/internal/simid"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const templatesYAML = `
templates:
  - id: unit.infantry
    type: infantry
    cost: {credits: 120, food: 10}
    upkeep: {food: 2}
    attributes:
      - {key: speed, small: 2}
      - {key: manpower, int: 1000}
      - {key: morale, float: 0.75}
      - {key: doctrine, text: defensive}
  - id: unit.armor
    type: armor
    cost: {metals: 80, oil: 20}
`

func TestLoadUnitTemplateTable(t *testing.T) {
	tbl, err := LoadUnitTemplateTable(writeFile(t, "units.yaml", templatesYAML))
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Count() != 2 {
		t.Fatalf("count = %d", tbl.Count())
	}
	inf := tbl.Get(simid.NewAbstractID("unit.infantry"))
	if inf == nil {
		t.Fatal("infantry missing")
	}
	if inf.Cost[resource.Credits] != 120 || inf.Upkeep[resource.Food] != 2 {
		t.Fatalf("costs = %v / %v", inf.Cost, inf.Upkeep)
	}
	checks := map[string]property.Value{
		"speed":    property.SmallInteger(2),
		"manpower": property.Integer(1000),
		"morale":   property.Float(0.75),
		"doctrine": property.Text("defensive"),
	}
	for key, want := range checks {
		got, ok := inf.Attributes.Lookup(key)
		if !ok || got != want {
			t.Errorf("%s = %v, want %v", key, got, want)
		}
	}

	var order []string
	tbl.Each(func(u *entity.UnitTemplate) { order = append(order, u.Type) })
	if strings.Join(order, ",") != "armor,infantry" {
		t.Fatalf("each order = %v", order)
	}
	if tbl.Get(simid.NewAbstractID("unit.none")) != nil {
		t.Fatal("unknown template found")
	}
}

func TestLoadUnitTemplateTableErrors(t *testing.T) {
	cases := map[string]string{
		"unknown resource": "templates:\n  - {id: a, cost: {gold: 1}}\n",
		"two variants":     "templates:\n  - {id: a, attributes: [{key: x, small: 1, int: 2}]}\n",
		"no variant":       "templates:\n  - {id: a, attributes: [{key: x}]}\n",
		"small overflow":   "templates:\n  - {id: a, attributes: [{key: x, small: 40000}]}\n",
		"duplicate key":    "templates:\n  - {id: a, attributes: [{key: x, small: 1}, {key: x, int: 1}]}\n",
		"duplicate id":     "templates:\n  - {id: a}\n  - {id: a}\n",
		"missing id":       "templates:\n  - {type: b}\n",
		"bad yaml":         "templates: [",
	}
	for name, body := range cases {
		if _, err := LoadUnitTemplateTable(writeFile(t, "units.yaml", body)); err == nil {
			t.Errorf("%s: no error", name)
		}
	}
	_, err := LoadUnitTemplateTable(writeFile(t, "units.yaml", cases["unknown resource"]))
	if !errors.Is(err, ErrUnknownResource) {
		t.Fatalf("err = %v", err)
	}
}

func TestLoadTraitTable(t *testing.T) {
	path := writeFile(t, "traits.yaml", `
- {id: trait.honest, category: personality}
- {id: trait.corrupt, category: personality}
- {id: trait.logistician, category: ability}
`)
	tbl, err := LoadTraitTable(path)
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Count() != 3 || len(tbl.InCategory(entity.TraitPersonality)) != 2 {
		t.Fatalf("count = %d", tbl.Count())
	}
	tr, ok := tbl.Get(simid.NewAbstractID("trait.logistician"))
	if !ok || tr.Category != entity.TraitAbility {
		t.Fatalf("logistician = %+v", tr)
	}

	if _, err := LoadTraitTable(writeFile(t, "bad.yaml", "- {id: x, category: mystic}\n")); err == nil {
		t.Fatal("unknown category accepted")
	}
	if _, err := LoadTraitTable(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file accepted")
	}
}
