package property

import (
	"testing"

	"github.com/unshrouded/core/internal/simid"
)

func TestRegisterDistinctKeys(t *testing.T) {
	parent := simid.NewMapEntityID(12)
	s := New(parent, "attributes").
		Register("speed", SmallInteger(3)).
		Register("name", Text("Scout"))

	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	speedID := s.PropertyID("speed")
	nameID := s.PropertyID("name")
	if speedID == nameID {
		t.Fatal("distinct keys derived the same id")
	}
	if v, ok := s.Get(speedID); !ok {
		t.Fatal("speed missing")
	} else if n, ok := v.SmallInteger(); !ok || n != 3 {
		t.Fatalf("speed = %v", v)
	}
	if v, ok := s.Get(nameID); !ok {
		t.Fatal("name missing")
	} else if txt, ok := v.Text(); !ok || txt != "Scout" {
		t.Fatalf("name = %v", v)
	}
}

func TestRetrieveByDerivedID(t *testing.T) {
	parent := simid.NewAbstractID("unit.template.infantry")
	s := New(parent, "attributes")
	idx, id := s.RegisterIndex("k", Float(1.5))
	if idx != 0 {
		t.Fatalf("first index = %d", idx)
	}
	derived := simid.NewPropertyID(simid.NewAttachedContainerID(parent, "attributes"), "k")
	if id != derived {
		t.Fatalf("id %q != derived %q", id, derived)
	}
	v, ok := s.Get(derived)
	if !ok {
		t.Fatal("lookup by derived id failed")
	}
	if f, _ := v.Float(); f != 1.5 {
		t.Fatalf("value = %v", v)
	}
	if _, ok := s.Get(s.PropertyID("missing")); ok {
		t.Fatal("absent property found")
	}
}

func TestIndexesSequentialNeverReused(t *testing.T) {
	s := New(simid.NewEntityID(1), "props")
	a, _ := s.RegisterIndex("a", Integer(1))
	b, _ := s.RegisterIndex("b", Integer(2))
	// Same key again: new index, id rebound.
	c, id := s.RegisterIndex("a", Integer(3))
	if a != 0 || b != 1 || c != 2 {
		t.Fatalf("indexes = %d %d %d", a, b, c)
	}
	if v, _ := s.Get(id); v != Integer(3) {
		t.Fatalf("rebound value = %v", v)
	}
	if got, _ := s.IndexOf(id); got != 2 {
		t.Fatalf("index of rebound id = %d", got)
	}
	gotID, v, ok := s.At(0)
	if !ok || gotID != id || v != Integer(1) {
		t.Fatalf("orphaned slot = %v %v %v", gotID, v, ok)
	}
	n := 0
	s.Each(func(string, simid.ID, Value) { n++ })
	if n != 2 {
		t.Fatalf("Each visited %d live properties, want 2", n)
	}
}

func TestMutate(t *testing.T) {
	s := New(simid.NewEntityID(1), "props").Register("hp", Integer(10))
	id := s.PropertyID("hp")

	p, ok := s.GetMut(id)
	if !ok {
		t.Fatal("GetMut failed")
	}
	*p = Integer(7)
	if v, _ := s.Lookup("hp"); v != Integer(7) {
		t.Fatalf("after GetMut = %v", v)
	}
	if !s.Mutate(id, func(v *Value) {
		n, _ := v.Integer()
		*v = Integer(n * 2)
	}) {
		t.Fatal("Mutate failed")
	}
	if v, _ := s.Lookup("hp"); v != Integer(14) {
		t.Fatalf("after Mutate = %v", v)
	}
	if s.Set(s.PropertyID("nope"), Integer(1)) {
		t.Fatal("Set on absent id succeeded")
	}
}

func TestClone(t *testing.T) {
	tmpl := New(simid.NewAbstractID("tmpl"), "attributes").
		Register("speed", SmallInteger(2)).
		Register("armor", Float(0.25))
	inst := tmpl.Clone(simid.NewMapEntityID(40), "attributes")
	if inst.ID() == tmpl.ID() {
		t.Fatal("clone shares storage id")
	}
	if v, ok := inst.Lookup("armor"); !ok || v != Float(0.25) {
		t.Fatalf("armor = %v, %v", v, ok)
	}
	inst.Set(inst.PropertyID("speed"), SmallInteger(1))
	if v, _ := tmpl.Lookup("speed"); v != SmallInteger(2) {
		t.Fatal("mutating the clone changed the template")
	}
}

func TestValueVariants(t *testing.T) {
	cases := []struct {
		v    Value
		kind Kind
		str  string
	}{
		{SmallInteger(-3), KindSmallInteger, "-3"},
		{Integer(70000), KindInteger, "70000"},
		{Float(0.5), KindFloat, "0.5"},
		{Text("hello"), KindText, "hello"},
	}
	for _, tc := range cases {
		if tc.v.Kind() != tc.kind {
			t.Errorf("%v kind = %v", tc.v, tc.v.Kind())
		}
		if tc.v.String() != tc.str {
			t.Errorf("String() = %q, want %q", tc.v.String(), tc.str)
		}
	}
	if _, ok := Integer(1).SmallInteger(); ok {
		t.Error("integer reads as small integer")
	}
	if _, ok := Text("1").Number(); ok {
		t.Error("text reads as number")
	}
}
