package simid

import (
	"strings"
	"testing"
)

func TestUniqueStringInjectiveAcrossKinds(t *testing.T) {
	parent := NewEntityID(7)
	ids := []ID{
		NewEntityID(42),
		NewMapEntityID(42),
		NewAbstractID("42"),
		NewAbstractID("entity:42"),
		NewAttachedContainerID(parent, "42"),
		NewPropertyID(parent, "42"),
		NewEntityID(7),
		NewMapEntityID(7),
		NewAttachedContainerID(NewMapEntityID(7), "42"),
	}
	seenStr := make(map[string]int)
	seenHash := make(map[uint64]int)
	for i, id := range ids {
		s := id.UniqueString()
		if j, dup := seenStr[s]; dup {
			t.Fatalf("ids %d and %d render to the same string %q", j, i, s)
		}
		seenStr[s] = i
		h := id.Hash()
		if j, dup := seenHash[h]; dup {
			t.Fatalf("ids %d and %d share hash %x", j, i, h)
		}
		seenHash[h] = i
	}
}

func TestDifferentKindsNeverEqual(t *testing.T) {
	if NewEntityID(1) == NewMapEntityID(1) {
		t.Fatal("entity and map entity ids with the same scalar compare equal")
	}
	parent := NewAbstractID("p")
	if NewAttachedContainerID(parent, "k") == NewPropertyID(parent, "k") {
		t.Fatal("container and property ids with the same payload compare equal")
	}
	if NewEntityID(1).Hash() == NewMapEntityID(1).Hash() {
		t.Fatal("entity and map entity ids with the same scalar share a hash")
	}
}

func TestDeriveChildDeterministic(t *testing.T) {
	parent := NewMapEntityID(3)
	a := DeriveChild(parent, "k")
	b := DeriveChild(parent, "k")
	if a != b {
		t.Fatalf("derive twice: %q != %q", a, b)
	}
	if DeriveChild(parent, "k1") == DeriveChild(parent, "k2") {
		t.Fatal("distinct keys derived the same child")
	}
	if NewPropertyID(parent, "k") != NewPropertyID(parent, "k") {
		t.Fatal("property id derivation is not deterministic")
	}
	if !strings.HasPrefix(a, parent.UniqueString()) {
		t.Fatalf("child %q is not prefixed by parent %q", a, parent.UniqueString())
	}
}

func TestDeriveChildKeysWithSeparator(t *testing.T) {
	// "container:x/b" + "c" must not meet "container:x" + "b/c".
	root := NewAbstractID("x")
	nested := NewAttachedContainerID(root, "b")
	left := NewPropertyID(nested, "c")
	right := NewPropertyID(root, "b/c")
	if left.UniqueString() == right.UniqueString() {
		t.Fatalf("separator in key collides: %q", left.UniqueString())
	}
}

func TestAbstractIDNormalized(t *testing.T) {
	composed := NewAbstractID("caf\u00e9")
	decomposed := NewAbstractID("cafe\u0301")
	if composed != decomposed {
		t.Fatalf("NFC variants differ: %q vs %q", composed, decomposed)
	}
}

func TestDerivedKeysKeepBytes(t *testing.T) {
	parent := NewAbstractID("unit.scout")
	composed := NewPropertyID(parent, "caf\u00e9")
	decomposed := NewPropertyID(parent, "cafe\u0301")
	if composed == decomposed {
		t.Fatalf("distinct keys share id %q", composed)
	}
	back, err := Parse(decomposed.UniqueString())
	if err != nil || back != decomposed {
		t.Fatalf("parse %q = %v, %v", decomposed.UniqueString(), back, err)
	}
}

func TestParseRoundTrip(t *testing.T) {
	parent := NewEntityID(9)
	ids := []ID{
		NewEntityID(0),
		NewMapEntityID(4294967295),
		NewAbstractID("trait.honest"),
		NewAttachedContainerID(parent, "attributes"),
		NewPropertyID(NewAttachedContainerID(parent, "attributes"), "speed"),
	}
	for _, id := range ids {
		got, err := Parse(id.UniqueString())
		if err != nil {
			t.Fatalf("parse %q: %v", id, err)
		}
		if got != id {
			t.Errorf("parse %q: got %q", id, got)
		}
	}
	for _, bad := range []string{"", "entity", "entity:-1", "robot:1", "mapentity:x"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("parse %q: expected error", bad)
		}
	}
}

func TestPayloadAccessors(t *testing.T) {
	if n, ok := NewEntityID(5).Number(); !ok || n != 5 {
		t.Errorf("Number() = %d, %v", n, ok)
	}
	if _, ok := NewAbstractID("a").Number(); ok {
		t.Error("abstract id reports a number")
	}
	if s, ok := NewAbstractID("a").Text(); !ok || s != "a" {
		t.Errorf("Text() = %q, %v", s, ok)
	}
	if (ID{}).IsValid() {
		t.Error("zero id is valid")
	}
}

func TestDeriveFromInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	DeriveChild(ID{}, "k")
}
