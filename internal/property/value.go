// Package property provides dynamic properties attached to a simulation
// component, e.g. the extraction rate of a mining facility.
//
// Properties are meant for scripts: no Go type leaks past Value, and access
// from outside goes through textual keys.
package property

import (
	"fmt"
	"strconv"
)

// Kind tags the closed set of property value variants.
type Kind uint8

const (
	KindSmallInteger Kind = iota + 1
	KindInteger
	KindFloat
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindSmallInteger:
		return "small_integer"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is a typed property value.
type Value struct {
	kind Kind
	i    int32
	f    float64
	s    string
}

func SmallInteger(v int16) Value { return Value{kind: KindSmallInteger, i: int32(v)} }
func Integer(v int32) Value      { return Value{kind: KindInteger, i: v} }
func Float(v float64) Value      { return Value{kind: KindFloat, f: v} }
func Text(v string) Value        { return Value{kind: KindText, s: v} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) SmallInteger() (int16, bool) {
	return int16(v.i), v.kind == KindSmallInteger
}

func (v Value) Integer() (int32, bool) {
	return v.i, v.kind == KindInteger
}

func (v Value) Float() (float64, bool) {
	return v.f, v.kind == KindFloat
}

func (v Value) Text() (string, bool) {
	return v.s, v.kind == KindText
}

// Number returns numeric variants widened to float64.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindSmallInteger, KindInteger:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	case KindText:
		return 0, false
	}
	panic(fmt.Sprintf("property: unknown value kind %d", v.kind))
}

func (v Value) String() string {
	switch v.kind {
	case KindSmallInteger, KindInteger:
		return strconv.FormatInt(int64(v.i), 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindText:
		return v.s
	}
	panic(fmt.Sprintf("property: unknown value kind %d", v.kind))
}
