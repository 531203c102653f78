package scripting

import (
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/unshrouded/core/internal/property"
	"github.com/unshrouded/core/internal/simid"
)

// RunPropertyHook calls the global Lua function fn with a handle on props.
// The handle exposes, by textual key only:
//
//	props.get(key)            -> number | string | nil
//	props.set(key, value)     keeps the variant the property was registered with
//	props.register(key, value) adds a property; strings become text, whole
//	                           numbers integer, anything else float
//	props.keys()              -> array of keys in registration order
//	props.id()                -> canonical string of the storage
//
// A missing fn is not an error.
func (e *Engine) RunPropertyHook(fn string, props *property.Storage) error {
	f := e.vm.GetGlobal(fn)
	if f == lua.LNil {
		e.log.Debug("property hook not defined", zap.String("name", fn))
		return nil
	}
	if _, ok := f.(*lua.LFunction); !ok {
		return fmt.Errorf("property hook %s: global is a %s, not a function", fn, f.Type())
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      f,
		NRet:    0,
		Protect: true,
	}, e.propertyHandle(props)); err != nil {
		return fmt.Errorf("property hook %s on %s: %w", fn, props.ID(), err)
	}
	return nil
}

func (e *Engine) propertyHandle(props *property.Storage) *lua.LTable {
	L := e.vm
	t := L.NewTable()

	t.RawSetString("get", L.NewFunction(func(L *lua.LState) int {
		v, ok := props.Lookup(L.CheckString(1))
		if !ok {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(toLua(v))
		return 1
	}))

	t.RawSetString("set", L.NewFunction(func(L *lua.LState) int {
		key := L.CheckString(1)
		id := props.PropertyID(key)
		cur, ok := props.Get(id)
		if !ok {
			L.RaiseError("unknown property %q", key)
			return 0
		}
		v, err := fromLua(cur.Kind(), L.CheckAny(2))
		if err != nil {
			L.RaiseError("property %q: %s", key, err.Error())
			return 0
		}
		props.Set(id, v)
		return 0
	}))

	t.RawSetString("register", L.NewFunction(func(L *lua.LState) int {
		key := L.CheckString(1)
		if _, exists := props.Lookup(key); exists {
			L.RaiseError("property %q already registered", key)
			return 0
		}
		v, err := inferFromLua(L.CheckAny(2))
		if err != nil {
			L.RaiseError("property %q: %s", key, err.Error())
			return 0
		}
		props.Register(key, v)
		return 0
	}))

	t.RawSetString("keys", L.NewFunction(func(L *lua.LState) int {
		keys := L.NewTable()
		props.Each(func(key string, _ simid.ID, _ property.Value) {
			keys.Append(lua.LString(key))
		})
		L.Push(keys)
		return 1
	}))

	t.RawSetString("id", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(props.ID().UniqueString()))
		return 1
	}))

	return t
}

func toLua(v property.Value) lua.LValue {
	if s, ok := v.Text(); ok {
		return lua.LString(s)
	}
	n, _ := v.Number()
	return lua.LNumber(n)
}

// fromLua converts a script value to the variant kind, rejecting type
// mismatches, fractions for integer variants and out-of-range numbers.
func fromLua(kind property.Kind, lv lua.LValue) (property.Value, error) {
	if kind == property.KindText {
		s, ok := lv.(lua.LString)
		if !ok {
			return property.Value{}, fmt.Errorf("want string, got %s", lv.Type())
		}
		return property.Text(string(s)), nil
	}
	n, ok := lv.(lua.LNumber)
	if !ok {
		return property.Value{}, fmt.Errorf("want number, got %s", lv.Type())
	}
	f := float64(n)
	switch kind {
	case property.KindSmallInteger:
		if f != math.Trunc(f) || f < math.MinInt16 || f > math.MaxInt16 {
			return property.Value{}, fmt.Errorf("%v does not fit a small integer", f)
		}
		return property.SmallInteger(int16(f)), nil
	case property.KindInteger:
		if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
			return property.Value{}, fmt.Errorf("%v does not fit an integer", f)
		}
		return property.Integer(int32(f)), nil
	case property.KindFloat:
		return property.Float(f), nil
	}
	return property.Value{}, fmt.Errorf("unsupported property kind %v", kind)
}

func inferFromLua(lv lua.LValue) (property.Value, error) {
	switch v := lv.(type) {
	case lua.LString:
		return property.Text(string(v)), nil
	case lua.LNumber:
		f := float64(v)
		if f == math.Trunc(f) && f >= math.MinInt32 && f <= math.MaxInt32 {
			return property.Integer(int32(f)), nil
		}
		return property.Float(f), nil
	}
	return property.Value{}, fmt.Errorf("want number or string, got %s", lv.Type())
}
