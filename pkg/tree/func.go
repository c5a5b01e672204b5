package tree

import (
	"math"
	"reflect"
)

// Func is a callable leaf. When ok is false the resolve pass keeps the
// original leaf instead of the result.
type Func func(args ...interface{}) (result interface{}, ok bool, err error)

// Truthy adapts fn to a Func whose result replaces the leaf only when it is
// truthy: nil, false, zero numbers and empty strings keep the original.
func Truthy(fn func(args ...interface{}) interface{}) Func {
	return func(args ...interface{}) (interface{}, bool, error) {
		result := fn(args...)
		return result, IsTruthy(result), nil
	}
}

// IsTruthy reports whether v would count as true in a boolean context of a
// dynamic language.
func IsTruthy(v interface{}) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	default:
		return true
	}
}

// AsFunc reports whether v can be called as a leaf, adapting plain
// variadic functions with Truthy.
func AsFunc(v interface{}) (Func, bool) {
	switch fn := v.(type) {
	case Func:
		return fn, fn != nil
	case func(args ...interface{}) (interface{}, bool, error):
		return Func(fn), fn != nil
	case func(args ...interface{}) interface{}:
		if fn == nil {
			return nil, false
		}
		return Truthy(fn), true
	default:
		return nil, false
	}
}
