package resolve

import (
	"reflect"

	"github.com/replicatedhq/dirload/pkg/tree"
)

// ModeKind selects how a resolve pass treats leaves.
type ModeKind int

const (
	// NoArgsMode calls callable leaves without arguments
	NoArgsMode ModeKind = iota
	// TransformMode passes every leaf through a TransformFunc
	TransformMode
	// ArgsMode calls callable leaves with a fixed argument list
	ArgsMode
)

func (k ModeKind) String() string {
	switch k {
	case TransformMode:
		return "transform"
	case ArgsMode:
		return "args"
	default:
		return "no-args"
	}
}

// TransformFunc replaces the leaf at key when ok is true.
type TransformFunc func(key string, value interface{}) (result interface{}, ok bool, err error)

// Mode is one of NoArgs, Transform or Args.
type Mode struct {
	kind      ModeKind
	transform TransformFunc
	args      []interface{}
}

func NoArgs() Mode {
	return Mode{kind: NoArgsMode}
}

// Transform passes every leaf through fn. A nil fn behaves like NoArgs.
func Transform(fn TransformFunc) Mode {
	if fn == nil {
		return NoArgs()
	}
	return Mode{kind: TransformMode, transform: fn}
}

// Args calls callable leaves with args. Zero args behaves like NoArgs.
func Args(args ...interface{}) Mode {
	if len(args) == 0 {
		return NoArgs()
	}
	return Mode{kind: ArgsMode, args: args}
}

// FromArgs picks a Mode the way a dynamically typed caller would: a lone
// transform function selects Transform, a lone slice or array of any element
// type except bytes is spread as the argument list, anything else is passed
// through verbatim.
//
// Only functions shaped like a transform, taking a key and a value, select
// Transform. Any other lone function, such as a func(...interface{}) interface{},
// is an argument for callable leaves.
func FromArgs(args ...interface{}) Mode {
	if len(args) != 1 {
		return Args(args...)
	}
	switch v := args[0].(type) {
	case TransformFunc:
		return Transform(v)
	case func(string, interface{}) (interface{}, bool, error):
		return Transform(v)
	case func(string, interface{}) interface{}:
		return Transform(Truthy(v))
	case []interface{}:
		return Args(v...)
	case []byte:
		return Args(args...)
	}

	if spread, ok := spreadSequence(args[0]); ok {
		return Args(spread...)
	}
	return Args(args...)
}

func spreadSequence(v interface{}) ([]interface{}, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	spread := make([]interface{}, rv.Len())
	for i := range spread {
		spread[i] = rv.Index(i).Interface()
	}
	return spread, true
}

// Truthy adapts fn so that falsy results keep the original leaf.
func Truthy(fn func(key string, value interface{}) interface{}) TransformFunc {
	return func(key string, value interface{}) (interface{}, bool, error) {
		result := fn(key, value)
		return result, tree.IsTruthy(result), nil
	}
}

func (m Mode) Kind() ModeKind {
	return m.kind
}

// Arguments returns the argument list handed to callable leaves.
func (m Mode) Arguments() []interface{} {
	return m.args
}
