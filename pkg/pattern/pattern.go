package pattern

import (
	"fmt"
	"regexp"

	"github.com/pkg/errors"
)

// A Predicate tests a raw filesystem entry name.
//
// The nil Predicate is the pass-through filter: its test succeeds for every
// name. As an exclusion (not, ignore) it therefore excludes everything.
type Predicate func(name string) bool

// Tester is satisfied by *regexp.Regexp and anything else that matches strings.
type Tester interface {
	MatchString(s string) bool
}

// An objectTester exposes a test-style capability.
type objectTester interface {
	Test(s string) bool
}

// Test reports whether name passes. The pass-through filter passes every name.
func (p Predicate) Test(name string) bool {
	if p == nil {
		return true
	}
	return p(name)
}

// Present is false for the pass-through filter. Callers that treat an absent
// pattern as "off" guard on it.
func (p Predicate) Present() bool {
	return p != nil
}

// Compile builds a Predicate from a regular expression. The empty expression
// yields the pass-through filter.
func Compile(expr string) (Predicate, error) {
	if expr == "" {
		return nil, nil
	}
	rx, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "compile pattern %q", expr)
	}
	return rx.MatchString, nil
}

// MustCompile is like Compile but panics on a bad expression.
func MustCompile(expr string) Predicate {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Normalize converts v into a Predicate. Normalizing a Predicate returns it
// unchanged.
func Normalize(v interface{}) (Predicate, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case Predicate:
		return t, nil
	case func(string) bool:
		return Predicate(t), nil
	case *regexp.Regexp:
		if t == nil {
			return nil, nil
		}
		return t.MatchString, nil
	case string:
		return Compile(t)
	case Tester:
		return t.MatchString, nil
	case objectTester:
		return t.Test, nil
	default:
		return nil, fmt.Errorf("cannot use %T as a name pattern", v)
	}
}

// MustNormalize is like Normalize but panics when v cannot be used as a pattern.
func MustNormalize(v interface{}) Predicate {
	p, err := Normalize(v)
	if err != nil {
		panic(err)
	}
	return p
}
