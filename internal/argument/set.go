package argument

import (
	"fmt"
	"math/big"
	"time"
)

type state struct {
	value    any
	hasValue bool
	omitted  bool
}

// Set is the parse result of a single invocation: a mapping from argument
// name to typed value and omitted flag. A fresh Set is produced per parse
// and handed to the callback; nothing is stored on the command itself, so
// a registered command tree stays read-only during dispatch.
//
// Accessor misuse (unknown name, wrong type, reading an argument that was
// omitted without a default) is a programming error and panics; the engine
// boundary converts such panics into a generic internal error.
type Set struct {
	args map[string]state
}

func newSet() *Set {
	return &Set{args: make(map[string]state)}
}

func (s *Set) put(name string, value any, omitted bool) {
	s.args[name] = state{value: value, hasValue: true, omitted: omitted}
}

func (s *Set) putOmitted(name string) {
	s.args[name] = state{omitted: true}
}

// Omitted reports whether the user supplied no token for the named argument.
// It is true even when a default value was applied.
func (s *Set) Omitted(name string) bool {
	st, ok := s.args[name]
	if !ok {
		panic(fmt.Sprintf("argument: no argument named %q", name))
	}
	return st.omitted
}

func (s *Set) lookup(name string) any {
	st, ok := s.args[name]
	if !ok {
		panic(fmt.Sprintf("argument: no argument named %q", name))
	}
	if !st.hasValue {
		panic(fmt.Sprintf("argument: argument %q was omitted and has no value", name))
	}
	return st.value
}

func get[T any](s *Set, name string) T {
	v := s.lookup(name)
	t, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("argument: argument %q holds a %T", name, v))
	}
	return t
}

// Int returns the value of an Int, IntChecked or NonNegativeInt argument.
func (s *Set) Int(name string) int { return get[int](s, name) }

// Int64 returns the value of an Int64 argument.
func (s *Set) Int64(name string) int64 { return get[int64](s, name) }

// Float64 returns the value of a Float64 argument.
func (s *Set) Float64(name string) float64 { return get[float64](s, name) }

// Decimal returns the value of a Decimal argument.
func (s *Set) Decimal(name string) *big.Rat { return get[*big.Rat](s, name) }

// String returns the value of a String argument.
func (s *Set) String(name string) string { return get[string](s, name) }

// Char returns the value of a Char argument.
func (s *Set) Char(name string) rune { return get[rune](s, name) }

// Time returns the value of a Date argument.
func (s *Set) Time(name string) time.Time { return get[time.Time](s, name) }

// Bool returns the value of a Bool, YesNo or AllowedForbidden argument.
func (s *Set) Bool(name string) bool { return get[bool](s, name) }

// Ints returns the value of an IntList argument.
func (s *Set) Ints(name string) []int { return get[[]int](s, name) }
