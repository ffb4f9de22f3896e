// Package argument defines typed positional arguments for commands: the
// declarative Spec metadata, the parametrized Def (conversion plus optional
// validation), the built-in argument families, and the per-invocation parse
// pipeline that turns the free-text remainder of a line into a Set of typed
// values.
package argument

import (
	"fmt"

	"github.com/DimaEnotoff/friendlyclp/internal/util"
)

// Spec is the declarative metadata of a single positional argument.
type Spec struct {
	// Position orders arguments within a command, ascending from 0.
	Position int
	// Name is shown in help and used by callbacks to address the value.
	// Must be lowercase alphanumeric.
	Name string
	// Description is the help text for the argument. Must be non-empty.
	Description string
	// Multisegmented arguments consume the entire remaining text of the
	// line, embedded whitespace included. Only valid at the last position.
	Multisegmented bool
	// Optional arguments may be omitted by the user. Only valid at the
	// last position.
	Optional bool
	// Default is converted and validated in place of an omitted value.
	// Meaningful only when HasDefault is set.
	Default    string
	HasDefault bool
}

// Special reports whether the argument is optional or multisegmented.
// A command may declare at most one special argument, at its highest
// position.
func (s Spec) Special() bool {
	return s.Optional || s.Multisegmented
}

// Validate checks the spec's own shape. Cross-argument rules (unique
// positions, special argument last) are enforced at command binding.
func (s Spec) Validate() error {
	if s.Position < 0 {
		return fmt.Errorf("argument %q: negative position %d", s.Name, s.Position)
	}
	if !util.IsLowerAlphanumeric(s.Name) {
		return fmt.Errorf("argument name %q must be lowercase alphanumeric", s.Name)
	}
	if s.Description == "" {
		return fmt.Errorf("argument %q: empty description", s.Name)
	}
	return nil
}

// Def pairs a Spec with its conversion function and an optional semantic
// validation. The error text returned by either is the type-specific detail
// embedded into the user-facing parse or validation message.
type Def struct {
	Spec

	convert  func(token string) (any, error)
	validate func(value any) error
}

// Option adjusts a Spec during construction.
type Option func(*Spec)

// Optional marks the argument as omittable by the user.
func Optional() Option {
	return func(s *Spec) { s.Optional = true }
}

// WithDefault sets the literal applied when the argument is omitted.
// Implies Optional. The default runs through the same conversion and
// validation as user input when applied, so a malformed default surfaces
// as an ordinary parse failure at invocation time.
func WithDefault(value string) Option {
	return func(s *Spec) {
		s.Optional = true
		s.Default = value
		s.HasDefault = true
	}
}

// Multisegmented makes the argument consume all remaining text on the line.
func Multisegmented() Option {
	return func(s *Spec) { s.Multisegmented = true }
}

// New builds a Def from a typed conversion function and an optional typed
// validation predicate. All built-in families are constructed through it;
// callers may use it directly for custom argument types.
func New[T any](spec Spec, convert func(token string) (T, error), validate func(value T) error) Def {
	d := Def{Spec: spec}
	d.convert = func(token string) (any, error) {
		return convert(token)
	}
	if validate != nil {
		d.validate = func(value any) error {
			return validate(value.(T))
		}
	}
	return d
}

func newSpec(position int, name, description string, opts []Option) Spec {
	s := Spec{Position: position, Name: name, Description: description}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// convertAndValidate runs a single token through the Def, wrapping failures
// into the fixed user-facing message templates.
func (d Def) convertAndValidate(token string) (any, error) {
	value, err := d.convert(token)
	if err != nil {
		return nil, fmt.Errorf("Error parsing argument %q. %s", d.Name, err)
	}
	if d.validate != nil {
		if err := d.validate(value); err != nil {
			return nil, fmt.Errorf("Error validating argument %q. %s", d.Name, err)
		}
	}
	return value, nil
}
