// Package command turns caller-supplied operations into frozen, invocable
// units. Binding validates the whole configuration once so that per-line
// parsing can assume a well-formed argument list.
package command

import (
	"errors"

	"github.com/DimaEnotoff/friendlyclp/internal/argument"
)

// ErrConfiguration marks a registration-time contract violation: malformed
// aliases or descriptions, argument position or name collisions, a special
// argument that is not last. These indicate a programming mistake in the
// command set and must abort setup, never surface to the user.
var ErrConfiguration = errors.New("invalid configuration")

// Command is an operation supplied by the host: metadata, ordered argument
// declarations and the callback. Implementations must be stateless with
// respect to invocations; all per-call data arrives in the argument.Set.
type Command interface {
	// Aliases are the names the command answers to, lowercase alphanumeric,
	// at least one.
	Aliases() []string
	// Description is a one-line summary shown in help. Must be non-empty.
	Description() string
	// Arguments declares the positional arguments. Order is irrelevant;
	// positions define the order.
	Arguments() []argument.Def
	// Execute runs the operation with a fully parsed argument set and
	// returns the text shown to the user. A returned error (or a panic) is
	// reported to the user as a generic internal failure.
	Execute(args *argument.Set) (string, error)
}
