package command

import (
	"fmt"
	"sort"
	"sync"

	"github.com/DimaEnotoff/friendlyclp/internal/argument"
	"github.com/DimaEnotoff/friendlyclp/internal/util"
)

// Bound is a frozen command: validated aliases and argument defs plus the
// callback. Immutable after Bind; parsing produces a fresh argument.Set per
// invocation, so one Bound may be attached at any number of tree locations.
type Bound struct {
	aliases     []string
	description string
	args        []argument.Def
	run         Command

	helpOnce sync.Once
	help     string
}

// Bind validates cmd's configuration and freezes it into a Bound. Any
// violation returns an error wrapping ErrConfiguration that names the
// offending command and argument.
func Bind(cmd Command) (*Bound, error) {
	aliases := cmd.Aliases()
	if len(aliases) == 0 {
		return nil, fmt.Errorf("command %T has no aliases: %w", cmd, ErrConfiguration)
	}
	name := aliases[0]
	seenAliases := make(map[string]bool, len(aliases))
	for _, alias := range aliases {
		if !util.IsLowerAlphanumeric(alias) {
			return nil, fmt.Errorf("command %q: alias %q must be lowercase alphanumeric: %w", name, alias, ErrConfiguration)
		}
		if seenAliases[alias] {
			return nil, fmt.Errorf("command %q: duplicate alias %q: %w", name, alias, ErrConfiguration)
		}
		seenAliases[alias] = true
	}
	if cmd.Description() == "" {
		return nil, fmt.Errorf("command %q: empty description: %w", name, ErrConfiguration)
	}

	args := append([]argument.Def(nil), cmd.Arguments()...)
	sort.SliceStable(args, func(i, j int) bool {
		return args[i].Position < args[j].Position
	})

	positions := make(map[int]string, len(args))
	names := make(map[string]bool, len(args))
	for _, arg := range args {
		if err := arg.Validate(); err != nil {
			return nil, fmt.Errorf("command %q: %v: %w", name, err, ErrConfiguration)
		}
		if other, ok := positions[arg.Position]; ok {
			return nil, fmt.Errorf("command %q: arguments %q and %q share position %d: %w",
				name, other, arg.Name, arg.Position, ErrConfiguration)
		}
		positions[arg.Position] = arg.Name
		if names[arg.Name] {
			return nil, fmt.Errorf("command %q: duplicate argument name %q: %w", name, arg.Name, ErrConfiguration)
		}
		names[arg.Name] = true
	}
	for i, arg := range args {
		if arg.Special() && i != len(args)-1 {
			return nil, fmt.Errorf("command %q: special argument %q must occupy the last position: %w",
				name, arg.Name, ErrConfiguration)
		}
	}

	return &Bound{
		aliases:     aliases,
		description: cmd.Description(),
		args:        args,
		run:         cmd,
	}, nil
}

// Name returns the command's primary alias.
func (b *Bound) Name() string { return b.aliases[0] }

// Aliases returns all names the command answers to.
func (b *Bound) Aliases() []string { return b.aliases }

// Description returns the one-line summary.
func (b *Bound) Description() string { return b.description }

// ParseArguments consumes the remainder of an input line into a fresh
// argument set. The returned error text is the user-facing message.
func (b *Bound) ParseArguments(remainder string) (*argument.Set, error) {
	return argument.Parse(b.args, remainder)
}

// Run invokes the callback with a parsed argument set.
func (b *Bound) Run(args *argument.Set) (string, error) {
	return b.run.Execute(args)
}
