// Package tree holds the command namespace: a hierarchy of groups with
// commands at the leaves, addressed by case-folded aliases. The topology is
// built at configuration time and is read-only during dispatch.
package tree

import (
	"fmt"

	"github.com/DimaEnotoff/friendlyclp/internal/command"
	"github.com/DimaEnotoff/friendlyclp/internal/util"
)

// Group is one node in the command namespace. An alias is unique among all
// children (groups and commands) of a node. The root group has no aliases
// and is reachable only through an empty path.
type Group struct {
	aliases     []string
	description string
	groups      map[string]*Group
	commands    map[string]*command.Bound
}

// New creates a root group carrying only a description.
func New(description string) *Group {
	return &Group{
		description: description,
		groups:      make(map[string]*Group),
		commands:    make(map[string]*command.Bound),
	}
}

// Aliases returns the names the group answers to. Empty for the root.
func (g *Group) Aliases() []string { return g.aliases }

// Description returns the group's help summary.
func (g *Group) Description() string { return g.description }

// Name returns the group's primary alias, or its description for the root.
func (g *Group) Name() string {
	if len(g.aliases) == 0 {
		return g.description
	}
	return g.aliases[0]
}

// AddGroup creates a child group under g. It fails when any alias is
// malformed or collides with an existing sibling, or the description is
// empty.
func (g *Group) AddGroup(aliases []string, description string) (*Group, error) {
	if len(aliases) == 0 {
		return nil, fmt.Errorf("group has no aliases: %w", command.ErrConfiguration)
	}
	name := aliases[0]
	if description == "" {
		return nil, fmt.Errorf("group %q: empty description: %w", name, command.ErrConfiguration)
	}
	seen := make(map[string]bool, len(aliases))
	for _, alias := range aliases {
		if !util.IsLowerAlphanumeric(alias) {
			return nil, fmt.Errorf("group %q: alias %q must be lowercase alphanumeric: %w", name, alias, command.ErrConfiguration)
		}
		if seen[alias] {
			return nil, fmt.Errorf("group %q: duplicate alias %q: %w", name, alias, command.ErrConfiguration)
		}
		seen[alias] = true
		if err := g.checkCollision(alias); err != nil {
			return nil, err
		}
	}

	child := &Group{
		aliases:     aliases,
		description: description,
		groups:      make(map[string]*Group),
		commands:    make(map[string]*command.Bound),
	}
	for _, alias := range aliases {
		g.groups[alias] = child
	}
	return child, nil
}

// AddCommand attaches a bound command under g, reachable through all of its
// aliases. Attaching the same bound command to the same group again is a
// no-op; the same command may also live under any number of other groups.
func (g *Group) AddCommand(b *command.Bound) error {
	for _, alias := range b.Aliases() {
		if existing, ok := g.commands[alias]; ok && existing == b {
			continue
		}
		if err := g.checkCollision(alias); err != nil {
			return err
		}
	}
	for _, alias := range b.Aliases() {
		g.commands[alias] = b
	}
	return nil
}

func (g *Group) checkCollision(alias string) error {
	if _, ok := g.groups[alias]; ok {
		return fmt.Errorf("alias %q already names a group in %q: %w", alias, g.Name(), command.ErrConfiguration)
	}
	if _, ok := g.commands[alias]; ok {
		return fmt.Errorf("alias %q already names a command in %q: %w", alias, g.Name(), command.ErrConfiguration)
	}
	return nil
}

// child is one distinct object under a group: either a subgroup or a
// command, never both. Children reachable through several aliases appear
// once, at their first alias in sort order.
type child struct {
	group *Group
	cmd   *command.Bound
}

// children lists subgroups first, then commands, each kind in sorted alias
// order.
func (g *Group) children() []child {
	groupKeys := make([]string, 0, len(g.groups))
	for key := range g.groups {
		groupKeys = append(groupKeys, key)
	}
	cmdKeys := make([]string, 0, len(g.commands))
	for key := range g.commands {
		cmdKeys = append(cmdKeys, key)
	}

	seenGroups := make(map[*Group]bool, len(g.groups))
	seenCmds := make(map[*command.Bound]bool, len(g.commands))
	var out []child
	for _, key := range util.SortedStrings(groupKeys) {
		sub := g.groups[key]
		if seenGroups[sub] {
			continue
		}
		seenGroups[sub] = true
		out = append(out, child{group: sub})
	}
	for _, key := range util.SortedStrings(cmdKeys) {
		cmd := g.commands[key]
		if seenCmds[cmd] {
			continue
		}
		seenCmds[cmd] = true
		out = append(out, child{cmd: cmd})
	}
	return out
}

// WalkCommands visits every command location in the subtree, depth-first in
// render order, with the path of primary aliases leading to it. A command
// attached at several locations is visited once per location.
func (g *Group) WalkCommands(fn func(path []string, cmd *command.Bound)) {
	g.walk(nil, fn)
}

func (g *Group) walk(path []string, fn func(path []string, cmd *command.Bound)) {
	for _, c := range g.children() {
		if c.group != nil {
			sub := append(append([]string(nil), path...), c.group.Name())
			c.group.walk(sub, fn)
			continue
		}
		loc := append(append([]string(nil), path...), c.cmd.Name())
		fn(loc, c.cmd)
	}
}
