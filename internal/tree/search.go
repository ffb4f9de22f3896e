package tree

import (
	"strings"
	"unicode"

	"github.com/DimaEnotoff/friendlyclp/internal/command"
)

// Kind tags a search result. The walk is deterministic: there is no
// partial or ambiguous match state.
type Kind int

const (
	// NothingFound means a token matched neither a group nor a command.
	// Result.Group still names the group whose children were searched.
	NothingFound Kind = iota
	// GroupFound means the line was exhausted at a group node.
	GroupFound
	// CommandFound means a token matched a command; the rest of the line
	// is the argument remainder.
	CommandFound
)

// Result is the outcome of resolving an input line against the tree.
type Result struct {
	Kind Kind
	// Group is the found group for GroupFound and the deepest group
	// reached for NothingFound; unset for CommandFound.
	Group   *Group
	Command *command.Bound
	// Remainder is the unconsumed text after the command token, original
	// casing preserved so arguments keep what the user typed.
	Remainder string
}

// Search case-insensitively walks leading whitespace-delimited tokens of
// line: a token naming a child group descends, a token naming a command
// returns it together with the remaining text, an exhausted line returns
// the current group, anything else is NothingFound at the current group.
func (g *Group) Search(line string) Result {
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	if rest == "" {
		return Result{Kind: GroupFound, Group: g}
	}

	token := rest
	if i := strings.IndexFunc(rest, unicode.IsSpace); i >= 0 {
		token, rest = rest[:i], rest[i:]
	} else {
		rest = ""
	}

	// Stored alias keys are lowercase by construction.
	key := strings.ToLower(token)
	if sub, ok := g.groups[key]; ok {
		return sub.Search(rest)
	}
	if cmd, ok := g.commands[key]; ok {
		return Result{Kind: CommandFound, Command: cmd, Remainder: rest}
	}
	return Result{Kind: NothingFound, Group: g}
}
