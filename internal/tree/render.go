package tree

import (
	"fmt"
	"strings"
)

// Box-drawing prefixes of the rendered tree.
const (
	branchMid  = "├──"
	branchLast = "└──"
	pipeIndent = "│  "
	lastIndent = "   "
)

// Render produces the pseudo-graphic dump of the subtree rooted at g, one
// line per descendant:
//
//	<root description>
//	├──<grp1: grp1 description>
//	│  └──"cmd1" - cmd1 description
//	└──"cmd2" - cmd2 description
//
// The root line is the plain description for the true root and
// "<aliases: description>" otherwise. Subgroups come before commands, each
// kind in sorted alias order; a child reachable through several aliases
// renders once, labelled with its full alias list.
func (g *Group) Render() string {
	lines := []string{g.label()}
	g.renderChildren(&lines, "")
	return strings.Join(lines, "\n")
}

func (g *Group) label() string {
	if len(g.aliases) == 0 {
		return g.description
	}
	return fmt.Sprintf("<%s: %s>", strings.Join(g.aliases, "|"), g.description)
}

func (g *Group) renderChildren(lines *[]string, prefix string) {
	entries := g.children()
	for i, c := range entries {
		branch, childPrefix := branchMid, prefix+pipeIndent
		if i == len(entries)-1 {
			branch, childPrefix = branchLast, prefix+lastIndent
		}
		if c.group != nil {
			*lines = append(*lines, prefix+branch+c.group.label())
			c.group.renderChildren(lines, childPrefix)
			continue
		}
		*lines = append(*lines, prefix+branch+fmt.Sprintf("%q - %s",
			strings.Join(c.cmd.Aliases(), "|"), c.cmd.Description()))
	}
}
