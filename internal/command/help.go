package command

import (
	"fmt"
	"strings"
)

// Help returns the command's help article. The article is pure metadata and
// cannot change after binding, so it is rendered once and memoized.
func (b *Bound) Help() string {
	b.helpOnce.Do(func() {
		b.help = b.renderHelp()
	})
	return b.help
}

// renderHelp builds the fixed article layout:
//
//	Command: name1|alias1
//	Description: ...
//	Usage: name1|alias1 arg1 [arg2]
//	   Arguments:
//	      arg1: ...
//	      arg2: ... (optional, default: "x")
func (b *Bound) renderHelp() string {
	var sb strings.Builder
	names := strings.Join(b.aliases, "|")

	fmt.Fprintf(&sb, "Command: %s\n", names)
	fmt.Fprintf(&sb, "Description: %s\n", b.description)

	sb.WriteString("Usage: " + names)
	for _, arg := range b.args {
		if arg.Optional {
			fmt.Fprintf(&sb, " [%s]", arg.Name)
		} else {
			fmt.Fprintf(&sb, " %s", arg.Name)
		}
	}

	if len(b.args) > 0 {
		sb.WriteString("\n   Arguments:")
		for _, arg := range b.args {
			fmt.Fprintf(&sb, "\n      %s: %s", arg.Name, arg.Description)
			switch {
			case arg.HasDefault:
				fmt.Fprintf(&sb, " (optional, default: %q)", arg.Default)
			case arg.Optional:
				sb.WriteString(" (optional)")
			}
		}
	}
	return sb.String()
}
