// Package misc provides the root-level demo commands.
package misc

import (
	"github.com/DimaEnotoff/friendlyclp/internal/argument"
)

// Echo returns its text verbatim, or a stock phrase when nothing was given.
type Echo struct{}

func (Echo) Aliases() []string   { return []string{"echo", "e"} }
func (Echo) Description() string { return "Echo the provided text back" }

func (Echo) Arguments() []argument.Def {
	return []argument.Def{
		argument.String(0, "text", "text to echo",
			argument.Multisegmented(), argument.WithDefault("nothing to echo")),
	}
}

func (Echo) Execute(args *argument.Set) (string, error) {
	return args.String("text"), nil
}

// When names the weekday of a calendar date.
type When struct{}

func (When) Aliases() []string   { return []string{"when", "w"} }
func (When) Description() string { return "Show the weekday of a date" }

func (When) Arguments() []argument.Def {
	return []argument.Def{
		argument.Date(0, "date", "date in YYYY-MM-DD format"),
	}
}

func (When) Execute(args *argument.Set) (string, error) {
	return args.Time("date").Weekday().String(), nil
}
