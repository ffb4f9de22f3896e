// Package acl provides the boolean-family demo commands.
package acl

import (
	"github.com/DimaEnotoff/friendlyclp/internal/argument"
)

// Set interprets an allowed/forbidden flag.
type Set struct{}

func (Set) Aliases() []string   { return []string{"set"} }
func (Set) Description() string { return "Set the demo access flag" }

func (Set) Arguments() []argument.Def {
	return []argument.Def{
		argument.AllowedForbidden(0, "flag", "allowed or forbidden"),
	}
}

func (Set) Execute(args *argument.Set) (string, error) {
	if args.Bool("flag") {
		return "access allowed", nil
	}
	return "access forbidden", nil
}

// Confirm interprets a yes/no answer.
type Confirm struct{}

func (Confirm) Aliases() []string   { return []string{"confirm"} }
func (Confirm) Description() string { return "Confirm or decline the pending action" }

func (Confirm) Arguments() []argument.Def {
	return []argument.Def{
		argument.YesNo(0, "answer", "yes or no"),
	}
}

func (Confirm) Execute(args *argument.Set) (string, error) {
	if args.Bool("answer") {
		return "confirmed", nil
	}
	return "declined", nil
}

// Toggle interprets a true/false state.
type Toggle struct{}

func (Toggle) Aliases() []string   { return []string{"toggle"} }
func (Toggle) Description() string { return "Toggle the demo switch" }

func (Toggle) Arguments() []argument.Def {
	return []argument.Def{
		argument.Bool(0, "state", "true or false"),
	}
}

func (Toggle) Execute(args *argument.Set) (string, error) {
	if args.Bool("state") {
		return "enabled", nil
	}
	return "disabled", nil
}
