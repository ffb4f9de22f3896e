// Package commands assembles the demo command set into an engine. The set
// exercises every built-in argument family and both multi-alias and
// multi-path registration.
package commands

import (
	"log/slog"

	"github.com/DimaEnotoff/friendlyclp/internal/command"
	"github.com/DimaEnotoff/friendlyclp/internal/commands/acl"
	"github.com/DimaEnotoff/friendlyclp/internal/commands/calc"
	"github.com/DimaEnotoff/friendlyclp/internal/commands/misc"
	"github.com/DimaEnotoff/friendlyclp/internal/commands/textutil"
	"github.com/DimaEnotoff/friendlyclp/internal/engine"
)

// Install registers the demo groups and commands into e. Commands are
// wrapped with dispatch logging; div and rc are additionally attached at
// the root so the most common operations need no group prefix.
func Install(e *engine.Engine, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	logged := command.WithDispatchLog(logger)

	if err := e.AddGroup("", []string{"tu", "text"}, "Text utilities"); err != nil {
		return err
	}
	if err := e.AddGroup("", []string{"calc", "c"}, "Calculator"); err != nil {
		return err
	}
	if err := e.AddGroup("", []string{"acl"}, "Access control demo"); err != nil {
		return err
	}

	root := []struct {
		path string
		cmd  command.Command
	}{
		{"", misc.Echo{}},
		{"", misc.When{}},
		{"tu", textutil.CountWords{}},
		{"tu", textutil.Upper{}},
		{"calc", calc.Add{}},
		{"calc", calc.Sum{}},
		{"calc", calc.Sqrt{}},
		{"acl", acl.Set{}},
		{"acl", acl.Confirm{}},
		{"acl", acl.Toggle{}},
	}
	for _, reg := range root {
		if err := e.AddCommand(reg.path, command.ApplyMiddlewares(reg.cmd, logged)); err != nil {
			return err
		}
	}

	// One binding attached at two paths each.
	div, err := command.Bind(command.ApplyMiddlewares(calc.Div{}, logged))
	if err != nil {
		return err
	}
	rc, err := command.Bind(command.ApplyMiddlewares(textutil.RemoveChar{}, logged))
	if err != nil {
		return err
	}
	for _, reg := range []struct {
		path  string
		bound *command.Bound
	}{
		{"calc", div}, {"", div},
		{"tu", rc}, {"", rc},
	} {
		if err := e.AddBound(reg.path, reg.bound); err != nil {
			return err
		}
	}
	return nil
}
