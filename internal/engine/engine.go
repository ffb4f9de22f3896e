// Package engine is the public surface of the dispatch engine: command and
// group registration, line processing and help lookup. Each Engine owns an
// isolated tree; once configuration is done the tree is read-only and every
// invocation carries its own parsed-argument state.
package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/DimaEnotoff/friendlyclp/internal/command"
	"github.com/DimaEnotoff/friendlyclp/internal/tree"
)

// User-facing replies that are not produced by the argument pipeline.
const (
	MsgEnterCommand    = "Please enter a command!"
	MsgCommandNotFound = "Command not found!"
	MsgInternalError   = "Internal error!"

	msgSpecifyCommand = "Please specify a command within the %q group!"
)

// Engine holds one command tree and dispatches lines against it.
type Engine struct {
	root   *tree.Group
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes the engine's internal diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// New creates an empty engine whose root group carries description.
func New(description string, opts ...Option) *Engine {
	e := &Engine{
		root:   tree.New(description),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddGroup creates a group under the group named by path (a whitespace
// separated alias path; empty means the root). Registration fails loudly on
// any configuration violation.
func (e *Engine) AddGroup(path string, aliases []string, description string) error {
	parent, err := e.resolveGroup(path)
	if err != nil {
		return fmt.Errorf("add group %v: %w", aliases, err)
	}
	if _, err := parent.AddGroup(aliases, description); err != nil {
		return fmt.Errorf("add group %v: %w", aliases, err)
	}
	return nil
}

// AddCommand binds cmd and attaches it under the group named by path. The
// same command may be registered under several paths; each registration
// reuses one frozen binding per call.
func (e *Engine) AddCommand(path string, cmd command.Command) error {
	bound, err := command.Bind(cmd)
	if err != nil {
		return fmt.Errorf("add command: %w", err)
	}
	return e.AddBound(path, bound)
}

// AddBound attaches an already bound command under the group named by path.
// Use it to attach one identical binding at several tree locations.
func (e *Engine) AddBound(path string, bound *command.Bound) error {
	parent, err := e.resolveGroup(path)
	if err != nil {
		return fmt.Errorf("add command %q: %w", bound.Name(), err)
	}
	if err := parent.AddCommand(bound); err != nil {
		return fmt.Errorf("add command %q: %w", bound.Name(), err)
	}
	return nil
}

func (e *Engine) resolveGroup(path string) (*tree.Group, error) {
	res := e.root.Search(path)
	switch res.Kind {
	case tree.GroupFound:
		return res.Group, nil
	case tree.CommandFound:
		return nil, fmt.Errorf("path %q resolves to a command, not a group: %w", path, command.ErrConfiguration)
	default:
		return nil, fmt.Errorf("path %q does not resolve to a group: %w", path, command.ErrConfiguration)
	}
}

// ProcessLine resolves and executes one line of user input. The returned
// text is either the command's result or the first error encountered; user
// mistakes never surface as Go errors.
func (e *Engine) ProcessLine(line string) string {
	if strings.TrimSpace(line) == "" {
		return MsgEnterCommand
	}
	res := e.root.Search(line)
	switch res.Kind {
	case tree.CommandFound:
		return e.invoke(res.Command, res.Remainder)
	case tree.GroupFound:
		if len(res.Group.Aliases()) == 0 {
			// Non-blank input cannot exhaust at the root; kept for safety.
			return MsgEnterCommand
		}
		return fmt.Sprintf(msgSpecifyCommand, res.Group.Name())
	default:
		// A miss inside a named group points the user at that group; a
		// miss at the root is a plain unknown command.
		if res.Group != nil && len(res.Group.Aliases()) > 0 {
			return fmt.Sprintf(msgSpecifyCommand, res.Group.Name())
		}
		return MsgCommandNotFound
	}
}

// invoke runs the full pipeline for one matched command. The callback runs
// only once every argument has converted and validated; a callback error or
// panic is logged and reported generically, never propagated.
func (e *Engine) invoke(b *command.Bound, remainder string) (reply string) {
	args, err := b.ParseArguments(remainder)
	if err != nil {
		return err.Error()
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("command panicked", "command", b.Name(), "panic", r)
			reply = MsgInternalError
		}
	}()

	result, err := b.Run(args)
	if err != nil {
		e.logger.Error("command failed", "command", b.Name(), "error", err)
		return MsgInternalError
	}
	return result
}

// GetHelp resolves path to a help article: the rendered subtree for a
// group, the command article for a fully consumed command path. The empty
// path is always valid and yields the whole tree.
func (e *Engine) GetHelp(path string) (string, bool) {
	res := e.root.Search(path)
	switch res.Kind {
	case tree.GroupFound:
		return res.Group.Render(), true
	case tree.CommandFound:
		if strings.TrimSpace(res.Remainder) != "" {
			return "", false
		}
		return res.Command.Help(), true
	default:
		return "", false
	}
}

// WalkCommands visits every command location in the tree in render order,
// passing the alias path and the command's help article.
func (e *Engine) WalkCommands(fn func(path string, help string)) {
	e.root.WalkCommands(func(path []string, cmd *command.Bound) {
		fn(strings.Join(path, " "), cmd.Help())
	})
}
