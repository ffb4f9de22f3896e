package command

import (
	"log/slog"

	"github.com/DimaEnotoff/friendlyclp/internal/argument"
)

// Middleware is a function that wraps a command.
type Middleware func(Command) Command

// WrappedCommand represents a command wrapped with a middleware.
type WrappedCommand struct {
	Command
	Wrap func(args *argument.Set) (string, error)
}

// Execute runs the wrapped command.
func (w *WrappedCommand) Execute(args *argument.Set) (string, error) {
	if w.Wrap != nil {
		return w.Wrap(args)
	}
	return w.Command.Execute(args)
}

// ApplyMiddlewares wraps a command with any number of middlewares.
func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}

// WithDispatchLog logs every invocation of the command at debug level.
func WithDispatchLog(logger *slog.Logger) Middleware {
	return func(cmd Command) Command {
		name := ""
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			name = aliases[0]
		}
		return &WrappedCommand{
			Command: cmd,
			Wrap: func(args *argument.Set) (string, error) {
				logger.Debug("dispatching command", "command", name)
				return cmd.Execute(args)
			},
		}
	}
}
