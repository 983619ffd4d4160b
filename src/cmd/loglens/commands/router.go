// FILE: loglens/src/cmd/loglens/commands/router.go
package commands

import (
	"fmt"
	"io"
	"slices"
)

// Handler defines the interface required for all subcommands.
type Handler interface {
	Execute(args []string) error
	Description() string
	Help() string
}

// CommandRouter routes CLI arguments to a subcommand handler.
type CommandRouter struct {
	commands map[string]Handler
	out      io.Writer
}

// NewCommandRouter creates the router with all available commands. Command
// output goes to out.
func NewCommandRouter(out io.Writer) *CommandRouter {
	router := &CommandRouter{
		commands: make(map[string]Handler),
		out:      out,
	}

	router.commands["version"] = NewVersionCommand(out)
	router.commands["help"] = NewHelpCommand(router)

	return router
}

// Route executes the subcommand named by args[0], if any. Any other first
// argument is left to the analyzer, since it is the input path.
func (r *CommandRouter) Route(args []string) (bool, error) {
	if len(args) == 0 {
		return false, nil
	}

	cmdName := args[0]
	handler, exists := r.commands[cmdName]
	if !exists {
		return false, nil
	}

	// Help flag after a command shows command-specific help
	if cmdName != "help" && (slices.Contains(args[1:], "-h") || slices.Contains(args[1:], "--help")) {
		fmt.Fprint(r.out, handler.Help())
		return true, nil
	}

	return true, handler.Execute(args[1:])
}

// ShowHelp prints the general help text.
func (r *CommandRouter) ShowHelp() error {
	return r.commands["help"].Execute(nil)
}

// GetCommand returns a specific command handler by its name.
func (r *CommandRouter) GetCommand(name string) (Handler, bool) {
	cmd, exists := r.commands[name]
	return cmd, exists
}

// GetCommands returns a map of all registered commands.
func (r *CommandRouter) GetCommands() map[string]Handler {
	return r.commands
}
