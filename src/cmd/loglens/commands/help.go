// FILE: loglens/src/cmd/loglens/commands/help.go
package commands

import (
	"fmt"
	"sort"
	"strings"
)

// generalHelpTemplate is the help message shown when no specific command is requested.
const generalHelpTemplate = `loglens: Parse, filter and summarize a structured log file.

Usage:
  loglens <logfile> [options]
  loglens - [options]        Read the log from standard input
  loglens [command]

Commands:
%s

Filter Options:
  --level <a,b>            Keep only these levels (case-insensitive)
  --ip <x,y>               Keep only these sources (exact match)
  --grep <regex>           Keep records matching the regex (repeatable, any match)
  --exclude <regex>        Drop records matching the regex (repeatable)
  --field <name>           Field for --grep/--exclude: message, source, level, any
                           (default: message)
  -i, --ignore-case        Case-insensitive --grep/--exclude

Output Options:
  --csv <path>             Export filtered records to a CSV file
  --top <n>                Number of top sources in the summary (default: 5)
  --format <text|json>     Summary format (default: text)
  --color <mode>           Color mode: auto, always, never (default: auto)

Application Options:
  -c, --config <path>      Path to configuration file (default: loglens.toml)
  -h, --help               Display this help message and exit
  -v, --version            Display version information and exit
  -q, --quiet              Suppress all console output, including errors
  --log-level <level>      Diagnostic log level: debug, info, warn, error
  --log-output <mode>      Diagnostic log output: stderr, stdout, file, none

Configuration Sources (Precedence: CLI > Env > File > Defaults):
  - CLI flags override all other settings
  - Environment variables (LOGLENS_*) override file settings
  - TOML configuration file holds message pattern filters

Exit Codes:
  0  Success
  1  Invalid arguments, configuration or export failure
  2  Input file not found

Examples:
  # Errors and warnings from one host, exported to CSV
  loglens app.log --level=Error,Warning --ip=10.0.0.1 --csv=out.csv

  # Timeouts, skipping the health checker host
  loglens app.log --grep=timeout -i --exclude=^10\.0\.0\.9$ --field=any

  # Top 10 sources as JSON
  loglens app.log --top=10 --format=json

  # Summarize a compressed log
  zcat app.log.gz | loglens -
`

// HelpCommand handles the display of general or command-specific help messages.
type HelpCommand struct {
	router *CommandRouter
}

// NewHelpCommand creates a new help command handler.
func NewHelpCommand(router *CommandRouter) *HelpCommand {
	return &HelpCommand{router: router}
}

// Execute displays the appropriate help message based on the provided arguments.
func (c *HelpCommand) Execute(args []string) error {
	if len(args) > 0 && args[0] != "" {
		cmdName := args[0]

		if handler, exists := c.router.GetCommand(cmdName); exists {
			fmt.Fprint(c.router.out, handler.Help())
			return nil
		}

		return fmt.Errorf("unknown command: %s", cmdName)
	}

	fmt.Fprintf(c.router.out, generalHelpTemplate, c.formatCommandList())
	return nil
}

// Description returns a brief one-line description of the command.
func (c *HelpCommand) Description() string {
	return "Display help information"
}

// Help returns the detailed help text for the 'help' command itself.
func (c *HelpCommand) Help() string {
	return `Help Command - Display help information

Usage:
  loglens help              Show general help
  loglens help <command>    Show help for a specific command
`
}

// formatCommandList creates an aligned list of all available commands.
func (c *HelpCommand) formatCommandList() string {
	commands := c.router.GetCommands()

	names := make([]string, 0, len(commands))
	maxLen := 0
	for name := range commands {
		names = append(names, name)
		if len(name) > maxLen {
			maxLen = len(name)
		}
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		handler := commands[name]
		padding := strings.Repeat(" ", maxLen-len(name)+2)
		lines = append(lines, fmt.Sprintf("  %s%s%s", name, padding, handler.Description()))
	}

	return strings.Join(lines, "\n")
}
