// FILE: loglens/src/cmd/loglens/commands/version.go
package commands

import (
	"fmt"
	"io"

	"loglens/src/internal/version"
)

// VersionCommand handles version display
type VersionCommand struct {
	out io.Writer
}

// NewVersionCommand creates a new version command
func NewVersionCommand(out io.Writer) *VersionCommand {
	return &VersionCommand{out: out}
}

func (c *VersionCommand) Execute(args []string) error {
	if len(args) > 0 && args[0] == "--short" {
		fmt.Fprintln(c.out, version.Short())
		return nil
	}
	fmt.Fprintln(c.out, version.Full())
	return nil
}

func (c *VersionCommand) Description() string {
	return "Show version information"
}

func (c *VersionCommand) Help() string {
	return `Version Command - Show loglens version information

Usage:
  loglens version            Version, commit, build time and Go toolchain
  loglens version --short    Version tag only
  loglens -v
  loglens --version
`
}
