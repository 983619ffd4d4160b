// FILE: loglens/src/cmd/loglens/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"loglens/src/cmd/loglens/commands"
	"loglens/src/internal/analyzer"
	"loglens/src/internal/config"
	"loglens/src/internal/format"
	"loglens/src/internal/version"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Process exit codes
const (
	exitOK       = 0
	exitError    = 1
	exitNotFound = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	router := commands.NewCommandRouter(stdout)

	// No arguments: usage, not an error
	if len(args) == 0 {
		router.ShowHelp()
		return exitOK
	}

	if handled, err := router.Route(args); handled {
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
		return exitOK
	}

	flagCfg, err := ParseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			router.ShowHelp()
			return exitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n\nRun 'loglens help' for usage\n", err)
		return exitError
	}

	InitOutputHandler(flagCfg.Quiet, stdout, stderr)

	if flagCfg.ShowVersion {
		Print("%s\n", version.String())
		return exitOK
	}

	cfg, err := config.LoadWithCLI(flagCfg.ConfigFile, flagCfg.Overrides())
	if err != nil {
		Error("Failed to load config: %v\n", err)
		return exitError
	}

	if err := initializeLogger(cfg); err != nil {
		Error("Failed to initialize logger: %v\n", err)
		return exitError
	}
	defer shutdownLogger()

	logger.Info("msg", "loglens starting",
		"component", "main",
		"version", version.Short(),
		"input", cfg.Input,
		"format", cfg.Report.Format,
		"csv", cfg.Export.CSV)

	color := resolveColor(cfg.Report.Color, stdout)
	output.SetColor(color)

	formatter, err := format.NewFormatter(cfg.Report.Format, &format.Options{
		Color:  color,
		Indent: "  ",
	}, logger)
	if err != nil {
		Error("Failed to create formatter: %v\n", err)
		return exitError
	}

	a, err := analyzer.New(cfg, logger)
	if err != nil {
		Error("Failed to create analyzer: %v\n", err)
		return exitError
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := a.Run(ctx)
	if err != nil {
		if errors.Is(err, analyzer.ErrInputNotFound) {
			output.Alert("Input file not found: %s", cfg.Input)
			return exitNotFound
		}
		Error("Analysis failed: %v\n", err)
		return exitError
	}

	code := exitOK
	if result.ExportErr != nil {
		Error("Failed to export CSV: %v\n", result.ExportErr)
		code = exitError
	} else if result.ExportPath != "" {
		// Keep stdout machine-readable for JSON summaries
		if formatter.Name() == "json" {
			Error("Exported %d records to %s\n", result.Exported, result.ExportPath)
		} else {
			Print("Exported %d records to %s\n", result.Exported, result.ExportPath)
		}
	}

	report, err := formatter.Format(result.Summary)
	if err != nil {
		Error("Failed to format summary: %v\n", err)
		return exitError
	}
	if _, err := output.Write(report); err != nil {
		logger.Error("msg", "Failed to write summary",
			"component", "main",
			"error", err)
		return exitError
	}

	logger.Info("msg", "loglens finished",
		"component", "main",
		"lines_read", result.Stats.LinesRead,
		"parsed", result.Stats.Parsed,
		"passed", result.Stats.Passed,
		"duration", result.Stats.Duration)

	return code
}

// resolveColor decides whether the summary is styled. "auto" styles only
// when stdout is a terminal.
func resolveColor(mode string, stdout io.Writer) bool {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
		return true
	case "never":
		return false
	default:
		f, ok := stdout.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}
