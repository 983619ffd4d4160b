// FILE: loglens/src/cmd/loglens/output.go
package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var styleAlert = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

// Manages all application output respecting quiet mode
type OutputHandler struct {
	quiet  bool
	color  bool
	mu     sync.RWMutex
	stdout io.Writer
	stderr io.Writer
}

// Global output handler instance
var output *OutputHandler

// Initializes the global output handler
func InitOutputHandler(quiet bool, stdout, stderr io.Writer) {
	output = &OutputHandler{
		quiet:  quiet,
		stdout: stdout,
		stderr: stderr,
	}
}

// Writes to stdout if not in quiet mode
func (o *OutputHandler) Print(format string, args ...any) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if !o.quiet {
		fmt.Fprintf(o.stdout, format, args...)
	}
}

// Writes to stderr if not in quiet mode
func (o *OutputHandler) Error(format string, args ...any) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if !o.quiet {
		fmt.Fprintf(o.stderr, format, args...)
	}
}

// Writes a message to stdout if not in quiet mode, red when color is enabled
func (o *OutputHandler) Alert(format string, args ...any) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if o.quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if o.color {
		msg = styleAlert.Render(msg)
	}
	fmt.Fprintln(o.stdout, msg)
}

// Enables or disables styled output
func (o *OutputHandler) SetColor(enabled bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.color = enabled
}

// Writes raw bytes to stdout if not in quiet mode
func (o *OutputHandler) Write(p []byte) (int, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if o.quiet {
		return len(p), nil
	}
	return o.stdout.Write(p)
}

// Helper functions for global output handler
func Print(format string, args ...any) {
	if output != nil {
		output.Print(format, args...)
	}
}

func Error(format string, args ...any) {
	if output != nil {
		output.Error(format, args...)
	} else {
		// Fallback if handler not initialized
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
