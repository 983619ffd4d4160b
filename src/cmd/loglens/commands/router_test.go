// FILE: loglens/src/cmd/loglens/commands/router_test.go
package commands

import (
	"bytes"
	"testing"

	"loglens/src/internal/version"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		handled  bool
		wantErr  bool
		contains string
	}{
		{name: "no args", args: nil, handled: false},
		{name: "input path", args: []string{"app.log"}, handled: false},
		{name: "flag first", args: []string{"--level=Error", "app.log"}, handled: false},
		{name: "version", args: []string{"version"}, handled: true, contains: "loglens " + version.Short()},
		{name: "version short", args: []string{"version", "--short"}, handled: true, contains: version.Short()},
		{name: "version help", args: []string{"version", "--help"}, handled: true, contains: "Version Command"},
		{name: "general help", args: []string{"help"}, handled: true, contains: "Exit Codes:"},
		{name: "command help", args: []string{"help", "version"}, handled: true, contains: "Version Command"},
		{name: "help unknown", args: []string{"help", "nope"}, handled: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			router := NewCommandRouter(&out)

			handled, err := router.Route(tt.args)
			assert.Equal(t, tt.handled, handled)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.contains != "" {
				assert.Contains(t, out.String(), tt.contains)
			} else {
				assert.Empty(t, out.String())
			}
		})
	}
}

func TestGeneralHelpListsCommands(t *testing.T) {
	var out bytes.Buffer
	router := NewCommandRouter(&out)

	require.NoError(t, router.ShowHelp())
	assert.Contains(t, out.String(), "  help     Display help information")
	assert.Contains(t, out.String(), "  version  Show version information")
}
