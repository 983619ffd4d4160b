// FILE: loglens/src/internal/format/text_test.go
package format

import (
	"testing"

	"loglens/src/internal/aggregate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFormatter_Format(t *testing.T) {
	logger := newTestLogger()

	t.Run("Plain", func(t *testing.T) {
		formatter, err := NewTextFormatter(&Options{}, logger)
		require.NoError(t, err)

		output, err := formatter.Format(testSummary())
		require.NoError(t, err)

		expected := "Total events: 3\n" +
			"By level:\n" +
			"  Error: 2\n" +
			"  Warning: 1\n" +
			"Top 5 sources:\n" +
			"  192.168.1.5: 2\n" +
			"  db: 1\n"
		assert.Equal(t, expected, string(output))
	})

	t.Run("Empty", func(t *testing.T) {
		formatter, err := NewTextFormatter(&Options{}, logger)
		require.NoError(t, err)

		output, err := formatter.Format(aggregate.Summary{TopLimit: 5})
		require.NoError(t, err)
		assert.Equal(t, "Total events: 0\nBy level:\nTop 5 sources:\n", string(output))
	})

	t.Run("ColorKeepsLevelNames", func(t *testing.T) {
		formatter, err := NewTextFormatter(&Options{Color: true}, logger)
		require.NoError(t, err)

		output, err := formatter.Format(testSummary())
		require.NoError(t, err)
		assert.Contains(t, string(output), "Error")
		assert.Contains(t, string(output), "Warning")
		assert.Contains(t, string(output), "192.168.1.5: 2")
	})
}
