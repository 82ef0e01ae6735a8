package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConsoleLogger_VerboseGating(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(false, &buf)

	logger.Verbose("hidden %d", 1)
	require.Empty(t, buf.String())

	logger = NewConsoleLoggerTo(true, &buf)
	logger.Verbose("shown %d", 2)
	require.Equal(t, "[VERBOSE] shown 2\n", buf.String())
}

func TestConsoleLogger_Prefixes(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(false, &buf)

	logger.Info("plain message")
	logger.Error("broken: %v", "cause")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, []string{
		"plain message",
		"[ERROR] broken: cause",
	}, lines)
}

func TestConsoleLogger_LiteralPercentWithoutArgs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(false, &buf)

	// Messages without args are printed verbatim, not format-expanded.
	logger.Info("utilization 85%")
	require.Equal(t, "utilization 85%\n", buf.String())
}
