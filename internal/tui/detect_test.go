package tui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectMode_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "Explicit opt-out", key: "ADF_NON_INTERACTIVE", value: "1"},
		{name: "CI convention", key: "CI", value: "true"},
		{name: "NO_COLOR convention", key: "NO_COLOR", value: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			require.Equal(t, ModeNonInteractive, DetectMode())
			require.False(t, IsInteractive())
		})
	}
}

func TestDetectMode_PipedStdio(t *testing.T) {
	// Test binaries never run with a terminal on stdin and stdout, so
	// detection must land on non-interactive even without env hints.
	t.Setenv("ADF_NON_INTERACTIVE", "")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "")
	require.Equal(t, ModeNonInteractive, DetectMode())
}
