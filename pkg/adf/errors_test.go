package adf

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "Nil error", err: nil, want: ExitSuccess},
		{name: "Unclassified error", err: errors.New("boom"), want: ExitGeneralError},
		{name: "Unsupported version sentinel", err: ErrUnsupportedVersion, want: ExitParseError},
		{name: "Parse error unwraps", err: &ParseError{Line: 1, Version: "0.2"}, want: ExitParseError},
		{name: "Wrapped parse error", err: fmt.Errorf("file.adf: %w", &ParseError{Line: 1, Version: "0.2"}), want: ExitParseError},
		{name: "Patch error", err: &PatchError{Op: "ADD_BULLET", Section: "RULES", Index: -1, Err: ErrSectionNotFound}, want: ExitPatchError},
		{name: "Bundle error", err: &BundleError{Path: "manifest.adf", Err: ErrManifestNotFound}, want: ExitBundleError},
		{name: "Missing module", err: ErrModuleNotFound, want: ExitBundleError},
		{name: "Invalid config", err: fmt.Errorf("%w: bad yaml", ErrInvalidConfig), want: ExitConfigError},
		{name: "Approval denied", err: ErrApprovalDenied, want: ExitApprovalDenied},
		{name: "Constraint failing", err: fmt.Errorf("%w: loc", ErrConstraintFailing), want: ExitValidationFailed},
		{name: "Drift detected", err: ErrDriftDetected, want: ExitDriftDetected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ExitCodeForError(tt.err))
		})
	}
}

func TestParseError_Message(t *testing.T) {
	err := &ParseError{Line: 3, Version: "0.9"}
	require.Equal(t, `line 3: unsupported format version "0.9" (supported: 0.1)`, err.Error())
	require.True(t, errors.Is(err, ErrUnsupportedVersion))
}

func TestPatchError_Message(t *testing.T) {
	withIndex := &PatchError{Op: "REPLACE_BULLET", Section: "RULES", Index: 4, Err: ErrIndexOutOfRange}
	require.Equal(t, `REPLACE_BULLET on section "RULES" (index 4): index out of range`, withIndex.Error())

	withoutIndex := &PatchError{Op: "REMOVE_SECTION", Section: "RULES", Index: -1, Err: ErrSectionNotFound}
	require.Equal(t, `REMOVE_SECTION on section "RULES": section not found`, withoutIndex.Error())
	require.True(t, errors.Is(withoutIndex, ErrSectionNotFound))
}

func TestBundleError_Message(t *testing.T) {
	err := &BundleError{Path: "proj/manifest.adf", Err: ErrManifestNotFound}
	require.Equal(t, "bundle: proj/manifest.adf: manifest not found", err.Error())
	require.True(t, errors.Is(err, ErrManifestNotFound))
}
