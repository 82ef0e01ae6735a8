package adf

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios. These enable callers to
// distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := patch.Apply(doc, ops)
//	if errors.Is(err, adf.ErrIndexOutOfRange) {
//	    // Handle an out-of-bounds bullet index
//	}
var (
	// ErrUnsupportedVersion indicates the document declares a format
	// version other than FormatVersion. This is the parser's only hard
	// failure; all other malformed input degrades gracefully.
	ErrUnsupportedVersion = errors.New("unsupported format version")

	// ErrSectionNotFound indicates a patch referenced a section key
	// that is not present in the document.
	ErrSectionNotFound = errors.New("section not found")

	// ErrSectionExists indicates ADD_SECTION named a key that is
	// already present.
	ErrSectionExists = errors.New("section already exists")

	// ErrContentMismatch indicates a patch targeted a section whose
	// content variant does not support the operation.
	ErrContentMismatch = errors.New("content type mismatch")

	// ErrIndexOutOfRange indicates a bullet index outside the target
	// section's entries.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrMetricNotFound indicates UPDATE_METRIC named a metric key the
	// section does not contain.
	ErrMetricNotFound = errors.New("metric key not found")

	// ErrManifestNotFound indicates the bundler could not read the
	// manifest document.
	ErrManifestNotFound = errors.New("manifest not found")

	// ErrModuleNotFound indicates a requested module file could not be
	// read.
	ErrModuleNotFound = errors.New("module not found")

	// ErrInvalidConfig indicates the project configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrApprovalDenied indicates the user denied approval for an
	// overwrite operation.
	ErrApprovalDenied = errors.New("approval denied")

	// ErrConstraintFailing indicates at least one metric constraint is
	// above its ceiling.
	ErrConstraintFailing = errors.New("constraint failing")

	// ErrDriftDetected indicates a lock file checksum no longer
	// matches its source file.
	ErrDriftDetected = errors.New("drift detected")
)

// ParseError is returned for an unsupported version string. It carries
// the offending line number so callers can pinpoint the failure.
type ParseError struct {
	Line    int
	Version string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: unsupported format version %q (supported: %s)",
		e.Line, e.Version, FormatVersion)
}

func (e *ParseError) Unwrap() error { return ErrUnsupportedVersion }

// PatchError reports the first failing operation of a patch batch. The
// whole batch is aborted and the input document is unaffected.
type PatchError struct {
	Op      string // operation name, e.g. "ADD_BULLET"
	Section string // offending section key
	Index   int    // offending index, -1 when not relevant
	Err     error  // sentinel cause
}

func (e *PatchError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s on section %q (index %d): %v", e.Op, e.Section, e.Index, e.Err)
	}
	return fmt.Sprintf("%s on section %q: %v", e.Op, e.Section, e.Err)
}

func (e *PatchError) Unwrap() error { return e.Err }

// BundleError reports a missing manifest or module file, naming the
// path that could not be read.
type BundleError struct {
	Path string
	Err  error
}

func (e *BundleError) Error() string {
	return fmt.Sprintf("bundle: %s: %v", e.Path, e.Err)
}

func (e *BundleError) Unwrap() error { return e.Err }

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known
// errors, and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUnsupportedVersion):
		return ExitParseError
	case errors.Is(err, ErrManifestNotFound), errors.Is(err, ErrModuleNotFound):
		return ExitBundleError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	case errors.Is(err, ErrConstraintFailing):
		return ExitValidationFailed
	case errors.Is(err, ErrDriftDetected):
		return ExitDriftDetected
	}

	var patchErr *PatchError
	if errors.As(err, &patchErr) {
		return ExitPatchError
	}
	var bundleErr *BundleError
	if errors.As(err, &bundleErr) {
		return ExitBundleError
	}

	return ExitGeneralError
}
