package adf

import "context"

// FileReader supplies raw text to the bundler. Actual filesystem
// access lives in the calling layer so the core stays free of I/O
// side effects and tests can run against in-memory trees.
type FileReader interface {
	// ReadFile returns the raw content of the file at path.
	ReadFile(path string) ([]byte, error)
}

// Approver handles user interaction for approval workflows, in
// particular before overwriting module files with migrated content.
//
// Implementations:
//   - ui.InteractiveApprover: prompts the user to type the target name
//   - ui.ForcedApprover: shows a countdown and automatically approves
type Approver interface {
	// RequestApproval prompts for confirmation before overwriting
	// target. Returns true if approved, false if denied.
	RequestApproval(ctx context.Context, target string) (bool, error)
}
