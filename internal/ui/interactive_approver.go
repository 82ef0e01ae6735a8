// Package ui implements the adf.Approver interface for console-based
// confirmation before module files are overwritten with migrated
// content.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/adfkit/adf/pkg/adf"
)

// InteractiveApprover prompts the user to type the target name to
// confirm an overwrite.
type InteractiveApprover struct {
	verbose bool
}

// NewInteractiveApprover creates a new InteractiveApprover.
func NewInteractiveApprover(verbose bool) adf.Approver {
	return &InteractiveApprover{verbose: verbose}
}

// RequestApproval prompts the user to type the target name to confirm.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, target string) (bool, error) {
	fmt.Fprintf(os.Stderr, "\n⚠ About to overwrite '%s' with migrated content.\n", target)
	fmt.Fprintf(os.Stderr, "To confirm, type '%s' and press Enter: ", target)

	// Read user input with context cancellation support.
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(os.Stdin)
		input, err := reader.ReadString('\n')
		if err != nil {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		if input == target {
			fmt.Fprintln(os.Stderr, "✓ Confirmed.")
			return true, nil
		}
		fmt.Fprintf(os.Stderr, "✗ Input '%s' does not match '%s'. Operation cancelled.\n", input, target)
		return false, nil
	}
}

var _ adf.Approver = (*InteractiveApprover)(nil)
