package ui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/adfkit/adf/pkg/adf"
)

// forcedApprovalCountdown is how long the forced approver waits before
// proceeding, leaving a window for Ctrl+C.
const forcedApprovalCountdown = 3 * time.Second

// ForcedApprover implements non-interactive approval: it displays a
// short countdown and then proceeds, used when --yes is given or no
// terminal is attached.
type ForcedApprover struct {
	verbose bool
}

// NewForcedApprover creates a new ForcedApprover.
func NewForcedApprover(verbose bool) adf.Approver {
	return &ForcedApprover{verbose: verbose}
}

// RequestApproval displays a countdown and automatically approves.
func (a *ForcedApprover) RequestApproval(ctx context.Context, target string) (bool, error) {
	fmt.Fprintf(os.Stderr, "\nOverwriting '%s' with migrated content.\n", target)

	for i := int(forcedApprovalCountdown.Seconds()); i > 0; i-- {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
			fmt.Fprintf(os.Stderr, "\rProceeding in %d... (Ctrl+C to cancel)", i)
			time.Sleep(1 * time.Second)
		}
	}
	fmt.Fprintf(os.Stderr, "\r✓ Proceeding.                            \n")
	return true, nil
}

var _ adf.Approver = (*ForcedApprover)(nil)
