package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adfkit/adf/internal/lockfile"
	"github.com/adfkit/adf/internal/tui"
	"github.com/adfkit/adf/pkg/adf"
)

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Snapshot module checksums into a lock file",
	Long: `Record a normalized checksum for every .adf file in the source
directory. With --check the recorded checksums are compared against the
working tree and any drift (modified, missing or untracked modules)
exits non-zero; without it a fresh lock file is written.`,
	Args: cobra.NoArgs,
	RunE: runLock,
}

var lockCheck bool

func init() {
	rootCmd.AddCommand(lockCmd)
	lockCmd.Flags().BoolVar(&lockCheck, "check", false, "Compare the lock file against the working tree")
}

func runLock(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	fsp := newProvider()

	dir, cfg, err := loadProject(cmd)
	if err != nil {
		return err
	}
	lockName := cfg.LockFile
	if lockName == "" {
		lockName = lockfile.DefaultFileName
	}
	locker := lockfile.NewLocker(fsp)

	if lockCheck {
		lock, err := locker.Read(dir, lockName)
		if err != nil {
			return fmt.Errorf("reading %s: %w", lockName, err)
		}
		drifts, err := locker.Diff(dir, lock)
		if err != nil {
			return err
		}
		if len(drifts) == 0 {
			logger.Info("%d module(s) match %s", len(lock.Entries), lockName)
			return nil
		}
		for _, d := range drifts {
			logger.Info("%s", tui.FailStyle.Render(fmt.Sprintf("  %s: %s", d.Path, d.Kind)))
			logger.Verbose("    locked %s, actual %s", short(d.Locked), short(d.Actual))
		}
		return fmt.Errorf("%w: %d module(s) drifted", adf.ErrDriftDetected, len(drifts))
	}

	lock, err := locker.Snapshot(dir)
	if err != nil {
		return err
	}
	if err := locker.Write(dir, lockName, lock); err != nil {
		return fmt.Errorf("writing %s: %w", lockName, err)
	}
	logger.Info("locked %d module(s) in %s", len(lock.Entries), lockName)
	return nil
}

// short abbreviates a checksum for display.
func short(sum string) string {
	if sum == "" {
		return "-"
	}
	if idx := strings.IndexByte(sum, ':'); idx >= 0 && len(sum) > idx+13 {
		return sum[:idx+13]
	}
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}
