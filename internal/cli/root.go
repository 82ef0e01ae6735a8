// Package cli wires the adf commands. Argument parsing and dispatch
// live here, outside the format engine; commands translate between the
// filesystem and the pure core packages.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/adfkit/adf/internal/config"
	"github.com/adfkit/adf/internal/files/filesystem"
	"github.com/adfkit/adf/internal/logging"
	"github.com/adfkit/adf/pkg/adf"
)

var rootCmd = &cobra.Command{
	Use:   "adf",
	Short: "Compiler and bundler for Agent Directive Format documents",
	Long: `adf parses, canonicalizes, patches, bundles and validates Agent
Directive Format (.adf) context modules. A manifest declares which
modules always load and which load on demand when task keywords match
their triggers; the bundler merges the resolved set into one document
with token and trigger diagnostics.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  12 - User denied overwrite approval
  20 - Unsupported format version
  21 - Patch batch aborted
  22 - Missing manifest or module file
  23 - A constraint is failing
  24 - Lock file drift detected`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringP("source", "C", ".", "Source directory holding the manifest and modules")
}

// getVerboseFlag safely retrieves the verbose flag value.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// newLogger builds the command logger from the verbose flag.
func newLogger(cmd *cobra.Command) adf.Logger {
	return logging.NewConsoleLogger(getVerboseFlag(cmd))
}

// loadProject resolves the effective source directory and project
// configuration for a command.
func loadProject(cmd *cobra.Command) (dir string, cfg *config.ProjectConfig, err error) {
	dir, err = cmd.Flags().GetString("source")
	if err != nil {
		return "", nil, err
	}
	cfg, err = config.LoadWithDefaults(dir)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", adf.ErrInvalidConfig, err)
	}
	if cfg.Source != "" && cfg.Source != "." {
		dir = filepath.Join(dir, cfg.Source)
	}
	return dir, cfg, nil
}

// newProvider returns the filesystem provider commands operate on.
func newProvider() filesystem.Provider {
	return filesystem.NewOSFileSystem()
}
