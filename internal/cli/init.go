package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/adfkit/adf/internal/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init <project-name>",
	Short: "Scaffold a new ADF project",
	Long: `Create a starter project in a new directory: a manifest with one
default-load module and two on-demand modules, a core module and a
project configuration file. The target directory must be empty or
absent.`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

var initTarget string

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVarP(&initTarget, "target", "t", "", "Target directory (defaults to the project name)")
}

func runInit(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	projectName := args[0]

	target := initTarget
	if target == "" {
		target = projectName
	}
	target = filepath.Clean(target)

	scaffolder := scaffold.NewScaffolder(getVerboseFlag(cmd))
	if err := scaffolder.CreateProject(projectName, target); err != nil {
		return fmt.Errorf("scaffolding %s: %w", target, err)
	}
	logger.Info("created project %s in %s", projectName, target)
	logger.Info("next: cd %s && adf bundle -k <keywords>", target)
	return nil
}
