package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adfkit/adf/internal/bundle"
	"github.com/adfkit/adf/internal/formatter"
	"github.com/adfkit/adf/internal/parser"
	"github.com/adfkit/adf/internal/tui"
	"github.com/adfkit/adf/pkg/adf"
)

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Resolve and merge modules for a task",
	Long: `Load the manifest, resolve which modules the given task keywords
pull in, merge them into one document and print trigger and token
diagnostics. Default-load modules are always included; an on-demand
module loads when any of its triggers matches a keyword exactly
(case-insensitive) or by shared prefix stem.`,
	Args: cobra.NoArgs,
	RunE: runBundle,
}

var (
	bundleKeywords []string
	bundleOut      string
	bundleQuiet    bool
)

func init() {
	rootCmd.AddCommand(bundleCmd)
	bundleCmd.Flags().StringSliceVarP(&bundleKeywords, "keywords", "k", nil, "Task keywords matched against module triggers")
	bundleCmd.Flags().StringVarP(&bundleOut, "output", "o", "", "Write the merged document to a file")
	bundleCmd.Flags().BoolVarP(&bundleQuiet, "quiet", "q", false, "Suppress diagnostics, print only the merged document")
}

func runBundle(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	fsp := newProvider()

	dir, cfg, err := loadProject(cmd)
	if err != nil {
		return err
	}
	keywords := append(append([]string(nil), cfg.Keywords...), bundleKeywords...)

	result, err := resolveAndBundle(dir, fsp, keywords)
	if err != nil {
		return err
	}

	if !bundleQuiet {
		printDiagnostics(logger, result)
	}

	merged := formatter.Format(result.Merged)
	if bundleOut != "" {
		logger.Verbose("writing merged bundle to %s", bundleOut)
		return fsp.WriteFile(bundleOut, []byte(merged))
	}
	fmt.Print(merged)
	return nil
}

// resolveAndBundle parses the manifest once to resolve module paths,
// then bundles the resolved set.
func resolveAndBundle(dir string, reader adf.FileReader, keywords []string) (bundle.Result, error) {
	manifestPath := filepath.Join(dir, adf.ManifestFileName)
	raw, err := reader.ReadFile(manifestPath)
	if err != nil {
		return bundle.Result{}, &adf.BundleError{Path: manifestPath, Err: adf.ErrManifestNotFound}
	}
	manifestDoc, err := parser.Parse(string(raw))
	if err != nil {
		return bundle.Result{}, err
	}
	manifest := bundle.ParseManifest(manifestDoc)
	paths := bundle.ResolveModules(manifest, keywords)
	return bundle.Bundle(dir, paths, reader, keywords)
}

func printDiagnostics(logger adf.Logger, result bundle.Result) {
	logger.Info("%s", tui.TitleStyle.Render("Bundle"))
	logger.Info("modules: %s", strings.Join(result.Paths, ", "))

	for _, diag := range result.Diagnostics {
		switch {
		case diag.Matched && diag.Reason == "trigger":
			logger.Info("  %s loaded (triggers: %s; matched: %s)",
				diag.Module, strings.Join(diag.Triggers, ", "), strings.Join(diag.MatchedKeywords, ", "))
		case diag.Matched:
			logger.Info("  %s loaded (%s)", diag.Module, diag.Reason)
		default:
			logger.Info("  %s skipped (%s)", tui.MutedStyle.Render(diag.Module), diag.Reason)
		}
	}

	for _, module := range result.Paths {
		logger.Verbose("  %s ≈ %d tokens", module, result.ModuleTokens[module])
	}
	if result.Budget > 0 && result.Utilization != nil {
		logger.Info("tokens: ≈%d / %d (%.0f%%)", result.TotalTokens, result.Budget, *result.Utilization*100)
	} else {
		logger.Info("tokens: ≈%d (no budget declared)", result.TotalTokens)
	}
	for _, module := range result.OverBudget {
		logger.Info("%s", tui.WarnStyle.Render(fmt.Sprintf("  %s exceeds its module budget", module)))
	}
	for _, module := range result.AdvisoryOnly {
		logger.Info("  %s is advisory-only (no load-bearing section)", module)
	}
}
