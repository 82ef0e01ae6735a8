package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/adfkit/adf/internal/files/filesystem"
	"github.com/adfkit/adf/internal/formatter"
	"github.com/adfkit/adf/internal/migrate"
	"github.com/adfkit/adf/internal/parser"
	"github.com/adfkit/adf/internal/patch"
	"github.com/adfkit/adf/internal/tui"
	"github.com/adfkit/adf/internal/ui"
	"github.com/adfkit/adf/pkg/adf"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <markdown-file>",
	Short: "Classify a markdown context file into ADF modules",
	Long: `Split a free-form markdown context file (for example an agent
instructions file) into elements, decide per element whether it stays
or migrates into a module, and print the routing plan.

With --apply the plan's MIGRATE records are written into the target
modules as patch batches; the target files are overwritten after
approval. With --plan the full plan is saved as YAML for later review
instead of being applied.`,
	Args: cobra.ExactArgs(1),
	RunE: runMigrate,
}

var (
	migrateApply    bool
	migratePlanFile string
	migrateYes      bool
)

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().BoolVar(&migrateApply, "apply", false, "Apply MIGRATE records to the target modules")
	migrateCmd.Flags().StringVar(&migratePlanFile, "plan", "", "Write the plan to a YAML file instead of applying")
	migrateCmd.Flags().BoolVarP(&migrateYes, "yes", "y", false, "Skip interactive approval when applying")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	fsp := newProvider()

	dir, _, err := loadProject(cmd)
	if err != nil {
		return err
	}

	raw, err := fsp.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	elements := migrate.Sectionize(string(raw))
	logger.Verbose("sectionized %s into %d element(s)", args[0], len(elements))

	existing := loadExistingCore(dir, fsp, logger)
	plan := migrate.Classify(elements, existing)

	if migratePlanFile != "" {
		out, err := yaml.Marshal(plan)
		if err != nil {
			return fmt.Errorf("encoding plan: %w", err)
		}
		if err := fsp.WriteFile(migratePlanFile, out); err != nil {
			return fmt.Errorf("writing %s: %w", migratePlanFile, err)
		}
		logger.Info("plan %s written to %s", plan.ID, migratePlanFile)
		return nil
	}

	if !migrateApply {
		printPlan(logger, plan)
		return nil
	}
	return applyPlan(cmd, logger, fsp, dir, plan)
}

// loadExistingCore parses the default core module if present so that
// near-identical MIGRATE candidates can be downgraded to STAY. A
// missing or unparseable core module just disables dedup.
func loadExistingCore(dir string, reader adf.FileReader, logger adf.Logger) *adf.Document {
	raw, err := reader.ReadFile(filepath.Join(dir, migrate.ModuleCore))
	if err != nil {
		return nil
	}
	doc, err := parser.Parse(string(raw))
	if err != nil {
		logger.Verbose("skipping dedup against %s: %v", migrate.ModuleCore, err)
		return nil
	}
	return &doc
}

func applyPlan(cmd *cobra.Command, logger adf.Logger, fsp filesystem.Provider, dir string, plan migrate.Plan) error {
	if len(plan.Migrate) == 0 {
		logger.Info("nothing to migrate (%d element(s) stay)", plan.StayCount)
		return nil
	}

	if tui.IsInteractive() && !migrateYes {
		kept, accepted, err := tui.ReviewPlan(plan)
		if err != nil {
			return err
		}
		if !accepted {
			return adf.ErrApprovalDenied
		}
		plan.Migrate = kept
		plan.TargetModules = nil
		seen := make(map[string]bool)
		for _, rec := range kept {
			if !seen[rec.TargetModule] {
				seen[rec.TargetModule] = true
				plan.TargetModules = append(plan.TargetModules, rec.TargetModule)
			}
		}
		if len(plan.Migrate) == 0 {
			logger.Info("all records deselected; nothing to apply")
			return nil
		}
	}

	// Load or initialize every target module before patching so a
	// failure on any module leaves all files untouched.
	moduleDocs := make(map[string]adf.Document)
	for _, module := range plan.Modules() {
		path := filepath.Join(dir, module)
		raw, err := fsp.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			moduleDocs[module] = adf.Document{Version: adf.FormatVersion}
			continue
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		doc, err := parser.Parse(string(raw))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		moduleDocs[module] = doc
	}

	batches := plan.Patches(moduleDocs)
	patched := make(map[string]adf.Document)
	for _, module := range plan.Modules() {
		doc, err := patch.Apply(moduleDocs[module], batches[module])
		if err != nil {
			return fmt.Errorf("%s: %w", module, err)
		}
		patched[module] = doc
	}

	approver := newApprover(cmd)
	for _, module := range plan.Modules() {
		ok, err := approver.RequestApproval(cmd.Context(), module)
		if err != nil {
			return err
		}
		if !ok {
			return adf.ErrApprovalDenied
		}
		path := filepath.Join(dir, module)
		if err := fsp.WriteFile(path, []byte(formatter.Format(patched[module]))); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		logger.Info("wrote %s", path)
	}
	logger.Info("migrated %d element(s), %d stayed", len(plan.Migrate), plan.StayCount)
	return nil
}

// newApprover picks the overwrite approver: interactive when a human
// is at the terminal, a short countdown otherwise or with --yes.
func newApprover(cmd *cobra.Command) adf.Approver {
	verbose := getVerboseFlag(cmd)
	if migrateYes || !tui.IsInteractive() {
		return ui.NewForcedApprover(verbose)
	}
	return ui.NewInteractiveApprover(verbose)
}

func printPlan(logger adf.Logger, plan migrate.Plan) {
	logger.Info("%s", tui.TitleStyle.Render(fmt.Sprintf("Migration plan (%d migrate, %d stay)",
		plan.MigrateCount, plan.StayCount)))

	for _, rec := range plan.Migrate {
		weight := ""
		if rec.Weight != adf.WeightNone {
			weight = " [" + string(rec.Weight) + "]"
		}
		logger.Info("  MIGRATE %s/%s%s: %s", rec.TargetModule, rec.TargetSection, weight,
			firstLine(rec.Text))
		logger.Verbose("    %s", rec.Reason)
	}
	for _, rec := range plan.Stay {
		logger.Info("  %s", tui.MutedStyle.Render(fmt.Sprintf("STAY %s (%s)",
			firstLine(rec.Text), rec.Reason)))
	}
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i] + " …"
		}
	}
	return s
}
