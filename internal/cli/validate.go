package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adfkit/adf/internal/measure"
	"github.com/adfkit/adf/internal/parser"
	"github.com/adfkit/adf/internal/tui"
	"github.com/adfkit/adf/internal/validate"
	"github.com/adfkit/adf/pkg/adf"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check metric constraints and weight coverage",
	Long: `Validate the metric constraints of a document: a value above its
ceiling fails, a value equal to its ceiling warns, anything below
passes. Warnings never block.

Without a file argument the resolved bundle for the configured
keywords is validated. With --measure, METRIC_SOURCES entries of the
manifest are measured (line counts) and override the document's own
values.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

var (
	validateMeasure  bool
	validateKeywords []string
)

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVarP(&validateMeasure, "measure", "m", false, "Measure METRIC_SOURCES files and override document values")
	validateCmd.Flags().StringSliceVarP(&validateKeywords, "keywords", "k", nil, "Task keywords used when validating the bundle")
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	fsp := newProvider()

	dir, cfg, err := loadProject(cmd)
	if err != nil {
		return err
	}

	var doc adf.Document
	var sources []adf.MapEntry

	if len(args) == 1 {
		raw, err := fsp.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		doc, err = parser.Parse(string(raw))
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
	} else {
		keywords := append(append([]string(nil), cfg.Keywords...), validateKeywords...)
		result, err := resolveAndBundle(dir, fsp, keywords)
		if err != nil {
			return err
		}
		doc = result.Merged
		sources = result.Manifest.MetricSources
	}

	var overrides map[string]float64
	if validateMeasure {
		measured := measure.Collect(dir, sources, fsp)
		overrides = measured.Overrides
		for _, key := range measured.Skipped {
			logger.Verbose("metric source for %s unreadable; using document value", key)
		}
	}

	evidence := validate.ValidateConstraints(doc, overrides)
	for _, res := range evidence.Results {
		logger.Info("%s %s", tui.RenderStatus(string(res.Status)), res.Message)
	}

	summary := validate.ComputeWeightSummary(doc)
	logger.Info("sections: %d load-bearing, %d advisory, %d unweighted (%d total)",
		summary.LoadBearing, summary.Advisory, summary.Unweighted, summary.Total)

	if !evidence.AllPassing {
		var failing []string
		for _, res := range evidence.Results {
			if res.Status == validate.StatusFail {
				failing = append(failing, res.Key)
			}
		}
		return fmt.Errorf("%w: %s", adf.ErrConstraintFailing, strings.Join(failing, ", "))
	}
	return nil
}
