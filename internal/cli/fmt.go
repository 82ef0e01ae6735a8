package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adfkit/adf/internal/formatter"
	"github.com/adfkit/adf/internal/parser"
	"github.com/adfkit/adf/pkg/adf"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>...",
	Short: "Canonicalize ADF files",
	Long: `Parse each file and re-render it as canonical text: sections in
canonical order, standard decorations, two-space indentation, one
blank line between sections.

Without flags the canonical text goes to stdout. With --write files
are rewritten in place; with --check nothing is written and a non-zero
exit reports files that are not already canonical.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

var (
	fmtWrite bool
	fmtCheck bool
)

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Rewrite files in place")
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "Exit non-zero when files are not canonical")
}

func runFmt(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	fsp := newProvider()

	dirty := 0
	for _, path := range args {
		raw, err := fsp.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		doc, err := parser.Parse(string(raw))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		canonical := formatter.Format(doc)

		switch {
		case fmtCheck:
			if canonical != string(raw) {
				logger.Info("%s is not canonical", path)
				dirty++
			}
		case fmtWrite:
			if canonical != string(raw) {
				if err := fsp.WriteFile(path, []byte(canonical)); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
				logger.Verbose("rewrote %s", path)
			}
		default:
			fmt.Print(canonical)
		}
	}

	if fmtCheck && dirty > 0 {
		return fmt.Errorf("%w: %d file(s) not canonical", adf.ErrDriftDetected, dirty)
	}
	return nil
}
