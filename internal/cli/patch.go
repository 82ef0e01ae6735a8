package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/adfkit/adf/internal/formatter"
	"github.com/adfkit/adf/internal/parser"
	"github.com/adfkit/adf/internal/patch"
	"github.com/adfkit/adf/pkg/adf"
)

var patchCmd = &cobra.Command{
	Use:   "patch <file>",
	Short: "Apply a patch batch to an ADF file",
	Long: `Apply an ordered batch of delta operations read from a YAML file.
Application is all-or-nothing: if any operation fails the file is left
untouched and the error names the failing operation.

Batch file format:

  - op: ADD_BULLET
    section: CONSTRAINTS
    value: Never commit secrets
  - op: UPDATE_METRIC
    section: STATE
    metric_key: loc
    metric_value: 420`,
	Args: cobra.ExactArgs(1),
	RunE: runPatch,
}

var (
	patchOpsFile string
	patchWrite   bool
)

func init() {
	rootCmd.AddCommand(patchCmd)
	patchCmd.Flags().StringVarP(&patchOpsFile, "ops", "f", "", "YAML file holding the patch batch (required)")
	patchCmd.Flags().BoolVarP(&patchWrite, "write", "w", false, "Rewrite the file in place instead of printing")
	_ = patchCmd.MarkFlagRequired("ops")
}

func runPatch(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	fsp := newProvider()
	path := args[0]

	raw, err := fsp.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := parser.Parse(string(raw))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	opsRaw, err := fsp.ReadFile(patchOpsFile)
	if err != nil {
		return fmt.Errorf("reading %s: %w", patchOpsFile, err)
	}
	var ops []adf.Patch
	if err := yaml.Unmarshal(opsRaw, &ops); err != nil {
		return fmt.Errorf("parsing %s: %w", patchOpsFile, err)
	}

	patched, err := patch.Apply(doc, ops)
	if err != nil {
		return err
	}
	logger.Verbose("applied %d operation(s)", len(ops))

	canonical := formatter.Format(patched)
	if patchWrite {
		return fsp.WriteFile(path, []byte(canonical))
	}
	fmt.Print(canonical)
	return nil
}
