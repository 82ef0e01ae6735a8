package bundle

import (
	"path"

	"github.com/adfkit/adf/internal/parser"
	"github.com/adfkit/adf/pkg/adf"
)

// TriggerDiagnostic explains why one module was or was not loaded.
type TriggerDiagnostic struct {
	Module          string
	Triggers        []string
	Matched         bool
	MatchedKeywords []string
	Reason          string // "default-load", "trigger" or "no trigger matched"
}

// Result is the derived output of bundling one task. It is recomputed
// on every invocation and never persisted.
type Result struct {
	Paths        []string
	Manifest     Manifest
	Merged       adf.Document
	TotalTokens  int
	Budget       int            // 0 when the manifest declares none
	Utilization  *float64       // nil when no budget is declared
	ModuleTokens map[string]int // per requested module

	// OverBudget lists modules whose own estimate exceeds their
	// declared per-module budget.
	OverBudget []string

	// AdvisoryOnly lists on-demand modules that were included but
	// contain no load-bearing section.
	AdvisoryOnly []string

	Diagnostics []TriggerDiagnostic

	// Unmatched lists on-demand modules that were never requested.
	Unmatched []string
}

// Bundle loads the manifest from basePath, reads and parses each
// requested module, merges them in order and computes token and
// trigger diagnostics. It fails with a *adf.BundleError naming the
// missing path when the manifest or any requested module cannot be
// read; no partial result is ever returned.
func Bundle(basePath string, paths []string, reader adf.FileReader, keywords []string) (Result, error) {
	manifestPath := path.Join(basePath, adf.ManifestFileName)
	raw, err := reader.ReadFile(manifestPath)
	if err != nil {
		return Result{}, &adf.BundleError{Path: manifestPath, Err: adf.ErrManifestNotFound}
	}
	manifestDoc, err := parser.Parse(string(raw))
	if err != nil {
		return Result{}, err
	}
	manifest := ParseManifest(manifestDoc)

	result := Result{
		Paths:        append([]string(nil), paths...),
		Manifest:     manifest,
		Merged:       adf.Document{Version: adf.FormatVersion},
		Budget:       manifest.Budget,
		ModuleTokens: make(map[string]int, len(paths)),
	}

	requested := make(map[string]bool, len(paths))
	for _, p := range paths {
		requested[p] = true
	}
	onDemand := make(map[string]OnDemand, len(manifest.OnDemand))
	for _, entry := range manifest.OnDemand {
		onDemand[entry.Path] = entry
	}

	for _, modulePath := range paths {
		moduleRaw, err := reader.ReadFile(path.Join(basePath, modulePath))
		if err != nil {
			return Result{}, &adf.BundleError{Path: modulePath, Err: adf.ErrModuleNotFound}
		}
		moduleDoc, err := parser.Parse(string(moduleRaw))
		if err != nil {
			return Result{}, err
		}

		tokens := EstimateTokens(moduleDoc)
		result.ModuleTokens[modulePath] = tokens
		result.TotalTokens += tokens

		if entry, ok := onDemand[modulePath]; ok {
			if entry.Budget > 0 && tokens > entry.Budget {
				result.OverBudget = append(result.OverBudget, modulePath)
			}
			if !hasLoadBearing(moduleDoc) {
				result.AdvisoryOnly = append(result.AdvisoryOnly, modulePath)
			}
		}

		result.Merged = MergeDocuments(result.Merged, moduleDoc)
	}

	if manifest.Budget > 0 {
		utilization := float64(result.TotalTokens) / float64(manifest.Budget)
		result.Utilization = &utilization
	}

	defaultLoad := make(map[string]bool, len(manifest.DefaultLoad))
	for _, p := range manifest.DefaultLoad {
		defaultLoad[p] = true
	}
	for _, entry := range manifest.OnDemand {
		diag := TriggerDiagnostic{
			Module:   entry.Path,
			Triggers: append([]string(nil), entry.Triggers...),
		}
		switch {
		case defaultLoad[entry.Path]:
			diag.Matched = true
			diag.Reason = "default-load"
		case requested[entry.Path]:
			diag.Matched = true
			diag.MatchedKeywords = MatchedKeywords(entry.Triggers, keywords)
			diag.Reason = "trigger"
		default:
			diag.Reason = "no trigger matched"
			result.Unmatched = append(result.Unmatched, entry.Path)
		}
		result.Diagnostics = append(result.Diagnostics, diag)
	}

	return result, nil
}

func hasLoadBearing(doc adf.Document) bool {
	for _, sec := range doc.Sections {
		if sec.Weight == adf.WeightLoadBearing {
			return true
		}
	}
	return false
}
