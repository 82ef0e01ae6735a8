// Package validate checks a document's metric constraints against
// their ceilings and summarizes section weights.
package validate

import (
	"fmt"
	"strconv"

	"github.com/adfkit/adf/pkg/adf"
)

// Status classifies one constraint check.
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// Value sources for constraint evidence.
const (
	SourceDocument = "document"
	SourceOverride = "override"
)

// ConstraintResult is the evidence for one metric entry.
type ConstraintResult struct {
	Section string
	Key     string
	Value   float64
	Ceiling float64
	Unit    string
	Status  Status
	Source  string
	Message string
}

// EvidenceResult aggregates all constraint checks of one document.
type EvidenceResult struct {
	Results []ConstraintResult

	// AllPassing is true iff no constraint is failing. Warnings never
	// block.
	AllPassing bool
}

// ValidateConstraints checks every metric entry in every metric
// section. The effective value is the override for that key when
// supplied, else the document's own value. A value above its ceiling
// fails, a value equal to its ceiling warns, anything below passes.
func ValidateConstraints(doc adf.Document, overrides map[string]float64) EvidenceResult {
	result := EvidenceResult{AllPassing: true}

	for _, sec := range doc.Sections {
		metric, ok := sec.Content.(adf.Metric)
		if !ok {
			continue
		}
		for _, entry := range metric.Entries {
			value := entry.Value
			source := SourceDocument
			if override, ok := overrides[entry.Key]; ok {
				value = override
				source = SourceOverride
			}

			status := StatusPass
			switch {
			case value > entry.Ceiling:
				status = StatusFail
				result.AllPassing = false
			case value == entry.Ceiling:
				status = StatusWarn
			}

			result.Results = append(result.Results, ConstraintResult{
				Section: sec.Key,
				Key:     entry.Key,
				Value:   value,
				Ceiling: entry.Ceiling,
				Unit:    entry.Unit,
				Status:  status,
				Source:  source,
				Message: constraintMessage(sec.Key, entry.Key, value, entry.Ceiling, entry.Unit, status, source),
			})
		}
	}

	return result
}

func constraintMessage(section, key string, value, ceiling float64, unit string, status Status, source string) string {
	msg := fmt.Sprintf("%s/%s: %s / %s", section, key, formatNumber(value), formatNumber(ceiling))
	if unit != "" {
		msg += " " + unit
	}
	msg += fmt.Sprintf(" [%s]", status)
	if source == SourceOverride {
		msg += " (measured)"
	}
	return msg
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WeightSummary counts sections by weight tag.
type WeightSummary struct {
	LoadBearing int
	Advisory    int
	Unweighted  int
	Total       int
}

// ComputeWeightSummary tallies load-bearing, advisory and unweighted
// sections.
func ComputeWeightSummary(doc adf.Document) WeightSummary {
	var summary WeightSummary
	for _, sec := range doc.Sections {
		switch sec.Weight {
		case adf.WeightLoadBearing:
			summary.LoadBearing++
		case adf.WeightAdvisory:
			summary.Advisory++
		default:
			summary.Unweighted++
		}
		summary.Total++
	}
	return summary
}
