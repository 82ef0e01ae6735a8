package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adfkit/adf/pkg/adf"
)

func metricDoc(value, ceiling float64) adf.Document {
	return adf.Document{Sections: []adf.Section{
		{Key: "STATE", Content: adf.Metric{Entries: []adf.MetricEntry{
			{Key: "loc", Value: value, Ceiling: ceiling, Unit: "lines"},
		}}},
	}}
}

func TestValidateConstraints_Thresholds(t *testing.T) {
	tests := []struct {
		name        string
		value       float64
		wantStatus  Status
		wantPassing bool
	}{
		{name: "Below ceiling passes", value: 49, wantStatus: StatusPass, wantPassing: true},
		{name: "At ceiling warns", value: 50, wantStatus: StatusWarn, wantPassing: true},
		{name: "Above ceiling fails", value: 51, wantStatus: StatusFail, wantPassing: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evidence := ValidateConstraints(metricDoc(tt.value, 50), nil)
			require.Len(t, evidence.Results, 1)
			require.Equal(t, tt.wantStatus, evidence.Results[0].Status)
			require.Equal(t, tt.wantPassing, evidence.AllPassing)
			require.Equal(t, SourceDocument, evidence.Results[0].Source)
		})
	}
}

func TestValidateConstraints_Overrides(t *testing.T) {
	// The document claims 10 but the measured value is 60.
	evidence := ValidateConstraints(metricDoc(10, 50), map[string]float64{"loc": 60})
	require.Len(t, evidence.Results, 1)

	res := evidence.Results[0]
	require.Equal(t, StatusFail, res.Status)
	require.Equal(t, SourceOverride, res.Source)
	require.Equal(t, float64(60), res.Value)
	require.Contains(t, res.Message, "(measured)")
	require.False(t, evidence.AllPassing)

	// Overrides for other keys leave the document value in force.
	evidence = ValidateConstraints(metricDoc(10, 50), map[string]float64{"other": 60})
	require.Equal(t, SourceDocument, evidence.Results[0].Source)
	require.Equal(t, float64(10), evidence.Results[0].Value)
}

func TestValidateConstraints_IgnoresNonMetricSections(t *testing.T) {
	doc := adf.Document{Sections: []adf.Section{
		{Key: "TASK", Content: adf.Text{Value: "ship"}},
		{Key: "RULES", Content: adf.List{Items: []string{"one"}}},
	}}
	evidence := ValidateConstraints(doc, nil)
	require.Empty(t, evidence.Results)
	require.True(t, evidence.AllPassing)
}

func TestValidateConstraints_MultipleSections(t *testing.T) {
	doc := adf.Document{Sections: []adf.Section{
		{Key: "STATE", Content: adf.Metric{Entries: []adf.MetricEntry{
			{Key: "loc", Value: 420, Ceiling: 500},
			{Key: "complexity", Value: 12, Ceiling: 10},
		}}},
		{Key: "BUDGET", Content: adf.Metric{Entries: []adf.MetricEntry{
			{Key: "tokens", Value: 900, Ceiling: 4000},
		}}},
	}}

	evidence := ValidateConstraints(doc, nil)
	require.Len(t, evidence.Results, 3)
	require.False(t, evidence.AllPassing)
	require.Equal(t, StatusPass, evidence.Results[0].Status)
	require.Equal(t, StatusFail, evidence.Results[1].Status)
	require.Equal(t, StatusPass, evidence.Results[2].Status)
	require.Equal(t, "STATE", evidence.Results[0].Section)
	require.Equal(t, "BUDGET", evidence.Results[2].Section)
}

func TestComputeWeightSummary(t *testing.T) {
	doc := adf.Document{Sections: []adf.Section{
		{Key: "CONSTRAINTS", Weight: adf.WeightLoadBearing},
		{Key: "RULES", Weight: adf.WeightAdvisory},
		{Key: "NOTES", Weight: adf.WeightAdvisory},
		{Key: "TASK"},
	}}

	summary := ComputeWeightSummary(doc)
	require.Equal(t, WeightSummary{LoadBearing: 1, Advisory: 2, Unweighted: 1, Total: 4}, summary)
}
