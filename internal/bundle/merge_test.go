package bundle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adfkit/adf/pkg/adf"
)

func TestMergeDocuments_AppendsUnseenSections(t *testing.T) {
	target := adf.Document{Version: adf.FormatVersion, Sections: []adf.Section{
		{Key: "TASK", Content: adf.Text{Value: "ship"}},
	}}
	source := adf.Document{Sections: []adf.Section{
		{Key: "RULES", Content: adf.List{Items: []string{"one"}}},
	}}

	out := MergeDocuments(target, source)
	require.Len(t, out.Sections, 2)
	require.Equal(t, "TASK", out.Sections[0].Key)
	require.Equal(t, "RULES", out.Sections[1].Key)
}

func TestMergeDocuments_SameKindConcatenates(t *testing.T) {
	tests := []struct {
		name   string
		target adf.Content
		source adf.Content
		want   adf.Content
	}{
		{
			name:   "Lists concatenate target first",
			target: adf.List{Items: []string{"a"}},
			source: adf.List{Items: []string{"b", "c"}},
			want:   adf.List{Items: []string{"a", "b", "c"}},
		},
		{
			name:   "Maps concatenate",
			target: adf.Map{Entries: []adf.MapEntry{{Key: "x", Value: "1"}}},
			source: adf.Map{Entries: []adf.MapEntry{{Key: "y", Value: "2"}}},
			want:   adf.Map{Entries: []adf.MapEntry{{Key: "x", Value: "1"}, {Key: "y", Value: "2"}}},
		},
		{
			name:   "Metrics concatenate",
			target: adf.Metric{Entries: []adf.MetricEntry{{Key: "loc", Value: 1, Ceiling: 2}}},
			source: adf.Metric{Entries: []adf.MetricEntry{{Key: "fn", Value: 3, Ceiling: 4}}},
			want: adf.Metric{Entries: []adf.MetricEntry{
				{Key: "loc", Value: 1, Ceiling: 2},
				{Key: "fn", Value: 3, Ceiling: 4},
			}},
		},
		{
			name:   "Texts join with newline",
			target: adf.Text{Value: "first"},
			source: adf.Text{Value: "second"},
			want:   adf.Text{Value: "first\nsecond"},
		},
		{
			name:   "Empty text side is skipped",
			target: adf.Text{Value: ""},
			source: adf.Text{Value: "only"},
			want:   adf.Text{Value: "only"},
		},
		{
			name:   "Mismatched kinds keep the first loaded",
			target: adf.List{Items: []string{"a"}},
			source: adf.Text{Value: "clobber attempt"},
			want:   adf.List{Items: []string{"a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := adf.Document{Sections: []adf.Section{{Key: "RULES", Content: tt.target}}}
			source := adf.Document{Sections: []adf.Section{{Key: "RULES", Content: tt.source}}}
			out := MergeDocuments(target, source)
			require.Len(t, out.Sections, 1)
			require.Equal(t, tt.want, out.Sections[0].Content)
		})
	}
}

func TestMergeDocuments_WeightPromotion(t *testing.T) {
	tests := []struct {
		name string
		a, b adf.Weight
		want adf.Weight
	}{
		{name: "Load-bearing beats advisory", a: adf.WeightAdvisory, b: adf.WeightLoadBearing, want: adf.WeightLoadBearing},
		{name: "Load-bearing beats none", a: adf.WeightLoadBearing, b: adf.WeightNone, want: adf.WeightLoadBearing},
		{name: "Advisory beats none", a: adf.WeightNone, b: adf.WeightAdvisory, want: adf.WeightAdvisory},
		{name: "None stays none", a: adf.WeightNone, b: adf.WeightNone, want: adf.WeightNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := adf.Document{Sections: []adf.Section{{Key: "RULES", Weight: tt.a, Content: adf.List{}}}}
			source := adf.Document{Sections: []adf.Section{{Key: "RULES", Weight: tt.b, Content: adf.List{}}}}
			out := MergeDocuments(target, source)
			require.Equal(t, tt.want, out.Sections[0].Weight)
		})
	}
}

func TestMergeDocuments_DoesNotMutateInputs(t *testing.T) {
	target := adf.Document{Sections: []adf.Section{
		{Key: "RULES", Content: adf.List{Items: []string{"a"}}},
	}}
	source := adf.Document{Sections: []adf.Section{
		{Key: "RULES", Content: adf.List{Items: []string{"b"}}},
	}}

	MergeDocuments(target, source)
	require.Equal(t, adf.List{Items: []string{"a"}}, target.Sections[0].Content)
	require.Equal(t, adf.List{Items: []string{"b"}}, source.Sections[0].Content)
}
