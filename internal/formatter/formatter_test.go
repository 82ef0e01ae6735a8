package formatter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adfkit/adf/internal/parser"
	"github.com/adfkit/adf/pkg/adf"
)

func TestFormat_EmptyDocument(t *testing.T) {
	require.Equal(t, "FORMAT: 0.1\n", Format(adf.Document{}))
}

func TestFormat_CanonicalOrdering(t *testing.T) {
	doc := adf.Document{
		Version: adf.FormatVersion,
		Sections: []adf.Section{
			{Key: "STATE", Content: adf.Text{Value: "green"}},
			{Key: "CUSTOM_B", Content: adf.Text{Value: "b"}},
			{Key: "TASK", Content: adf.Text{Value: "ship"}},
			{Key: "CUSTOM_A", Content: adf.Text{Value: "a"}},
			{Key: "ROLE", Content: adf.Text{Value: "reviewer"}},
		},
	}

	want := "FORMAT: 0.1\n" +
		"\n" +
		"◆ TASK: ship\n" +
		"\n" +
		"◇ ROLE: reviewer\n" +
		"\n" +
		"● STATE: green\n" +
		"\n" +
		"CUSTOM_B: b\n" +
		"\n" +
		"CUSTOM_A: a\n"
	require.Equal(t, want, Format(doc))
}

func TestFormat_Decorations(t *testing.T) {
	tests := []struct {
		name string
		sec  adf.Section
		want string
	}{
		{
			name: "Standard decoration applied when absent",
			sec:  adf.Section{Key: "CONSTRAINTS", Content: adf.Text{Value: "x"}},
			want: "■ CONSTRAINTS: x",
		},
		{
			name: "Explicit decoration wins",
			sec:  adf.Section{Key: "CONSTRAINTS", Decoration: "!", Content: adf.Text{Value: "x"}},
			want: "! CONSTRAINTS: x",
		},
		{
			name: "Unknown key renders undecorated",
			sec:  adf.Section{Key: "NOTES", Content: adf.Text{Value: "x"}},
			want: "NOTES: x",
		},
		{
			name: "Weight tag before the colon",
			sec:  adf.Section{Key: "NOTES", Weight: adf.WeightAdvisory, Content: adf.Text{Value: "x"}},
			want: "NOTES [advisory]: x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(adf.Document{Sections: []adf.Section{tt.sec}})
			require.Equal(t, "FORMAT: 0.1\n\n"+tt.want+"\n", got)
		})
	}
}

func TestFormat_ContentVariants(t *testing.T) {
	tests := []struct {
		name    string
		content adf.Content
		want    string
	}{
		{
			name:    "Nil content renders bare header",
			content: nil,
			want:    "NOTES:",
		},
		{
			name:    "Empty text renders bare header",
			content: adf.Text{},
			want:    "NOTES:",
		},
		{
			name:    "Single line text inlines",
			content: adf.Text{Value: "one line"},
			want:    "NOTES: one line",
		},
		{
			name:    "Multi line text indents",
			content: adf.Text{Value: "first\n\nsecond"},
			want:    "NOTES:\n  first\n\n  second",
		},
		{
			name:    "List bullets",
			content: adf.List{Items: []string{"one", "two"}},
			want:    "NOTES:\n  - one\n  - two",
		},
		{
			name:    "Map entries",
			content: adf.Map{Entries: []adf.MapEntry{{Key: "daily", Value: "sync"}, {Key: "pending"}}},
			want:    "NOTES:\n  daily: sync\n  pending:",
		},
		{
			name: "Metric entries drop trailing point zero",
			content: adf.Metric{Entries: []adf.MetricEntry{
				{Key: "loc", Value: 420, Ceiling: 500, Unit: "lines"},
				{Key: "complexity", Value: 7.5, Ceiling: 10},
			}},
			want: "NOTES:\n  loc: 420 / 500 [lines]\n  complexity: 7.5 / 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := adf.Document{Sections: []adf.Section{{Key: "NOTES", Content: tt.content}}}
			require.Equal(t, "FORMAT: 0.1\n\n"+tt.want+"\n", Format(doc))
		})
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	// Canonical text survives a parse/format cycle byte for byte.
	canonical := "FORMAT: 0.1\n" +
		"\n" +
		"◆ TASK: Ship the release\n" +
		"\n" +
		"▸ CONTEXT:\n" +
		"  First paragraph with enough words to dodge structure.\n" +
		"\n" +
		"  Second paragraph of the same section stays inside.\n" +
		"\n" +
		"■ CONSTRAINTS [load-bearing]:\n" +
		"  - Never commit secrets\n" +
		"  - Keep functions small\n" +
		"\n" +
		"SYNC:\n" +
		"  daily: update STATE metrics\n" +
		"  weekly: prune stale rules\n" +
		"\n" +
		"● STATE:\n" +
		"  loc: 420 / 500 [lines]\n" +
		"  complexity: 7.5 / 10\n"

	doc, err := parser.Parse(canonical)
	require.NoError(t, err)
	require.Equal(t, canonical, Format(doc))
}

func TestFormat_Idempotent(t *testing.T) {
	messy := "TASK:   inline with trailing spaces   \n" +
		"STATE:\n" +
		"loc: 1 / 2\n" +
		"\n" +
		"\n" +
		"RULES:\n" +
		"\t- tab indented\n"

	doc, err := parser.Parse(messy)
	require.NoError(t, err)

	once := Format(doc)
	redoc, err := parser.Parse(once)
	require.NoError(t, err)
	require.Equal(t, once, Format(redoc))
}

func TestFormat_DoesNotMutateInput(t *testing.T) {
	doc := adf.Document{Sections: []adf.Section{
		{Key: "STATE", Content: adf.Text{Value: "s"}},
		{Key: "TASK", Content: adf.Text{Value: "t"}},
	}}
	Format(doc)
	require.Equal(t, "STATE", doc.Sections[0].Key)
	require.Equal(t, "TASK", doc.Sections[1].Key)
}
