package migrate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSectionize(t *testing.T) {
	markdown := "# Project notes\n" +
		"\n" +
		"Intro paragraph before any section.\n" +
		"\n" +
		"## Git Workflow\n" +
		"\n" +
		"- Never force-push shared branches\n" +
		"- Prefer rebase over merge\n" +
		"1. Squash before merging\n" +
		"\n" +
		"## API Design\n" +
		"\n" +
		"Endpoints follow REST semantics.\n" +
		"Version every breaking change.\n" +
		"\n" +
		"```go\n" +
		"func Handler() {}\n" +
		"```\n" +
		"\n" +
		"| verb | path |\n" +
		"|------|------|\n" +
		"| GET  | /v1  |\n"

	elements := Sectionize(markdown)
	require.Len(t, elements, 7)

	require.Equal(t, Element{Text: "Intro paragraph before any section.", Type: ElementProse}, elements[0])

	require.Equal(t, "Git Workflow", elements[1].Heading)
	require.Equal(t, ElementRule, elements[1].Type)
	require.Equal(t, "Never force-push shared branches", elements[1].Text)
	require.Equal(t, StrengthImperative, elements[1].Strength)

	require.Equal(t, "Prefer rebase over merge", elements[2].Text)
	require.Equal(t, StrengthAdvisory, elements[2].Strength)

	require.Equal(t, "Squash before merging", elements[3].Text)
	require.Equal(t, ElementRule, elements[3].Type)
	require.Equal(t, StrengthNeutral, elements[3].Strength)

	prose := elements[4]
	require.Equal(t, "API Design", prose.Heading)
	require.Equal(t, ElementProse, prose.Type)
	require.Equal(t, "Endpoints follow REST semantics.\nVersion every breaking change.", prose.Text)

	code := elements[5]
	require.Equal(t, ElementCodeBlock, code.Type)
	require.Equal(t, "func Handler() {}", code.Text)

	row := elements[6]
	require.Equal(t, ElementTableRow, row.Type)
	require.Equal(t, "| GET  | /v1  |", row.Text)
}

func TestSectionize_TableHeaderRowKept(t *testing.T) {
	elements := Sectionize("| verb | path |\n|---|---|\n| GET | /v1 |\n")
	require.Len(t, elements, 2)
	require.Equal(t, "| verb | path |", elements[0].Text)
	require.Equal(t, "| GET | /v1 |", elements[1].Text)
}

func TestSectionize_EmptyInput(t *testing.T) {
	require.Empty(t, Sectionize(""))
	require.Empty(t, Sectionize("\n\n\n"))
}

func TestGradeStrength(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Strength
	}{
		{name: "Never is imperative", text: "Never hand-edit generated files", want: StrengthImperative},
		{name: "Must is imperative", text: "Commit messages must reference a ticket", want: StrengthImperative},
		{name: "Important is imperative", text: "IMPORTANT: run the linter", want: StrengthImperative},
		{name: "Prefer is advisory", text: "Prefer small interfaces", want: StrengthAdvisory},
		{name: "Consider is advisory", text: "Consider caching hot paths", want: StrengthAdvisory},
		{name: "Avoid is advisory", text: "Avoid global state", want: StrengthAdvisory},
		{name: "Imperative beats advisory when both appear", text: "You should never skip review", want: StrengthImperative},
		{name: "Plain wording is neutral", text: "Use tabs for indentation", want: StrengthNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, gradeStrength(tt.text))
		})
	}
}
