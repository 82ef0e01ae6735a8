// Package formatter renders a Document as canonical ADF text. Format
// is pure and total: it never fails, formatting twice produces
// identical output, and re-parsing its output reproduces the same
// text.
package formatter

import (
	"sort"
	"strconv"
	"strings"

	"github.com/adfkit/adf/pkg/adf"
)

const indent = "  "

// Format renders doc as canonical text. Sections present in the
// canonical key-order table come first, sorted by table position;
// the rest follow in their original order (stable sort). Output always
// ends with a trailing newline.
func Format(doc adf.Document) string {
	version := doc.Version
	if version == "" {
		version = adf.FormatVersion
	}

	ordered := canonicalOrder(doc.Sections)

	blocks := make([]string, 0, len(ordered)+1)
	blocks = append(blocks, adf.VersionPrefix+" "+version)
	for _, sec := range ordered {
		blocks = append(blocks, formatSection(sec))
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

// canonicalOrder partitions sections into table entries (sorted by
// table position) and the rest (appended in original order).
func canonicalOrder(sections []adf.Section) []adf.Section {
	out := make([]adf.Section, len(sections))
	copy(out, sections)
	sort.SliceStable(out, func(i, j int) bool {
		return adf.CanonicalRank(out[i].Key) < adf.CanonicalRank(out[j].Key)
	})
	return out
}

func formatSection(sec adf.Section) string {
	var b strings.Builder

	decoration := sec.Decoration
	if decoration == "" {
		decoration = adf.StandardDecorations[sec.Key]
	}
	if decoration != "" {
		b.WriteString(decoration)
		b.WriteString(" ")
	}
	b.WriteString(sec.Key)
	if sec.Weight != adf.WeightNone {
		b.WriteString(" [")
		b.WriteString(string(sec.Weight))
		b.WriteString("]")
	}
	b.WriteString(":")

	switch content := sec.Content.(type) {
	case nil:
		// An unset content value renders as empty text.
	case adf.Text:
		if content.Value == "" {
			break
		}
		if !strings.Contains(content.Value, "\n") {
			b.WriteString(" ")
			b.WriteString(content.Value)
			break
		}
		for _, line := range strings.Split(content.Value, "\n") {
			b.WriteString("\n")
			if line != "" {
				b.WriteString(indent)
				b.WriteString(line)
			}
		}
	case adf.List:
		for _, item := range content.Items {
			b.WriteString("\n")
			b.WriteString(indent)
			b.WriteString("- ")
			b.WriteString(item)
		}
	case adf.Map:
		for _, entry := range content.Entries {
			b.WriteString("\n")
			b.WriteString(indent)
			b.WriteString(entry.Key)
			b.WriteString(":")
			if entry.Value != "" {
				b.WriteString(" ")
				b.WriteString(entry.Value)
			}
		}
	case adf.Metric:
		for _, entry := range content.Entries {
			b.WriteString("\n")
			b.WriteString(indent)
			b.WriteString(entry.Key)
			b.WriteString(": ")
			b.WriteString(formatNumber(entry.Value))
			b.WriteString(" / ")
			b.WriteString(formatNumber(entry.Ceiling))
			if entry.Unit != "" {
				b.WriteString(" [")
				b.WriteString(entry.Unit)
				b.WriteString("]")
			}
		}
	}

	return b.String()
}

// formatNumber renders a metric number without a trailing ".0" for
// integral values.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
