package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/adfkit/adf/pkg/adf"
)

// Body line grammars for content classification. These are
// configuration data, not control flow: classify evaluates them in
// priority order against every body line.
var (
	bulletRegexp = regexp.MustCompile(`^[-*•]\s+(.*)$`)
	metricRegexp = regexp.MustCompile(
		`^([^:\s]+)\s*:\s*(-?\d+(?:\.\d+)?)\s*/\s*(-?\d+(?:\.\d+)?)\s*(?:\[([^\]]*)\])?$`)
	mapRegexp = regexp.MustCompile(`^([^:\s]+)\s*:[ \t]?(.*)$`)
)

// classify resolves a section body into exactly one content variant.
// It is total: given any inline value and body it returns a content
// value and never fails. Priority order: inline-only text, empty text,
// list, metric, map, fallback text. No element of valid input is
// dropped; a non-empty inline value combined with a structured body
// falls through to text so both survive.
func classify(inline string, body []string) adf.Content {
	nonblank := nonblankLines(body)

	if len(nonblank) == 0 {
		return adf.Text{Value: strings.TrimSpace(inline)}
	}

	if inline == "" {
		if items, ok := matchList(nonblank); ok {
			return adf.List{Items: items}
		}
		if entries, ok := matchMetric(body); ok {
			return adf.Metric{Entries: entries}
		}
		if entries, ok := matchMap(body); ok {
			return adf.Map{Entries: entries}
		}
	}

	parts := make([]string, 0, len(body)+1)
	if inline != "" {
		parts = append(parts, inline)
	}
	parts = append(parts, body...)
	return adf.Text{Value: strings.TrimSpace(strings.Join(parts, "\n"))}
}

func nonblankLines(body []string) []string {
	var out []string
	for _, line := range body {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// matchList succeeds when every non-blank body line is a bullet.
func matchList(nonblank []string) ([]string, bool) {
	items := make([]string, 0, len(nonblank))
	for _, line := range nonblank {
		m := bulletRegexp.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			return nil, false
		}
		items = append(items, strings.TrimSpace(m[1]))
	}
	return items, len(items) > 0
}

// matchMetric succeeds when every body line (blanks included, which
// never match) is a `key: value / ceiling [unit]` tuple with finite
// numbers.
func matchMetric(body []string) ([]adf.MetricEntry, bool) {
	entries := make([]adf.MetricEntry, 0, len(body))
	for _, line := range body {
		m := metricRegexp.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			return nil, false
		}
		value, err := strconv.ParseFloat(m[2], 64)
		if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
			return nil, false
		}
		ceiling, err := strconv.ParseFloat(m[3], 64)
		if err != nil || math.IsInf(ceiling, 0) || math.IsNaN(ceiling) {
			return nil, false
		}
		entries = append(entries, adf.MetricEntry{
			Key:     m[1],
			Value:   value,
			Ceiling: ceiling,
			Unit:    m[4],
		})
	}
	return entries, len(entries) > 0
}

// matchMap succeeds when every body line is a `key: value` pair.
func matchMap(body []string) ([]adf.MapEntry, bool) {
	entries := make([]adf.MapEntry, 0, len(body))
	for _, line := range body {
		m := mapRegexp.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			return nil, false
		}
		entries = append(entries, adf.MapEntry{Key: m[1], Value: strings.TrimSpace(m[2])})
	}
	return entries, len(entries) > 0
}
