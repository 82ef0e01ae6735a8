// Package parser turns raw ADF text into a Document. It is tolerant by
// design: the only hard failure is an unsupported format version, and
// everything else degrades into best-effort content so documents
// produced by humans or LLMs still parse.
package parser

import (
	"regexp"
	"strings"

	"github.com/adfkit/adf/pkg/adf"
)

// headerRegexp matches a section header at column zero: an optional
// single decoration glyph, an identifier, an optional bracketed weight
// tag, a colon, and an optional inline remainder.
var headerRegexp = regexp.MustCompile(
	`^(?:([^\s\w])\s*)?([A-Z][A-Z0-9_]*)(?:\s+\[(load-bearing|advisory)\])?:[ \t]?(.*)$`)

// versionRegexp matches the optional leading FORMAT line.
var versionRegexp = regexp.MustCompile(`^FORMAT:\s*(\S*)\s*$`)

// Parse converts text into a Document. It fails only with a
// *adf.ParseError for an unsupported version string; all other
// malformed input is absorbed as best-effort content.
func Parse(text string) (adf.Document, error) {
	lines := splitLines(text)

	doc := adf.Document{Version: adf.FormatVersion}

	i := 0
	// Skip leading blanks, then optionally consume a FORMAT line.
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i < len(lines) {
		if m := versionRegexp.FindStringSubmatch(lines[i]); m != nil {
			if m[1] != adf.FormatVersion {
				return adf.Document{}, &adf.ParseError{Line: i + 1, Version: m[1]}
			}
			doc.Version = m[1]
			i++
		}
	}

	for i < len(lines) {
		header := matchHeader(lines[i])
		if header == nil {
			// Stray content outside any section. Tolerated: skip.
			i++
			continue
		}

		body, next := collectBody(lines, i+1)
		sec := adf.Section{
			Key:        header.key,
			Decoration: header.decoration,
			Weight:     header.weight,
			Content:    classify(header.inline, dedent(body)),
		}
		doc.Sections = append(doc.Sections, sec)
		i = next
	}

	return doc, nil
}

type headerMatch struct {
	decoration string
	key        string
	weight     adf.Weight
	inline     string
}

func matchHeader(line string) *headerMatch {
	if line == "" || line[0] == ' ' || line[0] == '\t' {
		return nil
	}
	m := headerRegexp.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	return &headerMatch{
		decoration: m[1],
		key:        m[2],
		weight:     adf.Weight(m[3]),
		inline:     strings.TrimRight(m[4], " \t"),
	}
}

// collectBody gathers the section body starting at line index start.
// A blank line's meaning is resolved by look-ahead: if the next
// non-blank line is a header the blank ends the section, if it is
// indented content the blank stays inside the body, and at end of
// input the blank ends the document. Trailing blanks are therefore
// trimmed while interior blanks survive.
func collectBody(lines []string, start int) (body []string, next int) {
	i := start
	for i < len(lines) {
		if matchHeader(lines[i]) != nil {
			break
		}
		body = append(body, lines[i])
		i++
	}
	for len(body) > 0 && strings.TrimSpace(body[len(body)-1]) == "" {
		body = body[:len(body)-1]
	}
	return body, i
}

// dedent strips at most one indentation unit (two spaces or one tab)
// from each body line.
func dedent(body []string) []string {
	if body == nil {
		return nil
	}
	out := make([]string, len(body))
	for i, line := range body {
		switch {
		case strings.HasPrefix(line, "  "):
			out[i] = line[2:]
		case strings.HasPrefix(line, "\t"):
			out[i] = line[1:]
		default:
			out[i] = line
		}
	}
	return out
}

// splitLines normalizes line endings and splits into lines.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
