// Package migrate routes elements of an unstructured markdown advisory
// document into the ADF section model, enabling incremental adoption.
// The sectionizer splits the source on level-2 headings; the classifier
// decides per element whether it stays in the source or migrates, and
// into which section, module and weight.
package migrate

import (
	"regexp"
	"strings"
)

// ElementType tags one sectionized source element.
type ElementType int

const (
	ElementRule ElementType = iota
	ElementCodeBlock
	ElementTableRow
	ElementProse
)

// String returns the element type name used in plan output.
func (t ElementType) String() string {
	switch t {
	case ElementRule:
		return "rule"
	case ElementCodeBlock:
		return "code-block"
	case ElementTableRow:
		return "table-row"
	case ElementProse:
		return "prose"
	default:
		return "unknown"
	}
}

// Strength grades a rule element by how binding its wording is.
type Strength int

const (
	StrengthNeutral Strength = iota
	StrengthImperative
	StrengthAdvisory
)

// String returns the strength name used in plan output.
func (s Strength) String() string {
	switch s {
	case StrengthImperative:
		return "imperative"
	case StrengthAdvisory:
		return "advisory"
	default:
		return "neutral"
	}
}

// Element is one sectionized piece of the source document, in
// encounter order, with its enclosing level-2 heading.
type Element struct {
	Heading  string
	Text     string
	Type     ElementType
	Strength Strength // meaningful for rules only
}

// Keyword tables for rule strength grading. Imperative wins over
// advisory when both match.
var (
	imperativeRegexp = regexp.MustCompile(
		`(?i)\b(never|always|must( not)?|do not|don't|important|critical|required?|requires)\b`)
	advisoryRegexp = regexp.MustCompile(
		`(?i)\b(prefer(red)?|should|bias|recommend(ed)?|avoid|consider|try to)\b`)
)

var (
	headingRegexp  = regexp.MustCompile(`^##\s+(.*)$`)
	bulletRegexp   = regexp.MustCompile(`^\s*(?:[-*+]|\d+[.)])\s+(.*)$`)
	tableRowRegexp = regexp.MustCompile(`^\s*\|.*\|\s*$`)
	tableSepRegexp = regexp.MustCompile(`^\s*\|[\s:|-]+\|\s*$`)
	fenceRegexp    = regexp.MustCompile("^\\s*```")
)

// Sectionize splits markdown into typed elements in encounter order.
// Bullet and numbered lines become rule elements graded by strength,
// fenced blocks become single code-block elements, table rows (minus
// separator rows) become one element each, and remaining non-blank
// lines accumulate into prose paragraphs split on blank lines.
func Sectionize(markdown string) []Element {
	lines := strings.Split(strings.ReplaceAll(markdown, "\r\n", "\n"), "\n")

	var elements []Element
	heading := ""
	var prose []string

	flushProse := func() {
		if len(prose) == 0 {
			return
		}
		elements = append(elements, Element{
			Heading: heading,
			Text:    strings.Join(prose, "\n"),
			Type:    ElementProse,
		})
		prose = nil
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if m := headingRegexp.FindStringSubmatch(line); m != nil {
			flushProse()
			heading = strings.TrimSpace(m[1])
			continue
		}
		if strings.HasPrefix(line, "#") {
			// Other heading levels reset prose but keep the enclosing
			// level-2 heading.
			flushProse()
			continue
		}

		if fenceRegexp.MatchString(line) {
			flushProse()
			var block []string
			for i++; i < len(lines) && !fenceRegexp.MatchString(lines[i]); i++ {
				block = append(block, lines[i])
			}
			elements = append(elements, Element{
				Heading: heading,
				Text:    strings.Join(block, "\n"),
				Type:    ElementCodeBlock,
			})
			continue
		}

		if tableRowRegexp.MatchString(line) {
			flushProse()
			if tableSepRegexp.MatchString(line) {
				continue
			}
			elements = append(elements, Element{
				Heading: heading,
				Text:    strings.TrimSpace(line),
				Type:    ElementTableRow,
			})
			continue
		}

		if m := bulletRegexp.FindStringSubmatch(line); m != nil {
			flushProse()
			text := strings.TrimSpace(m[1])
			elements = append(elements, Element{
				Heading:  heading,
				Text:     text,
				Type:     ElementRule,
				Strength: gradeStrength(text),
			})
			continue
		}

		if strings.TrimSpace(line) == "" {
			flushProse()
			continue
		}

		prose = append(prose, strings.TrimSpace(line))
	}
	flushProse()

	return elements
}

// gradeStrength tags rule wording as imperative, advisory or neutral.
func gradeStrength(text string) Strength {
	if imperativeRegexp.MatchString(text) {
		return StrengthImperative
	}
	if advisoryRegexp.MatchString(text) {
		return StrengthAdvisory
	}
	return StrengthNeutral
}
