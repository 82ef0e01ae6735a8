package migrate

import (
	"regexp"
	"strings"

	"github.com/adfkit/adf/pkg/adf"
)

// Decision says whether an element stays in the source document or
// migrates into a module.
type Decision string

const (
	DecisionStay    Decision = "STAY"
	DecisionMigrate Decision = "MIGRATE"
)

// Well-known target modules.
const (
	ModuleCore     = "core.adf"
	ModuleFrontend = "frontend.adf"
	ModuleBackend  = "backend.adf"
)

// Record is the classification of one source element.
type Record struct {
	Element       Element    `yaml:"-"`
	Text          string     `yaml:"text"`
	Type          string     `yaml:"type"`
	Decision      Decision   `yaml:"decision"`
	TargetSection string     `yaml:"target_section"`
	TargetModule  string     `yaml:"target_module"`
	Weight        adf.Weight `yaml:"weight,omitempty"`
	Reason        string     `yaml:"reason"`
}

// Heading keyword tables for module routing. Evaluated as ordered
// pattern data, not control flow.
var (
	frontendHeadingRegexp = regexp.MustCompile(
		`(?i)\b(ui|ux|frontend|front-end|css|styles?|styling|components?|layout|design)\b`)
	backendHeadingRegexp = regexp.MustCompile(
		`(?i)\b(api|backend|back-end|server|deploy(ment)?|data(base)?|sql|infra(structure)?)\b`)
	workflowHeadingRegexp = regexp.MustCompile(
		`(?i)\b(git|commits?|branch(es|ing)?|merge|pr|pull requests?|release|workflow|ci|review)\b`)
	namingHeadingRegexp = regexp.MustCompile(
		`(?i)\b(naming|style|convention(s)?|format(ting)?|lint(ing)?)\b`)
)

// stayPatterns match environment- or OS-specific content that should
// remain with the machine it describes rather than migrate into a
// shared module: platform paths, shell and credential-helper mentions,
// and line-ending notes.
var stayPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)[a-z]:\\`),
	regexp.MustCompile(`(?i)(^|[\s"'])(/users/|/home/|~/)`),
	regexp.MustCompile(`(?i)\b(powershell|cmd\.exe|wsl|windows|macos|os x)\b`),
	regexp.MustCompile(`(?i)credential[ -]helper`),
	regexp.MustCompile(`(?i)\b(ssh-agent|keychain|wincred)\b`),
	regexp.MustCompile(`(?i)\b(crlf|autocrlf|line endings?)\b`),
}

// classifyElement decides one element's routing given its enclosing
// heading, per the fixed rule table:
//
//  1. Environment-specific content stays, tagged CONTEXT/advisory.
//  2. Imperative rules migrate to CONSTRAINTS as load-bearing.
//  3. Advisory rules migrate to ADVISORY as advisory.
//  4. Neutral rules migrate to CONSTRAINTS; load-bearing under a
//     version-control/workflow heading, advisory otherwise.
//  5. Code blocks, table rows and prose migrate to CONTEXT as
//     advisory. Prose is never dropped.
func classifyElement(el Element) Record {
	rec := Record{
		Element:      el,
		Text:         el.Text,
		Type:         el.Type.String(),
		TargetModule: targetModule(el.Heading),
	}

	if matchesStayPattern(el.Text) {
		rec.Decision = DecisionStay
		rec.TargetSection = "CONTEXT"
		rec.Weight = adf.WeightAdvisory
		rec.Reason = "environment-specific content stays with its machine"
		return rec
	}

	rec.Decision = DecisionMigrate
	switch el.Type {
	case ElementRule:
		switch el.Strength {
		case StrengthImperative:
			rec.TargetSection = "CONSTRAINTS"
			rec.Weight = adf.WeightLoadBearing
			rec.Reason = "imperative rule becomes a hard constraint"
		case StrengthAdvisory:
			rec.TargetSection = "ADVISORY"
			rec.Weight = adf.WeightAdvisory
			rec.Reason = "advisory wording stays a suggestion"
		default:
			rec.TargetSection = "CONSTRAINTS"
			if workflowHeadingRegexp.MatchString(el.Heading) {
				rec.Weight = adf.WeightLoadBearing
				rec.Reason = "workflow rule under " + quoteHeading(el.Heading)
			} else if namingHeadingRegexp.MatchString(el.Heading) {
				rec.Weight = adf.WeightAdvisory
				rec.Reason = "naming/style rule under " + quoteHeading(el.Heading)
			} else {
				rec.Weight = adf.WeightAdvisory
				rec.Reason = "neutral rule defaults to advisory"
			}
		}
	case ElementCodeBlock:
		rec.TargetSection = "CONTEXT"
		rec.Weight = adf.WeightAdvisory
		rec.Reason = "code example moves to context"
	case ElementTableRow:
		rec.TargetSection = "CONTEXT"
		rec.Weight = adf.WeightAdvisory
		rec.Reason = "table row moves to context"
	default:
		rec.TargetSection = "CONTEXT"
		rec.Weight = adf.WeightAdvisory
		rec.Reason = "prose moves to context so nothing is lost"
	}
	return rec
}

// targetModule routes by heading keywords: UI/frontend concerns to the
// frontend module, API/backend/deploy/data concerns to the backend
// module, everything else to the default core module.
func targetModule(heading string) string {
	switch {
	case frontendHeadingRegexp.MatchString(heading):
		return ModuleFrontend
	case backendHeadingRegexp.MatchString(heading):
		return ModuleBackend
	default:
		return ModuleCore
	}
}

func matchesStayPattern(text string) bool {
	for _, re := range stayPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func quoteHeading(heading string) string {
	if heading == "" {
		return "no heading"
	}
	return "\"" + strings.TrimSpace(heading) + "\""
}
